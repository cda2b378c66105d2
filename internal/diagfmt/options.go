package diagfmt

// DefaultTabWidth is used whenever an option leaves TabWidth at zero.
// Record columns are visual columns, so every renderer must expand tabs
// with the same width or markers drift.
const DefaultTabWidth = 8

// PrettyOpts configures pretty-printing of diagnostic records.
type PrettyOpts struct {
	Color    bool
	TabWidth int
	// Width truncates rendered lines to the given display width, 0 means
	// unlimited.
	Width int
	// Max bounds the number of records printed, 0 means all.
	Max int
	// ShowSource prints the line each record points at, read from the
	// record's path, with a caret under the reported column. Unreadable
	// files and out-of-range lines are skipped silently.
	ShowSource bool
}

// JSONOpts configures JSON output of diagnostic records.
type JSONOpts struct {
	// Max bounds the number of records emitted, 0 means all.
	Max int
}

func (o PrettyOpts) tabWidth() int {
	if o.TabWidth <= 0 {
		return DefaultTabWidth
	}
	return o.TabWidth
}
