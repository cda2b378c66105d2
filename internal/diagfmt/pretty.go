// Package diagfmt renders diagnostic records for humans and machines.
// Formatting only: the data model lives in internal/diag, extraction in
// internal/logparse.
package diagfmt

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"reforge/internal/diag"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	pathColor    = color.New(color.Bold)
)

// Pretty writes the records in a human-readable form:
//
//	<path>:<line>:<col>: <SEVERITY>: <message>
//
// with continuation lines of a multi-line message indented underneath.
// Tabs inside messages are expanded so visual columns stay meaningful.
// With ShowSource set, the offending line follows each record, expanded
// with the same tab width and a caret under the reported column.
func Pretty(w io.Writer, records []diag.Record, opts PrettyOpts) {
	max := len(records)
	if opts.Max > 0 && opts.Max < max {
		max = opts.Max
	}
	src := &sourceCache{}
	for _, rec := range records[:max] {
		lines := strings.Split(ExpandTabs(rec.Message, opts.tabWidth()), "\n")
		head := fmt.Sprintf("%s: %s: %s", location(rec, opts), severityLabel(rec.Severity, opts), lines[0])
		fmt.Fprintln(w, clip(head, opts.Width))
		for _, cont := range lines[1:] {
			fmt.Fprintln(w, clip("  "+cont, opts.Width))
		}
		if opts.ShowSource {
			if line, ok := src.line(rec.Path, rec.Line); ok {
				fmt.Fprintln(w, clip("    "+ExpandTabs(line, opts.tabWidth()), opts.Width))
				fmt.Fprintln(w, clip("    "+CaretLine(line, rec.Col, opts.tabWidth()), opts.Width))
			}
		}
	}
	if rest := len(records) - max; rest > 0 {
		fmt.Fprintf(w, "... and %d more\n", rest)
	}
}

// sourceCache lazily reads source files referenced by records, one read
// per path for the lifetime of a Pretty call. A file that cannot be read
// is remembered as empty so it is not retried.
type sourceCache struct {
	files map[string][]string
}

func (c *sourceCache) line(path string, n uint32) (string, bool) {
	lines, ok := c.files[path]
	if !ok {
		if raw, err := os.ReadFile(path); err == nil {
			lines = strings.Split(strings.ReplaceAll(string(raw), "\r\n", "\n"), "\n")
		}
		if c.files == nil {
			c.files = make(map[string][]string)
		}
		c.files[path] = lines
	}
	if n == 0 || int(n) > len(lines) {
		return "", false
	}
	return lines[n-1], true
}

// Summary writes a one-line error/warning tally, or nothing for an empty
// list.
func Summary(w io.Writer, records []diag.Record, opts PrettyOpts) {
	if len(records) == 0 {
		return
	}
	errs, warns := Count(records)
	parts := make([]string, 0, 2)
	if errs > 0 {
		parts = append(parts, fmt.Sprintf("%d error(s)", errs))
	}
	if warns > 0 {
		parts = append(parts, fmt.Sprintf("%d warning(s)", warns))
	}
	fmt.Fprintf(w, "%s\n", strings.Join(parts, ", "))
}

// Count tallies records by severity.
func Count(records []diag.Record) (errors, warnings int) {
	for _, rec := range records {
		switch rec.Severity {
		case diag.SevWarning:
			warnings++
		default:
			errors++
		}
	}
	return errors, warnings
}

func location(rec diag.Record, opts PrettyOpts) string {
	if !opts.Color {
		return rec.Location()
	}
	return pathColor.Sprint(rec.Location())
}

func severityLabel(sev diag.Severity, opts PrettyOpts) string {
	if !opts.Color {
		return sev.String()
	}
	switch sev {
	case diag.SevWarning:
		return warningColor.Sprint(sev.String())
	default:
		return errorColor.Sprint(sev.String())
	}
}

func clip(s string, width int) string {
	if width <= 0 {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
