package diag

import "fmt"

// Record is one located compiler message extracted from a build log.
type Record struct {
	// Path is the file path exactly as written in the log. It is never
	// normalised or checked against the filesystem.
	Path string
	// Line is 1-based.
	Line uint32
	// Col is a 1-based visual column: the compiler counts display cells
	// after tab expansion, not bytes.
	Col      uint32
	Severity Severity
	// Message may span several physical lines; a blank line or the end of
	// the log terminates it.
	Message string
}

// Location returns the record position in the path:line:col form used by
// the log itself.
func (r Record) Location() string {
	return fmt.Sprintf("%s:%d:%d", r.Path, r.Line, r.Col)
}
