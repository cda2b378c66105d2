// Package logparse extracts structured diagnostic records from a raw
// compiler log.
//
// The log is free-form text: zero or more blocks separated by blank
// lines, each block starting with `path:line:col:` and an optional
// severity keyword, followed by a message that may continue across
// physical lines. Parsing is a pure, synchronous text transformation;
// nothing here touches the filesystem.
package logparse

import "reforge/internal/diag"

// Scan extracts every diagnostic record from the log text, in
// first-occurrence order. The record parser is applied repeatedly until
// the input runs out or no further record matches; whatever trails the
// last match is discarded. A log with no recognisable diagnostics is a
// valid "no problems reported" result, so Scan never fails — it returns
// an empty, non-nil slice.
//
// Scan is a pure function of its input: the same text always yields the
// same records.
func Scan(text string) []diag.Record {
	c := NewCursor([]byte(text))
	records := []diag.Record{}
	for !c.EOF() {
		rec, ok := parseRecord(&c)
		if !ok {
			break
		}
		records = append(records, rec)
	}
	return records
}
