package diagfmt

import (
	"encoding/json"
	"io"
	"strings"

	"reforge/internal/diag"
)

// RecordJSON is one diagnostic record in JSON form.
type RecordJSON struct {
	File     string `json:"file"`
	Line     uint32 `json:"line"`
	Col      uint32 `json:"col"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

// Output is the root structure of the JSON rendering.
type Output struct {
	Diagnostics []RecordJSON `json:"diagnostics"`
	Count       int          `json:"count"`
}

// JSON writes the records as a single JSON document. Count always
// reflects the full list even when Max trims the emitted records.
func JSON(w io.Writer, records []diag.Record, opts JSONOpts) error {
	max := len(records)
	if opts.Max > 0 && opts.Max < max {
		max = opts.Max
	}
	out := Output{
		Diagnostics: make([]RecordJSON, 0, max),
		Count:       len(records),
	}
	for _, rec := range records[:max] {
		out.Diagnostics = append(out.Diagnostics, RecordJSON{
			File:     rec.Path,
			Line:     rec.Line,
			Col:      rec.Col,
			Severity: strings.ToLower(rec.Severity.String()),
			Message:  rec.Message,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
