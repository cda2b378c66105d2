package logparse

import (
	"testing"

	"reforge/internal/diag"
)

func parseOne(t *testing.T, text string) (diag.Record, bool) {
	t.Helper()
	c := NewCursor([]byte(text))
	return parseRecord(&c)
}

func TestParseSingleRecord(t *testing.T) {
	rec, ok := parseOne(t, "f:3:5: error: boom")
	if !ok {
		t.Fatal("Expected record to parse")
	}
	want := diag.Record{Path: "f", Line: 3, Col: 5, Severity: diag.SevError, Message: "boom"}
	if rec != want {
		t.Errorf("Expected %+v, got %+v", want, rec)
	}
}

func TestParseDefaultSeverity(t *testing.T) {
	rec, ok := parseOne(t, "f:1:1: oops")
	if !ok {
		t.Fatal("Expected record to parse")
	}
	if rec.Severity != diag.SevError {
		t.Errorf("Expected default severity ERROR, got %s", rec.Severity)
	}
	if rec.Message != "oops" {
		t.Errorf("Expected message 'oops', got %q", rec.Message)
	}
}

func TestParseWarningKeyword(t *testing.T) {
	rec, ok := parseOne(t, "f:2:2: Warning: careful")
	if !ok {
		t.Fatal("Expected record to parse")
	}
	if rec.Severity != diag.SevWarning {
		t.Errorf("Expected severity WARNING, got %s", rec.Severity)
	}
	if rec.Message != "careful" {
		t.Errorf("Expected message 'careful', got %q", rec.Message)
	}
}

// The keyword match is literal: a lowercase "warning:" is not recognised
// and becomes part of an error message instead.
func TestParseLowercaseWarningIsMessage(t *testing.T) {
	rec, ok := parseOne(t, "f:2:2: warning: careful")
	if !ok {
		t.Fatal("Expected record to parse")
	}
	if rec.Severity != diag.SevError {
		t.Errorf("Expected severity ERROR, got %s", rec.Severity)
	}
	if rec.Message != "warning: careful" {
		t.Errorf("Expected keyword to stay in the message, got %q", rec.Message)
	}
}

func TestParseMultiLineDescription(t *testing.T) {
	rec, ok := parseOne(t, "f:1:1: error: line one\ncontinued\n\nf:2:1: error: next")
	if !ok {
		t.Fatal("Expected record to parse")
	}
	if rec.Message != "line one\ncontinued" {
		t.Errorf("Expected joined message without the blank line, got %q", rec.Message)
	}
}

func TestParseLeadingBlankLines(t *testing.T) {
	rec, ok := parseOne(t, "\n  \t\nf:3:5: error: boom")
	if !ok {
		t.Fatal("Expected record to parse past blank lines")
	}
	if rec.Path != "f" || rec.Line != 3 || rec.Col != 5 {
		t.Errorf("Unexpected location %s", rec.Location())
	}
}

// Failure must consume nothing so the caller can retry.
func TestParseFailureBacktracks(t *testing.T) {
	c := NewCursor([]byte("not a diagnostic"))
	if _, ok := parseRecord(&c); ok {
		t.Fatal("Expected parse to fail")
	}
	if c.Off != 0 {
		t.Errorf("Expected failed parse to consume nothing, off=%d", c.Off)
	}
}

func TestParseRejectsBadLocations(t *testing.T) {
	cases := []struct {
		name string
		text string
	}{
		{"no_location", "just some text"},
		{"missing_col", "f:3: error: boom"},
		{"non_numeric_line", "f:x:5: error: boom"},
		{"zero_line", "f:0:5: error: boom"},
		{"zero_col", "f:3:0: error: boom"},
		{"no_closing_colon", "f:3:5 error: boom"},
		{"empty_path", ":3:5: error: boom"},
		{"empty", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := NewCursor([]byte(tc.text))
			if _, ok := parseRecord(&c); ok {
				t.Errorf("Expected %q not to parse", tc.text)
			}
			if c.Off != 0 {
				t.Errorf("Expected full backtrack for %q, off=%d", tc.text, c.Off)
			}
		})
	}
}

func TestParseDescriptionForms(t *testing.T) {
	cases := []struct {
		name string
		text string
		want string
	}{
		{"short_at_eof", "f:1:1: error: boom", "boom"},
		{"short_before_blank", "f:1:1: error: boom\n\nrest", "boom"},
		{"short_before_spaced_blank", "f:1:1: error: boom\n \t\nrest", "boom"},
		{"long_two_lines", "f:1:1: error: one\ntwo\n\nrest", "one\ntwo"},
		{"long_at_eof", "f:1:1: error: one\ntwo", "one\ntwo"},
		{"empty_description", "f:1:1: error:\n\nrest", ""},
		{"tab_between_location_and_keyword", "f:1:1:\terror:\tboom", "boom"},
		{"crlf_short", "f:1:1: error: boom\r\n\r\nrest", "boom"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec, ok := parseOne(t, tc.text)
			if !ok {
				t.Fatalf("Expected %q to parse", tc.text)
			}
			if rec.Message != tc.want {
				t.Errorf("Expected message %q, got %q", tc.want, rec.Message)
			}
		})
	}
}

// The path is taken verbatim: separators, dots and spaces inside it are
// all legal, only ':', tabs and line breaks end it.
func TestParsePathVerbatim(t *testing.T) {
	rec, ok := parseOne(t, "src/my app/config file.cfg:10:2: error: bad value")
	if !ok {
		t.Fatal("Expected record to parse")
	}
	if rec.Path != "src/my app/config file.cfg" {
		t.Errorf("Unexpected path %q", rec.Path)
	}
}
