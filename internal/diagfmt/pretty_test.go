package diagfmt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"reforge/internal/diag"
)

func sampleRecords() []diag.Record {
	return []diag.Record{
		{Path: "a.cfg", Line: 3, Col: 5, Severity: diag.SevError, Message: "boom"},
		{Path: "b.cfg", Line: 1, Col: 1, Severity: diag.SevWarning, Message: "careful\nreally"},
	}
}

func TestPrettyPlain(t *testing.T) {
	var sb strings.Builder
	Pretty(&sb, sampleRecords(), PrettyOpts{})
	got := sb.String()

	want := "a.cfg:3:5: ERROR: boom\nb.cfg:1:1: WARNING: careful\n  really\n"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestPrettyMax(t *testing.T) {
	var sb strings.Builder
	Pretty(&sb, sampleRecords(), PrettyOpts{Max: 1})
	got := sb.String()

	if !strings.Contains(got, "a.cfg:3:5") {
		t.Errorf("Expected first record in output, got %q", got)
	}
	if strings.Contains(got, "b.cfg") {
		t.Errorf("Expected second record to be trimmed, got %q", got)
	}
	if !strings.Contains(got, "and 1 more") {
		t.Errorf("Expected trim notice, got %q", got)
	}
}

func TestPrettyEmpty(t *testing.T) {
	var sb strings.Builder
	Pretty(&sb, nil, PrettyOpts{})
	if sb.Len() != 0 {
		t.Errorf("Expected no output for empty list, got %q", sb.String())
	}
}

func TestPrettyShowSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.cfg")
	if err := os.WriteFile(path, []byte("first\n\tkey = oops\nlast\n"), 0o600); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}

	// Column 6 is the 'k' of "key" once the leading tab expands to 4 cells.
	records := []diag.Record{
		{Path: path, Line: 2, Col: 6, Severity: diag.SevError, Message: "bad key"},
	}
	var sb strings.Builder
	Pretty(&sb, records, PrettyOpts{TabWidth: 4, ShowSource: true})
	got := sb.String()

	if !strings.Contains(got, "    "+"    key = oops\n") {
		t.Errorf("Expected the expanded source line, got %q", got)
	}
	if !strings.Contains(got, "    "+"     ^\n") {
		t.Errorf("Expected the caret under visual column 6, got %q", got)
	}
}

func TestPrettyShowSourceUnreadable(t *testing.T) {
	records := []diag.Record{
		{Path: filepath.Join(t.TempDir(), "absent.cfg"), Line: 1, Col: 1, Severity: diag.SevError, Message: "boom"},
	}
	var sb strings.Builder
	Pretty(&sb, records, PrettyOpts{ShowSource: true})
	got := sb.String()

	if strings.Contains(got, "^") {
		t.Errorf("Expected no caret for an unreadable file, got %q", got)
	}
	if !strings.Contains(got, "boom") {
		t.Errorf("Expected the record itself to still print, got %q", got)
	}
}

func TestPrettyShowSourceLineOutOfRange(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "short.cfg")
	if err := os.WriteFile(path, []byte("only line\n"), 0o600); err != nil {
		t.Fatalf("failed to write source: %v", err)
	}

	records := []diag.Record{
		{Path: path, Line: 40, Col: 1, Severity: diag.SevWarning, Message: "stale location"},
	}
	var sb strings.Builder
	Pretty(&sb, records, PrettyOpts{ShowSource: true})
	if got := sb.String(); strings.Contains(got, "^") {
		t.Errorf("Expected no caret for an out-of-range line, got %q", got)
	}
}

func TestSummary(t *testing.T) {
	var sb strings.Builder
	Summary(&sb, sampleRecords(), PrettyOpts{})
	if got := sb.String(); got != "1 error(s), 1 warning(s)\n" {
		t.Errorf("Unexpected summary %q", got)
	}

	sb.Reset()
	Summary(&sb, nil, PrettyOpts{})
	if sb.Len() != 0 {
		t.Errorf("Expected no summary for empty list, got %q", sb.String())
	}
}

func TestJSON(t *testing.T) {
	var sb strings.Builder
	if err := JSON(&sb, sampleRecords(), JSONOpts{}); err != nil {
		t.Fatalf("JSON failed: %v", err)
	}
	got := sb.String()
	for _, want := range []string{`"file": "a.cfg"`, `"severity": "error"`, `"severity": "warning"`, `"count": 2`} {
		if !strings.Contains(got, want) {
			t.Errorf("Expected output to contain %s, got %s", want, got)
		}
	}
}

func TestExpandTabs(t *testing.T) {
	cases := []struct {
		in   string
		tab  int
		want string
	}{
		{"a\tb", 4, "a   b"},
		{"\tx", 4, "    x"},
		{"no tabs", 4, "no tabs"},
		{"ab\tc\nd\te", 4, "ab  c\nd   e"},
	}
	for _, tc := range cases {
		if got := ExpandTabs(tc.in, tc.tab); got != tc.want {
			t.Errorf("ExpandTabs(%q, %d): expected %q, got %q", tc.in, tc.tab, tc.want, got)
		}
	}
}

func TestVisualWidth(t *testing.T) {
	if got := VisualWidth("a\tb", 4); got != 5 {
		t.Errorf("Expected width 5, got %d", got)
	}
	// A fullwidth rune counts as two cells.
	if got := VisualWidth("界", 4); got != 2 {
		t.Errorf("Expected width 2, got %d", got)
	}
}

func TestCaretLine(t *testing.T) {
	// Column 6 of "a\tb" with tab width 4: expanded line is "a   b",
	// caret clamps to the line width.
	if got := CaretLine("a\tb", 5, 4); got != "    ^" {
		t.Errorf("Expected caret at column 5, got %q", got)
	}
	if got := CaretLine("ab", 10, 4); got != "  ^" {
		t.Errorf("Expected caret clamped to line end, got %q", got)
	}
}
