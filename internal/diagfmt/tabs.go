package diagfmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// ExpandTabs rewrites tabs as spaces up to the next tab stop, counting
// display cells with runewidth so wide runes keep columns honest. Record
// columns are visual columns; a renderer that prints the raw text next
// to them must expand with the same tab width.
func ExpandTabs(s string, tabWidth int) string {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	if !strings.ContainsRune(s, '\t') {
		return s
	}
	var out strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			pad := tabWidth - col%tabWidth
			out.WriteString(strings.Repeat(" ", pad))
			col += pad
		case '\n':
			out.WriteRune('\n')
			col = 0
		default:
			out.WriteRune(r)
			col += runewidth.RuneWidth(r)
		}
	}
	return out.String()
}

// VisualWidth returns the display width of s with tabs expanded.
func VisualWidth(s string, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	col := 0
	for _, r := range s {
		if r == '\t' {
			col += tabWidth - col%tabWidth
			continue
		}
		col += runewidth.RuneWidth(r)
	}
	return col
}

// CaretLine builds a marker line pointing at the 1-based visual column
// col within line. The line's own tabs are expanded first, so the caret
// lands where a terminal showing the expanded line puts that column.
func CaretLine(line string, col uint32, tabWidth int) string {
	width := VisualWidth(line, tabWidth)
	pad := int(col) - 1
	if pad > width {
		pad = width
	}
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + "^"
}
