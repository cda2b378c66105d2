package logparse

import (
	"strconv"
	"strings"

	"reforge/internal/diag"
)

// parseRecord consumes one complete diagnostic from the cursor. On any
// failure the cursor is rewound to where it started, so the caller can
// decide what to do with the unparseable input.
//
// Record grammar, top to bottom:
//
//	blank-line*  path ':' line ':' col ':'  [ \t]*  severity?  description
//
// where severity is the literal "Warning:" or "error:" (anything else
// consumes nothing and defaults to error), and description is an ordered
// choice between the single-line short form and the multi-line long form.
func parseRecord(c *Cursor) (diag.Record, bool) {
	start := c.Mark()
	skipBlankLines(c)

	path, line, col, ok := parseLocation(c)
	if !ok {
		// No location means this is not a diagnostic at all.
		c.Reset(start)
		return diag.Record{}, false
	}
	skipSpaces(c)
	sev := parseSeverity(c)
	skipSpaces(c) // the gap between the keyword and the message
	msg := parseDescription(c)

	return diag.Record{
		Path:     path,
		Line:     line,
		Col:      col,
		Severity: sev,
		Message:  msg,
	}, true
}

// skipBlankLines consumes lines that contain only tabs and spaces and are
// terminated by a line break. A whitespace run not closed by a line break
// is left untouched.
func skipBlankLines(c *Cursor) {
	for {
		m := c.Mark()
		skipSpaces(c)
		c.Eat('\r')
		if !c.Eat('\n') {
			c.Reset(m)
			return
		}
	}
}

func skipSpaces(c *Cursor) {
	for {
		b := c.Peek()
		if b != ' ' && b != '\t' {
			return
		}
		c.Bump()
	}
}

// parseLocation matches `<path>:<line>:<col>:`. The path is one or more
// bytes excluding ':', tab, CR and LF; line and col are decimal literals
// and must be at least 1 — a zero location can never back a valid record.
func parseLocation(c *Cursor) (path string, line, col uint32, ok bool) {
	start := c.Mark()

	pathStart := c.Mark()
	for {
		b := c.Peek()
		if c.EOF() || b == ':' || b == '\t' || b == '\r' || b == '\n' {
			break
		}
		c.Bump()
	}
	path = c.TextFrom(pathStart)
	if path == "" || !c.Eat(':') {
		c.Reset(start)
		return "", 0, 0, false
	}

	line, ok = parseNumber(c)
	if !ok || !c.Eat(':') {
		c.Reset(start)
		return "", 0, 0, false
	}
	col, ok = parseNumber(c)
	if !ok || !c.Eat(':') {
		c.Reset(start)
		return "", 0, 0, false
	}
	if line < 1 || col < 1 {
		c.Reset(start)
		return "", 0, 0, false
	}
	return path, line, col, true
}

func parseNumber(c *Cursor) (uint32, bool) {
	start := c.Mark()
	for isDec(c.Peek()) {
		c.Bump()
	}
	text := c.TextFrom(start)
	if text == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(text, 10, 32)
	if err != nil {
		c.Reset(start)
		return 0, false
	}
	return uint32(n), true
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

// parseSeverity matches the literal severity keyword. When neither
// keyword is present nothing is consumed and the severity defaults to
// error.
func parseSeverity(c *Cursor) diag.Severity {
	if c.EatLiteral("Warning:") {
		return diag.SevWarning
	}
	if c.EatLiteral("error:") {
		return diag.SevError
	}
	return diag.SevError
}

// parseDescription is the ordered choice between the two description
// forms. The short form is tried first and wins whenever the message fits
// on the current line; each attempt fully rewinds the cursor before the
// next one, so the alternatives never observe each other's progress. The
// long form cannot fail, so a description always parses.
func parseDescription(c *Cursor) string {
	if msg, ok := shortDescription(c); ok {
		return msg
	}
	return longDescription(c)
}

// shortDescription matches a description that fits on the current line:
// the line must not itself be blank and must be terminated by a blank
// line or the end of the input. The terminating line break is not
// consumed.
func shortDescription(c *Cursor) (string, bool) {
	start := c.Mark()
	if c.EOF() || atBlankLine(c) {
		return "", false
	}
	for !c.EOF() && c.Peek() != '\n' {
		c.Bump()
	}
	msg := strings.TrimSuffix(c.TextFrom(start), "\r")
	if c.EOF() {
		return msg, true
	}
	end := c.Mark()
	c.Bump() // the line break after the message
	if c.EOF() || atBlankLine(c) {
		c.Reset(end)
		return msg, true
	}
	c.Reset(start)
	return "", false
}

// longDescription matches a description spanning several lines, up to a
// line break immediately followed by a blank line, or the end of input.
// Interior line breaks are part of the message; the terminator is not.
func longDescription(c *Cursor) string {
	start := c.Mark()
	for !c.EOF() {
		if c.Peek() == '\n' {
			end := c.Mark()
			c.Bump()
			if c.EOF() || atBlankLine(c) {
				c.Reset(end)
				break
			}
			continue
		}
		c.Bump()
	}
	return strings.TrimSuffix(c.TextFrom(start), "\r")
}

// atBlankLine reports whether the cursor sits at the start of a blank
// line: only tabs and spaces up to a line break. The cursor position is
// preserved.
func atBlankLine(c *Cursor) bool {
	m := c.Mark()
	skipSpaces(c)
	c.Eat('\r')
	blank := c.Peek() == '\n'
	c.Reset(m)
	return blank
}
