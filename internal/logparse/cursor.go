package logparse

import (
	"fmt"

	"fortio.org/safecast"
)

// Cursor is a position inside the log text.
type Cursor struct {
	Text []byte
	Off  uint32
}

// NewCursor creates a cursor over the provided log text.
func NewCursor(text []byte) Cursor {
	if _, err := safecast.Conv[uint32](len(text)); err != nil {
		panic(fmt.Errorf("log text length overflow: %w", err))
	}
	return Cursor{Text: text}
}

// EOF reports whether the end of the text has been reached.
func (c *Cursor) EOF() bool {
	return c.Off >= uint32(len(c.Text))
}

// Peek reads the current byte if any, otherwise returns 0.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.Text[c.Off]
}

// Bump moves the cursor one byte forward and returns the byte read.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.Text[c.Off]
	c.Off++
	return b
}

// Eat consumes the next byte if it matches the provided byte.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.Text[c.Off] == b {
		c.Off++
		return true
	}
	return false
}

// EatLiteral consumes the provided literal if the text continues with it.
func (c *Cursor) EatLiteral(lit string) bool {
	if uint32(len(c.Text))-c.Off < uint32(len(lit)) {
		return false
	}
	if string(c.Text[c.Off:c.Off+uint32(len(lit))]) != lit {
		return false
	}
	c.Off += uint32(len(lit))
	return true
}

// Mark is a saved cursor position for cheap backtracking.
type Mark uint32

// Mark saves the current position.
func (c *Cursor) Mark() Mark {
	return Mark(c.Off)
}

// Reset rewinds the cursor back to the mark.
func (c *Cursor) Reset(m Mark) {
	c.Off = uint32(m)
}

// TextFrom returns the text consumed since the mark.
func (c *Cursor) TextFrom(m Mark) string {
	return string(c.Text[m:c.Off])
}
