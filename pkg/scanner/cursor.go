package scanner

import (
	scanerr "simplesql/pkg/error"
)

// Cursor is the caller-owned scan position threaded through NextToken.
//
// Line and Col locate the last consumed character, so both are 0 before any
// input has been read and the first character of a stream is at (1, 1).
// Offset counts consumed bytes. Characters peeked and pushed back are never
// counted. A Cursor must not be shared by two scans at once.
type Cursor struct {
	Line   int
	Col    int
	Offset int

	// newline is set once a '\n' has been consumed; the line advances when
	// the following character is consumed.
	newline bool
}

// Init resets c to the start of a stream. It panics with an INVALID_ARGUMENT
// error when c is nil.
func Init(c *Cursor) {
	if c == nil {
		panic(scanerr.InvalidArgument("Init", "cursor is nil"))
	}
	*c = Cursor{}
}

func (c *Cursor) advance(ch byte) {
	if c.Line == 0 || c.newline {
		c.Line++
		c.Col = 0
		c.newline = false
	}
	c.Col++
	c.Offset++
	if ch == '\n' {
		c.newline = true
	}
}

// next returns the position the next consumed character will occupy.
func (c *Cursor) next() (line, col int) {
	if c.Line == 0 || c.newline {
		return c.Line + 1, 1
	}
	return c.Line, c.Col + 1
}
