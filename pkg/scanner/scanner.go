package scanner

import (
	"errors"
	"io"

	scanerr "simplesql/pkg/error"
	"simplesql/pkg/logging"
)

// NextToken scans and returns the next token from in, advancing c past it.
//
// Whitespace and "--" line comments are skipped. End of input and the '$'
// sentinel both yield EndOfStream with text "$". Characters that start no
// known lexeme yield Unknown; NextToken never reports syntax errors.
//
// NextToken looks at most one character ahead and pushes it back with
// UnreadByte when it does not belong to the current token. It panics with an
// INVALID_ARGUMENT error when in or c is nil.
func NextToken(in io.ByteScanner, c *Cursor) Token {
	if in == nil {
		panic(scanerr.InvalidArgument("NextToken", "input stream is nil"))
	}
	if c == nil {
		panic(scanerr.InvalidArgument("NextToken", "cursor is nil"))
	}

	r := &reader{in: in, c: c}

	for {
		ch, ok := r.get()
		if !ok {
			line, col := c.next()
			return Token{Kind: EndOfStream, Line: line, Col: col, Offset: c.Offset, Text: "$"}
		}
		r.accept(ch)
		start := Token{Line: c.Line, Col: c.Col, Offset: c.Offset - 1}

		switch {
		case ch == '$':
			return start.with(EndOfStream, "$")
		case isSpace(ch):
			continue
		case ch == ';':
			return start.with(SemiColon, ";")
		case ch == '(':
			return start.with(OpenParen, "(")
		case ch == ')':
			return start.with(CloseParen, ")")
		case ch == ',':
			return start.with(Comma, ",")
		case ch == '.':
			return start.with(Dot, ".")
		case ch == '*':
			return start.with(Asterisk, "*")
		case ch == '=':
			return start.with(Equal, "=")
		case ch == '>':
			if r.match('=') {
				return start.with(GreaterOrEqual, ">=")
			}
			return start.with(GreaterThan, ">")
		case ch == '<':
			if r.match('=') {
				return start.with(LessOrEqual, "<=")
			}
			if r.match('>') {
				return start.with(NotEqual, "<>")
			}
			return start.with(LessThan, "<")
		case ch == '!':
			if r.match('=') {
				return start.with(NotEqual, "!=")
			}
			return unknown(start, "!")
		case ch == '-' || ch == '+':
			next, ok := r.matchFunc(func(b byte) bool { return isDigit(b) || (ch == '-' && b == '-') })
			if !ok {
				return unknown(start, string([]byte{ch}))
			}
			if next == '-' {
				r.skipLine()
				continue
			}
			return r.number(start, []byte{ch, next})
		case isDigit(ch):
			return r.number(start, []byte{ch})
		case ch == '\'' || ch == '"':
			return r.quoted(start, ch)
		case isAlpha(ch):
			return r.word(start, ch)
		default:
			return unknown(start, string([]byte{ch}))
		}
	}
}

func (t Token) with(kind Kind, text string) Token {
	t.Kind = kind
	t.Text = text
	return t
}

func unknown(start Token, text string) Token {
	logging.WithComponent("scanner").Debug("unknown lexeme",
		"line", start.Line, "col", start.Col, "text", text)
	return start.with(Unknown, text)
}

// reader couples the stream with the cursor. Bytes returned by get are not
// counted until accept is called; unget returns an uncounted byte.
type reader struct {
	in io.ByteScanner
	c  *Cursor
}

func (r *reader) get() (byte, bool) {
	ch, err := r.in.ReadByte()
	if err != nil {
		if !errors.Is(err, io.EOF) {
			logging.WithComponent("scanner").Warn("read failed, treating as end of stream",
				"error", err, "operation", "NextToken", "line", r.c.Line, "col", r.c.Col)
		}
		return 0, false
	}
	return ch, true
}

func (r *reader) accept(ch byte) {
	r.c.advance(ch)
}

func (r *reader) unget() {
	if err := r.in.UnreadByte(); err != nil {
		logging.WithComponent("scanner").Warn("pushback failed", "error", err, "operation", "NextToken")
	}
}

// match consumes the next byte if it equals want and pushes it back otherwise.
func (r *reader) match(want byte) bool {
	_, ok := r.matchFunc(func(b byte) bool { return b == want })
	return ok
}

func (r *reader) matchFunc(pred func(byte) bool) (byte, bool) {
	ch, ok := r.get()
	if !ok {
		return 0, false
	}
	if !pred(ch) {
		r.unget()
		return 0, false
	}
	r.accept(ch)
	return ch, true
}

// skipLine discards a comment up to, but not including, the newline.
func (r *reader) skipLine() {
	for {
		if _, ok := r.matchFunc(func(b byte) bool { return b != '\n' }); !ok {
			return
		}
	}
}

// number reads the rest of an integer or decimal literal whose leading
// characters are already in buf.
func (r *reader) number(start Token, buf []byte) Token {
	kind := IntLiteral
	for {
		// a second point starts a new token
		ch, ok := r.matchFunc(func(b byte) bool { return isDigit(b) || (b == '.' && kind == IntLiteral) })
		if !ok {
			break
		}
		if ch == '.' {
			kind = DecimalLiteral
		}
		buf = append(buf, ch)
	}
	return start.with(kind, string(buf))
}

// quoted reads a string literal opened by quote. A doubled quote stands for
// one quote character. A newline or end of stream before the closing quote
// makes the lexeme Unknown, carrying the raw text read so far.
func (r *reader) quoted(start Token, quote byte) Token {
	var buf []byte
	raw := []byte{quote}
	for {
		ch, ok := r.get()
		if !ok {
			return unknown(start, string(raw))
		}
		if ch == '\n' {
			r.unget()
			return unknown(start, string(raw))
		}
		r.accept(ch)
		raw = append(raw, ch)
		if ch == quote {
			if !r.match(quote) {
				return start.with(StringLiteral, string(buf))
			}
			raw = append(raw, quote)
		}
		buf = append(buf, ch)
	}
}

// word reads an identifier and reclassifies it when it is a keyword.
func (r *reader) word(start Token, first byte) Token {
	buf := []byte{first}
	for {
		ch, ok := r.matchFunc(isIdentChar)
		if !ok {
			break
		}
		buf = append(buf, ch)
	}
	text := string(buf)
	kind, _ := LookupKeyword(text)
	return start.with(kind, text)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isAlpha(c byte) bool { return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') }

func isIdentChar(c byte) bool { return isAlpha(c) || isDigit(c) || c == '_' }
