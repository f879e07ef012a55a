package scanner

import (
	"bufio"
	"errors"
	"io"
	"strings"

	scanerr "simplesql/pkg/error"
)

// Scanner owns a stream and its Cursor for callers that do not need to
// thread the cursor themselves.
type Scanner struct {
	in     *errRecorder
	cursor Cursor
}

// New creates a Scanner reading from r. Readers that do not implement
// io.ByteScanner are wrapped in a bufio.Reader.
func New(r io.Reader) *Scanner {
	s := &Scanner{}
	s.Reset(r)
	return s
}

// NewString creates a Scanner over src.
func NewString(src string) *Scanner {
	return New(strings.NewReader(src))
}

// Reset reuses the Scanner with a new stream and a fresh cursor.
func (s *Scanner) Reset(r io.Reader) {
	if r == nil {
		panic(scanerr.InvalidArgument("Reset", "input stream is nil"))
	}
	bs, ok := r.(io.ByteScanner)
	if !ok {
		bs = bufio.NewReader(r)
	}
	s.in = &errRecorder{ByteScanner: bs}
	Init(&s.cursor)
}

// Next returns the next token. Once the stream is exhausted every call
// returns EndOfStream.
func (s *Scanner) Next() Token {
	return NextToken(s.in, &s.cursor)
}

// Cursor returns a copy of the current position.
func (s *Scanner) Cursor() Cursor {
	return s.cursor
}

// All returns the remaining tokens, up to and including EndOfStream.
func (s *Scanner) All() []Token {
	var tokens []Token
	for {
		tok := s.Next()
		tokens = append(tokens, tok)
		if tok.Kind == EndOfStream {
			return tokens
		}
	}
}

// Err returns the first read error other than io.EOF, wrapped as a
// READ_FAILED error. Such an error ends the stream early.
func (s *Scanner) Err() error {
	if s.in == nil || s.in.err == nil {
		return nil
	}
	err := scanerr.Wrap(s.in.err, scanerr.CodeReadFailed, "NextToken", "scanner")
	return err.At(s.cursor.Line, s.cursor.Col)
}

// Tokenize scans r to the end and returns every token, EndOfStream included.
func Tokenize(r io.Reader) ([]Token, error) {
	s := New(r)
	tokens := s.All()
	return tokens, s.Err()
}

type errRecorder struct {
	io.ByteScanner
	err error
}

func (e *errRecorder) ReadByte() (byte, error) {
	b, err := e.ByteScanner.ReadByte()
	if err != nil && !errors.Is(err, io.EOF) && e.err == nil {
		e.err = err
	}
	return b, err
}
