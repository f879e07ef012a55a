// Package scanner turns SimpleSQL source text into classified tokens.
//
// The scanner reads one byte at a time from an io.ByteScanner and never looks
// more than one character ahead; a peeked character that does not belong to
// the current token is returned to the stream with UnreadByte. Scan position
// lives in a Cursor owned by the caller and passed to every call, so the
// scanner itself keeps no state between calls.
//
// # Usage
//
//	in := bufio.NewReader(os.Stdin)
//	var cur scanner.Cursor
//	scanner.Init(&cur)
//	for {
//	    tok := scanner.NextToken(in, &cur)
//	    fmt.Println(tok)
//	    if tok.Kind == scanner.EndOfStream {
//	        break
//	    }
//	}
//
// Scanner wraps a stream and its cursor for callers that prefer a method API.
//
// # Lexemes
//
// Keywords (SELECT, FROM, WHERE, …) are matched case-insensitively; the token
// text keeps the case written in the source. Identifiers start with a letter
// followed by letters, digits or underscores. Numbers are IntLiteral or, with
// a decimal point, DecimalLiteral, optionally signed. String literals are
// single- or double-quoted and returned without their quotes.
//
// The '$' character and end of input both produce EndOfStream with text "$".
// Anything unrecognised becomes an Unknown token; reporting it is left to the
// caller.
//
// # Contract violations
//
// Passing a nil stream or cursor panics with a *error.ScanError whose code is
// INVALID_ARGUMENT. These are caller bugs, not input errors.
package scanner
