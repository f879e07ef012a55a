package scanner

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"
	"testing/iotest"

	scanerr "simplesql/pkg/error"
)

func assertTokens(t *testing.T, input string, expected []Token) {
	t.Helper()

	in := strings.NewReader(input)
	var cur Cursor
	Init(&cur)

	for i, want := range expected {
		got := NextToken(in, &cur)
		if got != want {
			t.Errorf("input %q, token %d: expected %v (offset %d), got %v (offset %d)",
				input, i, want, want.Offset, got, got.Offset)
		}
	}
}

func TestNextToken_EndOfStream(t *testing.T) {
	assertTokens(t, "$", []Token{
		{Kind: EndOfStream, Line: 1, Col: 1, Offset: 0, Text: "$"},
	})
	assertTokens(t, "", []Token{
		{Kind: EndOfStream, Line: 1, Col: 1, Offset: 0, Text: "$"},
	})
	assertTokens(t, "a\n", []Token{
		{Kind: Identifier, Line: 1, Col: 1, Offset: 0, Text: "a"},
		{Kind: EndOfStream, Line: 2, Col: 1, Offset: 2, Text: "$"},
	})
}

func TestNextToken_EndOfStreamRepeats(t *testing.T) {
	in := strings.NewReader(";")
	var cur Cursor
	Init(&cur)

	NextToken(in, &cur)
	first := NextToken(in, &cur)
	second := NextToken(in, &cur)

	if first.Kind != EndOfStream || second != first {
		t.Errorf("expected repeated EndOfStream, got %v then %v", first, second)
	}
}

func TestNextToken_Greater(t *testing.T) {
	assertTokens(t, ">", []Token{
		{Kind: GreaterThan, Line: 1, Col: 1, Offset: 0, Text: ">"},
		{Kind: EndOfStream, Line: 1, Col: 2, Offset: 1, Text: "$"},
	})
	assertTokens(t, ">=", []Token{
		{Kind: GreaterOrEqual, Line: 1, Col: 1, Offset: 0, Text: ">="},
		{Kind: EndOfStream, Line: 1, Col: 3, Offset: 2, Text: "$"},
	})
	assertTokens(t, ">a", []Token{
		{Kind: GreaterThan, Line: 1, Col: 1, Offset: 0, Text: ">"},
		{Kind: Identifier, Line: 1, Col: 2, Offset: 1, Text: "a"},
		{Kind: EndOfStream, Line: 1, Col: 3, Offset: 2, Text: "$"},
	})
}

func TestNextToken_PushbackLeavesCharacterInStream(t *testing.T) {
	in := strings.NewReader(">a")
	var cur Cursor
	Init(&cur)

	tok := NextToken(in, &cur)
	if tok.Kind != GreaterThan {
		t.Fatalf("expected GreaterThan, got %v", tok)
	}
	if in.Len() != 1 {
		t.Fatalf("expected 1 unread byte, got %d", in.Len())
	}
	if cur.Col != 1 || cur.Offset != 1 {
		t.Errorf("peeked character was counted: cursor %+v", cur)
	}

	b, err := in.ReadByte()
	if err != nil || b != 'a' {
		t.Errorf("expected 'a' to be next in stream, got %q (%v)", b, err)
	}
}

func TestNextToken_SingleCharacters(t *testing.T) {
	tests := []struct {
		input string
		kind  Kind
	}{
		{";", SemiColon},
		{"(", OpenParen},
		{")", CloseParen},
		{",", Comma},
		{".", Dot},
		{"*", Asterisk},
		{"=", Equal},
		{"<", LessThan},
	}

	for _, tt := range tests {
		assertTokens(t, tt.input, []Token{
			{Kind: tt.kind, Line: 1, Col: 1, Offset: 0, Text: tt.input},
			{Kind: EndOfStream, Line: 1, Col: 2, Offset: 1, Text: "$"},
		})
	}
}

func TestNextToken_Operators(t *testing.T) {
	assertTokens(t, "<= <> != < =", []Token{
		{Kind: LessOrEqual, Line: 1, Col: 1, Offset: 0, Text: "<="},
		{Kind: NotEqual, Line: 1, Col: 4, Offset: 3, Text: "<>"},
		{Kind: NotEqual, Line: 1, Col: 7, Offset: 6, Text: "!="},
		{Kind: LessThan, Line: 1, Col: 10, Offset: 9, Text: "<"},
		{Kind: Equal, Line: 1, Col: 12, Offset: 11, Text: "="},
		{Kind: EndOfStream, Line: 1, Col: 13, Offset: 12, Text: "$"},
	})
	assertTokens(t, "!x", []Token{
		{Kind: Unknown, Line: 1, Col: 1, Offset: 0, Text: "!"},
		{Kind: Identifier, Line: 1, Col: 2, Offset: 1, Text: "x"},
	})
	assertTokens(t, "<5", []Token{
		{Kind: LessThan, Line: 1, Col: 1, Offset: 0, Text: "<"},
		{Kind: IntLiteral, Line: 1, Col: 2, Offset: 1, Text: "5"},
	})
}

func TestNextToken_Unknown(t *testing.T) {
	assertTokens(t, "@", []Token{
		{Kind: Unknown, Line: 1, Col: 1, Offset: 0, Text: "@"},
		{Kind: EndOfStream, Line: 1, Col: 2, Offset: 1, Text: "$"},
	})
	assertTokens(t, "_x#", []Token{
		{Kind: Unknown, Line: 1, Col: 1, Offset: 0, Text: "_"},
		{Kind: Identifier, Line: 1, Col: 2, Offset: 1, Text: "x"},
		{Kind: Unknown, Line: 1, Col: 3, Offset: 2, Text: "#"},
	})
}

func TestNextToken_Query(t *testing.T) {
	assertTokens(t, "select * from Movies where ID >= 100;", []Token{
		{Kind: KeywordSelect, Line: 1, Col: 1, Offset: 0, Text: "select"},
		{Kind: Asterisk, Line: 1, Col: 8, Offset: 7, Text: "*"},
		{Kind: KeywordFrom, Line: 1, Col: 10, Offset: 9, Text: "from"},
		{Kind: Identifier, Line: 1, Col: 15, Offset: 14, Text: "Movies"},
		{Kind: KeywordWhere, Line: 1, Col: 22, Offset: 21, Text: "where"},
		{Kind: Identifier, Line: 1, Col: 28, Offset: 27, Text: "ID"},
		{Kind: GreaterOrEqual, Line: 1, Col: 31, Offset: 30, Text: ">="},
		{Kind: IntLiteral, Line: 1, Col: 34, Offset: 33, Text: "100"},
		{Kind: SemiColon, Line: 1, Col: 37, Offset: 36, Text: ";"},
		{Kind: EndOfStream, Line: 1, Col: 38, Offset: 37, Text: "$"},
	})
}

func TestNextToken_LinesAndSentinel(t *testing.T) {
	assertTokens(t, "select\n  title\nfrom t$ ignored", []Token{
		{Kind: KeywordSelect, Line: 1, Col: 1, Offset: 0, Text: "select"},
		{Kind: Identifier, Line: 2, Col: 3, Offset: 9, Text: "title"},
		{Kind: KeywordFrom, Line: 3, Col: 1, Offset: 15, Text: "from"},
		{Kind: Identifier, Line: 3, Col: 6, Offset: 20, Text: "t"},
		{Kind: EndOfStream, Line: 3, Col: 7, Offset: 21, Text: "$"},
	})
	assertTokens(t, "a\r\n\tb", []Token{
		{Kind: Identifier, Line: 1, Col: 1, Offset: 0, Text: "a"},
		{Kind: Identifier, Line: 2, Col: 2, Offset: 4, Text: "b"},
	})
}

func TestNextToken_Numbers(t *testing.T) {
	assertTokens(t, "123 45.67 8. -5 +3.5 - +", []Token{
		{Kind: IntLiteral, Line: 1, Col: 1, Offset: 0, Text: "123"},
		{Kind: DecimalLiteral, Line: 1, Col: 5, Offset: 4, Text: "45.67"},
		{Kind: DecimalLiteral, Line: 1, Col: 11, Offset: 10, Text: "8."},
		{Kind: IntLiteral, Line: 1, Col: 14, Offset: 13, Text: "-5"},
		{Kind: DecimalLiteral, Line: 1, Col: 17, Offset: 16, Text: "+3.5"},
		{Kind: Unknown, Line: 1, Col: 22, Offset: 21, Text: "-"},
		{Kind: Unknown, Line: 1, Col: 24, Offset: 23, Text: "+"},
		{Kind: EndOfStream, Line: 1, Col: 25, Offset: 24, Text: "$"},
	})
	assertTokens(t, "1.2.3", []Token{
		{Kind: DecimalLiteral, Line: 1, Col: 1, Offset: 0, Text: "1.2"},
		{Kind: Dot, Line: 1, Col: 4, Offset: 3, Text: "."},
		{Kind: IntLiteral, Line: 1, Col: 5, Offset: 4, Text: "3"},
	})
	assertTokens(t, "42abc", []Token{
		{Kind: IntLiteral, Line: 1, Col: 1, Offset: 0, Text: "42"},
		{Kind: Identifier, Line: 1, Col: 3, Offset: 2, Text: "abc"},
	})
}

func TestNextToken_Strings(t *testing.T) {
	assertTokens(t, `'hello world' 'it''s' "double" ''`, []Token{
		{Kind: StringLiteral, Line: 1, Col: 1, Offset: 0, Text: "hello world"},
		{Kind: StringLiteral, Line: 1, Col: 15, Offset: 14, Text: "it's"},
		{Kind: StringLiteral, Line: 1, Col: 23, Offset: 22, Text: "double"},
		{Kind: StringLiteral, Line: 1, Col: 32, Offset: 31, Text: ""},
		{Kind: EndOfStream, Line: 1, Col: 34, Offset: 33, Text: "$"},
	})
	assertTokens(t, `'a "b" $c'`, []Token{
		{Kind: StringLiteral, Line: 1, Col: 1, Offset: 0, Text: `a "b" $c`},
		{Kind: EndOfStream, Line: 1, Col: 11, Offset: 10, Text: "$"},
	})
}

func TestNextToken_UnterminatedString(t *testing.T) {
	assertTokens(t, "'abc", []Token{
		{Kind: Unknown, Line: 1, Col: 1, Offset: 0, Text: "'abc"},
		{Kind: EndOfStream, Line: 1, Col: 5, Offset: 4, Text: "$"},
	})
	assertTokens(t, "'ab\ncd'", []Token{
		{Kind: Unknown, Line: 1, Col: 1, Offset: 0, Text: "'ab"},
		{Kind: Identifier, Line: 2, Col: 1, Offset: 4, Text: "cd"},
		{Kind: Unknown, Line: 2, Col: 3, Offset: 6, Text: "'"},
		{Kind: EndOfStream, Line: 2, Col: 4, Offset: 7, Text: "$"},
	})
	assertTokens(t, "'a''", []Token{
		{Kind: Unknown, Line: 1, Col: 1, Offset: 0, Text: "'a''"},
		{Kind: EndOfStream, Line: 1, Col: 5, Offset: 4, Text: "$"},
	})
	assertTokens(t, "\"x\"\"y\nz", []Token{
		{Kind: Unknown, Line: 1, Col: 1, Offset: 0, Text: "\"x\"\"y"},
		{Kind: Identifier, Line: 2, Col: 1, Offset: 6, Text: "z"},
	})
}

func TestToken_StringQuotesText(t *testing.T) {
	tok := Token{Kind: Unknown, Line: 2, Col: 3, Text: "'a\"b"}
	if tok.String() != `Unknown("'a\"b") @ (2, 3)` {
		t.Errorf("unexpected string %q", tok.String())
	}
}

func TestNextToken_Comments(t *testing.T) {
	assertTokens(t, "-- leading comment\nselect", []Token{
		{Kind: KeywordSelect, Line: 2, Col: 1, Offset: 19, Text: "select"},
		{Kind: EndOfStream, Line: 2, Col: 7, Offset: 25, Text: "$"},
	})
	assertTokens(t, "select -- trailing $", []Token{
		{Kind: KeywordSelect, Line: 1, Col: 1, Offset: 0, Text: "select"},
		{Kind: EndOfStream, Line: 1, Col: 21, Offset: 20, Text: "$"},
	})
}

func TestNextToken_KeywordCase(t *testing.T) {
	for _, input := range []string{"select", "SELECT", "SeLeCt"} {
		assertTokens(t, input, []Token{
			{Kind: KeywordSelect, Line: 1, Col: 1, Offset: 0, Text: input},
		})
	}

	assertTokens(t, "title Order_Date2 ORDER", []Token{
		{Kind: Identifier, Line: 1, Col: 1, Offset: 0, Text: "title"},
		{Kind: Identifier, Line: 1, Col: 7, Offset: 6, Text: "Order_Date2"},
		{Kind: KeywordOrder, Line: 1, Col: 19, Offset: 18, Text: "ORDER"},
	})
}

func TestNextToken_Deterministic(t *testing.T) {
	const input = "SELECT avg(Rating) FROM Reviews WHERE Title LIKE 'Star%' LIMIT 10.5;$"

	first := NewString(input).All()
	second := NewString(input).All()

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical scans:\n%v\n%v", first, second)
	}
}

func TestInit_Resets(t *testing.T) {
	cur := Cursor{Line: 7, Col: 3, Offset: 40, newline: true}
	Init(&cur)

	if cur != (Cursor{}) {
		t.Errorf("expected zero cursor, got %+v", cur)
	}

	Init(&cur)
	if cur != (Cursor{}) {
		t.Errorf("expected zero cursor after second Init, got %+v", cur)
	}
}

func assertContractPanic(t *testing.T, name string, fn func()) {
	t.Helper()

	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("%s: expected panic", name)
		}
		err, ok := r.(*scanerr.ScanError)
		if !ok {
			t.Fatalf("%s: expected *ScanError, got %T", name, r)
		}
		if err.Code != scanerr.CodeInvalidArgument || err.Category != scanerr.ErrCategoryContract {
			t.Errorf("%s: unexpected error %v", name, err)
		}
	}()
	fn()
}

func TestContractViolations(t *testing.T) {
	var cur Cursor

	assertContractPanic(t, "Init", func() { Init(nil) })
	assertContractPanic(t, "NextToken stream", func() { NextToken(nil, &cur) })
	assertContractPanic(t, "NextToken cursor", func() { NextToken(strings.NewReader("x"), nil) })
	assertContractPanic(t, "New", func() { New(nil) })
}

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize(strings.NewReader("insert into T values (1, 'x');"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	kinds := make([]Kind, len(tokens))
	for i, tok := range tokens {
		kinds[i] = tok.Kind
	}
	want := []Kind{
		KeywordInsert, KeywordInto, Identifier, KeywordValues, OpenParen,
		IntLiteral, Comma, StringLiteral, CloseParen, SemiColon, EndOfStream,
	}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("expected %v, got %v", want, kinds)
	}
}

func TestTokenize_ReadError(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("select"), iotest.ErrReader(boom))

	tokens, err := Tokenize(r)
	if err == nil {
		t.Fatal("expected read error")
	}
	if !errors.Is(err, boom) {
		t.Errorf("expected error to wrap cause, got %v", err)
	}

	var scanErr *scanerr.ScanError
	if !errors.As(err, &scanErr) || scanErr.Code != scanerr.CodeReadFailed {
		t.Errorf("expected READ_FAILED, got %v", err)
	}

	if len(tokens) != 2 || tokens[0].Kind != KeywordSelect || tokens[1].Kind != EndOfStream {
		t.Errorf("unexpected tokens %v", tokens)
	}
}

func TestScanner_ResetAndCursor(t *testing.T) {
	s := NewString("a b")
	s.Next()
	if c := s.Cursor(); c.Line != 1 || c.Col != 1 {
		t.Errorf("expected cursor at 1:1, got %+v", c)
	}

	s.Reset(iotest.OneByteReader(strings.NewReader("ccc")))
	tok := s.Next()
	if tok.Text != "ccc" || tok.Line != 1 || tok.Col != 1 {
		t.Errorf("unexpected token after Reset: %v", tok)
	}
	if s.Err() != nil {
		t.Errorf("unexpected error: %v", s.Err())
	}
}

func TestToken_String(t *testing.T) {
	tok := Token{Kind: KeywordSelect, Line: 1, Col: 1, Text: "select"}
	if tok.String() != `KeywordSelect("select") @ (1, 1)` {
		t.Errorf("unexpected string %q", tok.String())
	}
}

func TestKind_Predicates(t *testing.T) {
	if !KeywordWhere.IsKeyword() || Identifier.IsKeyword() || Unknown.IsKeyword() {
		t.Error("IsKeyword misclassified")
	}
	if !NotEqual.IsOperator() || SemiColon.IsOperator() {
		t.Error("IsOperator misclassified")
	}
	if !DecimalLiteral.IsLiteral() || Identifier.IsLiteral() {
		t.Error("IsLiteral misclassified")
	}
	if Kind(999).String() != "Kind(999)" {
		t.Errorf("unexpected name %q", Kind(999).String())
	}
}
