package scanner

import "fmt"

// Kind classifies a Token.
type Kind int

const (
	EndOfStream Kind = iota
	SemiColon
	GreaterThan
	GreaterOrEqual
	LessThan
	LessOrEqual
	NotEqual
	Equal
	OpenParen
	CloseParen
	Comma
	Dot
	Asterisk
	Identifier
	IntLiteral
	DecimalLiteral
	StringLiteral
	Unknown

	KeywordAsc
	KeywordAvg
	KeywordBy
	KeywordCount
	KeywordDelete
	KeywordDesc
	KeywordFrom
	KeywordInner
	KeywordInsert
	KeywordIntersect
	KeywordInto
	KeywordJoin
	KeywordLike
	KeywordLimit
	KeywordMax
	KeywordMin
	KeywordOn
	KeywordOrder
	KeywordSelect
	KeywordSet
	KeywordSum
	KeywordUnion
	KeywordUpdate
	KeywordValues
	KeywordWhere
)

var kindNames = map[Kind]string{
	EndOfStream:      "EndOfStream",
	SemiColon:        "SemiColon",
	GreaterThan:      "GreaterThan",
	GreaterOrEqual:   "GreaterOrEqual",
	LessThan:         "LessThan",
	LessOrEqual:      "LessOrEqual",
	NotEqual:         "NotEqual",
	Equal:            "Equal",
	OpenParen:        "OpenParen",
	CloseParen:       "CloseParen",
	Comma:            "Comma",
	Dot:              "Dot",
	Asterisk:         "Asterisk",
	Identifier:       "Identifier",
	IntLiteral:       "IntLiteral",
	DecimalLiteral:   "DecimalLiteral",
	StringLiteral:    "StringLiteral",
	Unknown:          "Unknown",
	KeywordAsc:       "KeywordAsc",
	KeywordAvg:       "KeywordAvg",
	KeywordBy:        "KeywordBy",
	KeywordCount:     "KeywordCount",
	KeywordDelete:    "KeywordDelete",
	KeywordDesc:      "KeywordDesc",
	KeywordFrom:      "KeywordFrom",
	KeywordInner:     "KeywordInner",
	KeywordInsert:    "KeywordInsert",
	KeywordIntersect: "KeywordIntersect",
	KeywordInto:      "KeywordInto",
	KeywordJoin:      "KeywordJoin",
	KeywordLike:      "KeywordLike",
	KeywordLimit:     "KeywordLimit",
	KeywordMax:       "KeywordMax",
	KeywordMin:       "KeywordMin",
	KeywordOn:        "KeywordOn",
	KeywordOrder:     "KeywordOrder",
	KeywordSelect:    "KeywordSelect",
	KeywordSet:       "KeywordSet",
	KeywordSum:       "KeywordSum",
	KeywordUnion:     "KeywordUnion",
	KeywordUpdate:    "KeywordUpdate",
	KeywordValues:    "KeywordValues",
	KeywordWhere:     "KeywordWhere",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsKeyword reports whether k is one of the reserved-word kinds.
func (k Kind) IsKeyword() bool {
	return k >= KeywordAsc && k <= KeywordWhere
}

// IsOperator reports whether k is a comparison operator.
func (k Kind) IsOperator() bool {
	return k >= GreaterThan && k <= Equal
}

// IsLiteral reports whether k is a numeric or string literal.
func (k Kind) IsLiteral() bool {
	return k == IntLiteral || k == DecimalLiteral || k == StringLiteral
}

// Token is one classified lexeme.
//
// Line and Col are 1-based and locate the first character of the lexeme.
// Offset is the byte offset of that character from the start of the stream.
// Text is the lexeme as written, except for string literals, whose quotes are
// stripped, and EndOfStream, whose text is always "$".
type Token struct {
	Kind   Kind
	Line   int
	Col    int
	Offset int
	Text   string
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q) @ (%d, %d)", t.Kind, t.Text, t.Line, t.Col)
}
