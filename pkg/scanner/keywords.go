package scanner

import "strings"

// keywords is the reserved-word table, in alphabetical order.
var keywords = [...]struct {
	word string
	kind Kind
}{
	{"asc", KeywordAsc},
	{"avg", KeywordAvg},
	{"by", KeywordBy},
	{"count", KeywordCount},
	{"delete", KeywordDelete},
	{"desc", KeywordDesc},
	{"from", KeywordFrom},
	{"inner", KeywordInner},
	{"insert", KeywordInsert},
	{"intersect", KeywordIntersect},
	{"into", KeywordInto},
	{"join", KeywordJoin},
	{"like", KeywordLike},
	{"limit", KeywordLimit},
	{"max", KeywordMax},
	{"min", KeywordMin},
	{"on", KeywordOn},
	{"order", KeywordOrder},
	{"select", KeywordSelect},
	{"set", KeywordSet},
	{"sum", KeywordSum},
	{"union", KeywordUnion},
	{"update", KeywordUpdate},
	{"values", KeywordValues},
	{"where", KeywordWhere},
}

// LookupKeyword matches word against the reserved words, ignoring case.
// It returns Identifier and false when word is not reserved.
func LookupKeyword(word string) (Kind, bool) {
	for _, kw := range keywords {
		if strings.EqualFold(kw.word, word) {
			return kw.kind, true
		}
	}
	return Identifier, false
}

// Keywords returns the reserved words in alphabetical order.
func Keywords() []string {
	words := make([]string, len(keywords))
	for i, kw := range keywords {
		words[i] = kw.word
	}
	return words
}
