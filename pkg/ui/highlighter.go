package ui

import (
	"strings"

	"simplesql/pkg/scanner"

	"github.com/charmbracelet/lipgloss"
)

// Class is the highlighting category of a span of source text.
type Class int

const (
	ClassPlain Class = iota
	ClassKeyword
	ClassFunction
	ClassIdentifier
	ClassNumber
	ClassString
	ClassOperator
	ClassPunctuation
	ClassComment
	ClassUnknown
	ClassSentinel
)

// aggregate keywords are styled as functions
var functions = map[scanner.Kind]bool{
	scanner.KeywordAvg:   true,
	scanner.KeywordCount: true,
	scanner.KeywordMax:   true,
	scanner.KeywordMin:   true,
	scanner.KeywordSum:   true,
}

// Segment is a classified span of the highlighted source.
type Segment struct {
	Text  string
	Class Class
}

// SQLHighlighter provides syntax highlighting for SimpleSQL using the scanner's
// own classification, so the colours always agree with what a parser sees.
type SQLHighlighter struct {
	styles map[Class]lipgloss.Style
}

func NewSQLHighlighter() *SQLHighlighter {
	return &SQLHighlighter{
		styles: map[Class]lipgloss.Style{
			ClassPlain: lipgloss.NewStyle(),
			ClassKeyword: lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FF79C6")).
				Bold(true),
			ClassFunction: lipgloss.NewStyle().
				Foreground(lipgloss.Color("#8BE9FD")).
				Bold(true),
			ClassIdentifier: lipgloss.NewStyle().
				Foreground(textPrimary),
			ClassNumber: lipgloss.NewStyle().
				Foreground(lipgloss.Color("#BD93F9")),
			ClassString: lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F1FA8C")),
			ClassOperator: lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFB86C")),
			ClassPunctuation: lipgloss.NewStyle().
				Foreground(textSecondary),
			ClassComment: lipgloss.NewStyle().
				Foreground(lipgloss.Color("#6272A4")).
				Italic(true),
			ClassUnknown: lipgloss.NewStyle().
				Foreground(errorColor).
				Underline(true),
			ClassSentinel: lipgloss.NewStyle().
				Foreground(secondaryColor).
				Bold(true),
		},
	}
}

// Highlight renders sql with every segment styled. Concatenating the
// unstyled segments gives back sql unchanged.
func (h *SQLHighlighter) Highlight(sql string) string {
	var b strings.Builder
	for _, seg := range h.Segments(sql) {
		if seg.Class == ClassPlain {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString(h.styles[seg.Class].Render(seg.Text))
	}
	return b.String()
}

// Segments splits sql into classified spans. Whitespace between tokens is
// ClassPlain, "--" comments are ClassComment, and anything after a '$'
// sentinel is ClassComment since the scanner never reads it.
func (h *SQLHighlighter) Segments(sql string) []Segment {
	var segs []Segment
	s := scanner.NewString(sql)
	prev := 0

	for {
		tok := s.Next()
		end := s.Cursor().Offset

		if tok.Offset > prev {
			segs = appendGap(segs, sql[prev:tok.Offset])
		}

		if tok.Kind == scanner.EndOfStream {
			if end > tok.Offset {
				segs = append(segs, Segment{Text: sql[tok.Offset:end], Class: ClassSentinel})
			}
			if end < len(sql) {
				segs = append(segs, Segment{Text: sql[end:], Class: ClassComment})
			}
			return segs
		}

		segs = append(segs, Segment{Text: sql[tok.Offset:end], Class: classify(tok.Kind)})
		prev = end
	}
}

func classify(k scanner.Kind) Class {
	switch {
	case functions[k]:
		return ClassFunction
	case k.IsKeyword():
		return ClassKeyword
	case k.IsOperator():
		return ClassOperator
	case k == scanner.Identifier:
		return ClassIdentifier
	case k == scanner.IntLiteral || k == scanner.DecimalLiteral:
		return ClassNumber
	case k == scanner.StringLiteral:
		return ClassString
	case k == scanner.Unknown:
		return ClassUnknown
	default:
		return ClassPunctuation
	}
}

// appendGap splits skipped text into whitespace and line comments.
func appendGap(segs []Segment, gap string) []Segment {
	for gap != "" {
		i := strings.Index(gap, "--")
		if i < 0 {
			return append(segs, Segment{Text: gap, Class: ClassPlain})
		}
		if i > 0 {
			segs = append(segs, Segment{Text: gap[:i], Class: ClassPlain})
		}
		gap = gap[i:]
		j := strings.IndexByte(gap, '\n')
		if j < 0 {
			j = len(gap)
		}
		segs = append(segs, Segment{Text: gap[:j], Class: ClassComment})
		gap = gap[j:]
	}
	return segs
}
