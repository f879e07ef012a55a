// Package diagnostics turns Unknown tokens into lexical errors, the part of
// error reporting the scanner leaves to its callers.
package diagnostics

import (
	"errors"
	"fmt"
	"io"

	scanerr "simplesql/pkg/error"
	"simplesql/pkg/scanner"

	"github.com/charmbracelet/lipgloss"
)

var (
	errorLabel    = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	locationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#94A3B8"))
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#06B6D4")).Italic(true)
)

// Bag collects the lexical errors found in one source.
type Bag struct {
	source string
	errs   []*scanerr.ScanError
}

// NewBag creates an empty bag for the named source.
func NewBag(source string) *Bag {
	return &Bag{source: source}
}

// Check returns a bag holding one UNKNOWN_TOKEN error per Unknown token.
func Check(source string, tokens []scanner.Token) *Bag {
	b := NewBag(source)
	for _, tok := range tokens {
		b.Add(tok)
	}
	return b
}

// Add records tok when it is Unknown and ignores it otherwise.
func (b *Bag) Add(tok scanner.Token) {
	if tok.Kind != scanner.Unknown {
		return
	}
	err := scanerr.UnknownToken(tok.Text, tok.Line, tok.Col)
	err.Component = b.source
	b.errs = append(b.errs, err)
}

// HasErrors reports whether any Unknown token was recorded.
func (b *Bag) HasErrors() bool {
	return len(b.errs) > 0
}

// Errors returns the recorded errors in source order.
func (b *Bag) Errors() []*scanerr.ScanError {
	return b.errs
}

// Err joins the recorded errors, or returns nil when there are none.
func (b *Bag) Err() error {
	if len(b.errs) == 0 {
		return nil
	}
	errs := make([]error, len(b.errs))
	for i, e := range b.errs {
		errs[i] = e
	}
	return errors.Join(errs...)
}

// Emit writes one line per error in source:line:col form, followed by the
// hint, and returns the first write error.
func (b *Bag) Emit(w io.Writer) error {
	for _, e := range b.errs {
		loc := fmt.Sprintf("%s:%d:%d:", b.source, e.Line, e.Col)
		_, err := fmt.Fprintf(w, "%s %s %s %s\n  %s\n",
			locationStyle.Render(loc),
			errorLabel.Render("syntax error:"),
			e.Message,
			e.Detail,
			hintStyle.Render(e.Hint),
		)
		if err != nil {
			return err
		}
	}
	return nil
}
