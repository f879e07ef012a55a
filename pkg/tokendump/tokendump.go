// Package tokendump writes scanned tokens in the formats offered by the
// command-line driver.
package tokendump

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"simplesql/pkg/scanner"
	"simplesql/pkg/ui/base"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Format selects the output layout.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// ParseFormat validates a format name given on the command line.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatTable:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json or table)", s)
	}
}

const (
	positionWidth = 9
	kindWidth     = 18
)

// Writer formats tokens onto an io.Writer. Text and JSON rows are written as
// tokens arrive; the table layout is rendered by Flush.
type Writer struct {
	w       io.Writer
	format  Format
	enc     *json.Encoder
	pending []scanner.Token
}

// NewWriter creates a Writer for the given format.
func NewWriter(w io.Writer, format Format) *Writer {
	d := &Writer{w: w, format: format}
	if format == FormatJSON {
		d.enc = json.NewEncoder(w)
	}
	return d
}

type jsonToken struct {
	Kind   string `json:"kind"`
	Line   int    `json:"line"`
	Col    int    `json:"col"`
	Offset int    `json:"offset"`
	Text   string `json:"text"`
}

// Write emits one token.
func (d *Writer) Write(tok scanner.Token) error {
	switch d.format {
	case FormatJSON:
		return d.enc.Encode(jsonToken{
			Kind:   tok.Kind.String(),
			Line:   tok.Line,
			Col:    tok.Col,
			Offset: tok.Offset,
			Text:   tok.Text,
		})
	case FormatTable:
		d.pending = append(d.pending, tok)
		return nil
	default:
		pos := fmt.Sprintf("%d:%d", tok.Line, tok.Col)
		_, err := fmt.Fprintf(d.w, "%s %s '%s'\n",
			base.PadString(pos, positionWidth),
			base.PadString(tok.Kind.String(), kindWidth),
			tok.Text)
		return err
	}
}

// WriteAll emits tokens in order and flushes.
func (d *Writer) WriteAll(tokens []scanner.Token) error {
	for _, tok := range tokens {
		if err := d.Write(tok); err != nil {
			return err
		}
	}
	return d.Flush()
}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED"))
)

// Flush renders buffered table rows. It is a no-op for other formats.
func (d *Writer) Flush() error {
	if d.format != FormatTable || len(d.pending) == 0 {
		return nil
	}

	rows := make([][]string, len(d.pending))
	for i, tok := range d.pending {
		rows[i] = []string{
			strconv.Itoa(tok.Line),
			strconv.Itoa(tok.Col),
			tok.Kind.String(),
			tok.Text,
		}
	}
	d.pending = d.pending[:0]

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("LINE", "COL", "KIND", "TEXT").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	_, err := fmt.Fprintln(d.w, t.Render())
	return err
}
