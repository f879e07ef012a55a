package ui

import (
	"fmt"
	"strconv"
	"strings"

	"simplesql/pkg/diagnostics"
	"simplesql/pkg/scanner"
	"simplesql/pkg/ui/base"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const textColumnWidth = 32

// Model is the interactive token explorer: an editor whose contents are
// re-scanned on every change, a highlighted preview and a token table.
type Model struct {
	editor      textarea.Model
	tokenTable  table.Model
	help        help.Model
	highlighter *SQLHighlighter

	source   string
	tokens   []scanner.Token
	problems *diagnostics.Bag

	width    int
	height   int
	showHelp bool
	keys     keyMap
}

// NewModel creates an explorer pre-filled with src.
func NewModel(src string) Model {
	ta := textarea.New()
	ta.Placeholder = "Type SimpleSQL here..."
	ta.CharLimit = 0
	ta.ShowLineNumbers = true
	ta.SetHeight(6)
	ta.Focus()

	ta.FocusedStyle.CursorLine = lipgloss.NewStyle().Background(bgLight)
	ta.FocusedStyle.Placeholder = lipgloss.NewStyle().Foreground(textMuted)
	ta.FocusedStyle.Text = lipgloss.NewStyle().Foreground(textPrimary)
	ta.FocusedStyle.LineNumber = lipgloss.NewStyle().Foreground(textMuted)

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Line", Width: 5},
			{Title: "Col", Width: 5},
			{Title: "Kind", Width: 18},
			{Title: "Text", Width: textColumnWidth},
		}),
		table.WithFocused(false),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(primaryColor).
		BorderBottom(true).
		Bold(true).
		Foreground(primaryColor)
	s.Selected = s.Selected.
		Foreground(bgDark).
		Background(secondaryColor).
		Bold(false)
	t.SetStyles(s)

	m := Model{
		editor:      ta,
		tokenTable:  t,
		help:        help.New(),
		highlighter: NewSQLHighlighter(),
		keys:        keys,
	}
	m.editor.SetValue(src)
	m.rescan()
	return m
}

// Tokens returns the tokens of the current editor contents.
func (m Model) Tokens() []scanner.Token {
	return m.tokens
}

func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Clear):
			m.editor.SetValue("")
			m.rescan()
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
			return m, nil

		case key.Matches(msg, m.keys.ToggleFocus):
			if m.editor.Focused() {
				m.editor.Blur()
				m.tokenTable.Focus()
			} else {
				m.tokenTable.Blur()
				cmds = append(cmds, m.editor.Focus())
			}
			return m, tea.Batch(cmds...)
		}
	}

	var cmd tea.Cmd
	if m.editor.Focused() {
		m.editor, cmd = m.editor.Update(msg)
		cmds = append(cmds, cmd)
		if m.editor.Value() != m.source {
			m.rescan()
		}
	} else {
		m.tokenTable, cmd = m.tokenTable.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// rescan tokenizes the editor contents and refreshes the table.
func (m *Model) rescan() {
	m.source = m.editor.Value()
	m.tokens = scanner.NewString(m.source).All()
	m.problems = diagnostics.Check("editor", m.tokens)
	m.tokenTable.SetRows(tokenRows(m.tokens))
}

func tokenRows(tokens []scanner.Token) []table.Row {
	rows := make([]table.Row, len(tokens))
	for i, tok := range tokens {
		rows[i] = table.Row{
			strconv.Itoa(tok.Line),
			strconv.Itoa(tok.Col),
			tok.Kind.String(),
			base.TruncateString(strconv.Quote(tok.Text), textColumnWidth),
		}
	}
	return rows
}

func (m Model) View() string {
	sections := []string{
		titleStyle.Render("SimpleSQL Token Explorer"),
		labelStyle.Render("Source"),
		editorStyle.Render(m.editor.View()),
		labelStyle.Render("Highlighted"),
		previewStyle.Render(m.highlighter.Highlight(m.source)),
		labelStyle.Render("Tokens"),
		m.tokenTable.View(),
		m.renderStatusBar(),
	}

	if m.showHelp {
		sections = append(sections, m.renderHelp())
	}

	return appStyle.Render(strings.Join(sections, "\n"))
}

func (m Model) renderHelp() string {
	helpText := m.help.FullHelpView([][]key.Binding{
		{
			m.keys.Clear,
			m.keys.ToggleFocus,
			m.keys.ScrollUp,
			m.keys.ScrollDown,
			m.keys.Help,
			m.keys.Quit,
		},
	})

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(primaryColor).
		Padding(1, 2).
		Render(helpText)
}

func (m Model) renderStatusBar() string {
	unknown := len(m.problems.Errors())

	status := lipgloss.NewStyle().
		Foreground(accentColor).
		Render(fmt.Sprintf("● %d tokens", len(m.tokens)))

	if unknown > 0 {
		first := m.problems.Errors()[0]
		status += lipgloss.NewStyle().
			Foreground(warningColor).
			Render(fmt.Sprintf(" | %d unknown (first at %d:%d)", unknown, first.Line, first.Col))
	}

	status += lipgloss.NewStyle().
		Foreground(textMuted).
		Render(" | Press Ctrl+H for help")

	return statusBarStyle.
		Width(base.Max(m.width-4, 0)).
		Render(status)
}

// updateLayout adjusts component sizes based on window size
func (m *Model) updateLayout() {
	editorHeight := 6
	tableHeight := m.height - editorHeight - 16 // header, preview and status bar

	m.editor.SetWidth(base.Max(m.width-6, 10))
	m.tokenTable.SetHeight(base.Max(tableHeight, 3))
}
