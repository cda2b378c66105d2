// Package ui renders the diagnostic list as an interactive terminal
// view.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"reforge/internal/diag"
	"reforge/internal/diagfmt"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	warningStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("3"))
	selectedStyle = lipgloss.NewStyle().Reverse(true)
	detailStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	hintStyle     = lipgloss.NewStyle().Faint(true)
)

type keyMap struct {
	Up   key.Binding
	Down key.Binding
	Quit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k")),
		Down: key.NewBinding(key.WithKeys("down", "j")),
		Quit: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

type listModel struct {
	title   string
	records []diag.Record
	index   int
	width   int
	height  int
	keys    keyMap
}

// NewListModel returns a Bubble Tea model that renders the diagnostic
// list with the first record selected.
func NewListModel(title string, records []diag.Record) tea.Model {
	return &listModel{
		title:   title,
		records: records,
		keys:    defaultKeyMap(),
		width:   80,
		height:  24,
	}
}

func (m *listModel) Init() tea.Cmd {
	return nil
}

func (m *listModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.index > 0 {
				m.index--
			}
		case key.Matches(msg, m.keys.Down):
			if m.index < len(m.records)-1 {
				m.index++
			}
		}
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
		}
		if msg.Height > 0 {
			m.height = msg.Height
		}
	}
	return m, nil
}

func (m *listModel) View() string {
	var b strings.Builder

	errs, warns := diagfmt.Count(m.records)
	b.WriteString(titleStyle.Render(fmt.Sprintf("%s — %d error(s), %d warning(s)", m.title, errs, warns)))
	b.WriteString("\n\n")

	if len(m.records) == 0 {
		b.WriteString(detailStyle.Render("no problems reported"))
		b.WriteString("\n")
		return b.String()
	}

	for i, rec := range m.records {
		line := fmt.Sprintf("%s %s  %s", severityBadge(rec.Severity), rec.Location(), firstLine(rec.Message))
		line = runewidth.Truncate(line, m.width-2, "…")
		if i == m.index {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(detailStyle.Render(diagfmt.ExpandTabs(m.records[m.index].Message, diagfmt.DefaultTabWidth)))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("↑/↓ select · q quit"))
	b.WriteString("\n")
	return b.String()
}

func severityBadge(sev diag.Severity) string {
	switch sev {
	case diag.SevWarning:
		return warningStyle.Render("WARN ")
	default:
		return errorStyle.Render("ERROR")
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
