package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-gridlock/internal/storage"
)

// ProgressModel shows recorded completions in a scrollable table.
type ProgressModel struct {
	table    table.Model
	total    int
	theme    Theme
	quitKey  key.Binding
	quitting bool
}

// NewProgressModel creates the completions view. total is the number of
// levels installed, used for the solved counter.
func NewProgressModel(completions []storage.Completion, total int) ProgressModel {
	columns := []table.Column{
		{Title: "Level", Width: 8},
		{Title: "Solved at", Width: 20},
		{Title: "Attempts", Width: 8},
	}
	rows := make([]table.Row, 0, len(completions))
	for _, c := range completions {
		rows = append(rows, table.Row{
			c.LevelID,
			c.SolvedAt.Format("2006-01-02 15:04"),
			fmt.Sprintf("%d", c.Attempts),
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return ProgressModel{
		table: t,
		total: total,
		theme: DefaultTheme(),
		quitKey: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Init implements tea.Model.
func (m ProgressModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m ProgressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && key.Matches(k, m.quitKey) {
		m.quitting = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m ProgressModel) View() string {
	if m.quitting {
		return ""
	}
	header := m.theme.HUDTitle.Render(
		fmt.Sprintf("Progress  %d/%d solved", len(m.table.Rows()), m.total))
	return header + "\n\n" + m.table.View() + "\n"
}
