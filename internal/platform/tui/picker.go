package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-gridlock/internal/level"
)

// levelChosenMsg is emitted when the player picks a level to play.
type levelChosenMsg struct {
	lvl level.Level
}

// PickerModel lists available levels grouped by pack.
type PickerModel struct {
	levels    []level.Level
	completed map[string]bool
	keys      PickerKeyMap
	help      help.Model
	theme     Theme

	cursor   int
	width    int
	height   int
	quitting bool
}

// NewPickerModel creates a level picker. The completed set marks level
// IDs that have been solved before.
func NewPickerModel(levels []level.Level, completed map[string]bool) PickerModel {
	return PickerModel{
		levels:    levels,
		completed: completed,
		keys:      DefaultPickerKeyMap(),
		help:      help.New(),
		theme:     DefaultTheme(),
	}
}

// Init implements tea.Model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.levels)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Select):
			if len(m.levels) > 0 {
				lvl := m.levels[m.cursor]
				return m, func() tea.Msg { return levelChosenMsg{lvl: lvl} }
			}
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m PickerModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder
	b.WriteString(m.theme.MenuTitle.Render("gridlock"))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(m.theme.MenuItemNormal.Render("no levels found"))
		b.WriteString("\n")
	}

	pack := ""
	for i, lvl := range m.levels {
		if p := lvl.Pack(); p != pack {
			if pack != "" {
				b.WriteString("\n")
			}
			pack = p
			b.WriteString(m.theme.HUDControls.Render("pack " + p))
			b.WriteString("\n")
		}

		mark := " "
		if m.completed[lvl.ID] {
			mark = "✓"
		}
		line := fmt.Sprintf("%s %-6s %s", mark, lvl.ID, lvl.Name)

		style := m.theme.MenuItemNormal
		if i == m.cursor {
			style = m.theme.MenuItemActive
			line = "> " + line
		} else {
			line = "  " + line
		}
		if m.completed[lvl.ID] && i != m.cursor {
			style = m.theme.MenuItemDone
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
