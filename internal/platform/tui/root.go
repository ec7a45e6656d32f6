package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-gridlock/internal/level"
)

// CompletionLookup reports whether a level has been solved before.
// Satisfied by storage.Store.
type CompletionLookup interface {
	IsCompleted(levelID string) (bool, error)
}

// RootModel drives the picker to play flow over one terminal session.
type RootModel struct {
	levels   []level.Level
	progress Progress
	lookup   CompletionLookup
	cellSize int

	picker PickerModel
	play   *PlayModel
	width  int
	height int
}

// NewRootModel creates the top level model. progress and lookup may be
// nil when persistence is disabled.
func NewRootModel(levels []level.Level, cellSize int, progress Progress, lookup CompletionLookup) RootModel {
	return RootModel{
		levels:   levels,
		progress: progress,
		lookup:   lookup,
		cellSize: cellSize,
		picker:   NewPickerModel(levels, completionSet(levels, lookup)),
	}
}

func completionSet(levels []level.Level, lookup CompletionLookup) map[string]bool {
	done := make(map[string]bool, len(levels))
	if lookup == nil {
		return done
	}
	for _, lvl := range levels {
		ok, err := lookup.IsCompleted(lvl.ID)
		if err == nil && ok {
			done[lvl.ID] = true
		}
	}
	return done
}

// Init implements tea.Model.
func (m RootModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case levelChosenMsg:
		play := NewPlayModel(msg.lvl, m.cellSize, m.progress, false)
		m.play = &play
		return m.forwardSize()

	case playFinishedMsg:
		m.play = nil
		m.picker = NewPickerModel(m.levels, completionSet(m.levels, m.lookup))
		return m.forwardSize()
	}

	if m.play != nil {
		next, cmd := m.play.Update(msg)
		play := next.(PlayModel)
		m.play = &play
		return m, cmd
	}
	next, cmd := m.picker.Update(msg)
	m.picker = next.(PickerModel)
	return m, cmd
}

// forwardSize replays the last known terminal size into the freshly
// swapped child model.
func (m RootModel) forwardSize() (tea.Model, tea.Cmd) {
	if m.width == 0 && m.height == 0 {
		return m, nil
	}
	return m.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
}

// View implements tea.Model.
func (m RootModel) View() string {
	if m.play != nil {
		return m.play.View()
	}
	return m.picker.View()
}
