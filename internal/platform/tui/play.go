package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-gridlock/internal/core"
	"github.com/vovakirdan/tui-gridlock/internal/level"
	"github.com/vovakirdan/tui-gridlock/internal/session"
)

// Progress records puzzle attempts and completions. Satisfied by
// storage.Store; nil disables persistence.
type Progress interface {
	RecordAttempt(levelID string) error
	MarkCompleted(levelID string) error
}

// playFinishedMsg is emitted when the player leaves a level.
type playFinishedMsg struct{}

// PlayModel is the interactive board for a single level.
type PlayModel struct {
	sess     *session.Session
	progress Progress
	cellSize int
	keys     PlayKeyMap
	help     help.Model
	theme    Theme

	cursor  core.Coord
	pointer session.Pointer

	width  int
	height int

	standalone bool
	quitting   bool
}

// NewPlayModel creates a play model for the given level. When standalone
// is true, Back quits the program instead of returning to the picker.
func NewPlayModel(lvl level.Level, cellSize int, progress Progress, standalone bool) PlayModel {
	if cellSize <= 0 {
		cellSize = session.DefaultCellSize
	}
	m := PlayModel{
		sess:       session.New(lvl, cellSize),
		progress:   progress,
		cellSize:   cellSize,
		keys:       DefaultPlayKeyMap(),
		help:       help.New(),
		theme:      DefaultTheme(),
		standalone: standalone,
	}
	if len(lvl.Cells) > 0 {
		m.cursor = lvl.Cells[0].Pos
	}
	return m
}

// Init implements tea.Model.
func (m PlayModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

		case key.Matches(msg, m.keys.Back):
			if m.standalone {
				m.quitting = true
				return m, tea.Quit
			}
			return m, func() tea.Msg { return playFinishedMsg{} }

		case key.Matches(msg, m.keys.Reset):
			m.sess.Reset()
			m.pointer = session.Pointer{}
			return m, nil

		case key.Matches(msg, m.keys.Undo):
			if m.sess.Undo() {
				m.syncAfterHistory()
			}
			return m, nil

		case key.Matches(msg, m.keys.Redo):
			if m.sess.Redo() {
				m.syncAfterHistory()
			}
			return m, nil
		}

		switch m.sess.State() {
		case session.StateSelecting:
			return m.updateSelecting(msg)
		case session.StateMoving:
			return m.updateMoving(msg)
		case session.StateSolved:
			// Any key beyond the global ones leaves the solved overlay up.
			return m, nil
		}
	}
	return m, nil
}

func (m PlayModel) updateSelecting(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	win := m.window()
	switch {
	case key.Matches(msg, m.keys.Up):
		m.cursor.Y = core.Clamp(m.cursor.Y-1, win.MinY, win.MaxY)
	case key.Matches(msg, m.keys.Down):
		m.cursor.Y = core.Clamp(m.cursor.Y+1, win.MinY, win.MaxY)
	case key.Matches(msg, m.keys.Left):
		m.cursor.X = core.Clamp(m.cursor.X-1, win.MinX, win.MaxX)
	case key.Matches(msg, m.keys.Right):
		m.cursor.X = core.Clamp(m.cursor.X+1, win.MinX, win.MaxX)
	case key.Matches(msg, m.keys.Toggle):
		m.sess.ToggleCell(m.cursor)
	case key.Matches(msg, m.keys.Confirm):
		if m.sess.ConfirmSelection() {
			// Anchor a synthetic pointer so arrow keys can step the
			// selection one cell at a time.
			m.pointer = session.Pointer{}
			m.sess.BeginDrag(m.pointer)
		}
	}
	return m, nil
}

func (m PlayModel) updateMoving(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := m.cellSize
	switch {
	case key.Matches(msg, m.keys.Up):
		m.pointer.Y -= step
		m.sess.UpdateDrag(m.pointer)
	case key.Matches(msg, m.keys.Down):
		m.pointer.Y += step
		m.sess.UpdateDrag(m.pointer)
	case key.Matches(msg, m.keys.Left):
		m.pointer.X -= step
		m.sess.UpdateDrag(m.pointer)
	case key.Matches(msg, m.keys.Right):
		m.pointer.X += step
		m.sess.UpdateDrag(m.pointer)
	case key.Matches(msg, m.keys.Confirm):
		solved := m.sess.EndDrag()
		m.pointer = session.Pointer{}
		if m.progress != nil {
			// MarkCompleted counts the solving drop itself, so only
			// failed drops bump the attempt counter here.
			if solved {
				_ = m.progress.MarkCompleted(m.sess.Level().ID)
			} else {
				_ = m.progress.RecordAttempt(m.sess.Level().ID)
			}
		}
	}
	return m, nil
}

// syncAfterHistory discards the synthetic pointer and, when history put
// the session back into movement, re-anchors the drag at the restored
// positions.
func (m *PlayModel) syncAfterHistory() {
	m.pointer = session.Pointer{}
	if m.sess.State() == session.StateMoving {
		m.sess.BeginDrag(m.pointer)
	}
}

// View implements tea.Model.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}
	var b strings.Builder

	lvl := m.sess.Level()
	b.WriteString(m.theme.HUDTitle.Render(fmt.Sprintf("%s  %s", lvl.ID, lvl.Name)))
	b.WriteString("\n")
	if lvl.Instruction != "" {
		b.WriteString(m.theme.HUDControls.Render(lvl.Instruction))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderBoard())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	view := b.String()
	if m.sess.Solved() {
		return m.renderSolvedOverlay(view)
	}
	return view
}

// window is the rectangle of board positions a drag can reach, which is
// the extent a player needs to see.
func (m PlayModel) window() core.Rect {
	lvl := m.sess.Level()
	return core.Rect{
		MinX: -lvl.Margins.Left,
		MinY: -lvl.Margins.Top,
		MaxX: lvl.Width - lvl.Margins.Right - 1,
		MaxY: lvl.Height - lvl.Margins.Bottom - 1,
	}
}

func (m PlayModel) renderBoard() string {
	moving := m.sess.State() == session.StateMoving
	off := m.sess.DragOffset()

	draw := make(map[core.Coord]boardCell, m.sess.Grid().Len())
	for _, c := range m.sess.Grid().Cells() {
		pos := c.Pos
		ghost := false
		if moving && c.Selected {
			pos = pos.Add(off)
			ghost = off != core.Delta{}
		}
		draw[pos] = boardCell{cell: c, ghost: ghost}
	}

	win := m.window()
	var b strings.Builder
	for y := win.MinY; y <= win.MaxY; y++ {
		for x := win.MinX; x <= win.MaxX; x++ {
			pos := core.C(x, y)
			glyph, style := m.cellGlyph(draw[pos])
			if m.sess.State() == session.StateSelecting && pos == m.cursor {
				style = style.Inherit(m.theme.Cursor)
			}
			b.WriteString(style.Render(glyph))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// boardCell is a cell resolved to its rendered board position,
// including the drag ghost offset.
type boardCell struct {
	cell  *core.Cell
	ghost bool
}

func (m PlayModel) cellGlyph(d boardCell) (string, lipgloss.Style) {
	if d.cell == nil {
		return "··", m.theme.EmptyCell
	}

	var glyph string
	var style lipgloss.Style
	switch d.cell.Kind {
	case core.KindDark:
		glyph, style = "██", m.theme.DarkCell
	case core.KindSea:
		glyph, style = "~~", m.theme.SeaCell
	case core.KindPyramid:
		glyph, style = "▲▲", m.theme.PyramidCell
	default:
		glyph, style = "??", m.theme.EmptyCell
	}
	if d.ghost {
		style = m.theme.GhostCell
	} else if d.cell.Selected {
		style = m.theme.SelectedCell
	}
	return glyph, style
}

func (m PlayModel) renderStatus() string {
	var parts []string

	state := m.sess.State().String()
	parts = append(parts, m.theme.HUDValue.Render("state: "+state))

	failed := m.sess.FailedConstraints()
	failedSet := make(map[string]bool, len(failed))
	for _, name := range failed {
		failedSet[name] = true
	}
	for _, name := range m.sess.Level().Constraints {
		if failedSet[name] {
			parts = append(parts, m.theme.ConstraintBad.Render("✗ "+name))
		} else {
			parts = append(parts, m.theme.ConstraintOK.Render("✓ "+name))
		}
	}

	if n := m.sess.Grid().SelectionCount(); n > 0 {
		parts = append(parts, m.theme.HUDValue.Render(fmt.Sprintf("selected: %d", n)))
	}

	return strings.Join(parts, "  ")
}

func (m PlayModel) renderSolvedOverlay(base string) string {
	box := m.theme.OverlayBorder.Render(
		m.theme.OverlayTitle.Render("Solved!") + "\n\n" +
			m.theme.OverlayText.Render("esc back · q quit"),
	)
	if m.width == 0 || m.height == 0 {
		return base + "\n" + box
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}
