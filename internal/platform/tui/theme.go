package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all configurable visual styles for the puzzle board.
type Theme struct {
	// Cell styles
	DarkCell    lipgloss.Style
	SeaCell     lipgloss.Style
	PyramidCell lipgloss.Style
	EmptyCell   lipgloss.Style

	// Selection and drag feedback
	SelectedCell lipgloss.Style
	GhostCell    lipgloss.Style
	Cursor       lipgloss.Style

	// HUD styles
	HUDTitle      lipgloss.Style
	HUDValue      lipgloss.Style
	HUDControls   lipgloss.Style
	ConstraintOK  lipgloss.Style
	ConstraintBad lipgloss.Style

	// Overlay styles
	OverlayBorder lipgloss.Style
	OverlayTitle  lipgloss.Style
	OverlayText   lipgloss.Style

	// Picker styles
	MenuTitle      lipgloss.Style
	MenuItemNormal lipgloss.Style
	MenuItemActive lipgloss.Style
	MenuItemDone   lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		DarkCell:    lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		SeaCell:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		PyramidCell: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		EmptyCell:   lipgloss.NewStyle().Foreground(lipgloss.Color("238")),

		SelectedCell: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		GhostCell:    lipgloss.NewStyle().Foreground(lipgloss.Color("120")),
		Cursor:       lipgloss.NewStyle().Background(lipgloss.Color("240")),

		HUDTitle:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		HUDValue:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		HUDControls:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		ConstraintOK:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		ConstraintBad: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		OverlayBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Padding(1, 3),
		OverlayTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		OverlayText:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),

		MenuTitle:      lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		MenuItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		MenuItemDone:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
}
