package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gridlock/internal/level"
	"github.com/vovakirdan/tui-gridlock/internal/platform/tui"
	"github.com/vovakirdan/tui-gridlock/internal/storage"
)

var flagClearProgress bool

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show solved levels",
	Long: `Display solved levels with solve dates and attempt counts.

Examples:
  gridlock progress
  gridlock progress --clear`,
	Run: runProgress,
}

func init() {
	progressCmd.Flags().BoolVar(&flagClearProgress, "clear", false, "Erase all recorded progress")
}

func runProgress(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening progress database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearProgress {
		if clearErr := store.ClearProgress(); clearErr != nil {
			fmt.Fprintf(os.Stderr, "Error clearing progress: %v\n", clearErr)
			os.Exit(1)
		}
		fmt.Println("Progress cleared.")
		return
	}

	completions, err := store.Completions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading progress: %v\n", err)
		os.Exit(1)
	}

	if len(completions) == 0 {
		fmt.Println("No levels solved yet.")
		fmt.Println()
		fmt.Println("Run 'gridlock play' to start.")
		return
	}

	total := 0
	if levels, loadErr := level.NewLoader(cfg.LevelsDir).LoadAll(); loadErr == nil {
		total = len(levels)
	}

	model := tui.NewProgressModel(completions, total)
	if _, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run(); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
