package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-gridlock/internal/level"
	"github.com/vovakirdan/tui-gridlock/internal/platform/tui"
	"github.com/vovakirdan/tui-gridlock/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Play the given level, or open the interactive picker when no
level is specified.

Controls:
  Arrows/hjkl  - Move cursor / slide the cluster
  Space        - Toggle cell selection
  Enter        - Confirm selection / place the cluster
  u / r        - Undo / redo
  R            - Reset the level
  Esc          - Back
  Q/Ctrl+C     - Quit

Examples:
  gridlock play
  gridlock play 1-2
  gridlock play 2-1 --levels ./mylevels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, args []string) {
	cfg := loadConfig()

	loader := level.NewLoader(cfg.LevelsDir)
	levels, err := loader.LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}
	if len(levels) == 0 {
		fmt.Fprintln(os.Stderr, "No levels found.")
		os.Exit(1)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open progress database: %v\n", err)
		// Continue without storage - the game still works
		store = nil
	}
	defer func() {
		if store != nil {
			store.Close()
		}
	}()

	var model tea.Model
	if len(args) == 1 {
		lvl, lookupErr := loader.LoadByID(args[0])
		if lookupErr != nil {
			fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", args[0])
			fmt.Fprintln(os.Stderr, "Run 'gridlock list' to see installed levels.")
			os.Exit(1)
		}
		model = tui.NewPlayModel(lvl, cfg.CellSize, progressOrNil(store), true)
	} else {
		model = tui.NewRootModel(levels, cfg.CellSize, progressOrNil(store), lookupOrNil(store))
	}

	// Seed the initial size so the first frame fits the terminal.
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		model, _ = model.Update(tea.WindowSizeMsg{Width: w, Height: h})
	}

	if _, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run(); runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// progressOrNil avoids a typed-nil interface when the store is absent.
func progressOrNil(store *storage.Store) tui.Progress {
	if store == nil {
		return nil
	}
	return store
}

func lookupOrNil(store *storage.Store) tui.CompletionLookup {
	if store == nil {
		return nil
	}
	return store
}
