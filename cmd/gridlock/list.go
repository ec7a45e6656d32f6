package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gridlock/internal/level"
	"github.com/vovakirdan/tui-gridlock/internal/storage"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all installed levels",
	Long:  `Shows every installed level with its constraints and solved state.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	levels, err := level.NewLoader(cfg.LevelsDir).LoadAll()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}

	if len(levels) == 0 {
		fmt.Println("No levels installed.")
		return
	}

	// Solved marks are best-effort; listing works without a database.
	solved := map[string]bool{}
	if store, storeErr := storage.Open(cfg.DBPath); storeErr == nil {
		for _, lvl := range levels {
			if done, lookupErr := store.IsCompleted(lvl.ID); lookupErr == nil && done {
				solved[lvl.ID] = true
			}
		}
		store.Close()
	}

	maxIDLen := 2 // "ID" header
	maxNameLen := 4
	for _, lvl := range levels {
		if len(lvl.ID) > maxIDLen {
			maxIDLen = len(lvl.ID)
		}
		if len(lvl.Name) > maxNameLen {
			maxNameLen = len(lvl.Name)
		}
	}

	fmt.Println("Installed levels:")
	fmt.Println()
	fmt.Printf("    %-*s  %-*s  %s\n", maxIDLen, "ID", maxNameLen, "Name", "Constraints")
	fmt.Printf("    %-*s  %-*s  %s\n", maxIDLen, "--", maxNameLen, "----", "-----------")

	for _, lvl := range levels {
		mark := " "
		if solved[lvl.ID] {
			mark = "✓"
		}
		fmt.Printf("  %s %-*s  %-*s  %s\n",
			mark, maxIDLen, lvl.ID, maxNameLen, lvl.Name,
			strings.Join(lvl.Constraints, ", "))
	}

	fmt.Println()
	fmt.Println("Run 'gridlock play <id>' to play a level.")
}
