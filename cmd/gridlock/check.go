package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gridlock/internal/level"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate level YAML files",
	Long: `Parse and validate the given level files without playing them.
Reports every problem found and exits non-zero if any file is invalid.

Examples:
  gridlock check ./mylevel.yaml
  gridlock check levels/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	Run:  runCheck,
}

func runCheck(_ *cobra.Command, args []string) {
	loader := level.NewLoader("")
	failed := 0
	for _, path := range args {
		lvl, err := loader.LoadFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "✗ %s: %v\n", path, err)
			failed++
			continue
		}
		fmt.Printf("✓ %s: %s (%d cells, constraints: %d)\n",
			path, lvl.ID, len(lvl.Cells), len(lvl.Constraints))
	}
	if failed > 0 {
		fmt.Fprintf(os.Stderr, "\n%d of %d files invalid\n", failed, len(args))
		os.Exit(1)
	}
}
