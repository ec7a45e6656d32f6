// gridlock is a terminal puzzle about sliding clusters of cells into
// symmetric, connected arrangements.
//
// Usage:
//
//	gridlock play [level]    - Play a level (picker when omitted)
//	gridlock list            - List installed levels
//	gridlock check <file>    - Validate level files
//	gridlock progress        - Show solved levels
//	gridlock serve           - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>  - Path to a config YAML
//	--db <path>      - Progress database path
//	--levels <dir>   - Extra level files directory
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-gridlock/internal/config"
)

var (
	// Global flags
	flagConfig    string
	flagDBPath    string
	flagLevelsDir string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridlock",
	Short: "Gridlock - a sliding symmetry puzzle for your terminal",
	Long: `Gridlock is a terminal puzzle game. Select a cluster of cells,
confirm it, and slide it to a position where every constraint of the
level holds.

Available commands:
  play      - Play a level, or pick one interactively
  list      - Show all installed levels
  check     - Validate level YAML files
  progress  - View solved levels
  serve     - Start SSH server for remote play

Examples:
  gridlock play
  gridlock play 1-2
  gridlock list
  gridlock check ./mylevel.yaml
  gridlock serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to progress database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with extra level files (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(progressCmd)
	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the effective config from file and flags.
func loadConfig() config.Config {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		cfg = config.Default()
	}
	if flagDBPath != "" {
		cfg.DBPath = flagDBPath
	}
	if flagLevelsDir != "" {
		cfg.LevelsDir = flagLevelsDir
	}
	return cfg
}
