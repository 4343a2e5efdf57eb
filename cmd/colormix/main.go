// colormix is a terminal color-mixing puzzle played with the mouse.
//
// Usage:
//
//	colormix                 - Play in the current terminal
//	colormix play            - Same as above
//	colormix serve           - Start SSH server for remote play
//	colormix history         - Show journaled games
//
// Global flags:
//
//	--theme <path>  - Theme YAML (default: ~/.colormix/theme.yaml if present)
//	--db <path>     - Game journal database (disabled when empty)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagThemePath string
	flagDBPath    string
)

// logger reports non-fatal problems on stderr.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "colormix"})

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "colormix",
	Short: "Color Mixing Game - a 3x3 paint puzzle in your terminal",
	Long: `Color Mixing Game is a small puzzle on a 3x3 grid of colors.

Start a game, then spend your 10 moves:
  click a cell           - paint its row and column white
  drag onto another cell - mix the two colors over the whole grid
  click a palette swatch - fill the whole grid with that color

Available commands:
  play     - Play in this terminal (default)
  serve    - Start SSH server for remote play
  history  - View journaled games

Examples:
  colormix
  colormix --db ~/.colormix/journal.db
  colormix serve --ssh :2222
  colormix history --db ~/.colormix/journal.db`,
	Run: runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagThemePath, "theme", "", "Path to theme YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to game journal database (empty disables journaling)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(historyCmd)
}
