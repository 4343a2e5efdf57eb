package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-colormix/internal/config"
	"github.com/vovakirdan/tui-colormix/internal/core"
	"github.com/vovakirdan/tui-colormix/internal/platform/tui"
	"github.com/vovakirdan/tui-colormix/internal/storage"
)

var flagScreenshotDir string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in the current terminal. A mouse is recommended.

Mouse:
  Click Start Game       - Start or restart a game
  Click a cell           - Cross paint its row and column white
  Drag a cell to another - Mix both colors into the whole grid
  Click a swatch         - Fill the grid with that color

Keyboard:
  Arrows/hjkl  - Move the cell cursor
  Space/Enter  - Cross paint at the cursor
  G            - Pick up the cursor cell, press again to drop
  Esc          - Cancel a drag
  1-5          - Fill with red, green, blue, yellow, white
  N            - Start a new game
  Ctrl+S       - Save a text screenshot
  ?            - Toggle help
  Q/Ctrl+C     - Quit

Examples:
  colormix play
  colormix play --theme ./my-theme.yaml
  colormix play --db ~/.colormix/journal.db`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagScreenshotDir, "screenshots", "", "Screenshot directory (default: ~/.colormix/screenshots)")
}

func runPlay(_ *cobra.Command, _ []string) {
	theme, err := config.LoadTheme(flagThemePath)
	if err != nil {
		logger.Warn("using default theme", "error", err)
		theme = config.DefaultTheme()
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}

	var store *storage.Store
	if flagDBPath != "" {
		store, err = storage.Open(flagDBPath)
		if err != nil {
			// The game works without a journal.
			logger.Warn("could not open game journal", "path", flagDBPath, "error", err)
			store = nil
		}
	}

	runErr := tui.Run(cfg, tui.Options{
		Theme:         theme,
		Store:         store,
		Player:        os.Getenv("USER"),
		ScreenshotDir: flagScreenshotDir,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
