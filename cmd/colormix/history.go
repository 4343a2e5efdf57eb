package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-colormix/internal/game"
	"github.com/vovakirdan/tui-colormix/internal/storage"
)

var (
	flagHistoryLimit int
	flagHistoryGame  string
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show journaled games",
	Long: `Display recent games from the journal, or the moves of one game.

The journal is only written when a game is played with --db.

Examples:
  colormix history --db ~/.colormix/journal.db
  colormix history --db ~/.colormix/journal.db --limit 20
  colormix history --db ~/.colormix/journal.db --game alice-1700000000`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of games to show")
	historyCmd.Flags().StringVar(&flagHistoryGame, "game", "", "Show the moves of one game")
}

func runHistory(_ *cobra.Command, _ []string) {
	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: no journal database, pass --db <path>")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryGame != "" {
		err = printMoves(store, flagHistoryGame)
	} else {
		err = printGames(store, flagHistoryLimit)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error reading journal: %v\n", err)
		os.Exit(1)
	}
}

func printGames(store *storage.Store, limit int) error {
	games, err := store.RecentGames(limit)
	if err != nil {
		return err
	}

	fmt.Println("Recent Games")
	fmt.Println()

	if len(games) == 0 {
		fmt.Println("No games recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'colormix --db %s' to start a journal.\n", flagDBPath)
		return nil
	}

	fmt.Printf("  %-28s  %-12s  %-5s  %-11s  %s\n", "Game", "Player", "Moves", "Board", "Started")
	fmt.Printf("  %-28s  %-12s  %-5s  %-11s  %s\n", "----", "------", "-----", "-----", "-------")
	for _, g := range games {
		board := "-"
		if !g.EndedAt.IsZero() {
			board = strings.ReplaceAll(g.FinalGrid, "\n", "/")
		}
		fmt.Printf("  %-28s  %-12s  %-5d  %-11s  %s\n",
			g.ID, g.Player, g.MovesUsed, board, g.StartedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetStats(game.MoveBudget)
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Games: %d  Moves: %d  Rejected: %d  Exhausted: %d\n",
		stats.Games, stats.Moves, stats.Rejected, stats.Exhausted)
	if !stats.LastPlayed.IsZero() {
		fmt.Printf("Last played: %s\n", stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func printMoves(store *storage.Store, gameID string) error {
	moves, err := store.Moves(gameID)
	if err != nil {
		return err
	}

	fmt.Printf("Moves - %s\n", gameID)
	fmt.Println()

	if len(moves) == 0 {
		fmt.Println("No moves recorded for this game.")
		return nil
	}

	fmt.Printf("  %-4s  %-20s  %-8s  %s\n", "#", "Action", "Result", "Left")
	fmt.Printf("  %-4s  %-20s  %-8s  %s\n", "-", "------", "------", "----")
	for _, mv := range moves {
		result := "ignored"
		if mv.Accepted {
			result = "applied"
		}
		fmt.Printf("  %-4d  %-20s  %-8s  %d\n", mv.Seq, mv.Action, result, mv.MovesLeft)
	}
	return nil
}
