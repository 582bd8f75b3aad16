package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dodger/internal/platform/tui"
	"github.com/vovakirdan/dodger/internal/storage"
)

var (
	flagLimit       int
	flagInteractive bool
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [board]",
	Short: "Show high scores",
	Long: `Show the top scores of a board.

Each difficulty preset keeps its own board; without an argument the board
of --difficulty is shown.

Examples:
  dodger scores
  dodger scores dodger_hard --limit 20
  dodger scores --interactive
  dodger scores --difficulty easy --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse boards in an interactive table")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete every score of the board")
}

func runScores(cmd *cobra.Command, args []string) error {
	board := ""
	if len(args) > 0 {
		board = args[0]
	} else {
		setup, err := loadSetup(flagConfig, flagDifficulty)
		if err != nil {
			return err
		}
		board = setup.Board()
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		n, err := store.ClearScores(board)
		if err != nil {
			return fmt.Errorf("clearing scores: %w", err)
		}
		fmt.Printf("Deleted %d scores from %s\n", n, board)

	case flagInteractive:
		size := terminalRuntime(0, 0)
		return tui.RunScoreboard(store, board, size.ScreenW, size.ScreenH)

	default:
		return printScores(store, board, flagLimit)
	}
	return nil
}

func printScores(store *storage.Store, board string, limit int) error {
	scores, err := store.TopScores(board, limit)
	if err != nil {
		return fmt.Errorf("getting scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", board)
	fmt.Println("==========================================")

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	fmt.Printf("%-6s %-16s %8s  %s\n", "Rank", "Player", "Score", "Date")
	fmt.Println("------------------------------------------")
	for i, s := range scores {
		fmt.Printf("%-6d %-16s %8d  %s\n",
			i+1,
			truncate(s.Player, 16),
			s.Score,
			s.CreatedAt.Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.Stats(board)
	if err != nil {
		return fmt.Errorf("getting stats: %w", err)
	}
	fmt.Println()
	fmt.Printf("Games: %d  Best: %d  Average: %.1f\n", stats.GamesCount, stats.HighScore, stats.AvgScore)
	return nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
