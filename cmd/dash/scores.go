package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/grid-dash/internal/platform/tui"
	"github.com/vovakirdan/grid-dash/internal/registry"
	"github.com/vovakirdan/grid-dash/internal/storage"
)

var (
	flagClear  bool
	flagRecent bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show run history for a board",
	Long: `Display the best won runs (fewest moves) for a board.

On a terminal the interactive scoreboard opens; when output is piped a
plain listing is printed instead.

Examples:
  dash scores
  dash scores dash_maze --recent
  dash scores dash --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs for the board")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List recent runs instead of the best ones")
}

func runScores(cmd *cobra.Command, args []string) error {
	gameID := defaultGameID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown board %q (run 'dash list' to see available boards)", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open run history: %w", err)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		logger.Info("run history cleared", "game", gameID)
		fmt.Printf("Cleared runs for %s.\n", gameID)
		return nil
	}

	if term.IsTerminal(int(os.Stdout.Fd())) && !flagRecent {
		cfg := runtimeConfig()
		_, err := tui.RunScoreboard(store, gameID, cfg.ScreenW, cfg.ScreenH)
		return err
	}

	return printRuns(store, gameID)
}

func printRuns(store *storage.Store, gameID string) error {
	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	var runs []storage.Run
	heading := "Best Runs"
	if flagRecent {
		heading = "Recent Runs"
		runs, err = store.RecentRuns(gameID, 10)
	} else {
		runs, err = store.BestRuns(gameID, 10)
	}
	if err != nil {
		return err
	}

	fmt.Printf("%s - %s\n", heading, game.Title())
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'dash play %s' to set the first record!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-7s  %-6s  %-7s  %-6s  %s\n", "#", "Result", "Moves", "Preset", "Time", "Date")
	fmt.Printf("  %-4s  %-7s  %-6s  %-7s  %-6s  %s\n", "-", "------", "-----", "------", "----", "----")

	for i, r := range runs {
		secs := int(r.Duration.Seconds())
		fmt.Printf("  %-4d  %-7s  %-6d  %-7s  %-6s  %s\n",
			i+1, r.Outcome, r.Moves, r.Preset,
			fmt.Sprintf("%d:%02d", secs/60, secs%60),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("Runs: %d  Wins: %d  Losses: %d  Best: %d moves\n",
			stats.Runs, stats.Wins, stats.Losses(), stats.BestMoves)
	}
	return nil
}
