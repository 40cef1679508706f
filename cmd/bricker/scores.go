package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/bricker/internal/platform/tui"
	"github.com/vovakirdan/bricker/internal/registry"
	"github.com/vovakirdan/bricker/internal/storage"
)

var (
	flagInteractive bool
	flagRecent      bool
	flagLimit       int
	flagClear       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show stored runs",
	Long: `Display the best runs for a variant, most bricks first, with
aggregate statistics.

Examples:
  bricker scores
  bricker scores bricker_chaos --recent
  bricker scores --interactive
  bricker scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse runs in a table")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "List newest runs instead of best")
	scoresCmd.Flags().IntVarP(&flagLimit, "limit", "n", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete stored runs for the variant")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := "bricker"
	if len(args) == 1 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'bricker list' to see variants", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height, flagFPS)
	}

	if flagClear {
		if err := store.ClearRuns(gameID); err != nil {
			return err
		}
		fmt.Printf("Cleared runs for %s.\n", gameID)
		return nil
	}

	var runs []storage.Run
	if flagRecent {
		runs, err = store.RecentRuns(gameID, flagLimit)
	} else {
		runs, err = store.TopRuns(gameID, flagLimit)
	}
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}
	fmt.Printf("Runs - %s\n\n", game.Title())

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'bricker play %s' to record the first one!\n", gameID)
		return nil
	}

	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %-8s  %s\n", "Rank", "Bricks", "Result", "Lives", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-5s  %-8s  %s\n", "----", "------", "------", "-----", "----", "----")
	for i, r := range runs {
		played := time.Duration(r.Ticks) * time.Second / time.Duration(max(flagFPS, 1))
		fmt.Printf("  %-4d  %-8s  %-6s  %-5d  %-8s  %s\n",
			i+1,
			fmt.Sprintf("%d/%d", r.BricksDestroyed, r.TotalBricks),
			r.Outcome,
			r.LivesLeft,
			played.Round(time.Second),
			r.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Println()
		fmt.Printf("Games: %d  Wins: %d  Best: %d  Avg: %.1f\n",
			stats.GamesCount, stats.Wins, stats.BestBricks, stats.AvgBricks)
	}
	return nil
}
