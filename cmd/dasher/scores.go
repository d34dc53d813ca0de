package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/dasher/internal/registry"
	"github.com/vovakirdan/dasher/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [ruleset]",
	Short: "Show the best runs",
	Long: `Display the best recorded runs for a ruleset (default: dasher).

Examples:
  dasher scores
  dasher scores dasher_classic --limit 20
  dasher scores --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to show")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the ruleset's history and best score")
}

func runScores(_ *cobra.Command, args []string) {
	id, err := rulesetArg(args)
	if err != nil {
		fail(err)
	}

	game, err := registry.Create(id)
	if err != nil {
		fail(fmt.Errorf("creating game: %w", err))
	}
	title := game.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail(fmt.Errorf("opening run database: %w", err))
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(id); err != nil {
			store.Close()
			fail(err)
		}
		fmt.Printf("Cleared runs for %s.\n", title)
		return
	}

	runs, err := store.TopRuns(id, flagLimit)
	if err != nil {
		store.Close()
		fail(fmt.Errorf("retrieving runs: %w", err))
	}

	fmt.Printf("Best runs - %s\n", title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'dasher play %s' to set the first high score!\n", id)
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "Rank", "Score", "Kills", "Time", "Date")
	fmt.Printf("  %-4s  %-8s  %-6s  %-6s  %s\n", "----", "-----", "-----", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8d  %-6d  %-6s  %s\n",
			i+1, r.Score, r.Kills, formatDuration(r.Duration), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.Best(id); err == nil {
		fmt.Printf("Best: %d\n", best)
	}
	if st, err := store.RulesetStats(id); err == nil && st.Runs > 0 {
		fmt.Printf("Runs: %d  Average: %.0f  Ghosts dashed: %d  Longest: %s\n",
			st.Runs, st.AvgScore, st.TotalKills, formatDuration(st.Longest))
	}
}
