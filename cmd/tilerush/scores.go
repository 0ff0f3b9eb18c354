package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tilerush/tilerush/internal/config"
	"github.com/tilerush/tilerush/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show the best runs",
	Long: `Display the top 10 runs for the given mode. Endless runs rank by
score; classic runs rank finished clears by completion time.

Examples:
  tilerush scores endless
  tilerush scores classic`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func runScores(cmd *cobra.Command, args []string) {
	mode := config.ModeEndless
	if len(args) == 1 {
		mode = config.Mode(args[0])
		if mode != config.ModeEndless && mode != config.ModeClassic {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q (endless, classic)\n", args[0])
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.TopRuns(mode, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", mode)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'tilerush play %s' to get on the board!\n", mode)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "Rank", "Score", "Time", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %s\n", "----", "-----", "----", "----")

	for i, r := range runs {
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		timeStr := fmt.Sprintf("%.1fs", float64(r.DurationMS)/1000)
		fmt.Printf("  %-4d  %-10d  %-10s  %s\n", i+1, r.Score, timeStr, dateStr)
	}

	fmt.Println()
	switch mode {
	case config.ModeClassic:
		if best, err := store.BestTime(mode); err == nil && best > 0 {
			fmt.Printf("Best clear: %.1fs\n", float64(best)/1000)
		}
	default:
		if best, err := store.BestScore(mode); err == nil {
			fmt.Printf("Best: %d\n", best)
		}
	}
}
