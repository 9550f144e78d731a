package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagLimit int
	flagAll   bool
	flagClear bool
	flagRun   string
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top high scores.

Examples:
  snake scores
  snake scores --limit 20
  snake scores --all
  snake scores --run 3f1c9a52-...
  snake scores --clear
  snake scores --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of scores to show")
	scoresCmd.Flags().BoolVar(&flagAll, "all", false, "Show every recorded run")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded scores")
	scoresCmd.Flags().StringVar(&flagRun, "run", "", "Show the score of a single run id")
	scoresCmd.MarkFlagsMutuallyExclusive("all", "clear", "run")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	switch {
	case flagClear:
		if err := store.ClearScores(); err != nil {
			return err
		}
		fmt.Fprintln(out, "All scores cleared.")
		return nil

	case flagRun != "":
		entry, err := store.ScoreByRun(flagRun)
		if err != nil {
			return err
		}
		if entry == nil {
			return fmt.Errorf("no score recorded for run %q", flagRun)
		}
		printScores(out, []storage.ScoreEntry{*entry})
		return nil
	}

	var scores []storage.ScoreEntry
	if flagAll {
		scores, err = store.AllScores()
	} else {
		scores, err = store.TopScores(flagLimit)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "High Scores - Snake")
	fmt.Fprintln(out)

	if len(scores) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'snake play' to set the first high score!")
		return nil
	}

	printScores(out, scores)

	highScore, err := store.HighScore()
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d\n", highScore)
	}
	return nil
}

// printScores writes a ranked score table.
func printScores(out io.Writer, scores []storage.ScoreEntry) {
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-14s  %s\n", "Rank", "Score", "Length", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-6s  %-14s  %s\n", "----", "-----", "------", "------", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-8d  %-6d  %-14s  %s\n", i+1, entry.Score, entry.Length, entry.Player, dateStr)
	}
}
