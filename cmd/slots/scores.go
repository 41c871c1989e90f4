package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/solidoberon/slots-game/internal/platform/tui"
	"github.com/solidoberon/slots-game/internal/storage"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show the session leaderboard",
	Long: `Display the top 10 sessions by score.

Examples:
  slots scores
  slots scores --tui`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresTUI {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error running scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	sessions, err := store.TopSessions(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Slots")
	fmt.Println()

	if len(sessions) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'slots play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %-5s  %-3s  %-4s  %-3s  %s\n", "Rank", "Score", "Spins", "Str", "Diag", "Adj", "Date")
	fmt.Printf("  %-4s  %-10s  %-5s  %-3s  %-4s  %-3s  %s\n", "----", "-----", "-----", "---", "----", "---", "----")

	for i, entry := range sessions {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-5d  %-3d  %-4d  %-3d  %s\n",
			i+1, entry.Score, entry.Spins,
			entry.StraightWins, entry.DiagonalWins, entry.AdjacencyWins, dateStr)
	}

	fmt.Println()
	stats, err := store.GetStats()
	if err == nil && stats.Sessions > 0 {
		fmt.Printf("Best: %d  Sessions: %d  Avg: %.0f\n", stats.HighScore, stats.Sessions, stats.AvgScore)
	}
}
