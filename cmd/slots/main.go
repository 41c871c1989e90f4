// slots is a terminal slot machine with path-based win detection.
//
// Usage:
//
//	slots play               - Play a session in the terminal
//	slots demo <category>    - Print a rigged grid and its winning paths
//	slots serve              - Start SSH server for remote play
//	slots scores             - Show the session leaderboard
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.slots/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "slots",
	Short: "Slots - A slot machine in your terminal",
	Long: `Slots is a terminal slot machine. Each spin fills a 4x6 grid of
symbols and pays out for three kinds of winning paths: straight lines,
full-height diagonals, and adjacency chains connecting top to bottom.

Available commands:
  play     - Play a session
  demo     - Print a rigged grid and its winning paths
  serve    - Start SSH server for remote play
  scores   - View the session leaderboard

Examples:
  slots play
  slots play --difficulty easy
  slots demo adjacency
  slots serve --ssh :2222
  slots scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.slots/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
