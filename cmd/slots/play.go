package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/solidoberon/slots-game/internal/core"
	"github.com/solidoberon/slots-game/internal/games/slots"
	"github.com/solidoberon/slots-game/internal/platform/tui"
	"github.com/solidoberon/slots-game/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a session",
	Long: `Start a play session. Every session has a fixed number of spins;
the final score is recorded on the leaderboard.

Controls:
  Space/Enter - Spin
  1/2/3       - Rig the next spin (straight/diagonal/adjacency)
  P/Esc       - Pause
  R           - Restart (after the session ends)
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Few distinct symbols, wins are frequent
  normal - Medium symbol set
  hard   - Full symbol set, wins are rare

Examples:
  slots play
  slots play --difficulty easy
  slots play --config ./my-slots.yaml
  slots play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty before the game loads them in Reset
	slots.SetConfigPath(flagConfig)
	slots.SetDifficultyPreset(flagDifficulty)

	game := slots.New()

	// Open session storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
