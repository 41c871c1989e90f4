package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/solidoberon/slots-game/internal/config"
	"github.com/solidoberon/slots-game/internal/engine"
	"github.com/solidoberon/slots-game/internal/games/slots"
)

var flagDemoConfig string

var demoCmd = &cobra.Command{
	Use:   "demo <category>",
	Short: "Print a rigged grid and its winning paths",
	Long: `Generate a grid rigged to contain exactly one win in the given
category, run win detection on it, and print both the grid and the
winning paths. Categories: straight, diagonal, adjacency.

Examples:
  slots demo straight
  slots demo adjacency --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runDemo,
}

func init() {
	demoCmd.Flags().StringVar(&flagDemoConfig, "config", "", "Path to custom game config YAML")
}

func runDemo(cmd *cobra.Command, args []string) {
	target := slots.ParseCategory(args[0])
	if target == slots.CategoryNone {
		fmt.Fprintf(os.Stderr, "Error: unknown category %q (want straight, diagonal, or adjacency)\n", args[0])
		os.Exit(1)
	}

	cfg, err := config.LoadSlots(flagDemoConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	alphabet := make([]engine.Symbol, len(cfg.Symbols))
	glyphs := make(map[engine.Symbol]string, len(cfg.Symbols))
	for i, s := range cfg.Symbols {
		alphabet[i] = engine.Symbol(s.Name)
		glyphs[alphabet[i]] = s.Glyph
	}

	grid, err := slots.ForcedGrid(rng, alphabet, target, cfg.Demo.MaxAttempts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	result := engine.CheckWin(grid)

	fmt.Printf("Rigged %s grid (seed %d):\n\n", target, seed)
	for r := 0; r < engine.Rows; r++ {
		fmt.Print("  ")
		for c := 0; c < engine.Cols; c++ {
			g := glyphs[grid[r][c]]
			if g == "" {
				g = "?"
			}
			fmt.Printf(" %s ", g)
		}
		fmt.Println()
	}

	fmt.Println()
	printPaths("Straight", result.Wins.Straight, grid)
	printPaths("Diagonal", result.Wins.Diagonal, grid)
	printPaths("Adjacency", result.Wins.Adjacency, grid)
}

func printPaths(label string, paths []engine.Path, grid engine.Grid) {
	if len(paths) == 0 {
		return
	}
	for _, p := range paths {
		sym := grid[p[0].Row][p[0].Col]
		fmt.Printf("%s win (%s):", label, sym)
		for _, c := range p {
			fmt.Printf(" %s", c)
		}
		fmt.Println()
	}
}
