// Package slots implements a terminal slot machine built around a
// path-based win engine. Wins are scored in three categories: straight
// lines, full-height diagonals, and adjacency chains that connect the
// top row to the bottom row.
package slots

import (
	"math/rand"

	"github.com/solidoberon/slots-game/internal/config"
	"github.com/solidoberon/slots-game/internal/core"
	"github.com/solidoberon/slots-game/internal/engine"
)

// Phase represents the spin state machine.
type Phase int

const (
	PhaseIdle     Phase = iota // Waiting for the first spin
	PhaseSpinning              // Reels churning, stopping left to right
	PhaseSettled               // Grid final, wins highlighted
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseSpinning:
		return "spinning"
	case PhaseSettled:
		return "settled"
	default:
		return "unknown"
	}
}

// Game implements the slot machine.
type Game struct {
	rng  *rand.Rand
	tick uint64
	cfg  config.SlotsConfig
	reel []reelSymbol

	score     int
	spinsLeft int
	phase     Phase

	// Spin state
	target       engine.Grid // Final grid for the current spin
	shown        engine.Grid // Grid as displayed, churns while spinning
	stoppedReels int         // Columns settled so far, left to right
	reelTicker   int
	forced       Category // Armed category for the next spin, CategoryNone otherwise
	forcedMiss   bool     // Last forced spin fell back to a random grid

	// Settled state
	result     engine.Result
	flashTicks int

	// Session totals across spins
	totalStraight  int
	totalDiagonal  int
	totalAdjacency int

	// Screen dimensions
	screenW int
	screenH int

	gameOver bool
	paused   bool
	tooSmall bool
}

// Package-level variables for config/difficulty (like breakout pattern)
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.DifficultyPreset(preset)
}

// New creates a new slot machine game.
func New() *Game {
	return &Game{}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "slots"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Slots"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	// Load game config
	cfg, err := config.LoadSlots(configPath)
	if err != nil {
		cfg = config.DefaultSlotsConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplySlotsPreset(&cfg, difficultyPreset)
	}

	g.cfg = cfg
	g.reel = buildReel(cfg.Symbols)

	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.tick = 0
	g.score = 0
	g.spinsLeft = cfg.Session.Spins
	g.phase = PhaseIdle
	g.target = nil
	g.shown = engine.NewGrid()
	g.stoppedReels = 0
	g.reelTicker = 0
	g.forced = CategoryNone
	g.forcedMiss = false
	g.result = engine.Result{}
	g.flashTicks = 0
	g.totalStraight = 0
	g.totalDiagonal = 0
	g.totalAdjacency = 0
	g.gameOver = false
	g.paused = false

	g.screenW = runtime.ScreenW
	g.screenH = runtime.ScreenH
	g.tooSmall = g.screenW < minScreenW || g.screenH < minScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle restart
	if input.Has(core.ActionRestart) && g.gameOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.gameOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case PhaseIdle, PhaseSettled:
		g.processArming(input)
		if input.Has(core.ActionSpin) && g.spinsLeft > 0 {
			g.beginSpin()
		}
	case PhaseSpinning:
		g.advanceReels()
	}

	if g.phase == PhaseSettled {
		g.flashTicks++
	}

	return core.StepResult{State: g.State()}
}

// processArming records forced-category requests for the next spin.
func (g *Game) processArming(input core.InputFrame) {
	switch {
	case input.Has(core.ActionForceStraight):
		g.forced = CategoryStraight
	case input.Has(core.ActionForceDiagonal):
		g.forced = CategoryDiagonal
	case input.Has(core.ActionForceAdjacency):
		g.forced = CategoryAdjacency
	}
}

// beginSpin picks the final grid and starts the reel animation.
func (g *Game) beginSpin() {
	g.spinsLeft--
	g.forcedMiss = false

	if g.forced != CategoryNone {
		grid, err := ForcedGrid(g.rng, reelAlphabet(g.reel), g.forced, g.cfg.Demo.MaxAttempts)
		if err != nil {
			g.forcedMiss = true
			g.target = randomGrid(g.rng, g.reel)
		} else {
			g.target = grid
		}
		g.forced = CategoryNone
	} else {
		g.target = randomGrid(g.rng, g.reel)
	}

	g.phase = PhaseSpinning
	g.stoppedReels = 0
	g.reelTicker = 0
	g.result = engine.Result{}
	g.churn()
}

// advanceReels churns unstopped columns and settles them on schedule.
func (g *Game) advanceReels() {
	if g.cfg.Spin.ChurnEveryTick > 0 && g.tick%uint64(g.cfg.Spin.ChurnEveryTick) == 0 {
		g.churn()
	}

	g.reelTicker++
	if g.reelTicker < g.cfg.Spin.ReelStopTicks {
		return
	}
	g.reelTicker = 0

	// Lock the next column to its final symbols
	for r := 0; r < engine.Rows; r++ {
		g.shown[r][g.stoppedReels] = g.target[r][g.stoppedReels]
	}
	g.stoppedReels++

	if g.stoppedReels == engine.Cols {
		g.settle()
	}
}

// churn scrambles the not-yet-stopped columns.
func (g *Game) churn() {
	for c := g.stoppedReels; c < engine.Cols; c++ {
		for r := 0; r < engine.Rows; r++ {
			g.shown[r][c] = drawSymbol(g.rng, g.reel)
		}
	}
}

// settle finalizes the spin: run win detection and apply scoring.
func (g *Game) settle() {
	g.shown = g.target.Clone()
	g.result = engine.CheckWin(g.target)
	g.score += g.spinPoints()
	g.totalStraight += len(g.result.Wins.Straight)
	g.totalDiagonal += len(g.result.Wins.Diagonal)
	g.totalAdjacency += len(g.result.Wins.Adjacency)
	g.phase = PhaseSettled
	g.flashTicks = 0

	if g.spinsLeft == 0 {
		g.gameOver = true
	}
}

// spinPoints converts the settled result into display points.
func (g *Game) spinPoints() int {
	w := g.result.Wins
	return len(w.Straight)*g.cfg.Scoring.Straight +
		len(w.Diagonal)*g.cfg.Scoring.Diagonal +
		len(w.Adjacency)*g.cfg.Scoring.Adjacency
}

// SessionTotals reports spins played and accumulated win counts per
// category, for the session record.
func (g *Game) SessionTotals() (spins, straight, diagonal, adjacency int) {
	return g.cfg.Session.Spins - g.spinsLeft, g.totalStraight, g.totalDiagonal, g.totalAdjacency
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}
