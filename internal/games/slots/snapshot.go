package slots

// Snapshot captures game state for determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	Phase         string
	Score         int
	SpinsLeft     int
	StoppedReels  int
	Forced        string
	StraightWins  int
	DiagonalWins  int
	AdjacencyWins int
	GameOver      bool
	Paused        bool
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:          g.tick,
		Phase:         g.phase.String(),
		Score:         g.score,
		SpinsLeft:     g.spinsLeft,
		StoppedReels:  g.stoppedReels,
		Forced:        g.forced.String(),
		StraightWins:  len(g.result.Wins.Straight),
		DiagonalWins:  len(g.result.Wins.Diagonal),
		AdjacencyWins: len(g.result.Wins.Adjacency),
		GameOver:      g.gameOver,
		Paused:        g.paused,
	}
}
