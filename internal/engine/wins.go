package engine

import (
	"os"

	"github.com/charmbracelet/log"
)

// logger reports the engine's single non-fatal condition: a grid of the
// wrong shape. Invalid input is diagnosed, never raised.
var logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "engine"})

// Wins holds the three categorized path collections. After ComputeWins the
// categories are pairwise disjoint by coordinate-set and each collection is
// free of coordinate-set duplicates.
type Wins struct {
	Straight  []Path
	Diagonal  []Path
	Adjacency []Path
}

// Result pairs the flat concatenation of all winning paths with the
// categorized collections. Paths is always Straight ++ Diagonal ++ Adjacency
// in that order, so len(Paths) equals the sum of the three lengths.
type Result struct {
	Paths []Path
	Wins  Wins
}

// ComputeWins evaluates the grid and returns the categorized winning paths.
// The four scans run independently; horizontal and vertical results merge
// into Straight, adjacency results that are secretly straight or
// constant-diagonal shaped are discarded, and each collection is
// deduplicated by coordinate-set keeping first occurrence.
//
// A malformed grid (wrong row count or any row of the wrong length) is not
// an error: it is logged and yields empty collections, which callers must
// read as "no win".
func ComputeWins(g Grid) Wins {
	if !ValidGrid(g) {
		logger.Warn("invalid grid shape",
			"rows", len(g), "want_rows", Rows, "want_cols", Cols)
		return Wins{}
	}

	straight := scanHorizontal(g)
	straight = append(straight, scanVertical(g)...)

	diagonal := scanDiagonal(g)

	var adjacency []Path
	for _, p := range searchAdjacency(g) {
		if constantStep(p) {
			// Already represented by the straight/diagonal scans; keeping
			// it would double-count the same visual line.
			continue
		}
		adjacency = append(adjacency, p)
	}

	return Wins{
		Straight:  dedup(straight),
		Diagonal:  dedup(diagonal),
		Adjacency: dedup(adjacency),
	}
}

// CheckWin evaluates the grid and additionally flattens the categorized
// collections into a single ordered path list.
func CheckWin(g Grid) Result {
	w := ComputeWins(g)

	paths := make([]Path, 0, len(w.Straight)+len(w.Diagonal)+len(w.Adjacency))
	paths = append(paths, w.Straight...)
	paths = append(paths, w.Diagonal...)
	paths = append(paths, w.Adjacency...)

	return Result{Paths: paths, Wins: w}
}

// constantStep reports whether the path is straight-or-constant-diagonal
// shaped: one point or fewer, or the same column delta between every pair of
// consecutive points. Delta 0 counts, so vertical lines are "straight" here
// too.
func constantStep(p Path) bool {
	if len(p) <= 1 {
		return true
	}
	delta := p[1].Col - p[0].Col
	for i := 2; i < len(p); i++ {
		if p[i].Col-p[i-1].Col != delta {
			return false
		}
	}
	return true
}

// dedup drops paths whose coordinate-set already appeared earlier in the
// slice, comparing order-independently.
func dedup(paths []Path) []Path {
	if len(paths) == 0 {
		return paths
	}
	seen := make(map[string]bool, len(paths))
	out := paths[:0]
	for _, p := range paths {
		k := p.key()
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, p)
	}
	return out
}
