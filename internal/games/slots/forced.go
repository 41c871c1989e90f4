package slots

import (
	"fmt"
	"math/rand"

	"github.com/solidoberon/slots-game/internal/core"
	"github.com/solidoberon/slots-game/internal/engine"
)

// Category identifies one win category for forced spins and scoring.
type Category int

const (
	CategoryNone Category = iota
	CategoryStraight
	CategoryDiagonal
	CategoryAdjacency
)

func (c Category) String() string {
	switch c {
	case CategoryStraight:
		return "straight"
	case CategoryDiagonal:
		return "diagonal"
	case CategoryAdjacency:
		return "adjacency"
	default:
		return "none"
	}
}

// ParseCategory maps a category name to its value. Unknown names return
// CategoryNone.
func ParseCategory(name string) Category {
	switch name {
	case "straight":
		return CategoryStraight
	case "diagonal":
		return CategoryDiagonal
	case "adjacency":
		return CategoryAdjacency
	default:
		return CategoryNone
	}
}

// ForcedGrid builds a grid whose only win is a single path in the target
// category. It paints a path of one symbol over noise drawn from the
// remaining symbols, then verifies the candidate with the win engine.
// Noise can occasionally form wins of its own, so candidates are retried
// up to maxAttempts times.
func ForcedGrid(rng *rand.Rand, alphabet []engine.Symbol, target Category, maxAttempts int) (engine.Grid, error) {
	if len(alphabet) < 2 {
		return nil, fmt.Errorf("forced grid needs at least 2 symbols, got %d", len(alphabet))
	}
	if target == CategoryNone {
		return nil, fmt.Errorf("no target category")
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		sym := alphabet[rng.Intn(len(alphabet))]
		g := noiseGrid(rng, alphabet, sym)

		switch target {
		case CategoryStraight:
			paintStraight(rng, g, sym)
		case CategoryDiagonal:
			paintDiagonal(rng, g, sym)
		case CategoryAdjacency:
			if !paintAdjacency(rng, g, sym) {
				continue
			}
		}

		if exactlyOne(engine.ComputeWins(g), target) {
			return g, nil
		}
	}
	return nil, fmt.Errorf("no %s grid after %d attempts", target, maxAttempts)
}

// noiseGrid fills a grid from the alphabet, never using the excluded symbol.
func noiseGrid(rng *rand.Rand, alphabet []engine.Symbol, exclude engine.Symbol) engine.Grid {
	g := engine.NewGrid()
	for r := 0; r < engine.Rows; r++ {
		for c := 0; c < engine.Cols; c++ {
			for {
				s := alphabet[rng.Intn(len(alphabet))]
				if s != exclude {
					g[r][c] = s
					break
				}
			}
		}
	}
	return g
}

// paintStraight fills one random row or column with the symbol.
func paintStraight(rng *rand.Rand, g engine.Grid, sym engine.Symbol) {
	if rng.Intn(2) == 0 {
		r := rng.Intn(engine.Rows)
		for c := 0; c < engine.Cols; c++ {
			g[r][c] = sym
		}
		return
	}
	c := rng.Intn(engine.Cols)
	for r := 0; r < engine.Rows; r++ {
		g[r][c] = sym
	}
}

// paintDiagonal fills one random full-height diagonal run with the symbol.
func paintDiagonal(rng *rand.Rand, g engine.Grid, sym engine.Symbol) {
	step := 1
	c0 := rng.Intn(engine.Cols - engine.Rows + 1)
	if rng.Intn(2) == 1 {
		step = -1
		c0 += engine.Rows - 1
	}
	for r := 0; r < engine.Rows; r++ {
		g[r][c0+r*step] = sym
	}
}

// paintAdjacency walks a random top-to-bottom chain and fills it with the
// symbol. Returns false when the walk came out as a straight column or a
// pure diagonal, which would land in the wrong category.
func paintAdjacency(rng *rand.Rand, g engine.Grid, sym engine.Symbol) bool {
	cols := make([]int, engine.Rows)
	cols[0] = rng.Intn(engine.Cols)
	for r := 1; r < engine.Rows; r++ {
		d := rng.Intn(3) - 1
		c := core.Clamp(cols[r-1]+d, 0, engine.Cols-1)
		cols[r] = c
	}

	uniform := true
	for r := 2; r < engine.Rows; r++ {
		if cols[r]-cols[r-1] != cols[1]-cols[0] {
			uniform = false
			break
		}
	}
	if uniform {
		return false
	}

	for r := 0; r < engine.Rows; r++ {
		g[r][cols[r]] = sym
	}
	return true
}

// exactlyOne reports whether the wins hold a single path, in the target
// category only.
func exactlyOne(w engine.Wins, target Category) bool {
	counts := map[Category]int{
		CategoryStraight:  len(w.Straight),
		CategoryDiagonal:  len(w.Diagonal),
		CategoryAdjacency: len(w.Adjacency),
	}
	for cat, n := range counts {
		want := 0
		if cat == target {
			want = 1
		}
		if n != want {
			return false
		}
	}
	return true
}
