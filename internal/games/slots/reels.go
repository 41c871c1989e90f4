package slots

import (
	"math/rand"

	"github.com/solidoberon/slots-game/internal/config"
	"github.com/solidoberon/slots-game/internal/core"
	"github.com/solidoberon/slots-game/internal/engine"
)

// reelSymbol is one active symbol with its draw weight and display attributes.
type reelSymbol struct {
	sym    engine.Symbol
	glyph  rune
	color  core.Color
	weight int
}

// buildReel converts configured symbols into the active reel strip.
func buildReel(symbols []config.SymbolConfig) []reelSymbol {
	reel := make([]reelSymbol, 0, len(symbols))
	for _, s := range symbols {
		glyph := '?'
		for _, r := range s.Glyph {
			glyph = r
			break
		}
		reel = append(reel, reelSymbol{
			sym:    engine.Symbol(s.Name),
			glyph:  glyph,
			color:  config.ParseColor(s.Color),
			weight: s.Weight,
		})
	}
	return reel
}

// reelAlphabet returns just the symbol labels of the reel.
func reelAlphabet(reel []reelSymbol) []engine.Symbol {
	out := make([]engine.Symbol, len(reel))
	for i, rs := range reel {
		out[i] = rs.sym
	}
	return out
}

// drawSymbol picks one symbol by cumulative weight.
func drawSymbol(rng *rand.Rand, reel []reelSymbol) engine.Symbol {
	total := 0
	for _, rs := range reel {
		total += rs.weight
	}
	roll := rng.Intn(total)
	for _, rs := range reel {
		roll -= rs.weight
		if roll < 0 {
			return rs.sym
		}
	}
	return reel[len(reel)-1].sym
}

// randomGrid fills a grid with independent weighted draws.
func randomGrid(rng *rand.Rand, reel []reelSymbol) engine.Grid {
	g := engine.NewGrid()
	for r := 0; r < engine.Rows; r++ {
		for c := 0; c < engine.Cols; c++ {
			g[r][c] = drawSymbol(rng, reel)
		}
	}
	return g
}
