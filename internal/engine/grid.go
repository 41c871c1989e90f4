// Package engine implements win detection over a settled reel grid.
// It is a pure, stateless library: callers hand it a snapshot of the
// machine face and get back every winning arrangement, classified into
// straight lines, full-height diagonals, and non-straight connecting
// paths. The engine never mutates its input and holds no cross-call state.
package engine

import (
	"fmt"
	"sort"
	"strings"
)

// Grid dimensions. These are machine constants, not inferred from input;
// a grid of any other shape is rejected by ValidGrid.
const (
	Rows = 4
	Cols = 6
)

// Symbol is a reel symbol label. The zero value is an empty cell: no win
// can pass through it.
type Symbol string

// Empty marks a cell with no symbol.
const Empty Symbol = ""

// Grid is a Rows x Cols matrix of symbols, row 0 at the top.
// It is read-only input from the engine's perspective.
type Grid [][]Symbol

// ValidGrid reports whether g has exactly Rows rows of exactly Cols cells.
func ValidGrid(g Grid) bool {
	if len(g) != Rows {
		return false
	}
	for _, row := range g {
		if len(row) != Cols {
			return false
		}
	}
	return true
}

// NewGrid allocates an all-empty Rows x Cols grid.
func NewGrid() Grid {
	g := make(Grid, Rows)
	for r := range g {
		g[r] = make([]Symbol, Cols)
	}
	return g
}

// Clone returns a deep copy of the grid.
func (g Grid) Clone() Grid {
	out := make(Grid, len(g))
	for r, row := range g {
		out[r] = make([]Symbol, len(row))
		copy(out[r], row)
	}
	return out
}

// Coord is a grid address: 0-indexed, row 0 at the top, column 0 at the left.
type Coord struct {
	Row int
	Col int
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Path is an ordered sequence of coordinates describing one winning
// arrangement. Paths are value sequences: identity is their coordinate
// set, not the slice header.
type Path []Coord

// Equal reports whether two paths visit the same coordinates in the same
// order.
func (p Path) Equal(other Path) bool {
	if len(p) != len(other) {
		return false
	}
	for i := range p {
		if p[i] != other[i] {
			return false
		}
	}
	return true
}

// key returns an order-independent identity for the path's coordinate set:
// coordinates sorted by row then column, serialized. Two paths with equal
// keys cover the same cells regardless of traversal order.
func (p Path) key() string {
	sorted := make([]Coord, len(p))
	copy(sorted, p)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Row != sorted[j].Row {
			return sorted[i].Row < sorted[j].Row
		}
		return sorted[i].Col < sorted[j].Col
	})

	var sb strings.Builder
	for _, c := range sorted {
		fmt.Fprintf(&sb, "%d,%d;", c.Row, c.Col)
	}
	return sb.String()
}
