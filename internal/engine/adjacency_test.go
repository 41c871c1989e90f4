package engine

import "testing"

func TestAdjacencyZigZag(t *testing.T) {
	// Column deltas +1, -1, +1: a genuine connecting path.
	g := fillerGrid()
	g[0][1] = "Z"
	g[1][2] = "Z"
	g[2][1] = "Z"
	g[3][2] = "Z"

	w := ComputeWins(g)

	if len(w.Adjacency) != 1 {
		t.Fatalf("Adjacency = %d paths, want 1", len(w.Adjacency))
	}
	want := Path{{0, 1}, {1, 2}, {2, 1}, {3, 2}}
	if !w.Adjacency[0].Equal(want) {
		t.Errorf("Adjacency[0] = %v, want %v", w.Adjacency[0], want)
	}
	if len(w.Straight) != 0 || len(w.Diagonal) != 0 {
		t.Errorf("Straight = %d, Diagonal = %d, want both 0", len(w.Straight), len(w.Diagonal))
	}
}

func TestStraightColumnNeverInAdjacency(t *testing.T) {
	// A vertical line is top-to-bottom connected, but its constant column
	// delta (0) keeps it out of the adjacency category.
	g := fillerGrid()
	for r := 0; r < Rows; r++ {
		g[r][3] = "X"
	}

	w := ComputeWins(g)

	if len(w.Straight) != 1 {
		t.Fatalf("Straight = %d paths, want 1", len(w.Straight))
	}
	if len(w.Adjacency) != 0 {
		t.Errorf("Adjacency = %d paths, want 0: straight shapes are excluded", len(w.Adjacency))
	}
}

func TestAdjacencyRespectsColumnBounds(t *testing.T) {
	// Path hugging the left edge: steps to column -1 must not be generated.
	g := fillerGrid()
	g[0][0] = "Z"
	g[1][0] = "Z"
	g[2][1] = "Z"
	g[3][0] = "Z"

	w := ComputeWins(g)

	if len(w.Adjacency) != 1 {
		t.Fatalf("Adjacency = %d paths, want 1", len(w.Adjacency))
	}
	want := Path{{0, 0}, {1, 0}, {2, 1}, {3, 0}}
	if !w.Adjacency[0].Equal(want) {
		t.Errorf("Adjacency[0] = %v, want %v", w.Adjacency[0], want)
	}
}

func TestAdjacencyBrokenChainNoWin(t *testing.T) {
	g := fillerGrid()
	g[0][2] = "Z"
	g[1][3] = "Z"
	// Row 2 has no Z reachable from column 3.
	g[3][3] = "Z"

	w := ComputeWins(g)
	if len(w.Adjacency) != 0 {
		t.Errorf("Adjacency = %d paths, want 0 for a broken chain", len(w.Adjacency))
	}
}

func TestAdjacencyMultipleStartColumns(t *testing.T) {
	// Two independent zig-zags of the same symbol, each with its own BFS
	// run. A shared visited set across runs would drop the second path.
	g := fillerGrid()

	g[0][0] = "Z"
	g[1][1] = "Z"
	g[2][0] = "Z"
	g[3][1] = "Z"

	g[0][4] = "Z"
	g[1][3] = "Z"
	g[2][4] = "Z"
	g[3][3] = "Z"

	w := ComputeWins(g)
	if len(w.Adjacency) != 2 {
		t.Fatalf("Adjacency = %d paths, want 2 (visited set must reset per run)", len(w.Adjacency))
	}
}

func TestAdjacencyStopsAtBottomRow(t *testing.T) {
	// Every returned path spans exactly Rows coordinates: completed entries
	// are recorded at the bottom row and never extended.
	g := fillerGrid()
	g[0][2] = "Z"
	g[1][1] = "Z"
	g[1][3] = "Z"
	g[2][2] = "Z"
	g[3][1] = "Z"
	g[3][3] = "Z"

	w := ComputeWins(g)
	for _, p := range w.Adjacency {
		if len(p) != Rows {
			t.Errorf("adjacency path %v has length %d, want %d", p, len(p), Rows)
		}
		for i := 1; i < len(p); i++ {
			if p[i].Row != p[i-1].Row+1 {
				t.Errorf("adjacency path %v does not descend one row per step", p)
			}
		}
	}
}
