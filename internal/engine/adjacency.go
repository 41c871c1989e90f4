package engine

// searchAdjacency enumerates every top-to-bottom connecting path: one run
// per non-empty cell in row 0, stepping exactly one row down per move with
// a column change of -1, 0, or +1, every cell sharing the start symbol.
// Straight-shaped results are included here and filtered out during
// classification.
func searchAdjacency(g Grid) []Path {
	var paths []Path
	for c := 0; c < Cols; c++ {
		if g[0][c] == Empty {
			continue
		}
		paths = append(paths, adjacencyFrom(g, c)...)
	}
	return paths
}

// queueEntry carries a BFS frontier cell and the path accumulated to reach it.
type queueEntry struct {
	at   Coord
	path Path
}

// adjacencyFrom runs a breadth-first search from (0, start) collecting every
// path that reaches the bottom row. The visited set is scoped to this single
// run: it must be recreated per start cell, otherwise earlier runs would
// silently block valid paths of later ones.
func adjacencyFrom(g Grid, start int) []Path {
	target := g[0][start]
	visited := make(map[Coord]bool)

	first := Coord{Row: 0, Col: start}
	visited[first] = true
	queue := []queueEntry{{at: first, path: Path{first}}}

	var completed []Path
	for len(queue) > 0 {
		entry := queue[0]
		queue = queue[1:]

		// Bottom row: record the path, keep searching other branches.
		if entry.at.Row == Rows-1 {
			completed = append(completed, entry.path)
			continue
		}

		for dc := -1; dc <= 1; dc++ {
			next := Coord{Row: entry.at.Row + 1, Col: entry.at.Col + dc}
			if next.Col < 0 || next.Col >= Cols {
				continue
			}
			if visited[next] || g[next.Row][next.Col] != target {
				continue
			}
			visited[next] = true

			path := make(Path, len(entry.path), len(entry.path)+1)
			copy(path, entry.path)
			path = append(path, next)
			queue = append(queue, queueEntry{at: next, path: path})
		}
	}
	return completed
}
