package engine

// scanHorizontal emits one path per row whose every cell holds the same
// non-empty symbol. A row with any empty cell or mismatch yields nothing.
func scanHorizontal(g Grid) []Path {
	var paths []Path
	for r := 0; r < Rows; r++ {
		sym := g[r][0]
		if sym == Empty {
			continue
		}
		matched := true
		for c := 1; c < Cols; c++ {
			if g[r][c] != sym {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		path := make(Path, Cols)
		for c := 0; c < Cols; c++ {
			path[c] = Coord{Row: r, Col: c}
		}
		paths = append(paths, path)
	}
	return paths
}

// scanVertical emits one path per column whose every cell holds the same
// non-empty symbol.
func scanVertical(g Grid) []Path {
	var paths []Path
	for c := 0; c < Cols; c++ {
		sym := g[0][c]
		if sym == Empty {
			continue
		}
		matched := true
		for r := 1; r < Rows; r++ {
			if g[r][c] != sym {
				matched = false
				break
			}
		}
		if !matched {
			continue
		}
		path := make(Path, Rows)
		for r := 0; r < Rows; r++ {
			path[r] = Coord{Row: r, Col: c}
		}
		paths = append(paths, path)
	}
	return paths
}

// scanDiagonal emits full-height runs at constant column-step +1 or -1.
// Only runs spanning every row count as diagonal wins; shorter slanted runs
// are deliberately ignored. When Cols < Rows neither window range is
// non-empty and no paths are produced.
func scanDiagonal(g Grid) []Path {
	var paths []Path

	// Slope +1: start columns [0, Cols-Rows].
	for c0 := 0; c0 <= Cols-Rows; c0++ {
		if p := diagonalRun(g, c0, 1); p != nil {
			paths = append(paths, p)
		}
	}

	// Slope -1: start columns [Rows-1, Cols-1].
	for c0 := Rows - 1; c0 < Cols; c0++ {
		if p := diagonalRun(g, c0, -1); p != nil {
			paths = append(paths, p)
		}
	}

	return paths
}

// diagonalRun checks the window starting at (0, c0) with the given column
// step for a shared non-empty symbol, returning the path or nil.
func diagonalRun(g Grid, c0, step int) Path {
	sym := g[0][c0]
	if sym == Empty {
		return nil
	}
	path := make(Path, Rows)
	path[0] = Coord{Row: 0, Col: c0}
	for r := 1; r < Rows; r++ {
		c := c0 + r*step
		if c < 0 || c >= Cols || g[r][c] != sym {
			return nil
		}
		path[r] = Coord{Row: r, Col: c}
	}
	return path
}
