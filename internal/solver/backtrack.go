package solver

import "svw.info/sudokugen/internal/domain"

// Backtracking is a recursive depth-first solver. Fill (fill.go) produces
// a random complete grid from empty; Solve (solve.go) completes a partial
// grid deterministically.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

// isValid reports whether v can go at (r,c): absent from row r, column c,
// and the 3x3 box with origin (r-r%3, c-c%3). One O(9+9+9) scan per call.
func isValid(g *domain.Grid, r, c int, v uint8) bool {
	for i := 0; i < 9; i++ {
		if g[r][i] == v || g[i][c] == v {
			return false
		}
	}
	br, bc := r-r%3, c-c%3
	for dr := 0; dr < 3; dr++ {
		for dc := 0; dc < 3; dc++ {
			if g[br+dr][bc+dc] == v {
				return false
			}
		}
	}
	return true
}

// findEmpty returns the first empty cell in row-major order.
func findEmpty(g *domain.Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == domain.Empty {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}
