package solver

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// Fill produces a complete random solution starting from the empty grid.
// Cells are visited in row-major order; at each cell the candidates 1-9
// are reshuffled with rng before being tried, which is what makes repeated
// calls yield different grids. From empty the search always terminates
// with a solution, so the only error path is context cancellation.
func (s *Backtracking) Fill(ctx context.Context, rng *rand.Rand) (domain.Grid, ports.Stats, error) {
	start := time.Now()
	var grid domain.Grid
	nums := [9]uint8{1, 2, 3, 4, 5, 6, 7, 8, 9}
	nodes := 0

	var dfs func(r, c int) bool
	dfs = func(r, c int) bool {
		if ctx.Err() != nil {
			return false
		}
		if r == 9 {
			return true
		}
		nr, nc := r, c+1
		if nc == 9 {
			nr, nc = r+1, 0
		}
		rng.Shuffle(9, func(i, j int) { nums[i], nums[j] = nums[j], nums[i] })
		for _, v := range nums {
			nodes++
			if isValid(&grid, r, c, v) {
				grid[r][c] = v
				if dfs(nr, nc) {
					return true
				}
				grid[r][c] = domain.Empty
			}
		}
		return false
	}

	if !dfs(0, 0) {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return domain.Grid{}, st, err
		}
		// Unreachable from an empty grid.
		return domain.Grid{}, st, domain.ErrUnsolvable
	}
	return grid, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
