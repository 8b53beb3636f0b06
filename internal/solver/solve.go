package solver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// ErrBudget means the search gave up before exhausting the space.
// Adversarial partial grids can force astronomical backtracking, so Solve
// bounds its node count instead of trusting the caller.
var ErrBudget = errors.New("solver: node budget exhausted")

// solveNodeBudget is generous: ordinary puzzles solve in well under 10^5
// nodes, while pathological near-empty grids with a contradiction planted
// deep can blow past 10^8.
const solveNodeBudget = 2_000_000

// Solve completes a caller-supplied partial grid in place of the removed
// digits. Candidates are tried in ascending order, so the result is
// deterministic for a given input. Returns domain.ErrUnsolvable when the
// givens are contradictory or admit no completion.
func (s *Backtracking) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	start := time.Now()

	// A duplicated given would otherwise slip past the per-placement check,
	// since that only inspects candidates for empty cells.
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g[r][c]
			if v == domain.Empty {
				continue
			}
			if v > 9 {
				return domain.Grid{}, ports.Stats{Duration: time.Since(start)},
					fmt.Errorf("%w: cell (%d,%d) holds %d", domain.ErrOutOfRange, r, c, v)
			}
			g[r][c] = domain.Empty
			ok := isValid(&g, r, c, v)
			g[r][c] = v
			if !ok {
				return domain.Grid{}, ports.Stats{Duration: time.Since(start)}, domain.ErrUnsolvable
			}
		}
	}

	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil || nodes > solveNodeBudget {
			return false
		}
		r, c, more := findEmpty(&g)
		if !more {
			return true
		}
		for v := uint8(1); v <= 9; v++ {
			nodes++
			if isValid(&g, r, c, v) {
				g[r][c] = v
				if dfs() {
					return true
				}
				g[r][c] = domain.Empty
			}
		}
		return false
	}

	if !dfs() {
		st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
		if err := ctx.Err(); err != nil {
			return domain.Grid{}, st, err
		}
		if nodes > solveNodeBudget {
			return domain.Grid{}, st, ErrBudget
		}
		return domain.Grid{}, st, domain.ErrUnsolvable
	}
	return g, ports.Stats{Nodes: nodes, Duration: time.Since(start)}, nil
}
