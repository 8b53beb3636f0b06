package generator

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/ports"
)

// RandomGenerator carves a playable puzzle out of a freshly solved grid.
//
// It deliberately does not re-check uniqueness of the carved puzzle: the
// board is a strict subset of the solution's assignments, so that solution
// always completes it, but other completions may exist too. Carving under
// a uniqueness constraint would change both generation latency and the
// distribution of clue layouts.
type RandomGenerator struct {
	Solver ports.Solver
}

// New wires a generator around the given solver.
func New(s ports.Solver) *RandomGenerator {
	return &RandomGenerator{Solver: s}
}

// Generate builds a puzzle: solve an empty grid into a full solution, then
// blank k cells chosen by a random permutation of all 81 positions, with k
// drawn uniformly from the difficulty's inclusive removal range. Every
// random draw comes from a rand.Rand seeded with seed, so equal seeds
// reproduce the exact same puzzle.
func (g *RandomGenerator) Generate(ctx context.Context, seed int64, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	solution, st, err := g.Solver.Fill(ctx, rng)
	if err != nil {
		return nil, st, err
	}

	board := solution
	lo, hi := diff.CellsToRemove()
	k := lo + rng.Intn(hi-lo+1)
	for _, pos := range rng.Perm(81)[:k] {
		board[pos/9][pos%9] = domain.Empty
	}

	p := &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Board:      board,
		Solution:   solution,
		CreatedAt:  time.Now().UnixNano(),
	}
	return p, ports.Stats{Nodes: st.Nodes, Duration: time.Since(start)}, nil
}
