package ports

import (
	"context"
	"math/rand"
	"time"

	"svw.info/sudokugen/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver fills and solves grids.
//
// Fill always succeeds from the implicit empty grid; the rng drives the
// candidate order so repeated calls yield different solutions. Solve
// completes a caller-supplied partial grid and fails with
// domain.ErrUnsolvable when no completion exists.
type Solver interface {
	Fill(ctx context.Context, rng *rand.Rand) (domain.Grid, Stats, error)
	Solve(ctx context.Context, g domain.Grid) (domain.Grid, Stats, error)
}

// Generator creates new puzzles at a target difficulty. The seed fixes
// every random draw, so equal seeds produce equal puzzles.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast constraint checks (row/col/box).
type Validator interface {
	Validate(ctx context.Context, g domain.Grid) (ok bool, conflicts []domain.Position, err error)
}

// Store persists and retrieves puzzles.
type Store interface {
	Save(ctx context.Context, p *domain.Puzzle) error
	Load(ctx context.Context, id string) (*domain.Puzzle, error)
	List(ctx context.Context) ([]domain.PuzzleMeta, error)
}
