package usecase

import (
	"context"
	"errors"

	"svw.info/sudokugen/internal/domain"
	"svw.info/sudokugen/internal/metrics"
	"svw.info/sudokugen/internal/ports"
)

// Service is the facade the adapters talk to.
type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Store     ports.Store
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, st ports.Store) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Store: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	p, st, err := u.Generator.Generate(ctx, seed, d)
	if err == nil {
		metrics.PuzzlesGenerated.WithLabelValues(d.String()).Inc()
		metrics.GenerateDuration.Observe(st.Duration.Seconds())
		metrics.SolverNodes.Observe(float64(st.Nodes))
	}
	return p, st, err
}

func (u *Service) Solve(ctx context.Context, g domain.Grid) (domain.Grid, ports.Stats, error) {
	if u.Solver == nil {
		return domain.Grid{}, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

func (u *Service) Validate(ctx context.Context, g domain.Grid) (bool, []domain.Position, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

// Persistence
func (u *Service) Save(ctx context.Context, p *domain.Puzzle) error {
	if u.Store == nil {
		return errNotConfigured
	}
	return u.Store.Save(ctx, p)
}

func (u *Service) Load(ctx context.Context, id string) (*domain.Puzzle, error) {
	if u.Store == nil {
		return nil, errNotConfigured
	}
	return u.Store.Load(ctx, id)
}

func (u *Service) List(ctx context.Context) ([]domain.PuzzleMeta, error) {
	if u.Store == nil {
		return nil, errNotConfigured
	}
	return u.Store.List(ctx)
}
