package validator

import (
	"context"

	"svw.info/sudokugen/internal/domain"
)

// FastValidator scans rows, columns, and boxes with digit bitmasks.
type FastValidator struct{}

func New() *FastValidator { return &FastValidator{} }

func (v *FastValidator) Validate(ctx context.Context, g domain.Grid) (bool, []domain.Position, error) {
	conf := make([]domain.Position, 0, 8)
	// rows
	for r := 0; r < 9; r++ {
		m := 0
		for c := 0; c < 9; c++ {
			val := g[r][c]
			if val == domain.Empty {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.Position{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// cols
	for c := 0; c < 9; c++ {
		m := 0
		for r := 0; r < 9; r++ {
			val := g[r][c]
			if val == domain.Empty {
				continue
			}
			bit := 1 << val
			if m&bit != 0 {
				conf = append(conf, domain.Position{Row: r, Col: c})
			}
			m |= bit
		}
	}
	// boxes
	for br := 0; br < 3; br++ {
		for bc := 0; bc < 3; bc++ {
			m := 0
			for dr := 0; dr < 3; dr++ {
				for dc := 0; dc < 3; dc++ {
					val := g[br*3+dr][bc*3+dc]
					if val == domain.Empty {
						continue
					}
					bit := 1 << val
					if m&bit != 0 {
						conf = append(conf, domain.Position{Row: br*3 + dr, Col: bc*3 + dc})
					}
					m |= bit
				}
			}
		}
	}
	return len(conf) == 0, conf, nil
}

// Complete reports whether g is a full, conflict-free solution: no empty
// cells and every row, column, and box holding each digit exactly once.
func (v *FastValidator) Complete(g domain.Grid) bool {
	if g.CountEmpty() != 0 {
		return false
	}
	ok, _, _ := v.Validate(context.Background(), g)
	return ok
}
