package domain

import "fmt"

// Empty marks a cell with no value.
const Empty uint8 = 0

// Grid is a 9x9 Sudoku grid. Cells hold Empty or a digit 1-9.
// Being a plain array it copies by value, which is how board/solution
// pairs get their independent lifetimes.
type Grid [9][9]uint8

// CountEmpty returns the number of unfilled cells.
func (g *Grid) CountEmpty() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == Empty {
				n++
			}
		}
	}
	return n
}

// Position identifies a cell on the grid.
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// InRange reports whether the position addresses a real cell.
func (p Position) InRange() bool {
	return p.Row >= 0 && p.Row < 9 && p.Col >= 0 && p.Col < 9
}

// Puzzle pairs a playable board with the full solution it was carved from.
// Board cells are either Empty (removed clue) or equal to the matching
// Solution cell.
type Puzzle struct {
	ID         string     `json:"id,omitempty"`
	Seed       int64      `json:"seed,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	Board      Grid       `json:"board"`
	Solution   Grid       `json:"solution"`
	CreatedAt  int64      `json:"createdAt,omitempty"`
	// Optional user metadata
	Name string `json:"name,omitempty"`
}

// IsCorrectNumber reports whether placing v at the given position matches
// the stored solution. Out-of-range digits or positions fail loudly rather
// than clamping, so caller bugs surface instead of being masked.
func (p *Puzzle) IsCorrectNumber(v uint8, at Position) (bool, error) {
	if v < 1 || v > 9 {
		return false, fmt.Errorf("%w: digit %d", ErrOutOfRange, v)
	}
	if !at.InRange() {
		return false, fmt.Errorf("%w: cell (%d,%d)", ErrOutOfRange, at.Row, at.Col)
	}
	return p.Solution[at.Row][at.Col] == v, nil
}

// PuzzleMeta is a lightweight listing entry.
type PuzzleMeta struct {
	ID         string     `json:"id"`
	Name       string     `json:"name,omitempty"`
	Difficulty Difficulty `json:"difficulty"`
	CreatedAt  int64      `json:"createdAt"`
}
