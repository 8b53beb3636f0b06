package domain

import "strings"

// Difficulty selects how many clues get removed from a full solution.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
	Expert
)

// CellsToRemove returns the inclusive range of cells blanked for d.
// The zero value (Easy) is the default everywhere a difficulty is optional.
func (d Difficulty) CellsToRemove() (lo, hi int) {
	switch d {
	case Medium:
		return 45, 50
	case Hard:
		return 52, 57
	case Expert:
		return 59, 64
	default:
		return 35, 40 // Easy
	}
}

func (d Difficulty) String() string {
	switch d {
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	case Expert:
		return "expert"
	default:
		return "easy"
	}
}

// ParseDifficulty maps a wire string to a Difficulty, defaulting to Easy.
func ParseDifficulty(s string) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "medium":
		return Medium
	case "hard":
		return Hard
	case "expert":
		return Expert
	default:
		return Easy
	}
}
