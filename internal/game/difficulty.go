package game

import (
	"fmt"
	"strings"
)

// Difficulty controls how far a stroke may stray from the outline.
type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
)

// Difficulties lists the levels from most to least forgiving.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// ShapeTolerance is used by shape targets regardless of difficulty.
const ShapeTolerance = 15.0

// Tolerance returns the on-path distance in pixels for d. Unknown values get
// the medium tolerance.
func (d Difficulty) Tolerance() float64 {
	switch d {
	case Easy:
		return 20
	case Hard:
		return 10
	default:
		return 15
	}
}

// Title returns the display name.
func (d Difficulty) Title() string {
	if d == "" {
		return ""
	}
	return strings.ToUpper(string(d[:1])) + string(d[1:])
}

// ParseDifficulty accepts a level name in any case.
func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Difficulties {
		if d == known {
			return d, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q", s)
}

// DifficultyAt maps 1, 2 and 3 to easy, medium and hard.
func DifficultyAt(n int) (Difficulty, bool) {
	if n < 1 || n > len(Difficulties) {
		return "", false
	}
	return Difficulties[n-1], true
}
