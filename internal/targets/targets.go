// Package targets lists what each practice mode asks the user to trace.
package targets

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/tracepad/internal/pathgen"
)

// Mode is a practice mode.
type Mode string

const (
	ModeShapes     Mode = "shapes"
	ModeLetters    Mode = "letters"
	ModeNumbers    Mode = "numbers"
	ModeSentence   Mode = "sentence"
	ModePlayground Mode = "playground"
)

// Modes lists every mode in menu order.
var Modes = []Mode{ModeShapes, ModeLetters, ModeNumbers, ModeSentence, ModePlayground}

// GameModes lists the modes that are scored.
var GameModes = []Mode{ModeShapes, ModeLetters, ModeNumbers, ModeSentence}

// ParseMode validates a mode name.
func ParseMode(s string) (Mode, error) {
	m := Mode(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Modes {
		if m == known {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown mode %q", s)
}

// Next returns the mode after m, wrapping around.
func (m Mode) Next() Mode {
	for i, known := range Modes {
		if known == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return Modes[0]
}

// Scored reports whether the mode evaluates strokes.
func (m Mode) Scored() bool {
	return m != ModePlayground
}

// Item is one entry of a catalog.
type Item struct {
	Label  string
	Target pathgen.Target
	// Divisor shrinks the target: larger values draw it smaller.
	Divisor float64
}

var shapeDivisors = map[pathgen.ShapeKind]float64{
	pathgen.Circle:    1,
	pathgen.Square:    1,
	pathgen.Triangle:  1,
	pathgen.Rectangle: 2,
	pathgen.Diamond:   2,
	pathgen.Hexagon:   2,
	pathgen.Star:      3,
}

var sentenceDivisors = []float64{1, 1.2, 1.3, 1.4}

// Catalog returns the targets of a mode. Sentence mode uses the given
// sentences; playground has no targets.
func Catalog(mode Mode, sentenceList []string) []Item {
	switch mode {
	case ModeShapes:
		items := make([]Item, 0, len(pathgen.AllShapes))
		for _, k := range pathgen.AllShapes {
			items = append(items, Item{Label: k.String(), Target: pathgen.Shape(k), Divisor: shapeDivisors[k]})
		}
		return items
	case ModeLetters:
		items := make([]Item, 0, 26)
		for r := 'A'; r <= 'Z'; r++ {
			items = append(items, Item{Label: string(r), Target: pathgen.Letter(r), Divisor: letterDivisor(r)})
		}
		return items
	case ModeNumbers:
		items := make([]Item, 0, 10)
		for d := 0; d <= 9; d++ {
			items = append(items, Item{Label: fmt.Sprintf("%d", d), Target: pathgen.Digit(d), Divisor: digitDivisor(d)})
		}
		return items
	case ModeSentence:
		items := make([]Item, 0, len(sentenceList))
		for i, s := range sentenceList {
			items = append(items, Item{Label: s, Target: pathgen.Text(s), Divisor: sentenceDivisors[i%len(sentenceDivisors)]})
		}
		return items
	default:
		return nil
	}
}

func letterDivisor(r rune) float64 {
	switch {
	case r <= 'H':
		return 1
	case r <= 'P':
		return 2
	default:
		return 3
	}
}

func digitDivisor(d int) float64 {
	switch {
	case d <= 3:
		return 1
	case d <= 6:
		return 2
	default:
		return 3
	}
}

// Find returns the index of the item with the given label, ignoring case.
func Find(items []Item, label string) (int, bool) {
	for i, it := range items {
		if strings.EqualFold(it.Label, label) {
			return i, true
		}
	}
	return -1, false
}
