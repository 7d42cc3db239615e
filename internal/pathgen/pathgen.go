// Package pathgen builds reference outlines for letters, digits, shapes and text.
package pathgen

import (
	"fmt"
	"math"
	"strings"

	"github.com/verte-zerg/tracepad/internal/model"
)

// Kind tags the variant held by a Target.
type Kind int

const (
	KindLetter Kind = iota
	KindDigit
	KindShape
	KindText
)

// Target identifies what to generate. Only the field matching Kind is used.
type Target struct {
	Kind   Kind
	Letter rune
	Digit  int
	Shape  ShapeKind
	Text   string
}

// Letter returns a letter target. Lowercase input is folded to uppercase.
func Letter(r rune) Target {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	return Target{Kind: KindLetter, Letter: r}
}

// Digit returns a digit target.
func Digit(d int) Target {
	return Target{Kind: KindDigit, Digit: d}
}

// Shape returns a shape target.
func Shape(k ShapeKind) Target {
	return Target{Kind: KindShape, Shape: k}
}

// Text returns a text target.
func Text(s string) Target {
	return Target{Kind: KindText, Text: s}
}

// String returns a display label for the target.
func (t Target) String() string {
	switch t.Kind {
	case KindLetter:
		return string(t.Letter)
	case KindDigit:
		return fmt.Sprintf("%d", t.Digit)
	case KindShape:
		return t.Shape.String()
	case KindText:
		return t.Text
	default:
		return "?"
	}
}

// Generate returns the outline of target centred on anchor at the given size.
// Text targets treat anchor as the top-left start position and wrap at
// DefaultMaxWidth.
func Generate(target Target, anchor model.Point, size int) model.Reference {
	switch target.Kind {
	case KindLetter:
		return single(LetterPath(target.Letter, anchor, size), false)
	case KindDigit:
		return single(DigitPath(target.Digit, anchor, size), false)
	case KindShape:
		return single(ShapePath(target.Shape, anchor, size), true)
	case KindText:
		return TextReference(target.Text, anchor, size, DefaultMaxWidth)
	default:
		return single(fallback(anchor, size), false)
	}
}

func single(p model.Path, closed bool) model.Reference {
	return model.Reference{Paths: []model.Path{p}, Closed: closed}
}

// fallback is the vertical bar used for anything without an authored glyph.
func fallback(c model.Point, size int) model.Path {
	half := float64(size / 2)
	return model.Path{{X: c.X, Y: c.Y - half}, {X: c.X, Y: c.Y + half}}
}

// floorDiv halves a width the way the glyph tables expect: toward -Inf.
func floorDiv(v, d float64) float64 {
	return math.Floor(v / d)
}

func pt(x, y float64) model.Point {
	return model.Point{X: x, Y: y}
}

func truncPt(x, y float64) model.Point {
	return model.Point{X: math.Trunc(x), Y: math.Trunc(y)}
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
