package pathgen

import (
	"math"
	"testing"

	"github.com/verte-zerg/tracepad/internal/model"
)

func assertPath(t *testing.T, got, want model.Path) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d points, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if math.Abs(got[i].X-want[i].X) > 1e-9 || math.Abs(got[i].Y-want[i].Y) > 1e-9 {
			t.Fatalf("point %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestLetterA(t *testing.T) {
	ref := Generate(Letter('A'), model.Point{}, 100)
	if len(ref.Paths) != 1 {
		t.Fatalf("expected one sub-path, got %d", len(ref.Paths))
	}
	assertPath(t, ref.Paths[0], model.Path{
		{X: -40, Y: 50}, {X: 0, Y: -50}, {X: 40, Y: 50}, {X: -20, Y: 0}, {X: 20, Y: 0},
	})
}

func TestLetterLowercaseFolds(t *testing.T) {
	upper := LetterPath('A', model.Point{X: 10, Y: 10}, 60)
	lower := LetterPath('a', model.Point{X: 10, Y: 10}, 60)
	assertPath(t, lower, upper)
}

func TestUnauthoredLetterFallsBack(t *testing.T) {
	ref := Generate(Letter('Q'), model.Point{}, 100)
	assertPath(t, ref.Paths[0], model.Path{{X: 0, Y: -50}, {X: 0, Y: 50}})
	if HasLetter('Q') {
		t.Fatalf("expected Q to be unauthored")
	}
	if !HasLetter('z') {
		t.Fatalf("expected Z to be authored")
	}
}

func TestSquare(t *testing.T) {
	ref := Generate(Shape(Square), model.Point{X: 100, Y: 100}, 40)
	if !ref.Closed {
		t.Fatalf("expected closed shape")
	}
	assertPath(t, ref.Paths[0], model.Path{
		{X: 80, Y: 80}, {X: 120, Y: 80}, {X: 120, Y: 120}, {X: 80, Y: 120},
	})
}

func TestTriangle(t *testing.T) {
	got := ShapePath(Triangle, model.Point{}, 40)
	assertPath(t, got, model.Path{{X: 0, Y: -22}, {X: -20, Y: 11}, {X: 20, Y: 11}})
}

func TestCircle(t *testing.T) {
	got := ShapePath(Circle, model.Point{X: 10, Y: 20}, 50)
	if len(got) != DefaultCirclePoints {
		t.Fatalf("expected %d points, got %d", DefaultCirclePoints, len(got))
	}
	if got[0] != (model.Point{X: 60, Y: 20}) {
		t.Fatalf("expected first vertex at angle zero, got %v", got[0])
	}
	custom := CircleWithPoints(model.Point{}, 10, 8)
	if len(custom) != 8 {
		t.Fatalf("expected 8 points, got %d", len(custom))
	}
}

func TestRadialShapesStartAtTop(t *testing.T) {
	hex := ShapePath(Hexagon, model.Point{}, 100)
	if len(hex) != 6 || hex[0] != (model.Point{X: 0, Y: -100}) {
		t.Fatalf("unexpected hexagon: %v", hex)
	}
	star := ShapePath(Star, model.Point{}, 100)
	if len(star) != 10 || star[0] != (model.Point{X: 0, Y: -100}) {
		t.Fatalf("unexpected star: %v", star)
	}
	if r := star[1].Dist(model.Point{}); math.Abs(r-40) > 1.5 {
		t.Fatalf("expected inner radius near 40, got %v", r)
	}
}

func TestParseShape(t *testing.T) {
	tests := map[string]ShapeKind{
		"square":   Square,
		" Star ":   Star,
		"DIAMOND":  Diamond,
		"blob":     Circle,
		"":         Circle,
		"triangle": Triangle,
	}
	for name, want := range tests {
		if got := ParseShape(name); got != want {
			t.Fatalf("ParseShape(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestDigits(t *testing.T) {
	assertPath(t, DigitPath(1, model.Point{}, 100), model.Path{
		{X: -30, Y: -50}, {X: 0, Y: -50}, {X: 0, Y: 50}, {X: -30, Y: 50}, {X: 30, Y: 50},
	})
	for d := 0; d <= 9; d++ {
		if p := DigitPath(d, model.Point{X: 50, Y: 50}, 80); len(p) < 3 {
			t.Fatalf("digit %d: expected authored skeleton, got %v", d, p)
		}
	}
	if got := DigitPath(12, model.Point{}, 100); len(got) != 2 {
		t.Fatalf("expected fallback for 12, got %v", got)
	}
	if got := len(DigitPath(8, model.Point{}, 100)); got != 26 {
		t.Fatalf("expected two 13-point loops for 8, got %d", got)
	}
}

func TestWrapLines(t *testing.T) {
	lines := WrapLines("AB CD", 100, 300)
	if len(lines) != 2 || lines[0] != "AB" || lines[1] != "CD" {
		t.Fatalf("unexpected lines: %q", lines)
	}
	lines = WrapLines("Hello World", 20, DefaultMaxWidth)
	if len(lines) != 1 {
		t.Fatalf("expected a single line, got %q", lines)
	}
	if lines := WrapLines("   ", 20, DefaultMaxWidth); len(lines) != 0 {
		t.Fatalf("expected no lines, got %q", lines)
	}
}

func TestTextReference(t *testing.T) {
	ref := Generate(Text("Hi"), model.Point{}, 100)
	if len(ref.Paths) != 2 {
		t.Fatalf("expected two sub-paths, got %d", len(ref.Paths))
	}
	assertPath(t, ref.Paths[0], LetterPath('H', model.Point{X: 40}, 100))
	assertPath(t, ref.Paths[1], LetterPath('I', model.Point{X: 160}, 100))

	wrapped := TextReference("AB CD", model.Point{}, 100, 300)
	if len(wrapped.Paths) != 4 {
		t.Fatalf("expected four sub-paths, got %d", len(wrapped.Paths))
	}
	// C starts the second line one and a half sizes down.
	assertPath(t, wrapped.Paths[2], LetterPath('C', model.Point{X: 40, Y: 150}, 100))

	if !Generate(Text(""), model.Point{}, 100).Empty() {
		t.Fatalf("expected empty reference for empty text")
	}
}

func TestTargetString(t *testing.T) {
	if Letter('b').String() != "B" || Digit(7).String() != "7" || Shape(Star).String() != "star" {
		t.Fatalf("unexpected labels")
	}
}
