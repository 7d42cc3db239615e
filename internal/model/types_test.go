package model

import "testing"

func TestPointArithmetic(t *testing.T) {
	p := Point{X: 4, Y: 6}
	q := Point{X: 1, Y: 2}
	if got := p.Sub(q); got != (Point{X: 3, Y: 4}) {
		t.Fatalf("unexpected difference %v", got)
	}
	if got := q.Add(Point{X: 3, Y: 4}); got != p {
		t.Fatalf("unexpected sum %v", got)
	}
	if got := p.Dist(q); got != 5 {
		t.Fatalf("expected distance 5, got %v", got)
	}
}
