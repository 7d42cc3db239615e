package accuracy

import (
	"math"
	"testing"

	"github.com/verte-zerg/tracepad/internal/distance"
	"github.com/verte-zerg/tracepad/internal/model"
	"github.com/verte-zerg/tracepad/internal/pathgen"
)

func TestEvaluateSquareCorners(t *testing.T) {
	ref := pathgen.Generate(pathgen.Shape(pathgen.Square), model.Point{X: 100, Y: 100}, 40)
	drawn := model.Path{{X: 80, Y: 80}, {X: 120, Y: 80}, {X: 120, Y: 120}, {X: 80, Y: 120}}
	e := NewEvaluator(distance.NewEngine(distance.NewClearingCache(0)))
	m := e.EvaluateReference(drawn, ref, 15)
	if m.Percentage < CompletionThreshold {
		t.Fatalf("expected at least %.0f%%, got %.2f", CompletionThreshold, m.Percentage)
	}
	var s State
	if !s.Update(m) {
		t.Fatalf("expected the update to complete the target")
	}
	if !s.Completed() {
		t.Fatalf("expected completed state")
	}
}

func TestEvaluateFarStroke(t *testing.T) {
	ref := pathgen.Generate(pathgen.Shape(pathgen.Circle), model.Point{}, 50)
	drawn := model.Path{{X: 1050, Y: 0}, {X: 0, Y: 1050}, {X: -1050, Y: 0}}
	m := NewEvaluator(nil).EvaluateReference(drawn, ref, 10)
	if m.Percentage != 0 || m.OnPathPoints != 0 {
		t.Fatalf("expected no points on path, got %+v", m)
	}
	if math.Abs(m.AvgDistance-1000) > 5 {
		t.Fatalf("expected average distance near 1000, got %v", m.AvgDistance)
	}
	var s State
	if s.Update(m) || s.Completed() {
		t.Fatalf("expected target to stay incomplete")
	}
}

func TestEvaluateEmptyInput(t *testing.T) {
	e := NewEvaluator(nil)
	m := e.Evaluate(nil, model.Path{{X: 0, Y: 0}, {X: 10, Y: 0}}, 10)
	if m.Percentage != 0 || m.TotalPoints != 0 || !math.IsInf(m.AvgDistance, 1) || !math.IsInf(m.MaxDistance, 1) {
		t.Fatalf("unexpected metrics for empty stroke: %+v", m)
	}
	m = e.Evaluate(model.Path{{X: 1, Y: 1}, {X: 2, Y: 2}}, nil, 10)
	if m.TotalPoints != 2 || m.Percentage != 0 || !math.IsInf(m.AvgDistance, 1) {
		t.Fatalf("unexpected metrics for empty reference: %+v", m)
	}
}

func lineStroke(on, off int) model.Path {
	drawn := make(model.Path, 0, on+off)
	for i := 0; i < on; i++ {
		drawn = append(drawn, model.Point{X: float64(i), Y: 0})
	}
	for i := 0; i < off; i++ {
		drawn = append(drawn, model.Point{X: float64(on + i), Y: 100})
	}
	return drawn
}

func TestEvaluateDownsamplesLongStrokes(t *testing.T) {
	ref := model.Path{{X: 0, Y: 0}, {X: 1000, Y: 0}}
	e := NewEvaluator(nil)

	// 102 points sample with stride 3 into 34 points.
	m := e.Evaluate(lineStroke(102, 0), ref, 5)
	if m.OnPathPoints != 102 || m.Percentage != 100 {
		t.Fatalf("expected all points on path, got %+v", m)
	}
	m = e.Evaluate(lineStroke(51, 51), ref, 5)
	if m.OnPathPoints != 51 || m.TotalPoints != 102 {
		t.Fatalf("expected scaled on-path count 51, got %+v", m)
	}
	if math.Abs(m.Percentage-50) > 1e-9 {
		t.Fatalf("expected 50%%, got %v", m.Percentage)
	}
	if m.MaxDistance != 100 {
		t.Fatalf("expected max distance 100, got %v", m.MaxDistance)
	}
}

func TestEvaluateIsDeterministic(t *testing.T) {
	ref := pathgen.Generate(pathgen.Letter('A'), model.Point{X: 200, Y: 200}, 120)
	drawn := lineStroke(30, 40)
	cached := NewEvaluator(distance.NewEngine(distance.NewClearingCache(5)))
	first := cached.EvaluateReference(drawn, ref, 15)
	second := cached.EvaluateReference(drawn, ref, 15)
	plain := NewEvaluator(nil).EvaluateReference(drawn, ref, 15)
	if first != second || first != plain {
		t.Fatalf("expected identical metrics: %+v %+v %+v", first, second, plain)
	}
}

func TestStateUpdate(t *testing.T) {
	var s State
	s.Update(model.AccuracyMetrics{Percentage: 50, TotalPoints: 11})
	if s.Attempts != 1 || s.Completed() || s.BestPercentage != 50 {
		t.Fatalf("unexpected state after first update: %+v", s)
	}
	s.Update(model.AccuracyMetrics{Percentage: 40, TotalPoints: 10})
	if s.Attempts != 1 {
		t.Fatalf("short strokes must not count as attempts, got %d", s.Attempts)
	}
	if s.BestPercentage != 50 {
		t.Fatalf("best must not decrease, got %v", s.BestPercentage)
	}
	if !s.Update(model.AccuracyMetrics{Percentage: 85, TotalPoints: 30}) {
		t.Fatalf("expected completion at threshold")
	}
	if s.Attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", s.Attempts)
	}
	if s.Update(model.AccuracyMetrics{Percentage: 10, TotalPoints: 30}) {
		t.Fatalf("completion must be reported once")
	}
	if !s.Completed() || s.Attempts != 2 || s.BestPercentage != 85 || s.Metrics.Percentage != 10 {
		t.Fatalf("unexpected state after completion: %+v", s)
	}
	s.Reset()
	if s.Completed() || s.Attempts != 0 || s.BestPercentage != 0 {
		t.Fatalf("expected reset state, got %+v", s)
	}
}

func TestGrade(t *testing.T) {
	tests := []struct {
		pct  float64
		want string
	}{
		{100, "A+"}, {95, "A+"}, {94.9, "A"}, {90, "A"}, {85, "B+"}, {80, "B"},
		{75, "C+"}, {70, "C"}, {60, "D"}, {59.9, "F"}, {0, "F"},
	}
	for _, tt := range tests {
		if got := Grade(tt.pct); got != tt.want {
			t.Fatalf("Grade(%v) = %q, want %q", tt.pct, got, tt.want)
		}
	}
}

func TestFeedback(t *testing.T) {
	if got := Feedback(92, 0); got != "Excellent tracing!" {
		t.Fatalf("unexpected feedback: %q", got)
	}
	if got := Feedback(55, 5); got != "Try to follow the shape more closely." {
		t.Fatalf("unexpected feedback: %q", got)
	}
	if got := Feedback(20, 2); got != "Take your time and trace carefully." {
		t.Fatalf("unexpected feedback: %q", got)
	}
	if got := Feedback(20, 3); got != "Keep practicing, you'll get better!" {
		t.Fatalf("unexpected feedback: %q", got)
	}
}

func TestClassOf(t *testing.T) {
	if ClassOf("A+") != ClassA || ClassOf("B") != ClassB || ClassOf("C+") != ClassC || ClassOf("D") != ClassD || ClassOf("F") != ClassF {
		t.Fatalf("unexpected grade classes")
	}
	if c := ClassOf("A").Color(); c.G != 128 {
		t.Fatalf("unexpected colour for A: %v", c)
	}
}
