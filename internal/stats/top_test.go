package stats

import (
	"testing"

	"github.com/verte-zerg/tracepad/internal/model"
)

func TestTopTargetsByAttempts(t *testing.T) {
	aggs := []model.TargetAggregate{
		{Game: "letters", Target: "B", Attempts: 4},
		{Game: "letters", Target: "A", Attempts: 4},
		{Game: "shapes", Target: "star", Attempts: 1},
	}
	top := TopTargetsByAttempts(aggs, 2)
	if len(top) != 2 || top[0] != "A" || top[1] != "B" {
		t.Fatalf("unexpected order: %v", top)
	}
	if TopTargetsByAttempts(aggs, 0) != nil {
		t.Fatalf("expected nil for n=0")
	}
}

func TestSelectWeakTargets(t *testing.T) {
	aggs := []model.TargetAggregate{
		{Target: "A", Attempts: 2, SumPct: 180},
		{Target: "B", Attempts: 1, SumPct: 30},
		{Target: "C", Attempts: 4, SumPct: 200},
	}
	weak := SelectWeakTargets(aggs, 2)
	if len(weak) != 2 {
		t.Fatalf("expected 2 weak targets, got %v", weak)
	}
	if _, ok := weak["B"]; !ok {
		t.Fatalf("expected B to be weak")
	}
	if _, ok := weak["A"]; ok {
		t.Fatalf("did not expect A to be weak")
	}
}
