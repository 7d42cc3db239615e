package store

import (
	"context"
	"math"
	"path/filepath"
	"testing"
	"time"

	"github.com/verte-zerg/tracepad/internal/model"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "tracepad.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := s.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
	return s
}

func attempt(game, target string, pct float64, completed bool, ended time.Time) model.Attempt {
	return model.Attempt{
		SessionID:  "s1",
		Game:       game,
		Target:     target,
		Difficulty: "medium",
		Tolerance:  15,
		Metrics: model.AccuracyMetrics{
			Percentage:   pct,
			OnPathPoints: 10,
			TotalPoints:  20,
			AvgDistance:  3,
			MaxDistance:  math.Inf(1),
			Completed:    completed,
		},
		Attempts:  1,
		StartedAt: ended.Add(-2 * time.Second),
		EndedAt:   ended,
	}
}

func TestInsertAndListAttempts(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	for i, a := range []model.Attempt{
		attempt("letters", "A", 40, false, base),
		attempt("letters", "A", 90, true, base.Add(time.Minute)),
		attempt("shapes", "star", 70, false, base.Add(2*time.Minute)),
	} {
		id, err := s.InsertAttempt(ctx, a)
		if err != nil {
			t.Fatalf("insert %d: %v", i, err)
		}
		if id <= 0 {
			t.Fatalf("expected positive id, got %d", id)
		}
	}

	all, err := s.ListAttempts(ctx, model.StatsConfig{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 3 || all[0].Percentage != 40 || all[2].Target != "star" {
		t.Fatalf("unexpected attempts: %+v", all)
	}
	if all[0].DurationMs != 2000 {
		t.Fatalf("expected 2000ms duration, got %d", all[0].DurationMs)
	}

	letters, err := s.ListAttempts(ctx, model.StatsConfig{Game: "letters", Last: 1})
	if err != nil {
		t.Fatalf("list letters: %v", err)
	}
	if len(letters) != 1 || !letters[0].Completed {
		t.Fatalf("expected most recent letters attempt, got %+v", letters)
	}

	since := base.Add(90 * time.Second)
	recent, err := s.ListAttempts(ctx, model.StatsConfig{Since: &since})
	if err != nil {
		t.Fatalf("list since: %v", err)
	}
	if len(recent) != 1 || recent[0].Game != "shapes" {
		t.Fatalf("unexpected since filter result: %+v", recent)
	}
}

func TestTargetAggregates(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	inputs := []model.Attempt{
		attempt("letters", "A", 40, false, base),
		attempt("letters", "A", 90, true, base.Add(time.Minute)),
		attempt("letters", "B", 60, false, base.Add(2*time.Minute)),
	}
	for _, a := range inputs {
		if _, err := s.InsertAttempt(ctx, a); err != nil {
			t.Fatalf("insert: %v", err)
		}
	}
	aggs, err := s.TargetAggregates(ctx, "letters", 0)
	if err != nil {
		t.Fatalf("aggregates: %v", err)
	}
	if len(aggs) != 2 {
		t.Fatalf("expected 2 targets, got %d", len(aggs))
	}
	a := aggs[0]
	if a.Target != "A" || a.Attempts != 2 || a.Completions != 1 || a.Best != 90 || a.SumPct != 130 {
		t.Fatalf("unexpected aggregate: %+v", a)
	}
	windowed, err := s.TargetAggregates(ctx, "letters", 2)
	if err != nil {
		t.Fatalf("windowed aggregates: %v", err)
	}
	if len(windowed) != 2 || windowed[0].Attempts != 1 {
		t.Fatalf("unexpected windowed aggregates: %+v", windowed)
	}
}

func TestProgressDefaultsAndUpdates(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	games := []string{"shapes", "letters"}
	p, err := s.LoadProgress(ctx, games)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if p.GamesCompleted["shapes"] || p.AccuracyStats["letters"] != 0 || p.LastPlayed != "" {
		t.Fatalf("unexpected defaults: %+v", p)
	}
	if len(p.GamesCompleted) != 2 {
		t.Fatalf("expected entry per game")
	}

	if err := s.UpdateProgress(ctx, "letters", true, 91); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := s.UpdateProgress(ctx, "letters", false, 40); err != nil {
		t.Fatalf("update: %v", err)
	}
	if err := s.UpdateProgress(ctx, "shapes", false, 12); err != nil {
		t.Fatalf("update: %v", err)
	}
	p, err = s.LoadProgress(ctx, games)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !p.GamesCompleted["letters"] || p.AccuracyStats["letters"] != 40 {
		t.Fatalf("unexpected letters progress: %+v", p)
	}
	if p.LastPlayed != "shapes" {
		t.Fatalf("expected shapes last played, got %q", p.LastPlayed)
	}
}
