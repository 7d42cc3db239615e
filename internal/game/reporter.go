package game

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/verte-zerg/tracepad/internal/model"
	"github.com/verte-zerg/tracepad/internal/store"
)

// Result is one evaluation worth recording. Final results close a stroke;
// non-final results are only reported when they complete the target.
type Result struct {
	Game           string
	Target         string
	Difficulty     Difficulty
	Tolerance      float64
	Metrics        model.AccuracyMetrics
	Attempts       int
	Final          bool
	NewlyCompleted bool
	Completed      bool
	StartedAt      time.Time
	EndedAt        time.Time
}

// Reporter receives results from a Session.
type Reporter interface {
	Record(ctx context.Context, r Result) error
}

// StoreReporter persists results to the SQLite store.
type StoreReporter struct {
	store     *store.Store
	sessionID string
}

// NewStoreReporter returns a reporter writing to st under a fresh session ID.
func NewStoreReporter(st *store.Store) *StoreReporter {
	return &StoreReporter{store: st, sessionID: uuid.NewString()}
}

// SessionID identifies the practice run the reporter writes under.
func (r *StoreReporter) SessionID() string {
	return r.sessionID
}

// Record stores final strokes as attempts and updates game progress.
func (r *StoreReporter) Record(ctx context.Context, res Result) error {
	if r == nil || r.store == nil {
		return nil
	}
	if res.Final {
		attempt := model.Attempt{
			SessionID:  r.sessionID,
			Game:       res.Game,
			Target:     res.Target,
			Difficulty: string(res.Difficulty),
			Tolerance:  res.Tolerance,
			Metrics:    res.Metrics,
			Attempts:   res.Attempts,
			StartedAt:  res.StartedAt,
			EndedAt:    res.EndedAt,
		}
		if _, err := r.store.InsertAttempt(ctx, attempt); err != nil {
			return fmt.Errorf("failed to record attempt: %w", err)
		}
	}
	if res.Final || res.NewlyCompleted {
		if err := r.store.UpdateProgress(ctx, res.Game, res.Completed, res.Metrics.Percentage); err != nil {
			return fmt.Errorf("failed to update progress: %w", err)
		}
	}
	return nil
}
