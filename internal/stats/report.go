package stats

import (
	"context"

	"github.com/verte-zerg/tracepad/internal/model"
	"github.com/verte-zerg/tracepad/internal/store"
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Attempts      []model.AttemptRecord
	Window        []model.AttemptRecord
	TargetsAll    []model.TargetAggregate
	TargetsWindow []model.TargetAggregate
	Progress      model.Progress
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig, games []string) (Report, error) {
	attempts, err := st.ListAttempts(ctx, cfg)
	if err != nil {
		return Report{}, err
	}
	window := lastAttempts(attempts, cfg.CurveWindow)
	progress, err := st.LoadProgress(ctx, games)
	if err != nil {
		return Report{}, err
	}
	return Report{
		Attempts:      attempts,
		Window:        window,
		TargetsAll:    AggregateTargets(attempts),
		TargetsWindow: AggregateTargets(window),
		Progress:      progress,
	}, nil
}

func lastAttempts(records []model.AttemptRecord, window int) []model.AttemptRecord {
	if window <= 0 || len(records) <= window {
		return records
	}
	return records[len(records)-window:]
}
