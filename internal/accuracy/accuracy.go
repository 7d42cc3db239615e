// Package accuracy scores drawn strokes against reference outlines.
package accuracy

import (
	"math"

	"github.com/verte-zerg/tracepad/internal/distance"
	"github.com/verte-zerg/tracepad/internal/model"
)

// CompletionThreshold is the percentage at which a target counts as traced.
const CompletionThreshold = 85.0

// MaxSamples bounds how many drawn points are measured per evaluation.
const MaxSamples = 50

// MinAttemptPoints is the stroke length above which an evaluation counts as an
// attempt.
const MinAttemptPoints = 10

// Evaluator measures drawn points against a reference path.
type Evaluator struct {
	engine *distance.Engine
}

// NewEvaluator returns an Evaluator backed by engine. A nil engine gets an
// uncached one.
func NewEvaluator(engine *distance.Engine) *Evaluator {
	if engine == nil {
		engine = distance.NewEngine(nil)
	}
	return &Evaluator{engine: engine}
}

// Engine returns the distance engine used by the evaluator.
func (e *Evaluator) Engine() *distance.Engine {
	return e.engine
}

// Evaluate scores drawn against reference with the given tolerance in pixels.
// Long strokes are downsampled and the on-path count is scaled back up to the
// full stroke length. The Completed field is left false; State tracks it.
func (e *Evaluator) Evaluate(drawn, reference model.Path, tolerance float64) model.AccuracyMetrics {
	total := len(drawn)
	if total == 0 || len(reference) == 0 {
		return model.AccuracyMetrics{
			TotalPoints: total,
			AvgDistance: math.Inf(1),
			MaxDistance: math.Inf(1),
		}
	}

	sample := drawn
	if total > MaxSamples {
		stride := total/MaxSamples + 1
		sample = make(model.Path, 0, total/stride+1)
		for i := 0; i < total; i += stride {
			sample = append(sample, drawn[i])
		}
	}

	fp := distance.Fingerprint(reference)
	onPath := 0
	sum := 0.0
	maxDist := 0.0
	for _, p := range sample {
		d := e.engine.DistanceToPathKeyed(p, reference, fp)
		if d <= tolerance {
			onPath++
		}
		sum += d
		if d > maxDist {
			maxDist = d
		}
	}

	n := len(sample)
	if n < total {
		onPath = int(float64(onPath) * (float64(total) / float64(n)))
	}
	return model.AccuracyMetrics{
		Percentage:   float64(onPath) / float64(total) * 100,
		OnPathPoints: onPath,
		TotalPoints:  total,
		AvgDistance:  sum / float64(n),
		MaxDistance:  maxDist,
	}
}

// EvaluateReference scores drawn against every sub-path of ref taken together.
func (e *Evaluator) EvaluateReference(drawn model.Path, ref model.Reference, tolerance float64) model.AccuracyMetrics {
	return e.Evaluate(drawn, ref.Flatten(), tolerance)
}

// State accumulates evaluations of the current target.
type State struct {
	Metrics        model.AccuracyMetrics
	Attempts       int
	BestPercentage float64
}

// Completed reports whether the target has been traced at or above the
// threshold at any point since the last reset.
func (s *State) Completed() bool {
	return s.Metrics.Completed
}

// Update folds one evaluation into the state and reports whether it newly
// completed the target. Completion is sticky until Reset.
func (s *State) Update(m model.AccuracyMetrics) bool {
	wasCompleted := s.Metrics.Completed
	if m.TotalPoints > MinAttemptPoints && !wasCompleted {
		s.Attempts++
	}
	m.Completed = wasCompleted || m.Percentage >= CompletionThreshold
	s.Metrics = m
	if m.Percentage > s.BestPercentage {
		s.BestPercentage = m.Percentage
	}
	return m.Completed && !wasCompleted
}

// Reset returns the state to its zero value.
func (s *State) Reset() {
	*s = State{}
}
