// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/verte-zerg/tracepad/internal/accuracy"
	"github.com/verte-zerg/tracepad/internal/model"
)

const sparkChars = " .:-=+*#%@"

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	if window <= 1 {
		copy(out, values)
		return out
	}
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		den := float64(i + 1)
		if i >= window {
			sum -= values[i-window]
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// RunningBest returns the best value seen up to each position.
func RunningBest(values []float64) []float64 {
	out := make([]float64, len(values))
	best := math.Inf(-1)
	for i, v := range values {
		if v > best {
			best = v
		}
		out[i] = best
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for percentages.
func Sparkline(values []float64) string {
	var b strings.Builder
	for _, v := range values {
		v = math.Max(0, math.Min(100, v))
		idx := int(math.Round(v / 100 * float64(len(sparkChars)-1)))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// AverageAccuracy returns the mean percentage of an aggregate.
func AverageAccuracy(agg model.TargetAggregate) float64 {
	if agg.Attempts == 0 {
		return 0
	}
	return agg.SumPct / float64(agg.Attempts)
}

// AggregateTargets groups attempt records per game and target, ordered by
// game then target.
func AggregateTargets(records []model.AttemptRecord) []model.TargetAggregate {
	type key struct{ game, target string }
	index := map[key]int{}
	var out []model.TargetAggregate
	for _, r := range records {
		k := key{r.Game, r.Target}
		i, ok := index[k]
		if !ok {
			i = len(out)
			index[k] = i
			out = append(out, model.TargetAggregate{Game: r.Game, Target: r.Target})
		}
		agg := &out[i]
		agg.Attempts++
		agg.SumPct += r.Percentage
		if r.Percentage > agg.Best {
			agg.Best = r.Percentage
		}
		if r.Completed {
			agg.Completions++
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Game == out[j].Game {
			return out[i].Target < out[j].Target
		}
		return out[i].Game < out[j].Game
	})
	return out
}

// RenderSummary prints a summary of attempts.
func RenderSummary(w io.Writer, records []model.AttemptRecord) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No attempts found.")
		return err
	}
	var total, best float64
	var completions int
	var practice time.Duration
	sessions := map[string]struct{}{}
	for _, r := range records {
		total += r.Percentage
		if r.Percentage > best {
			best = r.Percentage
		}
		if r.Completed {
			completions++
		}
		practice += time.Duration(r.DurationMs) * time.Millisecond
		sessions[r.SessionID] = struct{}{}
	}
	avg := total / float64(len(records))
	lines := []string{
		"Summary",
		fmt.Sprintf("Attempts: %d", len(records)),
		fmt.Sprintf("Sessions: %d", len(sessions)),
		fmt.Sprintf("Completions: %d", completions),
		fmt.Sprintf("Avg Accuracy: %.2f%% (%s)", avg, accuracy.Grade(avg)),
		fmt.Sprintf("Best Accuracy: %.2f%%", best),
		fmt.Sprintf("Practice Time: %s", practice.Round(time.Second)),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderCurves prints the accuracy learning curve across attempts.
func RenderCurves(w io.Writer, records []model.AttemptRecord, window int) error {
	return RenderCurvesWithSize(w, records, window, 0, defaultPlotHeight, false)
}

// RenderCurvesWithSize prints the learning curve sized to a given total width.
func RenderCurvesWithSize(w io.Writer, records []model.AttemptRecord, window, totalWidth, height int, useColor bool) error {
	if len(records) == 0 {
		return nil
	}
	pcts := make([]float64, len(records))
	for i, r := range records {
		pcts[i] = r.Percentage
	}
	width := 0
	if totalWidth > 0 {
		width = PlotWidthFor(totalWidth)
	}
	return PlotPercentages(w, "Learning Curve", []Series{
		{Name: fmt.Sprintf("Accuracy (avg of %d)", max(window, 1)), Values: MovingAverage(pcts, window)},
		{Name: "Best", Values: RunningBest(pcts)},
	}, accuracy.CompletionThreshold, width, height, useColor)
}

// RenderTargetTable prints per-target aggregates, weakest first.
func RenderTargetTable(w io.Writer, aggs []model.TargetAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No target stats found.")
		return err
	}
	rows := make([]model.TargetAggregate, len(aggs))
	copy(rows, aggs)
	sort.SliceStable(rows, func(i, j int) bool {
		ai, aj := AverageAccuracy(rows[i]), AverageAccuracy(rows[j])
		if ai == aj {
			return rows[i].Target < rows[j].Target
		}
		return ai < aj
	})

	if _, err := fmt.Fprintln(w, "Per-Target (Windowed)"); err != nil {
		return err
	}
	headers := []string{"Game", "Target", "Avg", "Best", "Grade", "Attempts", "Completed"}
	tableRows := make([][]string, 0, len(rows))
	for _, r := range rows {
		avg := AverageAccuracy(r)
		tableRows = append(tableRows, []string{
			r.Game,
			r.Target,
			fmt.Sprintf("%.2f%%", avg),
			fmt.Sprintf("%.2f%%", r.Best),
			accuracy.Grade(avg),
			fmt.Sprintf("%d", r.Attempts),
			fmt.Sprintf("%d", r.Completions),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true, 5: true, 6: true}
	for _, line := range formatTable(headers, tableRows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderTargetCurves prints one learning curve per selected target.
func RenderTargetCurves(w io.Writer, records []model.AttemptRecord, targets []string, window, totalWidth, height int, useColor bool) error {
	if len(targets) == 0 || len(records) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w, "Per-Target Curves"); err != nil {
		return err
	}
	width := 0
	if totalWidth > 0 {
		width = PlotWidthFor(totalWidth)
	}
	for _, target := range targets {
		var pcts []float64
		for _, r := range records {
			if r.Target == target {
				pcts = append(pcts, r.Percentage)
			}
		}
		if err := PlotPercentages(w, fmt.Sprintf("Target %s %s", target, Sparkline(pcts)), []Series{
			{Name: "Accuracy", Values: MovingAverage(pcts, window)},
		}, accuracy.CompletionThreshold, width, height, useColor); err != nil {
			return err
		}
	}
	return nil
}
