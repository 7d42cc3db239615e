package stats

import (
	"sort"

	"github.com/verte-zerg/tracepad/internal/model"
)

// TopTargetsByAttempts returns the n most practiced target labels.
func TopTargetsByAttempts(aggs []model.TargetAggregate, n int) []string {
	if n <= 0 || len(aggs) == 0 {
		return nil
	}
	totals := map[string]int{}
	for _, agg := range aggs {
		totals[agg.Target] += agg.Attempts
	}
	labels := make([]string, 0, len(totals))
	for label := range totals {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		if totals[labels[i]] == totals[labels[j]] {
			return labels[i] < labels[j]
		}
		return totals[labels[i]] > totals[labels[j]]
	})
	if n > len(labels) {
		n = len(labels)
	}
	return labels[:n]
}
