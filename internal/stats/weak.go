package stats

import (
	"sort"

	"github.com/verte-zerg/tracepad/internal/model"
)

// SelectWeakTargets selects the labels with the lowest average accuracy.
func SelectWeakTargets(aggs []model.TargetAggregate, top int) map[string]struct{} {
	weakSet := map[string]struct{}{}
	if len(aggs) == 0 {
		return weakSet
	}
	candidates := make([]model.TargetAggregate, len(aggs))
	copy(candidates, aggs)
	sort.Slice(candidates, func(i, j int) bool {
		ai := AverageAccuracy(candidates[i])
		aj := AverageAccuracy(candidates[j])
		if ai == aj {
			return candidates[i].Target < candidates[j].Target
		}
		return ai < aj
	})
	if top <= 0 || top > len(candidates) {
		top = len(candidates)
	}
	for i := 0; i < top; i++ {
		weakSet[candidates[i].Target] = struct{}{}
	}
	return weakSet
}
