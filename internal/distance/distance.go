// Package distance computes point-to-path distances for tracing evaluation.
package distance

import (
	"math"

	"github.com/verte-zerg/tracepad/internal/model"
)

// MaxSegments bounds how many segments of a path are inspected per query.
const MaxSegments = 20

// Engine answers minimum-distance queries against reference paths. It is not
// safe for concurrent use.
type Engine struct {
	cache Cache
}

// NewEngine returns an Engine memoizing into cache. A nil cache disables
// memoization.
func NewEngine(cache Cache) *Engine {
	return &Engine{cache: cache}
}

// DistanceToPath returns the minimum distance from p to the sampled segments
// of path. The path wraps around: the segment after the last sampled vertex
// joins back to the start. An empty path is infinitely far away.
func (e *Engine) DistanceToPath(p model.Point, path model.Path) float64 {
	if len(path) == 0 {
		return math.Inf(1)
	}
	return e.distance(p, path, Fingerprint(path))
}

// DistanceToPathKeyed is DistanceToPath with a precomputed path fingerprint,
// for callers that query the same path many times.
func (e *Engine) DistanceToPathKeyed(p model.Point, path model.Path, fp uint64) float64 {
	if len(path) == 0 {
		return math.Inf(1)
	}
	return e.distance(p, path, fp)
}

// Reset drops all memoized results.
func (e *Engine) Reset() {
	if e.cache != nil {
		e.cache.Purge()
	}
}

func (e *Engine) distance(p model.Point, path model.Path, fp uint64) float64 {
	key := Key{Point: p, Path: fp, Len: len(path)}
	if e.cache != nil {
		if d, ok := e.cache.Get(key); ok {
			return d
		}
	}
	d := sampledDistance(p, path)
	if e.cache != nil {
		e.cache.Add(key, d)
	}
	return d
}

func sampledDistance(p model.Point, path model.Path) float64 {
	n := len(path)
	stride := n / MaxSegments
	if stride < 1 {
		stride = 1
	}
	best := math.Inf(1)
	for i := 0; i < n; i += stride {
		d := SegmentDistance(p, path[i], path[(i+stride)%n])
		if d < best {
			best = d
		}
	}
	return best
}

// SegmentDistance returns the distance from p to the segment [a, b]. Segments
// shorter than 1e-3 px collapse to the point a.
func SegmentDistance(p, a, b model.Point) float64 {
	ab := b.Sub(a)
	ap := p.Sub(a)
	lenSq := ab.X*ab.X + ab.Y*ab.Y
	if lenSq < 1e-6 {
		return p.Dist(a)
	}
	t := (ap.X*ab.X + ap.Y*ab.Y) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return p.Dist(a.Add(model.Point{X: t * ab.X, Y: t * ab.Y}))
}
