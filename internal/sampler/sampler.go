// Package sampler collects pointer positions into strokes and paces
// evaluation of the stroke in progress.
package sampler

import (
	"image"
	"time"

	"github.com/verte-zerg/tracepad/internal/model"
)

const (
	// MinEvalPoints is the smallest stroke that may be evaluated.
	MinEvalPoints = 5
	// EvalEveryPoints triggers an evaluation after this many new points.
	EvalEveryPoints = 10
	// EvalEveryMs triggers an evaluation after this much time.
	EvalEveryMs = 100
)

// Clock supplies monotonic milliseconds.
type Clock interface {
	NowMs() int64
}

// SystemClock measures milliseconds since it was created.
type SystemClock struct {
	start time.Time
}

// NewSystemClock returns a clock anchored at the current instant.
func NewSystemClock() *SystemClock {
	return &SystemClock{start: time.Now()}
}

// NowMs implements Clock.
func (c *SystemClock) NowMs() int64 {
	return time.Since(c.start).Milliseconds()
}

// Sampler turns pointer events in screen coordinates into a canvas-local
// stroke.
type Sampler struct {
	bounds     image.Rectangle
	points     model.Path
	active     bool
	sinceEval  int
	lastEvalMs int64
}

// New returns a Sampler for a canvas occupying bounds on screen.
func New(bounds image.Rectangle) *Sampler {
	return &Sampler{bounds: bounds}
}

// SetBounds moves or resizes the canvas area.
func (s *Sampler) SetBounds(bounds image.Rectangle) {
	s.bounds = bounds
}

// Bounds returns the canvas area on screen.
func (s *Sampler) Bounds() image.Rectangle {
	return s.bounds
}

// Contains reports whether a screen point lies on the canvas.
func (s *Sampler) Contains(p model.Point) bool {
	return p.X >= float64(s.bounds.Min.X) && p.X < float64(s.bounds.Max.X) &&
		p.Y >= float64(s.bounds.Min.Y) && p.Y < float64(s.bounds.Max.Y)
}

// Local converts a screen point to canvas coordinates.
func (s *Sampler) Local(p model.Point) model.Point {
	return p.Sub(model.Point{X: float64(s.bounds.Min.X), Y: float64(s.bounds.Min.Y)})
}

// Begin starts a new stroke at p if p lies on the canvas. The previous
// stroke's points are discarded.
func (s *Sampler) Begin(p model.Point, nowMs int64) bool {
	if !s.Contains(p) {
		return false
	}
	s.points = model.Path{s.Local(p)}
	s.active = true
	s.sinceEval = 1
	s.lastEvalMs = nowMs
	return true
}

// Extend appends p to the active stroke. Points off the canvas and events
// with no active stroke are ignored.
func (s *Sampler) Extend(p model.Point, nowMs int64) (model.Point, bool) {
	if !s.active || !s.Contains(p) {
		return model.Point{}, false
	}
	local := s.Local(p)
	s.points = append(s.points, local)
	s.sinceEval++
	return local, true
}

// End finishes the active stroke and returns its points. The points stay
// available through Points until the next Begin.
func (s *Sampler) End() model.Path {
	s.active = false
	return s.points
}

// Active reports whether a stroke is in progress.
func (s *Sampler) Active() bool {
	return s.active
}

// Points returns the current stroke.
func (s *Sampler) Points() model.Path {
	return s.points
}

// Len returns the number of points in the current stroke.
func (s *Sampler) Len() int {
	return len(s.points)
}

// Ready reports whether the stroke is long enough to evaluate.
func (s *Sampler) Ready() bool {
	return len(s.points) >= MinEvalPoints
}

// Due reports whether enough points or time have accumulated since the last
// evaluation.
func (s *Sampler) Due(nowMs int64) bool {
	return s.sinceEval >= EvalEveryPoints || nowMs-s.lastEvalMs >= EvalEveryMs
}

// MarkEvaluated resets the pacing counters.
func (s *Sampler) MarkEvaluated(nowMs int64) {
	s.sinceEval = 0
	s.lastEvalMs = nowMs
}

// Reset drops the current stroke.
func (s *Sampler) Reset() {
	s.points = nil
	s.active = false
	s.sinceEval = 0
}
