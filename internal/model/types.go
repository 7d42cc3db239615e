// Package model defines shared data structures.
package model

import (
	"math"
	"time"
)

// Point is a position in canvas-local pixel coordinates.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p translated by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Path is an ordered sequence of points.
type Path []Point

// Reference is the outline a user traces. Text targets carry one sub-path per
// character; every other target carries exactly one.
type Reference struct {
	Paths  []Path
	Closed bool
}

// Flatten returns the union of all sub-paths as a single point list.
func (r Reference) Flatten() Path {
	if len(r.Paths) == 1 {
		return r.Paths[0]
	}
	total := 0
	for _, p := range r.Paths {
		total += len(p)
	}
	out := make(Path, 0, total)
	for _, p := range r.Paths {
		out = append(out, p...)
	}
	return out
}

// Empty reports whether the reference has no points at all.
func (r Reference) Empty() bool {
	for _, p := range r.Paths {
		if len(p) > 0 {
			return false
		}
	}
	return true
}

// AccuracyMetrics is the outcome of one evaluation of a stroke.
type AccuracyMetrics struct {
	Percentage   float64
	OnPathPoints int
	TotalPoints  int
	AvgDistance  float64
	MaxDistance  float64
	Completed    bool
}

// Settings holds user preferences.
type Settings struct {
	Volume       float64
	Fullscreen   bool
	ShowTooltips bool
	BrushSize    int
	BrushColor   int
	Difficulty   string
	Mode         string
	CachePolicy  string
	CacheSize    int
	SaveDir      string
}

// PracticeConfig defines practice settings.
type PracticeConfig struct {
	Mode       string
	Difficulty string
	FocusWeak  bool
	WeakTop    int
	WeakFactor float64
	WeakWindow int
	Sentences  string
}

// StatsConfig defines filters and options for stats output.
type StatsConfig struct {
	Game        string
	Since       *time.Time
	Last        int
	CurveWindow int
}

// Attempt captures one scored tracing of a target.
type Attempt struct {
	SessionID  string
	Game       string
	Target     string
	Difficulty string
	Tolerance  float64
	Metrics    AccuracyMetrics
	Attempts   int
	StartedAt  time.Time
	EndedAt    time.Time
}

// AttemptRecord is a stored attempt as read back for reporting.
type AttemptRecord struct {
	ID         int64
	SessionID  string
	Game       string
	Target     string
	Percentage float64
	Completed  bool
	EndedAt    time.Time
	DurationMs int64
}

// TargetAggregate aggregates attempts on one target.
type TargetAggregate struct {
	Game        string
	Target      string
	Attempts    int
	Completions int
	Best        float64
	SumPct      float64
}

// Progress is the per-game progress document.
type Progress struct {
	GamesCompleted map[string]bool    `json:"games_completed"`
	AccuracyStats  map[string]float64 `json:"accuracy_stats"`
	LastPlayed     string             `json:"last_played"`
}
