// Package game runs one practice mode: it lays out the current target, feeds
// pointer events to the canvas and scores strokes against the outline.
package game

import (
	"context"
	"image"
	"math"
	"time"

	"github.com/verte-zerg/tracepad/internal/accuracy"
	"github.com/verte-zerg/tracepad/internal/logger"
	"github.com/verte-zerg/tracepad/internal/model"
	"github.com/verte-zerg/tracepad/internal/pathgen"
	"github.com/verte-zerg/tracepad/internal/sampler"
	"github.com/verte-zerg/tracepad/internal/sentences"
	"github.com/verte-zerg/tracepad/internal/surface"
	"github.com/verte-zerg/tracepad/internal/targets"
)

// AdvanceDelayMs is how long a completed target stays up before the next one.
const AdvanceDelayMs = 3000

// Options configures a Session. Zero values get defaults.
type Options struct {
	Mode       targets.Mode
	Difficulty Difficulty
	Width      int
	Height     int
	// Origin is the top-left of the canvas in screen pixels.
	Origin     image.Point
	Sentences  []string
	Evaluator  *accuracy.Evaluator
	Picker     *targets.Picker
	Reporter   Reporter
	Logger     *logger.Logger
	Weak       map[string]struct{}
	WeakFactor float64
	Now        func() time.Time
}

// Session is the state of one practice mode.
type Session struct {
	mode       targets.Mode
	difficulty Difficulty
	sentences  []string
	items      []targets.Item
	index      int

	ref       model.Reference
	state     accuracy.State
	completed bool
	advanceAt int64

	canvas    *surface.Canvas
	sampler   *sampler.Sampler
	evaluator *accuracy.Evaluator
	picker    *targets.Picker
	reporter  Reporter
	log       *logger.Logger

	weak       map[string]struct{}
	weakFactor float64

	strokeStartedAt time.Time
	now             func() time.Time
}

// NewSession builds a session showing the first target of opts.Mode.
func NewSession(opts Options) *Session {
	if opts.Mode == "" {
		opts.Mode = targets.ModeLetters
	}
	if opts.Difficulty == "" {
		opts.Difficulty = Medium
	}
	if opts.Evaluator == nil {
		opts.Evaluator = accuracy.NewEvaluator(nil)
	}
	if opts.Picker == nil {
		opts.Picker = targets.NewPicker()
	}
	if opts.Logger == nil {
		opts.Logger = logger.Discard()
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if len(opts.Sentences) == 0 {
		opts.Sentences = sentences.Defaults()
	}
	s := &Session{
		mode:       opts.Mode,
		difficulty: opts.Difficulty,
		sentences:  opts.Sentences,
		canvas:     surface.New(opts.Width, opts.Height),
		evaluator:  opts.Evaluator,
		picker:     opts.Picker,
		reporter:   opts.Reporter,
		log:        opts.Logger.WithPrefix("game"),
		weak:       opts.Weak,
		weakFactor: opts.WeakFactor,
		now:        opts.Now,
	}
	s.sampler = sampler.New(s.bounds(opts.Origin))
	s.items = targets.Catalog(s.mode, s.sentences)
	s.load(0)
	return s
}

// Mode returns the active practice mode.
func (s *Session) Mode() targets.Mode { return s.mode }

// Difficulty returns the active difficulty.
func (s *Session) Difficulty() Difficulty { return s.difficulty }

// Canvas exposes the drawing surface.
func (s *Session) Canvas() *surface.Canvas { return s.canvas }

// Reference returns the outline of the current target.
func (s *Session) Reference() model.Reference { return s.ref }

// State returns the accuracy state of the current target.
func (s *Session) State() accuracy.State { return s.state }

// Completed reports whether the current target has been finished.
func (s *Session) Completed() bool { return s.completed }

// Index returns the position of the current target in the catalog.
func (s *Session) Index() int { return s.index }

// Items returns the catalog of the active mode.
func (s *Session) Items() []targets.Item { return s.items }

// AdvanceAt returns the scheduled auto-advance time, or zero.
func (s *Session) AdvanceAt() int64 { return s.advanceAt }

// Target returns the label of the current target, or "" in playground mode.
func (s *Session) Target() string {
	if s.index < 0 || s.index >= len(s.items) {
		return ""
	}
	return s.items[s.index].Label
}

// Tolerance returns the on-path distance used for the current target.
func (s *Session) Tolerance() float64 {
	if s.mode == targets.ModeShapes {
		return ShapeTolerance
	}
	return s.difficulty.Tolerance()
}

// Frame returns the ink layer with the current outline drawn over it.
func (s *Session) Frame() *image.RGBA {
	if !s.mode.Scored() {
		return s.canvas.Snapshot()
	}
	return s.canvas.DrawReference(s.ref, surface.OutlineColor)
}

// PointerDown starts a stroke when p, in screen pixels, is on the canvas.
func (s *Session) PointerDown(p model.Point, nowMs int64) bool {
	if !s.sampler.Begin(p, nowMs) {
		return false
	}
	s.strokeStartedAt = s.now()
	s.canvas.StrokeStart(s.sampler.Local(p))
	return true
}

// PointerMove extends the active stroke and scores it when the sampler says
// an evaluation is due.
func (s *Session) PointerMove(p model.Point, nowMs int64) {
	local, ok := s.sampler.Extend(p, nowMs)
	if !ok {
		return
	}
	s.canvas.StrokeExtend(local)
	if s.sampler.Due(nowMs) {
		s.evaluate(false, nowMs)
		s.sampler.MarkEvaluated(nowMs)
	}
}

// PointerUp finishes the stroke and scores it.
func (s *Session) PointerUp(nowMs int64) {
	if !s.sampler.Active() {
		return
	}
	points := s.sampler.End()
	s.canvas.StrokeEnd()
	if len(points) > 0 {
		s.evaluate(true, nowMs)
	}
}

// Tick advances to the next target once the completion delay has passed. It
// reports whether the target changed.
func (s *Session) Tick(nowMs int64) bool {
	if s.advanceAt == 0 || nowMs < s.advanceAt {
		return false
	}
	s.advanceAt = 0
	return s.Next()
}

// Next moves to the following target. It only does so once the current one is
// completed.
func (s *Session) Next() bool {
	if !s.completed || len(s.items) == 0 {
		return false
	}
	s.load(s.index + 1)
	return true
}

// Random jumps to a different target, favouring weak ones when configured.
func (s *Session) Random() {
	if len(s.items) == 0 {
		return
	}
	var idx int
	if len(s.weak) > 0 && s.weakFactor > 0 {
		idx = s.picker.Weighted(s.items, s.index, s.weak, s.weakFactor)
	} else {
		idx = s.picker.Random(len(s.items), s.index)
	}
	s.load(idx)
}

// Select jumps to the target with the given label.
func (s *Session) Select(label string) bool {
	idx, ok := targets.Find(s.items, label)
	if !ok {
		return false
	}
	s.load(idx)
	return true
}

// SetWeak replaces the set of targets Random favours.
func (s *Session) SetWeak(weak map[string]struct{}, factor float64) {
	s.weak = weak
	s.weakFactor = factor
}

// ClearDrawing wipes the ink and the scoring of the current target. The
// target's completion is kept.
func (s *Session) ClearDrawing(animated bool) *surface.Wipe {
	s.sampler.Reset()
	s.state.Reset()
	return s.canvas.Clear(animated)
}

// Undo restores the previous canvas snapshot.
func (s *Session) Undo() bool {
	return s.canvas.Undo()
}

// Redo restores the next canvas snapshot.
func (s *Session) Redo() bool {
	return s.canvas.Redo()
}

// SetDifficulty changes the tolerance used from the next evaluation on.
func (s *Session) SetDifficulty(d Difficulty) {
	s.difficulty = d
}

// SetMode switches to another practice mode and shows its first target.
func (s *Session) SetMode(mode targets.Mode) {
	s.mode = mode
	s.items = targets.Catalog(mode, s.sentences)
	s.load(0)
}

// SetOrigin moves the canvas on screen.
func (s *Session) SetOrigin(origin image.Point) {
	s.sampler.SetBounds(s.bounds(origin))
}

// Resize replaces the canvas with a blank one of the new size and lays the
// current target out again. Brush settings carry over.
func (s *Session) Resize(width, height int) {
	if width == s.canvas.Width() && height == s.canvas.Height() {
		return
	}
	old := s.canvas
	s.canvas = surface.New(width, height)
	s.canvas.SetBrushSize(old.BrushSizeIndex())
	s.canvas.SetBrushColor(old.BrushColorIndex())
	if old.Eraser() {
		s.canvas.ToggleEraser()
	}
	s.sampler.SetBounds(s.bounds(s.sampler.Bounds().Min))
	s.load(s.index)
}

func (s *Session) bounds(origin image.Point) image.Rectangle {
	return image.Rectangle{Min: origin, Max: origin.Add(image.Pt(s.canvas.Width(), s.canvas.Height()))}
}

// load shows item i, wrapping past the end, on a blank canvas.
func (s *Session) load(i int) {
	s.sampler.Reset()
	s.state.Reset()
	s.completed = false
	s.advanceAt = 0
	if len(s.items) == 0 {
		s.index = 0
		s.ref = model.Reference{}
		return
	}
	if i < 0 || i >= len(s.items) {
		i = 0
	}
	s.index = i
	s.ref = s.layout(s.items[i])
	s.evaluator.Engine().Reset()
	s.canvas.Clear(false)
	s.log.Debug("target %s (%s), size %dx%d", s.Target(), s.mode, s.canvas.Width(), s.canvas.Height())
}

// layout sizes and places an item on the canvas.
func (s *Session) layout(it targets.Item) model.Reference {
	w, h := s.canvas.Width(), s.canvas.Height()
	short := float64(min(w, h))
	divisor := it.Divisor
	if divisor <= 0 {
		divisor = 1
	}
	var base float64
	anchor := model.Point{X: float64(w / 2), Y: float64(h / 2)}
	switch s.mode {
	case targets.ModeShapes:
		base = math.Floor(short / 3)
	case targets.ModeSentence:
		base = math.Floor(short / 8)
		anchor = model.Point{X: float64(w / 6), Y: float64(h / 3)}
	default:
		base = math.Floor(short / 2.5)
	}
	size := int(math.Floor(base / divisor))
	return pathgen.Generate(it.Target, anchor, size)
}

func (s *Session) evaluate(final bool, nowMs int64) {
	if !s.mode.Scored() || s.sampler.Len() < sampler.MinEvalPoints {
		return
	}
	tol := s.Tolerance()
	m := s.evaluator.EvaluateReference(s.sampler.Points(), s.ref, tol)
	newly := s.state.Update(m)
	s.log.Evaluation(s.Target(), final, s.state.Metrics)

	if final && s.state.Completed() && !s.completed {
		s.completed = true
		s.advanceAt = nowMs + AdvanceDelayMs
		s.log.Info("completed %s at %.1f%%", s.Target(), s.state.Metrics.Percentage)
	}
	if !final && !newly {
		return
	}
	s.report(Result{
		Game:           string(s.mode),
		Target:         s.Target(),
		Difficulty:     s.difficulty,
		Tolerance:      tol,
		Metrics:        s.state.Metrics,
		Attempts:       s.state.Attempts,
		Final:          final,
		NewlyCompleted: newly,
		Completed:      s.state.Completed(),
		StartedAt:      s.strokeStartedAt,
		EndedAt:        s.now(),
	})
}

func (s *Session) report(r Result) {
	if s.reporter == nil {
		return
	}
	if err := s.reporter.Record(context.Background(), r); err != nil {
		s.log.Warn("%v", err)
	}
}
