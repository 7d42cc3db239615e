package tui

import (
	"bytes"
	"image"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tracepad/internal/model"
	"github.com/verte-zerg/tracepad/internal/surface"
	"github.com/verte-zerg/tracepad/internal/targets"
)

func newTestModel(t *testing.T, opts Options) *Model {
	t.Helper()
	m := NewModel(opts, nil, nil, nil, nil)
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	return m
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func mouse(action tea.MouseAction, x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: tea.MouseButtonLeft}
}

func TestLayoutSizesCanvas(t *testing.T) {
	m := newTestModel(t, Options{Mode: targets.ModeShapes})
	c := m.Session().Canvas()
	if c.Width() != 50*pxPerCol || c.Height() != 20*pxPerRow {
		t.Fatalf("unexpected canvas size %dx%d", c.Width(), c.Height())
	}
	view := m.View()
	if got := len(strings.Split(view, "\n")); got != 24 {
		t.Fatalf("expected 24 lines, got %d", got)
	}
	if !strings.Contains(view, "Accuracy") || !strings.Contains(view, "circle") {
		t.Fatalf("expected panel and target in view")
	}
}

// traceCircle drags the mouse once around the circle target.
func traceCircle(m *Model) {
	ref := m.Session().Reference().Flatten()
	cx, cy := 150.0, 120.0
	r := ref[0].Dist(model.Point{X: cx, Y: cy})

	cell := func(a float64) (int, int) {
		x := cx + r*math.Cos(a)
		y := cy + r*math.Sin(a) + headerRows*pxPerRow
		return int(x) / pxPerCol, int(y) / pxPerRow
	}
	x, y := cell(0)
	m.Update(mouse(tea.MouseActionPress, x, y))
	for i := 1; i <= 48; i++ {
		x, y = cell(2 * math.Pi * float64(i) / 48)
		m.Update(mouse(tea.MouseActionMotion, x, y))
	}
	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone})
}

func TestMouseTraceCompletesTarget(t *testing.T) {
	m := newTestModel(t, Options{Mode: targets.ModeShapes})
	traceCircle(m)
	if !m.Session().Completed() {
		t.Fatalf("expected completion, got %+v", m.Session().State().Metrics)
	}
	if !strings.HasPrefix(m.status, "Great job! You traced circle") {
		t.Fatalf("unexpected status %q", m.status)
	}
	if !strings.Contains(m.renderPanel(), "Completed") {
		t.Fatalf("expected completed marker in panel")
	}
}

func TestMotionWithoutPressIgnored(t *testing.T) {
	m := newTestModel(t, Options{Mode: targets.ModePlayground})
	m.Update(mouse(tea.MouseActionMotion, 10, 10))
	if m.Session().Canvas().HasContent() {
		t.Fatalf("expected no ink without a press")
	}
}

func TestKeysControlBrushAndMode(t *testing.T) {
	m := newTestModel(t, Options{Mode: targets.ModeShapes, BrushSize: 1})
	m.Update(key("b"))
	if m.Session().Canvas().BrushSizeIndex() != 2 || m.status != "Brush 15px." {
		t.Fatalf("unexpected brush cycle: %q", m.status)
	}
	m.Update(key("k"))
	if m.Session().Canvas().BrushColorIndex() != 1 {
		t.Fatalf("expected red ink")
	}
	m.Update(key("e"))
	if !m.Session().Canvas().Eraser() {
		t.Fatalf("expected eraser")
	}
	m.Update(key("3"))
	if m.Session().Difficulty() != "hard" {
		t.Fatalf("expected hard difficulty")
	}
	m.Update(key("n"))
	if m.Session().Index() != 0 || !strings.HasPrefix(m.status, "Finish tracing") {
		t.Fatalf("expected next to be refused, got %q", m.status)
	}
	m.Update(key("tab"))
	if m.Session().Mode() != targets.ModeLetters || m.session.Target() != "A" {
		t.Fatalf("expected letters mode, got %s", m.Session().Mode())
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t, Options{})
	for _, k := range []string{"q", "ctrl+c"} {
		_, cmd := m.Update(key(k))
		if cmd == nil {
			t.Fatalf("expected quit command for %s", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("expected quit message for %s", k)
		}
	}
}

func TestClearRunsWipe(t *testing.T) {
	m := newTestModel(t, Options{Mode: targets.ModePlayground})
	m.Update(mouse(tea.MouseActionPress, 10, 5))
	m.Update(mouse(tea.MouseActionMotion, 20, 5))
	m.Update(tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionRelease})
	if !m.Session().Canvas().HasContent() {
		t.Fatalf("expected ink")
	}
	if _, cmd := m.Update(key("c")); cmd == nil {
		t.Fatalf("expected wipe command")
	}
	frames := 0
	for m.wipe != nil {
		m.Update(wipeMsg{})
		if m.wipeShot != nil {
			frames++
		}
	}
	if frames != surface.WipeFrames+1 {
		t.Fatalf("expected %d frames, got %d", surface.WipeFrames+1, frames)
	}
	if m.Session().Canvas().HasContent() {
		t.Fatalf("expected blank canvas after wipe")
	}
}

func TestSaveWritesPNG(t *testing.T) {
	dir := t.TempDir()
	m := newTestModel(t, Options{Mode: targets.ModeLetters, SaveDir: dir})
	m.Update(key("s"))
	if !strings.HasPrefix(m.status, "Saved ") {
		t.Fatalf("unexpected status %q", m.status)
	}
	matches, err := filepath.Glob(filepath.Join(dir, "drawing_*.png"))
	if err != nil || len(matches) != 1 {
		t.Fatalf("expected one saved drawing, got %v (%v)", matches, err)
	}
	if _, err := os.Stat(matches[0]); err != nil {
		t.Fatalf("stat: %v", err)
	}
}

func TestOCROutsidePlayground(t *testing.T) {
	m := newTestModel(t, Options{Mode: targets.ModeLetters})
	if _, cmd := m.Update(key("o")); cmd != nil {
		t.Fatalf("expected no OCR command outside playground")
	}
	m.Update(key("tab"))
	m.Update(key("tab"))
	m.Update(key("tab"))
	if m.Session().Mode() != targets.ModePlayground {
		t.Fatalf("expected playground, got %s", m.Session().Mode())
	}
	m.Update(key("o"))
	if m.status != "OCR is not available." {
		t.Fatalf("unexpected status %q", m.status)
	}
	m.Update(ocrMsg{text: "HI"})
	if m.ocrText != "HI" || m.status != "OCR: HI" {
		t.Fatalf("unexpected OCR state %q %q", m.ocrText, m.status)
	}
}

func TestRenderFooterShowsProgress(t *testing.T) {
	m := newTestModel(t, Options{ShowTooltips: true})
	m.games = model.Progress{
		GamesCompleted: map[string]bool{"shapes": true},
		AccuracyStats:  map[string]float64{"letters": 72.4},
	}
	out := m.renderFooter(400)
	for _, want := range []string{"shapes ✓", "letters 72%", "numbers", "q quit"} {
		if !strings.Contains(out, want) {
			t.Fatalf("footer missing %q: %s", want, out)
		}
	}
}

func TestRenderCanvasShowsInk(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 12, 12))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.SetRGBA(2, 2, surface.BrushColors[0])
	out := renderCanvas(img, 2, 1)
	if lipgloss.Width(out) != 2 || strings.Count(out, halfBlock) != 2 {
		t.Fatalf("unexpected canvas render %q", out)
	}
	if got := blockColor(img, 0, 0); got != surface.BrushColors[0] {
		t.Fatalf("expected ink to dominate the half cell, got %v", got)
	}
	if got := blockColor(img, 0, 6); got != surface.Background {
		t.Fatalf("expected background in the lower half, got %v", got)
	}
	if p := cellToPixel(2, 1); p.X != 15 || p.Y != 18 {
		t.Fatalf("unexpected cell centre %v", p)
	}
}

func TestCompletionRingsBellWhenAudible(t *testing.T) {
	for _, tc := range []struct {
		name   string
		volume float64
		want   string
	}{
		{name: "audible", volume: 0.5, want: "\a"},
		{name: "muted", volume: 0, want: ""},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestModel(t, Options{Mode: targets.ModeShapes, Volume: tc.volume})
			var bell bytes.Buffer
			m.bell = &bell
			traceCircle(m)
			if !m.Session().Completed() {
				t.Fatalf("expected completion")
			}
			if bell.String() != tc.want {
				t.Fatalf("expected bell %q, got %q", tc.want, bell.String())
			}
		})
	}
}

func drawStroke(m *Model) {
	m.Update(mouse(tea.MouseActionPress, 10, 5))
	m.Update(mouse(tea.MouseActionMotion, 20, 5))
	m.Update(tea.MouseMsg{X: 20, Y: 5, Action: tea.MouseActionRelease})
}

func TestLeavingPlaygroundConfirmsUnsavedInk(t *testing.T) {
	m := newTestModel(t, Options{Mode: targets.ModePlayground})
	m.Update(key("tab"))
	if m.Session().Mode() != targets.ModeShapes {
		t.Fatalf("expected a blank playground to switch at once, got %s", m.Session().Mode())
	}

	m = newTestModel(t, Options{Mode: targets.ModePlayground})
	drawStroke(m)
	m.Update(key("tab"))
	if m.Session().Mode() != targets.ModePlayground || !strings.Contains(m.status, "not saved") {
		t.Fatalf("expected confirmation before leaving, got %s %q", m.Session().Mode(), m.status)
	}
	if _, cmd := m.Update(key("q")); cmd != nil {
		t.Fatalf("expected quit to ask for confirmation too")
	}
	if _, cmd := m.Update(key("q")); cmd == nil {
		t.Fatalf("expected second q to quit")
	}
	m.Update(key("tab"))
	m.Update(key("tab"))
	if m.Session().Mode() != targets.ModeShapes {
		t.Fatalf("expected confirmed tab to switch mode, got %s", m.Session().Mode())
	}
}

func TestSavedPlaygroundLeavesWithoutConfirm(t *testing.T) {
	m := newTestModel(t, Options{Mode: targets.ModePlayground, SaveDir: t.TempDir()})
	drawStroke(m)
	m.Update(key("s"))
	if !strings.HasPrefix(m.status, "Saved ") {
		t.Fatalf("unexpected status %q", m.status)
	}
	if _, cmd := m.Update(key("q")); cmd == nil {
		t.Fatalf("expected saved drawing to quit at once")
	}
	drawStroke(m)
	if _, cmd := m.Update(key("q")); cmd != nil {
		t.Fatalf("expected new ink to need confirmation again")
	}
}
