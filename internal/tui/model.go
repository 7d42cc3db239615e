// Package tui provides the Bubble Tea tracing interface.
package tui

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tracepad/internal/accuracy"
	"github.com/verte-zerg/tracepad/internal/export"
	"github.com/verte-zerg/tracepad/internal/game"
	"github.com/verte-zerg/tracepad/internal/logger"
	"github.com/verte-zerg/tracepad/internal/model"
	"github.com/verte-zerg/tracepad/internal/ocr"
	"github.com/verte-zerg/tracepad/internal/sampler"
	statsPkg "github.com/verte-zerg/tracepad/internal/stats"
	"github.com/verte-zerg/tracepad/internal/store"
	"github.com/verte-zerg/tracepad/internal/surface"
	"github.com/verte-zerg/tracepad/internal/targets"
)

const (
	tickInterval = 100 * time.Millisecond
	wipeInterval = 30 * time.Millisecond
	ocrTimeout   = 30 * time.Second

	headerRows  = 1
	footerRows  = 3
	panelWidth  = 30
	minPanelFit = 60

	defaultCols = 80
	defaultRows = 24
)

// Options are the practice settings the UI starts with.
type Options struct {
	Mode         targets.Mode
	Difficulty   game.Difficulty
	BrushSize    int
	BrushColor   int
	SaveDir      string
	ShowTooltips bool
	// Volume above zero rings the terminal bell on completion.
	Volume       float64
	Sentences    []string
	FocusWeak    bool
	WeakTop      int
	WeakFactor   float64
	WeakWindow   int
}

type tickMsg time.Time

type wipeMsg struct{}

type ocrMsg struct {
	text string
	err  error
}

// Model implements the Bubble Tea tracing UI.
type Model struct {
	opts       Options
	store      *store.Store
	log        *logger.Logger
	session    *game.Session
	recognizer ocr.Recognizer
	clock      sampler.Clock
	now        func() time.Time
	bell       io.Writer

	width  int
	height int

	bar      progress.Model
	games    model.Progress
	status   string
	ocrText  string
	ocrBusy  bool
	tracing  bool
	wipe     *surface.Wipe
	wipeShot *image.RGBA

	// leaveKey is the key awaiting confirmation to leave an unsaved
	// playground drawing.
	leaveKey string
	saved    bool

	weakNoticePrinted bool
}

var (
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	statusStyle = valueStyle
)

// NewModel constructs a tracing TUI model. st and rec may be nil.
func NewModel(opts Options, st *store.Store, ev *accuracy.Evaluator, rec ocr.Recognizer, log *logger.Logger) *Model {
	if log == nil {
		log = logger.Discard()
	}
	var reporter game.Reporter
	if st != nil {
		reporter = game.NewStoreReporter(st)
	}
	m := &Model{
		opts:       opts,
		store:      st,
		log:        log.WithPrefix("tui"),
		recognizer: rec,
		clock:      sampler.NewSystemClock(),
		now:        time.Now,
		bell:       os.Stderr,
		bar:        progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage(), progress.WithWidth(panelWidth-2)),
	}
	cols, rows := m.canvasCells(defaultCols, defaultRows)
	m.session = game.NewSession(game.Options{
		Mode:       opts.Mode,
		Difficulty: opts.Difficulty,
		Width:      cols * pxPerCol,
		Height:     rows * pxPerRow,
		Origin:     image.Pt(0, headerRows*pxPerRow),
		Sentences:  opts.Sentences,
		Evaluator:  ev,
		Reporter:   reporter,
		Logger:     log,
	})
	m.session.Canvas().SetBrushSize(opts.BrushSize)
	m.session.Canvas().SetBrushColor(opts.BrushColor)
	m.loadProgress()
	m.refreshWeakSet()
	m.status = m.prompt()
	return m
}

// Session exposes the practice session.
func (m *Model) Session() *game.Session {
	return m.session
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func wipeTick() tea.Cmd {
	return tea.Tick(wipeInterval, func(time.Time) tea.Msg { return wipeMsg{} })
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil
	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case tickMsg:
		if m.session.Tick(m.clock.NowMs()) {
			m.ocrText = ""
			m.status = m.prompt()
			m.refreshWeakSet()
		}
		return m, tick()
	case wipeMsg:
		if m.wipe == nil {
			return m, nil
		}
		frame, ok := m.wipe.Next()
		if !ok {
			m.wipe = nil
			m.wipeShot = nil
			return m, nil
		}
		m.wipeShot = frame
		return m, wipeTick()
	case ocrMsg:
		m.ocrBusy = false
		if msg.err == nil {
			m.ocrText = msg.text
		}
		m.status = ocr.Status(msg.text, msg.err)
		if msg.err != nil {
			m.log.Warn("%v", msg.err)
		}
		return m, nil
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	width, height := m.width, m.height
	if width == 0 || height == 0 {
		width, height = defaultCols, defaultRows
	}
	cols, rows := m.canvasCells(width, height)

	frame := m.wipeShot
	if frame == nil {
		frame = m.session.Frame()
	}
	body := renderCanvas(frame, cols, rows)
	if m.showPanel(width) {
		panel := lipgloss.NewStyle().Width(panelWidth).Height(rows).PaddingLeft(1).Render(m.renderPanel())
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, panel)
	}

	lines := []string{m.renderHeader(width), body}
	status := wrapStatus(m.status, width, footerRows-1, statusStyle)
	for len(status) < footerRows-1 {
		status = append(status, "")
	}
	lines = append(lines, status...)
	lines = append(lines, m.renderFooter(width))
	return strings.Join(lines, "\n")
}

func (m *Model) showPanel(width int) bool {
	return width >= minPanelFit
}

// canvasCells returns the canvas size in cells for a terminal size.
func (m *Model) canvasCells(width, height int) (int, int) {
	cols := width
	if m.showPanel(width) {
		cols -= panelWidth
	}
	rows := height - headerRows - footerRows
	return max(cols, 1), max(rows, 1)
}

func (m *Model) layout() {
	cols, rows := m.canvasCells(m.width, m.height)
	m.session.SetOrigin(image.Pt(0, headerRows*pxPerRow))
	m.session.Resize(cols*pxPerCol, rows*pxPerRow)
	m.wipe = nil
	m.wipeShot = nil
	m.tracing = false
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	p := cellToPixel(msg.X, msg.Y)
	now := m.clock.NowMs()
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.wipe != nil {
			return
		}
		m.tracing = m.session.PointerDown(p, now)
		if m.tracing {
			m.saved = false
		}
	case tea.MouseActionMotion:
		if !m.tracing {
			return
		}
		m.session.PointerMove(p, now)
	case tea.MouseActionRelease:
		if !m.tracing {
			return
		}
		m.tracing = false
		wasCompleted := m.session.Completed()
		m.session.PointerUp(now)
		m.afterStroke(wasCompleted)
	}
}

func (m *Model) afterStroke(wasCompleted bool) {
	if !m.session.Mode().Scored() {
		return
	}
	st := m.session.State()
	if st.Metrics.TotalPoints == 0 {
		return
	}
	if m.session.Completed() && !wasCompleted {
		m.status = fmt.Sprintf("Great job! You traced %s correctly. Accuracy: %.1f%%. Moving to the next one in %d seconds...",
			m.session.Target(), st.Metrics.Percentage, game.AdvanceDelayMs/1000)
		m.ring()
		m.loadProgress()
		m.refreshWeakSet()
		return
	}
	m.status = accuracy.Feedback(st.Metrics.Percentage, st.Attempts)
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	pending := m.leaveKey
	m.leaveKey = ""
	if (key == "q" || key == "tab") && key != pending && m.unsavedDrawing() {
		m.leaveKey = key
		m.status = fmt.Sprintf("Your drawing is not saved. Press %s again to leave, or s to save it.", key)
		return nil
	}
	switch key {
	case "ctrl+c", "q":
		return tea.Quit
	case "n":
		if m.session.Next() {
			m.ocrText = ""
			m.status = m.prompt()
			m.refreshWeakSet()
		} else if m.session.Mode().Scored() {
			m.status = "Finish tracing this one first, or press r for another."
		}
	case "r":
		m.session.Random()
		m.status = m.prompt()
	case "c":
		m.wipe = m.session.ClearDrawing(true)
		m.wipeShot = nil
		m.saved = false
		m.ocrText = ""
		m.status = m.prompt()
		return wipeTick()
	case "u":
		if !m.session.Undo() {
			m.status = "Nothing to undo."
		}
	case "ctrl+r":
		if !m.session.Redo() {
			m.status = "Nothing to redo."
		}
	case "1", "2", "3":
		if d, ok := game.DifficultyAt(int(msg.Runes[0] - '0')); ok {
			m.session.SetDifficulty(d)
			m.status = fmt.Sprintf("Difficulty %s: %.0fpx tolerance.", d.Title(), m.session.Tolerance())
		}
	case "b":
		c := m.session.Canvas()
		c.SetBrushSize((c.BrushSizeIndex() + 1) % len(surface.BrushSizes))
		m.status = fmt.Sprintf("Brush %dpx.", surface.BrushSizes[c.BrushSizeIndex()])
	case "k":
		c := m.session.Canvas()
		c.SetBrushColor((c.BrushColorIndex() + 1) % len(surface.BrushColors))
		m.status = fmt.Sprintf("Ink %s.", surface.BrushColorNames[c.BrushColorIndex()])
	case "e":
		c := m.session.Canvas()
		c.ToggleEraser()
		if c.Eraser() {
			m.status = "Eraser on."
		} else {
			m.status = "Eraser off."
		}
	case "s":
		m.saveImage()
	case "o":
		return m.recognize()
	case "y":
		if err := ocr.Copy(m.ocrText); err != nil {
			m.status = ocr.Status("", err)
		} else {
			m.status = "Copied to clipboard."
		}
	case "tab":
		m.session.SetMode(m.session.Mode().Next())
		m.wipe = nil
		m.wipeShot = nil
		m.ocrText = ""
		m.status = m.prompt()
		m.refreshWeakSet()
	}
	return nil
}

func (m *Model) saveImage() {
	dir := m.opts.SaveDir
	if dir == "" {
		m.status = "No save directory configured."
		return
	}
	caption := ""
	if m.session.Mode().Scored() {
		st := m.session.State()
		caption = m.session.Target()
		if st.Metrics.TotalPoints > 0 {
			caption = fmt.Sprintf("%s  %.1f%% %s", caption, st.Metrics.Percentage, accuracy.Grade(st.Metrics.Percentage))
		}
	}
	path, err := export.SavePNG(m.session.Frame(), dir, m.now(), caption)
	if err != nil {
		m.log.Error("%v", err)
		m.status = "Save failed: " + err.Error()
		return
	}
	m.log.Info("saved %s", path)
	m.saved = true
	m.status = "Saved " + path
}

// unsavedDrawing reports whether leaving the playground would lose ink.
func (m *Model) unsavedDrawing() bool {
	return m.session.Mode() == targets.ModePlayground && !m.saved && m.session.Canvas().HasContent()
}

func (m *Model) ring() {
	if m.opts.Volume <= 0 || m.bell == nil {
		return
	}
	if _, err := io.WriteString(m.bell, "\a"); err != nil {
		// Best-effort bell.
		_ = err
	}
}

func (m *Model) recognize() tea.Cmd {
	if m.session.Mode() != targets.ModePlayground {
		m.status = "Text recognition works in playground mode."
		return nil
	}
	if m.recognizer == nil {
		m.status = "OCR is not available."
		return nil
	}
	if m.ocrBusy {
		return nil
	}
	m.ocrBusy = true
	m.status = "Recognizing..."
	img := m.session.Canvas().Snapshot()
	rec := m.recognizer
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), ocrTimeout)
		defer cancel()
		text, err := rec.Recognize(ctx, img)
		return ocrMsg{text: text, err: err}
	}
}

func (m *Model) prompt() string {
	switch m.session.Mode() {
	case targets.ModePlayground:
		return "Draw freely. Press o to read your handwriting as text."
	case targets.ModeSentence:
		return "Trace the sentence: " + m.session.Target()
	default:
		return fmt.Sprintf("Trace the %s.", m.session.Target())
	}
}

func (m *Model) renderHeader(width int) string {
	c := m.session.Canvas()
	brush := fmt.Sprintf("%dpx %s", surface.BrushSizes[c.BrushSizeIndex()], surface.BrushColorNames[c.BrushColorIndex()])
	if c.Eraser() {
		brush = fmt.Sprintf("%dpx eraser", surface.BrushSizes[c.BrushSizeIndex()])
	}
	segments := []string{headerStyle.Render("tracepad"), valueStyle.Render(titleCase(string(m.session.Mode())))}
	if m.session.Mode().Scored() {
		segments = append(segments,
			labelStyle.Render("target ")+valueStyle.Render(m.session.Target()),
			labelStyle.Render("difficulty ")+valueStyle.Render(m.session.Difficulty().Title()))
	}
	segments = append(segments, labelStyle.Render("brush ")+valueStyle.Render(brush))
	return lipgloss.NewStyle().MaxWidth(width).Render(strings.Join(segments, labelStyle.Render(" · ")))
}

func (m *Model) renderPanel() string {
	if !m.session.Mode().Scored() {
		lines := []string{headerStyle.Render("Playground"), ""}
		switch {
		case m.ocrBusy:
			lines = append(lines, labelStyle.Render("Recognizing..."))
		case m.ocrText != "":
			lines = append(lines, labelStyle.Render("Recognized:"), valueStyle.Render(m.ocrText), "", labelStyle.Render("y copies the text"))
		default:
			lines = append(lines, labelStyle.Render("o recognizes text"))
		}
		return strings.Join(lines, "\n")
	}

	st := m.session.State()
	lines := []string{headerStyle.Render("Accuracy"), ""}
	if st.Metrics.TotalPoints == 0 {
		lines = append(lines, labelStyle.Render("Trace the outline"), m.bar.ViewAs(0))
	} else {
		pct := st.Metrics.Percentage
		grade := accuracy.Grade(pct)
		gradeStyle := lipgloss.NewStyle().Bold(true).Foreground(hexColor(accuracy.ClassOf(grade).Color()))
		lines = append(lines,
			gradeStyle.Render(grade)+valueStyle.Render(fmt.Sprintf("  %.1f%%", pct)),
			m.bar.ViewAs(pct/100),
			valueStyle.Render(accuracy.Feedback(pct, st.Attempts)),
			"",
			labelStyle.Render("On path  ")+valueStyle.Render(fmt.Sprintf("%d/%d", st.Metrics.OnPathPoints, st.Metrics.TotalPoints)),
			labelStyle.Render("Avg dist ")+valueStyle.Render(fmt.Sprintf("%.1fpx", st.Metrics.AvgDistance)),
		)
	}
	lines = append(lines,
		labelStyle.Render("Best     ")+valueStyle.Render(fmt.Sprintf("%.1f%%", st.BestPercentage)),
		labelStyle.Render("Attempts ")+valueStyle.Render(fmt.Sprintf("%d", st.Attempts)),
		labelStyle.Render("Tolerance ")+valueStyle.Render(fmt.Sprintf("%.0fpx", m.session.Tolerance())),
	)
	if m.session.Completed() {
		lines = append(lines, "", headerStyle.Render("Completed ✓"))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderFooter(width int) string {
	segments := make([]string, 0, len(targets.GameModes)+1)
	for _, mode := range targets.GameModes {
		name := string(mode)
		switch {
		case m.games.GamesCompleted[name]:
			segments = append(segments, name+" ✓")
		case m.games.AccuracyStats[name] > 0:
			segments = append(segments, fmt.Sprintf("%s %.0f%%", name, m.games.AccuracyStats[name]))
		default:
			segments = append(segments, name)
		}
	}
	footer := strings.Join(segments, "  ")
	if m.opts.ShowTooltips {
		footer += "  |  n next · r random · c clear · u undo · ^r redo · 1-3 difficulty · b/k/e brush · s save · o ocr · tab mode · q quit"
	}
	return footerStyle.Render(truncate(footer, width))
}

func (m *Model) loadProgress() {
	if m.store == nil {
		m.games = model.Progress{GamesCompleted: map[string]bool{}, AccuracyStats: map[string]float64{}}
		return
	}
	names := make([]string, 0, len(targets.GameModes))
	for _, mode := range targets.GameModes {
		names = append(names, string(mode))
	}
	prog, err := m.store.LoadProgress(context.Background(), names)
	if err != nil {
		m.log.Error("failed to load progress: %v", err)
		return
	}
	m.games = prog
}

func (m *Model) refreshWeakSet() {
	if !m.opts.FocusWeak || m.store == nil || !m.session.Mode().Scored() {
		return
	}
	aggs, err := m.store.TargetAggregates(context.Background(), string(m.session.Mode()), m.opts.WeakWindow)
	if err != nil {
		m.log.Error("failed to load weak targets: %v", err)
		return
	}
	if len(aggs) == 0 {
		if !m.weakNoticePrinted {
			m.log.Info("no stats available for weak-target focus yet; picking uniformly")
			m.weakNoticePrinted = true
		}
		m.session.SetWeak(nil, 0)
		return
	}
	m.session.SetWeak(statsPkg.SelectWeakTargets(aggs, m.opts.WeakTop), m.opts.WeakFactor)
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
