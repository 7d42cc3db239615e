// Package statsui provides the Bubble Tea stats interface.
package statsui

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tracepad/internal/accuracy"
	"github.com/verte-zerg/tracepad/internal/model"
	"github.com/verte-zerg/tracepad/internal/stats"
	"github.com/verte-zerg/tracepad/internal/store"
)

const (
	tabOverview = iota
	tabTargetTable
	tabTargetCurves
)

const (
	plotHeight     = 10
	defaultTopN    = 5
	fallbackWidth  = 80
	wideCardsWidth = 80
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
	modalStyle      = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// Model implements the Bubble Tea stats UI.
type Model struct {
	store *store.Store
	cfg   model.StatsConfig
	games []string

	report stats.Report
	errMsg string

	tabs         []string
	activeTab    int
	viewports    []viewport.Model
	targetTable  table.Model
	targetLayout tableLayout

	width  int
	height int

	filterMode   bool
	filterInputs []textinput.Model
	filterIndex  int
	filterError  string

	targetSelection       []string
	targetSelectionCustom bool

	targetInputMode bool
	targetInput     textinput.Model
}

type tableLayout struct {
	width    int
	height   int
	rowCount int
}

// NewModel constructs a stats UI model. games lists the modes whose progress
// is shown; targets preselects the curves tab.
func NewModel(st *store.Store, cfg model.StatsConfig, games []string, targets []string) *Model {
	m := &Model{
		store: st,
		cfg:   cfg,
		games: games,
		tabs:  []string{"Overview", "Targets", "Target Curves"},
	}
	if len(targets) > 0 {
		m.targetSelection = targets
		m.targetSelectionCustom = true
	}
	m.initInputs()
	m.initTargetInput()
	m.targetTable = buildTargetTable(nil, 0, 1)
	m.initViewports()
	m.refreshReport()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.renderTabContents()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || (msg.String() == "q" && !m.filterMode && !m.targetInputMode) {
			return m, tea.Quit
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		if m.targetInputMode {
			return m.updateTargetInput(msg)
		}
		switch msg.String() {
		case "left", "h", "shift+tab":
			m.moveTab(-1)
			return m, tea.ClearScreen
		case "right", "l", "tab":
			m.moveTab(1)
			return m, tea.ClearScreen
		case "=":
			m.cfg.CurveWindow = nextCurveWindow(m.cfg.CurveWindow)
			m.refreshReport()
			return m, nil
		case "-":
			m.cfg.CurveWindow = prevCurveWindow(m.cfg.CurveWindow)
			m.refreshReport()
			return m, nil
		case "/":
			return m.startFilter()
		case "enter":
			if m.activeTab == tabTargetCurves {
				return m.startTargetInput()
			}
			return m, nil
		case "g", "home":
			if m.activeTab == tabTargetTable {
				m.targetTable.GotoTop()
			} else {
				m.viewports[m.activeTab].GotoTop()
			}
			return m, nil
		case "G", "end":
			if m.activeTab == tabTargetTable {
				m.targetTable.GotoBottom()
			} else {
				m.viewports[m.activeTab].GotoBottom()
			}
			return m, nil
		default:
			if m.activeTab == tabTargetTable {
				var cmd tea.Cmd
				m.targetTable, cmd = m.targetTable.Update(msg)
				return m, cmd
			}
			var cmd tea.Cmd
			m.viewports[m.activeTab], cmd = m.viewports[m.activeTab].Update(msg)
			return m, cmd
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if m.targetInputMode {
		return fitLines(m.renderTargetModal(), m.width, m.height)
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderHeader(), m.width, headerHeight)
	body := fitLines(m.renderBody(bodyHeight), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) initViewports() {
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
}

func (m *Model) initInputs() {
	m.filterInputs = []textinput.Model{
		newFilterInput("Game: "),
		newFilterInput("Since (YYYY-MM-DD): "),
		newFilterInput("Last: "),
		newFilterInput("Curve window: "),
	}
	m.setInputsFromConfig()
}

func (m *Model) initTargetInput() {
	m.targetInput = newFilterInput("Targets: ")
	m.targetInput.Placeholder = "A, circle, 7"
}

func newFilterInput(prompt string) textinput.Model {
	input := textinput.New()
	input.Prompt = prompt
	input.CharLimit = 0
	input.Cursor.SetMode(cursor.CursorBlink)
	return input
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	tabsHeight := max(lipgloss.Height(activeNavStyle.Render("X")), 1)
	headerHeight = tabsHeight + 1
	footerHeight = 1
	if !m.filterMode && m.errMsg != "" {
		footerHeight++
	}
	bodyHeight = max(m.height-headerHeight-footerHeight, 1)
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) setInputsFromConfig() {
	m.filterInputs[0].SetValue(strings.TrimSpace(m.cfg.Game))
	if m.cfg.Since != nil {
		m.filterInputs[1].SetValue(m.cfg.Since.Format("2006-01-02"))
	} else {
		m.filterInputs[1].SetValue("")
	}
	if m.cfg.Last > 0 {
		m.filterInputs[2].SetValue(strconv.Itoa(m.cfg.Last))
	} else {
		m.filterInputs[2].SetValue("")
	}
	m.filterInputs[3].SetValue(strconv.Itoa(m.cfg.CurveWindow))
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	for i := range m.viewports {
		m.viewports[i].Width = m.width
		m.viewports[i].Height = bodyHeight
	}
	m.setTargetTableSize(m.width, bodyHeight)
	for i := range m.filterInputs {
		promptWidth := lipgloss.Width(m.filterInputs[i].Prompt)
		m.filterInputs[i].Width = max(10, m.width-promptWidth-2)
	}
	m.targetInput.Width = max(10, modalInnerWidth(m.width)-lipgloss.Width(m.targetInput.Prompt))
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabTargetTable {
		m.targetTable.Focus()
	} else {
		m.targetTable.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderHeader() string {
	return padLines(m.renderTabs(), m.width) + "\n" + padLines(m.renderFilterSummary(), m.width)
}

func (m *Model) renderFilterSummary() string {
	game := m.cfg.Game
	if game == "" {
		game = "any"
	}
	since := "any"
	if m.cfg.Since != nil {
		since = m.cfg.Since.Format("2006-01-02")
	}
	last := "all"
	if m.cfg.Last > 0 {
		last = strconv.Itoa(m.cfg.Last)
	}
	summary := fmt.Sprintf("Settings: game=%s  since=%s  last=%s  window=%d", game, since, last, m.cfg.CurveWindow)
	return headerStyle.Render(truncateLine(summary, m.width))
}

func (m *Model) renderHelp() string {
	help := "Nav: left/right  Scroll: up/down/pgup/pgdn  Window: -/=  Settings: /  Quit: q"
	if m.activeTab == tabTargetCurves {
		help = "Nav: left/right  Scroll: up/down/pgup/pgdn  Edit targets: enter  Window: -/=  Settings: /  Quit: q"
	}
	return headerStyle.Render(help)
}

func (m *Model) renderFooter() string {
	if m.filterMode {
		return headerStyle.Render("tab/shift+tab: next field  enter: apply  esc: cancel  quit: ctrl+c")
	}
	if m.errMsg != "" {
		return m.renderHelp() + "\n" + errorStyle.Render(m.errMsg)
	}
	return m.renderHelp()
}

func (m *Model) renderFilterForm() string {
	lines := []string{"Settings (enter to apply, esc to cancel)"}
	for _, input := range m.filterInputs {
		lines = append(lines, input.View())
	}
	if m.filterError != "" {
		lines = append(lines, errorStyle.Render(m.filterError))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderBody(height int) string {
	if m.filterMode {
		return fitLines(m.renderFilterForm(), m.width, height)
	}
	if m.activeTab == tabTargetTable {
		if len(m.report.TargetsAll) == 0 {
			return fitLines("No attempts found.", m.width, height)
		}
		return fitLines(tableMutedStyle.Render(m.targetTable.View()), m.width, height)
	}
	return fitLines(m.viewports[m.activeTab].View(), m.width, height)
}

func (m *Model) refreshReport() {
	report, err := stats.BuildReport(context.Background(), m.store, m.cfg, m.games)
	if err != nil {
		m.errMsg = err.Error()
		for i := range m.viewports {
			m.viewports[i].SetContent("Failed to load stats.")
		}
		return
	}
	m.errMsg = ""
	m.report = report
	if !m.targetSelectionCustom {
		m.targetSelection = stats.TopTargetsByAttempts(m.report.TargetsAll, defaultTopN)
	}
	width := m.width
	if width <= 0 {
		width = fallbackWidth
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.applyTargetTable(width, bodyHeight)
	m.renderTabContents()
}

func (m *Model) renderTabContents() {
	if m.errMsg != "" {
		for i := range m.viewports {
			m.viewports[i].SetContent("Failed to load stats.")
		}
		return
	}
	width := m.width
	if width <= 0 {
		width = fallbackWidth
	}
	m.viewports[tabOverview].SetContent(renderOverview(m.report, m.games, m.cfg.CurveWindow, width))
	m.viewports[tabTargetCurves].SetContent(renderTargetCurves(m.report.Attempts, m.targetSelection, m.cfg.CurveWindow, width))
}

func renderOverview(report stats.Report, games []string, window, width int) string {
	progress := renderProgress(report.Progress, games)
	if len(report.Attempts) == 0 {
		return strings.TrimRight("No attempts found.\n\n"+progress, "\n")
	}
	summary := renderSummaryCards(report.Attempts, width)
	curves := renderCurves(report.Attempts, window, width)
	return strings.TrimRight(summary+"\n"+progress+"\n\n"+curves, "\n")
}

func renderSummaryCards(records []model.AttemptRecord, width int) string {
	var total, best float64
	completions := 0
	var practice time.Duration
	sessions := map[string]struct{}{}
	for _, r := range records {
		total += r.Percentage
		best = max(best, r.Percentage)
		if r.Completed {
			completions++
		}
		practice += time.Duration(r.DurationMs) * time.Millisecond
		sessions[r.SessionID] = struct{}{}
	}
	avg := total / float64(len(records))
	cards := []string{
		metricCard("Attempts", fmt.Sprintf("%d", len(records))),
		metricCard("Sessions", fmt.Sprintf("%d", len(sessions))),
		metricCard("Completions", fmt.Sprintf("%d", completions)),
		metricCard("Avg Accuracy", fmt.Sprintf("%.1f%% %s", avg, accuracy.Grade(avg))),
		metricCard("Best", fmt.Sprintf("%.1f%%", best)),
		metricCard("Practice", practice.Round(time.Second).String()),
	}
	if width < wideCardsWidth {
		return strings.Join(cards, "\n")
	}
	row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[0], cards[1], cards[2])
	row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[3], cards[4], cards[5])
	return lipgloss.JoinVertical(lipgloss.Left, row1, row2)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func renderProgress(p model.Progress, games []string) string {
	parts := make([]string, 0, len(games))
	for _, g := range games {
		mark := "·"
		if p.GamesCompleted[g] {
			mark = "✓"
		}
		parts = append(parts, fmt.Sprintf("%s %s %.0f%%", mark, g, p.AccuracyStats[g]))
	}
	line := "Progress: " + strings.Join(parts, "   ")
	if p.LastPlayed != "" {
		line += "   last played: " + p.LastPlayed
	}
	return headerStyle.Render(line)
}

func renderCurves(records []model.AttemptRecord, window, width int) string {
	var buf bytes.Buffer
	if err := stats.RenderCurvesWithSize(&buf, records, window, width, plotHeight, true); err != nil {
		return fmt.Sprintf("Failed to render curves: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func renderTargetCurves(records []model.AttemptRecord, targets []string, window, width int) string {
	if len(records) == 0 {
		return "No attempts found."
	}
	if len(targets) == 0 {
		return "No targets selected. Press Enter to set targets."
	}
	header := headerStyle.Render("Targets: " + strings.Join(targets, ", "))
	var buf bytes.Buffer
	if err := stats.RenderTargetCurves(&buf, records, targets, window, width, plotHeight, true); err != nil {
		return fmt.Sprintf("Failed to render target curves: %v", err)
	}
	return strings.TrimRight(header+"\n"+buf.String(), "\n")
}

func buildTargetTable(aggs []model.TargetAggregate, width, height int) table.Model {
	cols, rows := buildTargetTableData(aggs)
	t := table.New(
		table.WithColumns(cols),
		table.WithRows(rows),
		table.WithHeight(max(1, height-1)),
	)
	t.SetWidth(width)
	t.SetStyles(targetTableStyles())
	return t
}

func (m *Model) applyTargetTable(width, height int) {
	cols, rows := buildTargetTableData(m.report.TargetsAll)
	m.targetTable.SetColumns(cols)
	m.targetTable.SetRows(rows)
	m.targetLayout.rowCount = len(rows)
	m.targetLayout.width = 0
	m.setTargetTableSize(width, height)
}

func (m *Model) setTargetTableSize(width, height int) {
	viewportHeight := max(1, height-1)
	if m.targetLayout.width == width && m.targetLayout.height == viewportHeight {
		return
	}
	m.targetLayout.width = width
	m.targetLayout.height = viewportHeight
	m.targetTable.SetWidth(width)
	m.targetTable.SetHeight(viewportHeight)
	if viewHeight := lipgloss.Height(m.targetTable.View()); viewHeight > height {
		m.targetTable.SetHeight(max(1, viewportHeight-(viewHeight-height)))
	}
}

func targetTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func buildTargetTableData(aggs []model.TargetAggregate) ([]table.Column, []table.Row) {
	columns := []table.Column{
		{Title: "Game", Width: 9},
		{Title: "Target", Width: 16},
		{Title: "Avg", Width: 8},
		{Title: "Best", Width: 8},
		{Title: "Grade", Width: 5},
		{Title: "Attempts", Width: 8},
		{Title: "Completed", Width: 9},
	}
	rows := make([]table.Row, 0, len(aggs))
	for _, agg := range sortTargetAggsByAttempts(aggs) {
		avg := stats.AverageAccuracy(agg)
		rows = append(rows, table.Row{
			agg.Game,
			truncateLine(agg.Target, 16),
			fmt.Sprintf("%.1f%%", avg),
			fmt.Sprintf("%.1f%%", agg.Best),
			accuracy.Grade(avg),
			fmt.Sprintf("%d", agg.Attempts),
			fmt.Sprintf("%d", agg.Completions),
		})
	}
	return columns, rows
}

func (m *Model) startFilter() (tea.Model, tea.Cmd) {
	m.filterMode = true
	m.filterError = ""
	m.setInputsFromConfig()
	return m, m.setFilterIndex(0)
}

func (m *Model) startTargetInput() (tea.Model, tea.Cmd) {
	m.targetInputMode = true
	m.targetInput.SetValue(strings.Join(m.targetSelection, ", "))
	return m, m.targetInput.Focus()
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filterError = ""
		return m, nil
	case tea.KeyEnter:
		if err := m.applyFilter(); err != nil {
			m.filterError = err.Error()
			return m, nil
		}
		m.filterMode = false
		m.filterError = ""
		m.refreshReport()
		m.updateLayout()
		return m, nil
	case tea.KeyTab:
		return m, m.setFilterIndex(m.filterIndex + 1)
	case tea.KeyShiftTab:
		return m, m.setFilterIndex(m.filterIndex - 1)
	}
	var cmd tea.Cmd
	m.filterInputs[m.filterIndex], cmd = m.filterInputs[m.filterIndex].Update(msg)
	return m, cmd
}

func (m *Model) updateTargetInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.targetInputMode = false
		return m, nil
	case tea.KeyEnter:
		m.applyTargetInput()
		m.targetInputMode = false
		m.renderTabContents()
		return m, nil
	}
	var cmd tea.Cmd
	m.targetInput, cmd = m.targetInput.Update(msg)
	return m, cmd
}

func (m *Model) setFilterIndex(idx int) tea.Cmd {
	count := len(m.filterInputs)
	if idx < 0 {
		idx = count - 1
	}
	if idx >= count {
		idx = 0
	}
	m.filterIndex = idx
	var cmd tea.Cmd
	for i := range m.filterInputs {
		if i == m.filterIndex {
			cmd = m.filterInputs[i].Focus()
		} else {
			m.filterInputs[i].Blur()
		}
	}
	return cmd
}

func (m *Model) applyFilter() error {
	game := strings.ToLower(strings.TrimSpace(m.filterInputs[0].Value()))
	if game != "" && !containsString(m.games, game) {
		return fmt.Errorf("unknown game %q", game)
	}
	sinceInput := strings.TrimSpace(m.filterInputs[1].Value())
	var since *time.Time
	if sinceInput != "" {
		parsed, err := time.ParseInLocation("2006-01-02", sinceInput, time.Local)
		if err != nil {
			return fmt.Errorf("invalid since date (expected YYYY-MM-DD)")
		}
		since = &parsed
	}

	lastInput := strings.TrimSpace(m.filterInputs[2].Value())
	last := 0
	if lastInput != "" {
		parsed, err := strconv.Atoi(lastInput)
		if err != nil || parsed < 0 {
			return fmt.Errorf("invalid last value (use 0 or positive integer)")
		}
		last = parsed
	}

	windowInput := strings.TrimSpace(m.filterInputs[3].Value())
	window := 0
	if windowInput != "" {
		parsed, err := strconv.Atoi(windowInput)
		if err != nil || parsed < 1 {
			return fmt.Errorf("invalid curve window (use integer >= 1)")
		}
		window = parsed
	}

	m.cfg = model.StatsConfig{
		Game:        game,
		Since:       since,
		Last:        last,
		CurveWindow: window,
	}
	return nil
}

func (m *Model) applyTargetInput() {
	targets := parseTargets(m.targetInput.Value())
	if len(targets) == 0 {
		m.targetSelectionCustom = false
		m.targetSelection = stats.TopTargetsByAttempts(m.report.TargetsAll, defaultTopN)
		return
	}
	m.targetSelectionCustom = true
	m.targetSelection = targets
}

func (m *Model) renderTargetModal() string {
	body := []string{
		cardValueStyle.Render("Select Targets"),
		m.targetInput.View(),
		headerStyle.Render("Separate targets with commas. Empty picks the most practiced."),
		headerStyle.Render("Enter to apply / Esc to cancel"),
	}
	box := modalStyle.Width(modalWidth(m.width)).Render(strings.Join(body, "\n"))
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, box)
}

// parseTargets splits a comma separated list. Letters are matched in upper
// case the way the catalog labels them.
func parseTargets(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if len([]rune(part)) == 1 {
			part = strings.ToUpper(part)
		}
		out = append(out, part)
	}
	return out
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func nextCurveWindow(n int) int {
	if n < 5 {
		return 5
	}
	if n%5 == 0 {
		return n + 5
	}
	return ((n / 5) + 1) * 5
}

func prevCurveWindow(n int) int {
	if n <= 5 {
		return 1
	}
	if n%5 == 0 {
		return n - 5
	}
	return (n / 5) * 5
}

func modalWidth(width int) int {
	return max(40, min(width-4, 80))
}

func modalInnerWidth(width int) int {
	w := modalWidth(width)
	w -= 6 // 2 border + 4 padding
	if w < 10 {
		return 10
	}
	return w
}

func sortTargetAggsByAttempts(aggs []model.TargetAggregate) []model.TargetAggregate {
	out := append([]model.TargetAggregate(nil), aggs...)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Attempts == out[j].Attempts {
			if out[i].Game == out[j].Game {
				return out[i].Target < out[j].Target
			}
			return out[i].Game < out[j].Game
		}
		return out[i].Attempts > out[j].Attempts
	})
	return out
}

func padLines(s string, width int) string {
	if width <= 0 || s == "" {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	return strings.Join(lines, "\n")
}

func padLine(line string, width int) string {
	lineWidth := lipgloss.Width(line)
	if lineWidth < width {
		return line + strings.Repeat(" ", width-lineWidth)
	}
	return line
}

func fitLines(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = padLine(line, width)
	}
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, strings.Repeat(" ", width))
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
