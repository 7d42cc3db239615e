// Package main provides the CLI entrypoint for tracepad.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tracepad/internal/accuracy"
	"github.com/verte-zerg/tracepad/internal/config"
	"github.com/verte-zerg/tracepad/internal/distance"
	"github.com/verte-zerg/tracepad/internal/game"
	"github.com/verte-zerg/tracepad/internal/logger"
	"github.com/verte-zerg/tracepad/internal/model"
	"github.com/verte-zerg/tracepad/internal/ocr"
	"github.com/verte-zerg/tracepad/internal/sentences"
	"github.com/verte-zerg/tracepad/internal/stats"
	"github.com/verte-zerg/tracepad/internal/statsui"
	"github.com/verte-zerg/tracepad/internal/store"
	"github.com/verte-zerg/tracepad/internal/surface"
	"github.com/verte-zerg/tracepad/internal/targets"
	"github.com/verte-zerg/tracepad/internal/tui"
)

const (
	defaultMode         = "letters"
	defaultDifficulty   = "medium"
	defaultBrushSize    = 1
	defaultBrushColor   = 0
	defaultVolume       = 0.7
	defaultCachePolicy  = "clear"
	defaultWeakTop      = 5
	defaultWeakFactor   = 2.0
	defaultWeakWindow   = 50
	defaultCurveWindow  = 20
	defaultScoreWidth   = 800
	defaultScoreHeight  = 600
	defaultStatsTargets = 5
	plainPlotHeight     = 10
)

var (
	settingsVolume       float64
	settingsFullscreen   bool
	settingsTooltips     bool
	settingsBrushSize    int
	settingsBrushColor   int
	settingsCachePolicy  string
	settingsCacheSize    int
	settingsSaveDir      string
	practiceMode         string
	practiceDifficulty   string
	practiceSentences    string
	practiceFocusWeak    bool
	practiceWeakTop      int
	practiceWeakFactor   float64
	practiceWeakWindow   int
	verbose              bool
	statsGame            string
	statsSince           string
	statsLast            int
	statsCurveWindow     int
	statsTargets         string
	statsPlain           bool
	scoreDifficulty      string
	scoreWidth           int
	scoreHeight          int
	targetsSentencesPath string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tracepad",
		Short:         "Terminal tracing trainer for shapes, letters, numbers and sentences",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTraceCmd,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")

	rootCmd.Flags().StringVar(&practiceMode, "mode", defaultMode, "mode: shapes, letters, numbers, sentence, playground")
	rootCmd.Flags().StringVar(&practiceDifficulty, "difficulty", defaultDifficulty, "difficulty: easy, medium, hard")
	rootCmd.Flags().StringVar(&practiceSentences, "sentences", "", "file with one sentence per line")
	rootCmd.Flags().BoolVar(&practiceFocusWeak, "focus-weak", false, "bias random targets toward weak ones")
	rootCmd.Flags().IntVar(&practiceWeakTop, "weak-top", defaultWeakTop, "number of weak targets to focus on")
	rootCmd.Flags().Float64Var(&practiceWeakFactor, "weak-factor", defaultWeakFactor, "weight factor for weak targets")
	rootCmd.Flags().IntVar(&practiceWeakWindow, "weak-window", defaultWeakWindow, "number of recent attempts to compute weak targets")
	rootCmd.Flags().Float64Var(&settingsVolume, "volume", defaultVolume, "completion bell volume (0 silences it)")
	rootCmd.Flags().BoolVar(&settingsFullscreen, "fullscreen", true, "use the alternate screen")
	rootCmd.Flags().BoolVar(&settingsTooltips, "tooltips", true, "show key hints")
	rootCmd.Flags().IntVar(&settingsBrushSize, "brush-size", defaultBrushSize, "brush size index")
	rootCmd.Flags().IntVar(&settingsBrushColor, "brush-color", defaultBrushColor, "brush colour index")
	rootCmd.Flags().StringVar(&settingsCachePolicy, "cache-policy", defaultCachePolicy, "distance cache: clear, lru, none")
	rootCmd.Flags().IntVar(&settingsCacheSize, "cache-size", distance.DefaultCacheSize, "distance cache entries")
	rootCmd.Flags().StringVar(&settingsSaveDir, "save-dir", "", "directory for saved drawings")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newScoreCmd())
	rootCmd.AddCommand(newTargetsCmd())

	return rootCmd
}

func runTraceCmd(cmd *cobra.Command, _ []string) error {
	log, closer := openLog()
	defer func() {
		if cerr := closer.Close(); cerr != nil {
			// Best-effort log close.
			_ = cerr
		}
	}()

	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		log.Warn("%v; using defaults", err)
	}
	applyFloatConfig(cmd, "volume", &settingsVolume, fileCfg.Settings.Volume)
	applyBoolConfig(cmd, "fullscreen", &settingsFullscreen, fileCfg.Settings.Fullscreen)
	applyBoolConfig(cmd, "tooltips", &settingsTooltips, fileCfg.Settings.ShowTooltips)
	applyIntConfig(cmd, "brush-size", &settingsBrushSize, fileCfg.Settings.BrushSize)
	applyIntConfig(cmd, "brush-color", &settingsBrushColor, fileCfg.Settings.BrushColor)
	applyStringConfig(cmd, "cache-policy", &settingsCachePolicy, fileCfg.Settings.CachePolicy)
	applyIntConfig(cmd, "cache-size", &settingsCacheSize, fileCfg.Settings.CacheSize)
	applyStringConfig(cmd, "save-dir", &settingsSaveDir, fileCfg.Settings.SaveDir)
	applyStringConfig(cmd, "mode", &practiceMode, fileCfg.Practice.Mode)
	applyStringConfig(cmd, "difficulty", &practiceDifficulty, fileCfg.Practice.Difficulty)
	applyStringConfig(cmd, "sentences", &practiceSentences, fileCfg.Practice.Sentences)
	applyBoolConfig(cmd, "focus-weak", &practiceFocusWeak, fileCfg.Practice.FocusWeak)
	applyIntConfig(cmd, "weak-top", &practiceWeakTop, fileCfg.Practice.WeakTop)
	applyFloatConfig(cmd, "weak-factor", &practiceWeakFactor, fileCfg.Practice.WeakFactor)
	applyIntConfig(cmd, "weak-window", &practiceWeakWindow, fileCfg.Practice.WeakWindow)

	settings := model.Settings{
		Volume:       settingsVolume,
		Fullscreen:   settingsFullscreen,
		ShowTooltips: settingsTooltips,
		BrushSize:    settingsBrushSize,
		BrushColor:   settingsBrushColor,
		Difficulty:   practiceDifficulty,
		Mode:         practiceMode,
		CachePolicy:  settingsCachePolicy,
		CacheSize:    settingsCacheSize,
		SaveDir:      settingsSaveDir,
	}
	practice := model.PracticeConfig{
		Mode:       practiceMode,
		Difficulty: practiceDifficulty,
		FocusWeak:  practiceFocusWeak,
		WeakTop:    practiceWeakTop,
		WeakFactor: practiceWeakFactor,
		WeakWindow: practiceWeakWindow,
		Sentences:  practiceSentences,
	}
	if err := validateSettings(settings); err != nil {
		return err
	}
	if err := validatePractice(practice); err != nil {
		return err
	}
	mode, err := targets.ParseMode(practice.Mode)
	if err != nil {
		return fmt.Errorf("invalid --mode: %w", err)
	}
	difficulty, err := game.ParseDifficulty(practice.Difficulty)
	if err != nil {
		return fmt.Errorf("invalid --difficulty: %w", err)
	}
	if settings.SaveDir == "" {
		settings.SaveDir = config.DefaultSaveDir()
	}

	done := log.Step("startup")
	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		log.Error("failed to open db, progress will not be saved: %v", err)
		st = nil
	} else {
		defer func() {
			if cerr := st.Close(); cerr != nil {
				log.Warn("failed to close db: %v", cerr)
			}
		}()
	}

	evaluator, err := newEvaluator(settings.CachePolicy, settings.CacheSize)
	if err != nil {
		log.Warn("%v; using an uncached evaluator", err)
		evaluator = accuracy.NewEvaluator(nil)
	}

	sentencePath := practice.Sentences
	if sentencePath == "" {
		if _, statErr := os.Stat(config.DefaultSentencesPath()); statErr == nil {
			sentencePath = config.DefaultSentencesPath()
		}
	}
	sentenceList, err := sentences.LoadOrDefault(sentencePath)
	if err != nil {
		log.Warn("%v; using built-in sentences", err)
	}

	var recognizer ocr.Recognizer
	if tess := ocr.NewTesseract(); tess.Available() {
		recognizer = tess
	} else {
		log.Info("tesseract not found, OCR disabled")
	}
	done()

	opts := tui.Options{
		Mode:         mode,
		Difficulty:   difficulty,
		BrushSize:    settings.BrushSize,
		BrushColor:   settings.BrushColor,
		SaveDir:      settings.SaveDir,
		ShowTooltips: settings.ShowTooltips,
		Volume:       settings.Volume,
		Sentences:    sentenceList,
		FocusWeak:    practice.FocusWeak,
		WeakTop:      practice.WeakTop,
		WeakFactor:   practice.WeakFactor,
		WeakWindow:   practice.WeakWindow,
	}
	m := tui.NewModel(opts, st, evaluator, recognizer, log)
	programOpts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if settings.Fullscreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	program := tea.NewProgram(m, programOpts...)
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

// openLog writes to the log file while the UI owns the terminal and falls
// back to stderr.
func openLog() (*logger.Logger, io.Closer) {
	level := logger.LevelInfo
	if verbose {
		level = logger.LevelDebug
	}
	log, closer, err := logger.OpenFile(config.DefaultLogPath(), level)
	if err != nil {
		logErrf("failed to open log file: %v\n", err)
		return logger.New(os.Stderr, logger.LevelWarn, ""), io.NopCloser(nil)
	}
	return log, closer
}

func newEvaluator(policy string, size int) (*accuracy.Evaluator, error) {
	cache, err := distance.NewCache(policy, size)
	if err != nil {
		return nil, fmt.Errorf("failed to create distance cache: %w", err)
	}
	return accuracy.NewEvaluator(distance.NewEngine(cache)), nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsGame, "game", "", "game filter")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N attempts")
	cmd.Flags().IntVar(&statsCurveWindow, "curve-window", defaultCurveWindow, "moving average window")
	cmd.Flags().StringVar(&statsTargets, "target", "", "comma separated targets for per-target curves")
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print a text report instead of the browser")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	var sinceTime *time.Time
	if statsSince != "" {
		parsed, err := time.ParseInLocation("2006-01-02", statsSince, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --since value: %w", err)
		}
		sinceTime = &parsed
	}
	if statsGame != "" {
		mode, err := targets.ParseMode(statsGame)
		if err != nil || !mode.Scored() {
			return fmt.Errorf("invalid --game value %q", statsGame)
		}
		statsGame = string(mode)
	}
	if statsCurveWindow < 1 {
		return fmt.Errorf("--curve-window must be >= 1")
	}

	cfg := model.StatsConfig{
		Game:        statsGame,
		Since:       sinceTime,
		Last:        statsLast,
		CurveWindow: statsCurveWindow,
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close db: %v\n", cerr)
		}
	}()

	games := gameNames()
	selected := splitTargets(statsTargets)
	if statsPlain {
		return renderPlainStats(cmd.OutOrStdout(), st, cfg, games, selected)
	}

	m := statsui.NewModel(st, cfg, games, selected)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func renderPlainStats(w io.Writer, st *store.Store, cfg model.StatsConfig, games, selected []string) error {
	report, err := stats.BuildReport(context.Background(), st, cfg, games)
	if err != nil {
		return fmt.Errorf("failed to build report: %w", err)
	}
	if err := stats.RenderSummary(w, report.Attempts); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if len(report.Attempts) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderTargetTable(w, report.TargetsAll); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if err := stats.RenderCurves(w, report.Attempts, cfg.CurveWindow); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if len(selected) == 0 {
		selected = stats.TopTargetsByAttempts(report.TargetsAll, defaultStatsTargets)
	}
	if err := stats.RenderTargetCurves(w, report.Attempts, selected, cfg.CurveWindow, 0, plainPlotHeight, false); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newScoreCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "score <mode> <target> <stroke.json>",
		Short: "Score a recorded stroke against a target",
		Long: "Score a recorded stroke against a target laid out on a canvas of the given size.\n" +
			"The stroke file is a JSON array of {\"x\": ..., \"y\": ...} points in canvas pixels.",
		Args: cobra.ExactArgs(3),
		RunE: runScoreCmd,
	}
	cmd.Flags().StringVar(&scoreDifficulty, "difficulty", defaultDifficulty, "difficulty: easy, medium, hard")
	cmd.Flags().IntVar(&scoreWidth, "width", defaultScoreWidth, "canvas width in pixels")
	cmd.Flags().IntVar(&scoreHeight, "height", defaultScoreHeight, "canvas height in pixels")
	return cmd
}

func runScoreCmd(cmd *cobra.Command, args []string) error {
	mode, err := targets.ParseMode(args[0])
	if err != nil {
		return err
	}
	if !mode.Scored() {
		return fmt.Errorf("mode %s is not scored", mode)
	}
	difficulty, err := game.ParseDifficulty(scoreDifficulty)
	if err != nil {
		return err
	}
	if scoreWidth <= 0 || scoreHeight <= 0 {
		return fmt.Errorf("--width and --height must be > 0")
	}
	data, err := os.ReadFile(args[2])
	if err != nil {
		return fmt.Errorf("failed to read stroke: %w", err)
	}
	stroke, err := parseStroke(data)
	if err != nil {
		return err
	}
	target, tolerance, metrics, err := scoreStroke(mode, difficulty, args[1], stroke, scoreWidth, scoreHeight)
	if err != nil {
		return err
	}
	return writeScore(cmd.OutOrStdout(), target, tolerance, metrics)
}

// scoreStroke lays label out on a width×height canvas and scores stroke
// against it the way a finished stroke is scored in the UI.
func scoreStroke(mode targets.Mode, difficulty game.Difficulty, label string, stroke model.Path, width, height int) (string, float64, model.AccuracyMetrics, error) {
	session := game.NewSession(game.Options{
		Mode:       mode,
		Difficulty: difficulty,
		Width:      width,
		Height:     height,
	})
	if !session.Select(label) {
		return "", 0, model.AccuracyMetrics{}, fmt.Errorf("unknown target %q for mode %s", label, mode)
	}
	tolerance := session.Tolerance()
	var state accuracy.State
	state.Update(accuracy.NewEvaluator(nil).EvaluateReference(stroke, session.Reference(), tolerance))
	return session.Target(), tolerance, state.Metrics, nil
}

func parseStroke(data []byte) (model.Path, error) {
	var stroke model.Path
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&stroke); err != nil {
		return nil, fmt.Errorf("failed to decode stroke: %w", err)
	}
	return stroke, nil
}

func writeScore(w io.Writer, target string, tolerance float64, m model.AccuracyMetrics) error {
	lines := []string{
		fmt.Sprintf("Target:    %s", target),
		fmt.Sprintf("Tolerance: %.0fpx", tolerance),
		fmt.Sprintf("Accuracy:  %.1f%% (%s)", m.Percentage, accuracy.Grade(m.Percentage)),
		fmt.Sprintf("On path:   %d/%d", m.OnPathPoints, m.TotalPoints),
		fmt.Sprintf("Avg dist:  %.1fpx", m.AvgDistance),
		fmt.Sprintf("Max dist:  %.1fpx", m.MaxDistance),
		fmt.Sprintf("Completed: %t", m.Completed),
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newTargetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "targets [mode]",
		Short: "List the targets of a mode",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runTargetsCmd,
	}
	cmd.Flags().StringVar(&targetsSentencesPath, "sentences", "", "file with one sentence per line")
	return cmd
}

func runTargetsCmd(cmd *cobra.Command, args []string) error {
	modes := targets.GameModes
	if len(args) == 1 {
		mode, err := targets.ParseMode(args[0])
		if err != nil {
			return err
		}
		modes = []targets.Mode{mode}
	}
	sentenceList, err := sentences.LoadOrDefault(targetsSentencesPath)
	if err != nil {
		logErrf("%v; using built-in sentences\n", err)
	}
	out := cmd.OutOrStdout()
	for _, mode := range modes {
		labels := make([]string, 0)
		for _, it := range targets.Catalog(mode, sentenceList) {
			labels = append(labels, it.Label)
		}
		if len(labels) == 0 {
			labels = append(labels, "(free drawing)")
		}
		if _, err := fmt.Fprintf(out, "%s: %s\n", mode, strings.Join(labels, ", ")); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func gameNames() []string {
	out := make([]string, 0, len(targets.GameModes))
	for _, m := range targets.GameModes {
		out = append(out, string(m))
	}
	return out
}

func splitTargets(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tracepad configuration
# Uncomment a value to enable it. CLI flags override config values.

[settings]
# volume = %.1f            # Completion bell (0 silences it)
# fullscreen = true        # Use the alternate screen
# show-tooltips = true     # Show key hints in the footer
# brush-size = %d           # Brush size index (0-%d)
# brush-color = %d          # Brush colour index (0-%d)
# cache-policy = %q   # Distance cache: clear, lru, none
# cache-size = %d        # Distance cache entries
# save-dir = ""            # Directory for saved drawings (default %q)

[practice]
# mode = %q          # shapes, letters, numbers, sentence, playground
# difficulty = %q     # easy, medium, hard
# sentences = ""           # File with one sentence per line
# focus-weak = false       # Bias random targets toward weak ones
# weak-top = %d             # Number of weak targets to focus on
# weak-factor = %.1f        # Weight factor for weak targets
# weak-window = %d         # Number of recent attempts to compute weak targets
`,
		defaultVolume,
		defaultBrushSize,
		len(surface.BrushSizes)-1,
		defaultBrushColor,
		len(surface.BrushColors)-1,
		defaultCachePolicy,
		distance.DefaultCacheSize,
		config.DefaultSaveDir(),
		defaultMode,
		defaultDifficulty,
		defaultWeakTop,
		defaultWeakFactor,
		defaultWeakWindow,
	)
}

func validateSettings(s model.Settings) error {
	if s.Volume < 0 || s.Volume > 1 {
		return fmt.Errorf("--volume must be between 0 and 1")
	}
	if s.BrushSize < 0 || s.BrushSize >= len(surface.BrushSizes) {
		return fmt.Errorf("--brush-size must be between 0 and %d", len(surface.BrushSizes)-1)
	}
	if s.BrushColor < 0 || s.BrushColor >= len(surface.BrushColors) {
		return fmt.Errorf("--brush-color must be between 0 and %d", len(surface.BrushColors)-1)
	}
	switch strings.ToLower(strings.TrimSpace(s.CachePolicy)) {
	case "", "clear", "lru", "none", "off":
	default:
		return fmt.Errorf("--cache-policy must be clear, lru or none")
	}
	if s.CacheSize <= 0 {
		return fmt.Errorf("--cache-size must be > 0")
	}
	return nil
}

func validatePractice(p model.PracticeConfig) error {
	if p.WeakTop < 0 {
		return fmt.Errorf("--weak-top must be >= 0")
	}
	if p.WeakFactor < 0 {
		return fmt.Errorf("--weak-factor must be >= 0")
	}
	if p.WeakWindow < 0 {
		return fmt.Errorf("--weak-window must be >= 0")
	}
	return nil
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
