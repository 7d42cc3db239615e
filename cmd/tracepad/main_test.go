package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/verte-zerg/tracepad/internal/accuracy"
	"github.com/verte-zerg/tracepad/internal/config"
	"github.com/verte-zerg/tracepad/internal/game"
	"github.com/verte-zerg/tracepad/internal/model"
	"github.com/verte-zerg/tracepad/internal/targets"
)

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.LoadConfig(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.Settings.BrushSize != nil || cfg.Practice.Mode != nil {
		t.Fatalf("expected commented template to leave values unset")
	}
}

func TestParseStroke(t *testing.T) {
	stroke, err := parseStroke([]byte(`[{"x": 1, "y": 2}, {"x": 3.5, "y": 4}]`))
	if err != nil {
		t.Fatalf("parse stroke: %v", err)
	}
	if len(stroke) != 2 || stroke[1] != (model.Point{X: 3.5, Y: 4}) {
		t.Fatalf("unexpected stroke %v", stroke)
	}
	if _, err := parseStroke([]byte(`[{"x": 1, "z": 2}]`)); err == nil {
		t.Fatalf("expected unknown field error")
	}
}

func TestWriteScore(t *testing.T) {
	var buf bytes.Buffer
	m := model.AccuracyMetrics{Percentage: 92, OnPathPoints: 46, TotalPoints: 50, Completed: true}
	if err := writeScore(&buf, "circle", 15, m); err != nil {
		t.Fatalf("write score: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Target:    circle", "Accuracy:  92.0% (A)", "On path:   46/50", "Completed: true"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestValidateSettings(t *testing.T) {
	ok := model.Settings{Volume: 0.5, BrushSize: 1, BrushColor: 0, CachePolicy: "lru", CacheSize: 10}
	if err := validateSettings(ok); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cases := map[string]model.Settings{
		"volume":       {Volume: 2, CacheSize: 10},
		"brush-size":   {BrushSize: 99, CacheSize: 10},
		"brush-color":  {BrushColor: -1, CacheSize: 10},
		"cache-policy": {CachePolicy: "fifo", CacheSize: 10},
		"cache-size":   {CacheSize: 0},
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			if err := validateSettings(s); err == nil || !strings.Contains(err.Error(), name) {
				t.Fatalf("expected %s error, got %v", name, err)
			}
		})
	}
}

func TestSplitTargets(t *testing.T) {
	got := splitTargets(" A, ,circle ,")
	if strings.Join(got, "|") != "A|circle" {
		t.Fatalf("unexpected targets %v", got)
	}
}

func TestScoreStrokeMarksCompletion(t *testing.T) {
	// The square on an 800x600 canvas spans (300,200)-(500,400).
	onOutline := model.Path{
		{X: 300, Y: 200}, {X: 400, Y: 200}, {X: 500, Y: 200}, {X: 500, Y: 300},
		{X: 500, Y: 400}, {X: 400, Y: 400}, {X: 300, Y: 400}, {X: 300, Y: 300},
	}
	target, tol, m, err := scoreStroke(targets.ModeShapes, game.Medium, "square", onOutline, 800, 600)
	if err != nil {
		t.Fatalf("score stroke: %v", err)
	}
	if target != "square" || tol != game.ShapeTolerance {
		t.Fatalf("unexpected target %q tolerance %v", target, tol)
	}
	if m.Percentage < accuracy.CompletionThreshold || !m.Completed {
		t.Fatalf("expected a completed score, got %+v", m)
	}
	var buf bytes.Buffer
	if err := writeScore(&buf, target, tol, m); err != nil {
		t.Fatalf("write score: %v", err)
	}
	if !strings.Contains(buf.String(), "Completed: true") {
		t.Fatalf("expected completion in output:\n%s", buf.String())
	}

	far := model.Path{{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}}
	_, _, m, err = scoreStroke(targets.ModeShapes, game.Medium, "square", far, 800, 600)
	if err != nil {
		t.Fatalf("score stroke: %v", err)
	}
	if m.Completed {
		t.Fatalf("expected a distant stroke to stay incomplete, got %+v", m)
	}
}

func TestScoreStrokeUnknownTarget(t *testing.T) {
	if _, _, _, err := scoreStroke(targets.ModeShapes, game.Medium, "blob", nil, 800, 600); err == nil {
		t.Fatalf("expected unknown target error")
	}
}
