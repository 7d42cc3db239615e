package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/tracepad/internal/model"
)

func fixedLogger(buf *bytes.Buffer, level Level) *Logger {
	l := New(buf, level, "")
	l.now = func() time.Time { return time.Date(2026, 1, 1, 12, 30, 0, 0, time.UTC) }
	return l
}

func TestLevelsFilter(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LevelWarn)
	l.Info("hidden")
	l.Warn("shown %d", 1)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("expected info to be filtered: %q", out)
	}
	if out != "12:30:00.000 WARN shown 1\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestWithPrefixNests(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LevelDebug).WithPrefix("game").WithPrefix("letters")
	l.Error("boom")
	if !strings.Contains(buf.String(), "ERROR [game/letters] boom") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestEvaluationAndStep(t *testing.T) {
	var buf bytes.Buffer
	l := fixedLogger(&buf, LevelDebug)
	l.Evaluation("A", true, model.AccuracyMetrics{Percentage: 87.5, OnPathPoints: 7, TotalPoints: 8, AvgDistance: 2, MaxDistance: 9})
	done := l.Step("load")
	done()
	out := buf.String()
	for _, want := range []string{"final eval A: 87.5% (7/8 on path", "start: load", "done: load"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in %q", want, out)
		}
	}
}

func TestParseLevel(t *testing.T) {
	if ParseLevel("DEBUG") != LevelDebug || ParseLevel("warning") != LevelWarn || ParseLevel("") != LevelInfo {
		t.Fatalf("unexpected level parsing")
	}
}

func TestOpenFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "tracepad.log")
	l, closer, err := OpenFile(path, LevelInfo)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	l.Info("hello")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.Contains(string(data), "INFO hello") {
		t.Fatalf("unexpected log contents %q", data)
	}
}

func TestNilAndDiscard(t *testing.T) {
	var l *Logger
	l.Info("no panic")
	Discard().Error("dropped")
}
