package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

func TestBuildStyledRunesWidths(t *testing.T) {
	runes := buildStyledRunes("a 界", lipgloss.NewStyle())
	if len(runes) != 3 {
		t.Fatalf("expected 3 runes, got %d", len(runes))
	}
	if runes[0].width != 1 || runes[2].width != 2 {
		t.Fatalf("unexpected widths: %d %d", runes[0].width, runes[2].width)
	}
	if !runes[1].isSpace {
		t.Fatalf("expected space marker")
	}
}

func TestWrapStatusBreaksAtSpaces(t *testing.T) {
	lines := wrapStatus("trace the outline slowly", 10, 5, lipgloss.NewStyle())
	want := []string{"trace the", "outline", "slowly"}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %q", len(want), lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestWrapStatusWideRunes(t *testing.T) {
	lines := wrapStatus("界界界界", 5, 5, lipgloss.NewStyle())
	for _, line := range lines {
		if runewidth.StringWidth(line) > 5 {
			t.Fatalf("line %q exceeds width", line)
		}
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
}

func TestWrapStatusTruncatesOverflow(t *testing.T) {
	lines := wrapStatus("one two three four five six", 9, 2, lipgloss.NewStyle())
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if !strings.HasSuffix(lines[1], "…") || runewidth.StringWidth(lines[1]) > 9 {
		t.Fatalf("expected ellipsis within width, got %q", lines[1])
	}
}

func TestWrapStatusEmpty(t *testing.T) {
	if lines := wrapStatus("", 10, 2, lipgloss.NewStyle()); lines != nil {
		t.Fatalf("expected no lines, got %q", lines)
	}
}
