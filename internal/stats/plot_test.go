package stats

import (
	"bytes"
	"strings"
	"testing"
)

func TestPlotPercentages(t *testing.T) {
	var buf bytes.Buffer
	err := PlotPercentages(&buf, "Test Plot", []Series{
		{Name: "A", Values: []float64{10, 20, 90, 40, 10}},
		{Name: "B", Values: []float64{0, 0, 50, 100, 100}},
	}, 85, 12, 4, false)
	if err != nil {
		t.Fatalf("PlotPercentages failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "Test Plot") {
		t.Fatalf("expected title in output")
	}
	if !strings.Contains(out, "Legend:") {
		t.Fatalf("expected legend in output")
	}
	if !strings.Contains(out, "100%") || !strings.Contains(out, "0%") {
		t.Fatalf("expected fixed axis labels")
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 1+4+1 {
		t.Fatalf("expected 6 lines of output, got %d", len(lines))
	}
}

func TestPlotPercentagesSkipsEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := PlotPercentages(&buf, "Empty", []Series{{Name: "A"}}, 85, 10, 4, false); err != nil {
		t.Fatalf("PlotPercentages failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output, got %q", buf.String())
	}
}

func TestPercentToRow(t *testing.T) {
	if percentToRow(100, 40) != 0 || percentToRow(0, 40) != 39 || percentToRow(150, 40) != 0 {
		t.Fatalf("unexpected row mapping")
	}
}

func TestResampleSeries(t *testing.T) {
	down := resampleSeries([]float64{0, 10, 20, 30}, 2)
	if down[0] != 5 || down[1] != 25 {
		t.Fatalf("unexpected downsample: %v", down)
	}
	up := resampleSeries([]float64{0, 10}, 3)
	if up[1] != 5 {
		t.Fatalf("unexpected upsample: %v", up)
	}
}
