package tui

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tracepad/internal/model"
	"github.com/verte-zerg/tracepad/internal/surface"
)

// A terminal cell covers 6x12 canvas pixels and shows two 6x6 halves with an
// upper half block.
const (
	pxPerCol  = 6
	pxPerRow  = 12
	halfBlock = "▀"
	sampleGap = 2
)

// cellToPixel maps a terminal cell to the screen pixel at its centre.
func cellToPixel(x, y int) model.Point {
	return model.Point{X: float64(x*pxPerCol + pxPerCol/2), Y: float64(y*pxPerRow + pxPerRow/2)}
}

// renderCanvas draws img as rows x cols half-block cells. Runs of identical
// cells share one style.
func renderCanvas(img *image.RGBA, cols, rows int) string {
	if cols <= 0 || rows <= 0 {
		return ""
	}
	lines := make([]string, rows)
	for row := 0; row < rows; row++ {
		var b strings.Builder
		runStart := 0
		var runTop, runBottom color.RGBA
		for col := 0; col <= cols; col++ {
			var top, bottom color.RGBA
			if col < cols {
				top = blockColor(img, col*pxPerCol, row*pxPerRow)
				bottom = blockColor(img, col*pxPerCol, row*pxPerRow+pxPerRow/2)
			}
			if col > 0 && (col == cols || top != runTop || bottom != runBottom) {
				style := lipgloss.NewStyle().Foreground(hexColor(runTop)).Background(hexColor(runBottom))
				b.WriteString(style.Render(strings.Repeat(halfBlock, col-runStart)))
				runStart = col
			}
			runTop, runBottom = top, bottom
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}

// blockColor returns the darkest sampled pixel of a half cell so that thin
// strokes stay visible after downscaling.
func blockColor(img *image.RGBA, x0, y0 int) color.RGBA {
	best := surface.Background
	bestLum := luminance(best)
	b := img.Bounds()
	for y := y0; y < y0+pxPerRow/2; y += sampleGap {
		for x := x0; x < x0+pxPerCol; x += sampleGap {
			if !(image.Point{X: x, Y: y}).In(b) {
				continue
			}
			c := img.RGBAAt(x, y)
			if l := luminance(c); l < bestLum {
				best, bestLum = c, l
			}
		}
	}
	return best
}

func luminance(c color.RGBA) int {
	return 299*int(c.R) + 587*int(c.G) + 114*int(c.B)
}

func hexColor(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B))
}
