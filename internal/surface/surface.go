// Package surface is the raster drawing canvas with brush stamping and undo.
package surface

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"

	"github.com/verte-zerg/tracepad/internal/model"
)

// BrushSizes are the selectable brush diameters in pixels.
var BrushSizes = []int{5, 10, 15}

// BrushColors are the selectable ink colours.
var BrushColors = []color.RGBA{
	{R: 0, G: 0, B: 0, A: 255},
	{R: 255, G: 0, B: 0, A: 255},
	{R: 0, G: 0, B: 255, A: 255},
}

// BrushColorNames label BrushColors for display.
var BrushColorNames = []string{"black", "red", "blue"}

// Background is the blank canvas colour.
var Background = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// OutlineColor is the default colour of reference outlines.
var OutlineColor = color.RGBA{R: 200, G: 200, B: 200, A: 255}

const (
	outlineWidth = 2.0
	contentStep  = 10
)

// Canvas is a fixed-size raster the user draws on.
type Canvas struct {
	dc         *gg.Context
	width      int
	height     int
	bg         color.RGBA
	sizeIndex  int
	colorIndex int
	eraser     bool
	drawing    bool
	last       model.Point
	history    *History
}

// New returns a blank canvas of the given size with a medium black brush.
func New(width, height int) *Canvas {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	c := &Canvas{
		dc:        gg.NewContext(width, height),
		width:     width,
		height:    height,
		bg:        Background,
		sizeIndex: 1,
	}
	c.fill()
	c.history = NewHistory(c.rgba(), MaxHistory)
	return c
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int { return c.width }

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int { return c.height }

// Image returns the live ink layer. Callers must not retain it across edits.
func (c *Canvas) Image() *image.RGBA {
	return c.rgba()
}

// Snapshot returns a copy of the ink layer.
func (c *Canvas) Snapshot() *image.RGBA {
	return cloneRGBA(c.rgba())
}

// History exposes the undo history.
func (c *Canvas) History() *History {
	return c.history
}

// SetBrushSize selects a brush size, clamping the index into range.
func (c *Canvas) SetBrushSize(i int) {
	c.sizeIndex = clampIndex(i, len(BrushSizes))
}

// SetBrushColor selects an ink colour, clamping the index into range, and
// leaves eraser mode.
func (c *Canvas) SetBrushColor(i int) {
	c.colorIndex = clampIndex(i, len(BrushColors))
	c.eraser = false
}

// ToggleEraser switches between ink and eraser.
func (c *Canvas) ToggleEraser() {
	c.eraser = !c.eraser
}

// BrushSizeIndex returns the selected size index.
func (c *Canvas) BrushSizeIndex() int { return c.sizeIndex }

// BrushColorIndex returns the selected colour index.
func (c *Canvas) BrushColorIndex() int { return c.colorIndex }

// Eraser reports whether eraser mode is on.
func (c *Canvas) Eraser() bool { return c.eraser }

// BrushRadius returns the stamp radius of the current brush.
func (c *Canvas) BrushRadius() int {
	return BrushSizes[c.sizeIndex] / 2
}

func (c *Canvas) ink() color.RGBA {
	if c.eraser {
		return c.bg
	}
	return BrushColors[c.colorIndex]
}

// StrokeStart stamps one dot at p and starts a stroke.
func (c *Canvas) StrokeStart(p model.Point) {
	c.drawing = true
	c.last = p
	c.stamp(p)
}

// StrokeExtend draws from the previous point to p with evenly spaced stamps.
func (c *Canvas) StrokeExtend(p model.Point) {
	if !c.drawing {
		return
	}
	d := p.Sub(c.last)
	dx, dy := d.X, d.Y
	dist := math.Max(1, p.Dist(c.last))
	n := int(math.Floor(dist / 2))
	if n < 2 {
		n = 2
	}
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		c.stamp(model.Point{X: math.Trunc(c.last.X + dx*t), Y: math.Trunc(c.last.Y + dy*t)})
	}
	c.last = p
}

// StrokeEnd finishes the stroke and records a history snapshot.
func (c *Canvas) StrokeEnd() {
	if !c.drawing {
		return
	}
	c.drawing = false
	c.history.Push(c.rgba())
}

// Drawing reports whether a stroke is in progress.
func (c *Canvas) Drawing() bool {
	return c.drawing
}

// Undo restores the previous snapshot. It reports false when there is none.
func (c *Canvas) Undo() bool {
	img, ok := c.history.Undo()
	if !ok {
		return false
	}
	c.dc = gg.NewContextForRGBA(img)
	return true
}

// Redo restores the next snapshot. It reports false when there is none.
func (c *Canvas) Redo() bool {
	img, ok := c.history.Redo()
	if !ok {
		return false
	}
	c.dc = gg.NewContextForRGBA(img)
	return true
}

// Clear blanks the canvas and records exactly one history snapshot. The
// returned Wipe yields the frames of the clear transition; when animated is
// false it yields only the blank frame.
func (c *Canvas) Clear(animated bool) *Wipe {
	before := c.Snapshot()
	c.drawing = false
	c.fill()
	c.history.Push(c.rgba())
	return newWipe(before, c.bg, animated)
}

// DrawReference returns a copy of the ink layer with the outline of ref drawn
// over it. The canvas and its history are unchanged.
func (c *Canvas) DrawReference(ref model.Reference, col color.Color) *image.RGBA {
	out := c.Snapshot()
	if ref.Empty() {
		return out
	}
	dc := gg.NewContextForRGBA(out)
	dc.SetColor(col)
	dc.SetLineWidth(outlineWidth)
	for _, p := range ref.Paths {
		if len(p) == 0 {
			continue
		}
		if len(p) == 1 {
			dc.DrawPoint(p[0].X, p[0].Y, outlineWidth)
			dc.Fill()
			continue
		}
		dc.MoveTo(p[0].X, p[0].Y)
		for _, q := range p[1:] {
			dc.LineTo(q.X, q.Y)
		}
		if ref.Closed {
			dc.ClosePath()
		}
		dc.Stroke()
	}
	return out
}

// HasContent reports whether any ink is present, sampling every tenth pixel
// in each direction.
func (c *Canvas) HasContent() bool {
	img := c.rgba()
	for y := 0; y < c.height; y += contentStep {
		for x := 0; x < c.width; x += contentStep {
			if img.RGBAAt(x, y) != c.bg {
				return true
			}
		}
	}
	return false
}

func (c *Canvas) stamp(p model.Point) {
	c.dc.SetColor(c.ink())
	c.dc.DrawCircle(p.X, p.Y, float64(c.BrushRadius()))
	c.dc.Fill()
}

func (c *Canvas) fill() {
	c.dc.SetColor(c.bg)
	c.dc.Clear()
}

func (c *Canvas) rgba() *image.RGBA {
	return c.dc.Image().(*image.RGBA)
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
