package surface

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// WipeFrames is the number of intermediate frames of an animated clear.
const WipeFrames = 18

const wipeStartRadius = 10.0

// Wipe renders the clear transition one frame at a time. It is single-use:
// once Next reports false it stays exhausted.
type Wipe struct {
	before *image.RGBA
	bg     color.RGBA
	frames int
	next   int
}

func newWipe(before *image.RGBA, bg color.RGBA, animated bool) *Wipe {
	w := &Wipe{before: before, bg: bg}
	if animated {
		w.frames = WipeFrames
	}
	return w
}

// Len returns the total number of frames, the final blank frame included.
func (w *Wipe) Len() int {
	return w.frames + 1
}

// Next returns the next frame. Intermediate frames show a background disc
// growing from the centre over the previous image; the last frame is blank.
func (w *Wipe) Next() (*image.RGBA, bool) {
	if w.next > w.frames {
		return nil, false
	}
	i := w.next
	w.next++
	if i == w.frames {
		return w.blank(), true
	}
	return w.frame(i), true
}

// Done reports whether all frames have been produced.
func (w *Wipe) Done() bool {
	return w.next > w.frames
}

func (w *Wipe) frame(i int) *image.RGBA {
	b := w.before.Bounds()
	cx := float64(b.Dx()) / 2
	cy := float64(b.Dy()) / 2
	diag := math.Hypot(float64(b.Dx()), float64(b.Dy()))
	r := wipeStartRadius
	if w.frames > 1 {
		r += (diag - wipeStartRadius) * float64(i) / float64(w.frames-1)
	}
	out := cloneRGBA(w.before)
	dc := gg.NewContextForRGBA(out)
	dc.SetColor(w.bg)
	dc.DrawCircle(cx, cy, r)
	dc.Fill()
	return out
}

func (w *Wipe) blank() *image.RGBA {
	dc := gg.NewContext(w.before.Bounds().Dx(), w.before.Bounds().Dy())
	dc.SetColor(w.bg)
	dc.Clear()
	return dc.Image().(*image.RGBA)
}
