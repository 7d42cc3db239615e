package surface

import "image"

// MaxHistory is the number of snapshots kept for undo.
const MaxHistory = 10

// History is a bounded list of canvas snapshots with a cursor. Pushing after
// an undo discards the redo tail; the oldest snapshot is evicted once the cap
// is exceeded.
type History struct {
	snapshots []*image.RGBA
	index     int
	max       int
}

// NewHistory returns a history seeded with initial.
func NewHistory(initial *image.RGBA, max int) *History {
	if max < 1 {
		max = MaxHistory
	}
	return &History{snapshots: []*image.RGBA{cloneRGBA(initial)}, max: max}
}

// Push records a copy of img as the newest snapshot.
func (h *History) Push(img *image.RGBA) {
	h.snapshots = append(h.snapshots[:h.index+1], cloneRGBA(img))
	if over := len(h.snapshots) - h.max; over > 0 {
		h.snapshots = append([]*image.RGBA(nil), h.snapshots[over:]...)
	}
	h.index = len(h.snapshots) - 1
}

// Undo moves the cursor back and returns a copy of that snapshot. It returns
// false at the oldest snapshot.
func (h *History) Undo() (*image.RGBA, bool) {
	if h.index == 0 {
		return nil, false
	}
	h.index--
	return cloneRGBA(h.snapshots[h.index]), true
}

// Redo moves the cursor forward and returns a copy of that snapshot. It
// returns false at the newest snapshot.
func (h *History) Redo() (*image.RGBA, bool) {
	if h.index >= len(h.snapshots)-1 {
		return nil, false
	}
	h.index++
	return cloneRGBA(h.snapshots[h.index]), true
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.snapshots)
}

// Index returns the cursor position.
func (h *History) Index() int {
	return h.index
}

// CanUndo reports whether Undo would change the canvas.
func (h *History) CanUndo() bool {
	return h.index > 0
}

// CanRedo reports whether Redo would change the canvas.
func (h *History) CanRedo() bool {
	return h.index < len(h.snapshots)-1
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Rect)
	copy(dst.Pix, src.Pix)
	return dst
}
