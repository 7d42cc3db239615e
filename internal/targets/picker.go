package targets

import (
	"math/rand"
	"time"
)

// Picker chooses targets at random.
type Picker struct {
	rnd *rand.Rand
}

// NewPicker returns a Picker seeded with the current time.
func NewPicker() *Picker {
	return &Picker{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewSeededPicker returns a deterministic Picker.
func NewSeededPicker(seed int64) *Picker {
	return &Picker{rnd: rand.New(rand.NewSource(seed))}
}

// Random returns an index in [0, n) different from current when n > 1.
func (p *Picker) Random(n, current int) int {
	if n <= 1 {
		return 0
	}
	if current < 0 || current >= n {
		return p.rnd.Intn(n)
	}
	idx := p.rnd.Intn(n - 1)
	if idx >= current {
		idx++
	}
	return idx
}

// Weighted returns an index different from current, biased toward items whose
// label is in weak. Each weak item weighs 1+factor, others weigh 1.
func (p *Picker) Weighted(items []Item, current int, weak map[string]struct{}, factor float64) int {
	if len(weak) == 0 || factor <= 0 {
		return p.Random(len(items), current)
	}
	if len(items) <= 1 {
		return 0
	}
	weights := make([]float64, len(items))
	total := 0.0
	for i, it := range items {
		if i == current {
			continue
		}
		w := 1.0
		if _, ok := weak[it.Label]; ok {
			w += factor
		}
		weights[i] = w
		total += w
	}

	r := p.rnd.Float64() * total
	acc := 0.0
	last := 0
	for i, w := range weights {
		if w == 0 {
			continue
		}
		acc += w
		last = i
		if r <= acc {
			return i
		}
	}
	return last
}
