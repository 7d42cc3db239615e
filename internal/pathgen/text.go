package pathgen

import (
	"strings"
	"unicode"

	"github.com/verte-zerg/tracepad/internal/model"
)

// DefaultMaxWidth is the wrap width applied to text targets.
const DefaultMaxWidth = 800.0

// LineSpacing is the line height as a multiple of the letter size.
const LineSpacing = 1.5

// TextMetrics describes horizontal spacing for a letter size.
type TextMetrics struct {
	Advance     float64
	Space       float64
	WordSpacing float64
}

// MetricsFor returns text spacing for letters of the given size.
func MetricsFor(size int) TextMetrics {
	advance := float64(size) * 0.8
	return TextMetrics{
		Advance:     advance,
		Space:       advance * 0.5,
		WordSpacing: advance,
	}
}

// WrapLines splits text into lines greedily so that the estimated width of
// each line fits within maxWidth. A single word wider than maxWidth gets a line
// of its own.
func WrapLines(text string, size int, maxWidth float64) []string {
	m := MetricsFor(size)
	var lines []string
	var current []string
	width := 0.0
	for _, word := range strings.Fields(text) {
		wordWidth := float64(len([]rune(word))) * (m.Advance + m.WordSpacing/2)
		if width+wordWidth <= maxWidth {
			current = append(current, word)
			width += wordWidth + m.WordSpacing
			continue
		}
		if len(current) > 0 {
			lines = append(lines, strings.Join(current, " "))
		}
		current = []string{word}
		width = wordWidth
	}
	if len(current) > 0 {
		lines = append(lines, strings.Join(current, " "))
	}
	return lines
}

// TextReference lays out text starting at start and returns one sub-path per
// non-space character.
func TextReference(text string, start model.Point, size int, maxWidth float64) model.Reference {
	m := MetricsFor(size)
	ref := model.Reference{}
	y := start.Y
	for _, line := range WrapLines(text, size, maxWidth) {
		x := start.X
		for _, word := range strings.Fields(line) {
			for _, r := range word {
				if unicode.IsSpace(r) {
					x += m.Space
					continue
				}
				c := model.Point{X: x + m.Advance/2, Y: y}
				ref.Paths = append(ref.Paths, LetterPath(r, c, size))
				x += m.Advance + m.Space
			}
			x += m.WordSpacing - m.Space
		}
		y += float64(size) * LineSpacing
	}
	return ref
}
