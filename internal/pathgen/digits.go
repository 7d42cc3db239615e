package pathgen

import (
	"math"

	"github.com/verte-zerg/tracepad/internal/model"
)

var digitGlyphs = [10]glyphFunc{
	digit0, digit1, digit2, digit3, digit4,
	digit5, digit6, digit7, digit8, digit9,
}

// DigitPath returns the skeleton of digit d centred on c. Values outside 0-9
// become a vertical bar.
func DigitPath(d int, c model.Point, size int) model.Path {
	if d < 0 || d >= len(digitGlyphs) {
		return fallback(c, size)
	}
	return digitGlyphs[d](c.X, c.Y, size)
}

func digit0(x, y float64, size int) model.Path {
	return ellipse(x, y, size, 20)
}

func digit1(x, y float64, size int) model.Path {
	half := float64(size / 2)
	w := float64(size) * 0.3
	return model.Path{
		pt(x-w, y-half),
		pt(x, y-half),
		pt(x, y+half),
		pt(x-w, y+half),
		pt(x+w, y+half),
	}
}

func digit2(x, y float64, size int) model.Path {
	half := float64(size / 2)
	hw := floorDiv(float64(size)*0.6, 2)
	return model.Path{
		pt(x-hw, y-half),
		pt(x+hw, y-half),
		pt(x+hw, y),
		pt(x-hw, y),
		pt(x-hw, y+half),
		pt(x+hw, y+half),
	}
}

func digit3(x, y float64, size int) model.Path {
	half := float64(size / 2)
	hw := floorDiv(float64(size)*0.6, 2)
	return model.Path{
		pt(x-hw, y-half),
		pt(x+hw, y-half),
		pt(x, y),
		pt(x+hw, y+half),
		pt(x-hw, y+half),
	}
}

func digit4(x, y float64, size int) model.Path {
	half := float64(size / 2)
	hw := floorDiv(float64(size)*0.6, 2)
	return model.Path{
		pt(x-hw, y-half),
		pt(x-hw, y),
		pt(x+hw, y),
		pt(x+hw, y-half),
		pt(x+hw, y+half),
	}
}

func digit5(x, y float64, size int) model.Path {
	half := float64(size / 2)
	hw := floorDiv(float64(size)*0.6, 2)
	return model.Path{
		pt(x+hw, y-half),
		pt(x-hw, y-half),
		pt(x-hw, y),
		pt(x+hw, y),
		pt(x+hw, y+half),
		pt(x-hw, y+half),
	}
}

func digit6(x, y float64, size int) model.Path {
	halfInt := size / 2
	half := float64(halfInt)
	quarter := float64(halfInt / 2)
	w := float64(size) * 0.6
	const n = 12
	out := make(model.Path, 0, n+2)
	out = append(out, pt(x-floorDiv(w, 2), y-half))
	for i := 0; i <= n; i++ {
		a := math.Pi * (1 + float64(i)/float64(n))
		px := x + floorDiv(math.Cos(a)*w, 2)
		py := y + floorDiv(math.Sin(a)*half, 2)
		out = append(out, truncPt(px, py+quarter))
	}
	return out
}

func digit7(x, y float64, size int) model.Path {
	half := float64(size / 2)
	w := float64(size) * 0.6
	return model.Path{
		pt(x-floorDiv(w, 2), y-half),
		pt(x+floorDiv(w, 2), y-half),
		pt(x-floorDiv(w, 4), y+half),
	}
}

func digit8(x, y float64, size int) model.Path {
	w := float64(size) * 0.6
	q := float64(size / 4)
	const n = 12
	out := make(model.Path, 0, 2*(n+1))
	for _, cy := range []float64{y - q, y + q} {
		for i := 0; i <= n; i++ {
			a := 2 * math.Pi * float64(i) / float64(n)
			out = append(out, truncPt(x+floorDiv(math.Cos(a)*w, 2), cy+math.Sin(a)*q))
		}
	}
	return out
}

func digit9(x, y float64, size int) model.Path {
	halfInt := size / 2
	half := float64(halfInt)
	quarter := float64(halfInt / 2)
	w := float64(size) * 0.6
	const n = 12
	out := make(model.Path, 0, n+2)
	for i := 0; i <= n; i++ {
		a := math.Pi * (2 - float64(i)/float64(n))
		px := x + floorDiv(math.Cos(a)*w, 2)
		py := y + floorDiv(math.Sin(a)*half, 2)
		out = append(out, truncPt(px, py-quarter))
	}
	out = append(out, pt(x+floorDiv(w, 2), y+half))
	return out
}
