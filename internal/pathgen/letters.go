package pathgen

import (
	"math"

	"github.com/verte-zerg/tracepad/internal/model"
)

type glyphFunc func(x, y float64, size int) model.Path

// letterGlyphs holds every authored letter skeleton, keyed by uppercase rune.
var letterGlyphs = map[rune]glyphFunc{
	'A': letterA,
	'B': letterB,
	'C': letterC,
	'E': letterE,
	'F': letterF,
	'H': letterH,
	'I': letterI,
	'K': letterK,
	'L': letterL,
	'M': letterM,
	'N': letterN,
	'O': letterO,
	'T': letterT,
	'V': letterV,
	'W': letterW,
	'X': letterX,
	'Y': letterY,
	'Z': letterZ,
}

// HasLetter reports whether r has an authored skeleton.
func HasLetter(r rune) bool {
	_, ok := letterGlyphs[Letter(r).Letter]
	return ok
}

// LetterPath returns the stroke skeleton of a letter centred on c. Letters
// without an authored skeleton become a vertical bar of height size.
func LetterPath(r rune, c model.Point, size int) model.Path {
	fn, ok := letterGlyphs[Letter(r).Letter]
	if !ok {
		return fallback(c, size)
	}
	return fn(c.X, c.Y, size)
}

func letterA(x, y float64, size int) model.Path {
	half := float64(size / 2)
	w := float64(size) * 0.8
	return model.Path{
		pt(x-floorDiv(w, 2), y+half),
		pt(x, y-half),
		pt(x+floorDiv(w, 2), y+half),
		pt(x-floorDiv(w, 4), y),
		pt(x+floorDiv(w, 4), y),
	}
}

func letterB(x, y float64, size int) model.Path {
	halfInt := size / 2
	half := float64(halfInt)
	quarter := float64(halfInt / 2)
	hw := floorDiv(float64(size)*0.6, 2)
	return model.Path{
		pt(x-quarter, y-half),
		pt(x, y-half),
		pt(x+hw, y-half),
		pt(x+hw, y-quarter),
		pt(x+hw, y),
		pt(x, y),
		pt(x-quarter, y),
		pt(x, y),
		pt(x+hw, y),
		pt(x+hw, y+quarter),
		pt(x+hw, y+half),
		pt(x, y+half),
		pt(x-quarter, y+half),
	}
}

func letterC(x, y float64, size int) model.Path {
	half := float64(size / 2)
	w := float64(size) * 0.6
	const n = 12
	out := make(model.Path, 0, n)
	for i := 0; i < n; i++ {
		a := math.Pi * (1.5 - float64(i)/float64(n-1))
		out = append(out, truncPt(x+floorDiv(math.Cos(a)*w, 2), y+math.Sin(a)*half))
	}
	return out
}

func letterO(x, y float64, size int) model.Path {
	return ellipse(x, y, size, 20)
}

// ellipse is the closed oval shared by O and 0; it repeats its first vertex.
func ellipse(x, y float64, size, n int) model.Path {
	half := float64(size / 2)
	w := float64(size) * 0.6
	out := make(model.Path, 0, n+1)
	for i := 0; i <= n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		out = append(out, truncPt(x+floorDiv(math.Cos(a)*w, 2), y+math.Sin(a)*half))
	}
	return out
}

func letterE(x, y float64, size int) model.Path {
	half := float64(size / 2)
	hw := floorDiv(float64(size)*0.6, 2)
	tl := pt(x-hw, y-half)
	ml := pt(x-hw, y)
	return model.Path{
		tl,
		pt(x+hw, y-half),
		tl,
		ml,
		pt(x+hw*0.8, y),
		ml,
		pt(x-hw, y+half),
		pt(x+hw, y+half),
	}
}

func letterF(x, y float64, size int) model.Path {
	half := float64(size / 2)
	hw := floorDiv(float64(size)*0.6, 2)
	tl := pt(x-hw, y-half)
	return model.Path{
		pt(x-hw, y+half),
		tl,
		pt(x+hw, y-half),
		tl,
		pt(x-hw, y),
		pt(x+hw*0.8, y),
	}
}

func letterH(x, y float64, size int) model.Path {
	half := float64(size / 2)
	hw := floorDiv(float64(size)*0.6, 2)
	return model.Path{
		pt(x-hw, y-half),
		pt(x-hw, y+half),
		pt(x-hw, y),
		pt(x+hw, y),
		pt(x+hw, y-half),
		pt(x+hw, y+half),
	}
}

func letterI(x, y float64, size int) model.Path {
	half := float64(size / 2)
	w := float64(size) * 0.2
	return model.Path{
		pt(x-w, y-half),
		pt(x+w, y-half),
		pt(x, y-half),
		pt(x, y+half),
		pt(x-w, y+half),
		pt(x+w, y+half),
	}
}

func letterK(x, y float64, size int) model.Path {
	half := float64(size / 2)
	hw := floorDiv(float64(size)*0.6, 2)
	return model.Path{
		pt(x-hw, y-half),
		pt(x-hw, y+half),
		pt(x-hw, y),
		pt(x+hw, y-half),
		pt(x-hw, y),
		pt(x+hw, y+half),
	}
}

func letterL(x, y float64, size int) model.Path {
	half := float64(size / 2)
	hw := floorDiv(float64(size)*0.6, 2)
	return model.Path{
		pt(x-hw, y-half),
		pt(x-hw, y+half),
		pt(x+hw, y+half),
	}
}

func letterM(x, y float64, size int) model.Path {
	half := float64(size / 2)
	hw := floorDiv(float64(size)*0.8, 2)
	return model.Path{
		pt(x-hw, y+half),
		pt(x-hw, y-half),
		pt(x, y),
		pt(x+hw, y-half),
		pt(x+hw, y+half),
	}
}

func letterN(x, y float64, size int) model.Path {
	half := float64(size / 2)
	hw := floorDiv(float64(size)*0.6, 2)
	return model.Path{
		pt(x-hw, y+half),
		pt(x-hw, y-half),
		pt(x+hw, y+half),
		pt(x+hw, y-half),
	}
}

func letterT(x, y float64, size int) model.Path {
	half := float64(size / 2)
	hw := floorDiv(float64(size)*0.8, 2)
	return model.Path{
		pt(x-hw, y-half),
		pt(x+hw, y-half),
		pt(x, y-half),
		pt(x, y+half),
	}
}

func letterV(x, y float64, size int) model.Path {
	half := float64(size / 2)
	hw := floorDiv(float64(size)*0.8, 2)
	return model.Path{
		pt(x-hw, y-half),
		pt(x, y+half),
		pt(x+hw, y-half),
	}
}

func letterW(x, y float64, size int) model.Path {
	half := float64(size / 2)
	w := float64(size) * 0.8
	hw := floorDiv(w, 2)
	qw := floorDiv(w, 4)
	return model.Path{
		pt(x-hw, y-half),
		pt(x-qw, y+half),
		pt(x, y),
		pt(x+qw, y+half),
		pt(x+hw, y-half),
	}
}

func letterX(x, y float64, size int) model.Path {
	half := float64(size / 2)
	hw := floorDiv(float64(size)*0.6, 2)
	return model.Path{
		pt(x-hw, y-half),
		pt(x+hw, y+half),
		pt(x, y),
		pt(x+hw, y-half),
		pt(x-hw, y+half),
	}
}

func letterY(x, y float64, size int) model.Path {
	half := float64(size / 2)
	hw := floorDiv(float64(size)*0.6, 2)
	return model.Path{
		pt(x-hw, y-half),
		pt(x, y),
		pt(x+hw, y-half),
		pt(x, y),
		pt(x, y+half),
	}
}

func letterZ(x, y float64, size int) model.Path {
	half := float64(size / 2)
	hw := floorDiv(float64(size)*0.6, 2)
	return model.Path{
		pt(x-hw, y-half),
		pt(x+hw, y-half),
		pt(x-hw, y+half),
		pt(x+hw, y+half),
	}
}
