package pathgen

import (
	"math"

	"github.com/verte-zerg/tracepad/internal/model"
)

// ShapeKind enumerates the basic shapes.
type ShapeKind int

const (
	Circle ShapeKind = iota
	Square
	Triangle
	Rectangle
	Diamond
	Hexagon
	Star
)

// DefaultCirclePoints is the polygon resolution used for circles.
const DefaultCirclePoints = 64

// starInnerRatio is the inner radius of a star relative to its outer radius.
const starInnerRatio = 0.4

var shapeNames = map[ShapeKind]string{
	Circle:    "circle",
	Square:    "square",
	Triangle:  "triangle",
	Rectangle: "rectangle",
	Diamond:   "diamond",
	Hexagon:   "hexagon",
	Star:      "star",
}

// AllShapes lists every shape in catalog order.
var AllShapes = []ShapeKind{Circle, Square, Triangle, Rectangle, Diamond, Hexagon, Star}

func (k ShapeKind) String() string {
	if name, ok := shapeNames[k]; ok {
		return name
	}
	return "circle"
}

// ParseShape maps a name to a shape. Unknown names map to Circle.
func ParseShape(name string) ShapeKind {
	n := normalizeName(name)
	for k, v := range shapeNames {
		if v == n {
			return k
		}
	}
	return Circle
}

// ShapePath returns the closed outline of a shape centred on c.
func ShapePath(kind ShapeKind, c model.Point, size int) model.Path {
	switch kind {
	case Square:
		return squarePath(c, size)
	case Triangle:
		return trianglePath(c, size)
	case Rectangle:
		return rectanglePath(c, size)
	case Diamond:
		return diamondPath(c, size)
	case Hexagon:
		return hexagonPath(c, size)
	case Star:
		return starPath(c, size)
	default:
		return CircleWithPoints(c, size, DefaultCirclePoints)
	}
}

// CircleWithPoints approximates a circle of radius size with n vertices.
// Coordinates are truncated toward zero.
func CircleWithPoints(c model.Point, size, n int) model.Path {
	if n < 3 {
		n = 3
	}
	r := float64(size)
	out := make(model.Path, n)
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		out[i] = truncPt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
	}
	return out
}

func squarePath(c model.Point, size int) model.Path {
	half := float64(size / 2)
	return model.Path{
		pt(c.X-half, c.Y-half),
		pt(c.X+half, c.Y-half),
		pt(c.X+half, c.Y+half),
		pt(c.X-half, c.Y+half),
	}
}

func trianglePath(c model.Point, size int) model.Path {
	h := int(float64(size) * math.Sqrt(3) / 2)
	half := float64(size / 2)
	return model.Path{
		pt(c.X, c.Y-float64(h*2/3)),
		pt(c.X-half, c.Y+float64(h/3)),
		pt(c.X+half, c.Y+float64(h/3)),
	}
}

func rectanglePath(c model.Point, size int) model.Path {
	w := float64(size)
	h := float64(size / 2)
	return model.Path{
		pt(c.X-w, c.Y-h),
		pt(c.X+w, c.Y-h),
		pt(c.X+w, c.Y+h),
		pt(c.X-w, c.Y+h),
	}
}

func diamondPath(c model.Point, size int) model.Path {
	r := float64(size)
	return model.Path{
		pt(c.X, c.Y-r),
		pt(c.X+r, c.Y),
		pt(c.X, c.Y+r),
		pt(c.X-r, c.Y),
	}
}

func hexagonPath(c model.Point, size int) model.Path {
	return radial(c, 6, func(int) float64 { return float64(size) })
}

func starPath(c model.Point, size int) model.Path {
	return radial(c, 10, func(i int) float64 {
		if i%2 == 1 {
			return float64(size) * starInnerRatio
		}
		return float64(size)
	})
}

// radial places n vertices around c starting at the top, clockwise on screen.
func radial(c model.Point, n int, radius func(i int) float64) model.Path {
	out := make(model.Path, n)
	for i := 0; i < n; i++ {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(n)
		r := radius(i)
		out[i] = truncPt(c.X+r*math.Cos(a), c.Y+r*math.Sin(a))
	}
	return out
}
