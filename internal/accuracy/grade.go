package accuracy

import "image/color"

// Grade maps a percentage to a letter grade.
func Grade(pct float64) string {
	switch {
	case pct >= 95:
		return "A+"
	case pct >= 90:
		return "A"
	case pct >= 85:
		return "B+"
	case pct >= 80:
		return "B"
	case pct >= 75:
		return "C+"
	case pct >= 70:
		return "C"
	case pct >= 60:
		return "D"
	default:
		return "F"
	}
}

// Feedback returns an encouragement line for a percentage.
func Feedback(pct float64, attempts int) string {
	switch {
	case pct >= 90:
		return "Excellent tracing!"
	case pct >= 80:
		return "Great job!"
	case pct >= 70:
		return "Good tracing, keep practicing!"
	case pct >= 60:
		return "Not bad, try to stay on the lines."
	case pct >= 50:
		return "Try to follow the shape more closely."
	case attempts <= 2:
		return "Take your time and trace carefully."
	default:
		return "Keep practicing, you'll get better!"
	}
}

// GradeClass is the colour class of a grade.
type GradeClass int

const (
	ClassA GradeClass = iota
	ClassB
	ClassC
	ClassD
	ClassF
)

// ClassOf returns the colour class for a grade string.
func ClassOf(grade string) GradeClass {
	if grade == "" {
		return ClassF
	}
	switch grade[0] {
	case 'A':
		return ClassA
	case 'B':
		return ClassB
	case 'C':
		return ClassC
	case 'D':
		return ClassD
	default:
		return ClassF
	}
}

var classColors = [...]color.RGBA{
	ClassA: {R: 0, G: 128, B: 0, A: 255},
	ClassB: {R: 0, G: 100, B: 200, A: 255},
	ClassC: {R: 255, G: 165, B: 0, A: 255},
	ClassD: {R: 200, G: 100, B: 50, A: 255},
	ClassF: {R: 200, G: 0, B: 0, A: 255},
}

// Color returns the display colour of the class.
func (c GradeClass) Color() color.RGBA {
	if c < 0 || int(c) >= len(classColors) {
		return classColors[ClassF]
	}
	return classColors[c]
}
