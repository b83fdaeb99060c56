package maplabel

// Line represents a line segment.
type Line struct {
	P0 Point
	P1 Point
}

var _ Curve = Line{}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

// Arclen returns the length of the line. The accuracy argument is ignored,
// the result is exact.
func (l Line) Arclen(accuracy float64) float64 {
	return l.Length()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

func (l Line) Midpoint() Point {
	return l.P0.Midpoint(l.P1)
}

func (l Line) Start() Point { return l.P0 }
func (l Line) End() Point   { return l.P1 }
