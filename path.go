package maplabel

import "slices"

// defaultAccuracy is the arclength accuracy used for label path lengths.
const defaultAccuracy = 1e-6

// Curve is a parametric curve segment a label path renders as.
type Curve interface {
	// Eval evaluates the curve at parameter t in [0, 1].
	Eval(t float64) Point
	// Arclen returns the curve's arclength, computed to the given accuracy.
	Arclen(accuracy float64) float64
}

// LabelPath is the curve the label text runs along: two or three points,
// ordered so the first point has the smaller x coordinate. Two points render
// as a straight line, three as the quadratic through the middle point.
//
// Build paths with [NewLabelPath]; Points has at least two entries and its
// x-ordering is canonical.
type LabelPath struct {
	Points []Point
}

// NewLabelPath builds the label path for a selected ray pair: the two ray
// endpoints with the region's pole between them, oriented to start at the
// smaller x coordinate. A pole coinciding with either endpoint is dropped,
// which happens when a zero-length ray is part of the pair.
func NewLabelPath(a, b Ray, pole Point) LabelPath {
	first, last := a.End, b.End
	if last.X < first.X {
		first, last = last, first
	}
	if pole == first || pole == last {
		return LabelPath{Points: []Point{first, last}}
	}
	return LabelPath{Points: []Point{first, pole, last}}
}

func (p LabelPath) Start() Point { return p.Points[0] }
func (p LabelPath) End() Point   { return p.Points[len(p.Points)-1] }

// Orientation returns the angle of the chord from start to end, in radians.
func (p LabelPath) Orientation() float64 {
	return p.End().Sub(p.Start()).Angle()
}

// Curve returns the segment the path renders as.
func (p LabelPath) Curve() Curve {
	if len(p.Points) == 2 {
		return Line{p.Points[0], p.Points[1]}
	}
	return QuadThrough(p.Points[0], p.Points[1], p.Points[2])
}

// Length returns the geometric length of the rendered path.
func (p LabelPath) Length() float64 {
	return p.Curve().Arclen(defaultAccuracy)
}

// Center returns the point halfway along the rendered path, which is where
// centered text comes to rest. For a three-point path this is the pole.
func (p LabelPath) Center() Point {
	return p.Curve().Eval(0.5)
}

// Stretch moves both endpoints outward along the chord so that the chord
// length scales by factor; interior points are unchanged. This is the
// corrective lengthening applied when fitted text turns out longer than the
// path, not a re-cast of rays.
func (p LabelPath) Stretch(factor float64) LabelPath {
	ext := p.End().Sub(p.Start()).Mul((factor - 1) / 2)
	pts := slices.Clone(p.Points)
	pts[0] = pts[0].Translate(ext.Negate())
	pts[len(pts)-1] = pts[len(pts)-1].Translate(ext)
	return LabelPath{Points: pts}
}
