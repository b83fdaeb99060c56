package maplabel

// Region is a connected set of cells sharing a region id, typically a
// political state. The pole is the region's visual anchor, the interior
// point maximizing distance from the boundary; it is computed by the
// surrounding generator and supplied here.
type Region struct {
	ID int
	// Name is the short name form, FullName the long form, e.g. "Keria" and
	// "Kingdom of Keria".
	Name     string
	FullName string
	Pole     Point
	// Cells is the number of cells the region spans.
	Cells int
}

// MaxLakeSize returns the largest lake, in cells, that still counts as part
// of the region for containment purposes regardless of enclosure.
func (r Region) MaxLakeSize() float64 {
	return float64(r.Cells) / 20
}

// probeOffset is the perpendicular displacement of the ray caster's side
// probes. Small regions probe with no offset so that thin peninsulas are not
// falsely rejected.
func (r Region) probeOffset() float64 {
	switch {
	case r.Cells < 40:
		return 0
	case r.Cells < 200:
		return 5
	default:
		return 10
	}
}

// MapContext bundles the read-only map state a generation pass works
// against: the spatial oracle, the canvas bounds, and the regions to label.
// It replaces any notion of ambient map globals; every pipeline stage
// receives it explicitly.
type MapContext struct {
	Oracle  Oracle
	Bounds  Size
	Regions []Region
}

// RegionByID returns the region with the given id.
func (m *MapContext) RegionByID(id int) (Region, bool) {
	for _, r := range m.Regions {
		if r.ID == id {
			return r, true
		}
	}
	return Region{}, false
}

// Inside reports whether the point counts as inside the region. Points
// outside the canvas are outside any region. Points on a lake count as
// inside when the lake is fully enclosed by the region's cells or small
// relative to the region (at most [Region.MaxLakeSize] cells); any other
// point is inside exactly when its cell is owned by the region.
//
// Both the ray caster and the containment verifier use this predicate.
func (m *MapContext) Inside(r Region, pt Point) bool {
	canvas := NewRectFromOrigin(Pt(0, 0), m.Bounds)
	if !canvas.Contains(pt) {
		return false
	}
	cell := m.Oracle.CellAt(pt)
	if f := m.Oracle.FeatureOf(cell); f != nil && f.Kind == FeatureLake {
		if float64(f.Cells) <= r.MaxLakeSize() {
			return true
		}
		for _, shore := range f.Shoreline {
			if m.Oracle.RegionOf(shore) != r.ID {
				return false
			}
		}
		return true
	}
	return m.Oracle.RegionOf(cell) == r.ID
}
