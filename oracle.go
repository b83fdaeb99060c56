package maplabel

import "fmt"

type FeatureKind int

const (
	// Open water surrounding land masses.
	FeatureOcean FeatureKind = iota + 1
	// A connected land mass.
	FeatureIsland
	// An inland water body. Lakes are the only feature kind that affects
	// region containment.
	FeatureLake
)

func (k FeatureKind) String() string {
	switch k {
	case FeatureOcean:
		return "ocean"
	case FeatureIsland:
		return "island"
	case FeatureLake:
		return "lake"
	default:
		return fmt.Sprintf("FeatureKind(%d)", int(k))
	}
}

// Feature is a classified sub-area of the map, such as a lake.
type Feature struct {
	Kind FeatureKind
	// Shoreline lists the land cells adjacent to a water feature.
	Shoreline []int
	// Cells is the number of cells the feature spans.
	Cells int
}

// Oracle answers spatial queries about the map's cell structure. It is
// treated as a black box and is read-only for the duration of a generation
// pass. Implementations must be safe for concurrent readers.
//
// [Grid] is a ready-made implementation.
type Oracle interface {
	// CellAt returns the id of the cell containing the point. It is only
	// called with points inside the canvas bounds; behavior outside them is
	// implementation-defined.
	CellAt(pt Point) int
	// RegionOf returns the id of the region owning the cell, or 0 if the
	// cell is unclaimed.
	RegionOf(cell int) int
	// FeatureOf returns the feature the cell belongs to, or nil if the cell
	// is unclassified.
	FeatureOf(cell int) *Feature
}
