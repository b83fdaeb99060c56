package maplabel

import "fmt"

// LabelKind tags what a label annotates. Rendering dispatches exhaustively
// on the kind.
type LabelKind int

const (
	// KindState is a region label generated by the placement pipeline.
	KindState LabelKind = iota + 1
	// KindBurg is a settlement label anchored at a single point.
	KindBurg
	// KindCustom is a caller-managed label with a free-form path.
	KindCustom
)

func (k LabelKind) String() string {
	switch k {
	case KindState:
		return "state"
	case KindBurg:
		return "burg"
	case KindCustom:
		return "custom"
	default:
		return fmt.Sprintf("LabelKind(%d)", int(k))
	}
}

// Label is a persisted map annotation. State labels are created by the
// generator, replaced as a batch on regeneration, and removed when their
// region goes away; burg and custom labels are inserted and removed by the
// caller and never touched by regeneration.
type Label struct {
	// ID is stable across regenerations. State labels use their region id.
	ID   int
	Kind LabelKind
	// Region is the owning region's id, or 0 for labels not tied to one.
	Region int
	Path   LabelPath
	Lines  []string
	// Ratio is the font size in percent of the base size.
	Ratio int
	// LetterSpacing is extra per-glyph spacing in canvas units.
	LetterSpacing float64
	// StartOffset is where along the path the text anchors, in percent of
	// the path length. Generated labels center at 50.
	StartOffset float64
	Transform   Affine
}
