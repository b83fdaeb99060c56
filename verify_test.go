package maplabel

import (
	"math"
	"testing"
)

func TestFitsInterior(t *testing.T) {
	_, m := fullMap()
	g := testGenerator(t, m)
	r := m.Regions[0]

	if !g.Fits(r, Pt(300, 300), Sz(100, 40), 0) {
		t.Error("block in the interior does not fit")
	}
}

func TestFitsOverhang(t *testing.T) {
	// Region 1 is the left half of the canvas. A block centered on the
	// border loses its right corners and both edge midpoints.
	_, m := splitMap()
	g := testGenerator(t, m)
	r1, _ := m.RegionByID(1)

	if g.Fits(r1, Pt(100, 100), Sz(30, 10), 0) {
		t.Error("block straddling the border fits")
	}

	// Shifted well into its own region the same block fits.
	if !g.Fits(r1, Pt(50, 100), Sz(30, 10), 0) {
		t.Error("block inside its region does not fit")
	}
}

func TestFitsFivePoints(t *testing.T) {
	// Cut one corner out of an otherwise owned map: five of the six
	// points remain inside, which still counts as fitting.
	grid, m := fullMap()
	g := testGenerator(t, m)
	r := m.Regions[0]

	// The block's top-left corner lands at (200, 260); unclaim its cell.
	grid.Paint(0, 26*60+20)
	if !g.Fits(r, Pt(300, 300), Sz(100, 40), 0) {
		t.Error("block with one corner out does not fit")
	}

	// Cut the opposite corner too: four inside no longer fits.
	grid.Paint(0, 34*60+40)
	if g.Fits(r, Pt(300, 300), Sz(100, 40), 0) {
		t.Error("block with two corners out fits")
	}
}

func TestFitsRotated(t *testing.T) {
	// A 20-row band: a wide flat block fits, the same block turned 90
	// degrees pokes out above and below.
	grid := NewGrid(60, 60, 10)
	grid.PaintRect(1, 0, 20, 59, 39)
	m := &MapContext{
		Oracle: grid,
		Bounds: grid.Bounds(),
		Regions: []Region{
			{ID: 1, Name: "Banda", FullName: "Empire of Banda", Pole: Pt(300, 300), Cells: 1200},
		},
	}
	g := testGenerator(t, m)
	r := m.Regions[0]

	if !g.Fits(r, Pt(300, 300), Sz(250, 60), 0) {
		t.Error("flat block does not fit the band")
	}
	if g.Fits(r, Pt(300, 300), Sz(250, 60), math.Pi/2) {
		t.Error("rotated block fits the band")
	}
}

func TestFitsOutsideCanvas(t *testing.T) {
	_, m := fullMap()
	g := testGenerator(t, m)
	r := m.Regions[0]

	// A block hanging over the canvas edge loses its left points.
	if g.Fits(r, Pt(20, 300), Sz(100, 40), 0) {
		t.Error("block over the canvas edge fits")
	}
}
