package maplabel

import (
	"fmt"
	"maps"
	"slices"
)

// Grid is a uniform square-cell [Oracle] backed by dense per-cell slices.
// It is the reference oracle used by the tests and the demo; real maps
// plug in their own cell geometry.
//
// Cells are indexed row-major: cell id = row*cols + col.
type Grid struct {
	cols, rows int
	size       float64
	region     []int
	feature    []*Feature
}

var _ Oracle = (*Grid)(nil)

// NewGrid returns a grid of cols by rows square cells of the given side
// length, all cells unclaimed and unclassified. It panics if any dimension
// is not positive.
func NewGrid(cols, rows int, cellSize float64) *Grid {
	if cols <= 0 || rows <= 0 || cellSize <= 0 {
		panic(fmt.Sprintf("maplabel: invalid grid %dx%d with cell size %g", cols, rows, cellSize))
	}
	return &Grid{
		cols:    cols,
		rows:    rows,
		size:    cellSize,
		region:  make([]int, cols*rows),
		feature: make([]*Feature, cols*rows),
	}
}

// Bounds returns the canvas size covered by the grid.
func (g *Grid) Bounds() Size {
	return Sz(float64(g.cols)*g.size, float64(g.rows)*g.size)
}

// CellAt returns the id of the cell containing pt. Points on the far edges
// of the canvas clamp to the last cell.
func (g *Grid) CellAt(pt Point) int {
	col := min(max(int(pt.X/g.size), 0), g.cols-1)
	row := min(max(int(pt.Y/g.size), 0), g.rows-1)
	return row*g.cols + col
}

// RegionOf returns the region id owning the cell, 0 for unclaimed cells and
// ids outside the grid.
func (g *Grid) RegionOf(cell int) int {
	if cell < 0 || cell >= len(g.region) {
		return 0
	}
	return g.region[cell]
}

// FeatureOf returns the feature the cell belongs to, nil for unclassified
// cells and ids outside the grid.
func (g *Grid) FeatureOf(cell int) *Feature {
	if cell < 0 || cell >= len(g.feature) {
		return nil
	}
	return g.feature[cell]
}

// Center returns the center point of the cell.
func (g *Grid) Center(cell int) Point {
	col := cell % g.cols
	row := cell / g.cols
	return Pt((float64(col)+0.5)*g.size, (float64(row)+0.5)*g.size)
}

// Paint assigns the cells to the region. Ids outside the grid are ignored.
func (g *Grid) Paint(region int, cells ...int) {
	for _, c := range cells {
		if c < 0 || c >= len(g.region) {
			continue
		}
		g.region[c] = region
	}
}

// PaintRect assigns the inclusive cell rectangle (c0,r0)-(c1,r1) to the
// region, clipped to the grid.
func (g *Grid) PaintRect(region, c0, r0, c1, r1 int) {
	if c1 < c0 {
		c0, c1 = c1, c0
	}
	if r1 < r0 {
		r0, r1 = r1, r0
	}
	c0, c1 = max(c0, 0), min(c1, g.cols-1)
	r0, r1 = max(r0, 0), min(r1, g.rows-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			g.region[row*g.cols+col] = region
		}
	}
}

// PaintDisc assigns every cell whose center lies within radius of center to
// the region.
func (g *Grid) PaintDisc(region int, center Point, radius float64) {
	c0 := max(int((center.X-radius)/g.size), 0)
	c1 := min(int((center.X+radius)/g.size), g.cols-1)
	r0 := max(int((center.Y-radius)/g.size), 0)
	r1 := min(int((center.Y+radius)/g.size), g.rows-1)
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			cell := row*g.cols + col
			if g.Center(cell).Distance(center) <= radius {
				g.region[cell] = region
			}
		}
	}
}

// AddLake turns the cells into one lake feature: they become unclaimed
// water, and the shoreline is derived as the set of 4-neighbor cells
// outside the lake. The registered feature is returned for inspection.
func (g *Grid) AddLake(cells ...int) *Feature {
	lake := make(map[int]bool, len(cells))
	for _, c := range cells {
		if c < 0 || c >= len(g.region) {
			continue
		}
		lake[c] = true
	}
	f := &Feature{Kind: FeatureLake, Cells: len(lake)}
	shore := make(map[int]bool)
	for c := range lake {
		g.region[c] = 0
		g.feature[c] = f
		for _, n := range g.neighbors(c) {
			if !lake[n] {
				shore[n] = true
			}
		}
	}
	f.Shoreline = slices.Sorted(maps.Keys(shore))
	return f
}

// neighbors returns the 4-connected neighbor cell ids inside the grid.
func (g *Grid) neighbors(cell int) []int {
	col := cell % g.cols
	row := cell / g.cols
	n := make([]int, 0, 4)
	if col > 0 {
		n = append(n, cell-1)
	}
	if col < g.cols-1 {
		n = append(n, cell+1)
	}
	if row > 0 {
		n = append(n, cell-g.cols)
	}
	if row < g.rows-1 {
		n = append(n, cell+g.cols)
	}
	return n
}

// Count returns how many cells the region owns.
func (g *Grid) Count(region int) int {
	n := 0
	for _, r := range g.region {
		if r == region {
			n++
		}
	}
	return n
}

// Centroid returns the mean center of the region's cells, the zero Point if
// the region owns none. It is a usable pole for compact regions.
func (g *Grid) Centroid(region int) Point {
	var sum Vec2
	n := 0
	for c, r := range g.region {
		if r != region {
			continue
		}
		sum = sum.Add(Vec2(g.Center(c)))
		n++
	}
	if n == 0 {
		return Point{}
	}
	return Point(sum.Mul(1 / float64(n)))
}
