package maplabel

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func testGenerator(t *testing.T, m *MapContext) *Generator {
	t.Helper()
	g, err := NewGenerator(m, FixedMeasurer{Advance: 8, LineHeight: 12}, Config{
		AngleStep: 90,
		RayStart:  5,
		RayStep:   5,
		RayMax:    300,
	})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// fullMap paints a 60x60 grid of 10-unit cells entirely as region 1.
func fullMap() (*Grid, *MapContext) {
	grid := NewGrid(60, 60, 10)
	grid.PaintRect(1, 0, 0, 59, 59)
	m := &MapContext{
		Oracle: grid,
		Bounds: grid.Bounds(),
		Regions: []Region{
			{ID: 1, Name: "Keria", FullName: "Kingdom of Keria", Pole: Pt(300, 300), Cells: 3600},
		},
	}
	return grid, m
}

func TestCastRayCanvasEdge(t *testing.T) {
	_, m := fullMap()
	g := testGenerator(t, m)
	r := m.Regions[0]

	// Rightward the canvas is half-open: x = 600 is already outside, so
	// the scan stops one step short of the cap.
	ray := g.CastRay(r, Direction{Angle: 0, Unit: Vec(1, 0)})
	if ray.Length != 295 {
		t.Errorf("rightward length = %g, want 295", ray.Length)
	}
	diff(t, Pt(595, 300), ray.End, cmpopts.EquateApprox(0, 1e-9))

	// Leftward x = 0 is still inside, so the cap itself is reached.
	ray = g.CastRay(r, Direction{Angle: 180, Unit: Vec(-1, 0)})
	if ray.Length != 300 {
		t.Errorf("leftward length = %g, want 300", ray.Length)
	}
	diff(t, Pt(0, 300), ray.End, cmpopts.EquateApprox(0, 1e-9))
}

func TestCastRayZero(t *testing.T) {
	grid := NewGrid(60, 60, 10)
	grid.PaintRect(1, 0, 0, 2, 2)
	m := &MapContext{
		Oracle: grid,
		Bounds: grid.Bounds(),
		Regions: []Region{
			{ID: 1, Name: "Stub", FullName: "Duchy of Stub", Pole: Pt(25, 5), Cells: 9},
		},
	}
	g := testGenerator(t, m)
	r := m.Regions[0]

	// The first candidate length already leaves the region.
	ray := g.CastRay(r, Direction{Angle: 0, Unit: Vec(1, 0)})
	if ray.Length != 0 {
		t.Errorf("length = %g, want 0", ray.Length)
	}
	diff(t, r.Pole, ray.End)
}

func TestCastRaySmallRegionSkipsSideProbes(t *testing.T) {
	// A strip one cell tall: side probes at offset 5 would leave it
	// immediately, but regions under 40 cells probe with no offset.
	grid := NewGrid(60, 60, 10)
	grid.PaintRect(1, 0, 0, 29, 0)
	m := &MapContext{
		Oracle: grid,
		Bounds: grid.Bounds(),
		Regions: []Region{
			{ID: 1, Name: "Reach", FullName: "Reach of the Coast", Pole: Pt(5, 5), Cells: 30},
		},
	}
	g := testGenerator(t, m)

	ray := g.CastRay(m.Regions[0], Direction{Angle: 0, Unit: Vec(1, 0)})
	if ray.Length != 290 {
		t.Errorf("length = %g, want 290", ray.Length)
	}
}

func TestCastRaySideProbes(t *testing.T) {
	// A 20-row band. From a pole 5 units under the band's top edge the
	// upper side probe (offset 10) leaves the region at the first length.
	grid := NewGrid(60, 60, 10)
	grid.PaintRect(1, 0, 20, 59, 39)
	m := &MapContext{
		Oracle: grid,
		Bounds: grid.Bounds(),
		Regions: []Region{
			{ID: 1, Name: "Banda", FullName: "Empire of Banda", Pole: Pt(300, 205), Cells: 1200},
		},
	}
	g := testGenerator(t, m)
	r := m.Regions[0]

	ray := g.CastRay(r, Direction{Angle: 0, Unit: Vec(1, 0)})
	if ray.Length != 0 {
		t.Errorf("length near the edge = %g, want 0", ray.Length)
	}

	// From the band's middle both side probes stay inside.
	r.Pole = Pt(300, 300)
	ray = g.CastRay(r, Direction{Angle: 0, Unit: Vec(1, 0)})
	if ray.Length != 295 {
		t.Errorf("length from the middle = %g, want 295", ray.Length)
	}
}

func TestCastRayObstacles(t *testing.T) {
	grid, m := fullMap()
	g := testGenerator(t, m)
	r := m.Regions[0]

	// A small lake in the ray's way does not stop it.
	var lake []int
	for row := 29; row <= 31; row++ {
		lake = append(lake, row*60+32, row*60+33, row*60+34)
	}
	grid.AddLake(lake...)

	// A foreign column does.
	grid.PaintRect(2, 35, 0, 35, 59)

	ray := g.CastRay(r, Direction{Angle: 0, Unit: Vec(1, 0)})
	if ray.Length != 45 {
		t.Errorf("length = %g, want 45", ray.Length)
	}
}

func TestRaysOrder(t *testing.T) {
	_, m := fullMap()
	g := testGenerator(t, m)

	rays := g.Rays(m.Regions[0])
	if len(rays) != 4 {
		t.Fatalf("got %d rays, want 4", len(rays))
	}
	wantAngles := []float64{0, 90, 180, 270}
	wantLengths := []float64{295, 295, 300, 300}
	for i, ray := range rays {
		if ray.Angle != wantAngles[i] {
			t.Errorf("#%d: angle = %g, want %g", i, ray.Angle, wantAngles[i])
		}
		if ray.Length != wantLengths[i] {
			t.Errorf("#%d: length = %g, want %g", i, ray.Length, wantLengths[i])
		}
	}
}

func TestCastRayDisc(t *testing.T) {
	// A large disc on a fine grid. Along every direction the scan stops
	// within one step of the boundary: the accepted length can trail the
	// 150-unit radius by the 5-unit step plus the cell rasterization and
	// overshoot it by the rasterization alone.
	grid := NewGrid(300, 300, 2)
	grid.PaintDisc(1, Pt(300, 300), 150)
	m := &MapContext{
		Oracle: grid,
		Bounds: grid.Bounds(),
		Regions: []Region{
			{ID: 1, Name: "Ronda", FullName: "Empire of Ronda", Pole: Pt(300, 300), Cells: grid.Count(1)},
		},
	}
	g := newTestGenerator(t, m, FixedMeasurer{Advance: 8, LineHeight: 12}, Config{})

	rays := g.Rays(m.Regions[0])
	if len(rays) != 40 {
		t.Fatalf("got %d rays, want 40", len(rays))
	}
	for _, ray := range rays {
		if ray.Length < 142 || ray.Length > 153 {
			t.Errorf("angle %g: length = %g, want within one step of 150", ray.Angle, ray.Length)
		}
	}
}

func TestCastRayCap(t *testing.T) {
	// A disc reaching well past the longest candidate length: every
	// direction runs to the cap exactly.
	grid := NewGrid(80, 80, 10)
	grid.PaintDisc(1, Pt(400, 400), 380)
	m := &MapContext{
		Oracle: grid,
		Bounds: grid.Bounds(),
		Regions: []Region{
			{ID: 1, Name: "Vasta", FullName: "Empire of Vasta", Pole: Pt(400, 400), Cells: grid.Count(1)},
		},
	}
	g := newTestGenerator(t, m, FixedMeasurer{Advance: 8, LineHeight: 12}, Config{})

	for _, ray := range g.Rays(m.Regions[0]) {
		if ray.Length != 300 {
			t.Errorf("angle %g: length = %g, want 300", ray.Angle, ray.Length)
		}
	}
}
