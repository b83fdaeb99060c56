// Command maplabel renders a demo map with generated region labels.
//
// It grows random territories on a cell grid, carves a lake into the first
// one, invents region names, runs the label generator and writes the map as
// SVG. Flags override the MAPLABEL_* environment variables, which are also
// loaded from a .env file when one is present. Output is deterministic for
// a fixed seed.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"maplabel"
)

func main() {
	_ = godotenv.Load(".env")

	var (
		out     = flag.String("out", envString("MAPLABEL_OUT", "map.svg"), "output SVG file")
		cols    = flag.Int("cols", envInt("MAPLABEL_COLS", 120), "grid columns")
		rows    = flag.Int("rows", envInt("MAPLABEL_ROWS", 80), "grid rows")
		cell    = flag.Float64("cell", envFloat("MAPLABEL_CELL", 10), "cell side length in canvas units")
		regions = flag.Int("regions", envInt("MAPLABEL_REGIONS", 6), "number of regions to grow")
		seed    = flag.Int64("seed", int64(envInt("MAPLABEL_SEED", 1)), "random seed")
		step    = flag.Float64("step", envFloat("MAPLABEL_STEP", maplabel.DefaultAngleStep), "angular sampling step in degrees")
		mode    = flag.String("mode", envString("MAPLABEL_MODE", "auto"), "label mode: auto, short or full")
		workers = flag.Int("workers", envInt("MAPLABEL_WORKERS", 1), "parallel label workers")
	)
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, nil))

	labelMode, err := maplabel.ParseLabelMode(*mode)
	if err != nil {
		log.Error("bad label mode", "mode", *mode, "err", err)
		os.Exit(1)
	}

	rng := rand.New(rand.NewSource(*seed))
	grid, m := buildMap(rng, *cols, *rows, *cell, *regions)

	measurer, err := maplabel.NewFaceMeasurer(14)
	if err != nil {
		log.Error("loading font", "err", err)
		os.Exit(1)
	}

	gen, err := maplabel.NewGenerator(m, measurer, maplabel.Config{
		AngleStep: *step,
		Mode:      labelMode,
		Workers:   *workers,
	})
	if err != nil {
		log.Error("configuring generator", "err", err)
		os.Exit(1)
	}

	store := maplabel.NewStore()
	res := gen.GenerateAll(store)
	for _, skip := range res.Skipped {
		log.Warn("region skipped", "region", skip.Region, "err", skip.Err)
	}
	log.Info("labels generated", "labeled", len(res.Generated), "skipped", len(res.Skipped))

	f, err := os.Create(*out)
	if err != nil {
		log.Error("creating output file", "err", err)
		os.Exit(1)
	}
	if err := render(f, grid, *cols, *rows, *cell, store); err != nil {
		f.Close()
		log.Error("writing svg", "err", err)
		os.Exit(1)
	}
	if err := f.Close(); err != nil {
		log.Error("closing output file", "err", err)
		os.Exit(1)
	}
	log.Info("map written", "path", *out)
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

// buildMap grows n territories on a fresh grid by randomized frontier
// expansion until every cell is claimed, carves a small lake around the
// first region's centroid, and names the survivors.
func buildMap(rng *rand.Rand, cols, rows int, cell float64, n int) (*maplabel.Grid, *maplabel.MapContext) {
	grid := maplabel.NewGrid(cols, rows, cell)

	type claim struct{ cell, region int }
	frontier := make([]claim, 0, n)
	for id := 1; id <= n; id++ {
		c := rng.Intn(cols * rows)
		for grid.RegionOf(c) != 0 {
			c = rng.Intn(cols * rows)
		}
		grid.Paint(id, c)
		frontier = append(frontier, claim{c, id})
	}
	for len(frontier) > 0 {
		i := rng.Intn(len(frontier))
		cl := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		for _, nb := range gridNeighbors(cl.cell, cols, rows) {
			if grid.RegionOf(nb) != 0 {
				continue
			}
			grid.Paint(cl.region, nb)
			frontier = append(frontier, claim{nb, cl.region})
		}
	}

	if lake := lakeCells(grid, cols, rows, grid.Centroid(1), 2.5*cell); len(lake) > 0 {
		grid.AddLake(lake...)
	}

	regions := make([]maplabel.Region, 0, n)
	for id := 1; id <= n; id++ {
		count := grid.Count(id)
		if count == 0 {
			continue
		}
		name := inventName(rng)
		regions = append(regions, maplabel.Region{
			ID:       id,
			Name:     name,
			FullName: titles[rng.Intn(len(titles))] + " of " + name,
			Pole:     grid.Centroid(id),
			Cells:    count,
		})
	}
	m := &maplabel.MapContext{Oracle: grid, Bounds: grid.Bounds(), Regions: regions}
	return grid, m
}

func gridNeighbors(cell, cols, rows int) []int {
	col := cell % cols
	row := cell / cols
	n := make([]int, 0, 4)
	if col > 0 {
		n = append(n, cell-1)
	}
	if col < cols-1 {
		n = append(n, cell+1)
	}
	if row > 0 {
		n = append(n, cell-cols)
	}
	if row < rows-1 {
		n = append(n, cell+cols)
	}
	return n
}

func lakeCells(grid *maplabel.Grid, cols, rows int, center maplabel.Point, radius float64) []int {
	var cells []int
	for c := range cols * rows {
		if grid.Center(c).Distance(center) <= radius {
			cells = append(cells, c)
		}
	}
	return cells
}

var syllables = []string{
	"al", "be", "cor", "dan", "el", "far", "gor", "hal", "is", "jor",
	"ka", "lum", "mor", "nar", "or", "pel", "qua", "rav", "sol", "tur",
	"ul", "ver", "wy", "xan", "yor", "zel",
}

var titles = []string{"Kingdom", "Empire", "Duchy", "Principality", "Republic", "Despotate"}

func inventName(rng *rand.Rand) string {
	var b strings.Builder
	for range 2 + rng.Intn(2) {
		b.WriteString(syllables[rng.Intn(len(syllables))])
	}
	name := b.String()
	return strings.ToUpper(name[:1]) + name[1:]
}

var palette = []string{
	"#c9b458", "#8fbf88", "#b7835e", "#9a8fc2", "#d98b8b", "#7fb3c8",
	"#c2a878", "#94b4a4",
}

// render writes the cell layer and the label layer.
func render(w io.Writer, grid *maplabel.Grid, cols, rows int, cell float64, store *maplabel.Store) error {
	s := maplabel.NewSVG(w)
	s.Start(grid.Bounds(), `font-family="Georgia, serif"`, `fill="#3a3123"`)
	for c := range cols * rows {
		fill := "#e8e2d0"
		if f := grid.FeatureOf(c); f != nil && f.Kind == maplabel.FeatureLake {
			fill = "#5b7fa6"
		} else if r := grid.RegionOf(c); r != 0 {
			fill = palette[r%len(palette)]
		}
		center := grid.Center(c)
		origin := maplabel.Pt(center.X-cell/2, center.Y-cell/2)
		s.Rect(maplabel.NewRectFromOrigin(origin, maplabel.Sz(cell, cell)),
			fmt.Sprintf("fill=%q", fill))
	}
	maplabel.RenderLabels(s, store.All())
	s.End()
	return s.Err()
}
