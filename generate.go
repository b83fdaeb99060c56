package maplabel

import (
	"errors"
	"fmt"
	"sync"
	"unicode/utf8"
)

// Default pipeline tuning, used for zero fields in [Config].
const (
	DefaultAngleStep = 9
	DefaultRayStart  = 5
	DefaultRayStep   = 5
	DefaultRayMax    = 300
)

// ErrDegenerateRegion flags a region that cannot carry a label: fewer than
// two rays reached positive length, which happens when the pole sits on or
// right next to the boundary, or the region has no name forms to render.
var ErrDegenerateRegion = errors.New("maplabel: region too degenerate to label")

// ErrMeasurement flags a failed text measurement. Generation for the region
// can be retried once the measurer works again.
var ErrMeasurement = errors.New("maplabel: text measurement unavailable")

// Config tunes a [Generator]. The zero value uses the defaults: 9 degree
// angular steps, ray lengths 5 through 300 in steps of 5, automatic mode,
// sequential processing.
type Config struct {
	// AngleStep is the angular sampling step in degrees.
	AngleStep float64
	// RayStart, RayStep and RayMax control the lengths the caster probes.
	RayStart float64
	RayStep  float64
	RayMax   float64
	// Mode selects the fitted name form.
	Mode LabelMode
	// Workers caps how many regions generate in parallel. Values below 2
	// keep generation sequential.
	Workers int
}

func (cfg Config) withDefaults() Config {
	if cfg.AngleStep == 0 {
		cfg.AngleStep = DefaultAngleStep
	}
	if cfg.RayStart == 0 {
		cfg.RayStart = DefaultRayStart
	}
	if cfg.RayStep == 0 {
		cfg.RayStep = DefaultRayStep
	}
	if cfg.RayMax == 0 {
		cfg.RayMax = DefaultRayMax
	}
	if cfg.Mode == 0 {
		cfg.Mode = ModeAuto
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.AngleStep <= 0 {
		return fmt.Errorf("maplabel: angular step must be positive, got %g", cfg.AngleStep)
	}
	if cfg.AngleStep > 180 {
		// Fewer than two directions cannot form a pair.
		return fmt.Errorf("maplabel: angular step %g leaves fewer than two directions", cfg.AngleStep)
	}
	if cfg.RayStep <= 0 {
		return fmt.Errorf("maplabel: ray step must be positive, got %g", cfg.RayStep)
	}
	if cfg.RayStart <= 0 || cfg.RayMax < cfg.RayStart {
		return fmt.Errorf("maplabel: ray lengths %g through %g are not a valid range", cfg.RayStart, cfg.RayMax)
	}
	switch cfg.Mode {
	case ModeAuto, ModeShort, ModeFull:
	default:
		return fmt.Errorf("maplabel: invalid label mode %d", cfg.Mode)
	}
	return nil
}

// Generator runs the label placement pipeline against one map.
type Generator struct {
	m        *MapContext
	measurer TextMeasurer
	cfg      Config
	dirs     []Direction
}

// NewGenerator validates the configuration and readies a generator for the
// map. Configuration problems are reported here, before any region is
// processed.
func NewGenerator(m *MapContext, measurer TextMeasurer, cfg Config) (*Generator, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Generator{
		m:        m,
		measurer: measurer,
		cfg:      cfg,
		dirs:     Directions(cfg.AngleStep),
	}, nil
}

// Generate runs the pipeline for one region and returns its label: cast one
// ray per direction, select the best pair, build the path through the pole,
// fit the name to the normalized path length, stretch the path if the text
// overruns it, and for two-line layouts verify the text block stays inside
// the region, dropping to a single line when it does not.
//
// Errors wrap [ErrDegenerateRegion] or [ErrMeasurement].
func (g *Generator) Generate(r Region) (Label, error) {
	if r.Name == "" || r.FullName == "" {
		return Label{}, fmt.Errorf("region %d has no name: %w", r.ID, ErrDegenerateRegion)
	}
	rays := g.Rays(r)
	usable := 0
	for _, ray := range rays {
		if ray.Length > 0 {
			usable++
		}
	}
	if usable < 2 {
		return Label{}, fmt.Errorf("region %d: %d usable rays: %w", r.ID, usable, ErrDegenerateRegion)
	}
	a, b, err := SelectBestPair(rays)
	if err != nil {
		return Label{}, fmt.Errorf("region %d: %w", r.ID, err)
	}
	path := NewLabelPath(a, b, r.Pole)

	nameWidth, err := g.measurer.LineLength(r.FullName)
	if err != nil {
		return Label{}, fmt.Errorf("region %d: %w: %v", r.ID, ErrMeasurement, err)
	}
	glyph := nameWidth / float64(utf8.RuneCountInString(r.FullName))
	if glyph <= 0 {
		return Label{}, fmt.Errorf("region %d: measured glyph width %g: %w", r.ID, glyph, ErrMeasurement)
	}
	// The path length the fitter sees is in characters, not canvas units.
	// Fallback decisions below reuse the pre-stretch value.
	pathLength := path.Length() / glyph

	text := FitText(g.cfg.Mode, r.Name, r.FullName, pathLength)
	if longest := float64(text.LongestLine()); longest > pathLength {
		path = path.Stretch(longest / pathLength)
	}

	if len(text.Lines) == 2 && g.cfg.Mode != ModeFull {
		bounds, err := g.measurer.BlockBounds(text.Lines, text.Ratio)
		if err != nil {
			return Label{}, fmt.Errorf("region %d: %w: %v", r.ID, ErrMeasurement, err)
		}
		half := Sz(bounds.Width/2, bounds.Height/2)
		if !g.Fits(r, path.Center(), half, path.Orientation()) {
			text = fallbackText(r, pathLength)
		}
	}

	return Label{
		ID:          r.ID,
		Kind:        KindState,
		Region:      r.ID,
		Path:        path,
		Lines:       text.Lines,
		Ratio:       text.Ratio,
		StartOffset: 50,
		Transform:   Identity,
	}, nil
}

// fallbackText relays a two-line layout that escaped its region onto a
// single line: the full name when the path is long enough for it, the short
// name otherwise, with the matching one-line ratio.
func fallbackText(r Region, pathLength float64) LabelText {
	full := utf8.RuneCountInString(r.FullName)
	if pathLength > 1.8*float64(full) {
		return LabelText{
			Lines: []string{r.FullName},
			Ratio: ratio(70, pathLength, full, 70, 170),
		}
	}
	return LabelText{
		Lines: []string{r.Name},
		Ratio: ratio(60, pathLength, utf8.RuneCountInString(r.Name), 50, 150),
	}
}

// Skip records a region a pass could not label, and why.
type Skip struct {
	Region int
	Err    error
}

// Result summarizes a generation pass.
type Result struct {
	// Generated lists the region ids that received a label, in processing
	// order.
	Generated []int
	// Skipped lists regions that yielded no label. Skips wrapping
	// [ErrMeasurement] are worth retrying once measurement works; the rest
	// are degenerate regions.
	Skipped []Skip
}

// GenerateAll regenerates the state labels of every region in the map
// context. Existing state labels of those regions are replaced in one
// atomic batch; burg and custom labels are untouched.
func (g *Generator) GenerateAll(store *Store) Result {
	return g.generate(store, g.m.Regions)
}

// GenerateRegions regenerates state labels for the given region ids only.
// Labels of all other regions come through unchanged, and stale labels of
// the targeted regions are removed even when their region yields no new
// label. Ids missing from the map context are reported as skips.
func (g *Generator) GenerateRegions(store *Store, ids ...int) Result {
	regions := make([]Region, 0, len(ids))
	var unknown []Skip
	for _, id := range ids {
		r, ok := g.m.RegionByID(id)
		if !ok {
			unknown = append(unknown, Skip{Region: id, Err: fmt.Errorf("region %d not in map context", id)})
			continue
		}
		regions = append(regions, r)
	}
	res := g.generate(store, regions)
	res.Skipped = append(unknown, res.Skipped...)
	return res
}

func (g *Generator) generate(store *Store, regions []Region) Result {
	labels, result := g.run(regions)
	targets := make(map[int]bool, len(regions))
	for _, r := range regions {
		targets[r.ID] = true
	}
	store.Replace(func(l Label) bool {
		return l.Kind == KindState && targets[l.Region]
	}, labels)
	return result
}

// run produces labels for the regions, sequentially or fanned out over a
// bounded number of workers. Results are collected per index, so the output
// order matches the input region order regardless of worker count.
func (g *Generator) run(regions []Region) ([]Label, Result) {
	type slot struct {
		label Label
		err   error
	}
	slots := make([]slot, len(regions))
	if g.cfg.Workers > 1 {
		var wg sync.WaitGroup
		sem := make(chan struct{}, g.cfg.Workers)
		for i, r := range regions {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()
				slots[i].label, slots[i].err = g.Generate(r)
			}()
		}
		wg.Wait()
	} else {
		for i, r := range regions {
			slots[i].label, slots[i].err = g.Generate(r)
		}
	}
	labels := make([]Label, 0, len(regions))
	var result Result
	for i, s := range slots {
		if s.err != nil {
			result.Skipped = append(result.Skipped, Skip{Region: regions[i].ID, Err: s.err})
			continue
		}
		labels = append(labels, s.label)
		result.Generated = append(result.Generated, regions[i].ID)
	}
	return labels, result
}
