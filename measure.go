package maplabel

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// TextMeasurer supplies the rendered text metrics the fitter and the
// containment verifier need. Measurements are pure functions of the text and
// the measurer's font configuration. Implementations must be safe for
// concurrent use; parallel generation measures from multiple goroutines.
type TextMeasurer interface {
	// LineLength returns the advance width of one line of text at the base
	// font size, in canvas units.
	LineLength(text string) (float64, error)
	// BlockBounds returns the extents of a block of lines rendered at ratio
	// percent of the base font size.
	BlockBounds(lines []string, ratio int) (Size, error)
}

// FixedMeasurer measures with a fixed per-glyph advance and line height. It
// is fully deterministic and needs no font data, which makes it the measurer
// of choice for tests and headless runs.
type FixedMeasurer struct {
	Advance    float64
	LineHeight float64
}

var _ TextMeasurer = FixedMeasurer{}

func (f FixedMeasurer) LineLength(text string) (float64, error) {
	return float64(utf8.RuneCountInString(text)) * f.Advance, nil
}

func (f FixedMeasurer) BlockBounds(lines []string, ratio int) (Size, error) {
	var widest float64
	for _, line := range lines {
		w, _ := f.LineLength(line)
		widest = max(widest, w)
	}
	scale := float64(ratio) / 100
	return Sz(widest*scale, f.LineHeight*float64(len(lines))*scale), nil
}

var parseRegular = sync.OnceValues(func() (*sfnt.Font, error) {
	return opentype.Parse(goregular.TTF)
})

// FaceMeasurer measures text against a real font face, so normalized path
// lengths and block bounds match what a renderer using the same face will
// produce. The zero value measures with a fixed 7x13 fallback face.
type FaceMeasurer struct {
	mu   sync.Mutex
	face font.Face
}

var _ TextMeasurer = (*FaceMeasurer)(nil)

// NewFaceMeasurer returns a measurer backed by the bundled Go Regular font
// at the given point size, the base size labels are measured at.
func NewFaceMeasurer(size float64) (*FaceMeasurer, error) {
	fnt, err := parseRegular()
	if err != nil {
		return nil, fmt.Errorf("maplabel: parsing bundled font: %w", err)
	}
	face, err := opentype.NewFace(fnt, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("maplabel: building %gpt face: %w", size, err)
	}
	return &FaceMeasurer{face: face}, nil
}

func (f *FaceMeasurer) measuringFace() font.Face {
	if f.face == nil {
		return basicfont.Face7x13
	}
	return f.face
}

func (f *FaceMeasurer) LineLength(text string) (float64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	adv := font.MeasureString(f.measuringFace(), text)
	return fromFixed(adv), nil
}

func (f *FaceMeasurer) BlockBounds(lines []string, ratio int) (Size, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	face := f.measuringFace()
	var widest fixed.Int26_6
	for _, line := range lines {
		widest = max(widest, font.MeasureString(face, line))
	}
	height := face.Metrics().Height
	scale := float64(ratio) / 100
	return Sz(
		fromFixed(widest)*scale,
		fromFixed(height)*float64(len(lines))*scale,
	), nil
}

// fromFixed converts a 26.6 fixed-point length to a float.
func fromFixed(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
