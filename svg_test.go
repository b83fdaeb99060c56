package maplabel

import (
	"errors"
	"slices"
	"strings"
	"testing"
)

func TestPathData(t *testing.T) {
	three := LabelPath{Points: []Point{Pt(0, 0), Pt(5, 5), Pt(10, 0)}}
	if got := PathData(three); got != "M 0,0 Q 5,10 10,0" {
		t.Errorf("three points: %q", got)
	}

	two := LabelPath{Points: []Point{Pt(0, 0), Pt(10, 0)}}
	if got := PathData(two); got != "M 0,0 L 10,0" {
		t.Errorf("two points: %q", got)
	}
}

func TestSVGDocument(t *testing.T) {
	var b strings.Builder
	s := NewSVG(&b)
	s.Start(Sz(600, 400))
	s.Rect(Rect{0, 0, 10, 10}, `fill="#abc"`)
	s.End()
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}

	got := b.String()
	for _, want := range []string{
		`viewBox="0 0 600 400"`,
		`<rect x="0" y="0" width="10" height="10" fill="#abc"/>`,
		"</svg>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output lacks %q:\n%s", want, got)
		}
	}
}

func TestRenderLabelsState(t *testing.T) {
	l := Label{
		ID:     4,
		Kind:   KindState,
		Region: 4,
		Path: LabelPath{
			Points: []Point{Pt(0, 0), Pt(5, 5), Pt(10, 0)},
		},
		Lines:       []string{"Kingdom", "of Rus & Keria"},
		Ratio:       120,
		StartOffset: 50,
		Transform:   Identity,
	}

	var b strings.Builder
	s := NewSVG(&b)
	RenderLabels(s, slices.Values([]Label{l}))
	if err := s.Err(); err != nil {
		t.Fatal(err)
	}

	got := b.String()
	for _, want := range []string{
		`<path id="labelPath4" d="M 0,0 Q 5,10 10,0"`,
		`font-size="120%"`,
		`href="#labelPath4"`,
		`startOffset="50%"`,
		`<tspan x="0" dy="-0.5em">Kingdom</tspan>`,
		`<tspan x="0" dy="1em">of Rus &amp; Keria</tspan>`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output lacks %q:\n%s", want, got)
		}
	}
}

func TestRenderLabelsSingleLine(t *testing.T) {
	l := Label{
		ID:          1,
		Kind:        KindCustom,
		Region:      1,
		Path:        LabelPath{Points: []Point{Pt(0, 0), Pt(10, 0)}},
		Lines:       []string{"Keria"},
		Ratio:       100,
		StartOffset: 50,
		Transform:   Identity,
	}

	var b strings.Builder
	s := NewSVG(&b)
	RenderLabels(s, slices.Values([]Label{l}))

	got := b.String()
	if strings.Contains(got, "<tspan") {
		t.Errorf("single line rendered with tspans:\n%s", got)
	}
	if !strings.Contains(got, ">Keria</textPath>") {
		t.Errorf("output lacks inline text:\n%s", got)
	}
}

func TestRenderLabelsBurg(t *testing.T) {
	l := Label{
		ID:     9,
		Kind:   KindBurg,
		Region: 2,
		Path:   LabelPath{Points: []Point{Pt(120, 80), Pt(140, 80)}},
		Lines:  []string{"Port Royal"},
		Ratio:  80,
	}

	var b strings.Builder
	s := NewSVG(&b)
	RenderLabels(s, slices.Values([]Label{l}))

	got := b.String()
	for _, want := range []string{
		`<text x="120" y="80"`,
		`font-size="80%"`,
		`text-anchor="middle"`,
		">Port Royal</text>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output lacks %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "textPath") {
		t.Errorf("burg label rendered along a path:\n%s", got)
	}
}

func TestRenderLabelsAttrs(t *testing.T) {
	l := Label{
		ID:            2,
		Kind:          KindState,
		Region:        2,
		Path:          LabelPath{Points: []Point{Pt(0, 0), Pt(10, 0)}},
		Lines:         []string{"Keria"},
		Ratio:         100,
		StartOffset:   50,
		LetterSpacing: 1.5,
		Transform:     Translate(Vec(3, 4)),
	}

	var b strings.Builder
	s := NewSVG(&b)
	RenderLabels(s, slices.Values([]Label{l}))

	got := b.String()
	for _, want := range []string{
		`letter-spacing="1.5"`,
		`transform="matrix(1 0 0 1 3 4)"`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output lacks %q:\n%s", want, got)
		}
	}
}

func TestRenderLabelsUnknownKind(t *testing.T) {
	l := Label{ID: 1, Kind: LabelKind(99), Lines: []string{"x"}}

	var b strings.Builder
	s := NewSVG(&b)
	RenderLabels(s, slices.Values([]Label{l}))
	if s.Err() == nil {
		t.Error("unknown kind did not set the writer error")
	}
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

func TestSVGStickyError(t *testing.T) {
	boom := errors.New("boom")
	s := NewSVG(failingWriter{err: boom})
	s.Start(Sz(10, 10))
	s.Rect(Rect{0, 0, 1, 1})
	s.End()
	if !errors.Is(s.Err(), boom) {
		t.Errorf("Err() = %v, want the write error", s.Err())
	}
}
