package maplabel

import (
	"fmt"
	"html"
	"io"
	"iter"
	"strings"
)

// SVG serializes map layers to an [io.Writer]. Write errors stick: the
// first one is kept, later calls become no-ops, and [SVG.Err] reports it
// after rendering.
type SVG struct {
	w   io.Writer
	err error
}

// NewSVG returns a writer serializing to w.
func NewSVG(w io.Writer) *SVG {
	return &SVG{w: w}
}

func (s *SVG) printf(format string, a ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

// Err reports the first write error, nil after a clean render.
func (s *SVG) Err() error {
	return s.err
}

// attrString joins ready-made name="value" attributes, each preceded by a
// space so it can be appended directly after the previous attribute.
func attrString(attrs []string) string {
	if len(attrs) == 0 {
		return ""
	}
	return " " + strings.Join(attrs, " ")
}

// Start opens the document over a canvas of the given size. Extra
// attributes go on the svg element.
func (s *SVG) Start(canvas Size, attrs ...string) {
	s.printf("<svg xmlns=\"http://www.w3.org/2000/svg\" width=\"%g\" height=\"%g\" viewBox=\"0 0 %g %g\"%s>\n",
		canvas.Width, canvas.Height, canvas.Width, canvas.Height, attrString(attrs))
}

// End closes the document.
func (s *SVG) End() {
	s.printf("</svg>\n")
}

// Rect draws an axis-aligned rectangle.
func (s *SVG) Rect(r Rect, attrs ...string) {
	s.printf("<rect x=\"%g\" y=\"%g\" width=\"%g\" height=\"%g\"%s/>\n",
		r.X0, r.Y0, r.Width(), r.Height(), attrString(attrs))
}

// DefPath registers path data under an id for later textPath references.
func (s *SVG) DefPath(id, d string) {
	s.printf("<defs><path id=\"%s\" d=\"%s\" fill=\"none\"/></defs>\n", id, d)
}

// Text draws text anchored on pt, extra lines stacked below the first.
func (s *SVG) Text(pt Point, lines []string, attrs ...string) {
	s.printf("<text x=\"%g\" y=\"%g\"%s>", pt.X, pt.Y, attrString(attrs))
	if len(lines) == 1 {
		s.printf("%s", html.EscapeString(lines[0]))
	} else {
		for i, line := range lines {
			dy := "1em"
			if i == 0 {
				dy = "0em"
			}
			s.printf("<tspan x=\"%g\" dy=\"%s\">%s</tspan>", pt.X, dy, html.EscapeString(line))
		}
	}
	s.printf("</text>\n")
}

// TextPath draws lines of text along the path registered under id. The
// font size and start offset are percentages. Multi-line text renders as
// tspans shifted so the block centers on the path vertically.
func (s *SVG) TextPath(id string, startOffset float64, size int, lines []string, attrs ...string) {
	s.printf("<text font-size=\"%d%%\"%s><textPath href=\"#%s\" startOffset=\"%g%%\">",
		size, attrString(attrs), id, startOffset)
	if len(lines) == 1 {
		s.printf("%s", html.EscapeString(lines[0]))
	} else {
		top := float64(len(lines)-1) / -2
		for i, line := range lines {
			dy := "1em"
			if i == 0 {
				dy = fmt.Sprintf("%gem", top)
			}
			s.printf("<tspan x=\"0\" dy=\"%s\">%s</tspan>", dy, html.EscapeString(line))
		}
	}
	s.printf("</textPath></text>\n")
}

// PathData returns the SVG path data for a label path: a quadratic curve
// through the middle point for three-point paths, a straight segment for
// two-point ones.
func PathData(p LabelPath) string {
	pts := p.Points
	switch len(pts) {
	case 2:
		return fmt.Sprintf("M %g,%g L %g,%g", pts[0].X, pts[0].Y, pts[1].X, pts[1].Y)
	case 3:
		q := QuadThrough(pts[0], pts[1], pts[2])
		return fmt.Sprintf("M %g,%g Q %g,%g %g,%g", q.P0.X, q.P0.Y, q.P1.X, q.P1.Y, q.P2.X, q.P2.Y)
	}
	panic(fmt.Sprintf("maplabel: path with %d points", len(pts)))
}

// RenderLabels serializes the labels. State and custom labels render as
// text along their registered path; burg labels render as plain anchored
// text. Check [SVG.Err] afterwards.
func RenderLabels(s *SVG, labels iter.Seq[Label]) {
	for l := range labels {
		attrs := labelAttrs(l)
		switch l.Kind {
		case KindState, KindCustom:
			id := fmt.Sprintf("labelPath%d", l.ID)
			s.DefPath(id, PathData(l.Path))
			s.TextPath(id, l.StartOffset, l.Ratio, l.Lines, attrs...)
		case KindBurg:
			attrs = append(attrs, fmt.Sprintf("font-size=\"%d%%\"", l.Ratio), "text-anchor=\"middle\"")
			s.Text(l.Path.Start(), l.Lines, attrs...)
		default:
			if s.err == nil {
				s.err = fmt.Errorf("maplabel: unknown label kind %d", l.Kind)
			}
		}
	}
}

func labelAttrs(l Label) []string {
	var attrs []string
	if l.LetterSpacing != 0 {
		attrs = append(attrs, fmt.Sprintf("letter-spacing=\"%g\"", l.LetterSpacing))
	}
	// The zero transform means unset, not collapse-to-origin.
	if l.Transform != (Affine{}) && l.Transform != Identity {
		c := l.Transform.Coefficients()
		attrs = append(attrs, fmt.Sprintf("transform=\"matrix(%g %g %g %g %g %g)\"", c[0], c[1], c[2], c[3], c[4], c[5]))
	}
	return attrs
}
