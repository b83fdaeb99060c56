package maplabel

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// LabelMode selects which name form is fitted to a label path.
type LabelMode int

const (
	// ModeAuto renders the full name, on one line when the path is generous
	// and split into two balanced lines otherwise, falling back to the short
	// name when a two-line layout does not stay inside its region.
	ModeAuto LabelMode = iota + 1
	// ModeShort always renders the short name on one line.
	ModeShort
	// ModeFull renders like ModeAuto but never falls back to the short name.
	ModeFull
)

func (m LabelMode) String() string {
	switch m {
	case ModeAuto:
		return "auto"
	case ModeShort:
		return "short"
	case ModeFull:
		return "full"
	default:
		return fmt.Sprintf("LabelMode(%d)", int(m))
	}
}

// ParseLabelMode converts a mode name as used in configuration files into a
// LabelMode.
func ParseLabelMode(s string) (LabelMode, error) {
	switch s {
	case "auto":
		return ModeAuto, nil
	case "short":
		return ModeShort, nil
	case "full":
		return ModeFull, nil
	default:
		return 0, fmt.Errorf("maplabel: unknown label mode %q", s)
	}
}

// LabelText is the fitted rendering of a name: one or two lines and the font
// size ratio, a percentage of the base font size.
type LabelText struct {
	Lines []string
	Ratio int
}

// LongestLine returns the largest rune count among the lines.
func (lt LabelText) LongestLine() int {
	n := 0
	for _, line := range lt.Lines {
		n = max(n, utf8.RuneCountInString(line))
	}
	return n
}

// FitText decides how a region's name renders on a path of the given length.
// pathLength is the rendered path's geometric length normalized by the mean
// glyph width of the name, so it is measured in characters rather than
// canvas units; name lengths are counted in runes. Both name forms must be
// non-empty.
//
// ModeShort yields one line of the short form. Otherwise a path longer than
// twice the full name yields the full form on one line, and anything shorter
// splits the full form into two balanced lines, sized by the longer line.
func FitText(mode LabelMode, shortName, fullName string, pathLength float64) LabelText {
	if mode == ModeShort {
		return LabelText{
			Lines: []string{shortName},
			Ratio: ratio(60, pathLength, utf8.RuneCountInString(shortName), 50, 150),
		}
	}
	full := utf8.RuneCountInString(fullName)
	if pathLength > 2*float64(full) {
		return LabelText{
			Lines: []string{fullName},
			Ratio: ratio(70, pathLength, full, 70, 170),
		}
	}
	first, second := splitBalanced(fullName)
	longest := max(utf8.RuneCountInString(first), utf8.RuneCountInString(second))
	return LabelText{
		Lines: []string{first, second},
		Ratio: ratio(60, pathLength, longest, 70, 150),
	}
}

// ratio computes the clamped font-size percentage for a line of n runes on a
// path of the given normalized length.
func ratio(scale, pathLength float64, n, lo, hi int) int {
	r := int(math.Round(scale * pathLength / float64(n)))
	return min(max(r, lo), hi)
}

// splitBalanced splits a name into two lines of similar length. The break
// goes at the space nearest the rune midpoint, ties toward the earlier
// space, and the space itself is consumed by the break. A name without
// spaces breaks after half its runes.
func splitBalanced(s string) (string, string) {
	runes := []rune(s)
	mid := float64(len(runes)) / 2
	gap := -1
	for i, r := range runes {
		if r != ' ' {
			continue
		}
		if gap < 0 || math.Abs(float64(i)-mid) < math.Abs(float64(gap)-mid) {
			gap = i
		}
	}
	if gap < 0 {
		cut := len(runes) / 2
		return string(runes[:cut]), string(runes[cut:])
	}
	return string(runes[:gap]), string(runes[gap+1:])
}
