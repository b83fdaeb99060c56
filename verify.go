package maplabel

// Fits reports whether a rendered text block stays visually inside the
// region. Six sample points of the block's bounding box relative to its
// center (the four corners plus the top and bottom edge midpoints) are
// rotated about the center by the path's orientation angle and resolved
// against the region; the block fits when more than four of the six land
// inside. The check short-circuits as soon as that is settled.
//
// The generator runs this for two-line layouts only; a single line follows
// the path itself and needs no box check.
func (g *Generator) Fits(r Region, center Point, half Size, angle float64) bool {
	aff := RotateAbout(angle, center)
	offsets := [6]Vec2{
		{-half.Width, -half.Height},
		{+half.Width, -half.Height},
		{-half.Width, +half.Height},
		{+half.Width, +half.Height},
		{0, -half.Height},
		{0, +half.Height},
	}
	inside := 0
	for _, o := range offsets {
		if g.m.Inside(r, center.Translate(o).Transform(aff)) {
			inside++
			if inside > 4 {
				return true
			}
		}
	}
	return false
}
