package maplabel

// Ray is the farthest in-region probe from a region's pole along one
// direction. A zero Length means the very first candidate length already left
// the region; End then equals the pole.
type Ray struct {
	// Angle in degrees, copied from the direction the ray was cast along.
	Angle  float64
	Length float64
	End    Point
}

// CastRay walks outward from the region's pole along dir, extending the ray
// by the configured step while the region keeps containing it, and returns
// the longest contained ray.
//
// Containment is checked at three probe points per candidate length: the
// point on the ray itself and two points displaced perpendicularly by the
// region's probe offset. The scan stops at the first rejected length; the
// ray never overshoots a boundary crossing.
func (g *Generator) CastRay(r Region, dir Direction) Ray {
	return castRay(g.m, r, dir, g.cfg.RayStart, g.cfg.RayStep, g.cfg.RayMax)
}

// Rays casts one ray per configured direction. The result keeps the
// direction order, one entry per direction.
func (g *Generator) Rays(r Region) []Ray {
	rays := make([]Ray, len(g.dirs))
	for i, dir := range g.dirs {
		rays[i] = castRay(g.m, r, dir, g.cfg.RayStart, g.cfg.RayStep, g.cfg.RayMax)
	}
	return rays
}

func castRay(m *MapContext, r Region, dir Direction, start, step, max float64) Ray {
	offset := r.probeOffset()
	side := dir.Unit.Perp().Mul(offset)
	ray := Ray{Angle: dir.Angle, End: r.Pole}
	for length := start; length <= max; length += step {
		p := r.Pole.Translate(dir.Unit.Mul(length))
		if !m.Inside(r, p) {
			break
		}
		// With a zero offset all three probes coincide, so the side checks
		// are skipped.
		if offset > 0 && (!m.Inside(r, p.Translate(side)) || !m.Inside(r, p.Translate(side.Negate()))) {
			break
		}
		ray.Length = length
		ray.End = p
	}
	return ray
}
