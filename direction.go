package maplabel

import "math"

// Direction is one probe direction of the angular sampler: an angle in
// degrees together with its unit vector decomposition.
type Direction struct {
	// Angle in degrees, in [0, 360).
	Angle float64
	// Unit is the (cos, sin) unit vector of Angle. In a y-down canvas,
	// angle 90 points downward.
	Unit Vec2
}

// Directions samples the full circle at step-degree increments, starting at
// angle 0. The result has exactly ⌈360/step⌉ entries with strictly increasing
// angles, each below 360. The set is independent of any region and is meant
// to be computed once per configuration.
//
// Smaller steps give better-fitting label paths at quadratic cost to pair
// selection. Directions panics if step is not positive; [Config] validation
// rejects such steps before any sampling happens.
func Directions(step float64) []Direction {
	if step <= 0 {
		panic("maplabel: non-positive angular step")
	}
	n := int(math.Ceil(360 / step))
	dirs := make([]Direction, n)
	for i := range dirs {
		angle := float64(i) * step
		dirs[i] = Direction{
			Angle: angle,
			Unit:  VecFromAngle(angle * math.Pi / 180),
		}
	}
	return dirs
}
