package maplabel

import (
	"errors"
	"math"
)

// ErrTooFewRays is returned by [SelectBestPair] when fewer than two rays are
// supplied.
var ErrTooFewRays = errors.New("maplabel: need at least two rays to select a pair")

// horizontality grades how close to horizontal an angle reads, quantized
// into six bands from 1.0 at exactly horizontal down to 0.1 near vertical.
// Label text wants to run left to right.
func horizontality(angle float64) float64 {
	h := math.Abs(math.Mod(angle, 180)-90) / 90
	switch {
	case h == 1:
		return 1.0
	case h >= 0.75:
		return 0.9
	case h >= 0.5:
		return 0.6
	case h >= 0.25:
		return 0.5
	case h >= 0.15:
		return 0.2
	default:
		return 0.1
	}
}

// proximity measures how far an angle is from vertical, folded to [0, 90].
func proximity(angle float64) float64 {
	return math.Abs(math.Mod(angle, 180) - 90)
}

// curvature weighs the angular delta between the two rays of a pair. A delta
// of 180 degrees is a straight line through the pole and ideal; acute pairs
// are ruled out entirely; anything between is scaled by how symmetric the
// two angles lie about the horizontal axis, so that the resulting arc bends
// evenly instead of kinking.
func curvature(a1, a2 float64) float64 {
	delta := math.Abs(a1 - a2)
	if delta > 180 {
		delta = 360 - delta
	}
	if delta == 180 {
		return 1
	}
	if delta < 90 {
		return 0
	}
	sim := 1 - math.Abs(proximity(a1)-proximity(a2))/90
	switch {
	case delta < 120:
		return 0.6 * sim
	case delta < 140:
		return 0.7 * sim
	case delta < 160:
		return 0.8 * sim
	default:
		return sim
	}
}

// rayScore is the individual worth of a ray: its reach, preferring
// near-horizontal directions.
func rayScore(ray Ray) float64 {
	return ray.Length * horizontality(ray.Angle)
}

// SelectBestPair scores every unordered pair of rays and returns the pair
// whose combined score is strictly greatest. The pair score is the sum of
// the two individual scores times the curvature weight of their angles. Ties
// keep the pair seen first in (i, j) scan order, i then j ascending, so the
// result is deterministic for a fixed input order.
func SelectBestPair(rays []Ray) (Ray, Ray, error) {
	if len(rays) < 2 {
		return Ray{}, Ray{}, ErrTooFewRays
	}
	scores := make([]float64, len(rays))
	for i, ray := range rays {
		scores[i] = rayScore(ray)
	}
	bi, bj := 0, 1
	best := math.Inf(-1)
	for i := 0; i < len(rays); i++ {
		for j := i + 1; j < len(rays); j++ {
			score := (scores[i] + scores[j]) * curvature(rays[i].Angle, rays[j].Angle)
			if score > best {
				best, bi, bj = score, i, j
			}
		}
	}
	return rays[bi], rays[bj], nil
}
