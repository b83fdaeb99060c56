package maplabel

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDirectionsCount(t *testing.T) {
	tests := []struct {
		step float64
		want int
	}{
		{9, 40},
		{90, 4},
		{120, 3},
		{7, 52},
		{360, 1},
	}
	for _, tt := range tests {
		if got := len(Directions(tt.step)); got != tt.want {
			t.Errorf("Directions(%g): %d directions, want %d", tt.step, got, tt.want)
		}
	}
}

func TestDirectionsAngles(t *testing.T) {
	dirs := Directions(9)
	for i, d := range dirs {
		if want := float64(i) * 9; d.Angle != want {
			t.Errorf("#%d: angle = %g, want %g", i, d.Angle, want)
		}
		if d.Angle >= 360 {
			t.Errorf("#%d: angle %g reached a full turn", i, d.Angle)
		}
		if i > 0 && d.Angle <= dirs[i-1].Angle {
			t.Errorf("#%d: angle %g does not increase over %g", i, d.Angle, dirs[i-1].Angle)
		}
	}
}

func TestDirectionsUnits(t *testing.T) {
	dirs := Directions(90)
	want := []Vec2{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	for i, d := range dirs {
		diff(t, want[i], d.Unit, cmpopts.EquateApprox(0, 1e-12))
		if dd := math.Abs(d.Unit.Hypot() - 1); dd > 1e-12 {
			t.Errorf("#%d: unit length off by %g", i, dd)
		}
	}
}

func TestDirectionsInvalidStep(t *testing.T) {
	for _, step := range []float64{0, -9} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Directions(%g) did not panic", step)
				}
			}()
			Directions(step)
		}()
	}
}
