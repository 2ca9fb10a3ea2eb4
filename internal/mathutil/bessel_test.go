package mathutil

import (
	"math"
	"testing"

	"github.com/Benarrt/FiltFilt/internal/testutil"
	"github.com/stretchr/testify/assert"
)

// TestBesselI0 tests BesselI0 against known values.
func TestBesselI0(t *testing.T) {
	tests := []struct {
		name      string
		x         float64
		expected  float64
		tolerance float64
	}{
		{"Zero", 0.0, 1.0, 1e-15},
		{"Small positive", 0.5, 1.063483370741, 1e-10},
		{"One", 1.0, 1.266065877752, 1e-10},
		{"Two", 2.0, 2.279585302336, 1e-10},
		{"Three", 3.0, 4.880792585865, 1e-10},
		{"Five", 5.0, 27.239871823604, 1e-10},
		{"Ten", 10.0, 2815.716628466254, 1e-10},
		{"Twenty", 20.0, 4.355828255955353e7, 1e-9},
		{"Negative one", -1.0, 1.266065877752, 1e-10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testutil.AssertRelativeError(t, tt.expected, BesselI0(tt.x), tt.tolerance)
		})
	}
}

// TestBesselI0_Monotonic tests I₀(x) is monotonically increasing for x > 0.
func TestBesselI0_Monotonic(t *testing.T) {
	prev := BesselI0(0)
	for x := 0.25; x <= 30; x += 0.25 {
		cur := BesselI0(x)
		assert.Greater(t, cur, prev, "I₀ not increasing at x=%v", x)
		prev = cur
	}
}

func TestKaiserBeta(t *testing.T) {
	tests := []struct {
		name string
		att  float64
		want float64
	}{
		{"below_21dB", 15, 0},
		{"medium_30dB", 30, 0.5842*math.Pow(9, 0.4) + 0.07886*9},
		{"high_60dB", 60, 0.1102 * (60 - 8.7)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, KaiserBeta(tt.att), 1e-12)
		})
	}
}

func TestSinc(t *testing.T) {
	assert.InDelta(t, 1.0, Sinc(0), 1e-15)
	for _, n := range []float64{1, 2, 3, -1, -7} {
		assert.InDelta(t, 0.0, Sinc(n), 1e-15, "sinc(%v) should vanish", n)
	}
	assert.InDelta(t, 2/math.Pi, Sinc(0.5), 1e-15)
	assert.InDelta(t, Sinc(0.3), Sinc(-0.3), 1e-15)
}
