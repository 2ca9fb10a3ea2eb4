// Package testutil provides reusable test helpers and signal generators for
// the filter designer and zero-phase engine tests.
package testutil

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Default tolerances for various test scenarios.
const (
	DefaultTolerance = 1e-10
	GainTolerance    = 1e-3
	WindowTolerance  = 1e-12
)

// halfDivisor is used for finding center indices in symmetric arrays.
const halfDivisor = 2

// SineMixture returns n samples at sample rate fs of the sum of unit
// amplitude sines at the given frequencies (Hz).
func SineMixture(n int, fs float64, freqs ...float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		t := float64(i) / fs
		for _, f := range freqs {
			out[i] += math.Sin(2 * math.Pi * f * t)
		}
	}
	return out
}

// Ramp returns n samples of offset + slope*i.
func Ramp(n int, offset, slope float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = offset + slope*float64(i)
	}
	return out
}

// Reversed returns a reversed copy of s.
func Reversed(s []float64) []float64 {
	out := make([]float64, len(s))
	for i, v := range s {
		out[len(s)-1-i] = v
	}
	return out
}

// ToneAmplitude estimates the amplitude of the component at freq (Hz) in x
// by projecting onto a complex exponential. The estimate is exact when x
// spans an integer number of periods of freq.
func ToneAmplitude(x []float64, freq, fs float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var acc complex128
	w := 2 * math.Pi * freq / fs
	for i, v := range x {
		acc += complex(v, 0) * cmplx.Exp(complex(0, -w*float64(i)))
	}
	return 2 * cmplx.Abs(acc) / float64(len(x))
}

// AssertSymmetric verifies that a slice is symmetric (s[i] == s[n-1-i]).
func AssertSymmetric(t *testing.T, s []float64, tolerance float64) bool {
	t.Helper()
	n := len(s)
	for i := 0; i < n/halfDivisor; i++ {
		j := n - 1 - i
		if !assert.InDelta(t, s[i], s[j], tolerance,
			"slice not symmetric at i=%d: s[%d]=%g != s[%d]=%g", i, i, s[i], j, s[j]) {
			return false
		}
	}
	return true
}

// AssertNoNaNOrInf verifies that no elements in the slice are NaN or Inf.
func AssertNoNaNOrInf(t *testing.T, s []float64) bool {
	t.Helper()
	for i, v := range s {
		if math.IsNaN(v) {
			return assert.Fail(t, "found NaN", "s[%d] is NaN", i)
		}
		if math.IsInf(v, 0) {
			return assert.Fail(t, "found Inf", "s[%d] is Inf", i)
		}
	}
	return true
}

// AssertSlicesClose verifies element-wise agreement and reports the first
// offending index rather than the whole slice.
func AssertSlicesClose(t *testing.T, expected, actual []float64, tolerance float64) bool {
	t.Helper()
	if !assert.Len(t, actual, len(expected)) {
		return false
	}
	for i := range expected {
		if math.Abs(expected[i]-actual[i]) > tolerance {
			return assert.Fail(t, "slices differ",
				"index %d: expected %g, actual %g (tolerance %g)", i, expected[i], actual[i], tolerance)
		}
	}
	return true
}

// AssertRelativeError verifies that the relative error between actual and expected is within tolerance.
func AssertRelativeError(t *testing.T, expected, actual, tolerance float64, msgAndArgs ...any) bool {
	t.Helper()
	if expected == 0 {
		return assert.InDelta(t, expected, actual, tolerance, msgAndArgs...)
	}
	relError := math.Abs(actual-expected) / math.Abs(expected)
	return assert.LessOrEqual(t, relError, tolerance,
		"relative error %e exceeds tolerance %e (expected=%g, actual=%g)",
		relError, tolerance, expected, actual)
}

// AssertOddLength verifies that a slice has an odd length.
func AssertOddLength(t *testing.T, s []float64) bool {
	t.Helper()
	return assert.Equal(t, 1, len(s)%halfDivisor, "slice length %d is not odd", len(s))
}
