package filtfilt

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/Benarrt/FiltFilt/internal/engine"
	"github.com/Benarrt/FiltFilt/internal/filter"
	"github.com/Benarrt/FiltFilt/internal/mathutil"
)

// FrequencyResponse holds sampled magnitude and phase of a filter.
type FrequencyResponse = filter.FilterResponse

// Coefficients is an immutable linear filter B(z)/A(z).
//
// The stored vectors have equal length and a[0] == 1. The zero value is
// not a usable filter; build one with NewCoefficients, FIR or Design.
type Coefficients struct {
	b []float64
	a []float64
}

// NewCoefficients copies b and a, zero-pads the shorter to the length of
// the longer and divides both by a[0].
func NewCoefficients(b, a []float64) (Coefficients, error) {
	nb, na, err := engine.Normalize(b, a)
	if err != nil {
		return Coefficients{}, fmt.Errorf("%w: %w", ErrInvalidCoefficients, err)
	}
	return Coefficients{b: nb, a: na}, nil
}

// FIR builds coefficients with denominator [1].
func FIR(b []float64) (Coefficients, error) {
	return NewCoefficients(b, []float64{1})
}

// B returns a copy of the numerator.
func (c Coefficients) B() []float64 {
	return append([]float64(nil), c.b...)
}

// A returns a copy of the denominator.
func (c Coefficients) A() []float64 {
	return append([]float64(nil), c.a...)
}

// Len returns the common length of the coefficient vectors.
func (c Coefficients) Len() int {
	return len(c.b)
}

// Order returns the number of delays, Len() - 1.
func (c Coefficients) Order() int {
	return max(len(c.b)-1, 0)
}

// IsZero reports whether c is the zero value.
func (c Coefficients) IsZero() bool {
	return len(c.b) == 0
}

// IsFIR reports whether the denominator is trivial.
func (c Coefficients) IsFIR() bool {
	return !c.IsZero() && mathutil.IsFIRDenominator(c.a)
}

// MinSignalLength returns the shortest signal FiltFilt accepts with opts.
func (c Coefficients) MinSignalLength(opts ...Option) int {
	return buildOptions(opts).MinSignalLength(c.Len())
}

// Response evaluates the complex frequency response at freqHz for a
// signal sampled at sampleRate.
func (c Coefficients) Response(freqHz, sampleRate float64) complex128 {
	return filter.Response(c.b, c.a, 2*math.Pi*freqHz/sampleRate)
}

// Gain returns |H| at freqHz.
func (c Coefficients) Gain(freqHz, sampleRate float64) float64 {
	return cmplx.Abs(c.Response(freqHz, sampleRate))
}

// MagnitudeDB returns the single-pass gain at freqHz in decibels. The
// zero-phase result of FiltFilt attenuates by twice this amount.
func (c Coefficients) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return filter.MagnitudeDB(c.Gain(freqHz, sampleRate))
}

// FrequencyResponse samples the response at numPoints frequencies from DC
// up to Nyquist. Frequencies are in Hz.
func (c Coefficients) FrequencyResponse(sampleRate float64, numPoints int) FrequencyResponse {
	resp := filter.ComputeFrequencyResponse(c.b, c.a, numPoints)
	for i := range resp.Frequencies {
		resp.Frequencies[i] *= sampleRate
	}
	return resp
}

// String summarizes the filter.
func (c Coefficients) String() string {
	kind := "IIR"
	if c.IsFIR() {
		kind = "FIR"
	}
	return fmt.Sprintf("%s filter, order %d", kind, c.Order())
}
