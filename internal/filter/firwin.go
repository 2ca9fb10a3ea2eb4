package filter

import (
	"fmt"
	"math"

	"github.com/Benarrt/FiltFilt/internal/mathutil"
	vecmath "github.com/cwbudde/algo-vecmath"
	"github.com/tphakala/simd/f64"
)

// FirWinParams describes a multi-band windowed-sinc FIR design.
type FirWinParams struct {
	// NumTaps is the kernel length. Must be odd when the response passes
	// Nyquist (high-pass, band-stop).
	NumTaps int

	// Cutoffs are band edges normalized to Nyquist, strictly increasing in (0, 1).
	Cutoffs []float64

	// PassZero makes the first band (starting at DC) a pass-band.
	PassZero bool

	// Window selects the taper; Beta is the Kaiser β when Window is WindowKaiser.
	Window WindowType
	Beta   float64
}

// PassesNyquist reports whether the last band reaches Nyquist.
// An odd number of edges flips the pass/stop state at Nyquist relative to DC.
func (p *FirWinParams) PassesNyquist() bool {
	return (len(p.Cutoffs)%2 == 1) != p.PassZero
}

// Validate checks if filter parameters are valid.
func (p *FirWinParams) Validate() error {
	if p.NumTaps < minFilterTaps {
		return fmt.Errorf("filter too short: %d taps (minimum %d)", p.NumTaps, minFilterTaps)
	}

	if p.NumTaps > maxFilterTaps {
		return fmt.Errorf("filter too long: %d taps (maximum %d)", p.NumTaps, maxFilterTaps)
	}

	if len(p.Cutoffs) == 0 {
		return fmt.Errorf("at least one cutoff frequency is required")
	}

	prev := 0.0
	for i, c := range p.Cutoffs {
		if math.IsNaN(c) || c <= 0 || c >= 1 {
			return fmt.Errorf("invalid cutoff %d: %f (must be in (0, 1) relative to Nyquist)", i, c)
		}
		if c <= prev {
			return fmt.Errorf("cutoffs must be strictly increasing: %f after %f", c, prev)
		}
		prev = c
	}

	if p.PassesNyquist() && p.NumTaps%2 == 0 {
		return fmt.Errorf("a filter with a pass-band at Nyquist needs an odd number of taps, got %d", p.NumTaps)
	}

	return nil
}

// bands expands the cutoffs into (left, right) pass-band pairs.
func (p *FirWinParams) bands() [][2]float64 {
	edges := make([]float64, 0, len(p.Cutoffs)+2)
	if p.PassZero {
		edges = append(edges, 0)
	}
	edges = append(edges, p.Cutoffs...)
	if p.PassesNyquist() {
		edges = append(edges, 1)
	}

	out := make([][2]float64, 0, len(edges)/2)
	for i := 0; i+1 < len(edges); i += 2 {
		out = append(out, [2]float64{edges[i], edges[i+1]})
	}
	return out
}

// FirWin designs a linear-phase FIR filter with the window method.
//
//  1. Sum the ideal responses of each pass-band [l, r]:
//     h[n] = Σ r·sinc(r·m) - l·sinc(l·m), m = n - (N-1)/2
//     A band reaching Nyquist contributes sinc(m), the unit impulse, so a
//     band-stop is the complement of the matching band-pass.
//  2. Truncate to NumTaps and apply the window.
//  3. Scale to unit gain at DC if the first band starts at 0, at Nyquist if
//     it ends at 1, otherwise at the middle of the first pass-band.
func FirWin(params FirWinParams) ([]float64, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}

	window, err := Window(params.Window, params.NumTaps, params.Beta)
	if err != nil {
		return nil, err
	}

	bands := params.bands()
	alpha := float64(params.NumTaps-1) / halfDivisor

	h := make([]float64, params.NumTaps)
	for n := range h {
		m := float64(n) - alpha
		for _, band := range bands {
			left, right := band[0], band[1]
			h[n] += right*mathutil.Sinc(right*m) - left*mathutil.Sinc(left*m)
		}
	}

	vecmath.MulBlockInPlace(h, window)

	left, right := bands[0][0], bands[0][1]
	var scaleFreq float64
	switch {
	case left == 0:
		scaleFreq = 0
	case right == 1:
		scaleFreq = 1
	default:
		scaleFreq = (left + right) / halfDivisor
	}

	// The kernel is symmetric about alpha, so its response at scaleFreq is real.
	carrier := make([]float64, params.NumTaps)
	for n := range carrier {
		carrier[n] = math.Cos(math.Pi * (float64(n) - alpha) * scaleFreq)
	}
	gain := f64.DotProduct(h, carrier)
	if math.Abs(gain) < gainZeroThreshold {
		return nil, fmt.Errorf("designed kernel has no gain at the normalization frequency %f", scaleFreq)
	}
	f64.Scale(h, h, 1/gain)

	return h, nil
}
