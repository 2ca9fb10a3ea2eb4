// Package filter provides FIR filter design: window functions, windowed-sinc
// kernel synthesis and frequency response evaluation.
package filter

import (
	"fmt"
	"math"
	"strings"

	"github.com/Benarrt/FiltFilt/internal/mathutil"
)

// WindowType selects the taper applied to a truncated ideal impulse response.
// The zero value is Hamming.
type WindowType int

const (
	// WindowHamming trades a ~43 dB first sidelobe for a narrow main lobe.
	WindowHamming WindowType = iota

	// WindowHann has faster sidelobe roll-off than Hamming.
	WindowHann

	// WindowBlackman gives ~58 dB sidelobes at the cost of a wider main lobe.
	WindowBlackman

	// WindowRectangular is plain truncation.
	WindowRectangular

	// WindowKaiser is parameterized by β (see mathutil.KaiserBeta).
	WindowKaiser
)

var windowNames = map[WindowType]string{
	WindowHamming:     "hamming",
	WindowHann:        "hann",
	WindowBlackman:    "blackman",
	WindowRectangular: "rectangular",
	WindowKaiser:      "kaiser",
}

// String returns the lower-case window name.
func (w WindowType) String() string {
	if name, ok := windowNames[w]; ok {
		return name
	}
	return fmt.Sprintf("WindowType(%d)", int(w))
}

// ParseWindowType maps a window name to its WindowType. Matching is case
// insensitive and accepts "boxcar" and "hanning" as aliases.
func ParseWindowType(name string) (WindowType, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "hamming", "":
		return WindowHamming, nil
	case "hann", "hanning":
		return WindowHann, nil
	case "blackman":
		return WindowBlackman, nil
	case "rectangular", "boxcar":
		return WindowRectangular, nil
	case "kaiser":
		return WindowKaiser, nil
	default:
		return 0, fmt.Errorf("unknown window type %q", name)
	}
}

// Window generates a symmetric window of the given length.
// beta is only used by WindowKaiser.
//
// The window is symmetric: w[i] = w[length-1-i], and a length-1 window is [1].
func Window(t WindowType, length int, beta float64) ([]float64, error) {
	if length < 1 {
		return []float64{}, nil
	}

	window := make([]float64, length)
	if length == 1 {
		window[0] = 1
		return window, nil
	}

	denom := float64(length - 1)

	switch t {
	case WindowHamming:
		for n := range length {
			window[n] = hammingA0 - hammingA1*math.Cos(twoPi*float64(n)/denom)
		}
	case WindowHann:
		for n := range length {
			window[n] = hannA0 - hannA0*math.Cos(twoPi*float64(n)/denom)
		}
	case WindowBlackman:
		for n := range length {
			x := twoPi * float64(n) / denom
			window[n] = blackmanA0 - blackmanA1*math.Cos(x) + blackmanA2*math.Cos(2*x)
		}
	case WindowRectangular:
		for n := range length {
			window[n] = 1
		}
	case WindowKaiser:
		if beta < 0 {
			return nil, fmt.Errorf("invalid Kaiser beta: %f (must be non-negative)", beta)
		}
		// w[n] = I₀(β·sqrt(1 - ((n - α)/α)²)) / I₀(β), α = (N-1)/2
		alpha := denom / halfDivisor
		i0Beta := mathutil.BesselI0(beta)
		for n := range length {
			x := (float64(n) - alpha) / alpha
			window[n] = mathutil.BesselI0(beta*math.Sqrt(math.Max(0, 1-x*x))) / i0Beta
		}
	default:
		return nil, fmt.Errorf("unsupported window type %v", t)
	}

	return window, nil
}
