package engine

import (
	"errors"
	"fmt"
	"slices"

	"github.com/Benarrt/FiltFilt/internal/mathutil"
	"github.com/Benarrt/FiltFilt/internal/simdops"
)

// ErrSignalTooShort is returned when the signal cannot hold the edge extension.
var ErrSignalTooShort = errors.New("signal too short for filter")

// Options controls edge handling of FiltFilt.
type Options struct {
	Pad PadType

	// PadLen is the number of samples added at each edge. Negative selects
	// the default of 3·len(b).
	PadLen int
}

// DefaultOptions returns odd extension with the default pad length.
func DefaultOptions() Options {
	return Options{Pad: PadOdd, PadLen: -1}
}

// padLen resolves the edge extension length for normalized coefficients of
// length n.
func (o Options) padLen(n int) int {
	switch {
	case o.Pad == PadNone:
		return 0
	case o.PadLen < 0:
		return defaultPadLenFactor * n
	default:
		return o.PadLen
	}
}

// MinSignalLength returns the shortest signal FiltFilt accepts for
// normalized coefficients of length n.
func (o Options) MinSignalLength(n int) int {
	return o.padLen(n) + 1
}

// SteadyState returns the initial state of the normalized filter (b, a)
// for a unit step that has been applied forever. A filter with a pole at
// z = 1 has no such state and gets the zero state.
func SteadyState(b, a []float64) ([]float64, error) {
	zi, err := mathutil.SolveSteadyState(b, a)
	if errors.Is(err, mathutil.ErrSingularSystem) {
		return make([]float64, len(b)-1), nil
	}
	return zi, err
}

// FiltFilt applies the normalized filter (b, a) to x forward and then
// backward, so the result has zero phase distortion and the squared
// magnitude response of the filter. The output has the length of x.
//
// Each pass starts from the steady state scaled by the first sample it
// sees, which suppresses start-up transients at both edges.
func FiltFilt[F simdops.Float](b, a []float64, x []F, opts Options) ([]F, error) {
	edge := opts.padLen(len(b))
	if len(x) == 0 || len(x) <= edge {
		return nil, fmt.Errorf("%w: length %d, need more than %d samples", ErrSignalTooShort, len(x), edge)
	}

	ext := Extend(x, edge, opts.Pad)
	fb := simdops.FromFloat64[F](b)

	var y []F
	if mathutil.IsFIRDenominator(a) {
		y = filterFIRSettled(fb, ext)
		slices.Reverse(y)
		y = filterFIRSettled(fb, y)
		slices.Reverse(y)
	} else {
		zi, err := SteadyState(b, a)
		if err != nil {
			return nil, err
		}
		fa := simdops.FromFloat64[F](a)
		steady := simdops.FromFloat64[F](zi)

		y, _, err = Filter(fb, fa, ext, scaledState(steady, ext[0]))
		if err != nil {
			return nil, err
		}
		slices.Reverse(y)
		y, _, err = Filter(fb, fa, y, scaledState(steady, y[0]))
		if err != nil {
			return nil, err
		}
		slices.Reverse(y)
	}

	out := make([]F, len(x))
	copy(out, y[edge:edge+len(x)])
	return out, nil
}

func scaledState[F simdops.Float](zi []F, x0 F) []F {
	z := make([]F, len(zi))
	simdops.For[F]().Scale(z, zi, x0)
	return z
}
