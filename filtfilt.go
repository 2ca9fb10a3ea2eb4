package filtfilt

import (
	"errors"
	"fmt"

	"github.com/Benarrt/FiltFilt/internal/engine"
	"github.com/Benarrt/FiltFilt/internal/simdops"
)

// Common errors returned by the package.
var (
	// ErrInvalidSpecification indicates filter design parameters that cannot
	// produce a filter.
	ErrInvalidSpecification = errors.New("invalid filter specification")

	// ErrSignalTooShort indicates a signal no longer than the edge padding.
	ErrSignalTooShort = engine.ErrSignalTooShort

	// ErrInvalidCoefficients indicates an empty vector, a zero leading
	// denominator coefficient or a non-finite value.
	ErrInvalidCoefficients = errors.New("invalid filter coefficients")
)

// PadType selects how FiltFilt extends a signal past its edges.
type PadType = engine.PadType

// Edge extension modes.
const (
	// PadOdd extends by point reflection about the edge sample (default).
	PadOdd = engine.PadOdd
	// PadEven extends by mirroring about the edge sample.
	PadEven = engine.PadEven
	// PadConstant extends by repeating the edge sample.
	PadConstant = engine.PadConstant
	// PadNone disables extension.
	PadNone = engine.PadNone
)

// ParsePadType converts "odd", "even", "constant" or "none" to a PadType.
func ParsePadType(name string) (PadType, error) {
	return engine.ParsePadType(name)
}

// Option configures FiltFilt.
type Option func(*engine.Options)

// WithPadType selects the edge extension mode.
func WithPadType(p PadType) Option {
	return func(o *engine.Options) {
		o.Pad = p
	}
}

// WithPadLen sets the number of samples added at each edge. A negative
// value restores the default of 3·max(len(b), len(a)).
func WithPadLen(n int) Option {
	return func(o *engine.Options) {
		o.PadLen = n
	}
}

func buildOptions(opts []Option) engine.Options {
	o := engine.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// FiltFilt applies c to x once forward and once backward, producing a
// zero-phase result of the same length as x whose magnitude response is
// the square of the filter's.
//
// The signal is extended at both edges by odd reflection of
// 3·max(len(b), len(a)) samples unless options say otherwise, and each pass
// starts from the filter's steady state scaled by its first input sample.
// Signals no longer than the extension fail with ErrSignalTooShort; an empty
// signal always fails.
//
// The denominator must describe a stable filter. Instability is not
// detected and produces unbounded output.
func FiltFilt(c Coefficients, x []float64, opts ...Option) ([]float64, error) {
	return filtFilt(c, x, opts)
}

// FiltFiltFloat32 is FiltFilt for single-precision signals. Steady-state
// initial conditions are solved in float64; filtering runs in float32.
func FiltFiltFloat32(c Coefficients, x []float32, opts ...Option) ([]float32, error) {
	return filtFilt(c, x, opts)
}

func filtFilt[F simdops.Float](c Coefficients, x []F, opts []Option) ([]F, error) {
	if c.IsZero() {
		return nil, fmt.Errorf("%w: coefficients not initialized", ErrInvalidCoefficients)
	}
	return engine.FiltFilt(c.b, c.a, x, buildOptions(opts))
}

// LFilter runs x through c once, causally, starting from state zi, and
// returns the output and the final state. zi must have Order() elements;
// nil means zero state. Passing SteadyState(c) scaled by x[0] starts the
// filter without a transient.
func LFilter(c Coefficients, x, zi []float64) (y, zf []float64, err error) {
	if c.IsZero() {
		return nil, nil, fmt.Errorf("%w: coefficients not initialized", ErrInvalidCoefficients)
	}
	return engine.Filter(c.b, c.a, x, zi)
}

// SteadyState returns the filter state reached after an infinitely long
// unit step. Filters with a pole at z = 1 have no such state and get zeros.
func SteadyState(c Coefficients) []float64 {
	if c.IsZero() {
		return []float64{}
	}
	zi, err := engine.SteadyState(c.b, c.a)
	if err != nil {
		// Coefficients keeps b and a the same length.
		return make([]float64, c.Order())
	}
	return zi
}
