package engine

import (
	"errors"
	"fmt"

	"github.com/Benarrt/FiltFilt/internal/simdops"
)

// ErrStateLength is returned when the initial state does not have one
// element per filter delay.
var ErrStateLength = errors.New("initial state length does not match filter order")

// Filter runs x once through the normalized filter (b, a) in transposed
// direct form II:
//
//	y[n]     = b[0]·x[n] + z[0]
//	z[j-1]   = b[j]·x[n] + z[j] - a[j]·y[n]     for 1 <= j < order
//	z[order-1] = b[order]·x[n] - a[order]·y[n]
//
// b and a must already be normalized (equal length, a[0] == 1). zi is the
// initial state of length order (nil means zero state); it is not modified.
// Filter returns the output and the final state.
func Filter[F simdops.Float](b, a, x, zi []F) (y, zf []F, err error) {
	order := len(b) - 1
	if len(a) != len(b) || order < 0 {
		return nil, nil, fmt.Errorf("coefficient length mismatch: len(b)=%d, len(a)=%d", len(b), len(a))
	}

	z := make([]F, order)
	if zi != nil {
		if len(zi) != order {
			return nil, nil, fmt.Errorf("%w: got %d, want %d", ErrStateLength, len(zi), order)
		}
		copy(z, zi)
	}

	y = make([]F, len(x))
	switch order {
	case 0:
		simdops.For[F]().Scale(y, x, b[0])
	case 1:
		filterOrder1(b, a, x, y, z)
	case 2:
		filterOrder2(b, a, x, y, z)
	default:
		filterGeneric(b, a, x, y, z)
	}
	return y, z, nil
}

func filterOrder1[F simdops.Float](b, a, x, y, z []F) {
	b0, b1, a1 := b[0], b[1], a[1]
	z0 := z[0]
	for n, xn := range x {
		yn := b0*xn + z0
		z0 = b1*xn - a1*yn
		y[n] = yn
	}
	z[0] = z0
}

func filterOrder2[F simdops.Float](b, a, x, y, z []F) {
	b0, b1, b2 := b[0], b[1], b[2]
	a1, a2 := a[1], a[2]
	z0, z1 := z[0], z[1]
	for n, xn := range x {
		yn := b0*xn + z0
		z0 = b1*xn + z1 - a1*yn
		z1 = b2*xn - a2*yn
		y[n] = yn
	}
	z[0], z[1] = z0, z1
}

func filterGeneric[F simdops.Float](b, a, x, y, z []F) {
	order := len(b) - 1
	b0 := b[0]
	for n, xn := range x {
		yn := b0*xn + z[0]
		for j := 1; j < order; j++ {
			z[j-1] = b[j]*xn + z[j] - a[j]*yn
		}
		z[order-1] = b[order]*xn - a[order]*yn
		y[n] = yn
	}
}

// filterFIRSettled filters x by the FIR kernel b as if x[0] had been
// applied forever before the first sample, which is the state the
// steady-state initial conditions scaled by x[0] describe. Long float64
// kernels go through overlap-save FFT blocks; otherwise the history is
// materialized as order copies of x[0] and the output is a valid
// correlation with the reversed kernel.
func filterFIRSettled[F simdops.Float](b, x []F) []F {
	order := len(b) - 1
	y := make([]F, len(x))
	if len(x) == 0 {
		return y
	}

	if len(b) >= minKernelForFFT {
		if y64, ok := any(y).([]float64); ok {
			newFFTFIR(any(b).([]float64)).filterSettled(y64, any(x).([]float64))
			return y
		}
	}

	signal := make([]F, order+len(x))
	for i := range order {
		signal[i] = x[0]
	}
	copy(signal[order:], x)

	kernel := make([]F, len(b))
	for i, v := range b {
		kernel[order-i] = v
	}

	simdops.For[F]().ConvolveValid(y, signal, kernel)
	return y
}
