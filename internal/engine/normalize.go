// Package engine implements single-pass and zero-phase (forward-backward)
// filtering of finite signals by a rational transfer function B(z)/A(z).
package engine

import (
	"errors"
	"fmt"
	"math"

	"github.com/tphakala/simd/f64"
)

var (
	// ErrEmptyCoefficients is returned when b or a has no elements.
	ErrEmptyCoefficients = errors.New("coefficient vector is empty")

	// ErrZeroLeadingDenominator is returned when a[0] == 0.
	ErrZeroLeadingDenominator = errors.New("leading denominator coefficient is zero")

	// ErrNonFiniteCoefficient is returned when a coefficient is NaN or ±Inf.
	ErrNonFiniteCoefficient = errors.New("coefficient is not finite")
)

// Normalize returns copies of b and a zero-padded to a common length and
// divided by a[0], so that the returned denominator starts with 1.
func Normalize(b, a []float64) (nb, na []float64, err error) {
	if len(b) == 0 || len(a) == 0 {
		return nil, nil, ErrEmptyCoefficients
	}
	if a[0] == 0 {
		return nil, nil, ErrZeroLeadingDenominator
	}
	if i := firstNonFinite(b); i >= 0 {
		return nil, nil, fmt.Errorf("%w: b[%d]=%v", ErrNonFiniteCoefficient, i, b[i])
	}
	if i := firstNonFinite(a); i >= 0 {
		return nil, nil, fmt.Errorf("%w: a[%d]=%v", ErrNonFiniteCoefficient, i, a[i])
	}

	n := max(len(b), len(a))
	nb = make([]float64, n)
	na = make([]float64, n)
	copy(nb, b)
	copy(na, a)

	if a0 := na[0]; a0 != 1 {
		inv := 1 / a0
		f64.Scale(nb, nb, inv)
		f64.Scale(na, na, inv)
		na[0] = 1
	}
	return nb, na, nil
}

func firstNonFinite(c []float64) int {
	for i, v := range c {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return i
		}
	}
	return -1
}
