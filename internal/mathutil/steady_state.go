package mathutil

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ErrSingularSystem is returned when the steady-state system has no unique
// solution. This happens when the filter has a pole at z = 1 (sum(a) == 0),
// i.e. the filter has no finite DC response.
var ErrSingularSystem = errors.New("steady-state system is singular")

// SolveSteadyState returns the transposed direct form II state vector zi
// for which a filter (b, a) fed a constant unit input is already at rest.
//
// b and a must have equal length n ≥ 1 and a[0] must be 1. The result has
// length n-1 and solves
//
//	(I - Cᵀ)·zi = b[1:] - a[1:]·b[0]
//
// where C is the companion matrix of a.
func SolveSteadyState(b, a []float64) ([]float64, error) {
	if len(b) != len(a) {
		return nil, fmt.Errorf("coefficient length mismatch: len(b)=%d, len(a)=%d", len(b), len(a))
	}
	k := len(a) - 1
	if k <= 0 {
		return []float64{}, nil
	}

	if IsFIRDenominator(a) {
		return firSteadyState(b), nil
	}
	return solveDense(b, a)
}

// solveDense solves the steady-state system with an LU factorization.
func solveDense(b, a []float64) ([]float64, error) {
	k := len(a) - 1
	m := mat.NewDense(k, k, nil)
	for i := range k {
		m.Set(i, i, 1)
		if i+1 < k {
			m.Set(i, i+1, -1)
		}
		// First column of I - Cᵀ carries the feedback taps.
		m.Set(i, 0, m.At(i, 0)+a[i+1])
	}

	rhs := make([]float64, k)
	for i := range k {
		rhs[i] = b[i+1] - a[i+1]*b[0]
	}

	var zi mat.VecDense
	if err := zi.SolveVec(m, mat.NewVecDense(k, rhs)); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) || math.IsInf(float64(cond), 1) {
			return nil, fmt.Errorf("%w: %v", ErrSingularSystem, err)
		}
		// Ill-conditioned but solved; the result is still usable.
	}

	out := make([]float64, k)
	for i := range k {
		v := zi.AtVec(i)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, ErrSingularSystem
		}
		out[i] = v
	}
	return out, nil
}

// firSteadyState is the closed form for a = [1, 0, ..., 0]:
// zi[i] = b[i+1] + b[i+2] + ... + b[n-1].
func firSteadyState(b []float64) []float64 {
	k := len(b) - 1
	zi := make([]float64, k)
	var acc float64
	for i := k - 1; i >= 0; i-- {
		acc += b[i+1]
		zi[i] = acc
	}
	return zi
}

// IsFIRDenominator reports whether every coefficient after a[0] is zero.
func IsFIRDenominator(a []float64) bool {
	for _, v := range a[1:] {
		if v != 0 {
			return false
		}
	}
	return true
}
