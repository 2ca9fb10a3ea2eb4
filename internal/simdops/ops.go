// Package simdops provides generic SIMD operations for float32 and float64 types.
// The filter engine is written once against Ops[F] and runs at either precision.
package simdops

import (
	"github.com/tphakala/simd/f32"
	"github.com/tphakala/simd/f64"
)

// Float is the type constraint for supported floating-point types.
type Float interface {
	float32 | float64
}

// Ops provides SIMD-accelerated operations for type F.
type Ops[F Float] struct {
	// ConvolveValid computes dst[i] = Σ signal[i+j]·kernel[j] for every
	// position where the kernel fits entirely inside the signal.
	ConvolveValid func(dst, signal, kernel []F)

	// Scale multiplies each element by scalar s: dst[i] = a[i] * s
	Scale func(dst, a []F, s F)
}

var (
	ops32 = Ops[float32]{
		ConvolveValid: f32.ConvolveValid,
		Scale:         f32.Scale,
	}
	ops64 = Ops[float64]{
		ConvolveValid: f64.ConvolveValid,
		Scale:         f64.Scale,
	}
)

// For returns the Ops instance for type F.
func For[F Float]() *Ops[F] {
	var zero F
	switch any(zero).(type) {
	case float32:
		ops, ok := any(&ops32).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float32")
		}
		return ops
	case float64:
		ops, ok := any(&ops64).(*Ops[F])
		if !ok {
			panic("simdops: type assertion failed for float64")
		}
		return ops
	default:
		panic("simdops: unsupported float type")
	}
}

// FromFloat64 narrows (or copies) a float64 slice into a new slice of F.
func FromFloat64[F Float](src []float64) []F {
	out := make([]F, len(src))
	for i, v := range src {
		out[i] = F(v)
	}
	return out
}
