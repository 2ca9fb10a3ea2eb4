package engine

import (
	"fmt"

	"github.com/Benarrt/FiltFilt/internal/simdops"
)

// PadType selects how a signal is extended past its edges before filtering.
type PadType int

const (
	// PadOdd reflects the signal about each edge sample and negates it:
	// x[0] - (x[n] - x[0]). Preserves value and slope at the edges.
	PadOdd PadType = iota
	// PadEven mirrors the signal about each edge sample.
	PadEven
	// PadConstant repeats the edge sample.
	PadConstant
	// PadNone applies no extension.
	PadNone
)

var padNames = map[PadType]string{
	PadOdd:      "odd",
	PadEven:     "even",
	PadConstant: "constant",
	PadNone:     "none",
}

// String returns the lowercase name of the pad type.
func (p PadType) String() string {
	if name, ok := padNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PadType(%d)", int(p))
}

// ParsePadType maps a name back to its PadType.
func ParsePadType(name string) (PadType, error) {
	for p, n := range padNames {
		if n == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown pad type %q", name)
}

// Extend returns x with n samples of extension on each side.
// The caller guarantees 0 <= n < len(x); n == 0 or PadNone returns a copy.
func Extend[F simdops.Float](x []F, n int, pad PadType) []F {
	if n <= 0 || pad == PadNone {
		out := make([]F, len(x))
		copy(out, x)
		return out
	}

	size := len(x)
	out := make([]F, size+2*n)
	copy(out[n:], x)

	first, last := x[0], x[size-1]
	for i := range n {
		// Distance from the edge sample, 1..n.
		d := n - i
		left, right := x[d], x[size-1-d]
		switch pad {
		case PadOdd:
			out[i] = oddReflectionScale*first - left
			out[n+size+d-1] = oddReflectionScale*last - right
		case PadEven:
			out[i] = left
			out[n+size+d-1] = right
		case PadConstant:
			out[i] = first
			out[n+size+d-1] = last
		}
	}
	return out
}
