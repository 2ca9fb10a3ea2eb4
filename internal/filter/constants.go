package filter

import "math"

const (
	// Filter design constants
	minFilterTaps = 1
	maxFilterTaps = 8191

	// Gain normalization refuses kernels with (near) zero response at the
	// normalization frequency.
	gainZeroThreshold = 1e-12

	halfDivisor = 2.0
	twoPi       = 2 * math.Pi

	defaultResponsePoints = 512
)

// Generalized cosine window coefficients.
const (
	hammingA0 = 0.54
	hammingA1 = 0.46

	hannA0 = 0.5

	blackmanA0 = 0.42
	blackmanA1 = 0.5
	blackmanA2 = 0.08
)
