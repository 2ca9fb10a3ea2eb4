package mathutil

// Bessel series constants
const (
	besselHalfDivisor     = 2.0
	besselMaxTerms        = 500   // Upper bound on series terms (β ≤ 40 needs < 60)
	besselRelativeEpsilon = 1e-17 // Stop once a term no longer moves the sum
)

// Kaiser window formula constants
// From Kaiser & Schafer's empirical formulas
const (
	kaiserAttHigh   = 50.0 // High attenuation threshold (dB)
	kaiserAttMedium = 21.0 // Medium attenuation threshold (dB)

	kaiserBetaHighCoeff  = 0.1102
	kaiserBetaHighOffset = 8.7

	kaiserBetaMediumCoeff1 = 0.5842
	kaiserBetaMediumPower  = 0.4
	kaiserBetaMediumCoeff2 = 0.07886
)

// Sinc function constants
const (
	sincZeroThreshold = 1e-12
)
