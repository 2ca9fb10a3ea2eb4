package filter

import (
	"fmt"
	"math"

	"github.com/Benarrt/FiltFilt/internal/mathutil"
)

const (
	// Kaiser's length estimate: N = (A - 7.95) / (2.285·Δω) + 1
	kaiserLengthOffset = 7.95
	kaiserLengthScale  = 2.285

	// Below this the estimate is meaningless.
	minKaiserAttenuation = 8.0
)

// KaiserOrder estimates the length and β of a Kaiser-windowed FIR whose
// ripple stays attenuationDB below unity in every band.
//
// Parameters:
//
//	attenuationDB: Required stopband attenuation (and pass-band ripple) in dB
//	width: Transition band width normalized to Nyquist, in (0, 1)
//
// The estimate is the smallest length meeting Kaiser's empirical formula.
// The result can be even; callers that need an odd length round it up.
func KaiserOrder(attenuationDB, width float64) (numTaps int, beta float64, err error) {
	if math.IsNaN(attenuationDB) || attenuationDB < minKaiserAttenuation {
		return 0, 0, fmt.Errorf("attenuation too small: %f dB (minimum %.0f)", attenuationDB, minKaiserAttenuation)
	}
	if !(width > 0 && width < 1) {
		return 0, 0, fmt.Errorf("invalid transition width: %f (must be in (0, 1))", width)
	}

	n := (attenuationDB-kaiserLengthOffset)/(kaiserLengthScale*math.Pi*width) + 1
	numTaps = int(math.Ceil(n))
	if numTaps > maxFilterTaps {
		return 0, 0, fmt.Errorf("filter too long: %d taps (maximum %d)", numTaps, maxFilterTaps)
	}

	return numTaps, mathutil.KaiserBeta(attenuationDB), nil
}

// KaiserAttenuation is the inverse of KaiserOrder: the attenuation in dB a
// Kaiser design of numTaps achieves over a transition of width (normalized
// to Nyquist).
func KaiserAttenuation(numTaps int, width float64) float64 {
	return kaiserLengthScale*float64(numTaps-1)*math.Pi*width + kaiserLengthOffset
}
