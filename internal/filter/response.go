package filter

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// FilterResponse holds the frequency response of a filter.
type FilterResponse struct {
	// Frequencies at which response was calculated (normalized, 0 to 0.5 of the sample rate)
	Frequencies []float64

	// Magnitude response at each frequency (linear scale)
	Magnitude []float64

	// Phase response at each frequency (radians)
	Phase []float64
}

// Response evaluates H(e^jω) = B(e^jω) / A(e^jω) at one angular frequency
// ω in radians per sample. An empty a is treated as [1].
func Response(b, a []float64, omega float64) complex128 {
	num := polyval(b, omega)
	if len(a) == 0 {
		return num
	}
	return num / polyval(a, omega)
}

// polyval computes Σ c[n]·e^(-jωn).
func polyval(c []float64, omega float64) complex128 {
	var re, im float64
	for n, v := range c {
		angle := omega * float64(n)
		re += v * math.Cos(angle)
		im -= v * math.Sin(angle)
	}
	return complex(re, im)
}

// ComputeFrequencyResponse evaluates the response of (b, a) at numPoints
// frequencies evenly spaced from DC up to (but excluding) Nyquist.
// numPoints <= 0 selects 512.
func ComputeFrequencyResponse(b, a []float64, numPoints int) FilterResponse {
	if numPoints <= 0 {
		numPoints = defaultResponsePoints
	}

	h := Freqz(b, a, numPoints)

	response := FilterResponse{
		Frequencies: make([]float64, numPoints),
		Magnitude:   make([]float64, numPoints),
		Phase:       make([]float64, numPoints),
	}
	for k, v := range h {
		response.Frequencies[k] = float64(k) / float64(halfDivisor*numPoints)
		response.Magnitude[k] = cmplx.Abs(v)
		response.Phase[k] = cmplx.Phase(v)
	}
	return response
}

// Freqz returns the response of (b, a) at ω_k = π·k/n for k in [0, n).
//
// When both coefficient vectors fit in 2n samples the response is read off
// a single real FFT of each; longer vectors fall back to direct evaluation.
func Freqz(b, a []float64, n int) []complex128 {
	if n <= 0 {
		return []complex128{}
	}

	fftSize := halfDivisor * n
	out := make([]complex128, n)

	if len(b) > fftSize || len(a) > fftSize {
		for k := range out {
			out[k] = Response(b, a, math.Pi*float64(k)/float64(n))
		}
		return out
	}

	fft := fourier.NewFFT(fftSize)
	num := fft.Coefficients(nil, zeroPadded(b, fftSize))

	var den []complex128
	if len(a) > 0 {
		den = fft.Coefficients(nil, zeroPadded(a, fftSize))
	}

	for k := range out {
		if den == nil {
			out[k] = num[k]
			continue
		}
		out[k] = num[k] / den[k]
	}
	return out
}

func zeroPadded(c []float64, size int) []float64 {
	padded := make([]float64, size)
	copy(padded, c)
	return padded
}

// MagnitudeDB converts linear magnitude to decibels.
func MagnitudeDB(magnitude float64) float64 {
	const (
		minMagnitude = 1e-10 // Avoid log(0)
		dbMultiplier = 20.0  // 20*log10 for magnitude
	)

	if magnitude < minMagnitude {
		magnitude = minMagnitude
	}
	return dbMultiplier * math.Log10(magnitude)
}
