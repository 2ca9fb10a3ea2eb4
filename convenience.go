package filtfilt

import (
	"fmt"

	"github.com/Benarrt/FiltFilt/internal/filter"
)

// DemoSpec returns the 61-tap 0.66-4 Hz band-pass at 30 Hz.
func DemoSpec() FilterSpec {
	return FilterSpec{
		NumTaps:    DemoNumTaps,
		Low:        DemoLowHz,
		High:       DemoHighHz,
		SampleRate: DemoSampleRate,
		Window:     WindowHamming,
	}
}

// DesignBandPass designs a Hamming-windowed band-pass between low and high Hz.
func DesignBandPass(numTaps int, low, high, sampleRate float64) (Coefficients, error) {
	return Design(FilterSpec{
		NumTaps:    numTaps,
		Low:        low,
		High:       high,
		SampleRate: sampleRate,
	})
}

// DesignLowPass designs a Hamming-windowed low-pass with unit DC gain.
// Even lengths are allowed.
func DesignLowPass(numTaps int, cutoff, sampleRate float64) (Coefficients, error) {
	return designSingleCutoff(numTaps, cutoff, sampleRate, true)
}

// DesignHighPass designs a Hamming-windowed high-pass with unit gain at
// Nyquist. numTaps must be odd.
func DesignHighPass(numTaps int, cutoff, sampleRate float64) (Coefficients, error) {
	return designSingleCutoff(numTaps, cutoff, sampleRate, false)
}

func designSingleCutoff(numTaps int, cutoff, sampleRate float64, passZero bool) (Coefficients, error) {
	if !(sampleRate > 0) {
		return Coefficients{}, fmt.Errorf("%w: sample rate must be positive, got %v", ErrInvalidSpecification, sampleRate)
	}
	if numTaps > maxDesignTaps {
		return Coefficients{}, fmt.Errorf("%w: at most %d taps supported, got %d", ErrInvalidSpecification, maxDesignTaps, numTaps)
	}

	nyq := sampleRate / halfDivisor
	return designFIR(filter.FirWinParams{
		NumTaps:  numTaps,
		Cutoffs:  []float64{cutoff / nyq},
		PassZero: passZero,
	})
}
