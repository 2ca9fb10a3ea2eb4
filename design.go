package filtfilt

import (
	"fmt"
	"math"

	"github.com/Benarrt/FiltFilt/internal/filter"
	"github.com/Benarrt/FiltFilt/internal/mathutil"
)

// WindowType selects the taper applied to the ideal impulse response.
type WindowType = filter.WindowType

// Supported design windows.
const (
	WindowHamming     = filter.WindowHamming
	WindowHann        = filter.WindowHann
	WindowBlackman    = filter.WindowBlackman
	WindowRectangular = filter.WindowRectangular
	WindowKaiser      = filter.WindowKaiser
)

// ParseWindowType converts a window name such as "hamming" or "kaiser".
func ParseWindowType(name string) (WindowType, error) {
	return filter.ParseWindowType(name)
}

// FilterSpec describes a band-pass (or, with PassZero, band-stop) FIR
// filter for Design.
type FilterSpec struct {
	// NumTaps is the filter length. Must be odd and at least 3.
	NumTaps int

	// Low and High are the band edges in Hz, 0 < Low < High < SampleRate/2.
	Low  float64
	High float64

	// PassZero passes DC, turning the band-pass into a band-stop.
	PassZero bool

	// SampleRate in Hz.
	SampleRate float64

	// Window defaults to Hamming.
	Window WindowType

	// KaiserBeta is the shape parameter for WindowKaiser.
	KaiserBeta float64
}

// Nyquist returns half the sample rate.
func (s FilterSpec) Nyquist() float64 {
	return s.SampleRate / halfDivisor
}

// Validate checks the specification without designing the filter.
func (s FilterSpec) Validate() error {
	if s.NumTaps < minDesignTaps {
		return fmt.Errorf("%w: need at least %d taps, got %d", ErrInvalidSpecification, minDesignTaps, s.NumTaps)
	}
	if s.NumTaps > maxDesignTaps {
		return fmt.Errorf("%w: at most %d taps supported, got %d", ErrInvalidSpecification, maxDesignTaps, s.NumTaps)
	}
	if s.NumTaps%2 == 0 {
		return fmt.Errorf("%w: number of taps must be odd, got %d", ErrInvalidSpecification, s.NumTaps)
	}
	if !(s.SampleRate > 0) || math.IsInf(s.SampleRate, 0) {
		return fmt.Errorf("%w: sample rate must be positive, got %v", ErrInvalidSpecification, s.SampleRate)
	}

	nyq := s.Nyquist()
	if !(s.Low > 0 && s.Low < nyq) {
		return fmt.Errorf("%w: low edge %v Hz outside (0, %v)", ErrInvalidSpecification, s.Low, nyq)
	}
	if !(s.High > 0 && s.High < nyq) {
		return fmt.Errorf("%w: high edge %v Hz outside (0, %v)", ErrInvalidSpecification, s.High, nyq)
	}
	if s.Low >= s.High {
		return fmt.Errorf("%w: low edge %v Hz must be below high edge %v Hz", ErrInvalidSpecification, s.Low, s.High)
	}
	return nil
}

// Design builds a linear-phase FIR filter by the windowed-sinc method.
//
// The ideal band-pass [Low, High] (or its complement when PassZero is set)
// is truncated to NumTaps samples centered on (NumTaps-1)/2, tapered by the
// window and scaled to unit gain at the center of the first pass band: DC
// for a band-stop, (Low+High)/2 for a band-pass.
func Design(spec FilterSpec) (Coefficients, error) {
	if err := spec.Validate(); err != nil {
		return Coefficients{}, err
	}

	nyq := spec.Nyquist()
	return designFIR(filter.FirWinParams{
		NumTaps:  spec.NumTaps,
		Cutoffs:  []float64{spec.Low / nyq, spec.High / nyq},
		PassZero: spec.PassZero,
		Window:   spec.Window,
		Beta:     spec.KaiserBeta,
	})
}

func designFIR(params filter.FirWinParams) (Coefficients, error) {
	taps, err := filter.FirWin(params)
	if err != nil {
		return Coefficients{}, fmt.Errorf("%w: %w", ErrInvalidSpecification, err)
	}
	return FIR(taps)
}

// KaiserBetaForAttenuation returns the Kaiser window shape parameter that
// reaches the given stopband attenuation in dB.
func KaiserBetaForAttenuation(attenuationDB float64) float64 {
	return mathutil.KaiserBeta(attenuationDB)
}

// WithKaiser returns a copy of s using a Kaiser window whose length and β
// are estimated so that the stop bands reach attenuationDB with transition
// bands transitionHz wide. Even length estimates are rounded up to odd.
func (s FilterSpec) WithKaiser(attenuationDB, transitionHz float64) (FilterSpec, error) {
	if !(s.SampleRate > 0) {
		return s, fmt.Errorf("%w: sample rate must be positive, got %v", ErrInvalidSpecification, s.SampleRate)
	}

	numTaps, beta, err := filter.KaiserOrder(attenuationDB, transitionHz/s.Nyquist())
	if err != nil {
		return s, fmt.Errorf("%w: %w", ErrInvalidSpecification, err)
	}
	if numTaps%2 == 0 {
		numTaps++
	}

	s.NumTaps = max(numTaps, minDesignTaps)
	s.Window = WindowKaiser
	s.KaiserBeta = beta
	return s, nil
}
