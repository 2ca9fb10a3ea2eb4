// Package filtfilt provides zero-phase digital filtering in pure Go.
//
// A linear filter B(z)/A(z) is applied to a finite signal once forward and
// once backward. The two phase shifts cancel, so features in the output
// line up in time with the input, and the magnitude response is the square
// of the filter's. Edge effects are reduced by extending the signal before
// filtering and by starting each pass from the filter's steady state.
//
// # Features
//
//   - Forward-backward filtering with odd, even, constant or no edge extension
//   - Steady-state initial conditions solved with gonum
//   - Windowed-sinc FIR design (band-pass, band-stop, low-pass, high-pass)
//   - Hamming, Hann, Blackman, rectangular and Kaiser windows
//   - SIMD FIR path via github.com/tphakala/simd, FFT convolution for long kernels
//   - float64 and float32 signals, multi-channel input
//   - Plain-text coefficient files, one value per line
//
// # Quick Start
//
// Design the demo band-pass and filter a signal sampled at 30 Hz:
//
//	c, err := filtfilt.Design(filtfilt.FilterSpec{
//	    NumTaps:    61,
//	    Low:        0.66,
//	    High:       4,
//	    SampleRate: 30,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	y, err := filtfilt.FiltFilt(c, x)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Existing coefficients, for example from another design tool, are wrapped
// with [NewCoefficients]:
//
//	c, err := filtfilt.NewCoefficients(b, a)
//
// # Signal Length
//
// FiltFilt extends the signal by 3·max(len(b), len(a)) samples at each end
// by default, and the signal must be longer than that extension.
// [Coefficients.MinSignalLength] reports the limit; shorter signals fail
// with [ErrSignalTooShort]. [WithPadLen] and [WithPadType] change the
// extension.
//
// # Stability
//
// The denominator is assumed to describe a stable filter. An unstable
// filter is not rejected and produces diverging output.
package filtfilt
