package main

import (
	"fmt"
	"io"
	"math"
	"math/cmplx"
	"os"

	filtfilt "github.com/Benarrt/FiltFilt"
	"github.com/Benarrt/FiltFilt/internal/filter"
)

const (
	defaultKaiserBeta = 5.0

	// Kaiser length estimate for the demo band
	kaiserAttenuationDB = 40.0
	kaiserTransitionHz  = 0.5

	// Probe frequencies
	stopbandProbeHz = 10.0 // Must be rejected by at least 20 dB
	passbandSteps   = 64   // Points across the pass-band for ripple

	// Display limits
	responsePoints = 16 // Rows of the response table
)

func main() {
	if err := analyze(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func analyze(w io.Writer) error {
	fmt.Fprintln(w, "=== Analyzing Band-Pass Gain ===")

	nyquist := filtfilt.DemoSampleRate / 2
	fmt.Fprintf(w, "Design: %d taps, %.2f-%.2f Hz at %.1f Hz\n\n",
		filtfilt.DemoNumTaps, filtfilt.DemoLowHz, filtfilt.DemoHighHz, filtfilt.DemoSampleRate)

	windows := []filter.WindowType{
		filter.WindowHamming,
		filter.WindowHann,
		filter.WindowBlackman,
		filter.WindowRectangular,
		filter.WindowKaiser,
	}

	fmt.Fprintf(w, "%-12s %12s %12s %12s %12s %14s\n",
		"window", "DC gain", "center", "ripple dB", "10 Hz dB", "10 Hz x2 dB")

	var hamming []float64
	for _, win := range windows {
		taps, err := filter.FirWin(filter.FirWinParams{
			NumTaps: filtfilt.DemoNumTaps,
			Cutoffs: []float64{filtfilt.DemoLowHz / nyquist, filtfilt.DemoHighHz / nyquist},
			Window:  win,
			Beta:    defaultKaiserBeta,
		})
		if err != nil {
			return fmt.Errorf("design %s: %w", win, err)
		}
		if win == filter.WindowHamming {
			hamming = taps
		}

		var dc float64
		for _, h := range taps {
			dc += h
		}

		center := gainAt(taps, (filtfilt.DemoLowHz+filtfilt.DemoHighHz)/2)
		stop := filter.MagnitudeDB(gainAt(taps, stopbandProbeHz))

		// Zero-phase filtering applies |H| twice.
		fmt.Fprintf(w, "%-12s %12.6f %12.9f %12.4f %12.2f %14.2f\n",
			win, dc, center, passbandRipple(taps), stop, 2*stop)
	}

	fmt.Fprintf(w, "\nHamming response (%d points):\n", responsePoints)
	resp := filter.ComputeFrequencyResponse(hamming, []float64{1}, responsePoints)
	for i, f := range resp.Frequencies {
		fmt.Fprintf(w, "  %6.3f Hz: %8.2f dB\n", f*filtfilt.DemoSampleRate, filter.MagnitudeDB(resp.Magnitude[i]))
	}

	c, err := filtfilt.FIR(hamming)
	if err != nil {
		return err
	}
	zi := filtfilt.SteadyState(c)
	fmt.Fprintf(w, "\nSteady-state zi[0] (sum of taps after the first): %.10f\n", zi[0])
	fmt.Fprintf(w, "Minimum signal length for filtfilt: %d samples\n", c.MinSignalLength())

	width := kaiserTransitionHz / nyquist
	numTaps, beta, err := filter.KaiserOrder(kaiserAttenuationDB, width)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "\nKaiser estimate for %.0f dB over %.2f Hz: %d taps, beta %.4f (%.2f dB achievable)\n",
		kaiserAttenuationDB, kaiserTransitionHz, numTaps, beta, filter.KaiserAttenuation(numTaps, width))
	return nil
}

// gainAt returns |H| at freqHz.
func gainAt(taps []float64, freqHz float64) float64 {
	omega := 2 * math.Pi * freqHz / filtfilt.DemoSampleRate
	return cmplx.Abs(filter.Response(taps, nil, omega))
}

// passbandRipple is the peak-to-peak gain variation in dB between the band
// edges, excluding the outer 10% where the transition bands intrude.
func passbandRipple(taps []float64) float64 {
	span := filtfilt.DemoHighHz - filtfilt.DemoLowHz
	lo := filtfilt.DemoLowHz + span/10
	hi := filtfilt.DemoHighHz - span/10

	minG, maxG := math.Inf(1), math.Inf(-1)
	for i := range passbandSteps + 1 {
		g := gainAt(taps, lo+(hi-lo)*float64(i)/passbandSteps)
		minG = min(minG, g)
		maxG = max(maxG, g)
	}
	return filter.MagnitudeDB(maxG) - filter.MagnitudeDB(minG)
}
