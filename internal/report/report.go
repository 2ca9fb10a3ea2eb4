// Package report compares a filtered signal against a reference and
// renders the result as a text table, JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/Benarrt/FiltFilt/internal/bench"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gopkg.in/yaml.v3"
)

var (
	// ErrLengthMismatch is returned when the signals have different lengths.
	ErrLengthMismatch = errors.New("signal lengths differ")

	// ErrEmptySignal is returned when there is nothing to compare.
	ErrEmptySignal = errors.New("empty signal")
)

// Comparison holds error metrics between an output and a reference signal.
type Comparison struct {
	Samples     int     `json:"samples" yaml:"samples"`
	MaxAbsDiff  float64 `json:"max_abs_diff" yaml:"max_abs_diff"`
	RMSDiff     float64 `json:"rms_diff" yaml:"rms_diff"`
	SNRdB       float64 `json:"snr_db" yaml:"snr_db"`
	Correlation float64 `json:"correlation" yaml:"correlation"`
}

// Compare measures how far output is from reference. SNR treats the
// reference as signal and the difference as noise; identical signals give
// +Inf. Correlation is NaN when either signal is constant.
func Compare(output, reference []float64) (Comparison, error) {
	if len(output) != len(reference) {
		return Comparison{}, fmt.Errorf("%w: output %d, reference %d", ErrLengthMismatch, len(output), len(reference))
	}
	if len(output) == 0 {
		return Comparison{}, ErrEmptySignal
	}

	n := float64(len(output))
	l2 := floats.Distance(output, reference, 2)

	snr := math.Inf(1)
	if l2 > 0 {
		snr = 10 * math.Log10(floats.Dot(reference, reference)/(l2*l2))
	}

	return Comparison{
		Samples:     len(output),
		MaxAbsDiff:  floats.Distance(output, reference, math.Inf(1)),
		RMSDiff:     l2 / math.Sqrt(n),
		SNRdB:       snr,
		Correlation: stat.Correlation(output, reference, nil),
	}, nil
}

// Within reports whether every sample is within tol of the reference.
func (c Comparison) Within(tol float64) bool {
	return c.MaxAbsDiff <= tol
}

// ResponsePoint is one sample of a filter's magnitude response.
type ResponsePoint struct {
	FrequencyHz float64 `json:"frequency_hz" yaml:"frequency_hz"`
	GainDB      float64 `json:"gain_db" yaml:"gain_db"`
}

// Report is the top-level document rendered by the command-line tools.
type Report struct {
	Filter     string          `json:"filter,omitempty" yaml:"filter,omitempty"`
	Samples    int             `json:"samples,omitempty" yaml:"samples,omitempty"`
	Comparison *Comparison     `json:"comparison,omitempty" yaml:"comparison,omitempty"`
	Timing     *bench.Stats    `json:"timing,omitempty" yaml:"timing,omitempty"`
	Response   []ResponsePoint `json:"response,omitempty" yaml:"response,omitempty"`
}

// Format selects the rendering of a Report.
type Format int

const (
	FormatTable Format = iota
	FormatJSON
	FormatYAML
)

// ParseFormat converts "table", "json" or "yaml".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "", "table", "text":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return 0, fmt.Errorf("unknown report format %q", name)
	}
}

// Render writes r to w in the given format.
func Render(w io.Writer, format Format, r Report) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(jsonSafe(r))
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case FormatTable:
		return renderTable(w, r)
	default:
		return fmt.Errorf("unknown report format %d", format)
	}
}

func renderTable(w io.Writer, r Report) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if r.Filter != "" {
		fmt.Fprintf(tw, "filter\t%s\n", r.Filter)
	}
	if r.Samples > 0 {
		fmt.Fprintf(tw, "samples\t%d\n", r.Samples)
	}
	if c := r.Comparison; c != nil {
		fmt.Fprintf(tw, "max abs diff\t%.6g\n", c.MaxAbsDiff)
		fmt.Fprintf(tw, "rms diff\t%.6g\n", c.RMSDiff)
		fmt.Fprintf(tw, "snr (dB)\t%.2f\n", c.SNRdB)
		fmt.Fprintf(tw, "correlation\t%.6f\n", c.Correlation)
	}
	if s := r.Timing; s != nil {
		fmt.Fprintf(tw, "runs\t%d\n", s.Runs)
		fmt.Fprintf(tw, "min\t%v\n", s.Min)
		fmt.Fprintf(tw, "mean\t%v\n", s.Mean)
		fmt.Fprintf(tw, "max\t%v\n", s.Max)
	}
	if len(r.Response) > 0 {
		fmt.Fprintf(tw, "\nfreq (Hz)\tgain (dB)\n")
		for _, p := range r.Response {
			fmt.Fprintf(tw, "%.4g\t%.2f\n", p.FrequencyHz, p.GainDB)
		}
	}
	return tw.Flush()
}

// jsonSafe replaces values encoding/json rejects. Identical signals have
// infinite SNR and constant ones an undefined correlation.
func jsonSafe(r Report) Report {
	if r.Comparison == nil {
		return r
	}
	c := *r.Comparison
	if math.IsInf(c.SNRdB, 1) {
		c.SNRdB = math.MaxFloat64
	}
	if math.IsNaN(c.Correlation) {
		c.Correlation = 0
	}
	r.Comparison = &c
	return r
}
