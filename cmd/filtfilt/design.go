package main

import (
	"fmt"

	filtfilt "github.com/Benarrt/FiltFilt"
	"github.com/Benarrt/FiltFilt/internal/report"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newDesignCmd(a *app) *cobra.Command {
	var points int

	cmd := &cobra.Command{
		Use:   "design",
		Short: "Design a windowed-sinc FIR filter and save its coefficients",
		Long: `Design a band-pass (or band-stop with --pass-zero) FIR filter and
write its numerator and denominator to the coefficient files. The
magnitude response is printed at evenly spaced frequencies.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := a.designFilter()
			if err != nil {
				return err
			}

			r := report.Report{Filter: c.String()}
			if points > 0 {
				r.Response = responsePoints(c, a.cfg.Design.SampleRate, points)
			}
			return report.Render(cmd.OutOrStdout(), a.format, r)
		},
	}

	fs := cmd.Flags()
	addDesignFlags(fs)
	addCoefficientFlags(fs)
	fs.IntVar(&points, "points", defaultResponsePoints, "response points to print (0 disables)")
	return cmd
}

// designFilter designs the configured filter and saves it to the
// coefficient files.
func (a *app) designFilter() (filtfilt.Coefficients, error) {
	spec, err := a.cfg.Spec()
	if err != nil {
		return filtfilt.Coefficients{}, err
	}

	c, err := filtfilt.Design(spec)
	if err != nil {
		return filtfilt.Coefficients{}, err
	}

	if err := filtfilt.SaveCoefficients(a.cfg.Files.BCoeff, a.cfg.Files.ACoeff, c); err != nil {
		return filtfilt.Coefficients{}, fmt.Errorf("failed to save coefficients: %w", err)
	}

	a.logger.Info("designed filter",
		zap.Int("taps", spec.NumTaps),
		zap.Float64("low_hz", spec.Low),
		zap.Float64("high_hz", spec.High),
		zap.Float64("sample_rate", spec.SampleRate),
		zap.Stringer("window", spec.Window),
		zap.String("b_coeff", a.cfg.Files.BCoeff),
		zap.String("a_coeff", a.cfg.Files.ACoeff))
	return c, nil
}

// responsePoints samples the magnitude response from DC up to Nyquist.
func responsePoints(c filtfilt.Coefficients, sampleRate float64, n int) []report.ResponsePoint {
	resp := c.FrequencyResponse(sampleRate, n)
	points := make([]report.ResponsePoint, len(resp.Frequencies))
	for i, f := range resp.Frequencies {
		points[i] = report.ResponsePoint{
			FrequencyHz: f,
			GainDB:      c.MagnitudeDB(f, sampleRate),
		}
	}
	return points
}
