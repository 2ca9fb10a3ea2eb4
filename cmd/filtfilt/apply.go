package main

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	filtfilt "github.com/Benarrt/FiltFilt"
	"github.com/Benarrt/FiltFilt/internal/bench"
	"github.com/Benarrt/FiltFilt/internal/report"
	"github.com/Benarrt/FiltFilt/internal/signalio"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type applyOptions struct {
	redesign  bool
	reference string
}

func newApplyCmd(a *app) *cobra.Command {
	var opts applyOptions

	cmd := &cobra.Command{
		Use:   "apply [flags] input",
		Short: "Filter a signal forward and backward",
		Long: `Run a text column or every channel of a WAV file through the filter
stored in the coefficient files. When the files do not exist (or with
--redesign) the configured filter is designed and saved first.

The filtered text signal is written one value per line; WAV input is
written back as WAV with the same rate and bit depth.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := a.apply(args[0], opts)
			if err != nil {
				return err
			}
			return report.Render(cmd.OutOrStdout(), a.format, r)
		},
	}

	flags := cmd.Flags()
	addDesignFlags(flags)
	addCoefficientFlags(flags)
	addColumnFlags(flags)
	flags.String("pad", defaultPadType, "edge padding: odd, even, constant, none")
	flags.Int("pad-len", defaultPadLen, "padding length (-1 for 3 * filter length)")
	flags.Bool("parallel", true, "filter WAV channels concurrently")
	flags.String("precision", defaultPrecision, "sample precision: float64 or float32")
	flags.String("out-file", defaultOutputPath, "output file")
	flags.Int("runs", defaultRuns, "number of timed filter runs")
	flags.BoolVar(&opts.redesign, "redesign", false, "design the filter even if coefficient files exist")
	flags.StringVar(&opts.reference, "reference", "", "reference output to compare against")
	return cmd
}

func (a *app) apply(input string, opts applyOptions) (report.Report, error) {
	c, err := a.coefficients(opts.redesign)
	if err != nil {
		return report.Report{}, err
	}

	filterOpts, err := a.cfg.Options()
	if err != nil {
		return report.Report{}, err
	}

	channels, audio, err := a.readSignal(input)
	if err != nil {
		return report.Report{}, err
	}
	a.logger.Debug("read signal",
		zap.String("path", input),
		zap.Int("channels", len(channels)),
		zap.Int("samples", len(channels[0])))

	var filtered [][]float64
	stats, err := bench.Run(a.cfg.Bench.Runs, func() error {
		var err error
		filtered, err = a.filterChannels(c, channels, filterOpts)
		return err
	})
	if err != nil {
		return report.Report{}, err
	}
	a.logger.Info("filtered signal",
		zap.Stringer("filter", c),
		zap.Int("samples", len(filtered[0])),
		zap.Duration("mean", stats.Mean))

	if err := a.writeSignal(filtered, audio); err != nil {
		return report.Report{}, err
	}

	r := report.Report{
		Filter:  c.String(),
		Samples: len(filtered[0]),
		Timing:  &stats,
	}
	if opts.reference != "" {
		ref, err := signalio.ReadColumnFile(opts.reference, signalio.ColumnOptions{Delimiter: a.cfg.DelimiterRune()})
		if err != nil {
			return report.Report{}, err
		}
		cmp, err := report.Compare(filtered[0], ref)
		if err != nil {
			return report.Report{}, err
		}
		r.Comparison = &cmp
	}
	return r, nil
}

// coefficients loads the coefficient files, designing them when missing.
func (a *app) coefficients(redesign bool) (filtfilt.Coefficients, error) {
	if !redesign {
		c, err := filtfilt.LoadCoefficients(a.cfg.Files.BCoeff, a.cfg.Files.ACoeff)
		if err == nil {
			a.logger.Debug("loaded coefficients", zap.String("b_coeff", a.cfg.Files.BCoeff), zap.Stringer("filter", c))
			return c, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return filtfilt.Coefficients{}, fmt.Errorf("failed to load coefficients: %w", err)
		}
	}
	return a.designFilter()
}

// readSignal returns the channels of input. WAV files also return their
// format so the output can match it.
func (a *app) readSignal(input string) ([][]float64, *signalio.Audio, error) {
	if isWAV(input) {
		audio, err := signalio.ReadWAV(input)
		if err != nil {
			return nil, nil, err
		}
		if audio.Frames() == 0 {
			return nil, nil, fmt.Errorf("%s: %w", input, signalio.ErrNoSamples)
		}
		return audio.Channels, audio, nil
	}

	x, err := signalio.ReadColumnFile(input, signalio.ColumnOptions{
		Delimiter: a.cfg.DelimiterRune(),
		Column:    a.cfg.Files.Column,
		SkipRows:  a.cfg.Files.SkipRows,
	})
	if err != nil {
		return nil, nil, err
	}
	return [][]float64{x}, nil, nil
}

func (a *app) filterChannels(c filtfilt.Coefficients, channels [][]float64, opts []filtfilt.Option) ([][]float64, error) {
	if a.cfg.Filter.Precision != precisionFloat32 {
		return filtfilt.FiltFiltMulti(c, channels, a.cfg.Filter.Parallel, opts...)
	}

	out := make([][]float64, len(channels))
	for ch, x := range channels {
		x32 := make([]float32, len(x))
		for i, v := range x {
			x32[i] = float32(v)
		}
		y32, err := filtfilt.FiltFiltFloat32(c, x32, opts...)
		if err != nil {
			return nil, fmt.Errorf("channel %d: %w", ch, err)
		}
		out[ch] = make([]float64, len(y32))
		for i, v := range y32 {
			out[ch][i] = float64(v)
		}
	}
	return out, nil
}

func (a *app) writeSignal(channels [][]float64, audio *signalio.Audio) error {
	path := a.cfg.Files.Output
	if audio != nil {
		return signalio.WriteWAV(path, &signalio.Audio{
			SampleRate: audio.SampleRate,
			BitDepth:   audio.BitDepth,
			Channels:   channels,
		})
	}
	return signalio.WriteColumnsFile(path, a.cfg.DelimiterRune(), nil, channels[0])
}

func isWAV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), wavExtension)
}
