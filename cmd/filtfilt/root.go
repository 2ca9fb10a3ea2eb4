package main

import (
	"errors"
	"fmt"

	filtfilt "github.com/Benarrt/FiltFilt"
	"github.com/Benarrt/FiltFilt/internal/config"
	"github.com/Benarrt/FiltFilt/internal/report"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// flagKeys maps flag names to configuration keys.
var flagKeys = map[string]string{
	"verbose":   "verbose",
	"log-level": "log_level",
	"output":    "output_format",

	"taps":        "design.num_taps",
	"low":         "design.low",
	"high":        "design.high",
	"sample-rate": "design.sample_rate",
	"pass-zero":   "design.pass_zero",
	"window":      "design.window",
	"kaiser-beta": "design.kaiser_beta",
	"attenuation": "design.attenuation",
	"transition":  "design.transition_hz",

	"pad":       "filter.pad_type",
	"pad-len":   "filter.pad_len",
	"parallel":  "filter.parallel",
	"precision": "filter.precision",

	"b-coeff":   "files.b_coeff",
	"a-coeff":   "files.a_coeff",
	"out-file":  "files.output",
	"delimiter": "files.delimiter",
	"column":    "files.column",
	"skip-rows": "files.skip_rows",

	"runs": "bench.runs",
}

// app carries state shared by the subcommands once flags are parsed.
type app struct {
	v          *viper.Viper
	cfg        *config.Config
	logger     *zap.Logger
	format     report.Format
	configFile string
}

func newApp() *app {
	return &app{
		v:      config.New(),
		logger: zap.NewNop(),
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:   "filtfilt",
		Short: "Zero-phase FIR filter design and filtering",
		Long: `filtfilt designs windowed-sinc FIR filters and runs signals through
them forward and backward, so the result has no phase distortion.

The default design is the 61-tap 0.66-4 Hz band-pass at 30 Hz. Coefficients
are exchanged through the bCoeff and aCoeff text files, one value per line.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initialize,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configFile, "config", "", "config file (YAML)")
	pf.BoolP("verbose", "v", false, "verbose output (debug logging)")
	pf.String("log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	pf.StringP("output", "o", defaultOutputFormat, "report format (table, json, yaml)")

	root.AddCommand(newDesignCmd(a), newApplyCmd(a), newCompareCmd(a))
	return root
}

// initialize binds the flags of the command being run, loads the
// configuration and builds the logger.
func (a *app) initialize(cmd *cobra.Command, _ []string) error {
	if err := bindFlags(cmd.Flags(), a.v); err != nil {
		return err
	}

	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}

	format, err := report.ParseFormat(cfg.OutputFormat)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel, cfg.Verbose)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.format = format
	a.logger = logger
	if a.configFile != "" {
		a.logger.Debug("loaded config file", zap.String("path", a.v.ConfigFileUsed()))
	}
	return nil
}

func (a *app) close() {
	_ = a.logger.Sync()
}

// bindFlags binds every known flag in fs to its configuration key.
func bindFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	var errs []error
	fs.VisitAll(func(f *pflag.Flag) {
		key, ok := flagKeys[f.Name]
		if !ok {
			return
		}
		if err := v.BindPFlag(key, f); err != nil {
			errs = append(errs, fmt.Errorf("bind flag %s: %w", f.Name, err))
		}
	})
	return errors.Join(errs...)
}

func newLogger(level string, verbose bool) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if verbose {
		lvl = zapcore.DebugLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableStacktrace = true
	return cfg.Build()
}

func addDesignFlags(fs *pflag.FlagSet) {
	fs.Int("taps", filtfilt.DemoNumTaps, "number of filter taps (odd)")
	fs.Float64("low", filtfilt.DemoLowHz, "low band edge in Hz")
	fs.Float64("high", filtfilt.DemoHighHz, "high band edge in Hz")
	fs.Float64("sample-rate", filtfilt.DemoSampleRate, "sample rate in Hz")
	fs.Bool("pass-zero", false, "design a band-stop instead of a band-pass")
	fs.String("window", defaultWindow, "window: hamming, hann, blackman, rectangular, kaiser")
	fs.Float64("kaiser-beta", 0, "Kaiser window beta")
	fs.Float64("attenuation", 0, "stop-band attenuation in dB (selects a Kaiser design)")
	fs.Float64("transition", 0, "transition band width in Hz for --attenuation")
}

func addCoefficientFlags(fs *pflag.FlagSet) {
	fs.String("b-coeff", defaultBCoeffPath, "numerator coefficient file")
	fs.String("a-coeff", defaultACoeffPath, "denominator coefficient file")
}

func addColumnFlags(fs *pflag.FlagSet) {
	fs.StringP("delimiter", "d", ",", "field delimiter of text signals")
	fs.IntP("column", "c", 0, "column index, from 0")
	fs.IntP("skip-rows", "r", 0, "rows to skip before the data")
}
