// Package config loads command-line tool settings from defaults, an
// optional YAML file, FILTFILT_* environment variables and bound flags.
package config

import (
	"errors"
	"fmt"
	"strings"

	filtfilt "github.com/Benarrt/FiltFilt"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes environment overrides, e.g. FILTFILT_DESIGN_NUM_TAPS.
const EnvPrefix = "FILTFILT"

// Config represents the tool configuration.
type Config struct {
	Verbose      bool   `mapstructure:"verbose"`
	LogLevel     string `mapstructure:"log_level"`
	OutputFormat string `mapstructure:"output_format"`

	Design DesignConfig `mapstructure:"design"`
	Filter FilterConfig `mapstructure:"filter"`
	Files  FilesConfig  `mapstructure:"files"`
	Bench  BenchConfig  `mapstructure:"bench"`
}

// DesignConfig describes the FIR filter to design.
type DesignConfig struct {
	NumTaps    int     `mapstructure:"num_taps"`
	Low        float64 `mapstructure:"low"`
	High       float64 `mapstructure:"high"`
	SampleRate float64 `mapstructure:"sample_rate"`
	PassZero   bool    `mapstructure:"pass_zero"`
	Window     string  `mapstructure:"window"`
	KaiserBeta float64 `mapstructure:"kaiser_beta"`

	// A positive Attenuation replaces NumTaps and the window with a Kaiser
	// design reaching it over TransitionHz.
	Attenuation  float64 `mapstructure:"attenuation"`
	TransitionHz float64 `mapstructure:"transition_hz"`
}

// FilterConfig controls how a signal is filtered.
type FilterConfig struct {
	PadType   string `mapstructure:"pad_type"`
	PadLen    int    `mapstructure:"pad_len"`
	Parallel  bool   `mapstructure:"parallel"`
	Precision string `mapstructure:"precision"`
}

// FilesConfig names the coefficient files and the signal layout.
type FilesConfig struct {
	BCoeff    string `mapstructure:"b_coeff"`
	ACoeff    string `mapstructure:"a_coeff"`
	Output    string `mapstructure:"output"`
	Delimiter string `mapstructure:"delimiter"`
	Column    int    `mapstructure:"column"`
	SkipRows  int    `mapstructure:"skip_rows"`
}

// BenchConfig controls timing of the filter call.
type BenchConfig struct {
	Runs int `mapstructure:"runs"`
}

// New returns a viper instance with defaults and environment lookup set up.
func New() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)
	return v
}

// SetDefaults sets default configuration values. The design defaults are
// the 61-tap 0.66-4 Hz band-pass at 30 Hz.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("verbose", false)
	v.SetDefault("log_level", "info")
	v.SetDefault("output_format", "table")

	v.SetDefault("design.num_taps", filtfilt.DemoNumTaps)
	v.SetDefault("design.low", filtfilt.DemoLowHz)
	v.SetDefault("design.high", filtfilt.DemoHighHz)
	v.SetDefault("design.sample_rate", filtfilt.DemoSampleRate)
	v.SetDefault("design.pass_zero", false)
	v.SetDefault("design.window", "hamming")
	v.SetDefault("design.kaiser_beta", 0.0)
	v.SetDefault("design.attenuation", 0.0)
	v.SetDefault("design.transition_hz", 0.0)

	v.SetDefault("filter.pad_type", "odd")
	v.SetDefault("filter.pad_len", -1)
	v.SetDefault("filter.parallel", true)
	v.SetDefault("filter.precision", "float64")

	v.SetDefault("files.b_coeff", "bCoeff")
	v.SetDefault("files.a_coeff", "aCoeff")
	v.SetDefault("files.output", "demoFiltFilt")
	v.SetDefault("files.delimiter", ",")
	v.SetDefault("files.column", 0)
	v.SetDefault("files.skip_rows", 0)

	v.SetDefault("bench.runs", 1)
}

// Load reads the optional config file at path, decodes everything into a
// Config and validates it.
func Load(v *viper.Viper, path string) (*Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks values that have no meaning outside their range. Filter
// design parameters are checked by the designer itself.
func (c *Config) Validate() error {
	var errs []error

	if _, err := filtfilt.ParseWindowType(c.Design.Window); err != nil {
		errs = append(errs, err)
	}
	if _, err := filtfilt.ParsePadType(c.Filter.PadType); err != nil {
		errs = append(errs, err)
	}
	switch c.Filter.Precision {
	case "float64", "float32":
	default:
		errs = append(errs, fmt.Errorf("precision must be float64 or float32, got %q", c.Filter.Precision))
	}
	if len([]rune(c.Files.Delimiter)) != 1 {
		errs = append(errs, fmt.Errorf("delimiter must be a single character, got %q", c.Files.Delimiter))
	}
	if c.Files.Column < 0 {
		errs = append(errs, fmt.Errorf("column cannot be negative"))
	}
	if c.Files.SkipRows < 0 {
		errs = append(errs, fmt.Errorf("skip rows cannot be negative"))
	}
	if c.Bench.Runs < 1 {
		errs = append(errs, fmt.Errorf("bench runs must be at least 1"))
	}

	return errors.Join(errs...)
}

// Spec converts the design section into a filter specification.
func (c *Config) Spec() (filtfilt.FilterSpec, error) {
	window, err := filtfilt.ParseWindowType(c.Design.Window)
	if err != nil {
		return filtfilt.FilterSpec{}, err
	}
	spec := filtfilt.FilterSpec{
		NumTaps:    c.Design.NumTaps,
		Low:        c.Design.Low,
		High:       c.Design.High,
		PassZero:   c.Design.PassZero,
		SampleRate: c.Design.SampleRate,
		Window:     window,
		KaiserBeta: c.Design.KaiserBeta,
	}
	if c.Design.Attenuation > 0 {
		return spec.WithKaiser(c.Design.Attenuation, c.Design.TransitionHz)
	}
	return spec, nil
}

// Options converts the filter section into FiltFilt options.
func (c *Config) Options() ([]filtfilt.Option, error) {
	pad, err := filtfilt.ParsePadType(c.Filter.PadType)
	if err != nil {
		return nil, err
	}
	return []filtfilt.Option{filtfilt.WithPadType(pad), filtfilt.WithPadLen(c.Filter.PadLen)}, nil
}

// DelimiterRune returns the configured delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r := []rune(c.Files.Delimiter)
	if len(r) == 0 {
		return ','
	}
	return r[0]
}
