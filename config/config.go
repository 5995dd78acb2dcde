// SPDX-License-Identifier: MIT

// Package config holds the run configuration of the lfun tools.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lfun/lfunc"
	"github.com/katalvlaran/lfun/upsample"
	"github.com/katalvlaran/lfun/zeros"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the YAML run configuration.
type Config struct {
	Precision PrecisionConfig `yaml:"precision"`
	Rank      RankConfig      `yaml:"rank"`
	Zeros     ZerosConfig     `yaml:"zeros"`
	Upsample  UpsampleConfig  `yaml:"upsample"`
	Run       RunConfig       `yaml:"run"`
	Store     StoreConfig     `yaml:"store"`
	Logging   LoggingConfig   `yaml:"logging"`
}

// PrecisionConfig sets ball precisions in bits.
type PrecisionConfig struct {
	Working uint `yaml:"working"`
	Target  uint `yaml:"target"` // op_acc
}

// RankConfig configures the rank engine.
type RankConfig struct {
	MaxDerivative   int     `yaml:"max_derivative"` // MAX_L
	Terms           int     `yaml:"terms"`          // 0 = sample bound / stride
	Stride          int     `yaml:"stride"`
	UpsamplingError float64 `yaml:"upsampling_error"`
}

// ZerosConfig configures the zero scan.
type ZerosConfig struct {
	MaxZeros         int  `yaml:"max_zeros"`
	OutputRatio      int  `yaml:"output_ratio"`
	TuringRatio      int  `yaml:"turing_ratio"`
	MaxNewtonIter    int  `yaml:"max_newton_iter"`
	StationaryPoints bool `yaml:"stationary_points"`
}

// UpsampleConfig configures the interpolating provider.
type UpsampleConfig struct {
	HalfWidth  int     `yaml:"half_width"`
	Sigma      float64 `yaml:"sigma"`
	ErrorBound float64 `yaml:"error_bound"`
}

// RunConfig configures batch processing.
type RunConfig struct {
	Parallelism int `yaml:"parallelism"`
	PlotPoints  int `yaml:"plot_points"`
}

// StoreConfig configures the result database.
type StoreConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Precision: PrecisionConfig{
			Working: lfunc.DefaultWorkingPrec,
			Target:  lfunc.DefaultTargetPrec,
		},
		Rank: RankConfig{
			MaxDerivative: lfunc.DefaultMaxDerivative,
			Stride:        lfunc.DefaultRankStride,
		},
		Zeros: ZerosConfig{
			MaxZeros:         lfunc.DefaultMaxZeros,
			OutputRatio:      lfunc.DefaultOutputRatio,
			TuringRatio:      lfunc.DefaultTuringRatio,
			MaxNewtonIter:    zeros.DefaultMaxNewtonIter,
			StationaryPoints: true,
		},
		Upsample: UpsampleConfig{
			HalfWidth:  upsample.DefaultHalfWidth,
			Sigma:      upsample.DefaultSigma,
			ErrorBound: upsample.DefaultErrorBound,
		},
		Run: RunConfig{
			Parallelism: 4,
			PlotPoints:  256,
		},
		Store: StoreConfig{
			Enabled: true,
			Path:    "lfun.db",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a YAML file over the defaults. A missing file yields the
// defaults. Environment overrides are applied in both cases.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: create directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// applyEnvOverrides applies LFUN_DB, LFUN_LOG_LEVEL and LFUN_TARGET_PREC.
func (c *Config) applyEnvOverrides() error {
	if path := os.Getenv("LFUN_DB"); path != "" {
		c.Store.Path = path
	}
	if level := os.Getenv("LFUN_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if v := os.Getenv("LFUN_TARGET_PREC"); v != "" {
		bits, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("config: LFUN_TARGET_PREC=%q: %w", v, err)
		}
		c.Precision.Target = uint(bits)
	}
	return nil
}

var validLevels = []string{"debug", "info", "warn", "error"}

// Validate checks every value before it reaches an option constructor,
// whose panics are reserved for programmer errors.
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Precision.Working > 0, "precision.working must be > 0")
	check(c.Precision.Target > 0, "precision.target must be > 0")
	check(c.Precision.Target < c.Precision.Working,
		"precision.target (%d) must be below precision.working (%d)", c.Precision.Target, c.Precision.Working)
	check(c.Rank.MaxDerivative > 0, "rank.max_derivative must be > 0")
	check(c.Rank.Terms >= 0, "rank.terms must be >= 0")
	check(c.Rank.Stride > 0, "rank.stride must be > 0")
	check(finite(c.Rank.UpsamplingError) && c.Rank.UpsamplingError >= 0, "rank.upsampling_error must be finite and >= 0")
	check(c.Zeros.MaxZeros > 0, "zeros.max_zeros must be > 0")
	check(c.Zeros.OutputRatio > 0 && c.Zeros.TuringRatio > 0, "zeros ratios must be > 0")
	check(c.Zeros.MaxNewtonIter > 0, "zeros.max_newton_iter must be > 0")
	check(c.Upsample.HalfWidth > 0, "upsample.half_width must be > 0")
	check(finite(c.Upsample.Sigma) && c.Upsample.Sigma > 0, "upsample.sigma must be finite and > 0")
	check(finite(c.Upsample.ErrorBound) && c.Upsample.ErrorBound >= 0, "upsample.error_bound must be finite and >= 0")
	check(c.Run.Parallelism > 0, "run.parallelism must be > 0")
	check(c.Run.PlotPoints >= 0, "run.plot_points must be >= 0")
	check(!c.Store.Enabled || c.Store.Path != "", "store.path is required when the store is enabled")
	check(contains(validLevels, c.Logging.Level), "logging.level %q (valid: %v)", c.Logging.Level, validLevels)
	check(c.Logging.Format == "json" || c.Logging.Format == "console",
		"logging.format %q (valid: json, console)", c.Logging.Format)

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

func finite(x float64) bool { return !math.IsInf(x, 0) && !math.IsNaN(x) }

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}

// ContextOptions converts the configuration into lfunc options. Call
// Validate first.
func (c *Config) ContextOptions(log *zap.Logger) []lfunc.Option {
	opts := []lfunc.Option{
		lfunc.WithWorkingPrec(c.Precision.Working),
		lfunc.WithTargetPrec(c.Precision.Target),
		lfunc.WithMaxDerivative(c.Rank.MaxDerivative),
		lfunc.WithMaxZeros(c.Zeros.MaxZeros),
		lfunc.WithRankStride(c.Rank.Stride),
		lfunc.WithRatios(c.Zeros.OutputRatio, c.Zeros.TuringRatio),
		lfunc.WithUpsamplingError(c.Rank.UpsamplingError),
	}
	if c.Rank.Terms > 0 {
		opts = append(opts, lfunc.WithRankTerms(c.Rank.Terms))
	}
	if log != nil {
		opts = append(opts, lfunc.WithLogger(log))
	}
	return opts
}

// FinderOptions converts the zero scan settings.
func (c *Config) FinderOptions() []zeros.Option {
	return []zeros.Option{
		zeros.WithMaxNewtonIter(c.Zeros.MaxNewtonIter),
		zeros.WithStationaryPoints(c.Zeros.StationaryPoints),
	}
}

// UpsampleOptions converts the interpolator settings.
func (c *Config) UpsampleOptions() []upsample.Option {
	return []upsample.Option{
		upsample.WithHalfWidth(c.Upsample.HalfWidth),
		upsample.WithSigma(c.Upsample.Sigma),
		upsample.WithErrorBound(c.Upsample.ErrorBound),
	}
}
