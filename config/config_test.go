package config

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lfun/lfunc"
)

func TestDefaultConfig_Validates(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	if diff := cmp.Diff(DefaultConfig(), cfg); diff != "" {
		t.Errorf("defaults differ (-want +got):\n%s", diff)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "lfun.yaml")
	cfg := DefaultConfig()
	cfg.Precision.Target = 64
	cfg.Zeros.StationaryPoints = false
	cfg.Logging.Format = "json"
	require.NoError(t, cfg.Save(path))

	back, err := Load(path)
	require.NoError(t, err)
	if diff := cmp.Diff(cfg, back); diff != "" {
		t.Errorf("round trip (-want +got):\n%s", diff)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lfun.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rank:\n  max_derivative: 4\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Rank.MaxDerivative)
	assert.Equal(t, uint(lfunc.DefaultWorkingPrec), cfg.Precision.Working)
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lfun.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rank: [unclosed"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("all set", func(t *testing.T) {
		t.Setenv("LFUN_DB", "/tmp/x.db")
		t.Setenv("LFUN_LOG_LEVEL", "debug")
		t.Setenv("LFUN_TARGET_PREC", "77")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, "/tmp/x.db", cfg.Store.Path)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, uint(77), cfg.Precision.Target)
	})
	t.Run("empty leaves values", func(t *testing.T) {
		t.Setenv("LFUN_DB", "")
		t.Setenv("LFUN_LOG_LEVEL", "")
		t.Setenv("LFUN_TARGET_PREC", "")

		cfg := DefaultConfig()
		require.NoError(t, cfg.applyEnvOverrides())
		assert.Equal(t, DefaultConfig(), cfg)
	})
	t.Run("bad precision", func(t *testing.T) {
		t.Setenv("LFUN_TARGET_PREC", "many")
		_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
		assert.Error(t, err)
	})
}

func TestValidate_Errors(t *testing.T) {
	cases := map[string]func(*Config){
		"target above working": func(c *Config) { c.Precision.Target = c.Precision.Working },
		"zero max derivative":  func(c *Config) { c.Rank.MaxDerivative = 0 },
		"bad stride":           func(c *Config) { c.Rank.Stride = 0 },
		"bad ratio":            func(c *Config) { c.Zeros.TuringRatio = 0 },
		"bad sigma":            func(c *Config) { c.Upsample.Sigma = 0 },
		"no parallelism":       func(c *Config) { c.Run.Parallelism = 0 },
		"store without path":   func(c *Config) { c.Store.Path = "" },
		"bad level":            func(c *Config) { c.Logging.Level = "loud" },
		"bad format":           func(c *Config) { c.Logging.Format = "xml" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestValidate_NonFinite(t *testing.T) {
	cases := map[string]func(*Config, float64){
		"sigma":            func(c *Config, x float64) { c.Upsample.Sigma = x },
		"error bound":      func(c *Config, x float64) { c.Upsample.ErrorBound = x },
		"upsampling error": func(c *Config, x float64) { c.Rank.UpsamplingError = x },
	}
	for name, set := range cases {
		for _, x := range []float64{math.Inf(1), math.NaN()} {
			t.Run(fmt.Sprintf("%s=%g", name, x), func(t *testing.T) {
				cfg := DefaultConfig()
				set(cfg, x)
				assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
			})
		}
	}

	t.Run("yaml .inf", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "lfun.yaml")
		require.NoError(t, os.WriteFile(path, []byte("upsample:\n  sigma: .inf\n"), 0o644))
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.True(t, math.IsInf(cfg.Upsample.Sigma, 1))
		assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
	})
}

func TestContextOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Precision = PrecisionConfig{Working: 128, Target: 40}
	cfg.Rank.MaxDerivative = 5
	cfg.Rank.Terms = 10
	cfg.Zeros.MaxZeros = 12
	cfg.Zeros.OutputRatio, cfg.Zeros.TuringRatio = 4, 8
	require.NoError(t, cfg.Validate())

	L, err := lfunc.New(lfunc.Params{Degree: 2, A: 4, H: 8, FFTNN: 256}, cfg.ContextOptions(nil)...)
	require.NoError(t, err)
	assert.Equal(t, uint(128), L.WorkingPrec())
	assert.Equal(t, uint(40), L.TargetPrec())
	assert.Equal(t, 5, L.MaxDerivative())
	assert.Equal(t, 10, L.RankTerms())
	assert.Equal(t, 12, L.MaxZeros())
	assert.Equal(t, 64, L.FineBound())
	assert.Equal(t, 64+32, L.ScanBound())

	assert.Len(t, cfg.FinderOptions(), 2)
	assert.Len(t, cfg.UpsampleOptions(), 3)
}
