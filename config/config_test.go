package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uyouii/growth-percentiles/common"
	"github.com/uyouii/growth-percentiles/growth"
)

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 0.5, cfg.Curves.Step)
	assert.Equal(t, "table", cfg.Output.Format)
}

func TestLoadFrom_Env(t *testing.T) {
	t.Setenv("GROWTH_LOG_LEVEL", "debug")
	t.Setenv("GROWTH_CURVES_STEP", "0.25")

	cfg, err := LoadFrom(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 0.25, cfg.Curves.Step)
}

func TestLoadFrom_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "growth.yaml")
	content := "log:\n  format: console\ncurves:\n  step: 1\noutput:\n  format: json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFrom(viper.New(), path)
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 1.0, cfg.Curves.Step)
	assert.Equal(t, "json", cfg.Output.Format)
}

func TestLoadFrom_Invalid(t *testing.T) {
	_, err := LoadFrom(viper.New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	for _, step := range []string{"-1", "0", "0.005"} {
		t.Setenv("GROWTH_CURVES_STEP", step)
		_, err = LoadFrom(viper.New(), "")
		assert.True(t, errors.Is(err, common.ErrorInvalidValue), "step %s: %v", step, err)
	}

	t.Setenv("GROWTH_CURVES_STEP", "0.01")
	cfg, err := LoadFrom(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, growth.MinCurveStep, cfg.Curves.Step)
}
