package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/uyouii/growth-percentiles/common"
	"github.com/uyouii/growth-percentiles/growth"
)

const EnvPrefix = "GROWTH"

const (
	KeyLogLevel     = "log.level"
	KeyLogFormat    = "log.format"
	KeyCurveStep    = "curves.step"
	KeyOutputFormat = "output.format"
)

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type CurvesConfig struct {
	// Step is the sampling resolution of rendered reference curves, in months.
	Step float64 `mapstructure:"step"`
}

type OutputConfig struct {
	Format string `mapstructure:"format"`
}

type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Curves CurvesConfig `mapstructure:"curves"`
	Output OutputConfig `mapstructure:"output"`
}

func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "json")
	v.SetDefault(KeyCurveStep, 0.5)
	v.SetDefault(KeyOutputFormat, "table")
}

// Load reads configuration into the global viper instance, so flags bound
// with viper.BindPFlag take precedence.
func Load(path string) (*Config, error) {
	return LoadFrom(viper.GetViper(), path)
}

// LoadFrom merges defaults, the optional config file at path, and
// GROWTH_-prefixed environment variables (GROWTH_LOG_LEVEL, ...).
func LoadFrom(v *viper.Viper, path string) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if !(cfg.Curves.Step >= growth.MinCurveStep) {
		return nil, fmt.Errorf("%w: %s %v, must be at least %v", common.ErrorInvalidValue,
			KeyCurveStep, cfg.Curves.Step, growth.MinCurveStep)
	}
	return &cfg, nil
}
