// Package config loads tool configuration from a YAML file and the
// environment. Flags parsed by the commands override whatever is loaded
// here.
package config

import (
	"fmt"
	"log/slog"

	"github.com/ilyakaznacheev/cleanenv"
)

// SynthConfig holds synthesis defaults.
type SynthConfig struct {
	SampleRate     int     `yaml:"sample_rate" env:"LIBRAN_SAMPLE_RATE" env-default:"22050"`
	SymbolDuration float64 `yaml:"symbol_duration" env:"LIBRAN_SYMBOL_DURATION" env-default:"0.12"`
	Amplitude      int     `yaml:"amplitude" env:"LIBRAN_AMPLITUDE" env-default:"16000"`
}

// Config is the root configuration.
type Config struct {
	Synth      SynthConfig `yaml:"synth"`
	Dictionary string      `yaml:"dictionary" env:"LIBRAN_DICTIONARY"`
	Variant    string      `yaml:"variant" env:"LIBRAN_VARIANT" env-default:"ancient"`
	LogLevel   string      `yaml:"log_level" env:"LIBRAN_LOG_LEVEL" env-default:"info"`
}

// Load reads configuration from path (optional) and the environment.
// An empty path loads environment variables and defaults only.
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return cfg, fmt.Errorf("read env config: %w", err)
		}
		return cfg, nil
	}
	if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	return cfg, nil
}

// SlogLevel maps the configured log level onto slog.
func (c Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
