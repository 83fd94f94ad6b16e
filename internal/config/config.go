package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. VEHICLES_BASE_URL
const EnvPrefix = "VEHICLES"

type Config struct {
	BaseURL          string `mapstructure:"base_url"`
	LogLevel         string `mapstructure:"log_level"`
	Port             string `mapstructure:"port"`
	GeohashPrecision uint   `mapstructure:"geohash_precision"`
}

// Load reads configuration from an optional config.yaml, a .env file, VEHICLES_* environment
// variables and the given flag set, in increasing order of precedence.
func Load(flags *pflag.FlagSet) (*Config, error) {
	// A missing .env is normal outside local development
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetDefault("base_url", "http://localhost:8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("port", "8080")
	v.SetDefault("geohash_precision", 7)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			if err := v.BindPFlag(strings.ReplaceAll(f.Name, "-", "_"), f); err != nil && bindErr == nil {
				bindErr = err
			}
		})
		if bindErr != nil {
			return nil, fmt.Errorf("binding flags: %w", bindErr)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	return &cfg, nil
}

// SlogLevel maps the configured level name onto a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}
