// Package config provides configuration and path management.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "iso3166"

	// EnvPrefix prefixes every environment override, e.g. ISO3166_DATA.
	EnvPrefix = "ISO3166"

	// ConfigDirName is the per-user config directory under ~/.config.
	ConfigDirName = "iso3166"

	// ConfigFileName is the config file name without extension.
	ConfigFileName = "config"

	// ConfigFileType is the config file format.
	ConfigFileType = "yaml"

	// DefaultLogLevel is the default log level.
	DefaultLogLevel = "warn"

	// DefaultConcurrency is the default batch lookup concurrency.
	DefaultConcurrency = 4

	// MaxConcurrency caps batch lookup workers.
	MaxConcurrency = 32
)

// Keys shared between flags, environment and config file.
const (
	KeyData        = "data"
	KeyJSON        = "json"
	KeyLogLevel    = "log_level"
	KeyConcurrency = "concurrency"
)

// Config holds runtime configuration.
type Config struct {
	DataFile    string `mapstructure:"data"`
	JSONOutput  bool   `mapstructure:"json"`
	LogLevel    string `mapstructure:"log_level"`
	Concurrency int    `mapstructure:"concurrency"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    DefaultLogLevel,
		Concurrency: DefaultConcurrency,
	}
}

// DefaultConfigDir returns the default config directory path.
func DefaultConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory
		home = "."
	}
	return filepath.Join(home, ".config", ConfigDirName)
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), ConfigFileName+"."+ConfigFileType)
}

// Load resolves configuration from defaults, the config file, ISO3166_*
// environment variables and flags, in increasing priority. An explicit
// cfgFile must exist; the default file is optional.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	defaults := DefaultConfig()
	v.SetDefault(KeyData, defaults.DataFile)
	v.SetDefault(KeyJSON, defaults.JSONOutput)
	v.SetDefault(KeyLogLevel, defaults.LogLevel)
	v.SetDefault(KeyConcurrency, defaults.Concurrency)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for flag, key := range map[string]string{
			"data":        KeyData,
			"json":        KeyJSON,
			"log-level":   KeyLogLevel,
			"concurrency": KeyConcurrency,
		} {
			if f := flags.Lookup(flag); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", flag, err)
				}
			}
		}
	}

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", cfgFile, err)
		}
	} else {
		v.AddConfigPath(DefaultConfigDir())
		v.SetConfigName(ConfigFileName)
		v.SetConfigType(ConfigFileType)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Concurrency = ClampConcurrency(cfg.Concurrency)
	return &cfg, nil
}

// ClampConcurrency keeps n within [1, MaxConcurrency].
func ClampConcurrency(n int) int {
	if n < 1 {
		return 1
	}
	if n > MaxConcurrency {
		return MaxConcurrency
	}
	return n
}

// SlogLevel maps the configured log level to a slog.Level.
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return level, nil
}
