// Package config loads the scratchpad CLI configuration from an optional
// config file, SCRATCHPAD_ environment variables and command line flags.
package config

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pavanmanishd/scratchpad"
	"github.com/pavanmanishd/scratchpad/internal/logger"
)

// EnvPrefix prefixes environment overrides, e.g. SCRATCHPAD_LOG_LEVEL.
const EnvPrefix = "SCRATCHPAD"

// Config is the CLI configuration.
type Config struct {
	Capacity      int       `mapstructure:"capacity"`       // arena bytes per pad
	OverflowLimit int       `mapstructure:"overflow_limit"` // 0 means unlimited
	Log           LogConfig `mapstructure:"log"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// flagKeys maps config keys to the flags that override them.
var flagKeys = map[string]string{
	"capacity":       "capacity",
	"overflow_limit": "overflow-limit",
	"log.level":      "log-level",
	"log.format":     "log-format",
}

// Load reads the configuration. path may be empty; flags may be nil. Flags
// that were set win over the environment, which wins over the file.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("capacity", scratchpad.DefaultCapacity)
	v.SetDefault("overflow_limit", 0)
	v.SetDefault("log.level", "WARN")
	v.SetDefault("log.format", "text")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for key, name := range flagKeys {
			f := flags.Lookup(name)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, errors.Wrapf(err, "bind flag --%s", name)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks value ranges and names.
func (c *Config) Validate() error {
	if c.Capacity < 0 {
		return errors.Newf("capacity must not be negative, got %d", c.Capacity)
	}
	if c.OverflowLimit < 0 {
		return errors.Newf("overflow_limit must not be negative, got %d", c.OverflowLimit)
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return errors.Wrap(err, "log.level")
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return errors.Newf("log.format must be text or json, got %q", c.Log.Format)
	}
	return nil
}

// Logger returns the logger settings in the form package logger takes.
func (c *Config) Logger() logger.Config {
	return logger.Config{Level: c.Log.Level, Format: c.Log.Format}
}
