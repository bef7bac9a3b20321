// Package config loads settings for the aria command from a config file,
// ARIA_* environment variables and command-line overrides.
package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/jedisct1/go-aria"
)

const (
	FormatHex    = "hex"
	FormatBase64 = "base64"
)

type Config struct {
	Key         string `mapstructure:"key"` // 32 hex digits
	LogLevel    string `mapstructure:"log_level"`
	Format      string `mapstructure:"format"`
	BenchBlocks int    `mapstructure:"bench_blocks"`
	ConfigFile  string `mapstructure:"config_file"`
}

func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "info",
		Format:      FormatHex,
		BenchBlocks: 1 << 20,
	}
}

// Load reads configuration with precedence overrides > environment > file >
// defaults. An empty file searches for aria.yaml in the usual places and
// tolerates its absence; an explicit file must exist.
func Load(file string, overrides map[string]any) (*Config, error) {
	def := DefaultConfig()

	v := viper.New()
	v.SetDefault("key", def.Key)
	v.SetDefault("log_level", def.LogLevel)
	v.SetDefault("format", def.Format)
	v.SetDefault("bench_blocks", def.BenchBlocks)
	v.SetDefault("config_file", file)

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName("aria")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.aria")
		v.AddConfigPath("/etc/aria/")
	}
	v.SetEnvPrefix("ARIA") // ARIA_KEY, ARIA_LOG_LEVEL, ...
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("config: reading %s: %w", describe(file), err)
		}
	} else {
		v.Set("config_file", v.ConfigFileUsed())
	}

	for k, val := range overrides {
		v.Set(k, val)
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func describe(file string) string {
	if file == "" {
		return "aria.yaml"
	}
	return file
}

// Validate checks the settings that do not depend on the command being run.
func (c *Config) Validate() error {
	c.Format = strings.ToLower(c.Format)
	switch c.Format {
	case FormatHex, FormatBase64:
	default:
		return fmt.Errorf("config: unknown format %q, want %q or %q", c.Format, FormatHex, FormatBase64)
	}
	if c.BenchBlocks <= 0 {
		return fmt.Errorf("config: bench_blocks must be positive, got %d", c.BenchBlocks)
	}
	return nil
}

// KeyBytes decodes the configured key. A missing key or one that is not
// exactly 16 bytes is an error; it is never padded.
func (c *Config) KeyBytes() ([]byte, error) {
	if c.Key == "" {
		return nil, errors.New("config: no key given (use --key or ARIA_KEY)")
	}
	key, err := hex.DecodeString(strings.TrimSpace(c.Key))
	if err != nil {
		return nil, fmt.Errorf("config: key is not hex: %w", err)
	}
	if len(key) != aria.KeySize {
		return nil, fmt.Errorf("config: %w: got %d bytes", aria.ErrInvalidKeySize, len(key))
	}
	return key, nil
}
