// Package config handles configuration loading for fmpkit.
// It supports YAML or JSON config files, a .env file and environment
// variable overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/seenimoa/fmpkit/pkg/fmp"
	"github.com/seenimoa/fmpkit/pkg/frame"
)

// Config represents the complete application configuration.
type Config struct {
	API     APIConfig     `mapstructure:"api"     yaml:"api"`
	Output  OutputConfig  `mapstructure:"output"  yaml:"output"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`

	// LegacyAPIKey is the top-level "api_key" field of older config.json files.
	LegacyAPIKey string `mapstructure:"api_key" yaml:"api_key"`
}

// APIConfig holds FMP connection settings.
type APIConfig struct {
	Key        string  `mapstructure:"key"         yaml:"key"`
	BaseURLV3  string  `mapstructure:"base_url_v3" yaml:"base_url_v3"`
	BaseURLV4  string  `mapstructure:"base_url_v4" yaml:"base_url_v4"`
	TimeoutSec int     `mapstructure:"timeout_sec" yaml:"timeout_sec"` // 0 = HTTP client default
	RateLimit  float64 `mapstructure:"rate_limit"  yaml:"rate_limit"`  // requests/second, 0 = unlimited
}

// OutputConfig holds defaults for saved tables.
type OutputConfig struct {
	Path     string `mapstructure:"path"     yaml:"path"`
	Datatype string `mapstructure:"datatype" yaml:"datatype"` // "csv", "xlsx" or "html"
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

const envPrefix = "FMPKIT"

// apiKeyEnv lists the variables checked for the API key, highest priority first.
var apiKeyEnv = []string{"FMPKIT_API_KEY", "FMP_API_KEY"}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.{yaml,json}
//  2. ~/.fmpkit/config.{yaml,json}
//  3. /etc/fmpkit/config.{yaml,json}
//
// A .env file in the working directory is loaded first. Environment
// variables override config file values.
// Format: FMPKIT_<SECTION>_<KEY>, e.g., FMPKIT_OUTPUT_PATH
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := newViper()
	v.SetConfigName("config")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".fmpkit"))
	v.AddConfigPath("/etc/fmpkit")

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}
	return decode(v)
}

// LoadFromFile reads configuration from a specific file path. The format
// follows the file extension.
func LoadFromFile(path string) (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, err
	}

	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	overrideFromEnv(&cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// loadDotEnv exports the variables of a .env file. A missing file is not an
// error and variables already set in the environment win.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error loading %s: %w", path, err)
	}
	return nil
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// API defaults
	v.SetDefault("api.key", "")
	v.SetDefault("api.base_url_v3", fmp.DefaultBaseURLV3)
	v.SetDefault("api.base_url_v4", fmp.DefaultBaseURLV4)
	v.SetDefault("api.timeout_sec", 0)
	v.SetDefault("api.rate_limit", 0.0)
	v.SetDefault("api_key", "")

	// Output defaults
	v.SetDefault("output.path", ".")
	v.SetDefault("output.datatype", frame.DatatypeCSV)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
}

// overrideFromEnv resolves the API key: FMPKIT_API_KEY, then FMP_API_KEY,
// then api.key, then the legacy top-level api_key.
func overrideFromEnv(cfg *Config) {
	if cfg.API.Key == "" {
		cfg.API.Key = cfg.LegacyAPIKey
	}
	for _, env := range apiKeyEnv {
		if key := os.Getenv(env); key != "" {
			cfg.API.Key = key
			return
		}
	}
}

// Validate checks enumerated and numeric settings. A missing API key is not
// an error here; commands that talk to the API check it themselves.
func (c *Config) Validate() error {
	switch c.Output.Datatype {
	case frame.DatatypeCSV, frame.DatatypeXLSX, frame.DatatypeHTML:
	default:
		return fmt.Errorf("output.datatype: %w", &frame.UnsupportedFormatError{Format: c.Output.Datatype})
	}
	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unknown level %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("logging.format: unknown format %q", c.Logging.Format)
	}
	if c.API.TimeoutSec < 0 {
		return fmt.Errorf("api.timeout_sec: must not be negative, got %d", c.API.TimeoutSec)
	}
	if c.API.RateLimit < 0 {
		return fmt.Errorf("api.rate_limit: must not be negative, got %g", c.API.RateLimit)
	}
	return nil
}

// ClientConfig converts the loaded settings into the client configuration.
func (c *Config) ClientConfig() fmp.Config {
	return fmp.Config{
		APIKey:     c.API.Key,
		BaseURLV3:  c.API.BaseURLV3,
		BaseURLV4:  c.API.BaseURLV4,
		OutputPath: c.Output.Path,
		Timeout:    time.Duration(c.API.TimeoutSec) * time.Second,
		RateLimit:  c.API.RateLimit,
	}
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
