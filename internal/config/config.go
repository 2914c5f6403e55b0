// Package config provides configuration loading and utilities for the application.
package config

import (
	"fmt"

	"github.com/Veraticus/sift/internal/classification"
	"github.com/Veraticus/sift/internal/common"
	"github.com/spf13/viper"
)

// Configuration keys.
const (
	KeyTopN           = "categorize.top_n"
	KeyMinScore       = "categorize.min_score"
	KeyMaxPDFPages    = "extract.max_pdf_pages"
	KeyWorkers        = "extract.workers"
	KeyCacheSize      = "cache.size"
	KeyServerAddr     = "server.addr"
	KeyMaxUpload      = "server.max_upload_bytes"
	KeyAllowedOrigins = "server.allowed_origins"
	KeyLogLevel       = "logging.level"
	KeyLogFormat      = "logging.format"
)

// CategorizeConfig holds the scoring knobs.
type CategorizeConfig struct {
	TopN     int `mapstructure:"top_n"`
	MinScore int `mapstructure:"min_score"`
}

// ExtractConfig controls file decoding.
type ExtractConfig struct {
	MaxPDFPages int `mapstructure:"max_pdf_pages"`
	Workers     int `mapstructure:"workers"`
}

// CacheConfig sizes the analysis cache. Zero disables it.
type CacheConfig struct {
	Size int `mapstructure:"size"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr           string   `mapstructure:"addr"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	MaxUploadBytes int64    `mapstructure:"max_upload_bytes"`
}

// LoggingConfig configures slog output.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Config is the full application configuration.
type Config struct {
	Server     ServerConfig     `mapstructure:"server"`
	Logging    LoggingConfig    `mapstructure:"logging"`
	Categorize CategorizeConfig `mapstructure:"categorize"`
	Extract    ExtractConfig    `mapstructure:"extract"`
	Cache      CacheConfig      `mapstructure:"cache"`
}

// DefaultConfig returns the built-in defaults.
func DefaultConfig() Config {
	return Config{
		Categorize: CategorizeConfig{
			TopN:     classification.DefaultTopN,
			MinScore: classification.DefaultMinScore,
		},
		Extract: ExtractConfig{
			MaxPDFPages: 20,
			Workers:     4,
		},
		Cache: CacheConfig{
			Size: 512,
		},
		Server: ServerConfig{
			Addr:           ":8080",
			MaxUploadBytes: 32 << 20,
			AllowedOrigins: []string{"*"},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// SetDefaults registers DefaultConfig values with v so unset keys resolve.
func SetDefaults(v *viper.Viper) {
	d := DefaultConfig()
	v.SetDefault(KeyTopN, d.Categorize.TopN)
	v.SetDefault(KeyMinScore, d.Categorize.MinScore)
	v.SetDefault(KeyMaxPDFPages, d.Extract.MaxPDFPages)
	v.SetDefault(KeyWorkers, d.Extract.Workers)
	v.SetDefault(KeyCacheSize, d.Cache.Size)
	v.SetDefault(KeyServerAddr, d.Server.Addr)
	v.SetDefault(KeyMaxUpload, d.Server.MaxUploadBytes)
	v.SetDefault(KeyAllowedOrigins, d.Server.AllowedOrigins)
	v.SetDefault(KeyLogLevel, d.Logging.Level)
	v.SetDefault(KeyLogFormat, d.Logging.Format)
}

// Load reads the configuration out of v, applying defaults and validating the result.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that every setting is usable.
func (c *Config) Validate() error {
	switch {
	case c.Categorize.TopN < 0:
		return fmt.Errorf("%w: %s must not be negative", common.ErrInvalidConfig, KeyTopN)
	case c.Categorize.MinScore < 0:
		return fmt.Errorf("%w: %s must not be negative", common.ErrInvalidConfig, KeyMinScore)
	case c.Extract.MaxPDFPages < 1:
		return fmt.Errorf("%w: %s must be at least 1", common.ErrInvalidConfig, KeyMaxPDFPages)
	case c.Extract.Workers < 1:
		return fmt.Errorf("%w: %s must be at least 1", common.ErrInvalidConfig, KeyWorkers)
	case c.Cache.Size < 0:
		return fmt.Errorf("%w: %s must not be negative", common.ErrInvalidConfig, KeyCacheSize)
	case c.Server.Addr == "":
		return fmt.Errorf("%w: %s", common.ErrMissingConfig, KeyServerAddr)
	case c.Server.MaxUploadBytes < 1:
		return fmt.Errorf("%w: %s must be positive", common.ErrInvalidConfig, KeyMaxUpload)
	}

	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}
	if c.Logging.Format != "console" && c.Logging.Format != "json" {
		return fmt.Errorf("%w: log format %q", common.ErrInvalidConfig, c.Logging.Format)
	}

	return nil
}
