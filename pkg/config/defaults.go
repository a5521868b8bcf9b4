package config

import (
	"os"
	"strconv"
	"time"
)

// Default values for configuration.
const (
	DefaultErrorClusterWindow  = 5 * time.Minute
	DefaultAnomalyThreshold    = 3.0
	DefaultPatternMinFrequency = 3
	DefaultTrendingWindow      = time.Hour
	DefaultWebhookTimeout      = 10 * time.Second
)

// Environment variable names.
const (
	EnvClusterWindow    = "LOGLENS_CLUSTER_WINDOW"
	EnvAnomalyThreshold = "LOGLENS_ANOMALY_THRESHOLD"
	EnvMinFrequency     = "LOGLENS_MIN_FREQUENCY"
	EnvTrendingWindow   = "LOGLENS_TRENDING_WINDOW"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Detection: DefaultDetection(),
	}
}

// FromEnvironment returns the default configuration with any LOGLENS_*
// environment overrides applied. Used when no config file is given.
func FromEnvironment() *Config {
	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()
	return cfg
}

// DefaultDetection returns the stock detection settings.
func DefaultDetection() DetectionConfig {
	return DetectionConfig{
		ErrorClusterWindow:  DefaultErrorClusterWindow,
		AnomalyThreshold:    DefaultAnomalyThreshold,
		PatternMinFrequency: DefaultPatternMinFrequency,
		TrendingWindow:      DefaultTrendingWindow,
	}
}

// WithDefaults returns a copy with zero-valued fields replaced by the
// package defaults. Negative values pass through; Validate rejects those.
func (d DetectionConfig) WithDefaults() DetectionConfig {
	if d.ErrorClusterWindow == 0 {
		d.ErrorClusterWindow = DefaultErrorClusterWindow
	}
	if d.AnomalyThreshold == 0 {
		d.AnomalyThreshold = DefaultAnomalyThreshold
	}
	if d.PatternMinFrequency == 0 {
		d.PatternMinFrequency = DefaultPatternMinFrequency
	}
	if d.TrendingWindow == 0 {
		d.TrendingWindow = DefaultTrendingWindow
	}
	return d
}

// applyEnvironmentOverrides applies environment variable overrides to the
// config. Values that fail to parse are ignored.
func (c *Config) applyEnvironmentOverrides() {
	if v := os.Getenv(EnvClusterWindow); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Detection.ErrorClusterWindow = d
		}
	}
	if v := os.Getenv(EnvAnomalyThreshold); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Detection.AnomalyThreshold = f
		}
	}
	if v := os.Getenv(EnvMinFrequency); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Detection.PatternMinFrequency = n
		}
	}
	if v := os.Getenv(EnvTrendingWindow); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.Detection.TrendingWindow = d
		}
	}
}
