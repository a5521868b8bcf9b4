// Package config provides configuration loading and validation for LogLens.
package config

import "time"

// Config is the root configuration structure loaded from YAML.
type Config struct {
	Detection DetectionConfig `yaml:"detection"`
	Webhooks  []WebhookConfig `yaml:"webhooks,omitempty"`
}

// DetectionConfig holds the tunable knobs for pattern detection.
type DetectionConfig struct {
	// ErrorClusterWindow is the maximum span of a single error burst.
	ErrorClusterWindow time.Duration `yaml:"error_cluster_window,omitempty"`

	// AnomalyThreshold is the number of standard deviations an hourly
	// volume must sit from the mean before it is flagged.
	AnomalyThreshold float64 `yaml:"anomaly_threshold,omitempty"`

	// PatternMinFrequency is the minimum number of occurrences before
	// a normalized message counts as a repeated pattern.
	PatternMinFrequency int `yaml:"pattern_min_frequency,omitempty"`

	// TrendingWindow is the bucket width used for trend comparison.
	TrendingWindow time.Duration `yaml:"trending_window,omitempty"`
}

// WebhookTrigger determines when a webhook fires.
type WebhookTrigger string

const (
	// WebhookTriggerOnFindings fires only when the analysis surfaces findings (default).
	WebhookTriggerOnFindings WebhookTrigger = "on_findings"
	// WebhookTriggerAlways fires after every analysis.
	WebhookTriggerAlways WebhookTrigger = "always"
	// WebhookTriggerNever disables the webhook.
	WebhookTriggerNever WebhookTrigger = "never"
)

// WebhookConfig defines a webhook endpoint for sending analysis results.
type WebhookConfig struct {
	// Name is an optional identifier for the webhook.
	Name string `yaml:"name,omitempty"`

	// URL is the webhook endpoint (required).
	URL string `yaml:"url"`

	// Token is an optional bearer token for authentication.
	Token string `yaml:"token,omitempty"`

	// Trigger determines when the webhook fires.
	// Defaults to "on_findings" if not specified.
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`

	// Timeout is the HTTP request timeout.
	// Defaults to 10s if not specified.
	Timeout time.Duration `yaml:"timeout,omitempty"`
}
