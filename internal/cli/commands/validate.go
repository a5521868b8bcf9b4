package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/loglens/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a LogLens configuration file without running analysis.

Checks:
  - YAML syntax
  - Detection setting ranges
  - Webhook URL, trigger, and timeout values`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	fmt.Printf("Validating %s...\n", configPath)

	// Load and validate config
	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// Report what we found
	fmt.Printf("\nConfiguration valid!\n")
	fmt.Printf("\nDetection settings:\n")
	fmt.Printf("  Error cluster window:  %s\n", cfg.Detection.ErrorClusterWindow)
	fmt.Printf("  Anomaly threshold:     %.1f\n", cfg.Detection.AnomalyThreshold)
	fmt.Printf("  Pattern min frequency: %d\n", cfg.Detection.PatternMinFrequency)
	fmt.Printf("  Trending window:       %s\n", cfg.Detection.TrendingWindow)

	if len(cfg.Webhooks) > 0 {
		fmt.Printf("\nWebhooks:\n")
		for i, wh := range cfg.Webhooks {
			name := wh.Name
			if name == "" {
				name = wh.URL
			}
			fmt.Printf("  %d. %s (trigger: %s, timeout: %s)\n", i+1, name, wh.Trigger, wh.Timeout)
		}
	}

	return nil
}
