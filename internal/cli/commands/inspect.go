package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/loglens/pkg/config"
	"github.com/ccollicutt/loglens/pkg/detector"
)

// InspectOptions holds command-line options for the inspect command.
type InspectOptions struct {
	Output      string
	SampleSize  int
	ShowAll     bool
	WriteConfig string
}

// NewInspectCommand creates the inspect command.
func NewInspectCommand() *cobra.Command {
	opts := &InspectOptions{}

	cmd := &cobra.Command{
		Use:   "inspect <log-file>",
		Short: "Check whether a log file's timestamps are analyzable",
		Long: `Inspect a log file and report whether its timestamps can be read by
the analysis engine.

Samples lines from the file, measures how many carry a native
YYYY-MM-DD HH:MM:SS timestamp, and when the file is incompatible,
identifies the closest known timestamp format so you know what to
convert from.

Recognizes:
  - ISO 8601 variants (with/without timezone, milliseconds)
  - Syslog format (BSD and with year)
  - Apache/NGINX common log format
  - Unix timestamps (seconds and milliseconds)
  - Python/Java logging formats
  - Bracketed datetime formats

Example:
  loglens inspect /var/log/myapp.log
  loglens inspect --sample 500 /var/log/large.log
  loglens inspect --write-config loglens.yaml /var/log/app.log`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInspect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVarP(&opts.SampleSize, "sample", "n", 100, "Number of lines to sample")
	cmd.Flags().BoolVar(&opts.ShowAll, "all", false, "Show all matched formats, not just the best")
	cmd.Flags().StringVarP(&opts.WriteConfig, "write-config", "w", "", "Write starter config to file (will not overwrite)")

	return cmd
}

func runInspect(cmd *cobra.Command, args []string, opts *InspectOptions) error {
	logFile := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := os.Stat(logFile); os.IsNotExist(err) {
		return fmt.Errorf("log file not found: %s", logFile)
	}

	ins := detector.New(detector.WithSampleSize(opts.SampleSize))

	result, err := ins.Inspect(ctx, logFile)
	if err != nil {
		return fmt.Errorf("inspection failed: %w", err)
	}

	if opts.WriteConfig != "" {
		if err := writeStarterConfig(result, opts.WriteConfig); err != nil {
			return err
		}
	}

	switch opts.Output {
	case "json":
		return outputInspectJSON(result, logFile, opts)
	default:
		return outputInspectText(result, logFile, opts)
	}
}

func outputInspectText(result *detector.InspectionResult, logFile string, opts *InspectOptions) error {
	fmt.Println("=== Log Format Inspection ===")
	fmt.Println()
	fmt.Printf("File: %s\n", logFile)
	fmt.Printf("Lines sampled: %d\n", result.SampledLines)
	fmt.Printf("Native timestamp lines: %d\n", result.NativeLines)
	fmt.Println()

	if result.SampledLines == 0 {
		fmt.Println("No content lines found to sample.")
		return nil
	}

	fmt.Printf("Native compatibility: %.1f%%\n", result.NativeConfidence*100)
	if result.Compatible() {
		fmt.Println("This file can be analyzed directly.")
		fmt.Println()
		return nil
	}

	fmt.Println("This file does not use the native YYYY-MM-DD HH:MM:SS format.")
	fmt.Println()

	best := result.BestMatch()
	if best == nil {
		fmt.Println("No known timestamp format detected.")
		fmt.Println()
		fmt.Println("Tip: The file may use an uncommon format.")
		fmt.Println("Check the first few lines manually to identify the timestamp pattern.")
		return nil
	}

	fmt.Printf("Closest known format: %s\n", best.Format.Name)
	fmt.Printf("Confidence: %.1f%% (%d/%d lines matched)\n",
		best.Confidence*100, best.MatchCount, result.SampledLines)
	fmt.Println()
	fmt.Printf("Sample match:\n  %s\n", best.SampleLine)
	if !best.ParsedTime.IsZero() {
		fmt.Printf("Parsed as: %s\n", best.ParsedTime.Format("2006-01-02 15:04:05 MST"))
	}
	fmt.Println()

	if best.Format.Ambiguous {
		fmt.Println("WARNING: This format has date ordering ambiguity (MM/DD vs DD/MM).")
		fmt.Println("Verify against a known date before converting.")
		fmt.Println()
	}
	if result.AmbiguityNote != "" {
		fmt.Printf("Note: %s\n", result.AmbiguityNote)
		fmt.Println()
	}

	fmt.Println("Convert timestamps to \"YYYY-MM-DD HH:MM:SS\" before running analysis.")
	fmt.Println()

	if opts.ShowAll && len(result.Matches) > 1 {
		fmt.Println("--- Other formats detected ---")
		for i, m := range result.Matches[1:] {
			fmt.Printf("%d. %s (%.1f%% confidence)\n", i+2, m.Format.Name, m.Confidence*100)
		}
		fmt.Println()
	}

	return nil
}

// JSONMatch represents a format match in JSON output.
type JSONMatch struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
	MatchCount int     `json:"match_count"`
	SampleLine string  `json:"sample_line,omitempty"`
	Ambiguous  bool    `json:"ambiguous,omitempty"`
}

// JSONInspection represents the full JSON output of inspect.
type JSONInspection struct {
	File             string      `json:"file"`
	SampledLines     int         `json:"sampled_lines"`
	NativeLines      int         `json:"native_lines"`
	NativeConfidence float64     `json:"native_confidence"`
	Compatible       bool        `json:"compatible"`
	Matches          []JSONMatch `json:"matches"`
	AmbiguityNote    string      `json:"ambiguity_note,omitempty"`
}

func outputInspectJSON(result *detector.InspectionResult, logFile string, opts *InspectOptions) error {
	out := JSONInspection{
		File:             logFile,
		SampledLines:     result.SampledLines,
		NativeLines:      result.NativeLines,
		NativeConfidence: result.NativeConfidence,
		Compatible:       result.Compatible(),
		AmbiguityNote:    result.AmbiguityNote,
		Matches:          make([]JSONMatch, 0),
	}

	matches := result.Matches
	if !opts.ShowAll && len(matches) > 1 {
		matches = matches[:1] // Only show best match
	}

	for _, m := range matches {
		out.Matches = append(out.Matches, JSONMatch{
			Name:       m.Format.Name,
			Confidence: m.Confidence,
			MatchCount: m.MatchCount,
			SampleLine: m.SampleLine,
			Ambiguous:  m.Format.Ambiguous,
		})
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// writeStarterConfig generates a starter config file with detection
// defaults and a webhook example.
func writeStarterConfig(result *detector.InspectionResult, configPath string) error {
	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s (will not overwrite)", configPath)
	}

	content := generateStarterConfig(result)

	// #nosec G306 - config file doesn't need restrictive permissions
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Wrote starter config to: %s\n\n", configPath)
	return nil
}

// generateStarterConfig creates a YAML config template.
func generateStarterConfig(result *detector.InspectionResult) string {
	compat := "incompatible, convert timestamps first"
	if result.Compatible() {
		compat = "compatible"
	}

	return fmt.Sprintf(`# LogLens Configuration
# Generated by: loglens inspect
# Native format compatibility: %.0f%% (%s)

detection:
  # Maximum span of a single error burst.
  error_cluster_window: %s

  # Standard deviations from the hourly mean before volume is anomalous.
  anomaly_threshold: %.1f

  # Occurrences before a normalized message counts as a repeated pattern.
  pattern_min_frequency: %d

  # Bucket width for trend comparison.
  trending_window: %s

# Webhooks receive pattern detection results as JSON.
# webhooks:
#   - name: alerts
#     url: https://example.com/hooks/loglens
#     token: ${LOGLENS_WEBHOOK_TOKEN}
#     trigger: on_findings
#     timeout: 10s
`, result.NativeConfidence*100, compat,
		config.DefaultErrorClusterWindow,
		config.DefaultAnomalyThreshold,
		config.DefaultPatternMinFrequency,
		config.DefaultTrendingWindow)
}
