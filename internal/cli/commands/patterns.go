package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ccollicutt/loglens/pkg/analyzer"
	"github.com/ccollicutt/loglens/pkg/config"
	"github.com/ccollicutt/loglens/pkg/output"
	"github.com/ccollicutt/loglens/pkg/parser"
	"github.com/ccollicutt/loglens/pkg/patterns"
	"github.com/ccollicutt/loglens/pkg/webhook"
)

// PatternsOptions holds command-line options for the patterns command.
type PatternsOptions struct {
	Output      string
	ConfigFile  string
	Concurrency int
	Verbose     bool
	Quiet       bool
	Debug       bool

	// Detection overrides
	ClusterWindow    time.Duration
	AnomalyThreshold float64
	MinFrequency     int
	TrendingWindow   time.Duration

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewPatternsCommand creates the patterns command.
func NewPatternsCommand() *cobra.Command {
	opts := &PatternsOptions{}

	cmd := &cobra.Command{
		Use:   "patterns <log-file>...",
		Short: "Detect suspicious patterns in log files",
		Long: `Detect suspicious patterns in one or more log files.

Detects:
  - Error clusters (bursts of errors within a time window)
  - Volume anomalies (hours far from the usual log volume)
  - Repeated message patterns (normalized templates)
  - Trending issues (problem messages that are accelerating)
  - Temporal patterns (peak hours, error-prone hours)
  - Message categories (database, network, auth, ...)

Detection settings layer in rising precedence: config file, LOGLENS_*
environment variables, then flags set explicitly on the command line.

Exit codes:
  0 - Nothing above a normal assessment
  1 - Findings above normal detected
  2 - Configuration or runtime error`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPatterns(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().StringVar(&opts.ConfigFile, "config", "", "Path to a loglens config file")
	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", 4, "Maximum files analyzed in parallel")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show samples and series detail")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "One line per file")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "Log engine diagnostics to stderr")

	// Detection flags
	cmd.Flags().DurationVar(&opts.ClusterWindow, "cluster-window", config.DefaultErrorClusterWindow, "Maximum span of one error burst")
	cmd.Flags().Float64Var(&opts.AnomalyThreshold, "anomaly-threshold", config.DefaultAnomalyThreshold, "Standard deviations before hourly volume is anomalous")
	cmd.Flags().IntVar(&opts.MinFrequency, "min-frequency", config.DefaultPatternMinFrequency, "Occurrences before a message pattern counts as repeated")
	cmd.Flags().DurationVar(&opts.TrendingWindow, "trending-window", config.DefaultTrendingWindow, "Bucket width for trend comparison")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "on_findings", "When to fire webhook (on_findings|always|never)")

	return cmd
}

func runPatterns(cmd *cobra.Command, args []string, opts *PatternsOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", opts.Concurrency)
	}

	cfg, err := resolveConfig(ctx, cmd, opts)
	if err != nil {
		return err
	}

	files, err := parser.ExpandGlobs(args)
	if err != nil {
		return fmt.Errorf("expanding log paths: %w", err)
	}

	logger, err := newLogger(opts.Debug)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	eng := analyzer.New(analyzer.WithLogger(logger))

	reports := detectPatterns(ctx, eng, files, cfg.Detection, opts.Concurrency)

	formatter, err := newFormatter(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	if err := formatter.FormatPatterns(ctx, reports, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// Webhooks fire after output so a slow endpoint never delays the report
	sendWebhooks(ctx, collectWebhooks(cfg, opts), reports)

	failed := false
	worst := patterns.AssessmentNormal
	for _, r := range reports {
		if r.Error != "" {
			failed = true
		}
		if a := r.Assessment(); a.MoreSevere(worst) {
			worst = a
		}
	}
	switch {
	case failed:
		ExitCode = 2
	case worst.MoreSevere(patterns.AssessmentNormal):
		ExitCode = 1
	}

	return nil
}

// resolveConfig layers detection settings: config file (or environment
// defaults when no file is given), then any flags the user set explicitly.
func resolveConfig(ctx context.Context, cmd *cobra.Command, opts *PatternsOptions) (*config.Config, error) {
	var cfg *config.Config

	if opts.ConfigFile != "" {
		loaded, err := config.Load(ctx, opts.ConfigFile)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.FromEnvironment()
	}

	flags := cmd.Flags()
	if flags.Changed("cluster-window") {
		cfg.Detection.ErrorClusterWindow = opts.ClusterWindow
	}
	if flags.Changed("anomaly-threshold") {
		cfg.Detection.AnomalyThreshold = opts.AnomalyThreshold
	}
	if flags.Changed("min-frequency") {
		cfg.Detection.PatternMinFrequency = opts.MinFrequency
	}
	if flags.Changed("trending-window") {
		cfg.Detection.TrendingWindow = opts.TrendingWindow
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// detectPatterns runs the engine over files with bounded parallelism.
// Results keep the input file order.
func detectPatterns(ctx context.Context, eng *analyzer.Engine, files []string, detection config.DetectionConfig, concurrency int) []*output.PatternReport {
	reports := make([]*output.PatternReport, len(files))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			reports[i] = &output.PatternReport{
				File:          file,
				PatternResult: eng.DetectPatterns(ctx, file, detection),
			}
			return nil
		})
	}
	_ = g.Wait()

	return reports
}

// collectWebhooks merges config file webhooks with the CLI webhook.
func collectWebhooks(cfg *config.Config, opts *PatternsOptions) []config.WebhookConfig {
	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)

	webhooks = append(webhooks, cfg.Webhooks...)

	if opts.WebhookURL != "" {
		trigger := config.WebhookTrigger(opts.WebhookTrigger)
		if trigger == "" {
			trigger = config.WebhookTriggerOnFindings
		}

		webhooks = append(webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: trigger,
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	return webhooks
}

// sendWebhooks delivers each report to every webhook whose trigger
// condition holds. Errors are logged to stderr but don't fail the run.
func sendWebhooks(ctx context.Context, webhooks []config.WebhookConfig, reports []*output.PatternReport) {
	if len(webhooks) == 0 {
		return
	}

	client := webhook.NewClient()

	for _, wh := range webhooks {
		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		for _, report := range reports {
			if !webhook.ShouldSend(wh.Trigger, report) {
				continue
			}

			resp := client.Send(ctx, report, webhook.OptionsFromConfig(wh))
			if resp.Success() {
				fmt.Fprintf(os.Stderr, "Webhook %s: sent %s (%d, %s)\n", name, report.File, resp.StatusCode, resp.Duration)
			} else {
				fmt.Fprintf(os.Stderr, "Webhook %s: failed for %s (%v)\n", name, report.File, resp.Error)
			}
		}
	}
}
