package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ccollicutt/loglens/pkg/analyzer"
	"github.com/ccollicutt/loglens/pkg/output"
	"github.com/ccollicutt/loglens/pkg/parser"
)

// StatsOptions holds command-line options for the stats command.
type StatsOptions struct {
	Output      string
	Concurrency int
	Verbose     bool
	Quiet       bool
	Debug       bool
}

// NewStatsCommand creates the stats command.
func NewStatsCommand() *cobra.Command {
	opts := &StatsOptions{}

	cmd := &cobra.Command{
		Use:   "stats <log-file>...",
		Short: "Compute statistics for log files",
		Long: `Compute statistics for one or more log files.

Reports:
  - Line counts and parse success rate
  - Level distribution and error rate
  - Time span and busiest periods
  - Message analysis (lengths, repeated messages)
  - Data quality score with recommendations

Glob patterns are expanded and each file is analyzed independently.
A file that cannot be read is reported with an error field rather
than aborting the run.

Exit codes:
  0 - All files analyzed
  2 - Configuration or runtime error`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", 4, "Maximum files analyzed in parallel")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show invalid entry details")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "One line per file")
	cmd.Flags().BoolVar(&opts.Debug, "debug", false, "Log engine diagnostics to stderr")

	return cmd
}

func runStats(cmd *cobra.Command, args []string, opts *StatsOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.Concurrency < 1 {
		return fmt.Errorf("concurrency must be at least 1, got %d", opts.Concurrency)
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

	reports := analyzeStatistics(ctx, eng, files, opts.Concurrency)

	formatter, err := newFormatter(opts.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	if err := formatter.FormatStatistics(ctx, reports, os.Stdout); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// A failed file is rendered with its error field; flag it here
	for _, r := range reports {
		if r.Error != "" {
			ExitCode = 2
			break
		}
	}

	return nil
}

// analyzeStatistics runs the engine over files with bounded parallelism.
// Results keep the input file order.
func analyzeStatistics(ctx context.Context, eng *analyzer.Engine, files []string, concurrency int) []*output.StatisticsReport {
	reports := make([]*output.StatisticsReport, len(files))

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			reports[i] = &output.StatisticsReport{
				File:             file,
				StatisticsResult: eng.AnalyzeStatistics(ctx, file),
			}
			return nil
		})
	}
	// Analyses report failures in their result, never as errors
	_ = g.Wait()

	return reports
}
