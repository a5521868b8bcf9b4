// Package analyzer runs whole-file log analysis and reports the outcome
// as JSON-ready result records. Failures never cross the package
// boundary as errors or panics: a run that cannot complete returns a
// result whose Error field says why.
package analyzer

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ccollicutt/loglens/pkg/config"
	"github.com/ccollicutt/loglens/pkg/parser"
	"github.com/ccollicutt/loglens/pkg/patterns"
	"github.com/ccollicutt/loglens/pkg/stats"
)

// maxInvalidSamples caps how many unparseable lines a statistics result
// reproduces verbatim.
const maxInvalidSamples = 10

// Engine analyzes log files. The zero value is not usable; construct
// with New. An Engine holds no per-run state, so a single instance may
// serve concurrent calls.
type Engine struct {
	logger *zap.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for diagnostic output.
func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an analysis engine. Without options it logs nothing.
func New(opts ...Option) *Engine {
	e := &Engine{
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AnalyzeStatistics reads the log file at path and computes the full
// statistics report. It always returns a usable result: file errors and
// internal failures are reported through the result's Error field.
func (e *Engine) AnalyzeStatistics(ctx context.Context, path string) (result *StatisticsResult) {
	result = &StatisticsResult{
		AnalysisID:          uuid.New().String(),
		Statistics:          &stats.Report{},
		InvalidEntryDetails: []parser.InvalidEntry{},
	}
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("statistics analysis panicked",
				zap.String("file", path), zap.Any("panic", r))
			result = &StatisticsResult{
				AnalysisID:          result.AnalysisID,
				Statistics:          &stats.Report{},
				InvalidEntryDetails: []parser.InvalidEntry{},
				Error:               fmt.Sprintf("Analysis failed: %v", r),
			}
		}
	}()

	start := time.Now()

	scan, err := parser.ScanFile(ctx, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			result.Error = fmt.Sprintf("File not found: %s", path)
		} else {
			result.Error = fmt.Sprintf("Analysis failed: %v", err)
		}
		return result
	}

	if scan.Empty() {
		result.Message = "File is empty"
		return result
	}

	result.TotalLines = scan.TotalLines
	result.ValidEntries = len(scan.Entries)
	result.InvalidEntries = len(scan.Invalid)
	result.Statistics = stats.Compute(scan)

	samples := scan.Invalid
	if len(samples) > maxInvalidSamples {
		samples = samples[:maxInvalidSamples]
	}
	result.InvalidEntryDetails = append(result.InvalidEntryDetails, samples...)

	result.AnalyzedAt = time.Now().UTC().Format(time.RFC3339)
	result.Message = fmt.Sprintf("Successfully analyzed %d lines with %d valid entries",
		scan.TotalLines, len(scan.Entries))

	e.logger.Debug("statistics analysis complete",
		zap.String("file", path),
		zap.Int("total_lines", scan.TotalLines),
		zap.Int("valid_entries", len(scan.Entries)),
		zap.Duration("elapsed", time.Since(start)))

	return result
}

// DetectPatterns reads the log file at path and runs every pattern
// detector over its parsed entries. Zero-valued fields in cfg fall back
// to the package defaults. Like AnalyzeStatistics it never returns an
// error; failures land in the result's Error field.
func (e *Engine) DetectPatterns(ctx context.Context, path string, cfg config.DetectionConfig) (result *PatternResult) {
	cfg = cfg.WithDefaults()

	result = &PatternResult{
		AnalysisID: uuid.New().String(),
		Patterns:   &patterns.Report{},
	}
	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("pattern detection panicked",
				zap.String("file", path), zap.Any("panic", r))
			result = &PatternResult{
				AnalysisID: result.AnalysisID,
				Patterns:   &patterns.Report{},
				Error:      fmt.Sprintf("Pattern detection failed: %v", r),
			}
		}
	}()

	start := time.Now()

	scan, err := parser.ScanFile(ctx, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			result.Error = fmt.Sprintf("File not found: %s", path)
		} else {
			result.Error = fmt.Sprintf("Pattern detection failed: %v", err)
		}
		return result
	}

	if scan.Empty() {
		result.Message = "File is empty"
		return result
	}
	if len(scan.Entries) == 0 {
		result.Message = "No valid log entries found for pattern detection"
		return result
	}

	report := patterns.Detect(scan.Entries, cfg)
	summary := patterns.Summarize(report)

	result.TotalEntriesAnalyzed = len(scan.Entries)
	result.Patterns = report
	result.Summary = &summary
	result.AnalyzedAt = time.Now().UTC().Format(time.RFC3339)
	result.DetectionConfig = newDetectionEcho(cfg)
	result.Message = fmt.Sprintf("Successfully analyzed %d entries for patterns", len(scan.Entries))

	e.logger.Debug("pattern detection complete",
		zap.String("file", path),
		zap.Int("entries", len(scan.Entries)),
		zap.String("assessment", string(summary.OverallAssessment)),
		zap.Duration("elapsed", time.Since(start)))

	return result
}
