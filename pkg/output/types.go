// Package output renders analysis results as human-readable text or JSON.
package output

import (
	"github.com/ccollicutt/loglens/pkg/analyzer"
)

// StatisticsReport pairs a statistics result with the file it came from.
// The embedded result marshals flattened, so JSON output carries the
// file alongside the result's own fields.
type StatisticsReport struct {
	File string `json:"file"`
	*analyzer.StatisticsResult
}

// PatternReport pairs a pattern detection result with its source file.
type PatternReport struct {
	File string `json:"file"`
	*analyzer.PatternResult
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Verbose enables detailed output including samples and time series.
	Verbose bool

	// Quiet enables minimal summary-only output.
	Quiet bool
}
