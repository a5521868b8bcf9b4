package output

import (
	"context"
	"encoding/json"
	"io"

	"github.com/ccollicutt/loglens/pkg/patterns"
	"github.com/ccollicutt/loglens/pkg/stats"
)

// JSONFormatter formats reports as JSON. A single report encodes as one
// object, several as an array.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// FormatStatistics renders the statistics reports as JSON.
func (f *JSONFormatter) FormatStatistics(_ context.Context, reports []*StatisticsReport, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if f.opts.Quiet {
		// Quiet mode: basic statistics only
		type quietReport struct {
			File  string             `json:"file"`
			Basic *stats.BasicReport `json:"basic_statistics"`
			Error string             `json:"error,omitempty"`
		}
		quiet := make([]quietReport, 0, len(reports))
		for _, r := range reports {
			quiet = append(quiet, quietReport{File: r.File, Basic: r.Statistics.Basic, Error: r.Error})
		}
		if len(quiet) == 1 {
			return encoder.Encode(quiet[0])
		}
		return encoder.Encode(quiet)
	}

	if len(reports) == 1 {
		return encoder.Encode(reports[0])
	}
	return encoder.Encode(reports)
}

// FormatPatterns renders the pattern reports as JSON.
func (f *JSONFormatter) FormatPatterns(_ context.Context, reports []*PatternReport, w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	if f.opts.Quiet {
		// Quiet mode: just the summary
		type quietReport struct {
			File    string            `json:"file"`
			Summary *patterns.Summary `json:"summary,omitempty"`
			Error   string            `json:"error,omitempty"`
		}
		quiet := make([]quietReport, 0, len(reports))
		for _, r := range reports {
			quiet = append(quiet, quietReport{File: r.File, Summary: r.Summary, Error: r.Error})
		}
		if len(quiet) == 1 {
			return encoder.Encode(quiet[0])
		}
		return encoder.Encode(quiet)
	}

	if len(reports) == 1 {
		return encoder.Encode(reports[0])
	}
	return encoder.Encode(reports)
}
