package output

import (
	"context"
	"io"
)

// Formatter renders analysis results in a specific format.
type Formatter interface {
	// FormatStatistics renders one report per analyzed file.
	FormatStatistics(ctx context.Context, reports []*StatisticsReport, w io.Writer) error

	// FormatPatterns renders one report per analyzed file.
	FormatPatterns(ctx context.Context, reports []*PatternReport, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// New returns the formatter for the given format name.
func New(format string, opts FormatOptions) (Formatter, bool) {
	switch format {
	case "text":
		return NewTextFormatter(opts), true
	case "json":
		return NewJSONFormatter(opts), true
	default:
		return nil, false
	}
}
