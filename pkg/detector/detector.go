// Package detector inspects log files and reports whether their
// timestamps are readable by the analysis engine, and if not, which
// known format they most resemble.
package detector

import (
	"bufio"
	"context"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/ccollicutt/loglens/pkg/parser"
)

// compatibilityThreshold is the share of sampled lines that must carry
// a native timestamp for a file to count as analyzable.
const compatibilityThreshold = 0.5

// InspectionResult holds the outcome of sampling one log file.
type InspectionResult struct {
	SampledLines     int           // Lines examined (blank and comment lines skipped)
	NativeLines      int           // Lines the analysis parser accepts
	NativeConfidence float64       // NativeLines / SampledLines
	Matches          []FormatMatch // Catalog formats that matched, best first
	AmbiguityNote    string        // Set when the best match has date ordering ambiguity
}

// FormatMatch is one catalog format found in the sample.
type FormatMatch struct {
	Format     *TimestampFormat
	Confidence float64   // 0.0 to 1.0, share of sampled lines matched
	MatchCount int       // Lines that matched
	SampleLine string    // Example line that matched
	ParsedTime time.Time // Parsed timestamp from the sample line
}

// Inspector samples log files against the format catalog.
type Inspector struct {
	formats    []*TimestampFormat
	sampleSize int
}

// Option configures the Inspector.
type Option func(*Inspector)

// WithSampleSize sets the number of lines to sample (default 100).
func WithSampleSize(n int) Option {
	return func(ins *Inspector) {
		if n > 0 {
			ins.sampleSize = n
		}
	}
}

// New creates an Inspector over the known format catalog.
func New(opts ...Option) *Inspector {
	ins := &Inspector{
		formats:    KnownFormats(),
		sampleSize: 100,
	}
	for _, opt := range opts {
		opt(ins)
	}
	return ins
}

// Inspect samples the file at path and classifies its timestamps.
func (ins *Inspector) Inspect(ctx context.Context, path string) (*InspectionResult, error) {
	lines, err := ins.sampleFile(ctx, path)
	if err != nil {
		return nil, err
	}
	return ins.InspectLines(lines), nil
}

// InspectLines classifies a slice of raw log lines.
func (ins *Inspector) InspectLines(lines []string) *InspectionResult {
	result := &InspectionResult{
		SampledLines: len(lines),
	}

	if len(lines) == 0 {
		return result
	}

	type formatStats struct {
		format     *TimestampFormat
		matchCount int
		sampleLine string
		parsedTime time.Time
	}

	stats := make(map[string]*formatStats)

	for _, line := range lines {
		line = strings.TrimSpace(line)

		if _, err := parser.ParseLine(line); err == nil {
			result.NativeLines++
		}

		for _, format := range ins.formats {
			matches := format.Pattern.FindStringSubmatch(line)
			if len(matches) < 2 {
				continue
			}

			parsedTime, ok := parseTimestamp(matches[1], format.Layout)
			if !ok {
				continue
			}

			if stats[format.Name] == nil {
				stats[format.Name] = &formatStats{
					format:     format,
					sampleLine: line,
					parsedTime: parsedTime,
				}
			}
			stats[format.Name].matchCount++
		}
	}

	result.NativeConfidence = float64(result.NativeLines) / float64(len(lines))

	for _, s := range stats {
		result.Matches = append(result.Matches, FormatMatch{
			Format:     s.format,
			Confidence: float64(s.matchCount) / float64(len(lines)),
			MatchCount: s.matchCount,
			SampleLine: s.sampleLine,
			ParsedTime: s.parsedTime,
		})
	}

	// Best match first: confidence descending, then the more specific
	// (longer) pattern on ties.
	sort.Slice(result.Matches, func(i, j int) bool {
		if result.Matches[i].Confidence != result.Matches[j].Confidence {
			return result.Matches[i].Confidence > result.Matches[j].Confidence
		}
		return len(result.Matches[i].Format.PatternStr) > len(result.Matches[j].Format.PatternStr)
	})

	if best := result.BestMatch(); best != nil && best.Format.Ambiguous {
		result.AmbiguityNote = "This format has date ordering ambiguity (MM/DD vs DD/MM); " +
			"verify which one your logs use before converting them."
	}

	return result
}

// parseTimestamp parses a timestamp string using the given layout.
// Unix second and millisecond counts use dedicated pseudo-layouts.
func parseTimestamp(tsStr, layout string) (time.Time, bool) {
	switch layout {
	case "UNIX_SECONDS":
		secs, err := strconv.ParseInt(tsStr, 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		// Reject values outside 1970-2100
		if secs < 0 || secs > 4102444800 {
			return time.Time{}, false
		}
		return time.Unix(secs, 0), true

	case "UNIX_MILLIS":
		millis, err := strconv.ParseInt(tsStr, 10, 64)
		if err != nil {
			return time.Time{}, false
		}
		if secs := millis / 1000; secs < 0 || secs > 4102444800 {
			return time.Time{}, false
		}
		return time.UnixMilli(millis), true

	default:
		t, err := time.Parse(layout, tsStr)
		if err != nil {
			return time.Time{}, false
		}
		return t, true
	}
}

// sampleFile reads up to sampleSize content lines from the head of the
// file, skipping blanks and comment lines.
func (ins *Inspector) sampleFile(ctx context.Context, path string) ([]string, error) {
	file, err := os.Open(path) // #nosec G304 -- user-provided log path is expected
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() && len(lines) < ins.sampleSize {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		trimmed := strings.TrimSpace(scanner.Text())
		if trimmed != "" && !strings.HasPrefix(trimmed, "#") {
			lines = append(lines, trimmed)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// Compatible reports whether enough of the sample parses natively for
// analysis to be worthwhile.
func (r *InspectionResult) Compatible() bool {
	return r.SampledLines > 0 && r.NativeConfidence >= compatibilityThreshold
}

// BestMatch returns the highest confidence match, or nil if none found.
func (r *InspectionResult) BestMatch() *FormatMatch {
	if len(r.Matches) == 0 {
		return nil
	}
	return &r.Matches[0]
}
