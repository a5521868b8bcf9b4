package output

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/dustin/go-humanize"

	"github.com/ccollicutt/loglens/pkg/patterns"
	"github.com/ccollicutt/loglens/pkg/stats"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// FormatStatistics renders one section per statistics report.
func (f *TextFormatter) FormatStatistics(_ context.Context, reports []*StatisticsReport, w io.Writer) error {
	for i, report := range reports {
		if f.opts.Quiet {
			f.formatStatisticsQuiet(report, w)
			continue
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		f.formatStatisticsFull(report, w)
	}
	return nil
}

func (f *TextFormatter) formatStatisticsQuiet(report *StatisticsReport, w io.Writer) {
	if report.Error != "" {
		fmt.Fprintf(w, "LogLens: %s: %s\n", report.File, report.Error)
		return
	}
	fmt.Fprintf(w, "LogLens: %s: %d lines, %d valid, %d invalid\n",
		report.File, report.TotalLines, report.ValidEntries, report.InvalidEntries)
}

func (f *TextFormatter) formatStatisticsFull(report *StatisticsReport, w io.Writer) {
	fmt.Fprintf(w, "=== Log Statistics: %s ===\n", report.File)
	fmt.Fprintln(w)

	if report.Error != "" {
		fmt.Fprintf(w, "Error: %s\n", report.Error)
		return
	}

	s := report.Statistics
	if s.Basic == nil {
		fmt.Fprintln(w, report.Message)
		return
	}

	basic := s.Basic
	fmt.Fprintf(w, "Lines:    %s total, %s valid, %s invalid (%.1f%% parsed)\n",
		humanize.Comma(int64(basic.TotalLines)),
		humanize.Comma(int64(basic.ValidEntries)),
		humanize.Comma(int64(basic.InvalidEntries)),
		basic.SuccessRate)
	fmt.Fprintf(w, "Size:     %s, average line %.1f characters\n",
		humanize.Bytes(uint64(basic.EstimatedSizeBytes)),
		basic.AverageLineLength)

	if temporal := s.Temporal; temporal != nil {
		fmt.Fprintf(w, "Span:     %s to %s (%s)\n",
			temporal.EarliestEntry, temporal.LatestEntry, temporal.DurationHuman)
		fmt.Fprintf(w, "Activity: %.1f events/hour, peak hour %s (%d events), peak day %s (%d events)\n",
			temporal.AverageEventsPerHour,
			temporal.PeakHour.Time, temporal.PeakHour.Count,
			temporal.PeakDay.Date, temporal.PeakDay.Count)
	}

	if levels := s.Levels; levels != nil {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Levels:")
		for _, name := range sortedLevelNames(levels.LevelDistribution) {
			stat := levels.LevelDistribution[name]
			fmt.Fprintf(w, "  %-8s %6d  (%.1f%%)\n", name, stat.Count, stat.Percentage)
		}
		fmt.Fprintf(w, "Error rate: %.1f%%\n", levels.ErrorRate)
	}

	if messages := s.Messages; messages != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Messages: %d total, %d unique (ratio %.2f)\n",
			messages.TotalMessages, messages.UniqueMessages, messages.UniquenessRatio)
		if f.opts.Verbose {
			for _, wc := range messages.CommonWords {
				fmt.Fprintf(w, "  word %-16s %d\n", wc.Word, wc.Count)
			}
			for _, mc := range messages.RepeatedMessages {
				fmt.Fprintf(w, "  %dx %s\n", mc.Count, mc.Message)
			}
		}
	}

	if quality := s.Quality; quality != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Quality: %.1f/100 (completeness %.1f, consistency %d)\n",
			quality.OverallQualityScore, quality.CompletenessScore, quality.ConsistencyScore)
		for _, rec := range quality.Recommendations {
			fmt.Fprintf(w, "  - %s\n", rec)
		}
	}

	if f.opts.Verbose && len(report.InvalidEntryDetails) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Invalid entries:")
		for _, inv := range report.InvalidEntryDetails {
			fmt.Fprintf(w, "  line %d: %s (%s)\n", inv.LineNum, inv.Content, inv.Reason)
		}
	}
}

// FormatPatterns renders one section per pattern report.
func (f *TextFormatter) FormatPatterns(_ context.Context, reports []*PatternReport, w io.Writer) error {
	for i, report := range reports {
		if f.opts.Quiet {
			f.formatPatternsQuiet(report, w)
			continue
		}
		if i > 0 {
			fmt.Fprintln(w)
		}
		f.formatPatternsFull(report, w)
	}
	return nil
}

func (f *TextFormatter) formatPatternsQuiet(report *PatternReport, w io.Writer) {
	if report.Error != "" {
		fmt.Fprintf(w, "LogLens: %s: %s\n", report.File, report.Error)
		return
	}
	summary := report.Summary
	if summary == nil {
		fmt.Fprintf(w, "LogLens: %s: %s\n", report.File, report.Message)
		return
	}
	findings := len(summary.HighPriorityFindings) +
		len(summary.MediumPriorityFindings) +
		len(summary.LowPriorityFindings)
	fmt.Fprintf(w, "LogLens: %s: %d entries analyzed, %d finding(s), assessment %s\n",
		report.File, report.TotalEntriesAnalyzed, findings, summary.OverallAssessment)
}

func (f *TextFormatter) formatPatternsFull(report *PatternReport, w io.Writer) {
	fmt.Fprintf(w, "=== Pattern Detection: %s ===\n", report.File)
	fmt.Fprintln(w)

	if report.Error != "" {
		fmt.Fprintf(w, "Error: %s\n", report.Error)
		return
	}
	if report.Summary == nil {
		fmt.Fprintln(w, report.Message)
		return
	}

	fmt.Fprintf(w, "Assessment: %s\n", report.Summary.OverallAssessment)
	f.formatFindings(report.Summary, w)

	p := report.Patterns
	if clusters := p.ErrorClusters; clusters != nil && clusters.TotalClusters > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Error clusters: %d (%d errors inside)\n",
			clusters.TotalClusters, clusters.TotalErrorsInClusters)
		for _, c := range clusters.Clusters {
			fmt.Fprintf(w, "  - %s to %s: %d errors in %.0fs %v\n",
				c.StartTime, c.EndTime, c.ErrorCount, c.DurationSeconds, c.ErrorTypes)
			if f.opts.Verbose {
				for _, sample := range c.SampleMessages {
					fmt.Fprintf(w, "      %s\n", sample)
				}
			}
		}
	}

	if anomalies := p.Anomalies; anomalies != nil && anomalies.TotalAnomalies > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Volume anomalies: %d\n", anomalies.TotalAnomalies)
		for _, a := range anomalies.Anomalies {
			fmt.Fprintf(w, "  - %s: %s, %d events (expected %s, deviation %.2f)\n",
				a.Hour, a.Type, a.Count, a.ExpectedRange, a.Deviation)
		}
	}

	if repeated := p.RepeatedPatterns; repeated != nil && repeated.TotalPatterns > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Repeated patterns: %d (of %d unique messages)\n",
			repeated.TotalPatterns, repeated.TotalUniqueMessages)
		for _, rp := range repeated.Patterns {
			fmt.Fprintf(w, "  - %dx (%.1f%%): %s\n", rp.Frequency, rp.Percentage, rp.Pattern)
		}
	}

	if trending := p.TrendingIssues; trending != nil && trending.TotalTrending > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Trending issues: %d\n", trending.TotalTrending)
		for _, ti := range trending.TrendingIssues {
			fmt.Fprintf(w, "  - %.1fx (%.1f -> %.1f): %s\n",
				ti.TrendFactor, ti.EarlyAverage, ti.RecentAverage, ti.Pattern)
			if f.opts.Verbose {
				for _, tp := range ti.TimeSeries {
					fmt.Fprintf(w, "      %s  %d\n", tp.Time, tp.Count)
				}
			}
		}
	}

	if temporal := p.TemporalPatterns; temporal != nil {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Peak activity: hour %02d:00 (%d events), %s (%d events)\n",
			temporal.PeakHour.Hour, temporal.PeakHour.Count,
			temporal.PeakDay.Day, temporal.PeakDay.Count)
		fmt.Fprintf(w, "Business hours: %.1f%% of entries\n",
			temporal.BusinessHours.BusinessHoursPercentage)
		for _, prone := range temporal.ErrorProneHours {
			fmt.Fprintf(w, "  - hour %02d:00: %.1f%% errors (%d of %d)\n",
				prone.Hour, prone.ErrorRate, prone.ErrorCount, prone.TotalEntries)
		}
	}

	if categories := p.MessagePatterns; categories != nil && categories.TotalPatternTypes > 0 {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Message categories: %d\n", categories.TotalPatternTypes)
		for _, name := range sortedCategoryNames(categories.DetectedPatterns) {
			stat := categories.DetectedPatterns[name]
			fmt.Fprintf(w, "  - %s: %d matches (%.1f%%)\n", name, stat.TotalMatches, stat.Percentage)
			if f.opts.Verbose {
				for _, sample := range stat.SampleMessages {
					fmt.Fprintf(w, "      [%s] %s\n", sample.Level, sample.Message)
				}
			}
		}
	}
}

func (f *TextFormatter) formatFindings(summary *patterns.Summary, w io.Writer) {
	if len(summary.HighPriorityFindings) > 0 {
		fmt.Fprintln(w, "High priority:")
		for _, finding := range summary.HighPriorityFindings {
			fmt.Fprintf(w, "  - %s\n", finding)
		}
	}
	if len(summary.MediumPriorityFindings) > 0 {
		fmt.Fprintln(w, "Medium priority:")
		for _, finding := range summary.MediumPriorityFindings {
			fmt.Fprintf(w, "  - %s\n", finding)
		}
	}
	if len(summary.LowPriorityFindings) > 0 {
		fmt.Fprintln(w, "Low priority:")
		for _, finding := range summary.LowPriorityFindings {
			fmt.Fprintf(w, "  - %s\n", finding)
		}
	}
}

// sortedLevelNames orders levels by count descending, then name.
func sortedLevelNames(dist map[string]stats.LevelStat) []string {
	names := make([]string, 0, len(dist))
	for name := range dist {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if dist[names[i]].Count != dist[names[j]].Count {
			return dist[names[i]].Count > dist[names[j]].Count
		}
		return names[i] < names[j]
	})
	return names
}

// sortedCategoryNames orders categories by match count descending, then name.
func sortedCategoryNames(detected map[string]patterns.CategoryStat) []string {
	names := make([]string, 0, len(detected))
	for name := range detected {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if detected[names[i]].TotalMatches != detected[names[j]].TotalMatches {
			return detected[names[i]].TotalMatches > detected[names[j]].TotalMatches
		}
		return names[i] < names[j]
	})
	return names
}
