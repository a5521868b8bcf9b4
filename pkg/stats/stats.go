// Package stats computes statistical reports over a parsed log file.
package stats

import (
	"math"
	"sort"

	"github.com/ccollicutt/loglens/pkg/parser"
)

// Compute builds the full statistics report for one scanned file. An
// empty file yields an empty report with every sub-report nil.
func Compute(scan *parser.ScanResult) *Report {
	if scan.Empty() {
		return &Report{}
	}

	return &Report{
		Basic:    Basic(scan),
		Temporal: Temporal(scan.Entries),
		Levels:   Levels(scan.Entries),
		Messages: Messages(scan.Entries),
		Quality:  Quality(scan),
	}
}

// Basic computes line-level counts and size figures.
func Basic(scan *parser.ScanResult) *BasicReport {
	total := scan.TotalLines

	var avgLength, successRate float64
	if total > 0 {
		avgLength = float64(scan.TotalChars) / float64(total)
		successRate = float64(len(scan.Entries)) / float64(total) * 100
	}

	return &BasicReport{
		TotalLines:         total,
		ValidEntries:       len(scan.Entries),
		InvalidEntries:     len(scan.Invalid),
		SuccessRate:        round2(successRate),
		AverageLineLength:  round2(avgLength),
		TotalCharacters:    scan.TotalChars,
		EstimatedSizeBytes: scan.TotalChars,
	}
}

// round2 rounds to two decimal places for report output.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// rankCounts returns keys ordered by count descending, at most limit of
// them. Equal counts are ordered by key so output is deterministic.
func rankCounts(counts map[string]int, limit int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if len(keys) > limit {
		keys = keys[:limit]
	}
	return keys
}
