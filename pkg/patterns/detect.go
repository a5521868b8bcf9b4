// Package patterns detects error clusters, volume anomalies, repeated
// and trending message shapes, temporal activity patterns, and message
// categories in parsed log entries.
package patterns

import (
	"math"

	"github.com/ccollicutt/loglens/pkg/config"
	"github.com/ccollicutt/loglens/pkg/parser"
)

// Detect runs every detector over the parsed entries. Detectors whose
// preconditions are unmet (too few errors, too few buckets) produce
// empty sub-reports without affecting their siblings.
func Detect(entries []*parser.Entry, cfg config.DetectionConfig) *Report {
	return &Report{
		ErrorClusters:    DetectErrorClusters(entries, cfg.ErrorClusterWindow),
		Anomalies:        DetectAnomalies(entries, cfg.AnomalyThreshold),
		RepeatedPatterns: DetectRepeatedPatterns(entries, cfg.PatternMinFrequency),
		TrendingIssues:   DetectTrendingIssues(entries, cfg.TrendingWindow),
		TemporalPatterns: DetectTemporalPatterns(entries),
		MessagePatterns:  DetectMessagePatterns(entries),
	}
}

// round2 rounds to two decimal places for report output.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// truncate shortens s to at most n characters.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
