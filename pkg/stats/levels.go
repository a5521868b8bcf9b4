package stats

import "github.com/ccollicutt/loglens/pkg/parser"

// severityByLevel rolls individual levels up into coarse severity
// buckets. Levels not listed here count as "unknown".
var severityByLevel = map[string]string{
	"ERROR":    "high",
	"FATAL":    "high",
	"CRITICAL": "high",
	"WARN":     "medium",
	"WARNING":  "medium",
	"INFO":     "low",
	"DEBUG":    "low",
	"TRACE":    "low",
}

// Levels analyzes the distribution of log levels. Returns nil when
// there are no valid entries.
func Levels(entries []*parser.Entry) *LevelReport {
	if len(entries) == 0 {
		return nil
	}

	counts := make(map[string]int)
	for _, e := range entries {
		counts[e.Level]++
	}
	total := len(entries)

	distribution := make(map[string]LevelStat, len(counts))
	severity := make(map[string]int)
	for level, count := range counts {
		distribution[level] = LevelStat{
			Count:      count,
			Percentage: round2(float64(count) / float64(total) * 100),
		}
		sev, ok := severityByLevel[level]
		if !ok {
			sev = "unknown"
		}
		severity[sev] += count
	}

	top := rankCounts(counts, 1)[0]

	return &LevelReport{
		LevelDistribution:    distribution,
		TotalUniqueLevels:    len(counts),
		MostCommonLevel:      LevelCount{Level: top, Count: counts[top]},
		SeverityDistribution: severity,
		ErrorRate:            round2(float64(counts["ERROR"]) / float64(total) * 100),
	}
}
