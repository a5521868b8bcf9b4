package patterns

import (
	"sort"

	"github.com/ccollicutt/loglens/pkg/normalize"
	"github.com/ccollicutt/loglens/pkg/parser"
)

// DetectRepeatedPatterns groups messages by normalized shape and
// reports the shapes recurring at least minFrequency times, capped at
// the top 20 by frequency. Each shape carries the first message that
// produced it as an example.
func DetectRepeatedPatterns(entries []*parser.Entry, minFrequency int) *RepeatedReport {
	counts := make(map[string]int)
	firstSeen := make(map[string]string)

	for _, e := range entries {
		shape := normalize.Message(e.Message)
		counts[shape]++
		if _, ok := firstSeen[shape]; !ok {
			firstSeen[shape] = e.Message
		}
	}

	found := make([]RepeatedPattern, 0)
	for shape, count := range counts {
		if count < minFrequency {
			continue
		}
		found = append(found, RepeatedPattern{
			Pattern:         shape,
			OriginalExample: firstSeen[shape],
			Frequency:       count,
			Percentage:      round2(float64(count) / float64(len(entries)) * 100),
		})
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].Frequency != found[j].Frequency {
			return found[i].Frequency > found[j].Frequency
		}
		return found[i].Pattern < found[j].Pattern
	})

	report := &RepeatedReport{
		TotalPatterns:       len(found),
		TotalUniqueMessages: len(counts),
	}
	if len(found) > 20 {
		found = found[:20]
	}
	report.Patterns = found
	return report
}
