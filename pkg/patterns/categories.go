package patterns

import (
	"regexp"
	"time"

	"github.com/ccollicutt/loglens/pkg/parser"
)

// categoryPatterns is the fixed message classification table. A message
// may match any number of categories.
var categoryPatterns = map[string]*regexp.Regexp{
	"connection_issues": regexp.MustCompile(`(?i)(connection|connect|disconnect|timeout|refused)`),
	"authentication":    regexp.MustCompile(`(?i)(auth|login|logout|credential|password|token)`),
	"performance":       regexp.MustCompile(`(?i)(slow|timeout|latency|response.*time|performance)`),
	"database":          regexp.MustCompile(`(?i)(database|db|sql|query|transaction)`),
	"memory_issues":     regexp.MustCompile(`(?i)(memory|heap|oom|out.*of.*memory)`),
	"file_operations":   regexp.MustCompile(`(?i)(file|read|write|open|close|permission)`),
	"network":           regexp.MustCompile(`(?i)(network|http|tcp|udp|socket|port)`),
	"security":          regexp.MustCompile(`(?i)(security|attack|breach|unauthorized|forbidden)`),
}

// DetectMessagePatterns classifies messages against the fixed category
// table. Only categories with at least one match appear in the report;
// each carries up to 3 truncated sample messages in file order.
func DetectMessagePatterns(entries []*parser.Entry) *MessagePatternsReport {
	matched := make(map[string][]*parser.Entry)
	for _, e := range entries {
		for name, re := range categoryPatterns {
			if re.MatchString(e.Message) {
				matched[name] = append(matched[name], e)
			}
		}
	}

	detected := make(map[string]CategoryStat, len(matched))
	for name, hits := range matched {
		levels := make(map[string]int)
		for _, e := range hits {
			levels[e.Level]++
		}

		samples := make([]SampleMessage, 0, 3)
		for _, e := range hits {
			if len(samples) == 3 {
				break
			}
			samples = append(samples, SampleMessage{
				Timestamp: e.Timestamp.Format(time.RFC3339),
				Level:     e.Level,
				Message:   truncate(e.Message, 100),
			})
		}

		detected[name] = CategoryStat{
			TotalMatches:      len(hits),
			Percentage:        round2(float64(len(hits)) / float64(len(entries)) * 100),
			LevelDistribution: levels,
			SampleMessages:    samples,
		}
	}

	return &MessagePatternsReport{
		DetectedPatterns:  detected,
		TotalPatternTypes: len(detected),
	}
}
