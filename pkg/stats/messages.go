package stats

import (
	"regexp"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/ccollicutt/loglens/pkg/parser"
)

var wordPattern = regexp.MustCompile(`\b\w+\b`)

// Messages analyzes the free-text message population. Empty messages
// are excluded from every metric. Returns nil when there are no valid
// entries.
func Messages(entries []*parser.Entry) *MessageReport {
	if len(entries) == 0 {
		return nil
	}

	var messages []string
	for _, e := range entries {
		if e.Message != "" {
			messages = append(messages, e.Message)
		}
	}

	messageCounts := make(map[string]int)
	wordCounts := make(map[string]int)
	lengths := make([]float64, len(messages))
	for i, m := range messages {
		messageCounts[m]++
		lengths[i] = float64(len(m))
		for _, w := range wordPattern.FindAllString(strings.ToLower(m), -1) {
			wordCounts[w]++
		}
	}

	var lengthStats MessageLengthStats
	if len(lengths) > 0 {
		lengthStats = MessageLengthStats{
			Average: round2(stat.Mean(lengths, nil)),
			Maximum: int(floats.Max(lengths)),
			Minimum: int(floats.Min(lengths)),
		}
	}

	var uniquenessRatio float64
	if len(messages) > 0 {
		uniquenessRatio = round2(float64(len(messageCounts)) / float64(len(messages)) * 100)
	}

	commonWords := make([]WordCount, 0, 10)
	for _, w := range rankCounts(wordCounts, 10) {
		commonWords = append(commonWords, WordCount{Word: w, Count: wordCounts[w]})
	}

	repeated := make([]MessageCount, 0, 5)
	for _, m := range rankCounts(messageCounts, 5) {
		if messageCounts[m] > 1 {
			repeated = append(repeated, MessageCount{Message: m, Count: messageCounts[m]})
		}
	}

	return &MessageReport{
		TotalMessages:    len(messages),
		UniqueMessages:   len(messageCounts),
		UniquenessRatio:  uniquenessRatio,
		LengthStats:      lengthStats,
		CommonWords:      commonWords,
		RepeatedMessages: repeated,
	}
}
