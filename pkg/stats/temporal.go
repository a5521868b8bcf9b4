package stats

import (
	"sort"
	"time"

	"github.com/ccollicutt/loglens/pkg/parser"
)

// Temporal analyzes how entries spread across hours and days. Returns
// nil when there are no valid entries.
func Temporal(entries []*parser.Entry) *TemporalReport {
	if len(entries) == 0 {
		return nil
	}

	timestamps := make([]time.Time, len(entries))
	for i, e := range entries {
		timestamps[i] = e.Timestamp
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i].Before(timestamps[j]) })

	earliest := timestamps[0]
	latest := timestamps[len(timestamps)-1]
	duration := latest.Sub(earliest)

	hourly := make(map[string]int)
	daily := make(map[string]int)
	for _, ts := range timestamps {
		hourly[ts.Format("2006-01-02 15:00")]++
		daily[ts.Format("2006-01-02")]++
	}

	peakHourKey, peakHourCount := peakBucket(hourly)
	peakDayKey, peakDayCount := peakBucket(daily)

	// Spans are floored at one unit so short files still get a rate.
	hoursSpan := duration.Hours()
	if hoursSpan < 1 {
		hoursSpan = 1
	}
	daysSpan := int(duration/(24*time.Hour)) + 1

	total := len(timestamps)
	return &TemporalReport{
		EarliestEntry:        earliest.Format(time.RFC3339),
		LatestEntry:          latest.Format(time.RFC3339),
		DurationSeconds:      duration.Seconds(),
		DurationHuman:        duration.String(),
		TotalEvents:          total,
		AverageEventsPerHour: round2(float64(total) / hoursSpan),
		AverageEventsPerDay:  round2(float64(total) / float64(daysSpan)),
		PeakHour:             PeakHour{Time: peakHourKey, Count: peakHourCount},
		PeakDay:              PeakDay{Date: peakDayKey, Count: peakDayCount},
		UniqueHours:          len(hourly),
		UniqueDays:           len(daily),
	}
}

// peakBucket finds the highest-count bucket. Ties go to the earliest
// key, which sorts first because keys are zero-padded date strings.
func peakBucket(counts map[string]int) (string, int) {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var bestKey string
	var bestCount int
	for _, k := range keys {
		if counts[k] > bestCount {
			bestKey, bestCount = k, counts[k]
		}
	}
	return bestKey, bestCount
}
