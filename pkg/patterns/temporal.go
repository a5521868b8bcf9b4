package patterns

import (
	"sort"
	"time"

	"github.com/ccollicutt/loglens/pkg/parser"
)

// DetectTemporalPatterns builds hour-of-day and day-of-week histograms
// and derives peaks, error-prone hours, and the business-hours split.
func DetectTemporalPatterns(entries []*parser.Entry) *TemporalReport {
	hourCounts := make(map[int]int)
	dayCounts := make(map[string]int)
	errorsByHour := make(map[int]int)

	for _, e := range entries {
		hour := e.Timestamp.Hour()
		hourCounts[hour]++
		dayCounts[e.Timestamp.Weekday().String()]++
		if e.Level == "ERROR" || e.Level == "FATAL" {
			errorsByHour[hour]++
		}
	}

	return &TemporalReport{
		HourlyDistribution: hourCounts,
		DailyDistribution:  dayCounts,
		PeakHour:           peakHour(hourCounts),
		PeakDay:            peakDay(dayCounts),
		ErrorProneHours:    errorProneHours(hourCounts, errorsByHour),
		BusinessHours:      businessHoursSplit(hourCounts),
	}
}

// peakHour finds the busiest hour of day. Ties go to the lowest hour.
func peakHour(counts map[int]int) HourCount {
	var best HourCount
	for hour := 0; hour < 24; hour++ {
		if counts[hour] > best.Count {
			best = HourCount{Hour: hour, Count: counts[hour]}
		}
	}
	return best
}

// peakDay finds the busiest weekday. Ties go to the earliest weekday,
// Sunday first.
func peakDay(counts map[string]int) DayCount {
	var best DayCount
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := d.String()
		if counts[name] > best.Count {
			best = DayCount{Day: name, Count: counts[name]}
		}
	}
	return best
}

// errorProneHours lists hours where ERROR and FATAL entries exceed 10%
// of that hour's traffic, ordered by error rate descending.
func errorProneHours(hourCounts, errorsByHour map[int]int) []ErrorProneHour {
	prone := make([]ErrorProneHour, 0)
	for hour := 0; hour < 24; hour++ {
		total := hourCounts[hour]
		if total == 0 {
			continue
		}
		errs := errorsByHour[hour]
		rate := float64(errs) / float64(total)
		if rate > 0.1 {
			prone = append(prone, ErrorProneHour{
				Hour:         hour,
				ErrorRate:    round2(rate * 100),
				TotalEntries: total,
				ErrorCount:   errs,
			})
		}
	}

	// Stable sort keeps equal rates in hour order.
	sort.SliceStable(prone, func(i, j int) bool {
		return prone[i].ErrorRate > prone[j].ErrorRate
	})
	return prone
}

func businessHoursSplit(hourCounts map[int]int) BusinessHours {
	var business, off int
	for hour, count := range hourCounts {
		if hour >= 9 && hour < 18 {
			business += count
		} else {
			off += count
		}
	}

	split := BusinessHours{
		BusinessHoursCount: business,
		OffHoursCount:      off,
	}
	if total := business + off; total > 0 {
		split.BusinessHoursPercentage = round2(float64(business) / float64(total) * 100)
		split.OffHoursPercentage = round2(float64(off) / float64(total) * 100)
	}
	return split
}
