package patterns

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/ccollicutt/loglens/pkg/parser"
)

// anomalyMinEntries is the smallest entry population worth baselining.
const anomalyMinEntries = 10

// DetectAnomalies flags hourly buckets whose entry volume sits more
// than threshold standard deviations from the mean. The baseline needs
// at least 3 distinct hourly buckets; below that, or with fewer than 10
// entries overall, the report is empty.
func DetectAnomalies(entries []*parser.Entry, threshold float64) *AnomalyReport {
	report := &AnomalyReport{Anomalies: []Anomaly{}}

	if len(entries) < anomalyMinEntries {
		return report
	}

	hourly := make(map[string]int)
	for _, e := range entries {
		hourly[e.Timestamp.Format("2006-01-02 15")]++
	}
	if len(hourly) < 3 {
		return report
	}

	hours := make([]string, 0, len(hourly))
	for h := range hourly {
		hours = append(hours, h)
	}
	sort.Strings(hours)

	counts := make([]float64, len(hours))
	for i, h := range hours {
		counts[i] = float64(hourly[h])
	}

	mean := stat.Mean(counts, nil)
	sigma := stat.StdDev(counts, nil)
	upper := mean + threshold*sigma
	lower := math.Max(0, mean-threshold*sigma)
	expectedRange := fmt.Sprintf("%d-%d", int(math.Round(lower)), int(math.Round(upper)))

	for _, h := range hours {
		count := float64(hourly[h])

		var kind string
		switch {
		case count > upper:
			kind = AnomalyHighVolume
		case count < lower && lower > 0:
			kind = AnomalyLowVolume
		default:
			continue
		}

		var deviation float64
		if sigma > 0 {
			deviation = round2((count - mean) / sigma)
		}

		report.Anomalies = append(report.Anomalies, Anomaly{
			Hour:          h,
			Count:         hourly[h],
			Type:          kind,
			Deviation:     deviation,
			ExpectedRange: expectedRange,
		})
	}

	// Stable sort keeps equal deviations in hour order.
	sort.SliceStable(report.Anomalies, func(i, j int) bool {
		return math.Abs(report.Anomalies[i].Deviation) > math.Abs(report.Anomalies[j].Deviation)
	})

	report.TotalAnomalies = len(report.Anomalies)
	report.BaselineStats = &BaselineStats{
		MeanHourlyCount:    round2(mean),
		StdDeviation:       round2(sigma),
		DetectionThreshold: threshold,
	}
	return report
}
