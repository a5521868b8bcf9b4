package patterns

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/ccollicutt/loglens/pkg/normalize"
	"github.com/ccollicutt/loglens/pkg/parser"
)

// DetectTrendingIssues finds message shapes whose frequency in the
// recent half of the observed buckets exceeds 1.5x their early-half
// frequency. Buckets are window wide (an hour by default) and at least
// 3 observed buckets are required. Output is capped at the top 10 by
// trend factor.
func DetectTrendingIssues(entries []*parser.Entry, window time.Duration) *TrendingReport {
	if window <= 0 {
		window = time.Hour
	}

	buckets := make(map[time.Time]map[string]int)
	for _, e := range entries {
		start := e.Timestamp.Truncate(window)
		if buckets[start] == nil {
			buckets[start] = make(map[string]int)
		}
		buckets[start][normalize.Message(e.Message)]++
	}

	bucketTimes := make([]time.Time, 0, len(buckets))
	for t := range buckets {
		bucketTimes = append(bucketTimes, t)
	}
	sort.Slice(bucketTimes, func(i, j int) bool { return bucketTimes[i].Before(bucketTimes[j]) })

	issues := make([]TrendingIssue, 0)
	if len(bucketTimes) >= 3 {
		for _, shape := range observedShapes(buckets) {
			series := make([]TimePoint, len(bucketTimes))
			counts := make([]float64, len(bucketTimes))
			for i, t := range bucketTimes {
				count := buckets[t][shape]
				series[i] = TimePoint{Time: t.Format(time.RFC3339), Count: count}
				counts[i] = float64(count)
			}

			mid := len(counts) / 2
			earlyMean := stat.Mean(counts[:mid], nil)
			recentMean := stat.Mean(counts[mid:], nil)
			if recentMean <= earlyMean*1.5 {
				continue
			}

			issues = append(issues, TrendingIssue{
				Pattern:       shape,
				TrendFactor:   round2(recentMean / math.Max(earlyMean, 1)),
				EarlyAverage:  round2(earlyMean),
				RecentAverage: round2(recentMean),
				TimeSeries:    series,
			})
		}
	}

	// Stable sort keeps equal factors in shape order.
	sort.SliceStable(issues, func(i, j int) bool {
		return issues[i].TrendFactor > issues[j].TrendFactor
	})

	report := &TrendingReport{TotalTrending: len(issues)}
	if len(issues) > 10 {
		issues = issues[:10]
	}
	report.TrendingIssues = issues
	return report
}

// observedShapes returns every normalized shape seen in any bucket, in
// sorted order.
func observedShapes(buckets map[time.Time]map[string]int) []string {
	seen := make(map[string]struct{})
	for _, counts := range buckets {
		for shape := range counts {
			seen[shape] = struct{}{}
		}
	}
	shapes := make([]string, 0, len(seen))
	for shape := range seen {
		shapes = append(shapes, shape)
	}
	sort.Strings(shapes)
	return shapes
}
