package patterns

import (
	"sort"
	"time"

	"github.com/ccollicutt/loglens/pkg/parser"
)

// clusterLevels are the levels that participate in error clustering.
var clusterLevels = map[string]bool{
	"ERROR":    true,
	"FATAL":    true,
	"CRITICAL": true,
}

// DetectErrorClusters finds bursts of error-level entries. The window
// is anchored at the first error of each burst, not slid per pair, and
// a burst is only reported once it has at least two members. No error
// entry belongs to more than one cluster.
func DetectErrorClusters(entries []*parser.Entry, window time.Duration) *ClusterReport {
	report := &ClusterReport{Clusters: []Cluster{}}

	var errs []*parser.Entry
	for _, e := range entries {
		if clusterLevels[e.Level] {
			errs = append(errs, e)
		}
	}
	if len(errs) < 2 {
		return report
	}

	sort.SliceStable(errs, func(i, j int) bool {
		return errs[i].Timestamp.Before(errs[j].Timestamp)
	})

	i := 0
	for i < len(errs) {
		start := errs[i].Timestamp

		j := i + 1
		for j < len(errs) && errs[j].Timestamp.Sub(start) <= window {
			j++
		}

		if members := errs[i:j]; len(members) >= 2 {
			report.Clusters = append(report.Clusters, newCluster(members))
		}
		i = j
	}

	report.TotalClusters = len(report.Clusters)
	for _, c := range report.Clusters {
		report.TotalErrorsInClusters += c.ErrorCount
	}
	return report
}

func newCluster(members []*parser.Entry) Cluster {
	start := members[0].Timestamp
	end := members[len(members)-1].Timestamp

	seen := make(map[string]struct{})
	for _, m := range members {
		seen[m.Level] = struct{}{}
	}
	types := make([]string, 0, len(seen))
	for level := range seen {
		types = append(types, level)
	}
	sort.Strings(types)

	samples := make([]string, 0, 3)
	for _, m := range members {
		if len(samples) == 3 {
			break
		}
		samples = append(samples, truncate(m.Message, 100))
	}

	return Cluster{
		StartTime:       start.Format(time.RFC3339),
		EndTime:         end.Format(time.RFC3339),
		DurationSeconds: end.Sub(start).Seconds(),
		ErrorCount:      len(members),
		ErrorTypes:      types,
		SampleMessages:  samples,
	}
}
