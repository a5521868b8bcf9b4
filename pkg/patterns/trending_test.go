package patterns

import (
	"testing"
	"time"
)

func TestDetectTrendingIssues(t *testing.T) {
	// One request failure per hour for two hours, then four in the
	// third: early mean 1.0, recent mean 2.5.
	entries := mustEntries(t,
		"2024-01-01 00:10:00 ERROR Request failed",
		"2024-01-01 01:10:00 ERROR Request failed",
		"2024-01-01 02:00:00 ERROR Request failed",
		"2024-01-01 02:15:00 ERROR Request failed",
		"2024-01-01 02:30:00 ERROR Request failed",
		"2024-01-01 02:45:00 ERROR Request failed",
	)

	report := DetectTrendingIssues(entries, time.Hour)

	if report.TotalTrending != 1 {
		t.Fatalf("TotalTrending = %d, want 1", report.TotalTrending)
	}
	issue := report.TrendingIssues[0]
	if issue.Pattern != "Request failed" {
		t.Errorf("Pattern = %q", issue.Pattern)
	}
	if issue.TrendFactor != 2.5 {
		t.Errorf("TrendFactor = %v, want 2.5", issue.TrendFactor)
	}
	if issue.EarlyAverage != 1.0 {
		t.Errorf("EarlyAverage = %v, want 1.0", issue.EarlyAverage)
	}
	if issue.RecentAverage != 2.5 {
		t.Errorf("RecentAverage = %v, want 2.5", issue.RecentAverage)
	}

	if len(issue.TimeSeries) != 3 {
		t.Fatalf("TimeSeries = %v, want 3 points", issue.TimeSeries)
	}
	if issue.TimeSeries[0].Time != "2024-01-01T00:00:00Z" {
		t.Errorf("TimeSeries[0].Time = %q", issue.TimeSeries[0].Time)
	}
	wantCounts := []int{1, 1, 4}
	for i, want := range wantCounts {
		if issue.TimeSeries[i].Count != want {
			t.Errorf("TimeSeries[%d].Count = %d, want %d", i, issue.TimeSeries[i].Count, want)
		}
	}
}

func TestDetectTrendingIssues_ZeroFilledSeries(t *testing.T) {
	// "Cache miss" only appears in the first hour; its series still
	// spans all observed buckets. "Queue full" climbs.
	entries := mustEntries(t,
		"2024-01-01 00:00:00 WARN Cache miss",
		"2024-01-01 00:05:00 WARN Queue full",
		"2024-01-01 01:00:00 WARN Queue full",
		"2024-01-01 01:05:00 WARN Queue full",
		"2024-01-01 02:00:00 WARN Queue full",
		"2024-01-01 02:05:00 WARN Queue full",
		"2024-01-01 02:10:00 WARN Queue full",
		"2024-01-01 02:15:00 WARN Queue full",
		"2024-01-01 02:20:00 WARN Queue full",
		"2024-01-01 02:25:00 WARN Queue full",
	)

	report := DetectTrendingIssues(entries, time.Hour)

	if report.TotalTrending != 1 {
		t.Fatalf("TotalTrending = %d, want only the climbing shape", report.TotalTrending)
	}
	issue := report.TrendingIssues[0]
	if issue.Pattern != "Queue full" {
		t.Errorf("Pattern = %q, want Queue full", issue.Pattern)
	}
	// Buckets 1, 2, 6: early mean 1.0, recent mean 4.0.
	if issue.TrendFactor != 4.0 {
		t.Errorf("TrendFactor = %v, want 4.0", issue.TrendFactor)
	}
}

func TestDetectTrendingIssues_RequiresThreeBuckets(t *testing.T) {
	entries := mustEntries(t,
		"2024-01-01 00:00:00 ERROR Request failed",
		"2024-01-01 01:00:00 ERROR Request failed",
	)

	report := DetectTrendingIssues(entries, time.Hour)

	if report.TotalTrending != 0 || len(report.TrendingIssues) != 0 {
		t.Errorf("report = %+v, want empty with 2 buckets", report)
	}
}

func TestDetectTrendingIssues_FlatIsNotTrending(t *testing.T) {
	entries := mustEntries(t,
		"2024-01-01 00:00:00 INFO Heartbeat",
		"2024-01-01 00:30:00 INFO Heartbeat",
		"2024-01-01 01:00:00 INFO Heartbeat",
		"2024-01-01 01:30:00 INFO Heartbeat",
		"2024-01-01 02:00:00 INFO Heartbeat",
		"2024-01-01 02:30:00 INFO Heartbeat",
	)

	report := DetectTrendingIssues(entries, time.Hour)

	if report.TotalTrending != 0 {
		t.Errorf("TotalTrending = %d, want 0 for a flat series", report.TotalTrending)
	}
}

func TestDetectTrendingIssues_WiderWindow(t *testing.T) {
	// With 2h buckets the same entries collapse into fewer, wider
	// buckets: 00-02, 02-04, 04-06.
	entries := mustEntries(t,
		"2024-01-01 00:00:00 ERROR Request failed",
		"2024-01-01 02:00:00 ERROR Request failed",
		"2024-01-01 04:00:00 ERROR Request failed",
		"2024-01-01 04:30:00 ERROR Request failed",
		"2024-01-01 05:00:00 ERROR Request failed",
		"2024-01-01 05:30:00 ERROR Request failed",
	)

	report := DetectTrendingIssues(entries, 2*time.Hour)

	if report.TotalTrending != 1 {
		t.Fatalf("TotalTrending = %d, want 1", report.TotalTrending)
	}
	issue := report.TrendingIssues[0]
	if len(issue.TimeSeries) != 3 {
		t.Fatalf("TimeSeries = %v, want 3 two-hour buckets", issue.TimeSeries)
	}
	// Buckets 1, 1, 4: recent mean 2.5 versus early mean 1.0.
	if issue.TrendFactor != 2.5 {
		t.Errorf("TrendFactor = %v, want 2.5", issue.TrendFactor)
	}
}
