package patterns

import (
	"strings"
	"testing"
	"time"
)

func TestDetectErrorClusters_SingleBurst(t *testing.T) {
	entries := mustEntries(t,
		"2024-01-01 08:30:00 ERROR a",
		"2024-01-01 08:30:30 ERROR b",
		"2024-01-01 08:31:00 ERROR c",
		"2024-01-01 12:00:00 ERROR d",
	)

	report := DetectErrorClusters(entries, 300*time.Second)

	if report.TotalClusters != 1 {
		t.Fatalf("TotalClusters = %d, want 1", report.TotalClusters)
	}
	cluster := report.Clusters[0]
	if cluster.ErrorCount != 3 {
		t.Errorf("ErrorCount = %d, want 3", cluster.ErrorCount)
	}
	if cluster.StartTime != "2024-01-01T08:30:00Z" {
		t.Errorf("StartTime = %q", cluster.StartTime)
	}
	if cluster.EndTime != "2024-01-01T08:31:00Z" {
		t.Errorf("EndTime = %q", cluster.EndTime)
	}
	if cluster.DurationSeconds != 60 {
		t.Errorf("DurationSeconds = %v, want 60", cluster.DurationSeconds)
	}
	if report.TotalErrorsInClusters != 3 {
		t.Errorf("TotalErrorsInClusters = %d, want 3 (isolated error never clustered)",
			report.TotalErrorsInClusters)
	}
}

func TestDetectErrorClusters_Disjoint(t *testing.T) {
	// Two bursts separated by more than the window. Every error belongs
	// to at most one cluster.
	entries := mustEntries(t,
		"2024-01-01 08:00:00 ERROR a",
		"2024-01-01 08:01:40 ERROR b",
		"2024-01-01 08:03:20 ERROR c",
		"2024-01-01 08:05:00 ERROR d",
		"2024-01-01 09:00:00 ERROR e",
		"2024-01-01 09:01:40 ERROR f",
	)

	report := DetectErrorClusters(entries, 300*time.Second)

	if report.TotalClusters != 2 {
		t.Fatalf("TotalClusters = %d, want 2", report.TotalClusters)
	}
	if report.TotalErrorsInClusters != 6 {
		t.Errorf("TotalErrorsInClusters = %d, want 6", report.TotalErrorsInClusters)
	}
	first, second := report.Clusters[0], report.Clusters[1]
	if first.ErrorCount != 4 || second.ErrorCount != 2 {
		t.Errorf("cluster sizes = %d, %d, want 4, 2", first.ErrorCount, second.ErrorCount)
	}
	if !(first.EndTime < second.StartTime) {
		t.Errorf("clusters overlap: first ends %s, second starts %s", first.EndTime, second.StartTime)
	}
}

func TestDetectErrorClusters_WindowAnchoredAtStart(t *testing.T) {
	// The third error is within 300s of the second but not of the
	// first, so it cannot ride along in the first cluster.
	entries := mustEntries(t,
		"2024-01-01 08:00:00 ERROR a",
		"2024-01-01 08:04:00 ERROR b",
		"2024-01-01 08:07:00 ERROR c",
	)

	report := DetectErrorClusters(entries, 300*time.Second)

	if report.TotalClusters != 1 {
		t.Fatalf("TotalClusters = %d, want 1", report.TotalClusters)
	}
	if report.Clusters[0].ErrorCount != 2 {
		t.Errorf("ErrorCount = %d, want 2 (window anchored at cluster start)",
			report.Clusters[0].ErrorCount)
	}
}

func TestDetectErrorClusters_SortsByTime(t *testing.T) {
	entries := mustEntries(t,
		"2024-01-01 08:31:00 ERROR late line first",
		"2024-01-01 08:30:00 ERROR early line second",
	)

	report := DetectErrorClusters(entries, 300*time.Second)

	if report.TotalClusters != 1 {
		t.Fatalf("TotalClusters = %d, want 1", report.TotalClusters)
	}
	if report.Clusters[0].StartTime != "2024-01-01T08:30:00Z" {
		t.Errorf("StartTime = %q, want the chronologically first error", report.Clusters[0].StartTime)
	}
}

func TestDetectErrorClusters_MixedLevels(t *testing.T) {
	entries := mustEntries(t,
		"2024-01-01 08:00:00 FATAL boom",
		"2024-01-01 08:00:10 ERROR bang",
		"2024-01-01 08:00:20 CRITICAL crash",
		"2024-01-01 08:00:30 INFO bystander",
	)

	report := DetectErrorClusters(entries, 300*time.Second)

	if report.TotalClusters != 1 {
		t.Fatalf("TotalClusters = %d, want 1", report.TotalClusters)
	}
	cluster := report.Clusters[0]
	if cluster.ErrorCount != 3 {
		t.Errorf("ErrorCount = %d, want 3 (INFO excluded)", cluster.ErrorCount)
	}
	want := []string{"CRITICAL", "ERROR", "FATAL"}
	if len(cluster.ErrorTypes) != 3 {
		t.Fatalf("ErrorTypes = %v, want %v", cluster.ErrorTypes, want)
	}
	for i, typ := range want {
		if cluster.ErrorTypes[i] != typ {
			t.Errorf("ErrorTypes[%d] = %q, want %q (sorted)", i, cluster.ErrorTypes[i], typ)
		}
	}
}

func TestDetectErrorClusters_SampleMessages(t *testing.T) {
	long := strings.Repeat("y", 150)
	entries := mustEntries(t,
		"2024-01-01 08:00:00 ERROR "+long,
		"2024-01-01 08:00:10 ERROR second",
		"2024-01-01 08:00:20 ERROR third",
		"2024-01-01 08:00:30 ERROR fourth",
	)

	report := DetectErrorClusters(entries, 300*time.Second)

	samples := report.Clusters[0].SampleMessages
	if len(samples) != 3 {
		t.Fatalf("SampleMessages = %d, want 3", len(samples))
	}
	if len(samples[0]) != 100 {
		t.Errorf("sample length = %d, want truncated to 100", len(samples[0]))
	}
	if samples[1] != "second" || samples[2] != "third" {
		t.Errorf("samples = %v, want the first three messages in time order", samples)
	}
}

func TestDetectErrorClusters_TooFewErrors(t *testing.T) {
	entries := mustEntries(t,
		"2024-01-01 08:00:00 ERROR alone",
		"2024-01-01 08:00:10 INFO fine",
	)

	report := DetectErrorClusters(entries, 300*time.Second)

	if report.TotalClusters != 0 || len(report.Clusters) != 0 {
		t.Errorf("report = %+v, want empty", report)
	}
	if report.TotalErrorsInClusters != 0 {
		t.Errorf("TotalErrorsInClusters = %d, want 0", report.TotalErrorsInClusters)
	}
}
