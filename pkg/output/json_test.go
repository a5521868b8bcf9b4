package output

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewJSONFormatter(t *testing.T) {
	f := NewJSONFormatter(FormatOptions{})
	if f == nil {
		t.Fatal("NewJSONFormatter() returned nil")
	}
	if f.Name() != "json" {
		t.Errorf("Name() = %q, want %q", f.Name(), "json")
	}
}

func TestJSONFormatter_FormatStatistics(t *testing.T) {
	f := NewJSONFormatter(FormatOptions{})

	var buf bytes.Buffer
	err := f.FormatStatistics(context.Background(), []*StatisticsReport{statisticsFixture()}, &buf)
	if err != nil {
		t.Fatalf("FormatStatistics() error = %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if parsed["file"] != "app.log" {
		t.Errorf("file = %v, want app.log", parsed["file"])
	}
	if parsed["total_lines"] != float64(4) {
		t.Errorf("total_lines = %v, want 4", parsed["total_lines"])
	}
	statistics, ok := parsed["statistics"].(map[string]any)
	if !ok {
		t.Fatalf("statistics = %v, want object", parsed["statistics"])
	}
	if _, ok := statistics["basic_statistics"]; !ok {
		t.Error("statistics missing basic_statistics")
	}
}

func TestJSONFormatter_FormatStatistics_Array(t *testing.T) {
	f := NewJSONFormatter(FormatOptions{})

	second := statisticsFixture()
	second.File = "other.log"

	var buf bytes.Buffer
	err := f.FormatStatistics(context.Background(),
		[]*StatisticsReport{statisticsFixture(), second}, &buf)
	if err != nil {
		t.Fatalf("FormatStatistics() error = %v", err)
	}

	var parsed []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("multi-file output is not a JSON array: %v", err)
	}
	if len(parsed) != 2 {
		t.Fatalf("len = %d, want 2", len(parsed))
	}
	if parsed[1]["file"] != "other.log" {
		t.Errorf("file = %v, want other.log", parsed[1]["file"])
	}
}

func TestJSONFormatter_FormatStatistics_Quiet(t *testing.T) {
	f := NewJSONFormatter(FormatOptions{Quiet: true})

	var buf bytes.Buffer
	err := f.FormatStatistics(context.Background(), []*StatisticsReport{statisticsFixture()}, &buf)
	if err != nil {
		t.Fatalf("FormatStatistics() error = %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := parsed["basic_statistics"]; !ok {
		t.Error("quiet output missing basic_statistics")
	}
	if _, ok := parsed["quality_metrics"]; ok {
		t.Error("quiet output should not carry quality_metrics")
	}
}

func TestJSONFormatter_FormatPatterns(t *testing.T) {
	f := NewJSONFormatter(FormatOptions{})

	var buf bytes.Buffer
	err := f.FormatPatterns(context.Background(), []*PatternReport{patternFixture()}, &buf)
	if err != nil {
		t.Fatalf("FormatPatterns() error = %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	pats, ok := parsed["patterns"].(map[string]any)
	if !ok {
		t.Fatalf("patterns = %v, want object", parsed["patterns"])
	}
	if _, ok := pats["error_clusters"]; !ok {
		t.Error("patterns missing error_clusters")
	}
	summary, ok := parsed["summary"].(map[string]any)
	if !ok {
		t.Fatalf("summary = %v, want object", parsed["summary"])
	}
	if summary["overall_assessment"] != "critical" {
		t.Errorf("overall_assessment = %v, want critical", summary["overall_assessment"])
	}
	echo, ok := parsed["detection_config"].(map[string]any)
	if !ok {
		t.Fatalf("detection_config = %v, want object", parsed["detection_config"])
	}
	if echo["error_cluster_window"] != float64(300) {
		t.Errorf("error_cluster_window = %v, want 300", echo["error_cluster_window"])
	}
}

func TestJSONFormatter_FormatPatterns_Quiet(t *testing.T) {
	f := NewJSONFormatter(FormatOptions{Quiet: true})

	var buf bytes.Buffer
	err := f.FormatPatterns(context.Background(), []*PatternReport{patternFixture()}, &buf)
	if err != nil {
		t.Fatalf("FormatPatterns() error = %v", err)
	}

	var parsed map[string]any
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if _, ok := parsed["summary"]; !ok {
		t.Error("quiet output missing summary")
	}
	if _, ok := parsed["patterns"]; ok {
		t.Error("quiet output should not carry the full patterns object")
	}
}

func TestJSONFormatter_Indented(t *testing.T) {
	f := NewJSONFormatter(FormatOptions{})

	var buf bytes.Buffer
	if err := f.FormatPatterns(context.Background(), []*PatternReport{patternFixture()}, &buf); err != nil {
		t.Fatalf("FormatPatterns() error = %v", err)
	}

	if !strings.Contains(buf.String(), "\n  ") {
		t.Error("output is not indented")
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		format string
		ok     bool
	}{
		{"text", true},
		{"json", true},
		{"yaml", false},
		{"", false},
	}

	for _, tt := range tests {
		f, ok := New(tt.format, FormatOptions{})
		if ok != tt.ok {
			t.Errorf("New(%q) ok = %v, want %v", tt.format, ok, tt.ok)
			continue
		}
		if ok && f.Name() != tt.format {
			t.Errorf("New(%q).Name() = %q", tt.format, f.Name())
		}
	}
}
