package analyzer

import (
	"github.com/ccollicutt/loglens/pkg/config"
	"github.com/ccollicutt/loglens/pkg/parser"
	"github.com/ccollicutt/loglens/pkg/patterns"
	"github.com/ccollicutt/loglens/pkg/stats"
)

// StatisticsResult is the complete output of a statistics analysis.
// It marshals directly to JSON. Exactly one of Message and Error is set
// unless the run succeeded, in which case only Message is.
type StatisticsResult struct {
	// AnalysisID uniquely identifies this analysis run.
	AnalysisID string `json:"analysis_id"`

	// TotalLines is the number of lines read from the file.
	TotalLines int `json:"total_lines"`

	// ValidEntries is the number of lines that parsed successfully.
	ValidEntries int `json:"valid_entries"`

	// InvalidEntries is the number of lines that failed to parse.
	InvalidEntries int `json:"invalid_entries"`

	// Statistics holds the five sub-reports. Empty (but never nil) when
	// the run produced no statistics.
	Statistics *stats.Report `json:"statistics"`

	// InvalidEntryDetails samples up to 10 unparseable lines.
	InvalidEntryDetails []parser.InvalidEntry `json:"invalid_entry_details"`

	// AnalyzedAt is the completion time in RFC 3339 form. Empty on failure.
	AnalyzedAt string `json:"analyzed_at,omitempty"`

	// Message describes the outcome of a completed run.
	Message string `json:"message,omitempty"`

	// Error is set when the run could not complete. The counters above
	// are zero in that case.
	Error string `json:"error,omitempty"`
}

// PatternResult is the complete output of a pattern detection run.
type PatternResult struct {
	// AnalysisID uniquely identifies this analysis run.
	AnalysisID string `json:"analysis_id"`

	// TotalEntriesAnalyzed is the number of parsed entries examined.
	TotalEntriesAnalyzed int `json:"total_entries_analyzed"`

	// Patterns holds the six sub-reports. Empty (but never nil) when the
	// run produced no patterns.
	Patterns *patterns.Report `json:"patterns"`

	// Summary ranks the findings. Nil when detection did not run.
	Summary *patterns.Summary `json:"summary,omitempty"`

	// AnalyzedAt is the completion time in RFC 3339 form. Empty on failure.
	AnalyzedAt string `json:"analyzed_at,omitempty"`

	// DetectionConfig echoes the effective settings, durations in seconds.
	DetectionConfig *DetectionEcho `json:"detection_config,omitempty"`

	// Message describes the outcome of a completed run.
	Message string `json:"message,omitempty"`

	// Error is set when the run could not complete.
	Error string `json:"error,omitempty"`
}

// DetectionEcho reports the detection settings a run actually used.
// Durations are rendered in seconds.
type DetectionEcho struct {
	ErrorClusterWindow  float64 `json:"error_cluster_window"`
	AnomalyThreshold    float64 `json:"anomaly_threshold"`
	PatternMinFrequency int     `json:"pattern_min_frequency"`
	TrendingWindow      float64 `json:"trending_window"`
}

func newDetectionEcho(cfg config.DetectionConfig) *DetectionEcho {
	return &DetectionEcho{
		ErrorClusterWindow:  cfg.ErrorClusterWindow.Seconds(),
		AnomalyThreshold:    cfg.AnomalyThreshold,
		PatternMinFrequency: cfg.PatternMinFrequency,
		TrendingWindow:      cfg.TrendingWindow.Seconds(),
	}
}

// HasFindings reports whether the run surfaced anything worth alerting on.
func (r *PatternResult) HasFindings() bool {
	return r.Summary != nil && r.Summary.HasFindings()
}

// Assessment returns the run's overall verdict, defaulting to normal for
// runs that never reached the summarizer.
func (r *PatternResult) Assessment() patterns.Assessment {
	if r.Summary == nil {
		return patterns.AssessmentNormal
	}
	return r.Summary.OverallAssessment
}
