package patterns

// Report bundles the six pattern detection sub-reports for one log
// file. Zero-valued sub-reports are nil and omitted from JSON output,
// so an empty Report marshals as {}.
type Report struct {
	ErrorClusters    *ClusterReport         `json:"error_clusters,omitempty"`
	Anomalies        *AnomalyReport         `json:"anomalies,omitempty"`
	RepeatedPatterns *RepeatedReport        `json:"repeated_patterns,omitempty"`
	TrendingIssues   *TrendingReport        `json:"trending_issues,omitempty"`
	TemporalPatterns *TemporalReport        `json:"temporal_patterns,omitempty"`
	MessagePatterns  *MessagePatternsReport `json:"message_patterns,omitempty"`
}

// ClusterReport lists bursts of error-level entries.
type ClusterReport struct {
	Clusters              []Cluster `json:"clusters"`
	TotalClusters         int       `json:"total_clusters"`
	TotalErrorsInClusters int       `json:"total_errors_in_clusters"`
}

// Cluster is one burst of errors inside a single detection window.
type Cluster struct {
	StartTime       string   `json:"start_time"`
	EndTime         string   `json:"end_time"`
	DurationSeconds float64  `json:"duration_seconds"`
	ErrorCount      int      `json:"error_count"`
	ErrorTypes      []string `json:"error_types"`
	SampleMessages  []string `json:"sample_messages"`
}

// Anomaly types.
const (
	AnomalyHighVolume = "high_volume"
	AnomalyLowVolume  = "low_volume"
)

// AnomalyReport lists hourly buckets whose entry volume deviates from
// the baseline.
type AnomalyReport struct {
	Anomalies      []Anomaly      `json:"anomalies"`
	TotalAnomalies int            `json:"total_anomalies"`
	BaselineStats  *BaselineStats `json:"baseline_stats,omitempty"`
}

// Anomaly is one hourly bucket outside the expected volume range.
type Anomaly struct {
	Hour          string  `json:"hour"`
	Count         int     `json:"count"`
	Type          string  `json:"type"`
	Deviation     float64 `json:"deviation"`
	ExpectedRange string  `json:"expected_range"`
}

// BaselineStats echoes the statistical baseline anomalies were judged
// against.
type BaselineStats struct {
	MeanHourlyCount    float64 `json:"mean_hourly_count"`
	StdDeviation       float64 `json:"std_deviation"`
	DetectionThreshold float64 `json:"detection_threshold"`
}

// RepeatedReport lists normalized message shapes that recur often.
type RepeatedReport struct {
	Patterns            []RepeatedPattern `json:"patterns"`
	TotalPatterns       int               `json:"total_patterns"`
	TotalUniqueMessages int               `json:"total_unique_messages"`
}

// RepeatedPattern is one recurring normalized message shape.
type RepeatedPattern struct {
	Pattern         string  `json:"pattern"`
	OriginalExample string  `json:"original_example"`
	Frequency       int     `json:"frequency"`
	Percentage      float64 `json:"percentage"`
}

// TrendingReport lists message shapes whose frequency is rising.
type TrendingReport struct {
	TrendingIssues []TrendingIssue `json:"trending_issues"`
	TotalTrending  int             `json:"total_trending"`
}

// TrendingIssue is one message shape appearing markedly more often in
// the recent half of the observed span than in the early half.
type TrendingIssue struct {
	Pattern       string      `json:"pattern"`
	TrendFactor   float64     `json:"trend_factor"`
	EarlyAverage  float64     `json:"early_average"`
	RecentAverage float64     `json:"recent_average"`
	TimeSeries    []TimePoint `json:"time_series"`
}

// TimePoint is one bucket of a trend time series.
type TimePoint struct {
	Time  string `json:"time"`
	Count int    `json:"count"`
}

// TemporalReport describes activity by hour of day and day of week.
type TemporalReport struct {
	HourlyDistribution map[int]int      `json:"hourly_distribution"`
	DailyDistribution  map[string]int   `json:"daily_distribution"`
	PeakHour           HourCount        `json:"peak_hour"`
	PeakDay            DayCount         `json:"peak_day"`
	ErrorProneHours    []ErrorProneHour `json:"error_prone_hours"`
	BusinessHours      BusinessHours    `json:"business_hours_vs_off_hours"`
}

// HourCount pairs an hour of day with its entry count.
type HourCount struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// DayCount pairs a weekday name with its entry count.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// ErrorProneHour is an hour of day where errors exceed 10% of traffic.
type ErrorProneHour struct {
	Hour         int     `json:"hour"`
	ErrorRate    float64 `json:"error_rate"`
	TotalEntries int     `json:"total_entries"`
	ErrorCount   int     `json:"error_count"`
}

// BusinessHours splits activity at local hours [9,18) versus the rest.
type BusinessHours struct {
	BusinessHoursCount      int     `json:"business_hours_count"`
	OffHoursCount           int     `json:"off_hours_count"`
	BusinessHoursPercentage float64 `json:"business_hours_percentage"`
	OffHoursPercentage      float64 `json:"off_hours_percentage"`
}

// MessagePatternsReport maps fixed message categories to their matches.
type MessagePatternsReport struct {
	DetectedPatterns  map[string]CategoryStat `json:"detected_patterns"`
	TotalPatternTypes int                     `json:"total_pattern_types"`
}

// CategoryStat summarizes the entries matching one message category.
type CategoryStat struct {
	TotalMatches      int             `json:"total_matches"`
	Percentage        float64         `json:"percentage"`
	LevelDistribution map[string]int  `json:"level_distribution"`
	SampleMessages    []SampleMessage `json:"sample_messages"`
}

// SampleMessage is one truncated example of a category match.
type SampleMessage struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

// Assessment is the overall severity verdict for a file, ordered from
// least to most severe.
type Assessment string

const (
	AssessmentNormal             Assessment = "normal"
	AssessmentNormalWithPatterns Assessment = "normal_with_patterns"
	AssessmentAttentionNeeded    Assessment = "attention_needed"
	AssessmentConcerning         Assessment = "concerning"
	AssessmentCritical           Assessment = "critical"
)

var assessmentRank = map[Assessment]int{
	AssessmentNormal:             0,
	AssessmentNormalWithPatterns: 1,
	AssessmentAttentionNeeded:    2,
	AssessmentConcerning:         3,
	AssessmentCritical:           4,
}

// MoreSevere reports whether a outranks b.
func (a Assessment) MoreSevere(b Assessment) bool {
	return assessmentRank[a] > assessmentRank[b]
}

// Summary is the ranked-findings reduction over a pattern Report.
type Summary struct {
	HighPriorityFindings   []string   `json:"high_priority_findings"`
	MediumPriorityFindings []string   `json:"medium_priority_findings"`
	LowPriorityFindings    []string   `json:"low_priority_findings"`
	OverallAssessment      Assessment `json:"overall_assessment"`
}

// HasFindings reports whether any priority tier holds a finding.
func (s Summary) HasFindings() bool {
	return len(s.HighPriorityFindings)+len(s.MediumPriorityFindings)+len(s.LowPriorityFindings) > 0
}
