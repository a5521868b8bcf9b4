package stats

// Report bundles the five statistical sub-reports for one log file.
// Sub-reports that cannot be computed (no lines, no valid entries) are
// nil and omitted from JSON output.
type Report struct {
	Basic    *BasicReport    `json:"basic_statistics,omitempty"`
	Temporal *TemporalReport `json:"temporal_analysis,omitempty"`
	Levels   *LevelReport    `json:"log_level_analysis,omitempty"`
	Messages *MessageReport  `json:"message_analysis,omitempty"`
	Quality  *QualityReport  `json:"quality_metrics,omitempty"`
}

// BasicReport holds line-level counts for the whole file.
type BasicReport struct {
	TotalLines         int     `json:"total_lines"`
	ValidEntries       int     `json:"valid_entries"`
	InvalidEntries     int     `json:"invalid_entries"`
	SuccessRate        float64 `json:"success_rate"`
	AverageLineLength  float64 `json:"average_line_length"`
	TotalCharacters    int     `json:"total_characters"`
	EstimatedSizeBytes int     `json:"estimated_size_bytes"`
}

// TemporalReport describes how entries are distributed over time.
type TemporalReport struct {
	EarliestEntry        string   `json:"earliest_entry"`
	LatestEntry          string   `json:"latest_entry"`
	DurationSeconds      float64  `json:"duration_seconds"`
	DurationHuman        string   `json:"duration_human"`
	TotalEvents          int      `json:"total_events"`
	AverageEventsPerHour float64  `json:"average_events_per_hour"`
	AverageEventsPerDay  float64  `json:"average_events_per_day"`
	PeakHour             PeakHour `json:"peak_hour"`
	PeakDay              PeakDay  `json:"peak_day"`
	UniqueHours          int      `json:"unique_hours"`
	UniqueDays           int      `json:"unique_days"`
}

// PeakHour is the busiest clock hour and its entry count.
type PeakHour struct {
	Time  string `json:"time"`
	Count int    `json:"count"`
}

// PeakDay is the busiest calendar day and its entry count.
type PeakDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// LevelReport describes the distribution of log levels.
type LevelReport struct {
	LevelDistribution    map[string]LevelStat `json:"level_distribution"`
	TotalUniqueLevels    int                  `json:"total_unique_levels"`
	MostCommonLevel      LevelCount           `json:"most_common_level"`
	SeverityDistribution map[string]int       `json:"severity_distribution"`
	ErrorRate            float64              `json:"error_rate"`
}

// LevelStat is the count and share of one log level.
type LevelStat struct {
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// LevelCount pairs a level name with its count.
type LevelCount struct {
	Level string `json:"level"`
	Count int    `json:"count"`
}

// MessageReport describes the free-text message population.
type MessageReport struct {
	TotalMessages    int                `json:"total_messages"`
	UniqueMessages   int                `json:"unique_messages"`
	UniquenessRatio  float64            `json:"uniqueness_ratio"`
	LengthStats      MessageLengthStats `json:"message_length_stats"`
	CommonWords      []WordCount        `json:"common_words"`
	RepeatedMessages []MessageCount     `json:"repeated_messages"`
}

// MessageLengthStats summarizes message lengths in characters.
type MessageLengthStats struct {
	Average float64 `json:"average"`
	Maximum int     `json:"maximum"`
	Minimum int     `json:"minimum"`
}

// WordCount pairs a lower-cased word with its frequency.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// MessageCount pairs an exact message with its frequency.
type MessageCount struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// QualityReport scores how parseable and uniform the file is.
type QualityReport struct {
	CompletenessScore   float64    `json:"completeness_score"`
	ConsistencyScore    int        `json:"consistency_score"`
	OverallQualityScore float64    `json:"overall_quality_score"`
	DataIssues          DataIssues `json:"data_issues"`
	Recommendations     []string   `json:"recommendations"`
}

// DataIssues itemizes the problems behind a reduced quality score.
type DataIssues struct {
	InvalidEntries           int  `json:"invalid_entries"`
	MultipleTimestampFormats bool `json:"multiple_timestamp_formats"`
	EmptyMessages            int  `json:"empty_messages"`
}
