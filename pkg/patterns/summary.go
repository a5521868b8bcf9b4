package patterns

import "fmt"

// Summarize reduces a pattern report to ranked findings and an overall
// verdict. The verdict follows a strict ladder: any high-priority
// finding makes the file critical, any medium-priority finding makes it
// attention_needed, any low-priority finding makes it
// normal_with_patterns, otherwise it is normal.
func Summarize(r *Report) Summary {
	s := Summary{
		HighPriorityFindings:   []string{},
		MediumPriorityFindings: []string{},
		LowPriorityFindings:    []string{},
		OverallAssessment:      AssessmentNormal,
	}

	if r.ErrorClusters != nil && r.ErrorClusters.TotalClusters > 0 {
		s.HighPriorityFindings = append(s.HighPriorityFindings,
			fmt.Sprintf("%d error clusters detected", r.ErrorClusters.TotalClusters))
	}
	if r.Anomalies != nil && r.Anomalies.TotalAnomalies > 0 {
		s.MediumPriorityFindings = append(s.MediumPriorityFindings,
			fmt.Sprintf("%d temporal anomalies detected", r.Anomalies.TotalAnomalies))
	}
	if r.TrendingIssues != nil && r.TrendingIssues.TotalTrending > 0 {
		s.MediumPriorityFindings = append(s.MediumPriorityFindings,
			fmt.Sprintf("%d trending issues detected", r.TrendingIssues.TotalTrending))
	}
	if r.RepeatedPatterns != nil && r.RepeatedPatterns.TotalPatterns > 10 {
		s.LowPriorityFindings = append(s.LowPriorityFindings,
			fmt.Sprintf("%d repeated message patterns found", r.RepeatedPatterns.TotalPatterns))
	}

	switch {
	case len(s.HighPriorityFindings) > 0:
		s.OverallAssessment = AssessmentCritical
	case len(s.MediumPriorityFindings) > 0:
		s.OverallAssessment = AssessmentAttentionNeeded
	case len(s.LowPriorityFindings) > 0:
		s.OverallAssessment = AssessmentNormalWithPatterns
	}

	return s
}
