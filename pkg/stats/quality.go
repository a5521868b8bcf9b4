package stats

import (
	"fmt"

	"github.com/ccollicutt/loglens/pkg/parser"
)

// Quality scores how parseable and uniform the file is. Completeness
// tracks the share of parseable lines; consistency drops to 90 when
// timestamps come in more than one width.
func Quality(scan *parser.ScanResult) *QualityReport {
	var completeness float64
	if scan.TotalLines > 0 {
		completeness = float64(len(scan.Entries)) / float64(scan.TotalLines) * 100
	}

	stampWidths := make(map[int]struct{})
	emptyMessages := 0
	for _, e := range scan.Entries {
		stampWidths[len(e.Stamp)] = struct{}{}
		if e.Message == "" {
			emptyMessages++
		}
	}

	consistency := 100
	if len(stampWidths) > 1 {
		consistency = 90
	}

	return &QualityReport{
		CompletenessScore:   round2(completeness),
		ConsistencyScore:    consistency,
		OverallQualityScore: round2((completeness + float64(consistency)) / 2),
		DataIssues: DataIssues{
			InvalidEntries:           len(scan.Invalid),
			MultipleTimestampFormats: len(stampWidths) > 1,
			EmptyMessages:            emptyMessages,
		},
		Recommendations: recommendations(completeness, consistency, len(scan.Invalid)),
	}
}

func recommendations(completeness float64, consistency, invalid int) []string {
	var recs []string

	if completeness < 95 {
		recs = append(recs, "Consider reviewing log format - some entries could not be parsed")
	}
	if consistency < 100 {
		recs = append(recs, "Multiple timestamp formats detected - consider standardizing")
	}
	if invalid > 0 {
		recs = append(recs, fmt.Sprintf("%d invalid entries found - review log generation process", invalid))
	}
	if len(recs) == 0 {
		recs = append(recs, "Log quality is excellent - no issues detected")
	}

	return recs
}
