package parser

import "strings"

// exportThreshold is the minimum confidence for a candidate to be exported.
const exportThreshold = 0.5

// highConfidenceThreshold is the confidence above which a candidate counts as
// high confidence in Stats.
const highConfidenceThreshold = 0.7

// Stats summarizes an Outcome.
type Stats struct {
	TotalKeys           int            `json:"totalKeys"`
	ByKind              map[Kind]int   `json:"byKind"`
	ByService           map[string]int `json:"byService"`
	HighConfidenceCount int            `json:"highConfidenceCount"`
}

// ToAssignmentText renders candidates with confidence above 0.5 as
// newline-joined KEY=VALUE lines.
func ToAssignmentText(candidates []Candidate) string {
	lines := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c.Confidence > exportThreshold {
			lines = append(lines, c.Key+"="+c.Value)
		}
	}
	return strings.Join(lines, "\n")
}

// Summarize counts candidates by kind and service.
func Summarize(outcome Outcome) Stats {
	stats := Stats{
		TotalKeys: outcome.Count,
		ByKind:    map[Kind]int{},
		ByService: map[string]int{},
	}

	for _, c := range outcome.Candidates {
		stats.ByKind[c.Kind]++
		if c.Service != "" {
			stats.ByService[c.Service]++
		}
		if c.Confidence > highConfidenceThreshold {
			stats.HighConfidenceCount++
		}
	}

	return stats
}
