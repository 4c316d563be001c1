package advisor

import (
	"fmt"
	"time"

	"github.com/dynosim/dynosim/types"
)

// primaryKeyAttribute never gets an index suggestion; it already is one.
const primaryKeyAttribute = "user_id"

// ScanEfficiency classifies a scan ratio: items physically examined divided
// by items actually returned.
type ScanEfficiency struct {
	ScanRatio float64 `json:"scan_ratio"`
	Status    string  `json:"status"`
}

// IndexSuggestion proposes a secondary index keyed on a filter attribute.
type IndexSuggestion struct {
	Type         string `json:"type"`
	PartitionKey string `json:"partition_key"`
	Name         string `json:"name"`
	Benefit      string `json:"benefit"`
}

// IndexAnalysis is the index advisor's verdict on one retrieval operation.
type IndexAnalysis struct {
	ScanEfficiency   ScanEfficiency    `json:"scan_efficiency"`
	Recommendations  []string          `json:"recommendations"`
	SuggestedIndexes []IndexSuggestion `json:"suggested_indexes"`
	OptimizationTips []string          `json:"query_optimization_tips"`
}

// AdviseIndexes detects inefficient retrievals and suggests secondary
// indexes. Every call is appended to the engine's scan operation log.
func (e *Engine) AdviseIndexes(pattern string, filterAttributes []string, resultCount, scannedCount int) IndexAnalysis {
	results := resultCount
	if results < 1 {
		results = 1
	}

	ratio := float64(scannedCount) / float64(results)

	e.scanLog = append(e.scanLog, types.ScanRecord{
		Pattern:          pattern,
		ItemsScanned:     scannedCount,
		FilterAttributes: filterAttributes,
		Timestamp:        time.Now(),
	})

	recommendations := []string{}
	suggestions := []IndexSuggestion{}

	if ratio > e.efficiency.CriticalRatio {
		recommendations = append(recommendations, "High scan ratio detected - query is inefficient")

		for _, attr := range filterAttributes {
			if attr == primaryKeyAttribute {
				continue
			}

			suggestions = append(suggestions, IndexSuggestion{
				Type:         "GSI",
				PartitionKey: attr,
				Name:         fmt.Sprintf("%s-index", attr),
				Benefit:      "Convert scan to efficient query operation",
			})
		}
	}

	return IndexAnalysis{
		ScanEfficiency: ScanEfficiency{
			ScanRatio: ratio,
			Status:    e.efficiencyStatus(ratio),
		},
		Recommendations:  recommendations,
		SuggestedIndexes: suggestions,
		OptimizationTips: []string{
			"Use partition key in query conditions",
			"Add sort key conditions when possible",
			"Consider composite keys for complex queries",
		},
	}
}

func (e *Engine) efficiencyStatus(ratio float64) string {
	switch {
	case ratio < e.efficiency.WarningRatio:
		return "efficient"
	case ratio < e.efficiency.CriticalRatio:
		return StatusWarning
	default:
		return StatusCritical
	}
}
