package advisor

import (
	"time"

	"github.com/dynosim/dynosim/types"
)

// Partition key usage classifications.
const (
	StatusOptimal  = "optimal"
	StatusWarning  = "warning"
	StatusCritical = "critical"
)

// PartitionKeyAnalysis classifies how a query condition uses the partition
// key and what that means for its cost.
type PartitionKeyAnalysis struct {
	Status         string `json:"status"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation,omitempty"`
	CostImpact     string `json:"cost_impact"`
}

// AnalyzePartitionKey validates efficient partition key usage. The pattern
// is appended to the engine's query pattern log unconditionally.
func (e *Engine) AnalyzePartitionKey(pattern string, usesPartitionKey bool) PartitionKeyAnalysis {
	e.queryPatterns = append(e.queryPatterns, types.QueryPatternRecord{
		Pattern:          pattern,
		UsesPartitionKey: usesPartitionKey,
		Timestamp:        time.Now(),
	})

	if !usesPartitionKey {
		return PartitionKeyAnalysis{
			Status:         StatusWarning,
			Message:        "Query does not use partition key - will result in expensive scan operation",
			Recommendation: "Modify query to include partition key for better performance",
			CostImpact:     "High - scan operations cost significantly more",
		}
	}

	return PartitionKeyAnalysis{
		Status:     StatusOptimal,
		Message:    "Query efficiently uses partition key",
		CostImpact: "Low - efficient key-based access",
	}
}
