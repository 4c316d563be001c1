package advisor

import (
	"fmt"
	"math"

	"github.com/dynosim/dynosim/types"
)

// Billing model recommendations.
const (
	BillingProvisioned   = "PROVISIONED"
	BillingPayPerRequest = "PAY_PER_REQUEST"
)

// CapacityAverages are the per-operation averages of the running totals.
type CapacityAverages struct {
	ReadUnits  float64 `json:"read_units"`
	WriteUnits float64 `json:"write_units"`
}

// CapacityAnalysis reports consumed capacity and a billing recommendation.
type CapacityAnalysis struct {
	CurrentUsage          CapacityUsage    `json:"current_usage"`
	AveragePerOperation   CapacityAverages `json:"average_per_operation"`
	Recommendations       []string         `json:"recommendations"`
	BillingRecommendation string           `json:"billing_recommendation"`
}

func isWriteOperation(operationType string) bool {
	switch operationType {
	case types.OpPutItem, types.OpUpdateItem, types.OpDeleteItem, types.OpBatchWrite:
		return true
	}

	return false
}

// EstimateCapacity accrues the units consumed by one operation and
// recommends a billing model. Write operations consume one write unit per
// whole KB (minimum one); read operations consume one read unit per
// ReadUnitKB, rounding down, minimum one. Averages divide the running
// totals by totalOperations, the façade's ledger count, which must already
// include the operation being estimated.
func (e *Engine) EstimateCapacity(operationType string, itemSizeKB float64, totalOperations int) CapacityAnalysis {
	if isWriteOperation(operationType) {
		e.usage.WriteUnits += maxUnits(itemSizeKB)
	} else {
		e.usage.ReadUnits += maxUnits(itemSizeKB / e.capacity.ReadUnitKB)
	}

	ops := float64(totalOperations)
	if ops < 1 {
		ops = 1
	}

	avg := CapacityAverages{
		ReadUnits:  float64(e.usage.ReadUnits) / ops,
		WriteUnits: float64(e.usage.WriteUnits) / ops,
	}

	recommendations := []string{}
	if avg.ReadUnits > e.capacity.AverageThreshold {
		recommendations = append(recommendations,
			fmt.Sprintf("Consider provisioned RCU: %d units", provisionedUnits(avg.ReadUnits, e.capacity.Headroom)))
	}

	if avg.WriteUnits > e.capacity.AverageThreshold {
		recommendations = append(recommendations,
			fmt.Sprintf("Consider provisioned WCU: %d units", provisionedUnits(avg.WriteUnits, e.capacity.Headroom)))
	}

	billing := BillingProvisioned
	if len(recommendations) == 0 {
		recommendations = append(recommendations, "Current usage suits pay-per-request billing")
		billing = BillingPayPerRequest
	}

	return CapacityAnalysis{
		CurrentUsage:          e.usage,
		AveragePerOperation:   avg,
		Recommendations:       recommendations,
		BillingRecommendation: billing,
	}
}

func maxUnits(units float64) int64 {
	consumed := int64(math.Floor(units))
	if consumed < 1 {
		return 1
	}

	return consumed
}

func provisionedUnits(average, headroom float64) int {
	return int(math.Ceil(average * headroom))
}
