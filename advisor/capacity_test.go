package advisor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dynosim/dynosim/types"
)

func TestEstimateCapacityWriteUnits(t *testing.T) {
	c := require.New(t)

	e := NewEngine()

	analysis := e.EstimateCapacity(types.OpPutItem, 1.0, 1)
	c.Equal(int64(1), analysis.CurrentUsage.WriteUnits)
	c.Equal(int64(0), analysis.CurrentUsage.ReadUnits)

	// 2.7 KB floors to 2 units.
	analysis = e.EstimateCapacity(types.OpUpdateItem, 2.7, 2)
	c.Equal(int64(3), analysis.CurrentUsage.WriteUnits)
}

func TestEstimateCapacityReadUnits(t *testing.T) {
	c := require.New(t)

	e := NewEngine()

	analysis := e.EstimateCapacity(types.OpGetItem, 10.0, 1)
	c.Equal(int64(2), analysis.CurrentUsage.ReadUnits)

	// Minimum one unit regardless of size.
	analysis = e.EstimateCapacity(types.OpGetItem, 0.1, 2)
	c.Equal(int64(3), analysis.CurrentUsage.ReadUnits)
}

func TestEstimateCapacityPayPerRequest(t *testing.T) {
	c := require.New(t)

	e := NewEngine()

	analysis := e.EstimateCapacity(types.OpQuery, 1.0, 1)
	c.Equal(BillingPayPerRequest, analysis.BillingRecommendation)
	c.Equal([]string{"Current usage suits pay-per-request billing"}, analysis.Recommendations)
}

func TestEstimateCapacityProvisioned(t *testing.T) {
	c := require.New(t)

	e := NewEngine()

	// 24 read units over 1 operation pushes the average over threshold.
	analysis := e.EstimateCapacity(types.OpScan, 96.0, 1)
	c.Equal(int64(24), analysis.CurrentUsage.ReadUnits)
	c.Equal(24.0, analysis.AveragePerOperation.ReadUnits)
	c.Equal(BillingProvisioned, analysis.BillingRecommendation)
	c.Equal([]string{"Consider provisioned RCU: 29 units"}, analysis.Recommendations)
}

func TestEstimateCapacityAverages(t *testing.T) {
	c := require.New(t)

	e := NewEngine()

	e.EstimateCapacity(types.OpPutItem, 1.0, 1)
	analysis := e.EstimateCapacity(types.OpPutItem, 1.0, 2)

	c.Equal(1.0, analysis.AveragePerOperation.WriteUnits)
	c.Equal(0.0, analysis.AveragePerOperation.ReadUnits)
}
