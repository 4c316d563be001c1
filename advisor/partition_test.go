package advisor

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAnalyzePartitionKeyWarning(t *testing.T) {
	c := require.New(t)

	e := NewEngine()

	analysis := e.AnalyzePartitionKey("SCAN operation", false)
	c.Equal(StatusWarning, analysis.Status)
	c.NotEmpty(analysis.Recommendation)
	c.Contains(analysis.CostImpact, "High")
}

func TestAnalyzePartitionKeyOptimal(t *testing.T) {
	c := require.New(t)

	e := NewEngine()

	analysis := e.AnalyzePartitionKey("user_id = 'x'", true)
	c.Equal(StatusOptimal, analysis.Status)
	c.Empty(analysis.Recommendation)
	c.Contains(analysis.CostImpact, "Low")
}

func TestAnalyzePartitionKeyAppendsLog(t *testing.T) {
	c := require.New(t)

	e := NewEngine()

	e.AnalyzePartitionKey("age > 30", false)
	e.AnalyzePartitionKey("user_id = 'u001'", true)

	log := e.QueryPatterns()
	c.Len(log, 2)
	c.Equal("age > 30", log[0].Pattern)
	c.False(log[0].UsesPartitionKey)
	c.True(log[1].UsesPartitionKey)
}
