package dynosim

import (
	"github.com/dynosim/dynosim/advisor"
	"github.com/dynosim/dynosim/types"
)

// OperationResult is embedded in every operation output. Cost reflects the
// amount charged to the ledger for the call, including failed calls.
type OperationResult struct {
	Success bool    `json:"success"`
	Error   string  `json:"error,omitempty"`
	Cost    float64 `json:"cost"`
}

// CreateTableOutput reports the outcome of a CreateTable call.
type CreateTableOutput struct {
	OperationResult
	TableName string          `json:"table_name,omitempty"`
	Status    string          `json:"status,omitempty"`
	KeySchema types.KeySchema `json:"key_schema,omitempty"`
}

// PutItemOutput reports a stored item together with the synthesized change
// event, its derived downstream payload and a capacity estimate.
type PutItemOutput struct {
	OperationResult
	ItemKey          string                    `json:"item_key,omitempty"`
	Item             types.Item                `json:"item,omitempty"`
	ChangeEvent      *advisor.StreamRecord     `json:"change_event,omitempty"`
	DerivedPayload   *advisor.DerivedPayload   `json:"derived_payload,omitempty"`
	ProcessingHints  []string                  `json:"processing_hints,omitempty"`
	CapacityEstimate *advisor.CapacityAnalysis `json:"capacity_estimate,omitempty"`
}

// GetItemOutput reports a retrieved item.
type GetItemOutput struct {
	OperationResult
	Item types.Item `json:"item,omitempty"`
}

// UpdateItemOutput reports the merged item after an update.
type UpdateItemOutput struct {
	OperationResult
	UpdatedItem types.Item `json:"updated_item,omitempty"`
}

// DeleteItemOutput reports the removed item.
type DeleteItemOutput struct {
	OperationResult
	DeletedItem types.Item `json:"deleted_item,omitempty"`
}

// OptimizationAnalysis bundles the advisory verdicts attached to read
// operations.
type OptimizationAnalysis struct {
	PartitionKey advisor.PartitionKeyAnalysis `json:"partition_key_analysis"`
	Capacity     advisor.CapacityAnalysis     `json:"capacity_analysis"`
	Index        advisor.IndexAnalysis        `json:"index_analysis"`
}

// QueryOutput reports matched items. Items is capped at five entries for
// display; Count and ScannedCount reflect the uncapped totals.
type QueryOutput struct {
	OperationResult
	Items        []types.Item          `json:"items"`
	Count        int                   `json:"count"`
	ScannedCount int                   `json:"scanned_count"`
	Optimization *OptimizationAnalysis `json:"optimization_analysis,omitempty"`
}

// ScanOutput reports the full scanned item set, uncapped, with the same
// advisory bundle as QueryOutput.
type ScanOutput struct {
	OperationResult
	Items        []types.Item          `json:"items"`
	Count        int                   `json:"count"`
	ScannedCount int                   `json:"scanned_count"`
	Optimization *OptimizationAnalysis `json:"optimization_analysis,omitempty"`
}

// BatchWriteOutput reports the keys stored by a batch write.
type BatchWriteOutput struct {
	OperationResult
	ProcessedKeys []string `json:"processed_keys,omitempty"`
	Count         int      `json:"count"`
}

// Ledger accumulates the simulated spend across all operations.
type Ledger struct {
	TotalCost  float64 `json:"total_cost"`
	Operations int     `json:"operations"`
}

// Stats summarizes the state of the engine.
type Stats struct {
	Tables     int     `json:"tables"`
	Operations int     `json:"operations"`
	TotalCost  float64 `json:"total_cost"`
}
