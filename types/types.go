package types

import (
	"fmt"
	"time"
)

// Item is an open attribute map. Values are strings, numbers, bools or
// date strings; no schema is enforced beyond the partition key check at
// write time.
type Item map[string]interface{}

// Copy returns a shallow copy of the item.
func (i Item) Copy() Item {
	out := Item{}
	for key, val := range i {
		out[key] = val
	}

	return out
}

// Number returns the attribute as a float64 when it holds any numeric type.
func (i Item) Number(field string) (float64, bool) {
	switch v := i[field].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	}

	return 0, false
}

// String returns the attribute as a string when it holds one.
func (i Item) String(field string) (string, bool) {
	v, ok := i[field].(string)
	return v, ok
}

// KeySchema declares the partition key of a table and an optional sort key.
// Immutable after table creation.
type KeySchema struct {
	PartitionKey string `json:"partition_key" yaml:"partitionKey"`
	SortKey      string `json:"sort_key,omitempty" yaml:"sortKey,omitempty"`
}

// AttributeValue is the string-typed wrapper form used in change event
// images, mimicking a DynamoDB stream record attribute.
type AttributeValue struct {
	S string `json:"S"`
}

// CoerceAttributeValues converts every attribute of an item to its
// string-typed wrapper form.
func CoerceAttributeValues(item Item) map[string]AttributeValue {
	image := map[string]AttributeValue{}
	for k, v := range item {
		image[k] = AttributeValue{S: fmt.Sprintf("%v", v)}
	}

	return image
}

// QueryPatternRecord is an append-only log entry describing a query's key
// condition and whether it used the partition key.
type QueryPatternRecord struct {
	Pattern          string    `json:"pattern"`
	UsesPartitionKey bool      `json:"uses_partition_key"`
	Timestamp        time.Time `json:"timestamp"`
}

// ScanRecord is an append-only log entry describing a scan or inefficient
// query, used by the index advisor.
type ScanRecord struct {
	Pattern          string    `json:"pattern"`
	ItemsScanned     int       `json:"items_scanned"`
	FilterAttributes []string  `json:"filter_attributes"`
	Timestamp        time.Time `json:"timestamp"`
}

// TableDescription is the metadata surface of a table.
type TableDescription struct {
	TableName    string    `json:"table_name"`
	KeySchema    KeySchema `json:"key_schema"`
	ItemCount    int       `json:"item_count"`
	QueryCount   int       `json:"query_count"`
	ScanCount    int       `json:"scan_count"`
	CreatedAt    time.Time `json:"created_at"`
	TableStatus  string    `json:"table_status"`
	BillingModel string    `json:"billing_model,omitempty"`
}
