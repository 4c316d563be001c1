package core

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dynosim/dynosim/types"
)

// Table simulates a single key-value table: a named collection of items
// keyed by a declared partition attribute, plus the append-only access
// pattern logs the advisory analyzers feed on.
type Table struct {
	Name           string
	KeySchema      types.KeySchema
	Data           map[string]types.Item
	SortedKeys     []string
	QueryPatterns  []types.QueryPatternRecord
	ScanOperations []types.ScanRecord
	CreatedAt      time.Time
}

// NewTable creates an empty table with the given key schema.
func NewTable(name string, schema types.KeySchema) *Table {
	return &Table{
		Name:           name,
		KeySchema:      schema,
		Data:           map[string]types.Item{},
		SortedKeys:     []string{},
		QueryPatterns:  []types.QueryPatternRecord{},
		ScanOperations: []types.ScanRecord{},
		CreatedAt:      time.Now(),
	}
}

func (t *Table) setItem(key string, item types.Item) {
	_, exists := t.Data[key]
	t.Data[key] = item

	if !exists {
		t.SortedKeys = append(t.SortedKeys, key)
		sort.Strings(t.SortedKeys)
	}
}

// Put writes an item, replacing any existing item at the same derived key.
// Items without the partition-key attribute get a synthetic sequential key;
// an empty item is the one rejected input.
func (t *Table) Put(item types.Item) (string, error) {
	if len(item) == 0 {
		return "", types.NewError(types.CodeMissingPartitionKey, "item has no attributes to derive a key from", nil)
	}

	key, ok := deriveWriteKey(t.KeySchema, item)
	if !ok {
		key = fmt.Sprintf("item_%d", len(t.SortedKeys))
	}

	t.setItem(key, item.Copy())

	return key, nil
}

// Get returns a copy of the item addressed by the lookup key map.
func (t *Table) Get(key types.Item) (types.Item, error) {
	item, err := t.lookup(key)
	if err != nil {
		return nil, err
	}

	return item.Copy(), nil
}

// Update merges the updates map into the stored item. Attributes absent from
// updates are untouched; present attributes are overwritten.
func (t *Table) Update(key types.Item, updates types.Item) (types.Item, error) {
	item, err := t.lookup(key)
	if err != nil {
		return nil, err
	}

	for field, val := range updates {
		item[field] = val
	}

	return item.Copy(), nil
}

// Delete removes and returns the item addressed by the lookup key map.
func (t *Table) Delete(key types.Item) (types.Item, error) {
	item, err := t.lookup(key)
	if err != nil {
		return nil, err
	}

	derived, _ := DerivedLookupKey(t.KeySchema, key)
	delete(t.Data, derived)

	pos := sort.SearchStrings(t.SortedKeys, derived)
	if pos < len(t.SortedKeys) && t.SortedKeys[pos] == derived {
		copy(t.SortedKeys[pos:], t.SortedKeys[pos+1:])
		t.SortedKeys[len(t.SortedKeys)-1] = ""
		t.SortedKeys = t.SortedKeys[:len(t.SortedKeys)-1]
	}

	return item, nil
}

func (t *Table) lookup(key types.Item) (types.Item, error) {
	derived, ok := DerivedLookupKey(t.KeySchema, key)
	if !ok {
		return nil, types.NewError(types.CodeItemNotFound, "Item not found", nil)
	}

	item, exists := t.Data[derived]
	if !exists {
		return nil, types.NewError(types.CodeItemNotFound, "Item not found", nil)
	}

	return item, nil
}

// Query filters the item set through the first matcher rule that recognizes
// the condition text. It is a simulation, not a query planner: an unmatched
// condition returns nothing, and a partition-key lookup short-circuits after
// the first iterated item. ScannedCount always equals the current item count.
func (t *Table) Query(conditionText string) ([]types.Item, int) {
	scanned := len(t.SortedKeys)
	items := []types.Item{}

	rule := selectRule(conditionText, t.KeySchema.PartitionKey)
	if rule == nil {
		return items, scanned
	}

	for _, key := range t.SortedKeys {
		item := t.Data[key]
		if !rule.Match(item, conditionText) {
			continue
		}

		items = append(items, item.Copy())

		if rule.SingleItem {
			break
		}
	}

	return items, scanned
}

// Scan returns the entire item set verbatim. The filter expression is
// recorded for advisory purposes by the caller but performs no filtering.
func (t *Table) Scan(filterText string) ([]types.Item, int) {
	items := make([]types.Item, 0, len(t.SortedKeys))
	for _, key := range t.SortedKeys {
		items = append(items, t.Data[key].Copy())
	}

	return items, len(items)
}

// RecordQueryPattern appends to the table's query pattern log.
func (t *Table) RecordQueryPattern(pattern string, usesPartitionKey bool) {
	t.QueryPatterns = append(t.QueryPatterns, types.QueryPatternRecord{
		Pattern:          pattern,
		UsesPartitionKey: usesPartitionKey,
		Timestamp:        time.Now(),
	})
}

// RecordScan appends to the table's scan operation log.
func (t *Table) RecordScan(pattern string, itemsScanned int, filterAttributes []string) {
	t.ScanOperations = append(t.ScanOperations, types.ScanRecord{
		Pattern:          pattern,
		ItemsScanned:     itemsScanned,
		FilterAttributes: filterAttributes,
		Timestamp:        time.Now(),
	})
}

// ItemCount returns the number of stored items.
func (t *Table) ItemCount() int {
	return len(t.SortedKeys)
}

// Clear removes all items and access pattern logs from the table.
func (t *Table) Clear() {
	t.Data = map[string]types.Item{}
	t.SortedKeys = []string{}
	t.QueryPatterns = []types.QueryPatternRecord{}
	t.ScanOperations = []types.ScanRecord{}
}

// Description returns the metadata surface of the table.
func (t *Table) Description() types.TableDescription {
	return types.TableDescription{
		TableName:   t.Name,
		KeySchema:   t.KeySchema,
		ItemCount:   len(t.SortedKeys),
		QueryCount:  len(t.QueryPatterns),
		ScanCount:   len(t.ScanOperations),
		CreatedAt:   t.CreatedAt,
		TableStatus: "ACTIVE",
	}
}

// SchemaDescription renders the one-line schema text consumed by external
// natural-language interpreters.
func (t *Table) SchemaDescription() string {
	desc := fmt.Sprintf("Primary key: %s.", t.KeySchema.PartitionKey)

	if t.KeySchema.SortKey != "" {
		desc += fmt.Sprintf(" Sort key: %s.", t.KeySchema.SortKey)
	}

	fields := t.attributeNames()
	if len(fields) > 0 {
		desc += fmt.Sprintf(" Fields: %s", strings.Join(fields, ", "))
	}

	return desc
}

func (t *Table) attributeNames() []string {
	seen := map[string]bool{}

	for _, item := range t.Data {
		for field := range item {
			if field != t.KeySchema.PartitionKey {
				seen[field] = true
			}
		}
	}

	fields := make([]string, 0, len(seen))
	for field := range seen {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	return fields
}
