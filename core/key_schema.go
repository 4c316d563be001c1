package core

import (
	"fmt"
	"sort"

	"github.com/dynosim/dynosim/types"
)

// deriveWriteKey resolves the storage key for an item being written: the
// partition-key attribute value when present, ok=false otherwise.
func deriveWriteKey(schema types.KeySchema, item types.Item) (string, bool) {
	val, ok := item[schema.PartitionKey]
	if !ok {
		return "", false
	}

	return fmt.Sprintf("%v", val), true
}

// DerivedLookupKey resolves the storage key from a lookup key map. The value
// of the sole supplied attribute is used positionally; the attribute name is
// not checked against the table's declared partition key, so a caller passing
// any attribute name still resolves by value.
func DerivedLookupKey(schema types.KeySchema, key types.Item) (string, bool) {
	if len(key) == 0 {
		return "", false
	}

	if val, ok := key[schema.PartitionKey]; ok {
		return fmt.Sprintf("%v", val), true
	}

	fields := make([]string, 0, len(key))
	for field := range key {
		fields = append(fields, field)
	}

	sort.Strings(fields)

	return fmt.Sprintf("%v", key[fields[0]]), true
}
