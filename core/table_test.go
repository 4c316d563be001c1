package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/dynosim/dynosim/types"
)

var usersSchema = types.KeySchema{PartitionKey: "user_id"}

func TestPutOverwrites(t *testing.T) {
	c := require.New(t)

	table := NewTable("users", usersSchema)

	key, err := table.Put(types.Item{"user_id": "u001", "name": "Alice", "age": 28})
	c.NoError(err)
	c.Equal("u001", key)

	key, err = table.Put(types.Item{"user_id": "u001", "name": "Alicia", "age": 29})
	c.NoError(err)
	c.Equal("u001", key)
	c.Equal(1, table.ItemCount())

	item, err := table.Get(types.Item{"user_id": "u001"})
	c.NoError(err)
	c.Empty(cmp.Diff(types.Item{"user_id": "u001", "name": "Alicia", "age": 29}, item))
}

func TestPutSyntheticKey(t *testing.T) {
	c := require.New(t)

	table := NewTable("users", usersSchema)

	key, err := table.Put(types.Item{"name": "No Key"})
	c.NoError(err)
	c.Equal("item_0", key)

	key, err = table.Put(types.Item{"name": "Still No Key"})
	c.NoError(err)
	c.Equal("item_1", key)
}

func TestPutEmptyItem(t *testing.T) {
	c := require.New(t)

	table := NewTable("users", usersSchema)

	_, err := table.Put(types.Item{})
	c.Error(err)

	var typed types.Error
	c.ErrorAs(err, &typed)
	c.Equal(types.CodeMissingPartitionKey, typed.Code())
}

func TestLookupIsPositional(t *testing.T) {
	c := require.New(t)

	table := NewTable("users", usersSchema)

	_, err := table.Put(types.Item{"user_id": "u001", "name": "Alice"})
	c.NoError(err)

	// The supplied attribute name is not validated against the schema;
	// the value alone resolves the item.
	item, err := table.Get(types.Item{"totally_wrong_attribute": "u001"})
	c.NoError(err)
	c.Equal("Alice", item["name"])
}

func TestUpdateMerges(t *testing.T) {
	c := require.New(t)

	table := NewTable("users", usersSchema)

	_, err := table.Put(types.Item{"user_id": "u001", "name": "Alice", "age": 28, "city": "Austin"})
	c.NoError(err)

	updated, err := table.Update(types.Item{"user_id": "u001"}, types.Item{"age": 29})
	c.NoError(err)
	c.Equal(29, updated["age"])
	c.Equal("Alice", updated["name"])
	c.Equal("Austin", updated["city"])
}

func TestUpdateMissingItem(t *testing.T) {
	c := require.New(t)

	table := NewTable("users", usersSchema)

	_, err := table.Update(types.Item{"user_id": "nope"}, types.Item{"age": 1})

	var typed types.Error
	c.ErrorAs(err, &typed)
	c.Equal(types.CodeItemNotFound, typed.Code())
}

func TestDeleteThenGet(t *testing.T) {
	c := require.New(t)

	table := NewTable("users", usersSchema)

	_, err := table.Put(types.Item{"user_id": "u001", "name": "Alice"})
	c.NoError(err)
	_, err = table.Put(types.Item{"user_id": "u002", "name": "Bob"})
	c.NoError(err)

	deleted, err := table.Delete(types.Item{"user_id": "u001"})
	c.NoError(err)
	c.Equal("Alice", deleted["name"])
	c.Equal(1, table.ItemCount())

	_, err = table.Get(types.Item{"user_id": "u001"})

	var typed types.Error
	c.ErrorAs(err, &typed)
	c.Equal(types.CodeItemNotFound, typed.Code())
}

func TestQueryAgeComparison(t *testing.T) {
	c := require.New(t)

	table := NewTable("users", usersSchema)

	_, err := table.Put(types.Item{"user_id": "u001", "age": 28})
	c.NoError(err)
	_, err = table.Put(types.Item{"user_id": "u002", "age": 35})
	c.NoError(err)
	_, err = table.Put(types.Item{"user_id": "u003", "age": 42})
	c.NoError(err)

	items, scanned := table.Query("age > 30")
	c.Len(items, 2)
	c.Equal(3, scanned)

	items, scanned = table.Query("age < 30")
	c.Len(items, 1)
	c.Equal(3, scanned)
	c.Equal("u001", items[0]["user_id"])
}

func TestQueryCityEquality(t *testing.T) {
	c := require.New(t)

	table := NewTable("users", usersSchema)

	_, err := table.Put(types.Item{"user_id": "u001", "city": "San Francisco"})
	c.NoError(err)
	_, err = table.Put(types.Item{"user_id": "u002", "city": "New York"})
	c.NoError(err)

	items, scanned := table.Query("city = 'San Francisco'")
	c.Len(items, 1)
	c.Equal(2, scanned)
	c.Equal("u001", items[0]["user_id"])
}

func TestQueryPartitionKeyShortCircuit(t *testing.T) {
	c := require.New(t)

	table := NewTable("users", usersSchema)

	_, err := table.Put(types.Item{"user_id": "u001", "age": 28})
	c.NoError(err)
	_, err = table.Put(types.Item{"user_id": "u002", "age": 35})
	c.NoError(err)

	// Partition-key lookups return only the first iterated item by
	// simulated convention, regardless of the requested value.
	items, scanned := table.Query("user_id = 'u002'")
	c.Len(items, 1)
	c.Equal(2, scanned)
	c.Equal("u001", items[0]["user_id"])
}

func TestQueryUnrecognizedCondition(t *testing.T) {
	c := require.New(t)

	table := NewTable("users", usersSchema)

	_, err := table.Put(types.Item{"user_id": "u001"})
	c.NoError(err)

	items, scanned := table.Query("name contains 'John'")
	c.Empty(items)
	c.Equal(1, scanned)
}

func TestScanReturnsEverything(t *testing.T) {
	c := require.New(t)

	table := NewTable("users", usersSchema)

	_, err := table.Put(types.Item{"user_id": "u001", "age": 28})
	c.NoError(err)
	_, err = table.Put(types.Item{"user_id": "u002", "age": 35})
	c.NoError(err)

	items, scanned := table.Scan("age > 25")
	c.Len(items, 2)
	c.Equal(2, scanned)
}

func TestClear(t *testing.T) {
	c := require.New(t)

	table := NewTable("users", usersSchema)

	_, err := table.Put(types.Item{"user_id": "u001"})
	c.NoError(err)

	table.RecordQueryPattern("age > 30", false)
	table.RecordScan("SCAN with filter: none", 1, nil)

	table.Clear()
	c.Zero(table.ItemCount())
	c.Empty(table.QueryPatterns)
	c.Empty(table.ScanOperations)
}

func TestSchemaDescription(t *testing.T) {
	c := require.New(t)

	table := NewTable("users", usersSchema)

	_, err := table.Put(types.Item{"user_id": "u001", "name": "Alice", "age": 28})
	c.NoError(err)

	c.Equal("Primary key: user_id. Fields: age, name", table.SchemaDescription())

	withSort := NewTable("orders", types.KeySchema{PartitionKey: "order_id", SortKey: "created_at"})
	c.Equal("Primary key: order_id. Sort key: created_at.", withSort.SchemaDescription())
}

func TestDescription(t *testing.T) {
	c := require.New(t)

	table := NewTable("users", usersSchema)

	_, err := table.Put(types.Item{"user_id": "u001"})
	c.NoError(err)

	table.RecordQueryPattern("age > 30", false)

	desc := table.Description()
	c.Equal("users", desc.TableName)
	c.Equal(1, desc.ItemCount)
	c.Equal(1, desc.QueryCount)
	c.Equal("ACTIVE", desc.TableStatus)
	c.False(desc.CreatedAt.IsZero())
}
