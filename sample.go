package dynosim

import (
	"github.com/dynosim/dynosim/types"
)

type sampleTable struct {
	name   string
	schema types.KeySchema
	items  []types.Item
}

var sampleTables = []sampleTable{
	{
		name:   "users",
		schema: types.KeySchema{PartitionKey: "user_id"},
		items: []types.Item{
			{"user_id": "u001", "name": "Alice Johnson", "email": "alice@example.com", "age": 28, "city": "San Francisco"},
			{"user_id": "u002", "name": "Bob Smith", "email": "bob@example.com", "age": 35, "city": "New York"},
			{"user_id": "u003", "name": "Carol Davis", "email": "carol@example.com", "age": 42, "city": "Chicago"},
		},
	},
	{
		name:   "products",
		schema: types.KeySchema{PartitionKey: "product_id"},
		items: []types.Item{
			{"product_id": "p001", "name": "iPhone 15", "category": "electronics", "price": 999, "rating": 4.5},
			{"product_id": "p002", "name": "MacBook Pro", "category": "electronics", "price": 2499, "rating": 4.8},
			{"product_id": "p003", "name": "AirPods", "category": "electronics", "price": 249, "rating": 4.3},
		},
	},
	{
		name:   "orders",
		schema: types.KeySchema{PartitionKey: "order_id"},
		items: []types.Item{
			{"order_id": "o001", "user_id": "u001", "product_id": "p001", "quantity": 1, "total": 999, "status": "shipped"},
			{"order_id": "o002", "user_id": "u002", "product_id": "p002", "quantity": 1, "total": 2499, "status": "delivered"},
			{"order_id": "o003", "user_id": "u001", "product_id": "p003", "quantity": 2, "total": 498, "status": "pending"},
		},
	},
	{
		name:   "reviews",
		schema: types.KeySchema{PartitionKey: "review_id"},
		items: []types.Item{
			{"review_id": "r001", "product_id": "p001", "user_id": "u001", "rating": 5, "comment": "Great phone!", "date": "2024-01-15"},
			{"review_id": "r002", "product_id": "p002", "user_id": "u002", "rating": 4, "comment": "Excellent laptop", "date": "2024-01-20"},
		},
	},
	{
		name:   "inventory",
		schema: types.KeySchema{PartitionKey: "item_id"},
		items: []types.Item{
			{"item_id": "i001", "product_id": "p001", "warehouse": "west", "quantity": 150, "last_updated": "2024-01-10"},
			{"item_id": "i002", "product_id": "p002", "warehouse": "east", "quantity": 75, "last_updated": "2024-01-12"},
		},
	},
}

// Seed creates the five demo tables with their sample items and performs a
// handful of warm-up reads so the advisory histories start non-empty.
func (c *Client) Seed() {
	for _, t := range sampleTables {
		c.CreateTable(t.name, t.schema)

		for _, item := range t.items {
			c.PutItem(t.name, item)
		}
	}

	c.Query("users", "age > 30")
	c.Query("products", "category = 'electronics'")
	c.Scan("orders", "status = 'pending'")
	c.Query("reviews", "rating > 4")
}
