package types

// Operation names shared by the façade cost table and the capacity planner.
const (
	OpCreateTable = "create_table"
	OpPutItem     = "put_item"
	OpGetItem     = "get_item"
	OpUpdateItem  = "update_item"
	OpDeleteItem  = "delete_item"
	OpQuery       = "query"
	OpScan        = "scan"
	OpBatchWrite  = "batch_write"
	OpBatchGet    = "batch_get"
)
