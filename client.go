// Package dynosim exposes a simulated key-value table engine behind a single
// operation façade. Every call is charged to a cost ledger and, where it
// makes sense, annotated with advisory analyses of partition-key usage,
// capacity consumption, stream synthesis and index opportunities.
package dynosim

import (
	"encoding/json"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/dynosim/dynosim/advisor"
	"github.com/dynosim/dynosim/core"
	"github.com/dynosim/dynosim/types"
)

// displayItemCap bounds the item list surfaced in query outputs. Count and
// ScannedCount stay uncapped, and scans return everything.
const displayItemCap = 5

const (
	errTableExists   = "Table already exists"
	errTableNotFound = "Table does not exist"
)

// Client is the operation façade over the table store and the advisory
// engine. A single mutex serializes all operations; cost accrual, the store
// mutation and the advisory snapshot of one call happen atomically with
// respect to other calls.
type Client struct {
	mu     sync.Mutex
	config Config
	logger zerolog.Logger
	tables map[string]*core.Table
	engine *advisor.Engine
	ledger Ledger
}

// Option configures a Client.
type Option func(*Client)

// WithConfig replaces the default cost table and advisory thresholds.
func WithConfig(cfg Config) Option {
	return func(c *Client) {
		c.config = cfg
	}
}

// WithLogger sets the client logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithEventSource overrides the identifier source for synthesized change
// events. Tests use this to pin event IDs and engagement scores.
func WithEventSource(source advisor.EventSource) Option {
	return func(c *Client) {
		c.engine = advisor.NewEngine(
			advisor.WithEventSource(source),
			advisor.WithCapacityConfig(c.config.Capacity),
			advisor.WithEfficiencyConfig(c.config.Efficiency),
		)
	}
}

// New creates an empty simulated engine.
func New(opts ...Option) *Client {
	c := &Client{
		config: DefaultConfig(),
		logger: zerolog.Nop(),
		tables: map[string]*core.Table{},
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.engine == nil {
		c.engine = advisor.NewEngine(
			advisor.WithCapacityConfig(c.config.Capacity),
			advisor.WithEfficiencyConfig(c.config.Efficiency),
		)
	}

	return c
}

// charge accrues the fixed cost of an operation before any validation, so
// failed calls are billed too. Caller must hold c.mu.
func (c *Client) charge(operationType string) float64 {
	cost := c.config.Cost(operationType)
	c.ledger.TotalCost += cost
	c.ledger.Operations++

	c.logger.Debug().
		Str("operation", operationType).
		Float64("cost", cost).
		Int("total_operations", c.ledger.Operations).
		Msg("operation charged")

	return cost
}

func (c *Client) getTable(name string) (*core.Table, bool) {
	table, ok := c.tables[name]
	return table, ok
}

// CreateTable registers a new table. Creation is free of charge but still
// counts as an operation in the ledger.
func (c *Client) CreateTable(tableName string, schema types.KeySchema) *CreateTableOutput {
	c.mu.Lock()
	defer c.mu.Unlock()

	cost := c.charge(types.OpCreateTable)

	if _, exists := c.tables[tableName]; exists {
		return &CreateTableOutput{OperationResult: failure(errTableExists, cost)}
	}

	c.tables[tableName] = core.NewTable(tableName, schema)

	return &CreateTableOutput{
		OperationResult: success(cost),
		TableName:       tableName,
		Status:          "CREATING",
		KeySchema:       schema,
	}
}

// PutItem stores an item and synthesizes the change event and capacity
// estimate a real stream-backed store would emit.
func (c *Client) PutItem(tableName string, item types.Item) *PutItemOutput {
	c.mu.Lock()
	defer c.mu.Unlock()

	cost := c.charge(types.OpPutItem)

	table, ok := c.getTable(tableName)
	if !ok {
		return &PutItemOutput{OperationResult: failure(errTableNotFound, cost)}
	}

	key, err := table.Put(item)
	if err != nil {
		return &PutItemOutput{OperationResult: failure(errorMessage(err), cost)}
	}

	event := c.engine.SynthesizeChangeEvent("INSERT", table.KeySchema.PartitionKey, item)
	capacity := c.engine.EstimateCapacity(types.OpPutItem, itemSizeKB(item), c.ledger.Operations)

	return &PutItemOutput{
		OperationResult:  success(cost),
		ItemKey:          key,
		Item:             item.Copy(),
		ChangeEvent:      &event.Record,
		DerivedPayload:   &event.Payload,
		ProcessingHints:  event.ProcessingHints,
		CapacityEstimate: &capacity,
	}
}

// GetItem retrieves a single item by key map.
func (c *Client) GetItem(tableName string, key types.Item) *GetItemOutput {
	c.mu.Lock()
	defer c.mu.Unlock()

	cost := c.charge(types.OpGetItem)

	table, ok := c.getTable(tableName)
	if !ok {
		return &GetItemOutput{OperationResult: failure(errTableNotFound, cost)}
	}

	item, err := table.Get(key)
	if err != nil {
		return &GetItemOutput{OperationResult: failure(errorMessage(err), cost)}
	}

	return &GetItemOutput{OperationResult: success(cost), Item: item}
}

// UpdateItem merges the updates map into an existing item.
func (c *Client) UpdateItem(tableName string, key, updates types.Item) *UpdateItemOutput {
	c.mu.Lock()
	defer c.mu.Unlock()

	cost := c.charge(types.OpUpdateItem)

	table, ok := c.getTable(tableName)
	if !ok {
		return &UpdateItemOutput{OperationResult: failure(errTableNotFound, cost)}
	}

	item, err := table.Update(key, updates)
	if err != nil {
		return &UpdateItemOutput{OperationResult: failure(errorMessage(err), cost)}
	}

	return &UpdateItemOutput{OperationResult: success(cost), UpdatedItem: item}
}

// DeleteItem removes an item and returns it.
func (c *Client) DeleteItem(tableName string, key types.Item) *DeleteItemOutput {
	c.mu.Lock()
	defer c.mu.Unlock()

	cost := c.charge(types.OpDeleteItem)

	table, ok := c.getTable(tableName)
	if !ok {
		return &DeleteItemOutput{OperationResult: failure(errTableNotFound, cost)}
	}

	item, err := table.Delete(key)
	if err != nil {
		return &DeleteItemOutput{OperationResult: failure(errorMessage(err), cost)}
	}

	return &DeleteItemOutput{OperationResult: success(cost), DeletedItem: item}
}

// Query evaluates a textual key condition against the table and attaches the
// full advisory bundle: partition-key verdict, capacity estimate and index
// analysis.
func (c *Client) Query(tableName, keyCondition string) *QueryOutput {
	c.mu.Lock()
	defer c.mu.Unlock()

	cost := c.charge(types.OpQuery)

	table, ok := c.getTable(tableName)
	if !ok {
		return &QueryOutput{OperationResult: failure(errTableNotFound, cost), Items: []types.Item{}}
	}

	usesPartitionKey := strings.Contains(keyCondition, table.KeySchema.PartitionKey)
	partition := c.engine.AnalyzePartitionKey(keyCondition, usesPartitionKey)
	table.RecordQueryPattern(keyCondition, usesPartitionKey)

	items, scanned := table.Query(keyCondition)

	capacity := c.engine.EstimateCapacity(types.OpQuery, 1.0, c.ledger.Operations)
	index := c.engine.AdviseIndexes(keyCondition, core.FilterAttributes(keyCondition), len(items), scanned)

	return &QueryOutput{
		OperationResult: success(cost),
		Items:           capItems(items),
		Count:           len(items),
		ScannedCount:    scanned,
		Optimization: &OptimizationAnalysis{
			PartitionKey: partition,
			Capacity:     capacity,
			Index:        index,
		},
	}
}

// Scan returns the full item set. The filter expression is advisory input
// only; it never filters.
func (c *Client) Scan(tableName, filterExpression string) *ScanOutput {
	c.mu.Lock()
	defer c.mu.Unlock()

	cost := c.charge(types.OpScan)

	table, ok := c.getTable(tableName)
	if !ok {
		return &ScanOutput{OperationResult: failure(errTableNotFound, cost), Items: []types.Item{}}
	}

	pattern := "SCAN with filter: none"
	if filterExpression != "" {
		pattern = "SCAN with filter: " + filterExpression
	}

	partition := c.engine.AnalyzePartitionKey("SCAN operation", false)

	items, scanned := table.Scan(filterExpression)

	filterAttrs := core.FilterAttributes(filterExpression)
	table.RecordScan(pattern, scanned, filterAttrs)

	capacity := c.engine.EstimateCapacity(types.OpScan, 0.5*float64(len(items)), c.ledger.Operations)
	index := c.engine.AdviseIndexes(pattern, filterAttrs, len(items), scanned)

	return &ScanOutput{
		OperationResult: success(cost),
		Items:           items,
		Count:           len(items),
		ScannedCount:    scanned,
		Optimization: &OptimizationAnalysis{
			PartitionKey: partition,
			Capacity:     capacity,
			Index:        index,
		},
	}
}

// BatchWrite stores a batch of items in one call. The ledger records a
// single operation charged at the per-item write cost times the batch size.
func (c *Client) BatchWrite(tableName string, items []types.Item) *BatchWriteOutput {
	c.mu.Lock()
	defer c.mu.Unlock()

	cost := c.config.Cost(types.OpBatchWrite) * float64(len(items))
	c.ledger.TotalCost += cost
	c.ledger.Operations++

	c.logger.Debug().
		Str("operation", types.OpBatchWrite).
		Float64("cost", cost).
		Int("batch_size", len(items)).
		Msg("operation charged")

	table, ok := c.getTable(tableName)
	if !ok {
		return &BatchWriteOutput{OperationResult: failure(errTableNotFound, cost)}
	}

	processed := []string{}
	for _, item := range items {
		key, err := table.Put(item)
		if err != nil {
			continue
		}

		processed = append(processed, key)
	}

	return &BatchWriteOutput{
		OperationResult: success(cost),
		ProcessedKeys:   processed,
		Count:           len(processed),
	}
}

// DescribeTable returns table metadata and its billing recommendation from
// the latest capacity picture.
func (c *Client) DescribeTable(tableName string) (types.TableDescription, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	table, ok := c.getTable(tableName)
	if !ok {
		return types.TableDescription{}, false
	}

	return table.Description(), true
}

// SchemaDescription renders the one-line schema text for a table, used to
// prompt external natural-language interpreters.
func (c *Client) SchemaDescription(tableName string) (string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	table, ok := c.getTable(tableName)
	if !ok {
		return "", false
	}

	return table.SchemaDescription(), true
}

// ListTables returns the table names in lexical order.
func (c *Client) ListTables() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	names := make([]string, 0, len(c.tables))
	for name := range c.tables {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// TotalLedger returns a copy of the accrued cost ledger.
func (c *Client) TotalLedger() Ledger {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.ledger
}

// Stats summarizes the engine state.
func (c *Client) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Tables:     len(c.tables),
		Operations: c.ledger.Operations,
		TotalCost:  c.ledger.TotalCost,
	}
}

// LatestIndexAnalysis re-runs the index advisor over the most recent scan
// with nominal sample counts, for dashboards that surface a standing
// recommendation. Returns nil when nothing has been scanned yet.
func (c *Client) LatestIndexAnalysis() *advisor.IndexAnalysis {
	c.mu.Lock()
	defer c.mu.Unlock()

	last, ok := c.engine.LastScan()
	if !ok {
		return nil
	}

	analysis := c.engine.AdviseIndexes(last.Pattern, last.FilterAttributes, displayItemCap, 2*displayItemCap)

	return &analysis
}

// Reset drops all tables, advisory history and the cost ledger in one
// atomic step.
func (c *Client) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tables = map[string]*core.Table{}
	c.engine.Reset()
	c.ledger = Ledger{}
}

func success(cost float64) OperationResult {
	return OperationResult{Success: true, Cost: cost}
}

func failure(message string, cost float64) OperationResult {
	return OperationResult{Success: false, Error: message, Cost: cost}
}

// errorMessage unwraps the human-readable message from typed errors so
// outputs carry "Item not found" rather than the code-prefixed rendering.
func errorMessage(err error) string {
	if terr, ok := err.(types.Error); ok {
		return terr.Message()
	}

	return err.Error()
}

func itemSizeKB(item types.Item) float64 {
	raw, err := json.Marshal(item)
	if err != nil {
		return 0
	}

	return float64(len(raw)) / 1024.0
}

func capItems(items []types.Item) []types.Item {
	if len(items) > displayItemCap {
		return items[:displayItemCap]
	}

	return items
}
