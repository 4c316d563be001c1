// Package advisor inspects table operations and emits cost, efficiency and
// change-event analyses. The four analyzers are independent of table data;
// each only reads the operation metadata it is handed, but each appends to
// the log or counter state the engine owns.
package advisor

import (
	"github.com/dynosim/dynosim/types"
)

// CapacityConfig tunes the capacity planner.
type CapacityConfig struct {
	// ReadUnitKB is the payload size covered by one read unit.
	ReadUnitKB float64 `yaml:"readUnitKB" json:"read_unit_kb"`

	// AverageThreshold is the per-operation average above which provisioned
	// billing is recommended.
	AverageThreshold float64 `yaml:"averageThreshold" json:"average_threshold"`

	// Headroom scales the average when suggesting provisioned units.
	Headroom float64 `yaml:"headroom" json:"headroom"`
}

// EfficiencyConfig tunes the scan-ratio classification of the index advisor.
type EfficiencyConfig struct {
	WarningRatio  float64 `yaml:"warningRatio" json:"warning_ratio"`
	CriticalRatio float64 `yaml:"criticalRatio" json:"critical_ratio"`
}

// DefaultCapacityConfig returns the simulated capacity model: 4 KB read
// units, provisioned billing above 5 units per operation average, 20%
// provisioning headroom.
func DefaultCapacityConfig() CapacityConfig {
	return CapacityConfig{
		ReadUnitKB:       4,
		AverageThreshold: 5,
		Headroom:         1.2,
	}
}

// DefaultEfficiencyConfig returns the scan-ratio thresholds: below 2x is
// efficient, below 10x a warning, anything above critical.
func DefaultEfficiencyConfig() EfficiencyConfig {
	return EfficiencyConfig{
		WarningRatio:  2,
		CriticalRatio: 10,
	}
}

// CapacityUsage holds the running read/write unit totals. Monotonically
// increasing until Reset.
type CapacityUsage struct {
	ReadUnits  int64 `json:"read_units"`
	WriteUnits int64 `json:"write_units"`
}

// Engine owns all advisory state for its lifetime: the cross-table query
// pattern log, the capacity counters and the scan operation log. It never
// mutates table data. The engine is not safe for concurrent use on its own;
// the façade serializes calls into it.
type Engine struct {
	capacity   CapacityConfig
	efficiency EfficiencyConfig
	events     EventSource

	queryPatterns []types.QueryPatternRecord
	scanLog       []types.ScanRecord
	usage         CapacityUsage
}

// Option configures an Engine.
type Option func(*Engine)

// WithEventSource replaces the random ID/sequence/score source, letting
// tests substitute a deterministic generator.
func WithEventSource(source EventSource) Option {
	return func(e *Engine) {
		e.events = source
	}
}

// WithCapacityConfig overrides the capacity model.
func WithCapacityConfig(cfg CapacityConfig) Option {
	return func(e *Engine) {
		e.capacity = cfg
	}
}

// WithEfficiencyConfig overrides the scan-ratio thresholds.
func WithEfficiencyConfig(cfg EfficiencyConfig) Option {
	return func(e *Engine) {
		e.efficiency = cfg
	}
}

// NewEngine creates an advisory engine with empty logs and zeroed counters.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		capacity:   DefaultCapacityConfig(),
		efficiency: DefaultEfficiencyConfig(),
		events:     NewRandomEventSource(),
	}

	for _, opt := range opts {
		opt(e)
	}

	e.reset()

	return e
}

// Reset clears all advisory logs and counters back to their initial state.
func (e *Engine) Reset() {
	e.reset()
}

func (e *Engine) reset() {
	e.queryPatterns = []types.QueryPatternRecord{}
	e.scanLog = []types.ScanRecord{}
	e.usage = CapacityUsage{}
}

// Usage returns the running capacity totals.
func (e *Engine) Usage() CapacityUsage {
	return e.usage
}

// QueryPatterns returns a copy of the cross-table query pattern log.
func (e *Engine) QueryPatterns() []types.QueryPatternRecord {
	out := make([]types.QueryPatternRecord, len(e.queryPatterns))
	copy(out, e.queryPatterns)

	return out
}

// ScanLog returns a copy of the cross-table scan operation log.
func (e *Engine) ScanLog() []types.ScanRecord {
	out := make([]types.ScanRecord, len(e.scanLog))
	copy(out, e.scanLog)

	return out
}

// LastScan returns the most recent scan log entry, when there is one.
func (e *Engine) LastScan() (types.ScanRecord, bool) {
	if len(e.scanLog) == 0 {
		return types.ScanRecord{}, false
	}

	return e.scanLog[len(e.scanLog)-1], true
}
