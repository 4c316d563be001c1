package dynosim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dynosim/dynosim/advisor"
	"github.com/dynosim/dynosim/types"
)

// Config carries the simulated per-operation costs and the advisory
// thresholds. Costs are USD and deliberately approximate; they exist so the
// cost ledger produces plausible figures, not billing accuracy.
type Config struct {
	Costs      map[string]float64       `yaml:"costs"`
	Capacity   advisor.CapacityConfig   `yaml:"capacity"`
	Efficiency advisor.EfficiencyConfig `yaml:"efficiency"`
}

// DefaultConfig returns the built-in cost table and advisory thresholds.
func DefaultConfig() Config {
	return Config{
		Costs: map[string]float64{
			types.OpCreateTable: 0.0,
			types.OpPutItem:     0.00125,
			types.OpGetItem:     0.00025,
			types.OpUpdateItem:  0.00125,
			types.OpDeleteItem:  0.00125,
			types.OpQuery:       0.00025,
			types.OpScan:        0.00025,
			types.OpBatchWrite:  0.00125,
			types.OpBatchGet:    0.00025,
		},
		Capacity:   advisor.DefaultCapacityConfig(),
		Efficiency: advisor.DefaultEfficiencyConfig(),
	}
}

// LoadConfig reads YAML overrides on top of the defaults. Absent keys keep
// their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	return cfg, nil
}

// Cost returns the fixed cost of an operation type.
func (c Config) Cost(operationType string) float64 {
	return c.Costs[operationType]
}
