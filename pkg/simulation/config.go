package simulation

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/lao-tseu-is-alive/go-flock-simulation/pkg/behavior"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Config is the file-level configuration of a simulation run.
// The kernel itself performs no validation (malformed parameters are caller
// error); validation happens here, against a JSON Schema, before any value
// reaches the flock.
type Config struct {
	// World Dimensions
	WorldWidth  float64 `json:"worldWidth"`
	WorldHeight float64 `json:"worldHeight"`

	// Population
	NumBoids int `json:"numBoids"`

	// Seed for the initial random placement; fixed seeds give
	// bit-identical trajectories across runs.
	Seed uint64 `json:"seed"`

	// Kinematic caps
	MaxSpeed float64 `json:"maxSpeed"`
	MaxForce float64 `json:"maxForce"`

	// Flocking rule weights
	SeparationWeight float64 `json:"separationWeight"`
	AlignmentWeight  float64 `json:"alignmentWeight"`
	CohesionWeight   float64 `json:"cohesionWeight"`

	// Neighborhood
	PerceptionRadius float64 `json:"perceptionRadius"`

	// Rendering
	ShowStats bool `json:"showStats"`
}

// DefaultConfig carries the classic flocking constants.
func DefaultConfig() *Config {
	return &Config{
		WorldWidth:       800,
		WorldHeight:      600,
		NumBoids:         250,
		Seed:             1,
		MaxSpeed:         3.0,
		MaxForce:         0.05,
		SeparationWeight: 1.5,
		AlignmentWeight:  1.0,
		CohesionWeight:   1.0,
		PerceptionRadius: 50.0,
		ShowStats:        true,
	}
}

// Settings maps the file configuration onto the kernel's settings.
func (c *Config) Settings() behavior.Settings {
	return behavior.Settings{
		Width:            c.WorldWidth,
		Height:           c.WorldHeight,
		MaxSpeed:         c.MaxSpeed,
		MaxForce:         c.MaxForce,
		SeparationWeight: c.SeparationWeight,
		AlignmentWeight:  c.AlignmentWeight,
		CohesionWeight:   c.CohesionWeight,
		PerceptionRadius: c.PerceptionRadius,
		Seed:             c.Seed,
	}
}

// LoadConfig loads configuration from a JSON file and validates it against the schema.
func LoadConfig(configFile string, schemaFile string) (*Config, error) {
	// 1. Compile Schema
	sch, err := jsonschema.Compile(schemaFile)
	if err != nil {
		return nil, fmt.Errorf("failed to compile schema: %w", err)
	}

	// 2. Read Config File
	b, err := os.ReadFile(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// 3. Validate
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("failed to decode config json: %w", err)
	}
	if err := sch.Validate(v); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	// 4. Unmarshal into Struct, on top of the defaults so that absent
	// optional fields keep their classic values.
	cfg := DefaultConfig()
	if err := json.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}
