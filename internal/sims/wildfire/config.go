package wildfire

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// AutoAgents asks Reset to deploy one firefighter per ten nodes (at least one).
const AutoAgents = -1

// ErrInvalidConfig wraps every configuration validation failure.
var ErrInvalidConfig = errors.New("wildfire: invalid config")

// Params holds the per-tick probabilities. They may be tuned while running.
type Params struct {
	Combustion   float64 `yaml:"combustion"`
	Transmission float64 `yaml:"transmission"`
	Respawn      float64 `yaml:"respawn"`
}

// Config controls landscape seeding, the firefighter roster and the run length.
type Config struct {
	Seed int64 `yaml:"seed"`

	// Nodes is the minimum node count used when the landscape is generated.
	Nodes          int     `yaml:"nodes"`
	ForestFraction float64 `yaml:"forest_fraction"`
	Agents         int     `yaml:"agents"`
	SkillMean      float64 `yaml:"skill_mean"`
	Ticks          int     `yaml:"ticks"`
	LogEvery       int     `yaml:"log_every"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Seed:           1337,
		Nodes:          200,
		ForestFraction: 0.8,
		Agents:         AutoAgents,
		SkillMean:      5,
		Ticks:          50,
		LogEvery:       10,
		Params: Params{
			Combustion:   0.1,
			Transmission: 0.5,
			Respawn:      0.1,
		},
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// FromMap populates the config from a string map (flag-style key/value pairs).
// Unparseable values are ignored.
func FromMap(m map[string]string) Config {
	c := DefaultConfig()
	for k, v := range m {
		_ = c.Set(k, v)
	}
	return c
}

// Set applies a single key=value override.
func (c *Config) Set(key, value string) error {
	parseFloat := func(dst *float64) error {
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = v
		return nil
	}
	parseInt := func(dst *int) error {
		v, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		*dst = v
		return nil
	}

	switch key {
	case "seed":
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("%s: %w", key, err)
		}
		c.Seed = v
		return nil
	case "nodes":
		return parseInt(&c.Nodes)
	case "forest_fraction":
		return parseFloat(&c.ForestFraction)
	case "agents":
		return parseInt(&c.Agents)
	case "skill_mean":
		return parseFloat(&c.SkillMean)
	case "ticks":
		return parseInt(&c.Ticks)
	case "log_every":
		return parseInt(&c.LogEvery)
	case "combustion":
		return parseFloat(&c.Params.Combustion)
	case "transmission":
		return parseFloat(&c.Params.Transmission)
	case "respawn":
		return parseFloat(&c.Params.Respawn)
	default:
		return fmt.Errorf("%w: unknown key %q", ErrInvalidConfig, key)
	}
}

// Validate checks ranges that do not depend on the landscape size. The agent
// count is checked against the node count by Reset.
func (c Config) Validate() error {
	var errs []error
	probability := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%w: %s %v not in [0,1]", ErrInvalidConfig, name, v))
		}
	}
	probability("combustion", c.Params.Combustion)
	probability("transmission", c.Params.Transmission)
	probability("respawn", c.Params.Respawn)
	probability("forest_fraction", c.ForestFraction)

	if c.Agents != AutoAgents && c.Agents < 1 {
		errs = append(errs, fmt.Errorf("%w: agents %d must be positive (or %d for one per ten nodes)", ErrInvalidConfig, c.Agents, AutoAgents))
	}
	if c.Ticks <= 0 {
		errs = append(errs, fmt.Errorf("%w: ticks %d must be positive", ErrInvalidConfig, c.Ticks))
	}
	if c.LogEvery < 0 {
		errs = append(errs, fmt.Errorf("%w: log_every %d is negative", ErrInvalidConfig, c.LogEvery))
	}
	return errors.Join(errs...)
}

// agentCount resolves AutoAgents against the landscape size.
func (c Config) agentCount(nodes int) int {
	if c.Agents != AutoAgents {
		return c.Agents
	}
	return max(1, nodes/10)
}
