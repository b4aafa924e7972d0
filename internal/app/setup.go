package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"graph-forest/internal/sims/wildfire"
	"graph-forest/internal/topology"
	"graph-forest/pkg/core"
)

// Setup is a reset World plus the layout used to draw it.
type Setup struct {
	World  *wildfire.World
	Layout topology.Layout
}

// ResolveConfig loads the config file (or defaults) and applies -set
// overrides followed by the dedicated flags.
func ResolveConfig(o *Options) (wildfire.Config, error) {
	cfg := wildfire.DefaultConfig()
	if o.ConfigPath != "" {
		loaded, err := wildfire.LoadConfig(o.ConfigPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	for _, kv := range o.Sets {
		if err := cfg.Set(kv.Key, kv.Value); err != nil {
			return cfg, err
		}
	}
	if o.Seed != 0 {
		cfg.Seed = o.Seed
	}
	if o.Nodes != 0 {
		cfg.Nodes = o.Nodes
	}
	if o.Ticks != 0 {
		cfg.Ticks = o.Ticks
	}
	return cfg, cfg.Validate()
}

// BuildGraph loads the edge list when a path is given and generates a
// lattice of at least cfg.Nodes nodes otherwise. Loaded graphs with more
// edges than a planar graph can hold are rejected.
func BuildGraph(path string, cfg wildfire.Config) (*topology.Graph, topology.Layout, error) {
	if path != "" {
		g, err := topology.LoadEdgeList(path)
		if err != nil {
			return nil, nil, err
		}
		if err := g.CheckPlanarBound(); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", path, err)
		}
		return g, topology.CircleLayout(g), nil
	}
	return topology.Generate(cfg.Nodes, core.NewRNG(cfg.Seed))
}

// Build resolves the configuration, prepares the graph and resets a World.
func Build(o *Options) (*Setup, error) {
	cfg, err := ResolveConfig(o)
	if err != nil {
		return nil, err
	}
	g, layout, err := BuildGraph(o.GraphPath, cfg)
	if err != nil {
		return nil, err
	}
	if n := g.Components(); n > 1 {
		slog.Warn("graph is disconnected", "components", n, "nodes", g.Len())
	}
	w := wildfire.NewWithConfig(g, cfg)
	if err := w.Reset(cfg.Seed); err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}
	return &Setup{World: w, Layout: layout}, nil
}

// NewLogger returns a text logger on stderr at the named level.
func NewLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}
