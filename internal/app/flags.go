package app

import (
	"flag"
	"fmt"
	"strings"
)

// Options represents the command-line parameters shared by the drivers.
type Options struct {
	ConfigPath string
	GraphPath  string
	Nodes      int
	Seed       int64
	Ticks      int
	TPS        int
	Width      int
	Height     int
	HUDWidth   int
	CSVPath    string
	DBPath     string
	LogLevel   string
	Verify     bool
	Sets       KVList
}

// NewOptions returns Options populated with sensible defaults. Zero values
// for Nodes, Seed and Ticks leave the config file (or its defaults) in charge.
func NewOptions() *Options {
	return &Options{TPS: 4, Width: 720, Height: 720, HUDWidth: 240, LogLevel: "info"}
}

// Bind attaches the options to the provided FlagSet.
func (o *Options) Bind(fs *flag.FlagSet) {
	fs.StringVar(&o.ConfigPath, "config", o.ConfigPath, "YAML config file")
	fs.StringVar(&o.GraphPath, "graph", o.GraphPath, "edge list file (a,b per line); generated when empty")
	fs.IntVar(&o.Nodes, "nodes", o.Nodes, "minimum node count for a generated graph")
	fs.Int64Var(&o.Seed, "seed", o.Seed, "seed for graph generation and reset")
	fs.IntVar(&o.Ticks, "ticks", o.Ticks, "tick budget")
	fs.IntVar(&o.TPS, "tps", o.TPS, "ticks per second (GUI)")
	fs.IntVar(&o.Width, "width", o.Width, "graph view width in pixels (GUI)")
	fs.IntVar(&o.Height, "height", o.Height, "graph view height in pixels (GUI)")
	fs.IntVar(&o.HUDWidth, "hud", o.HUDWidth, "HUD panel width in pixels, 0 hides it (GUI)")
	fs.StringVar(&o.CSVPath, "csv", o.CSVPath, "write the population history to this CSV file")
	fs.StringVar(&o.DBPath, "db", o.DBPath, "archive the run in this SQLite database")
	fs.StringVar(&o.LogLevel, "log-level", o.LogLevel, "debug, info, warn or error")
	fs.BoolVar(&o.Verify, "verify", o.Verify, "check engine invariants after every tick")
	fs.Var(&o.Sets, "set", "config override key=value (repeatable)")
}

// KVList collects repeated key=value flags in order.
type KVList []KV

// KV is one key=value override.
type KV struct {
	Key, Value string
}

// String implements flag.Value.
func (l *KVList) String() string {
	parts := make([]string, len(*l))
	for i, kv := range *l {
		parts[i] = kv.Key + "=" + kv.Value
	}
	return strings.Join(parts, ",")
}

// Set implements flag.Value.
func (l *KVList) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	key = strings.TrimSpace(key)
	if !ok || key == "" {
		return fmt.Errorf("expected key=value, got %q", s)
	}
	*l = append(*l, KV{Key: key, Value: strings.TrimSpace(value)})
	return nil
}
