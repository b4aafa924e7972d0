package wildfire

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"graph-forest/internal/topology"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestValidateCollectsErrors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.Combustion = 1.2
	cfg.Params.Respawn = -0.1
	cfg.Ticks = 0
	cfg.Agents = 0

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		t.Fatalf("expected joined errors, got %T", err)
	}
	if got := len(joined.Unwrap()); got != 4 {
		t.Fatalf("expected 4 validation errors, got %d: %v", got, err)
	}
}

func TestValidateRejectsEmptyRoster(t *testing.T) {
	for _, agents := range []int{0, -2} {
		cfg := DefaultConfig()
		cfg.Agents = agents
		if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
			t.Fatalf("agents=%d: expected ErrInvalidConfig, got %v", agents, err)
		}
	}
	cfg := DefaultConfig()
	cfg.Agents = AutoAgents
	if err := cfg.Validate(); err != nil {
		t.Fatalf("auto agents must validate: %v", err)
	}
}

func TestResetRejectsZeroAgents(t *testing.T) {
	g, err := topology.New([]topology.Edge{{A: 0, B: 1}})
	if err != nil {
		t.Fatalf("topology: %v", err)
	}
	cfg := DefaultConfig()
	cfg.Agents = 0
	w := NewWithConfig(g, cfg)
	if err := w.Reset(1); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v (roster %d)", err, w.Roster().Len())
	}
}

func TestFromMapAndSet(t *testing.T) {
	cfg := FromMap(map[string]string{
		"combustion":      "0.25",
		"transmission":    "nope",
		"agents":          "7",
		"seed":            "42",
		"forest_fraction": "1",
	})
	if cfg.Params.Combustion != 0.25 || cfg.Agents != 7 || cfg.Seed != 42 || cfg.ForestFraction != 1 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.Params.Transmission != DefaultConfig().Params.Transmission {
		t.Fatal("unparseable value must leave the default in place")
	}

	if err := cfg.Set("wind", "3"); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected unknown key error, got %v", err)
	}
	if err := cfg.Set("ticks", "x"); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	body := "seed: 7\nagents: 3\nticks: 120\nparams:\n  transmission: 0.9\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Seed != 7 || cfg.Agents != 3 || cfg.Ticks != 120 || cfg.Params.Transmission != 0.9 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Params.Combustion != 0.1 || cfg.ForestFraction != 0.8 {
		t.Fatalf("defaults lost: %+v", cfg)
	}

	if err := os.WriteFile(path, []byte("params: [1, 2"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected yaml error")
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestHistoryRecord(t *testing.T) {
	var h History
	if _, ok := h.Last(); ok {
		t.Fatal("empty history has no last tally")
	}
	h.record(Counts{Burning: 1, Forest: 5, Rock: 2})
	h.record(Counts{Burning: 0, Forest: 6, Rock: 1})
	if h.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", h.Len())
	}
	clone := h.Clone()
	h.record(Counts{})
	if clone.Len() != 2 {
		t.Fatal("clone must not share backing arrays")
	}
	if last, _ := clone.Last(); last != (Counts{Burning: 0, Forest: 6, Rock: 1}) {
		t.Fatalf("unexpected last tally %+v", last)
	}
}
