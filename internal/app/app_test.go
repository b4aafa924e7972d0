package app

import (
	"context"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"graph-forest/internal/report"
	"graph-forest/internal/sims/wildfire"
	"graph-forest/internal/topology"
)

func parseOptions(t *testing.T, args ...string) *Options {
	t.Helper()
	o := NewOptions()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	o.Bind(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse %v: %v", args, err)
	}
	return o
}

func TestBindParsesOverrides(t *testing.T) {
	o := parseOptions(t, "-seed", "9", "-set", "combustion=0.3", "-set", "agents=4", "-csv", "out.csv")
	if o.Seed != 9 || o.CSVPath != "out.csv" {
		t.Fatalf("unexpected options %+v", o)
	}
	if len(o.Sets) != 2 || o.Sets[1] != (KV{Key: "agents", Value: "4"}) {
		t.Fatalf("unexpected sets %+v", o.Sets)
	}
	if got := o.Sets.String(); got != "combustion=0.3,agents=4" {
		t.Fatalf("unexpected String() %q", got)
	}
}

func TestKVListRejectsMalformed(t *testing.T) {
	var l KVList
	for _, bad := range []string{"combustion", "=0.3"} {
		if err := l.Set(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestResolveConfigOrder(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "forest.yaml")
	if err := os.WriteFile(path, []byte("seed: 5\nticks: 30\nparams:\n  combustion: 0.2\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	o := parseOptions(t, "-config", path, "-set", "combustion=0.4", "-ticks", "12")
	cfg, err := ResolveConfig(o)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if cfg.Seed != 5 || cfg.Ticks != 12 || cfg.Params.Combustion != 0.4 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if cfg.Params.Transmission != wildfire.DefaultConfig().Params.Transmission {
		t.Fatalf("expected default transmission to survive, got %v", cfg.Params.Transmission)
	}
}

func TestResolveConfigRejectsBadValues(t *testing.T) {
	o := parseOptions(t, "-set", "respawn=2")
	if _, err := ResolveConfig(o); !errors.Is(err, wildfire.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	o = parseOptions(t, "-set", "wind=3")
	if _, err := ResolveConfig(o); !errors.Is(err, wildfire.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig for unknown key, got %v", err)
	}
}

func TestBuildFromEdgeList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edges.txt")
	edges := "# two triangles\n0,1\n1,2\n2,0\n\n3,4\n4,5\n5,3\n"
	if err := os.WriteFile(path, []byte(edges), 0o644); err != nil {
		t.Fatalf("write edges: %v", err)
	}
	o := parseOptions(t, "-graph", path, "-set", "agents=2")
	s, err := Build(o)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if s.World.Graph().Len() != 6 || len(s.Layout) != 6 {
		t.Fatalf("expected 6 nodes with layout, got %d/%d", s.World.Graph().Len(), len(s.Layout))
	}
	if s.World.Roster().Len() != 2 {
		t.Fatalf("expected 2 agents, got %d", s.World.Roster().Len())
	}
	if err := s.World.Verify(); err != nil {
		t.Fatalf("fresh world fails verification: %v", err)
	}
}

func TestBuildRejectsDenseEdgeList(t *testing.T) {
	path := filepath.Join(t.TempDir(), "k5.txt")
	edges := "0,1\n0,2\n0,3\n0,4\n1,2\n1,3\n1,4\n2,3\n2,4\n3,4\n"
	if err := os.WriteFile(path, []byte(edges), 0o644); err != nil {
		t.Fatalf("write edges: %v", err)
	}
	o := parseOptions(t, "-graph", path, "-set", "agents=1")
	if _, err := Build(o); !errors.Is(err, topology.ErrNotPlanar) {
		t.Fatalf("expected ErrNotPlanar, got %v", err)
	}
}

func TestBuildGenerated(t *testing.T) {
	o := parseOptions(t, "-nodes", "30", "-seed", "3")
	s, err := Build(o)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if s.World.Graph().Len() < 30 {
		t.Fatalf("expected at least 30 nodes, got %d", s.World.Graph().Len())
	}
	if want := max(1, s.World.Graph().Len()/10); s.World.Roster().Len() != want {
		t.Fatalf("expected %d auto agents, got %d", want, s.World.Roster().Len())
	}
	again, err := Build(o)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if again.World.Graph().Len() != s.World.Graph().Len() || len(again.World.Graph().Edges()) != len(s.World.Graph().Edges()) {
		t.Fatalf("expected identical graph for identical seed")
	}
}

func TestWriteReportsAndVerify(t *testing.T) {
	dir := t.TempDir()
	o := parseOptions(t,
		"-nodes", "20",
		"-ticks", "15",
		"-csv", filepath.Join(dir, "h.csv"),
		"-db", filepath.Join(dir, "runs.db"),
	)
	s, err := Build(o)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	var verr error
	VerifyEachTick(s.World, cancel, &verr)
	if _, err := s.World.Run(ctx, s.World.Config().Ticks); err != nil {
		t.Fatalf("run: %v", err)
	}
	if verr != nil {
		t.Fatalf("invariant failure: %v", verr)
	}
	if s.World.Tick() != 15 {
		t.Fatalf("expected 15 ticks, got %d", s.World.Tick())
	}
	if err := WriteReports(context.Background(), o, s.World); err != nil {
		t.Fatalf("reports: %v", err)
	}

	data, err := os.ReadFile(o.CSVPath)
	if err != nil {
		t.Fatalf("read csv: %v", err)
	}
	if lines := strings.Count(string(data), "\n"); lines != 16 {
		t.Fatalf("expected header plus 15 rows, got %d lines", lines)
	}

	a, err := report.OpenArchive(o.DBPath)
	if err != nil {
		t.Fatalf("open archive: %v", err)
	}
	defer a.Close()
	runs, err := a.Runs(context.Background())
	if err != nil || len(runs) != 1 {
		t.Fatalf("expected one archived run, got %d err=%v", len(runs), err)
	}
	last, _ := s.World.History().Last()
	if runs[0].Ticks != 15 || runs[0].FinalForest != last.Forest {
		t.Fatalf("archived summary mismatch: %+v vs %+v", runs[0], last)
	}
}

func TestNewLogger(t *testing.T) {
	if _, err := NewLogger("debug"); err != nil {
		t.Fatalf("debug: %v", err)
	}
	if _, err := NewLogger("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
