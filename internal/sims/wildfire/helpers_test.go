package wildfire

import (
	"testing"

	"graph-forest/internal/topology"
)

// fixedRand returns the same draw every time.
type fixedRand struct {
	f float64
	i int
	n float64

	floats int
	lastN  int
}

func (r *fixedRand) Float64() float64 {
	r.floats++
	return r.f
}

func (r *fixedRand) IntN(n int) int {
	r.lastN = n
	if r.i >= n {
		return n - 1
	}
	return r.i
}

func (r *fixedRand) NormFloat64() float64 { return r.n }

// cycleRand replays fixed sequences of draws, wrapping around at the end.
type cycleRand struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (r *cycleRand) Float64() float64 {
	v := r.floats[r.fi%len(r.floats)]
	r.fi++
	return v
}

func (r *cycleRand) IntN(n int) int {
	v := r.ints[r.ii%len(r.ints)]
	r.ii++
	return v % n
}

func (r *cycleRand) NormFloat64() float64 { return 0 }

// newBareWorld builds an all-Rock world over the given topology and then
// empties the roster; tests plant the patches and agents they need.
func newBareWorld(t *testing.T, params Params, edges []topology.Edge, nodes ...topology.NodeID) (*World, *fixedRand) {
	t.Helper()
	g, err := topology.New(edges, nodes...)
	if err != nil {
		t.Fatalf("topology: %v", err)
	}
	cfg := DefaultConfig()
	cfg.ForestFraction = 0
	cfg.Agents = 1
	cfg.LogEvery = 0
	cfg.Params = params
	w := NewWithConfig(g, cfg)
	rng := &fixedRand{f: 0.5}
	if err := w.ResetWith(rng); err != nil {
		t.Fatalf("reset: %v", err)
	}
	w.placeAgents()
	return w, rng
}

func (w *World) plantForest(id topology.NodeID, health int, onFire bool) *Forest {
	f := NewForest(id, w.graph.Neighbors(id), health)
	f.OnFire = onFire
	w.reg.Set(f)
	w.intensity.refresh(w.reg)
	return f
}

func (w *World) placeAgents(agents ...Agent) {
	w.roster = newRoster(agents)
}
