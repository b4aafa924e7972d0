// Package wildfire runs fire spread and suppression over a landscape graph.
//
// Each tick moves the firefighters, applies the stochastic patch transitions
// in ascending node order, tallies the population and refreshes the intensity
// map handed to renderers.
package wildfire

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"graph-forest/internal/topology"
	"graph-forest/pkg/core"
)

// ErrCorruptState reports a broken internal invariant. It is never expected
// and callers should treat it as fatal.
var ErrCorruptState = errors.New("wildfire: corrupted simulation state")

// Rand is the source of every stochastic decision. *core.RNG and
// *rand.Rand from math/rand/v2 both satisfy it.
type Rand interface {
	Float64() float64
	IntN(n int) int
	NormFloat64() float64
}

// World stores the complete simulation state for one landscape.
type World struct {
	cfg   Config
	graph *topology.Graph

	reg       *Registry
	roster    *Roster
	intensity IntensityMap
	history   History
	tick      int
	seed      int64

	observers []Observer

	rng Rand
}

// NewWithConfig returns a World over g configured from cfg. Call Reset before
// stepping.
func NewWithConfig(g *topology.Graph, cfg Config) *World {
	return &World{
		cfg:       cfg,
		graph:     g,
		reg:       newRegistry(g.Nodes()),
		roster:    newRoster(nil),
		intensity: IntensityMap{},
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "wildfire" }

// Config returns the active configuration, including live parameter changes.
func (w *World) Config() Config { return w.cfg }

// Graph returns the landscape topology.
func (w *World) Graph() *topology.Graph { return w.graph }

// Registry exposes the patch registry.
func (w *World) Registry() *Registry { return w.reg }

// Roster exposes the firefighter roster.
func (w *World) Roster() *Roster { return w.roster }

// Intensity returns the live intensity map. Renderers must treat it as read only.
func (w *World) Intensity() IntensityMap { return w.intensity }

// Positions returns the agent positions in roster order.
func (w *World) Positions() []topology.NodeID { return w.roster.Positions() }

// History returns the population history recorded so far.
func (w *World) History() History { return w.history }

// Tick reports the number of ticks executed since Reset.
func (w *World) Tick() int { return w.tick }

// Reset seeds the landscape and the roster. A zero seed falls back to the
// configured seed.
func (w *World) Reset(seed int64) error {
	if seed == 0 {
		seed = w.cfg.Seed
	}
	if err := w.ResetWith(core.NewRNG(seed)); err != nil {
		return err
	}
	w.seed = seed
	return nil
}

// Seed returns the seed of the last Reset. It is zero after ResetWith, whose
// source cannot be replayed from a seed.
func (w *World) Seed() int64 { return w.seed }

// ResetWith seeds the landscape and roster from rng and keeps rng for the run.
func (w *World) ResetWith(rng Rand) error {
	if err := w.cfg.Validate(); err != nil {
		return err
	}
	ids := w.graph.Nodes()
	agents := w.cfg.agentCount(len(ids))
	if agents > len(ids) {
		return fmt.Errorf("%w: %d agents for %d nodes", ErrInvalidConfig, agents, len(ids))
	}

	w.rng = rng
	w.seed = 0
	w.tick = 0
	w.history = History{}
	w.reg = newRegistry(ids)

	forest := int(w.cfg.ForestFraction * float64(len(ids)))
	for _, id := range ids {
		w.reg.Set(NewRock(id, w.graph.Neighbors(id)))
	}
	for _, id := range sample(ids, forest, rng) {
		w.reg.Set(NewForest(id, w.graph.Neighbors(id), rng.IntN(MaxRegrowHealth+1)))
	}

	roster := make([]Agent, 0, agents)
	for i, pos := range sample(ids, agents, rng) {
		roster = append(roster, Agent{
			ID:       i + 1,
			Skill:    w.cfg.SkillMean + SkillStdDev*rng.NormFloat64(),
			Position: pos,
		})
	}
	w.roster = newRoster(roster)

	w.intensity = IntensityMap{}
	w.intensity.refresh(w.reg)
	return nil
}

// Step advances the simulation by one tick.
func (w *World) Step() error {
	if w.rng == nil {
		return fmt.Errorf("%w: step before reset", ErrCorruptState)
	}
	if err := w.roster.move(w.reg, w.rng); err != nil {
		return err
	}
	for _, id := range w.reg.IDs() {
		p, err := w.reg.mustGet(id)
		if err != nil {
			return err
		}
		switch p := p.(type) {
		case *Rock:
			w.respawn(p)
		case *Forest:
			w.combust(p)
			if w.updateLand(p) && p.OnFire {
				if err := w.transmit(p); err != nil {
					return err
				}
			}
		default:
			return fmt.Errorf("%w: unknown patch %T at node %d", ErrCorruptState, p, id)
		}
	}
	w.history.record(w.reg.Counts())
	w.intensity.refresh(w.reg)
	w.tick++
	w.notify()
	return nil
}

// respawn gives a Rock patch its chance to regrow into Forest.
func (w *World) respawn(r *Rock) {
	if w.rng.Float64() >= w.cfg.Params.Respawn {
		return
	}
	f := w.reg.regrow(r, w.rng.IntN(MaxRegrowHealth+1))
	w.intensity[f.id] = f.Health
}

// combust is the spontaneous ignition trial, drawn once per Forest per tick.
func (w *World) combust(f *Forest) {
	if w.rng.Float64() < w.cfg.Params.Combustion {
		f.ignite()
	}
}

// updateLand applies fire damage, firefighter healing or passive regrowth.
// It reports false when the patch burned out and is now Rock.
func (w *World) updateLand(f *Forest) bool {
	if !f.OnFire {
		f.Health += PassiveRegrowth
		return true
	}

	if a, ok := w.roster.occupant(f.id); ok {
		f.Health += FirefighterHeal + int(math.Floor(a.Skill))
		if f.Health >= 0 {
			f.extinguish()
		}
		return true
	}

	f.Health -= FireDamage
	if f.Health <= BurnoutHealth {
		f.OnFire = false
		w.reg.burnout(f)
		delete(w.intensity, f.id)
		return false
	}
	return true
}

// transmit tries once to ignite every Forest neighbour of a burning patch.
func (w *World) transmit(f *Forest) error {
	for _, n := range f.neighbors {
		p, err := w.reg.mustGet(n)
		if err != nil {
			return err
		}
		nf, ok := p.(*Forest)
		if !ok {
			continue
		}
		if w.rng.Float64() < w.cfg.Params.Transmission {
			nf.ignite()
		}
	}
	return nil
}

// Verify checks the registry, intensity map and roster against each other
// and against the topology.
func (w *World) Verify() error {
	ids := w.graph.Nodes()
	if w.reg.Len() != len(ids) {
		return fmt.Errorf("%w: %d patches for %d nodes", ErrCorruptState, w.reg.Len(), len(ids))
	}
	forests := 0
	for _, id := range ids {
		p, err := w.reg.mustGet(id)
		if err != nil {
			return err
		}
		if p.ID() != id {
			return fmt.Errorf("%w: patch %d stored at node %d", ErrCorruptState, p.ID(), id)
		}
		if !slices.Equal(p.Neighbors(), w.graph.Neighbors(id)) {
			return fmt.Errorf("%w: adjacency of node %d changed", ErrCorruptState, id)
		}
		v, mapped := w.intensity[id]
		if f, ok := p.(*Forest); ok {
			forests++
			if !mapped || v != f.Health {
				return fmt.Errorf("%w: intensity of node %d out of sync", ErrCorruptState, id)
			}
		} else if mapped {
			return fmt.Errorf("%w: rock node %d has an intensity entry", ErrCorruptState, id)
		}
	}
	if len(w.intensity) != forests {
		return fmt.Errorf("%w: intensity map has %d entries for %d forests", ErrCorruptState, len(w.intensity), forests)
	}
	for _, a := range w.roster.agents {
		if !w.graph.Has(a.Position) {
			return fmt.Errorf("%w: agent %d at unknown node %d", ErrCorruptState, a.ID, a.Position)
		}
	}
	return nil
}

// sample draws k distinct ids without replacement.
func sample(ids []topology.NodeID, k int, rng Rand) []topology.NodeID {
	if k <= 0 {
		return nil
	}
	pool := slices.Clone(ids)
	if k > len(pool) {
		k = len(pool)
	}
	for i := 0; i < k; i++ {
		j := i + rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k]
}
