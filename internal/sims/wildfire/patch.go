package wildfire

import "graph-forest/internal/topology"

// Health bounds and rates for Forest patches.
const (
	FullHealth      = 256
	BurnoutHealth   = -256
	MaxRegrowHealth = 256
	FireDamage      = 20
	FirefighterHeal = 25
	PassiveRegrowth = 10
)

// Patch is one node of the landscape. It is either a *Forest or a *Rock.
type Patch interface {
	ID() topology.NodeID
	Neighbors() []topology.NodeID
	// Burning reports whether the patch is on fire. Rock never burns.
	Burning() bool

	patch()
}

// Forest is a flammable patch with a signed health value.
type Forest struct {
	id        topology.NodeID
	neighbors []topology.NodeID

	Health int
	OnFire bool
}

// Rock is an inert patch. It may regrow into Forest.
type Rock struct {
	id        topology.NodeID
	neighbors []topology.NodeID
}

// NewForest returns a healthy, non-burning Forest patch.
func NewForest(id topology.NodeID, neighbors []topology.NodeID, health int) *Forest {
	return &Forest{id: id, neighbors: neighbors, Health: health}
}

// NewRock returns a Rock patch.
func NewRock(id topology.NodeID, neighbors []topology.NodeID) *Rock {
	return &Rock{id: id, neighbors: neighbors}
}

func (f *Forest) ID() topology.NodeID { return f.id }
func (f *Forest) Neighbors() []topology.NodeID { return f.neighbors }
func (f *Forest) Burning() bool { return f.OnFire }
func (*Forest) patch() {}

func (r *Rock) ID() topology.NodeID { return r.id }
func (r *Rock) Neighbors() []topology.NodeID { return r.neighbors }
func (*Rock) Burning() bool { return false }
func (*Rock) patch() {}

// ignite sets the patch on fire and restarts damage accounting at zero, even
// when it was already burning or at full health.
func (f *Forest) ignite() {
	f.OnFire = true
	f.Health = 0
}

// extinguish puts the fire out and restores full health.
func (f *Forest) extinguish() {
	f.OnFire = false
	f.Health = FullHealth
}
