package wildfire

import (
	"fmt"

	"graph-forest/internal/topology"
)

// Counts is one tally of the patch population.
type Counts struct {
	Burning int
	Forest  int
	Rock    int
}

// Registry maps every node id to exactly one patch. Variant changes replace
// the whole value at the key; the neighbour slice is carried over untouched.
type Registry struct {
	ids     []topology.NodeID
	patches map[topology.NodeID]Patch
}

func newRegistry(ids []topology.NodeID) *Registry {
	return &Registry{ids: ids, patches: make(map[topology.NodeID]Patch, len(ids))}
}

// Get returns the patch at id.
func (r *Registry) Get(id topology.NodeID) (Patch, bool) {
	p, ok := r.patches[id]
	return p, ok
}

// Forest returns the patch at id when it is currently Forest.
func (r *Registry) Forest(id topology.NodeID) (*Forest, bool) {
	f, ok := r.patches[id].(*Forest)
	return f, ok
}

// IDs returns the node ids in iteration order.
func (r *Registry) IDs() []topology.NodeID { return r.ids }

// Len reports the number of patches.
func (r *Registry) Len() int { return len(r.patches) }

// Set places p at its id, replacing whatever was there.
func (r *Registry) Set(p Patch) { r.patches[p.ID()] = p }

// Counts scans the full registry.
func (r *Registry) Counts() Counts {
	var c Counts
	for _, id := range r.ids {
		switch p := r.patches[id].(type) {
		case *Forest:
			c.Forest++
			if p.OnFire {
				c.Burning++
			}
		case *Rock:
			c.Rock++
		}
	}
	return c
}

// burnout replaces a Forest with Rock at the same id.
func (r *Registry) burnout(f *Forest) *Rock {
	rock := NewRock(f.id, f.neighbors)
	r.patches[f.id] = rock
	return rock
}

// regrow replaces a Rock with a non-burning Forest at the same id.
func (r *Registry) regrow(rock *Rock, health int) *Forest {
	f := NewForest(rock.id, rock.neighbors, health)
	r.patches[rock.id] = f
	return f
}

func (r *Registry) mustGet(id topology.NodeID) (Patch, error) {
	p, ok := r.patches[id]
	if !ok {
		return nil, fmt.Errorf("%w: no patch at node %d", ErrCorruptState, id)
	}
	return p, nil
}
