package wildfire

import (
	"fmt"

	"graph-forest/internal/topology"
)

// SkillStdDev is the spread of firefighter skill around the configured mean.
const SkillStdDev = 2.0

// Agent is a firefighter. Skill is fixed for its lifetime; only Position moves.
type Agent struct {
	ID       int
	Skill    float64
	Position topology.NodeID
}

// Roster is the ordered, fixed-size set of agents. The slice is the source of
// truth; the position index is rebuilt from it after every movement phase.
type Roster struct {
	agents []Agent
	at     map[topology.NodeID]int
}

func newRoster(agents []Agent) *Roster {
	r := &Roster{agents: agents}
	r.reindex()
	return r
}

// Agents returns the roster in creation order. The slice must not be modified.
func (r *Roster) Agents() []Agent { return r.agents }

// Len reports the roster size.
func (r *Roster) Len() int { return len(r.agents) }

// Positions returns the current agent positions in roster order.
func (r *Roster) Positions() []topology.NodeID {
	out := make([]topology.NodeID, len(r.agents))
	for i, a := range r.agents {
		out[i] = a.Position
	}
	return out
}

// occupant returns the first agent in roster order standing on id. Only that
// agent's skill counts when several share a node.
func (r *Roster) occupant(id topology.NodeID) (Agent, bool) {
	i, ok := r.at[id]
	if !ok {
		return Agent{}, false
	}
	return r.agents[i], true
}

func (r *Roster) reindex() {
	if r.at == nil {
		r.at = make(map[topology.NodeID]int, len(r.agents))
	} else {
		clear(r.at)
	}
	for i, a := range r.agents {
		if _, taken := r.at[a.Position]; !taken {
			r.at[a.Position] = i
		}
	}
}

// move advances every agent one step using the fire state as it stands before
// any patch is updated this tick.
func (r *Roster) move(reg *Registry, rng Rand) error {
	var burning []topology.NodeID
	for i := range r.agents {
		a := &r.agents[i]
		here, err := reg.mustGet(a.Position)
		if err != nil {
			return fmt.Errorf("agent %d: %w", a.ID, err)
		}
		if here.Burning() {
			continue
		}
		nbrs := here.Neighbors()
		if len(nbrs) == 0 {
			continue
		}

		burning = burning[:0]
		for _, n := range nbrs {
			p, err := reg.mustGet(n)
			if err != nil {
				return fmt.Errorf("agent %d: %w", a.ID, err)
			}
			if p.Burning() {
				burning = append(burning, n)
			}
		}
		if len(burning) > 0 {
			a.Position = burning[rng.IntN(len(burning))]
			continue
		}
		a.Position = nbrs[rng.IntN(len(nbrs))]
	}
	r.reindex()
	return nil
}
