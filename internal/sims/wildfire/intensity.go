package wildfire

import (
	"maps"

	"graph-forest/internal/topology"
)

// IntensityMap holds the health of every Forest patch, keyed by node id.
// Rock patches have no entry.
type IntensityMap map[topology.NodeID]int

// Clone returns an independent copy.
func (m IntensityMap) Clone() IntensityMap { return maps.Clone(m) }

// refresh rebuilds m from the registry so it holds exactly the Forest patches.
func (m IntensityMap) refresh(reg *Registry) {
	clear(m)
	for _, id := range reg.IDs() {
		if f, ok := reg.Forest(id); ok {
			m[id] = f.Health
		}
	}
}
