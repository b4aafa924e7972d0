package topology

import (
	"errors"
	"fmt"
	"math"
)

// MinGeneratedNodes is the smallest graph Generate will build.
const MinGeneratedNodes = 4

// ErrTooFewNodes is returned when fewer than MinGeneratedNodes are requested.
var ErrTooFewNodes = errors.New("topology: too few nodes requested")

// Rand is the randomness Generate needs.
type Rand interface {
	Float64() float64
	IntN(n int) int
}

// Generate builds a random planar graph with at least minNodes nodes.
//
// Nodes sit on a jittered lattice; every lattice cell is split by one of its
// two diagonals, picked at random, so no two edges cross. The returned layout
// holds the jittered positions.
func Generate(minNodes int, rng Rand) (*Graph, Layout, error) {
	if minNodes < MinGeneratedNodes {
		return nil, nil, fmt.Errorf("%w: %d < %d", ErrTooFewNodes, minNodes, MinGeneratedNodes)
	}
	cols := int(math.Ceil(math.Sqrt(float64(minNodes))))
	rows := (minNodes + cols - 1) / cols
	if rows < 2 {
		rows = 2
	}

	id := func(r, c int) NodeID { return NodeID(r*cols + c) }

	edges := make([]Edge, 0, 3*rows*cols)
	layout := make(Layout, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			jx := (rng.Float64() - 0.5) * 0.5
			jy := (rng.Float64() - 0.5) * 0.5
			layout[id(r, c)] = Point{
				X: (float64(c) + 0.5 + jx) / float64(cols),
				Y: (float64(r) + 0.5 + jy) / float64(rows),
			}
			if c+1 < cols {
				edges = append(edges, Edge{A: id(r, c), B: id(r, c+1)})
			}
			if r+1 < rows {
				edges = append(edges, Edge{A: id(r, c), B: id(r+1, c)})
			}
			if c+1 < cols && r+1 < rows {
				if rng.IntN(2) == 0 {
					edges = append(edges, Edge{A: id(r, c), B: id(r+1, c+1)})
				} else {
					edges = append(edges, Edge{A: id(r, c+1), B: id(r+1, c)})
				}
			}
		}
	}

	g, err := New(edges)
	if err != nil {
		return nil, nil, err
	}
	return g, layout, nil
}
