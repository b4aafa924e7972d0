// Package topology holds the fixed landscape graph the fire spreads across.
// A Graph is built once and never mutated afterwards.
package topology

import (
	"errors"
	"fmt"
	"slices"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// NodeID identifies a node of the landscape graph.
type NodeID int

// Edge is an undirected connection between two nodes.
type Edge struct {
	A, B NodeID
}

var (
	// ErrEmpty is returned when a graph would contain no nodes.
	ErrEmpty = errors.New("topology: graph has no nodes")
	// ErrSelfLoop is returned for edges that connect a node to itself.
	ErrSelfLoop = errors.New("topology: self loop")
	// ErrNotPlanar is returned for graphs with too many edges to be planar.
	ErrNotPlanar = errors.New("topology: graph is not planar")
)

// Graph is an immutable simple undirected graph with sorted neighbour lists.
type Graph struct {
	ids   []NodeID
	adj   map[NodeID][]NodeID
	edges []Edge
	g     *simple.UndirectedGraph
}

// New builds a graph from an edge list. Extra nodes may be supplied to include
// vertices without any edges. Duplicate edges collapse into one.
func New(edges []Edge, nodes ...NodeID) (*Graph, error) {
	g := simple.NewUndirectedGraph()
	addNode := func(id NodeID) {
		if g.Node(int64(id)) == nil {
			g.AddNode(simple.Node(id))
		}
	}
	for _, id := range nodes {
		addNode(id)
	}

	seen := make(map[Edge]struct{}, len(edges))
	normalized := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e.A == e.B {
			return nil, fmt.Errorf("%w at node %d", ErrSelfLoop, e.A)
		}
		if e.B < e.A {
			e.A, e.B = e.B, e.A
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		normalized = append(normalized, e)
		addNode(e.A)
		addNode(e.B)
		g.SetEdge(g.NewEdge(simple.Node(e.A), simple.Node(e.B)))
	}

	if g.Nodes().Len() == 0 {
		return nil, ErrEmpty
	}

	out := &Graph{
		adj:   make(map[NodeID][]NodeID, g.Nodes().Len()),
		edges: normalized,
		g:     g,
	}
	for _, n := range graph.NodesOf(g.Nodes()) {
		id := NodeID(n.ID())
		out.ids = append(out.ids, id)

		var nbrs []NodeID
		for _, m := range graph.NodesOf(g.From(n.ID())) {
			nbrs = append(nbrs, NodeID(m.ID()))
		}
		slices.Sort(nbrs)
		out.adj[id] = nbrs
	}
	slices.Sort(out.ids)
	slices.SortFunc(out.edges, func(x, y Edge) int {
		if x.A != y.A {
			return int(x.A - y.A)
		}
		return int(x.B - y.B)
	})
	return out, nil
}

// Nodes returns all node ids in ascending order. The slice must not be modified.
func (g *Graph) Nodes() []NodeID { return g.ids }

// Len reports the number of nodes.
func (g *Graph) Len() int { return len(g.ids) }

// Has reports whether id is a node of the graph.
func (g *Graph) Has(id NodeID) bool {
	_, ok := g.adj[id]
	return ok
}

// Neighbors returns the sorted neighbour list of id. The slice is shared and
// must not be modified.
func (g *Graph) Neighbors(id NodeID) []NodeID { return g.adj[id] }

// Edges returns the normalized (A < B) edge list.
func (g *Graph) Edges() []Edge { return g.edges }

// Components returns the number of connected components.
func (g *Graph) Components() int {
	return len(topo.ConnectedComponents(g.g))
}

// CheckPlanarBound rejects graphs with more than 3n-6 edges, which no planar
// simple graph on n >= 3 nodes can have. Passing is necessary for planarity,
// not sufficient: K3,3 meets the bound.
func (g *Graph) CheckPlanarBound() error {
	n := len(g.ids)
	if n < 3 {
		return nil
	}
	if limit := 3*n - 6; len(g.edges) > limit {
		return fmt.Errorf("%w: %d edges exceed %d for %d nodes", ErrNotPlanar, len(g.edges), limit, n)
	}
	return nil
}
