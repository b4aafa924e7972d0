package topology

import "math"

// Point is a position in the unit square used only for drawing.
type Point struct {
	X, Y float64
}

// Layout assigns a drawing position to every node.
type Layout map[NodeID]Point

// CircleLayout spaces the nodes evenly on a circle inside the unit square.
// Graphs loaded from edge lists carry no coordinates, so they are drawn this way.
func CircleLayout(g *Graph) Layout {
	ids := g.Nodes()
	out := make(Layout, len(ids))
	if len(ids) == 1 {
		out[ids[0]] = Point{X: 0.5, Y: 0.5}
		return out
	}
	for i, id := range ids {
		theta := 2 * math.Pi * float64(i) / float64(len(ids))
		out[id] = Point{
			X: 0.5 + 0.45*math.Cos(theta),
			Y: 0.5 + 0.45*math.Sin(theta),
		}
	}
	return out
}
