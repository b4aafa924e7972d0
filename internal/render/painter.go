//go:build ebiten

package render

import (
	"image/color"

	"graph-forest/internal/sims/wildfire"
	"graph-forest/internal/topology"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// GraphPainter draws the landscape graph: edges, one disc per node coloured
// by intensity, and a ring around every node holding a firefighter.
type GraphPainter struct {
	graph  *topology.Graph
	layout topology.Layout
	proj   Projection
	radius float32

	colors []color.RGBA
}

// NewGraphPainter prepares a painter for a w*h pixel area.
func NewGraphPainter(g *topology.Graph, layout topology.Layout, w, h int) *GraphPainter {
	proj := Projection{W: w, H: h, Margin: 16}
	return &GraphPainter{
		graph:  g,
		layout: layout,
		proj:   proj,
		radius: proj.NodeRadius(g.Len()),
	}
}

// Draw paints the current frame onto dst.
func (gp *GraphPainter) Draw(dst *ebiten.Image, intensity wildfire.IntensityMap, positions []topology.NodeID) {
	for _, e := range gp.graph.Edges() {
		x0, y0 := gp.proj.Apply(gp.layout[e.A])
		x1, y1 := gp.proj.Apply(gp.layout[e.B])
		vector.StrokeLine(dst, x0, y0, x1, y1, 1, EdgeColor, true)
	}

	ids := gp.graph.Nodes()
	gp.colors = NodeColors(gp.colors, ids, intensity)
	for i, id := range ids {
		x, y := gp.proj.Apply(gp.layout[id])
		vector.DrawFilledCircle(dst, x, y, gp.radius, gp.colors[i], true)
	}

	for _, id := range positions {
		x, y := gp.proj.Apply(gp.layout[id])
		vector.StrokeCircle(dst, x, y, gp.radius+2, 2, AgentColor, true)
	}
}

// Size returns the pixel area the painter targets.
func (gp *GraphPainter) Size() (int, int) { return gp.proj.W, gp.proj.H }
