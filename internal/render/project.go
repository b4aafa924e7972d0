package render

import "graph-forest/internal/topology"

// Projection maps unit-square layout coordinates into a w*h pixel box with a
// uniform margin on every side.
type Projection struct {
	W, H   int
	Margin float64
}

// Apply converts a layout point to pixel coordinates.
func (p Projection) Apply(pt topology.Point) (float32, float32) {
	iw := float64(p.W) - 2*p.Margin
	ih := float64(p.H) - 2*p.Margin
	if iw < 0 {
		iw = 0
	}
	if ih < 0 {
		ih = 0
	}
	return float32(p.Margin + pt.X*iw), float32(p.Margin + pt.Y*ih)
}

// NodeRadius picks a disc radius that keeps n nodes readable in the box.
func (p Projection) NodeRadius(n int) float32 {
	if n <= 0 {
		return 0
	}
	side := min(p.W, p.H)
	r := float32(side) / float32(4*isqrt(n)+4)
	return min(max(r, 2), 12)
}

func isqrt(n int) int {
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}
