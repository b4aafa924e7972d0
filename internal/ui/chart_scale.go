package ui

import "graph-forest/internal/sims/wildfire"

// chartPoint is one vertex of a plotted series in pixel space.
type chartPoint struct {
	X, Y float32
}

// chartSeries holds the three population curves scaled to one box.
type chartSeries struct {
	Burning, Forest, Rock []chartPoint
	Peak                  int
}

// plotSeries scales a history into a w*h box with the origin at the bottom
// left. All three curves share one vertical scale so they stay comparable.
func plotSeries(hist wildfire.History, w, height float32) chartSeries {
	n := hist.Len()
	out := chartSeries{}
	if n == 0 || w <= 0 || height <= 0 {
		return out
	}
	for i := 0; i < n; i++ {
		c := hist.At(i)
		out.Peak = max(out.Peak, c.Burning, c.Forest, c.Rock)
	}
	yScale := float32(0)
	if out.Peak > 0 {
		yScale = height / float32(out.Peak)
	}
	xAt := func(i int) float32 {
		if n == 1 {
			return 0
		}
		return w * float32(i) / float32(n-1)
	}
	scale := func(src []int) []chartPoint {
		pts := make([]chartPoint, len(src))
		for i, v := range src {
			pts[i] = chartPoint{X: xAt(i), Y: height - float32(v)*yScale}
		}
		return pts
	}
	out.Burning = scale(hist.Burning)
	out.Forest = scale(hist.Forest)
	out.Rock = scale(hist.Rock)
	return out
}
