// Package render maps engine state onto colours and screen coordinates. The
// ebiten painter lives behind the ebiten build tag; everything here is pure
// so it can be tested headless.
package render

import (
	"image/color"

	"graph-forest/internal/sims/wildfire"
	"graph-forest/internal/topology"
)

var (
	greenLow  = color.RGBA{R: 229, G: 245, B: 224, A: 255}
	greenHigh = color.RGBA{R: 0, G: 68, B: 27, A: 255}
	redLow    = color.RGBA{R: 255, G: 245, B: 240, A: 255}
	redHigh   = color.RGBA{R: 103, G: 0, B: 13, A: 255}

	// RockColor fills nodes without an intensity entry.
	RockColor = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	// AgentColor outlines nodes occupied by a firefighter.
	AgentColor = color.RGBA{R: 30, G: 90, B: 220, A: 255}
	// EdgeColor strokes the graph edges.
	EdgeColor = color.RGBA{R: 70, G: 70, B: 78, A: 255}
)

// IntensityColor maps an intensity value onto the green scale when it is
// non-negative (healthy forest) and onto the red scale otherwise (burning).
// Magnitudes beyond FullHealth saturate.
func IntensityColor(v int) color.RGBA {
	if v >= 0 {
		return lerp(greenLow, greenHigh, float64(v)/wildfire.FullHealth)
	}
	return lerp(redLow, redHigh, float64(-v)/-wildfire.BurnoutHealth)
}

// NodeColors fills dst with one colour per id: the intensity colour for
// forest nodes and RockColor for everything else. dst is grown as needed
// and returned.
func NodeColors(dst []color.RGBA, ids []topology.NodeID, intensity wildfire.IntensityMap) []color.RGBA {
	dst = dst[:0]
	for _, id := range ids {
		v, ok := intensity[id]
		if !ok {
			dst = append(dst, RockColor)
			continue
		}
		dst = append(dst, IntensityColor(v))
	}
	return dst
}

func lerp(a, b color.RGBA, t float64) color.RGBA {
	t = min(max(t, 0), 1)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: 255}
}
