//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"graph-forest/internal/sims/wildfire"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

var (
	burningLine = color.RGBA{R: 220, G: 40, B: 30, A: 255}
	forestLine  = color.RGBA{R: 30, G: 150, B: 60, A: 255}
	rockLine    = color.RGBA{R: 150, G: 150, B: 150, A: 255}
	axisLine    = color.RGBA{R: 110, G: 110, B: 120, A: 255}
)

// Chart draws the population history once a run has finished.
type Chart struct {
	history wildfire.History
}

// NewChart wraps a finished history.
func NewChart(h wildfire.History) *Chart {
	return &Chart{history: h}
}

// Draw paints the chart over a darkened w*h area of screen.
func (c *Chart) Draw(screen *ebiten.Image, w, h int) {
	if c == nil {
		return
	}
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.RGBA{R: 12, G: 12, B: 16, A: 235}, false)

	const margin = 40
	boxW := float32(w - 2*margin)
	boxH := float32(h - 2*margin)
	if boxW <= 0 || boxH <= 0 {
		return
	}
	ox, oy := float32(margin), float32(margin)
	vector.StrokeLine(screen, ox, oy+boxH, ox+boxW, oy+boxH, 1, axisLine, false)
	vector.StrokeLine(screen, ox, oy, ox, oy+boxH, 1, axisLine, false)

	s := plotSeries(c.history, boxW, boxH)
	strokeSeries(screen, s.Rock, ox, oy, rockLine)
	strokeSeries(screen, s.Forest, ox, oy, forestLine)
	strokeSeries(screen, s.Burning, ox, oy, burningLine)

	face := basicfont.Face7x13
	text.Draw(screen, fmt.Sprintf("Population over %d ticks (peak %d)", c.history.Len(), s.Peak), face, margin, margin-12, brightText)
	legend := []struct {
		label string
		clr   color.RGBA
	}{
		{"burning", burningLine},
		{"forest", forestLine},
		{"rock", rockLine},
	}
	x := margin
	for _, l := range legend {
		vector.DrawFilledRect(screen, float32(x), float32(h-margin+14), 10, 10, l.clr, false)
		text.Draw(screen, l.label, face, x+14, h-margin+24, brightText)
		x += 90
	}
	text.Draw(screen, "q/esc to close", face, w-margin-98, h-margin+24, dimText)
}

func strokeSeries(dst *ebiten.Image, pts []chartPoint, ox, oy float32, clr color.Color) {
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		vector.StrokeLine(dst, ox+a.X, oy+a.Y, ox+b.X, oy+b.Y, 2, clr, true)
	}
}
