package render

import (
	"image/color"
	"testing"

	"graph-forest/internal/sims/wildfire"
	"graph-forest/internal/topology"
)

func TestIntensityColorEndpoints(t *testing.T) {
	cases := []struct {
		v    int
		want color.RGBA
	}{
		{0, greenLow},
		{wildfire.FullHealth, greenHigh},
		{wildfire.FullHealth + 400, greenHigh},
		{-1, lerp(redLow, redHigh, 1.0/256)},
		{wildfire.BurnoutHealth, redHigh},
	}
	for _, c := range cases {
		if got := IntensityColor(c.v); got != c.want {
			t.Fatalf("IntensityColor(%d) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestIntensityColorDarkensWithHealth(t *testing.T) {
	lo := IntensityColor(32)
	hi := IntensityColor(224)
	if hi.G >= lo.G {
		t.Fatalf("expected healthier forest to be darker: %v vs %v", lo, hi)
	}
	weak := IntensityColor(-32)
	strong := IntensityColor(-224)
	if strong.G >= weak.G {
		t.Fatalf("expected fiercer fire to be darker red: %v vs %v", weak, strong)
	}
}

func TestNodeColors(t *testing.T) {
	ids := []topology.NodeID{0, 1, 2}
	intensity := wildfire.IntensityMap{0: 100, 2: -50}
	got := NodeColors(nil, ids, intensity)
	if len(got) != 3 {
		t.Fatalf("expected 3 colours, got %d", len(got))
	}
	if got[1] != RockColor {
		t.Fatalf("expected rock colour for node 1, got %v", got[1])
	}
	if got[0] != IntensityColor(100) || got[2] != IntensityColor(-50) {
		t.Fatalf("unexpected forest colours %v", got)
	}

	reused := NodeColors(got, ids[:1], intensity)
	if len(reused) != 1 || &reused[0] != &got[0] {
		t.Fatalf("expected buffer reuse")
	}
}

func TestProjection(t *testing.T) {
	p := Projection{W: 200, H: 100, Margin: 10}
	x, y := p.Apply(topology.Point{X: 0, Y: 0})
	if x != 10 || y != 10 {
		t.Fatalf("origin projected to (%v,%v)", x, y)
	}
	x, y = p.Apply(topology.Point{X: 1, Y: 1})
	if x != 190 || y != 90 {
		t.Fatalf("far corner projected to (%v,%v)", x, y)
	}
}

func TestNodeRadiusBounds(t *testing.T) {
	p := Projection{W: 800, H: 800}
	if r := p.NodeRadius(0); r != 0 {
		t.Fatalf("expected zero radius for empty graph, got %v", r)
	}
	if r := p.NodeRadius(4); r != 12 {
		t.Fatalf("expected radius capped at 12, got %v", r)
	}
	if r := p.NodeRadius(1_000_000); r != 2 {
		t.Fatalf("expected radius floored at 2, got %v", r)
	}
}
