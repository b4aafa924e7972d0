package ui

import (
	"testing"

	"graph-forest/internal/core"
	"graph-forest/internal/sims/wildfire"
)

func TestNudgeClampsToRange(t *testing.T) {
	ctrl := core.ParameterControl{Key: "respawn", Step: 0.05, Min: 0, Max: 1}
	got, ok := nudge(ctrl, 0.98, 1)
	if !ok || got != 1 {
		t.Fatalf("expected clamp to 1, got %v ok=%v", got, ok)
	}
	if _, ok := nudge(ctrl, 1, 1); ok {
		t.Fatalf("expected no change at the upper bound")
	}
	if _, ok := nudge(ctrl, 0, -1); ok {
		t.Fatalf("expected no change at the lower bound")
	}
	got, ok = nudge(ctrl, 0.5, -1)
	if !ok || got < 0.4499 || got > 0.4501 {
		t.Fatalf("expected 0.45, got %v", got)
	}
}

func TestNudgeDefaultStep(t *testing.T) {
	ctrl := core.ParameterControl{Min: 0, Max: 1}
	got, ok := nudge(ctrl, 0.5, 1)
	if !ok || got < 0.5499 || got > 0.5501 {
		t.Fatalf("expected default step 0.05, got %v", got)
	}
}

func TestFormatFloatPrecision(t *testing.T) {
	cases := []struct {
		step float64
		want string
	}{
		{0.0005, "0.1235"},
		{0.005, "0.123"},
		{0.01, "0.12"},
		{0.5, "0.1"},
	}
	for _, c := range cases {
		if got := formatFloat(core.ParameterControl{Step: c.step}, 0.12345); got != c.want {
			t.Fatalf("step %v: got %q want %q", c.step, got, c.want)
		}
	}
}

func TestPlotSeriesSharesScale(t *testing.T) {
	h := wildfire.History{
		Burning: []int{0, 5, 10},
		Forest:  []int{20, 15, 10},
		Rock:    []int{0, 0, 0},
	}
	s := plotSeries(h, 100, 40)
	if s.Peak != 20 {
		t.Fatalf("expected peak 20, got %d", s.Peak)
	}
	if len(s.Burning) != 3 || len(s.Forest) != 3 || len(s.Rock) != 3 {
		t.Fatalf("expected three points per series")
	}
	if s.Forest[0] != (chartPoint{X: 0, Y: 0}) {
		t.Fatalf("peak should touch the top edge, got %+v", s.Forest[0])
	}
	if s.Rock[2] != (chartPoint{X: 100, Y: 40}) {
		t.Fatalf("zero should sit on the baseline, got %+v", s.Rock[2])
	}
	if s.Burning[2].Y != s.Forest[2].Y {
		t.Fatalf("equal counts should share a height: %v vs %v", s.Burning[2], s.Forest[2])
	}
}

func TestPlotSeriesDegenerate(t *testing.T) {
	if s := plotSeries(wildfire.History{}, 100, 40); s.Burning != nil || s.Peak != 0 {
		t.Fatalf("expected empty series, got %+v", s)
	}
	single := wildfire.History{Burning: []int{0}, Forest: []int{0}, Rock: []int{0}}
	s := plotSeries(single, 100, 40)
	if len(s.Rock) != 1 || s.Rock[0] != (chartPoint{X: 0, Y: 40}) {
		t.Fatalf("expected one baseline point, got %+v", s.Rock)
	}
}
