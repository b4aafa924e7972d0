package wildfire

import (
	"context"
	"log/slog"

	"graph-forest/internal/topology"
)

// Frame is what a renderer receives after every tick.
type Frame struct {
	Tick      int
	Intensity IntensityMap
	Positions []topology.NodeID
}

// Observer receives a Frame once each tick has fully completed.
type Observer interface {
	Observe(Frame)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Frame)

// Observe calls f.
func (f ObserverFunc) Observe(fr Frame) { f(fr) }

// AddObserver registers o for every subsequent tick.
func (w *World) AddObserver(o Observer) {
	if o != nil {
		w.observers = append(w.observers, o)
	}
}

func (w *World) notify() {
	if len(w.observers) == 0 {
		return
	}
	fr := Frame{
		Tick:      w.tick,
		Intensity: w.intensity.Clone(),
		Positions: w.roster.Positions(),
	}
	for _, o := range w.observers {
		o.Observe(fr)
	}
}

// Run steps the world until ticks have executed or ctx is done. Cancellation
// is the normal way for a driver to end early and is not reported as an error.
func (w *World) Run(ctx context.Context, ticks int) (History, error) {
	slog.Info("run started",
		"nodes", w.graph.Len(),
		"agents", w.roster.Len(),
		"ticks", ticks,
		"combustion", w.cfg.Params.Combustion,
		"transmission", w.cfg.Params.Transmission,
		"respawn", w.cfg.Params.Respawn,
	)
	for i := 0; i < ticks; i++ {
		if ctx.Err() != nil {
			slog.Info("run interrupted", "tick", w.tick)
			break
		}
		if err := w.Step(); err != nil {
			return w.history, err
		}
		if every := w.cfg.LogEvery; every > 0 && w.tick%every == 0 {
			last, _ := w.history.Last()
			slog.Info("tick report",
				"tick", w.tick,
				"burning", last.Burning,
				"forest", last.Forest,
				"rock", last.Rock,
			)
		}
	}
	last, _ := w.history.Last()
	slog.Info("run finished",
		"ticks", w.tick,
		"burning", last.Burning,
		"forest", last.Forest,
		"rock", last.Rock,
	)
	return w.history, nil
}
