package app

import (
	"context"
	"log/slog"

	"graph-forest/internal/report"
	"graph-forest/internal/sims/wildfire"
)

// WriteReports saves the finished run wherever the options ask for it.
func WriteReports(ctx context.Context, o *Options, w *wildfire.World) error {
	h := w.History()
	if o.CSVPath != "" {
		if err := report.SaveCSV(o.CSVPath, h); err != nil {
			return err
		}
		slog.Info("history written", "path", o.CSVPath, "ticks", h.Len())
	}
	if o.DBPath != "" {
		a, err := report.OpenArchive(o.DBPath)
		if err != nil {
			return err
		}
		defer a.Close()
		id, err := a.Save(ctx, report.NewRun(w), h)
		if err != nil {
			return err
		}
		slog.Info("run archived", "path", o.DBPath, "run", id)
	}
	return nil
}

// VerifyEachTick registers an observer that checks engine invariants after
// every tick. The first failure is stored in *errp and cancel is called.
func VerifyEachTick(w *wildfire.World, cancel context.CancelFunc, errp *error) {
	w.AddObserver(wildfire.ObserverFunc(func(fr wildfire.Frame) {
		if *errp != nil {
			return
		}
		if err := w.Verify(); err != nil {
			slog.Error("invariant check failed", "tick", fr.Tick, "err", err)
			*errp = err
			cancel()
		}
	}))
}
