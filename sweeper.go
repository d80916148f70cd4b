package admins

import (
	"context"
	"time"

	yall "yall.in"
)

// Sweeper periodically removes expired admin entries from a Storer.
type Sweeper struct {
	Storer   Storer
	Interval time.Duration
	Log      *yall.Logger
}

// Run sweeps once, then once per interval, until the context is
// cancelled. The timer for the next run is only armed once the previous
// sweep has returned, rewrite included, so sweeps never overlap and a
// timer fire that would land mid-sweep is skipped rather than queued.
// A failed sweep is logged and the loop keeps going; the next interval
// gets another chance.
func (s Sweeper) Run(ctx context.Context) {
	s.sweep(ctx)

	for {
		timer := time.NewTimer(s.Interval)
		select {
		case <-timer.C:
			s.sweep(ctx)
		case <-ctx.Done():
			timer.Stop()
			return
		}
	}
}

func (s Sweeper) sweep(ctx context.Context) {
	removed, err := s.Storer.DeleteExpiredAdmins(ctx, time.Now())
	if err != nil {
		s.Log.WithError(err).Error("Error sweeping expired admins")
		return
	}
	if removed > 0 {
		s.Log.WithField("removed", removed).Info("Removed expired admins")
	}
}
