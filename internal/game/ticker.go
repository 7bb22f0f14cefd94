package game

import (
	"context"
	"time"
)

// Ticker drives a Simulation at a fixed interval. Ticks run one at a time on
// the goroutine that called Run.
type Ticker struct {
	Interval time.Duration
	Clock    Clock
}

// NewTicker creates a ticker reading time from the system clock.
func NewTicker(interval time.Duration) *Ticker {
	return &Ticker{Interval: interval, Clock: SystemClock{}}
}

// Run ticks sim until ctx is cancelled. field is called before every tick to
// pick up surface resizes; onTick, if non-nil, receives each post-tick
// snapshot. Returns ctx.Err().
func (t *Ticker) Run(ctx context.Context, sim *Simulation, field func() Field, onTick func(Snapshot)) error {
	ticker := time.NewTicker(t.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			snap := sim.Tick(t.Clock.Now(), field())
			if onTick != nil {
				onTick(snap)
			}
		}
	}
}
