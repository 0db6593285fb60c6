package main

import (
	"context"
	"time"
)

type stepper interface {
	Step(dt float64)
}

// run steps sim at tps ticks per second with the measured wall-clock delta
// until ctx is cancelled.
func run(ctx context.Context, sim stepper, tps int) {
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			sim.Step(now.Sub(last).Seconds())
			last = now
		}
	}
}
