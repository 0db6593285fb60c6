package aircraft

import "mayday/internal/game/timer"

const DEFAULT_UPDATE_INTERVAL = 1.0

// Updater repositions every aircraft each time its own timer expires, which
// decouples the kinematic cadence from the frame rate.
type Updater struct {
	timer *timer.Timer
}

func NewUpdater(intervalSeconds float64) *Updater {
	if intervalSeconds <= 0 {
		intervalSeconds = DEFAULT_UPDATE_INTERVAL
	}
	return &Updater{timer: timer.New(intervalSeconds, timer.Once)}
}

// Tick advances the update timer by dt. When it expires, every aircraft is
// advanced by the timer's elapsed time and the timer is reset. It returns
// the elapsed seconds applied, or 0 if the timer did not fire.
func (u *Updater) Tick(dt float64, fleet []*Aircraft) float64 {
	u.timer.Tick(dt)
	if !u.timer.Finished() {
		return 0
	}

	elapsed := u.timer.Elapsed()
	Apply(fleet, elapsed)
	u.timer.Reset()
	return elapsed
}

func (u *Updater) Interval() float64 {
	return u.timer.Duration()
}

// Apply advances every aircraft in fleet by elapsed seconds.
func Apply(fleet []*Aircraft, elapsed float64) {
	for _, ac := range fleet {
		ac.Advance(elapsed)
	}
}
