package timer

type Mode int

const (
	// Once stays finished after expiring until Reset is called.
	Once Mode = iota
	// Repeating wraps elapsed time by the duration and reports Finished
	// only on the tick where it wrapped.
	Repeating
)

// Timer tracks elapsed simulation seconds against a duration.
type Timer struct {
	duration float64
	elapsed  float64
	mode     Mode
	finished bool
}

func New(durationSeconds float64, mode Mode) *Timer {
	return &Timer{
		duration: durationSeconds,
		mode:     mode,
	}
}

// Tick advances the timer by dt seconds.
func (t *Timer) Tick(dt float64) {
	if t.mode == Once && t.finished {
		return
	}
	if dt < 0 {
		dt = 0
	}

	t.elapsed += dt
	switch t.mode {
	case Once:
		t.finished = t.elapsed >= t.duration
	case Repeating:
		t.finished = false
		if t.duration <= 0 {
			t.finished = true
			t.elapsed = 0
			return
		}
		for t.elapsed >= t.duration {
			t.elapsed -= t.duration
			t.finished = true
		}
	}
}

func (t *Timer) Finished() bool {
	return t.finished
}

// Reset zeroes elapsed time and clears the finished flag.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
}

func (t *Timer) Elapsed() float64  { return t.elapsed }
func (t *Timer) Duration() float64 { return t.duration }
func (t *Timer) Mode() Mode        { return t.mode }

func (t *Timer) Remaining() float64 {
	if r := t.duration - t.elapsed; r > 0 {
		return r
	}
	return 0
}

// Fraction reports progress towards the duration, clamped to [0, 1].
func (t *Timer) Fraction() float64 {
	if t.duration <= 0 {
		return 1
	}
	return min(t.elapsed/t.duration, 1)
}
