package traffic

import (
	"fmt"

	"mayday/internal/game/aircraft"
	"mayday/internal/game/timer"
	"mayday/internal/rand"
	"mayday/pkg/types"
)

const (
	MIN_ALTITUDE = 40000
	MAX_ALTITUDE = 100000
	MIN_SPEED    = 200
	MAX_SPEED    = 500
	MIN_HEADING  = 0
	MAX_HEADING  = 360
	MIN_SUFFIX   = 1
	MAX_SUFFIX   = 999

	DEFAULT_SPAWN_REGION = 0.5
)

// Spawner creates at most one aircraft each time its timer expires.
type Spawner struct {
	density Density
	timer   *timer.Timer
	rand    *rand.Rand
	region  types.Rect
}

// NewSpawner returns a spawner whose aircraft appear uniformly inside region.
func NewSpawner(density Density, r *rand.Rand, region types.Rect) (*Spawner, error) {
	interval, err := density.SpawnInterval()
	if err != nil {
		return nil, err
	}
	return &Spawner{
		density: density,
		timer:   timer.New(interval, timer.Once),
		rand:    r,
		region:  region,
	}, nil
}

// Tick advances the spawn timer by dt. When the timer has expired it returns
// a new aircraft bound for one of targets and resets the timer to zero, so
// a single long frame still yields only one aircraft.
func (s *Spawner) Tick(dt float64, targets []string) (*aircraft.Aircraft, bool) {
	s.timer.Tick(dt)
	if !s.timer.Finished() {
		return nil, false
	}
	ac := s.Spawn(targets)
	s.timer.Reset()
	return ac, true
}

// Spawn synthesizes an aircraft with randomized identity and kinematics.
func (s *Spawner) Spawn(targets []string) *aircraft.Aircraft {
	id := s.callsign()
	altitude := float64(s.rand.IntRange(MIN_ALTITUDE, MAX_ALTITUDE))
	speed := float64(s.rand.IntRange(MIN_SPEED, MAX_SPEED))
	heading := float64(s.rand.IntRange(MIN_HEADING, MAX_HEADING))

	var target string
	if len(targets) > 0 {
		target = rand.SampleSlice(s.rand, targets)
	}

	pos := types.NewVec2(
		s.rand.Uniform(s.region.Min.X, s.region.Max.X),
		s.rand.Uniform(s.region.Min.Y, s.region.Max.Y),
	)
	return aircraft.NewAircraft(id, pos, heading, speed, altitude, target)
}

func (s *Spawner) callsign() types.AircraftID {
	prefix := []byte{
		byte('A' + s.rand.Intn(26)),
		byte('A' + s.rand.Intn(26)),
	}
	return types.AircraftID(fmt.Sprintf("%s%d", prefix, s.rand.IntRange(MIN_SUFFIX, MAX_SUFFIX)))
}

func (s *Spawner) Density() Density {
	return s.density
}

// Remaining returns the seconds left until the next spawn.
func (s *Spawner) Remaining() float64 {
	return s.timer.Remaining()
}
