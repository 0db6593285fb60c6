package aircraft

import (
	"math"

	"mayday/pkg/types"
)

// KNOTS_PER_UNIT converts knots into plane units per second: a vehicle
// flying at s knots covers s/KNOTS_PER_UNIT units each second.
const KNOTS_PER_UNIT = 30.0

// Aircraft is an aerial vehicle. Altitude, speed, heading and target are
// fixed at spawn; only Position changes afterwards.
type Aircraft struct {
	ID       types.AircraftID
	Position types.Vec2
	Altitude float64
	Speed    float64
	// Heading is in degrees. 0 points along +X and angles increase
	// counter-clockwise towards +Y.
	Heading float64
	// Target names the airport the aircraft is nominally bound for. It does
	// not steer the aircraft.
	Target string
}

func NewAircraft(id types.AircraftID, pos types.Vec2, heading, speed, altitude float64, target string) *Aircraft {
	return &Aircraft{
		ID:       id,
		Position: pos,
		Altitude: altitude,
		Speed:    speed,
		Heading:  heading,
		Target:   target,
	}
}

// Velocity returns the displacement per second in plane units.
func (ac *Aircraft) Velocity() types.Vec2 {
	radians := ac.Heading * math.Pi / 180.0
	unitsPerSec := ac.Speed / KNOTS_PER_UNIT
	return types.NewVec2(unitsPerSec*math.Cos(radians), unitsPerSec*math.Sin(radians))
}

// Advance moves the aircraft along its heading for elapsed seconds.
func (ac *Aircraft) Advance(elapsed float64) {
	if elapsed <= 0 {
		return
	}
	ac.Position = ac.Position.Add(ac.Velocity().Scale(elapsed))
}
