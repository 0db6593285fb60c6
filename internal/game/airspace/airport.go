package airspace

import "mayday/pkg/types"

// Airport is a fixed, named ground station. Airports are placed once at
// layout setup and never move.
type Airport struct {
	Name     string
	Position types.Vec2
}

func (ap *Airspace) AddAirport(name string, pos types.Vec2) {
	ap.Airports = append(ap.Airports, Airport{
		Name:     name,
		Position: pos,
	})
}

// AirportNames returns the names of all placed airports in placement order.
func (ap *Airspace) AirportNames() []string {
	names := make([]string, 0, len(ap.Airports))
	for _, a := range ap.Airports {
		names = append(names, a.Name)
	}
	return names
}

// Airport looks up a placed airport by name.
func (ap *Airspace) Airport(name string) (Airport, bool) {
	for _, a := range ap.Airports {
		if a.Name == name {
			return a, true
		}
	}
	return Airport{}, false
}
