package simulation

import (
	"slices"
	"strings"

	"mayday/pkg/types"
)

type AirportView struct {
	Name     string     `json:"name" msgpack:"name"`
	Position types.Vec2 `json:"position" msgpack:"position"`
}

type AircraftView struct {
	ID       types.AircraftID `json:"id" msgpack:"id"`
	Altitude float64          `json:"altitude" msgpack:"altitude"`
	Speed    float64          `json:"speed" msgpack:"speed"`
	Heading  float64          `json:"heading" msgpack:"heading"`
	Target   string           `json:"target" msgpack:"target"`
	Position types.Vec2       `json:"position" msgpack:"position"`
}

// Snapshot is a read-only copy of the entity store for presentation and
// telemetry. It shares no memory with the simulation.
type Snapshot struct {
	GameTimeSeconds float64        `json:"time" msgpack:"time"`
	Density         string         `json:"density" msgpack:"density"`
	Airports        []AirportView  `json:"airports" msgpack:"airports"`
	Aircraft        []AircraftView `json:"aircraft" msgpack:"aircraft"`
	Radio           []RadioMessage `json:"radio" msgpack:"radio"`
}

// Snapshot returns airports sorted by name and aircraft in spawn order.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		GameTimeSeconds: s.GameTimeSeconds,
		Density:         s.config.Density.String(),
		Airports:        make([]AirportView, 0, len(s.Airspace.Airports)),
		Aircraft:        make([]AircraftView, 0, len(s.Aircrafts)),
		Radio:           slices.Clone(s.RadioLog),
	}
	if snap.Radio == nil {
		snap.Radio = []RadioMessage{}
	}

	for _, a := range s.Airspace.Airports {
		snap.Airports = append(snap.Airports, AirportView{Name: a.Name, Position: a.Position})
	}
	slices.SortFunc(snap.Airports, func(a, b AirportView) int {
		return strings.Compare(a.Name, b.Name)
	})

	for _, ac := range s.Aircrafts {
		snap.Aircraft = append(snap.Aircraft, AircraftView{
			ID:       ac.ID,
			Altitude: ac.Altitude,
			Speed:    ac.Speed,
			Heading:  ac.Heading,
			Target:   ac.Target,
			Position: ac.Position,
		})
	}
	return snap
}
