package simulation

import (
	"mayday/pkg/types"
)

type RadioMessage struct {
	GameTimeSeconds float64          `json:"time" msgpack:"time"`
	Callsign        types.AircraftID `json:"callsign" msgpack:"callsign"`
	Message         string           `json:"message" msgpack:"message"`
}

func (s *Simulation) AddRadioMessage(callsign types.AircraftID, message string) {
	msg := RadioMessage{
		GameTimeSeconds: s.GameTimeSeconds,
		Callsign:        callsign,
		Message:         message,
	}
	s.RadioLog = append(s.RadioLog, msg)

	if len(s.RadioLog) > s.maxRadioLogSize {
		s.RadioLog = s.RadioLog[len(s.RadioLog)-s.maxRadioLogSize:]
	}
}
