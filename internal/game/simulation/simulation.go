package simulation

import (
	"fmt"

	"mayday/internal/game/aircraft"
	"mayday/internal/game/airspace"
	"mayday/internal/game/traffic"
	"mayday/internal/logging"
	"mayday/internal/rand"

	"github.com/labstack/gommon/log"
)

// Config is the startup configuration of a simulation run.
type Config struct {
	Density traffic.Density
	Layout  airspace.Layout
	// AirportCount is only used by airspace.RANDOM.
	AirportCount int

	Width, Height  float64
	MinSeparation  float64
	MaxAttempts    int
	SpawnRegion    float64
	UpdateInterval float64

	Seed   int64
	Logger *log.Logger
}

func DefaultConfig() Config {
	return Config{
		Density:        traffic.HIGH,
		Layout:         airspace.THREE_RANDOM,
		AirportCount:   3,
		Width:          1500,
		Height:         900,
		MinSeparation:  airspace.MIN_SEPARATION,
		MaxAttempts:    airspace.DEFAULT_MAX_ATTEMPTS,
		SpawnRegion:    traffic.DEFAULT_SPAWN_REGION,
		UpdateInterval: aircraft.DEFAULT_UPDATE_INTERVAL,
	}
}

// Simulation owns the entity store and the stateful components that mutate
// it. It is not safe for concurrent use.
type Simulation struct {
	Aircrafts []*aircraft.Aircraft
	Airspace  *airspace.Airspace

	GameTimeSeconds float64
	RadioLog        []RadioMessage
	maxRadioLogSize int

	config  Config
	spawner *traffic.Spawner
	updater *aircraft.Updater
	lg      *log.Logger
}

func NewSimulation(config Config) (*Simulation, error) {
	lg := config.Logger
	if lg == nil {
		lg = logging.Discard().Logger
	}

	r := rand.New(config.Seed)

	ap := airspace.NewAirspace(config.Width, config.Height)
	placer := airspace.NewPlacer(r, config.MinSeparation, config.MaxAttempts)
	if err := ap.SetupLayout(config.Layout, config.AirportCount, placer); err != nil {
		lg.Warnf("Airport placement failed: %v", err)
		return nil, fmt.Errorf("setting up %v layout: %w", config.Layout, err)
	}
	for _, a := range ap.Airports {
		lg.Infof("Placed airport %s at (%.1f, %.1f)", a.Name, a.Position.X, a.Position.Y)
	}

	spawner, err := traffic.NewSpawner(config.Density, r, ap.Bounds.Shrink(config.SpawnRegion))
	if err != nil {
		return nil, err
	}

	s := &Simulation{
		Airspace:        ap,
		maxRadioLogSize: 50,

		config:  config,
		spawner: spawner,
		updater: aircraft.NewUpdater(config.UpdateInterval),
		lg:      lg,
	}
	return s, nil
}

// Step advances the simulation by dt seconds of wall-clock time: the spawner
// runs first, then the kinematics updater.
func (s *Simulation) Step(dt float64) {
	if dt < 0 {
		dt = 0
	}
	s.GameTimeSeconds += dt

	if ac, ok := s.spawner.Tick(dt, s.Airspace.AirportNames()); ok {
		s.Aircrafts = append(s.Aircrafts, ac)
		s.AddRadioMessage(ac.ID, fmt.Sprintf("airborne, bound for %s", ac.Target))
		s.lg.Infof("Spawned aircraft %s (bound for %s) at (%.1f, %.1f), heading %.0f, speed %.0f, altitude %.0f",
			ac.ID, ac.Target, ac.Position.X, ac.Position.Y, ac.Heading, ac.Speed, ac.Altitude)
	}

	if elapsed := s.updater.Tick(dt, s.Aircrafts); elapsed > 0 {
		s.lg.Debugf("Advanced %d aircraft by %.3fs", len(s.Aircrafts), elapsed)
	}
}

func (s *Simulation) Density() traffic.Density {
	return s.config.Density
}

func (s *Simulation) Config() Config {
	return s.config
}
