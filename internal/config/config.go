package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"mayday/internal/game/airspace"
	"mayday/internal/game/simulation"
	"mayday/internal/game/traffic"
	"mayday/internal/logging"

	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"
)

var ErrInvalidConfiguration = errors.New("invalid configuration")

// WALL_CLOCK_SEED asks for a seed taken from the current time.
const WALL_CLOCK_SEED = -1

type Settings struct {
	LogLevel log.Lvl
	LogsDir  string

	Density      traffic.Density
	Layout       airspace.Layout
	AirportCount int
	Seed         int64

	Width, Height  float64
	MinSeparation  float64
	MaxAttempts    int
	SpawnRegion    float64
	UpdateInterval float64

	TelemetryEnabled bool
	TelemetryAddress string
	TPS              int
}

// Load reads mayday.json from configDir if it exists, applies MAYDAY_*
// environment overrides and validates the result.
func Load(configDir string) (Settings, error) {
	viper.SetDefault("logLevel", "info")
	viper.SetDefault("logsDir", "")

	viper.SetDefault("simulation.density", "high")
	viper.SetDefault("simulation.layout", "three-random")
	viper.SetDefault("simulation.airports", 3)
	// -1 seeds from the wall clock; any other value, 0 included, is used as is.
	viper.SetDefault("simulation.seed", WALL_CLOCK_SEED)

	viper.SetDefault("plane.width", 1500.0)
	viper.SetDefault("plane.height", 900.0)

	viper.SetDefault("placement.minSeparation", airspace.MIN_SEPARATION)
	viper.SetDefault("placement.maxAttempts", airspace.DEFAULT_MAX_ATTEMPTS)

	viper.SetDefault("spawn.region", traffic.DEFAULT_SPAWN_REGION)
	viper.SetDefault("kinematics.updateInterval", 1.0)

	viper.SetDefault("telemetry.enabled", false)
	viper.SetDefault("telemetry.address", ":8080")
	viper.SetDefault("client.tps", 60)

	viper.SetConfigName("mayday")
	viper.SetConfigType("json")
	viper.AddConfigPath(configDir)

	viper.SetEnvPrefix("MAYDAY")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return parse()
}

func parse() (Settings, error) {
	var s Settings
	var err error

	if s.LogLevel, err = logging.ParseLevel(viper.GetString("logLevel")); err != nil {
		return Settings{}, invalid(err)
	}
	s.LogsDir = viper.GetString("logsDir")

	if s.Density, err = traffic.ParseDensity(viper.GetString("simulation.density")); err != nil {
		return Settings{}, invalid(err)
	}
	if s.Layout, err = airspace.ParseLayout(viper.GetString("simulation.layout")); err != nil {
		return Settings{}, invalid(err)
	}
	s.AirportCount = viper.GetInt("simulation.airports")
	s.Seed = viper.GetInt64("simulation.seed")
	if s.Seed == WALL_CLOCK_SEED {
		s.Seed = time.Now().UnixNano()
	}

	s.Width = viper.GetFloat64("plane.width")
	s.Height = viper.GetFloat64("plane.height")
	s.MinSeparation = viper.GetFloat64("placement.minSeparation")
	s.MaxAttempts = viper.GetInt("placement.maxAttempts")
	s.SpawnRegion = viper.GetFloat64("spawn.region")
	s.UpdateInterval = viper.GetFloat64("kinematics.updateInterval")

	s.TelemetryEnabled = viper.GetBool("telemetry.enabled")
	s.TelemetryAddress = viper.GetString("telemetry.address")
	s.TPS = viper.GetInt("client.tps")

	switch {
	case s.AirportCount < 0:
		return Settings{}, invalid(fmt.Errorf("simulation.airports must not be negative, got %d", s.AirportCount))
	case s.Width <= 0 || s.Height <= 0:
		return Settings{}, invalid(fmt.Errorf("plane must have positive size, got %gx%g", s.Width, s.Height))
	case s.MinSeparation <= 0:
		return Settings{}, invalid(fmt.Errorf("placement.minSeparation must be positive, got %g", s.MinSeparation))
	case s.MaxAttempts <= 0:
		return Settings{}, invalid(fmt.Errorf("placement.maxAttempts must be positive, got %d", s.MaxAttempts))
	case s.SpawnRegion <= 0 || s.SpawnRegion > 1:
		return Settings{}, invalid(fmt.Errorf("spawn.region must be in (0, 1], got %g", s.SpawnRegion))
	case s.UpdateInterval <= 0:
		return Settings{}, invalid(fmt.Errorf("kinematics.updateInterval must be positive, got %g", s.UpdateInterval))
	case s.TPS <= 0:
		return Settings{}, invalid(fmt.Errorf("client.tps must be positive, got %d", s.TPS))
	}

	return s, nil
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidConfiguration, err)
}

// SimulationConfig converts the settings into a simulation.Config that logs
// through lg.
func (s Settings) SimulationConfig(lg *log.Logger) simulation.Config {
	return simulation.Config{
		Density:        s.Density,
		Layout:         s.Layout,
		AirportCount:   s.AirportCount,
		Width:          s.Width,
		Height:         s.Height,
		MinSeparation:  s.MinSeparation,
		MaxAttempts:    s.MaxAttempts,
		SpawnRegion:    s.SpawnRegion,
		UpdateInterval: s.UpdateInterval,
		Seed:           s.Seed,
		Logger:         lg,
	}
}
