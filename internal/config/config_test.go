package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"mayday/internal/game/airspace"
	"mayday/internal/game/traffic"
	"mayday/internal/logging"

	"github.com/labstack/gommon/log"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mayday.json"), []byte(body), 0644))
	return dir
}

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	s, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, log.INFO, s.LogLevel)
	assert.Equal(t, traffic.HIGH, s.Density)
	assert.Equal(t, airspace.THREE_RANDOM, s.Layout)
	assert.Equal(t, 1500.0, s.Width)
	assert.Equal(t, 900.0, s.Height)
	assert.Equal(t, airspace.MIN_SEPARATION, s.MinSeparation)
	assert.Equal(t, airspace.DEFAULT_MAX_ATTEMPTS, s.MaxAttempts)
	assert.Equal(t, 0.5, s.SpawnRegion)
	assert.Equal(t, 1.0, s.UpdateInterval)
	assert.Equal(t, 60, s.TPS)
	assert.False(t, s.TelemetryEnabled)
	assert.Equal(t, ":8080", s.TelemetryAddress)
	assert.NotZero(t, s.Seed)
}

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := writeConfig(t, `{
		"logLevel": "debug",
		"simulation": { "density": "low", "layout": "random", "airports": 5, "seed": 99 },
		"plane": { "width": 3000, "height": 2000 },
		"telemetry": { "enabled": true, "address": "127.0.0.1:9000" }
	}`)

	s, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, log.DEBUG, s.LogLevel)
	assert.Equal(t, traffic.LOW, s.Density)
	assert.Equal(t, airspace.RANDOM, s.Layout)
	assert.Equal(t, 5, s.AirportCount)
	assert.Equal(t, int64(99), s.Seed)
	assert.Equal(t, 3000.0, s.Width)
	assert.Equal(t, 2000.0, s.Height)
	assert.True(t, s.TelemetryEnabled)
	assert.Equal(t, "127.0.0.1:9000", s.TelemetryAddress)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("MAYDAY_SIMULATION_DENSITY", "medium")

	s, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, traffic.MEDIUM, s.Density)
}

func TestLoad_InvalidSelections(t *testing.T) {
	for name, body := range map[string]string{
		"density":    `{"simulation": {"density": "extreme"}}`,
		"layout":     `{"simulation": {"layout": "layout9"}}`,
		"logLevel":   `{"logLevel": "chatty"}`,
		"width":      `{"plane": {"width": 0}}`,
		"separation": `{"placement": {"minSeparation": -1}}`,
		"region":     `{"spawn": {"region": 1.5}}`,
		"interval":   `{"kinematics": {"updateInterval": 0}}`,
		"airports":   `{"simulation": {"airports": -2}}`,
	} {
		t.Run(name, func(t *testing.T) {
			t.Cleanup(viper.Reset)
			_, err := Load(writeConfig(t, body))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfiguration), err.Error())
		})
	}
}

func TestLoad_InvalidSelectionKeepsCause(t *testing.T) {
	t.Cleanup(viper.Reset)
	_, err := Load(writeConfig(t, `{"simulation": {"density": "extreme"}}`))
	assert.True(t, errors.Is(err, traffic.ErrUnknownDensity))

	viper.Reset()
	_, err = Load(writeConfig(t, `{"logLevel": "chatty"}`))
	assert.True(t, errors.Is(err, logging.ErrUnknownLevel))
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)
	_, err := Load(writeConfig(t, `{not json`))
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInvalidConfiguration))
}

func TestSimulationConfig(t *testing.T) {
	t.Cleanup(viper.Reset)
	s, err := Load(writeConfig(t, `{"simulation": {"seed": 7, "layout": "single"}}`))
	require.NoError(t, err)

	lg := logging.Discard().Logger
	cfg := s.SimulationConfig(lg)
	assert.Equal(t, int64(7), cfg.Seed)
	assert.Equal(t, airspace.SINGLE, cfg.Layout)
	assert.Same(t, lg, cfg.Logger)
}

func TestLoad_SeedZeroIsDeterministic(t *testing.T) {
	t.Cleanup(viper.Reset)
	s, err := Load(writeConfig(t, `{"simulation": {"seed": 0}}`))
	require.NoError(t, err)
	assert.Equal(t, int64(0), s.Seed)
}

func TestLoad_DefaultSeedFromWallClock(t *testing.T) {
	t.Cleanup(viper.Reset)
	s, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.NotEqual(t, int64(WALL_CLOCK_SEED), s.Seed)
}
