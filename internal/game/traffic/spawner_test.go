package traffic

import (
	"errors"
	"regexp"
	"testing"

	"mayday/internal/rand"
	"mayday/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var callsignRe = regexp.MustCompile(`^[A-Z]{2}[1-9][0-9]{0,2}$`)

func newTestSpawner(t *testing.T, d Density, seed int64) *Spawner {
	t.Helper()
	s, err := NewSpawner(d, rand.New(seed), types.CenteredRect(1500, 900).Shrink(DEFAULT_SPAWN_REGION))
	require.NoError(t, err)
	return s
}

func TestSpawnCadenceHigh(t *testing.T) {
	s := newTestSpawner(t, HIGH, 1)
	spawns := 0
	for range 10 {
		if _, ok := s.Tick(0.5, []string{"YYZ"}); ok {
			spawns++
		}
	}
	assert.Equal(t, 1, spawns)
}

func TestSpawnOncePerLongFrame(t *testing.T) {
	s := newTestSpawner(t, HIGH, 1)
	_, ok := s.Tick(12.0, []string{"YYZ"})
	assert.True(t, ok)

	// Reset to zero rather than to the 7s remainder.
	assert.Equal(t, 5.0, s.Remaining())
	_, ok = s.Tick(4.0, []string{"YYZ"})
	assert.False(t, ok)
	_, ok = s.Tick(1.0, []string{"YYZ"})
	assert.True(t, ok)
}

func TestSpawnCadenceLow(t *testing.T) {
	s := newTestSpawner(t, LOW, 2)
	spawns := 0
	for range 60 {
		if _, ok := s.Tick(1.0, nil); ok {
			spawns++
		}
	}
	assert.Equal(t, 4, spawns)
}

func TestSpawnAttributeRanges(t *testing.T) {
	region := types.CenteredRect(1500, 900).Shrink(DEFAULT_SPAWN_REGION)
	targets := []string{"YYZ", "YUL", "YVR"}
	s := newTestSpawner(t, MEDIUM, 3)

	for range 2000 {
		ac := s.Spawn(targets)
		assert.Regexp(t, callsignRe, string(ac.ID))
		assert.GreaterOrEqual(t, ac.Altitude, float64(MIN_ALTITUDE))
		assert.LessOrEqual(t, ac.Altitude, float64(MAX_ALTITUDE))
		assert.GreaterOrEqual(t, ac.Speed, float64(MIN_SPEED))
		assert.LessOrEqual(t, ac.Speed, float64(MAX_SPEED))
		assert.GreaterOrEqual(t, ac.Heading, float64(MIN_HEADING))
		assert.LessOrEqual(t, ac.Heading, float64(MAX_HEADING))
		assert.Contains(t, targets, ac.Target)
		assert.True(t, region.Contains(ac.Position), "%v outside spawn region", ac.Position)
	}
}

func TestSpawnWithoutAirports(t *testing.T) {
	ac := newTestSpawner(t, HIGH, 4).Spawn(nil)
	assert.Empty(t, ac.Target)
}

func TestSpawnDeterministic(t *testing.T) {
	a := newTestSpawner(t, HIGH, 11).Spawn([]string{"YYZ", "YUL"})
	b := newTestSpawner(t, HIGH, 11).Spawn([]string{"YYZ", "YUL"})
	assert.Equal(t, a, b)
}

func TestNewSpawnerUnknownDensity(t *testing.T) {
	_, err := NewSpawner(Density(7), rand.New(1), types.CenteredRect(10, 10))
	assert.True(t, errors.Is(err, ErrUnknownDensity))
}
