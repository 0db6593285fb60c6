package aircraft

import (
	"testing"

	"mayday/pkg/types"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceAlongReferenceAxis(t *testing.T) {
	ac := NewAircraft("AB123", types.NewVec2(0, 0), 0, 300, 40000, "YYZ")
	ac.Advance(1.0)
	assert.Equal(t, 10.0, ac.Position.X)
	assert.Equal(t, 0.0, ac.Position.Y)
}

func TestAdvanceHeadingInDegrees(t *testing.T) {
	ac := NewAircraft("CD1", types.NewVec2(5, 5), 90, 300, 40000, "YYZ")
	ac.Advance(2.0)
	assert.InDelta(t, 5.0, ac.Position.X, 1e-9)
	assert.InDelta(t, 25.0, ac.Position.Y, 1e-9)

	ac = NewAircraft("EF2", types.NewVec2(0, 0), 180, 450, 40000, "YYZ")
	ac.Advance(1.0)
	assert.InDelta(t, -15.0, ac.Position.X, 1e-9)
	assert.InDelta(t, 0.0, ac.Position.Y, 1e-9)
}

func TestAdvanceZeroIsNoop(t *testing.T) {
	ac := NewAircraft("GH3", types.NewVec2(12.5, -3), 37, 420, 60000, "YUL")
	ac.Advance(0)
	assert.Equal(t, types.NewVec2(12.5, -3), ac.Position)
	ac.Advance(-1)
	assert.Equal(t, types.NewVec2(12.5, -3), ac.Position)
}

func TestUpdaterFiresOnInterval(t *testing.T) {
	fleet := []*Aircraft{
		NewAircraft("AA1", types.NewVec2(0, 0), 0, 300, 40000, "YYZ"),
		NewAircraft("BB2", types.NewVec2(100, 100), 90, 600, 50000, "YYZ"),
	}
	u := NewUpdater(1.0)

	assert.Equal(t, 0.0, u.Tick(0.5, fleet))
	assert.Equal(t, types.NewVec2(0, 0), fleet[0].Position)

	assert.Equal(t, 1.0, u.Tick(0.5, fleet))
	assert.Equal(t, 10.0, fleet[0].Position.X)
	assert.InDelta(t, 100.0, fleet[1].Position.X, 1e-9)
	assert.InDelta(t, 120.0, fleet[1].Position.Y, 1e-9)

	// Timer was reset, so the next half second does nothing.
	assert.Equal(t, 0.0, u.Tick(0.5, fleet))
	assert.Equal(t, 10.0, fleet[0].Position.X)
}

func TestUpdaterZeroTickLeavesPositions(t *testing.T) {
	fleet := []*Aircraft{NewAircraft("AA1", types.NewVec2(1, 2), 45, 300, 40000, "YYZ")}
	u := NewUpdater(1.0)
	for range 10 {
		u.Tick(0, fleet)
	}
	assert.Equal(t, types.NewVec2(1, 2), fleet[0].Position)
}

func TestUpdaterUsesElapsedIncludingOvershoot(t *testing.T) {
	fleet := []*Aircraft{NewAircraft("AA1", types.NewVec2(0, 0), 0, 300, 40000, "YYZ")}
	u := NewUpdater(1.0)
	assert.Equal(t, 2.5, u.Tick(2.5, fleet))
	assert.Equal(t, 25.0, fleet[0].Position.X)
}

func TestNewUpdaterDefaultInterval(t *testing.T) {
	assert.Equal(t, DEFAULT_UPDATE_INTERVAL, NewUpdater(0).Interval())
}
