package telemetry

import (
	"sync"

	"mayday/internal/game/simulation"
)

// Guard serializes access to a simulation shared between the host loop and
// HTTP handlers. The simulation itself stays single-threaded.
type Guard struct {
	mu  sync.Mutex
	sim *simulation.Simulation
}

func NewGuard(sim *simulation.Simulation) *Guard {
	return &Guard{sim: sim}
}

func (g *Guard) Step(dt float64) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sim.Step(dt)
}

func (g *Guard) Snapshot() simulation.Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.sim.Snapshot()
}
