package airspace

import (
	"errors"
	"fmt"

	"mayday/internal/rand"
	"mayday/pkg/types"
)

const (
	MIN_SEPARATION       = 200.0
	DEFAULT_MAX_ATTEMPTS = 1000
)

var ErrPlacementInfeasible = errors.New("placement infeasible")

// PlacementError reports how far the placer got before running out of
// attempts for a single point.
type PlacementError struct {
	Requested     int
	Placed        int
	Attempts      int
	MinSeparation float64
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("%v: placed %d of %d points at separation %.0f after %d attempts on the next point",
		ErrPlacementInfeasible, e.Placed, e.Requested, e.MinSeparation, e.Attempts)
}

func (e *PlacementError) Unwrap() error {
	return ErrPlacementInfeasible
}

// Placer drops points into a rectangle by rejection sampling so that every
// pair is at least MinSeparation apart.
type Placer struct {
	Rand          *rand.Rand
	MinSeparation float64
	// MaxAttempts bounds the number of candidates drawn for each point.
	MaxAttempts int
}

func NewPlacer(r *rand.Rand, minSeparation float64, maxAttempts int) *Placer {
	if maxAttempts <= 0 {
		maxAttempts = DEFAULT_MAX_ATTEMPTS
	}
	return &Placer{
		Rand:          r,
		MinSeparation: minSeparation,
		MaxAttempts:   maxAttempts,
	}
}

// Place returns n points inside bounds. It returns a *PlacementError once a
// point cannot be placed within MaxAttempts candidates.
func (p *Placer) Place(n int, bounds types.Rect) ([]types.Vec2, error) {
	if n <= 0 {
		return []types.Vec2{}, nil
	}

	points := make([]types.Vec2, 0, n)
	for len(points) < n {
		pt, ok := p.sample(points, bounds)
		if !ok {
			return nil, &PlacementError{
				Requested:     n,
				Placed:        len(points),
				Attempts:      p.MaxAttempts,
				MinSeparation: p.MinSeparation,
			}
		}
		points = append(points, pt)
	}
	return points, nil
}

func (p *Placer) sample(accepted []types.Vec2, bounds types.Rect) (types.Vec2, bool) {
	for range p.MaxAttempts {
		candidate := types.NewVec2(
			p.Rand.Uniform(bounds.Min.X, bounds.Max.X),
			p.Rand.Uniform(bounds.Min.Y, bounds.Max.Y),
		)
		if p.separated(candidate, accepted) {
			return candidate, true
		}
	}
	return types.Vec2{}, false
}

func (p *Placer) separated(candidate types.Vec2, accepted []types.Vec2) bool {
	for _, a := range accepted {
		if candidate.DistanceTo(a) <= p.MinSeparation {
			return false
		}
	}
	return true
}
