package airspace

import "mayday/pkg/types"

type Airspace struct {
	Bounds   types.Rect
	Airports []Airport
}

// NewAirspace returns an empty width x height plane centered on the origin.
func NewAirspace(width, height float64) *Airspace {
	return &Airspace{
		Bounds: types.CenteredRect(width, height),
	}
}
