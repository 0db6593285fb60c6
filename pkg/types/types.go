package types

import "math"

type AircraftID string

type Vec2 struct {
	X float64 `json:"x" msgpack:"x"`
	Y float64 `json:"y" msgpack:"y"`
}

func NewVec2(x, y float64) Vec2 {
	return Vec2{x, y}
}

func (v1 Vec2) DistanceTo(v2 Vec2) float64 {
	dx := v1.X - v2.X
	dy := v1.Y - v2.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func (v1 Vec2) Add(v2 Vec2) Vec2 {
	return Vec2{v1.X + v2.X, v1.Y + v2.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Rect is an axis-aligned rectangle on the simulation plane.
type Rect struct {
	Min Vec2
	Max Vec2
}

// CenteredRect returns a width x height rectangle centered on the origin.
func CenteredRect(width, height float64) Rect {
	return Rect{
		Min: Vec2{-width / 2, -height / 2},
		Max: Vec2{width / 2, height / 2},
	}
}

func (r Rect) Width() float64  { return r.Max.X - r.Min.X }
func (r Rect) Height() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// Shrink scales the rectangle about its center by f.
func (r Rect) Shrink(f float64) Rect {
	cx, cy := (r.Min.X+r.Max.X)/2, (r.Min.Y+r.Max.Y)/2
	hw, hh := r.Width()*f/2, r.Height()*f/2
	return Rect{
		Min: Vec2{cx - hw, cy - hh},
		Max: Vec2{cx + hw, cy + hh},
	}
}
