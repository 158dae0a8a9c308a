package prim

import "fmt"

// Ray is an origin point and a direction vector.
type Ray struct {
	Origin    Tuple
	Direction Tuple
}

// NewRay constructs a Ray.
func NewRay(origin, direction Tuple) Ray {
	return Ray{Origin: origin, Direction: direction}
}

func (r Ray) String() string {
	return fmt.Sprintf("Ray(Origin: %v, Direction: %v)", r.Origin, r.Direction)
}

// Position returns the point along the ray at parameter t.
func (r Ray) Position(t float64) Tuple {
	return r.Origin.Add(r.Direction.Scale(t))
}

// Transform applies m to both the ray's origin and direction. Direction has
// W = 0 so translation does not affect it.
func (r Ray) Transform(m Matrix) Ray {
	return Ray{
		Origin:    m.MultiplyTuple(r.Origin),
		Direction: m.MultiplyTuple(r.Direction),
	}
}
