package shape

import (
	"math"

	"github.com/ashcolecarr/go-raytracer/internal/prim"
)

// NewCylinder constructs an infinite cylinder of radius 1 around the y
// axis. Callers typically narrow Minimum/Maximum and set Closed.
func NewCylinder() *Shape {
	return newShape(KindCylinder)
}

// cylinderCheckCap reports whether the x,z position on the ray at
// parameter t lies within the unit circle (radius 1 disk cap).
func cylinderCheckCap(ray prim.Ray, t float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return (x*x + z*z) <= 1
}

func (s *Shape) cylinderIntersectCaps(ray prim.Ray, xs []Intersection) []Intersection {
	if !s.Closed || math.Abs(ray.Direction.Y) < prim.Epsilon {
		return xs
	}
	tLower := (s.Minimum - ray.Origin.Y) / ray.Direction.Y
	if cylinderCheckCap(ray, tLower) {
		xs = append(xs, Intersection{T: tLower, Object: s})
	}
	tUpper := (s.Maximum - ray.Origin.Y) / ray.Direction.Y
	if cylinderCheckCap(ray, tUpper) {
		xs = append(xs, Intersection{T: tUpper, Object: s})
	}
	return xs
}

func (s *Shape) cylinderIntersect(ray prim.Ray) []Intersection {
	var xs []Intersection

	a := ray.Direction.X*ray.Direction.X + ray.Direction.Z*ray.Direction.Z
	if math.Abs(a) > prim.Epsilon {
		b := 2*ray.Origin.X*ray.Direction.X + 2*ray.Origin.Z*ray.Direction.Z
		c := ray.Origin.X*ray.Origin.X + ray.Origin.Z*ray.Origin.Z - 1

		discriminant := b*b - 4*a*c
		if discriminant < 0 {
			return s.cylinderIntersectCaps(ray, xs)
		}

		sqrtDisc := math.Sqrt(discriminant)
		t0 := (-b - sqrtDisc) / (2 * a)
		t1 := (-b + sqrtDisc) / (2 * a)
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		y0 := ray.Origin.Y + t0*ray.Direction.Y
		if s.Minimum < y0 && y0 < s.Maximum {
			xs = append(xs, Intersection{T: t0, Object: s})
		}
		y1 := ray.Origin.Y + t1*ray.Direction.Y
		if s.Minimum < y1 && y1 < s.Maximum {
			xs = append(xs, Intersection{T: t1, Object: s})
		}
	}

	return s.cylinderIntersectCaps(ray, xs)
}

func (s *Shape) cylinderNormalAt(point prim.Tuple) prim.Tuple {
	dist := point.X*point.X + point.Z*point.Z
	if dist < 1 && point.Y >= s.Maximum-prim.Epsilon {
		return prim.NewVector(0, 1, 0)
	}
	if dist < 1 && point.Y <= s.Minimum+prim.Epsilon {
		return prim.NewVector(0, -1, 0)
	}
	return prim.NewVector(point.X, 0, point.Z)
}
