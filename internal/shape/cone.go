package shape

import (
	"math"

	"github.com/ashcolecarr/go-raytracer/internal/prim"
)

// NewCone constructs an infinite double-napped cone around the y axis.
// Callers typically narrow Minimum/Maximum and set Closed.
func NewCone() *Shape {
	return newShape(KindCone)
}

func (s *Shape) coneIntersectCaps(ray prim.Ray, xs []Intersection) []Intersection {
	if !s.Closed || math.Abs(ray.Direction.Y) < prim.Epsilon {
		return xs
	}
	tLower := (s.Minimum - ray.Origin.Y) / ray.Direction.Y
	if coneCheckCap(ray, tLower, s.Minimum) {
		xs = append(xs, Intersection{T: tLower, Object: s})
	}
	tUpper := (s.Maximum - ray.Origin.Y) / ray.Direction.Y
	if coneCheckCap(ray, tUpper, s.Maximum) {
		xs = append(xs, Intersection{T: tUpper, Object: s})
	}
	return xs
}

func coneCheckCap(ray prim.Ray, t, y float64) bool {
	x := ray.Origin.X + t*ray.Direction.X
	z := ray.Origin.Z + t*ray.Direction.Z
	return (x*x + z*z) <= y*y
}

func (s *Shape) coneIntersect(ray prim.Ray) []Intersection {
	var xs []Intersection

	a := ray.Direction.X*ray.Direction.X - ray.Direction.Y*ray.Direction.Y + ray.Direction.Z*ray.Direction.Z
	b := 2*ray.Origin.X*ray.Direction.X - 2*ray.Origin.Y*ray.Direction.Y + 2*ray.Origin.Z*ray.Direction.Z
	c := ray.Origin.X*ray.Origin.X - ray.Origin.Y*ray.Origin.Y + ray.Origin.Z*ray.Origin.Z

	if math.Abs(a) < prim.Epsilon {
		if math.Abs(b) < prim.Epsilon {
			return s.coneIntersectCaps(ray, xs)
		}
		t := -c / (2 * b)
		xs = append(xs, Intersection{T: t, Object: s})
		return s.coneIntersectCaps(ray, xs)
	}

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return s.coneIntersectCaps(ray, xs)
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

	return s.coneIntersectCaps(ray, xs)
}

func (s *Shape) coneNormalAt(point prim.Tuple) prim.Tuple {
	dist := point.X*point.X + point.Z*point.Z

	if dist < 1 && point.Y >= s.Maximum-prim.Epsilon {
		return prim.NewVector(0, 1, 0)
	}
	if dist < 1 && point.Y <= s.Minimum+prim.Epsilon {
		return prim.NewVector(0, -1, 0)
	}

	y := math.Sqrt(dist)
	if point.Y > 0 {
		y = -y
	}
	return prim.NewVector(point.X, y, point.Z)
}
