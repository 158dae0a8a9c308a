package shape

import (
	"math"

	"github.com/ashcolecarr/go-raytracer/internal/prim"
)

// NewSphere constructs a unit sphere centered at the object-space origin.
func NewSphere() *Shape {
	return newShape(KindSphere)
}

// NewGlassSphere constructs a unit sphere with a typical glass material
// (fully transparent, refractive index 1.5), a convenience used heavily by
// refraction tests and demo scenes.
func NewGlassSphere() *Shape {
	s := NewSphere()
	s.Material.Transparency = 1.0
	s.Material.RefractiveIndex = 1.5
	return s
}

func (s *Shape) sphereIntersect(ray prim.Ray) []Intersection {
	sphereToRay := ray.Origin.Sub(prim.NewPoint(0, 0, 0))

	a := ray.Direction.Dot(ray.Direction)
	b := 2 * ray.Direction.Dot(sphereToRay)
	c := sphereToRay.Dot(sphereToRay) - 1

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return nil
	}

	sqrtDisc := math.Sqrt(discriminant)
	t1 := (-b - sqrtDisc) / (2 * a)
	t2 := (-b + sqrtDisc) / (2 * a)

	return []Intersection{
		{T: t1, Object: s},
		{T: t2, Object: s},
	}
}

func (s *Shape) sphereNormalAt(point prim.Tuple) prim.Tuple {
	return point.Sub(prim.NewPoint(0, 0, 0))
}
