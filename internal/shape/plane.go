package shape

import "github.com/ashcolecarr/go-raytracer/internal/prim"

// NewPlane constructs the xz-plane at y = 0.
func NewPlane() *Shape {
	return newShape(KindPlane)
}

func (s *Shape) planeIntersect(ray prim.Ray) []Intersection {
	if absFloat(ray.Direction.Y) < prim.Epsilon {
		return nil
	}
	t := -ray.Origin.Y / ray.Direction.Y
	return []Intersection{{T: t, Object: s}}
}

func (s *Shape) planeNormalAt(prim.Tuple) prim.Tuple {
	return prim.NewVector(0, 1, 0)
}

func absFloat(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
