package shape

import (
	"math"

	"github.com/ashcolecarr/go-raytracer/internal/prim"
)

// NewTriangle constructs a flat triangle from three object-space vertices,
// precomputing its two edge vectors and face normal.
func NewTriangle(p1, p2, p3 prim.Tuple) *Shape {
	s := newShape(KindTriangle)
	s.P1, s.P2, s.P3 = p1, p2, p3
	s.Edge1 = p2.Sub(p1)
	s.Edge2 = p3.Sub(p1)
	s.FaceNormal = s.Edge2.Cross(s.Edge1).Normalize()
	return s
}

// NewSmoothTriangle constructs a triangle that interpolates its normal
// across the surface from three per-vertex normals using the hit's
// barycentric u, v coordinates.
func NewSmoothTriangle(p1, p2, p3, n1, n2, n3 prim.Tuple) *Shape {
	s := newShape(KindSmoothTriangle)
	s.P1, s.P2, s.P3 = p1, p2, p3
	s.N1, s.N2, s.N3 = n1, n2, n3
	s.Edge1 = p2.Sub(p1)
	s.Edge2 = p3.Sub(p1)
	s.FaceNormal = s.Edge2.Cross(s.Edge1).Normalize()
	return s
}

// triangleIntersect implements the Möller–Trumbore algorithm. SmoothTriangle
// hits additionally carry the u, v barycentric coordinates for normal
// interpolation.
func (s *Shape) triangleIntersect(ray prim.Ray) []Intersection {
	dirCrossE2 := ray.Direction.Cross(s.Edge2)
	det := s.Edge1.Dot(dirCrossE2)
	if math.Abs(det) < prim.Epsilon {
		return nil
	}

	f := 1.0 / det
	p1ToOrigin := ray.Origin.Sub(s.P1)
	u := f * p1ToOrigin.Dot(dirCrossE2)
	if u < 0 || u > 1 {
		return nil
	}

	originCrossE1 := p1ToOrigin.Cross(s.Edge1)
	v := f * ray.Direction.Dot(originCrossE1)
	if v < 0 || (u+v) > 1 {
		return nil
	}

	t := f * s.Edge2.Dot(originCrossE1)
	if s.Kind == KindSmoothTriangle {
		return []Intersection{{T: t, Object: s, U: u, V: v, HasUV: true}}
	}
	return []Intersection{{T: t, Object: s}}
}

func (s *Shape) triangleNormalAt(_ prim.Tuple, hit Intersection) prim.Tuple {
	if s.Kind != KindSmoothTriangle {
		return s.FaceNormal
	}
	return s.N2.Scale(hit.U).
		Add(s.N3.Scale(hit.V)).
		Add(s.N1.Scale(1 - hit.U - hit.V))
}

func (s *Shape) triangleBounds() prim.Bounds {
	b := prim.NewBounds(s.P1, s.P1)
	b = b.UnionPoint(s.P2)
	b = b.UnionPoint(s.P3)
	return b
}
