package shape

import (
	"math"

	"github.com/ashcolecarr/go-raytracer/internal/prim"
)

// NewCube constructs an axis-aligned unit cube centered at the origin,
// spanning [-1, 1] on every axis.
func NewCube() *Shape {
	return newShape(KindCube)
}

func cubeCheckAxis(origin, direction float64) (tMin, tMax float64) {
	tMinNumerator := -1 - origin
	tMaxNumerator := 1 - origin

	if math.Abs(direction) >= prim.Epsilon {
		tMin = tMinNumerator / direction
		tMax = tMaxNumerator / direction
	} else {
		tMin = tMinNumerator * math.Inf(1)
		tMax = tMaxNumerator * math.Inf(1)
	}
	if tMin > tMax {
		tMin, tMax = tMax, tMin
	}
	return tMin, tMax
}

func (s *Shape) cubeIntersect(ray prim.Ray) []Intersection {
	xtMin, xtMax := cubeCheckAxis(ray.Origin.X, ray.Direction.X)
	ytMin, ytMax := cubeCheckAxis(ray.Origin.Y, ray.Direction.Y)
	ztMin, ztMax := cubeCheckAxis(ray.Origin.Z, ray.Direction.Z)

	tMin := math.Max(xtMin, math.Max(ytMin, ztMin))
	tMax := math.Min(xtMax, math.Min(ytMax, ztMax))

	if tMin > tMax {
		return nil
	}
	return []Intersection{{T: tMin, Object: s}, {T: tMax, Object: s}}
}

func (s *Shape) cubeNormalAt(point prim.Tuple) prim.Tuple {
	absX, absY, absZ := math.Abs(point.X), math.Abs(point.Y), math.Abs(point.Z)
	maxC := math.Max(absX, math.Max(absY, absZ))

	switch {
	case maxC == absX:
		return prim.NewVector(point.X, 0, 0)
	case maxC == absY:
		return prim.NewVector(0, point.Y, 0)
	default:
		return prim.NewVector(0, 0, point.Z)
	}
}
