package raytracer

import (
	"math"

	"github.com/ashcolecarr/go-raytracer/internal/prim"
	"github.com/ashcolecarr/go-raytracer/internal/shape"
)

// Computations bundles the precomputed state needed to shade a single ray-
// shape hit: the hit point, the eye and surface-normal vectors, the bias-
// offset points used to dodge self-shadowing acne, the reflection vector,
// and the refractive indices on either side of the surface.
type Computations struct {
	T      float64
	Object *shape.Shape

	Point      prim.Tuple
	EyeV       prim.Tuple
	NormalV    prim.Tuple
	Inside     bool
	OverPoint  prim.Tuple
	UnderPoint prim.Tuple
	ReflectV   prim.Tuple

	N1, N2 float64
}

// Hit selects the intersection with the lowest non-negative t from an
// unsorted list, ignoring hits behind the ray's origin.
func Hit(xs []shape.Intersection) (shape.Intersection, bool) {
	var best shape.Intersection
	found := false
	for _, x := range xs {
		if x.T < 0 {
			continue
		}
		if !found || x.T < best.T {
			best = x
			found = true
		}
	}
	return best, found
}

func isSameIntersection(a, b shape.Intersection) bool {
	return a.Object == b.Object && a.T == b.T
}

func indexOfContainer(containers []*shape.Shape, s *shape.Shape) int {
	for i, c := range containers {
		if c == s {
			return i
		}
	}
	return -1
}

// PrepareComputations derives shading state for hit, given the ray that
// produced it and the full, t-sorted intersection list the ray produced
// against the whole scene (needed to track the refractive-index stack for
// N1/N2 across nested or adjacent transparent surfaces).
func PrepareComputations(hit shape.Intersection, ray prim.Ray, xs []shape.Intersection) (Computations, error) {
	comps := Computations{T: hit.T, Object: hit.Object}
	comps.Point = ray.Position(hit.T)
	comps.EyeV = ray.Direction.Neg()

	normal, err := hit.Object.NormalAt(comps.Point, hit)
	if err != nil {
		return Computations{}, err
	}
	comps.NormalV = normal

	if comps.NormalV.Dot(comps.EyeV) < 0 {
		comps.Inside = true
		comps.NormalV = comps.NormalV.Neg()
	}

	comps.ReflectV = ray.Direction.Reflect(comps.NormalV)
	comps.OverPoint = comps.Point.Add(comps.NormalV.Scale(prim.Epsilon))
	comps.UnderPoint = comps.Point.Sub(comps.NormalV.Scale(prim.Epsilon))

	var containers []*shape.Shape
	for _, x := range xs {
		hitReached := isSameIntersection(x, hit)

		if hitReached {
			if len(containers) == 0 {
				comps.N1 = 1.0
			} else {
				comps.N1 = containers[len(containers)-1].Material.RefractiveIndex
			}
		}

		if idx := indexOfContainer(containers, x.Object); idx >= 0 {
			containers = append(containers[:idx], containers[idx+1:]...)
		} else {
			containers = append(containers, x.Object)
		}

		if hitReached {
			if len(containers) == 0 {
				comps.N2 = 1.0
			} else {
				comps.N2 = containers[len(containers)-1].Material.RefractiveIndex
			}
			break
		}
	}

	return comps, nil
}

// Schlick approximates the Fresnel reflectance at comps' surface, the
// fraction of light reflected rather than refracted, using Christophe
// Schlick's polynomial approximation.
func Schlick(comps Computations) float64 {
	cos := comps.EyeV.Dot(comps.NormalV)

	if comps.N1 > comps.N2 {
		n := comps.N1 / comps.N2
		sin2T := n * n * (1.0 - cos*cos)
		if sin2T > 1.0 {
			return 1.0
		}
		cosT := math.Sqrt(1.0 - sin2T)
		cos = cosT
	}

	r0 := math.Pow((comps.N1-comps.N2)/(comps.N1+comps.N2), 2)
	return r0 + (1-r0)*math.Pow(1-cos, 5)
}
