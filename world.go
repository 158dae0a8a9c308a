package raytracer

import (
	"math"
	"sort"

	"github.com/ashcolecarr/go-raytracer/internal/material"
	"github.com/ashcolecarr/go-raytracer/internal/prim"
	"github.com/ashcolecarr/go-raytracer/internal/shape"
)

// maxReflectionDepth bounds the reflection/refraction recursion so mirror
// and glass surfaces facing each other terminate instead of recursing
// forever.
const maxReflectionDepth = 5

// MaxReflectionDepth is the recursion budget ColorAt uses by default,
// exported so callers driving their own render loop (cmd/raytrace's
// progress-reporting renderer) can match it.
const MaxReflectionDepth = maxReflectionDepth

// World holds every shape and light participating in a render.
type World struct {
	Objects []*shape.Shape
	Lights  []material.Light
}

// NewWorld constructs an empty world.
func NewWorld() *World {
	return &World{}
}

// IntersectWorld intersects ray against every object in the world and
// returns every hit, sorted by ascending t.
func (w *World) IntersectWorld(ray prim.Ray) []shape.Intersection {
	var xs []shape.Intersection
	for _, obj := range w.Objects {
		xs = append(xs, obj.Intersect(ray)...)
	}
	sort.Slice(xs, func(i, j int) bool { return xs[i].T < xs[j].T })
	return xs
}

// IsShadowed reports whether point is occluded from light by some
// shadow-casting object in the world.
func (w *World) IsShadowed(point prim.Tuple, light material.Light) bool {
	pointToLight := light.Position.Sub(point)
	distance := pointToLight.Magnitude()
	direction := pointToLight.Normalize()

	ray := prim.NewRay(point, direction)
	xs := w.IntersectWorld(ray)

	hit, found := Hit(xs)
	return found && hit.Object.CastsShadow && hit.T < distance
}

// ColorAt computes the color the world shows along ray, recursing into
// reflections and refractions up to remaining bounces.
func (w *World) ColorAt(ray prim.Ray, remaining int) prim.Color {
	xs := w.IntersectWorld(ray)
	hit, found := Hit(xs)
	if !found {
		return prim.Black
	}

	comps, err := PrepareComputations(hit, ray, xs)
	if err != nil {
		return prim.Black
	}
	return w.ShadeHit(comps, remaining)
}

// ShadeHit computes the surface color at comps, summing contributions from
// every light, then blending in reflection and refraction.
func (w *World) ShadeHit(comps Computations, remaining int) prim.Color {
	mat := comps.Object.EffectiveMaterial()

	surface := prim.Black
	for _, light := range w.Lights {
		shadowed := w.IsShadowed(comps.OverPoint, light)
		surface = surface.Add(mat.Lighting(comps.Object, light, comps.Point, comps.EyeV, comps.NormalV, shadowed))
	}

	reflected := w.ReflectedColor(comps, remaining)
	refracted := w.RefractedColor(comps, remaining)

	if mat.Reflective > 0 && mat.Transparency > 0 {
		reflectance := Schlick(comps)
		return surface.
			Add(reflected.Scale(reflectance)).
			Add(refracted.Scale(1 - reflectance))
	}
	return surface.Add(reflected).Add(refracted)
}

// ReflectedColor traces the reflection ray at comps, or returns black if
// the surface isn't reflective or the recursion budget is spent.
func (w *World) ReflectedColor(comps Computations, remaining int) prim.Color {
	mat := comps.Object.EffectiveMaterial()
	if remaining <= 0 || mat.Reflective == 0 {
		return prim.Black
	}

	reflectRay := prim.NewRay(comps.OverPoint, comps.ReflectV)
	color := w.ColorAt(reflectRay, remaining-1)
	return color.Scale(mat.Reflective)
}

// RefractedColor traces the refraction ray at comps, or returns black if
// the surface is opaque, the recursion budget is spent, or the incident
// angle causes total internal reflection.
func (w *World) RefractedColor(comps Computations, remaining int) prim.Color {
	mat := comps.Object.EffectiveMaterial()
	if remaining <= 0 || mat.Transparency == 0 {
		return prim.Black
	}

	nRatio := comps.N1 / comps.N2
	cosI := comps.EyeV.Dot(comps.NormalV)
	sin2T := nRatio * nRatio * (1 - cosI*cosI)
	if sin2T > 1 {
		return prim.Black
	}

	cosT := math.Sqrt(1.0 - sin2T)
	direction := comps.NormalV.Scale(nRatio*cosI - cosT).Sub(comps.EyeV.Scale(nRatio))

	refractRay := prim.NewRay(comps.UnderPoint, direction)
	color := w.ColorAt(refractRay, remaining-1)
	return color.Scale(mat.Transparency)
}
