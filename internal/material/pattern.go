// Package material implements surface coloring: procedural patterns, the
// Phong material model, and point lights.
package material

import (
	"math"

	"github.com/ashcolecarr/go-raytracer/internal/prim"
)

// Pattern is a procedural surface coloring with its own transform, so a
// pattern can be placed on a surface independently of the shape's own
// transform.
type Pattern interface {
	// At evaluates the pattern at a point already in pattern space.
	At(point prim.Tuple) prim.Color
	// Transform returns the pattern's own object-to-pattern-space transform.
	Transform() prim.Matrix
}

type basePattern struct {
	a, b      prim.Color
	transform prim.Matrix
}

func (p basePattern) Transform() prim.Matrix {
	return p.transform
}

// newBase returns the base fields shared by the concrete patterns: the two
// colors a and b and an identity transform.
func newBase(a, b prim.Color) basePattern {
	return basePattern{a: a, b: b, transform: prim.Identity4()}
}

// StripePattern alternates between two colors based on the floor of x.
type StripePattern struct {
	basePattern
}

func NewStripePattern(a, b prim.Color) *StripePattern {
	return &StripePattern{newBase(a, b)}
}

func (p *StripePattern) SetTransform(m prim.Matrix) *StripePattern {
	p.transform = m
	return p
}

func (p *StripePattern) At(point prim.Tuple) prim.Color {
	if int(math.Floor(point.X))%2 == 0 {
		return p.a
	}
	return p.b
}

// GradientPattern linearly interpolates from a to b across x.
type GradientPattern struct {
	basePattern
}

func NewGradientPattern(a, b prim.Color) *GradientPattern {
	return &GradientPattern{newBase(a, b)}
}

func (p *GradientPattern) SetTransform(m prim.Matrix) *GradientPattern {
	p.transform = m
	return p
}

func (p *GradientPattern) At(point prim.Tuple) prim.Color {
	distance := p.b.Sub(p.a)
	fraction := point.X - math.Floor(point.X)
	return p.a.Add(distance.Scale(fraction))
}

// RingPattern alternates based on the floor of the radial distance in the
// xz-plane.
type RingPattern struct {
	basePattern
}

func NewRingPattern(a, b prim.Color) *RingPattern {
	return &RingPattern{newBase(a, b)}
}

func (p *RingPattern) SetTransform(m prim.Matrix) *RingPattern {
	p.transform = m
	return p
}

func (p *RingPattern) At(point prim.Tuple) prim.Color {
	radius := math.Sqrt(point.X*point.X + point.Z*point.Z)
	if int(math.Floor(radius))%2 == 0 {
		return p.a
	}
	return p.b
}

// CheckerPattern alternates in 3D based on the parity of the sum of the
// floors of x, y and z.
type CheckerPattern struct {
	basePattern
}

func NewCheckerPattern(a, b prim.Color) *CheckerPattern {
	return &CheckerPattern{newBase(a, b)}
}

func (p *CheckerPattern) SetTransform(m prim.Matrix) *CheckerPattern {
	p.transform = m
	return p
}

func (p *CheckerPattern) At(point prim.Tuple) prim.Color {
	sum := math.Floor(point.X) + math.Floor(point.Y) + math.Floor(point.Z)
	if int(sum)%2 == 0 {
		return p.a
	}
	return p.b
}

// RingGradientPattern linearly interpolates by the fractional part of the
// radial distance in the xz-plane.
type RingGradientPattern struct {
	basePattern
}

func NewRingGradientPattern(a, b prim.Color) *RingGradientPattern {
	return &RingGradientPattern{newBase(a, b)}
}

func (p *RingGradientPattern) SetTransform(m prim.Matrix) *RingGradientPattern {
	p.transform = m
	return p
}

func (p *RingGradientPattern) At(point prim.Tuple) prim.Color {
	radius := math.Sqrt(point.X*point.X + point.Z*point.Z)
	distance := p.b.Sub(p.a)
	fraction := radius - math.Floor(radius)
	return p.a.Add(distance.Scale(fraction))
}

// TestPattern returns Color(x, y, z); used only to verify the
// object-space/pattern-space transform plumbing in tests.
type TestPattern struct {
	basePattern
}

func NewTestPattern() *TestPattern {
	return &TestPattern{newBase(prim.White, prim.Black)}
}

func (p *TestPattern) SetTransform(m prim.Matrix) *TestPattern {
	p.transform = m
	return p
}

func (p *TestPattern) At(point prim.Tuple) prim.Color {
	return prim.NewColor(point.X, point.Y, point.Z)
}

// PatternTarget is the minimal shape-side interface patterns and materials
// need to resolve a world-space point into object space. shape.Shape
// implements this; material deliberately does not import the shape package
// to avoid a dependency cycle (shape imports material for Material/Light).
type PatternTarget interface {
	WorldToObject(worldPoint prim.Tuple) prim.Tuple
}

// PatternAt evaluates pattern at a world-space point on shape: the point is
// first brought into object space via shape.WorldToObject, then into
// pattern space via the pattern's own inverse transform.
func PatternAt(pattern Pattern, shape PatternTarget, worldPoint prim.Tuple) prim.Color {
	objectPoint := shape.WorldToObject(worldPoint)
	inv, err := pattern.Transform().Inverse()
	if err != nil {
		// A singular pattern transform is a scene-construction error; fall
		// back to object space rather than panicking mid-render.
		inv = prim.Identity4()
	}
	patternPoint := inv.MultiplyTuple(objectPoint)
	return pattern.At(patternPoint)
}
