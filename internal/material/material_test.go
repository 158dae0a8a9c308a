package material

import (
	"math"
	"testing"

	"github.com/ashcolecarr/go-raytracer/internal/prim"
)

func TestLightingEyeBetweenLightAndSurface(t *testing.T) {
	m := New()
	target := newFakeTarget(prim.Identity4())
	position := prim.NewPoint(0, 0, 0)

	eye := prim.NewVector(0, 0, -1)
	normal := prim.NewVector(0, 0, -1)
	light := NewLight(prim.NewPoint(0, 0, -10), prim.White)

	got := m.Lighting(target, light, position, eye, normal, false)
	want := prim.NewColor(1.9, 1.9, 1.9)
	if !got.Equal(want) {
		t.Errorf("Lighting() = %v, want %v", got, want)
	}
}

func TestLightingEyeOffset45Degrees(t *testing.T) {
	m := New()
	target := newFakeTarget(prim.Identity4())
	position := prim.NewPoint(0, 0, 0)

	eye := prim.NewVector(0, math.Sqrt2/2, -math.Sqrt2/2)
	normal := prim.NewVector(0, 0, -1)
	light := NewLight(prim.NewPoint(0, 0, -10), prim.White)

	got := m.Lighting(target, light, position, eye, normal, false)
	want := prim.NewColor(1.0, 1.0, 1.0)
	if !got.Equal(want) {
		t.Errorf("Lighting() = %v, want %v", got, want)
	}
}

func TestLightingOppositeSurfaceLightOffset45Degrees(t *testing.T) {
	m := New()
	target := newFakeTarget(prim.Identity4())
	position := prim.NewPoint(0, 0, 0)

	eye := prim.NewVector(0, 0, -1)
	normal := prim.NewVector(0, 0, -1)
	light := NewLight(prim.NewPoint(0, 10, -10), prim.White)

	got := m.Lighting(target, light, position, eye, normal, false)
	want := prim.NewColor(0.7364, 0.7364, 0.7364)
	if !got.Equal(want) {
		t.Errorf("Lighting() = %v, want %v", got, want)
	}
}

func TestLightingEyeInReflectionPath(t *testing.T) {
	m := New()
	target := newFakeTarget(prim.Identity4())
	position := prim.NewPoint(0, 0, 0)

	eye := prim.NewVector(0, -math.Sqrt2/2, -math.Sqrt2/2)
	normal := prim.NewVector(0, 0, -1)
	light := NewLight(prim.NewPoint(0, 10, -10), prim.White)

	got := m.Lighting(target, light, position, eye, normal, false)
	want := prim.NewColor(1.6364, 1.6364, 1.6364)
	if !got.Equal(want) {
		t.Errorf("Lighting() = %v, want %v", got, want)
	}
}

func TestLightingLightBehindSurface(t *testing.T) {
	m := New()
	target := newFakeTarget(prim.Identity4())
	position := prim.NewPoint(0, 0, 0)

	eye := prim.NewVector(0, 0, -1)
	normal := prim.NewVector(0, 0, -1)
	light := NewLight(prim.NewPoint(0, 0, 10), prim.White)

	got := m.Lighting(target, light, position, eye, normal, false)
	want := prim.NewColor(0.1, 0.1, 0.1)
	if !got.Equal(want) {
		t.Errorf("Lighting() = %v, want %v", got, want)
	}
}

func TestLightingWithSurfaceInShadow(t *testing.T) {
	m := New()
	target := newFakeTarget(prim.Identity4())
	position := prim.NewPoint(0, 0, 0)

	eye := prim.NewVector(0, 0, -1)
	normal := prim.NewVector(0, 0, -1)
	light := NewLight(prim.NewPoint(0, 0, -10), prim.White)

	got := m.Lighting(target, light, position, eye, normal, true)
	want := prim.NewColor(0.1, 0.1, 0.1)
	if !got.Equal(want) {
		t.Errorf("Lighting() in shadow = %v, want %v", got, want)
	}
}

func TestLightingWithPatternApplied(t *testing.T) {
	m := New(WithPattern(NewStripePattern(prim.White, prim.Black)), WithAmbient(1), WithDiffuse(0), WithSpecular(0))
	target := newFakeTarget(prim.Identity4())
	eye := prim.NewVector(0, 0, -1)
	normal := prim.NewVector(0, 0, -1)
	light := NewLight(prim.NewPoint(0, 0, -10), prim.White)

	c1 := m.Lighting(target, light, prim.NewPoint(0.9, 0, 0), eye, normal, false)
	c2 := m.Lighting(target, light, prim.NewPoint(1.1, 0, 0), eye, normal, false)
	if !c1.Equal(prim.White) {
		t.Errorf("Lighting() at 0.9 = %v, want white", c1)
	}
	if !c2.Equal(prim.Black) {
		t.Errorf("Lighting() at 1.1 = %v, want black", c2)
	}
}

func TestMaterialDefaults(t *testing.T) {
	m := New()
	if m.Ambient != 0.1 || m.Diffuse != 0.9 || m.Specular != 0.9 || m.Shininess != 200 {
		t.Errorf("New() defaults = %+v", m)
	}
	if m.Reflective != 0 || m.Transparency != 0 || m.RefractiveIndex != 1 {
		t.Errorf("New() glass defaults = %+v", m)
	}
}
