package raytracer

import (
	"math"
	"testing"
	"time"

	"github.com/ashcolecarr/go-raytracer/internal/material"
	"github.com/ashcolecarr/go-raytracer/internal/prim"
	"github.com/ashcolecarr/go-raytracer/internal/shape"
)

func TestIntersectWorldReturnsSortedHits(t *testing.T) {
	w := DefaultScene()
	r := prim.NewRay(prim.NewPoint(0, 0, -5), prim.NewVector(0, 0, 1))
	xs := w.IntersectWorld(r)
	if len(xs) != 4 {
		t.Fatalf("len(xs) = %d, want 4", len(xs))
	}
	wantTs := []float64{4, 4.5, 5.5, 6}
	for i, want := range wantTs {
		if xs[i].T != want {
			t.Errorf("xs[%d].T = %v, want %v", i, xs[i].T, want)
		}
	}
}

func TestShadeHitFromOutside(t *testing.T) {
	w := DefaultScene()
	r := prim.NewRay(prim.NewPoint(0, 0, -5), prim.NewVector(0, 0, 1))
	shapeHit := w.Objects[0]
	i := shape.Intersection{T: 4, Object: shapeHit}

	comps, err := PrepareComputations(i, r, []shape.Intersection{i})
	if err != nil {
		t.Fatalf("PrepareComputations error: %v", err)
	}
	got := w.ShadeHit(comps, maxReflectionDepth)
	want := prim.NewColor(0.38066, 0.47583, 0.2855)
	if !got.Equal(want) {
		t.Errorf("ShadeHit = %v, want %v", got, want)
	}
}

func TestShadeHitFromInside(t *testing.T) {
	w := DefaultScene()
	w.Lights = []material.Light{material.NewLight(prim.NewPoint(0, 0.25, 0), prim.White)}
	r := prim.NewRay(prim.NewPoint(0, 0, 0), prim.NewVector(0, 0, 1))
	inner := w.Objects[1]
	i := shape.Intersection{T: 0.5, Object: inner}

	comps, err := PrepareComputations(i, r, []shape.Intersection{i})
	if err != nil {
		t.Fatalf("PrepareComputations error: %v", err)
	}
	got := w.ShadeHit(comps, maxReflectionDepth)
	want := prim.NewColor(0.90498, 0.90498, 0.90498)
	if !got.Equal(want) {
		t.Errorf("ShadeHit = %v, want %v", got, want)
	}
}

func TestShadeHitInShadow(t *testing.T) {
	w := NewWorld()
	w.Lights = []material.Light{material.NewLight(prim.NewPoint(0, 0, -10), prim.White)}

	s1 := shape.NewSphere()
	s2 := shape.NewSphere()
	s2.Transform = prim.Translation(0, 0, 10)
	w.Objects = []*shape.Shape{s1, s2}

	r := prim.NewRay(prim.NewPoint(0, 0, 5), prim.NewVector(0, 0, 1))
	i := shape.Intersection{T: 4, Object: s2}

	comps, err := PrepareComputations(i, r, []shape.Intersection{i})
	if err != nil {
		t.Fatalf("PrepareComputations error: %v", err)
	}
	got := w.ShadeHit(comps, maxReflectionDepth)
	want := prim.NewColor(0.1, 0.1, 0.1)
	if !got.Equal(want) {
		t.Errorf("ShadeHit = %v, want %v", got, want)
	}
}

func TestColorAtRayMisses(t *testing.T) {
	w := DefaultScene()
	r := prim.NewRay(prim.NewPoint(0, 0, -5), prim.NewVector(0, 1, 0))
	got := w.ColorAt(r, maxReflectionDepth)
	if !got.Equal(prim.Black) {
		t.Errorf("ColorAt = %v, want black", got)
	}
}

func TestColorAtRayHits(t *testing.T) {
	w := DefaultScene()
	r := prim.NewRay(prim.NewPoint(0, 0, -5), prim.NewVector(0, 0, 1))
	got := w.ColorAt(r, maxReflectionDepth)
	want := prim.NewColor(0.38066, 0.47583, 0.2855)
	if !got.Equal(want) {
		t.Errorf("ColorAt = %v, want %v", got, want)
	}
}

func TestColorAtWithIntersectionBehindRay(t *testing.T) {
	w := DefaultScene()
	outer := w.Objects[0]
	outer.Material.Ambient = 1
	inner := w.Objects[1]
	inner.Material.Ambient = 1

	r := prim.NewRay(prim.NewPoint(0, 0, 0.75), prim.NewVector(0, 0, -1))
	got := w.ColorAt(r, maxReflectionDepth)
	if !got.Equal(inner.Material.Color) {
		t.Errorf("ColorAt = %v, want inner material color %v", got, inner.Material.Color)
	}
}

func TestIsShadowedWhenNothingIsCollinear(t *testing.T) {
	w := DefaultScene()
	p := prim.NewPoint(0, 10, 0)
	if w.IsShadowed(p, w.Lights[0]) {
		t.Errorf("IsShadowed = true, want false")
	}
}

func TestIsShadowedWhenObjectBetweenPointAndLight(t *testing.T) {
	w := DefaultScene()
	p := prim.NewPoint(10, -10, 10)
	if !w.IsShadowed(p, w.Lights[0]) {
		t.Errorf("IsShadowed = false, want true")
	}
}

func TestIsShadowedWhenObjectBehindLight(t *testing.T) {
	w := DefaultScene()
	p := prim.NewPoint(-20, 20, -20)
	if w.IsShadowed(p, w.Lights[0]) {
		t.Errorf("IsShadowed = true, want false")
	}
}

func TestIsShadowedWhenObjectBehindPoint(t *testing.T) {
	w := DefaultScene()
	p := prim.NewPoint(-2, 2, -2)
	if w.IsShadowed(p, w.Lights[0]) {
		t.Errorf("IsShadowed = true, want false")
	}
}

func TestReflectedColorForNonReflectiveMaterial(t *testing.T) {
	w := DefaultScene()
	r := prim.NewRay(prim.NewPoint(0, 0, 0), prim.NewVector(0, 0, 1))
	inner := w.Objects[1]
	inner.Material.Ambient = 1
	i := shape.Intersection{T: 1, Object: inner}

	comps, err := PrepareComputations(i, r, []shape.Intersection{i})
	if err != nil {
		t.Fatalf("PrepareComputations error: %v", err)
	}
	got := w.ReflectedColor(comps, maxReflectionDepth)
	if !got.Equal(prim.Black) {
		t.Errorf("ReflectedColor = %v, want black", got)
	}
}

func TestReflectedColorForReflectiveMaterial(t *testing.T) {
	w := DefaultScene()
	plane := shape.NewPlane()
	plane.Material.Reflective = 0.5
	plane.Transform = prim.Translation(0, -1, 0)
	w.Objects = append(w.Objects, plane)

	r := prim.NewRay(prim.NewPoint(0, 0, -3), prim.NewVector(0, -math.Sqrt2/2, math.Sqrt2/2))
	i := shape.Intersection{T: math.Sqrt2, Object: plane}

	comps, err := PrepareComputations(i, r, []shape.Intersection{i})
	if err != nil {
		t.Fatalf("PrepareComputations error: %v", err)
	}
	got := w.ReflectedColor(comps, maxReflectionDepth)
	want := prim.NewColor(0.19033, 0.23791, 0.14274)
	if !got.Equal(want) {
		t.Errorf("ReflectedColor = %v, want %v", got, want)
	}
}

func TestReflectedColorAtMaxRecursionDepthIsBlack(t *testing.T) {
	w := DefaultScene()
	plane := shape.NewPlane()
	plane.Material.Reflective = 0.5
	plane.Transform = prim.Translation(0, -1, 0)
	w.Objects = append(w.Objects, plane)

	r := prim.NewRay(prim.NewPoint(0, 0, -3), prim.NewVector(0, -math.Sqrt2/2, math.Sqrt2/2))
	i := shape.Intersection{T: math.Sqrt2, Object: plane}

	comps, err := PrepareComputations(i, r, []shape.Intersection{i})
	if err != nil {
		t.Fatalf("PrepareComputations error: %v", err)
	}
	got := w.ReflectedColor(comps, 0)
	if !got.Equal(prim.Black) {
		t.Errorf("ReflectedColor at depth 0 = %v, want black", got)
	}
}

func TestMutuallyReflectiveSurfacesTerminate(t *testing.T) {
	w := NewWorld()
	w.Lights = []material.Light{material.NewLight(prim.NewPoint(0, 0, 0), prim.White)}

	lower := shape.NewPlane()
	lower.Material.Reflective = 1
	lower.Transform = prim.Translation(0, -1, 0)

	upper := shape.NewPlane()
	upper.Material.Reflective = 1
	upper.Transform = prim.Translation(0, 1, 0)

	w.Objects = []*shape.Shape{lower, upper}

	r := prim.NewRay(prim.NewPoint(0, 0, 0), prim.NewVector(0, 1, 0))

	done := make(chan struct{})
	go func() {
		w.ColorAt(r, maxReflectionDepth)
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("ColorAt did not terminate for mutually reflective surfaces")
	}
}

func TestRefractedColorOfOpaqueSurfaceIsBlack(t *testing.T) {
	w := DefaultScene()
	s := w.Objects[0]
	r := prim.NewRay(prim.NewPoint(0, 0, -5), prim.NewVector(0, 0, 1))
	xs := []shape.Intersection{{T: 4, Object: s}, {T: 6, Object: s}}

	comps, err := PrepareComputations(xs[0], r, xs)
	if err != nil {
		t.Fatalf("PrepareComputations error: %v", err)
	}
	got := w.RefractedColor(comps, maxReflectionDepth)
	if !got.Equal(prim.Black) {
		t.Errorf("RefractedColor = %v, want black", got)
	}
}

func TestRefractedColorAtMaxDepthIsBlack(t *testing.T) {
	w := DefaultScene()
	s := w.Objects[0]
	s.Material.Transparency = 1.0
	s.Material.RefractiveIndex = 1.5

	r := prim.NewRay(prim.NewPoint(0, 0, -5), prim.NewVector(0, 0, 1))
	xs := []shape.Intersection{{T: 4, Object: s}, {T: 6, Object: s}}

	comps, err := PrepareComputations(xs[0], r, xs)
	if err != nil {
		t.Fatalf("PrepareComputations error: %v", err)
	}
	got := w.RefractedColor(comps, 0)
	if !got.Equal(prim.Black) {
		t.Errorf("RefractedColor at depth 0 = %v, want black", got)
	}
}

func TestRefractedColorUnderTotalInternalReflection(t *testing.T) {
	w := DefaultScene()
	s := w.Objects[0]
	s.Material.Transparency = 1.0
	s.Material.RefractiveIndex = 1.5

	r := prim.NewRay(prim.NewPoint(0, 0, math.Sqrt2/2), prim.NewVector(0, 1, 0))
	xs := []shape.Intersection{
		{T: -math.Sqrt2 / 2, Object: s},
		{T: math.Sqrt2 / 2, Object: s},
	}

	comps, err := PrepareComputations(xs[1], r, xs)
	if err != nil {
		t.Fatalf("PrepareComputations error: %v", err)
	}
	got := w.RefractedColor(comps, maxReflectionDepth)
	if !got.Equal(prim.Black) {
		t.Errorf("RefractedColor under TIR = %v, want black", got)
	}
}
