package shape

import (
	"testing"

	"github.com/ashcolecarr/go-raytracer/internal/prim"
)

func TestPlaneNormalIsConstant(t *testing.T) {
	p := NewPlane()
	points := []prim.Tuple{
		prim.NewPoint(0, 0, 0),
		prim.NewPoint(10, 0, -10),
		prim.NewPoint(-5, 0, 150),
	}
	want := prim.NewVector(0, 1, 0)
	for _, pt := range points {
		n, err := p.NormalAt(pt, Intersection{})
		if err != nil {
			t.Fatalf("NormalAt error: %v", err)
		}
		if !n.Equal(want) {
			t.Errorf("NormalAt(%v) = %v, want %v", pt, n, want)
		}
	}
}

func TestPlaneIntersectParallelRayMisses(t *testing.T) {
	p := NewPlane()
	r := prim.NewRay(prim.NewPoint(0, 10, 0), prim.NewVector(0, 0, 1))
	if xs := p.Intersect(r); len(xs) != 0 {
		t.Errorf("xs = %v, want empty", xs)
	}
}

func TestPlaneIntersectCoplanarRayMisses(t *testing.T) {
	p := NewPlane()
	r := prim.NewRay(prim.NewPoint(0, 0, 0), prim.NewVector(0, 0, 1))
	if xs := p.Intersect(r); len(xs) != 0 {
		t.Errorf("xs = %v, want empty", xs)
	}
}

func TestPlaneIntersectFromAbove(t *testing.T) {
	p := NewPlane()
	r := prim.NewRay(prim.NewPoint(0, 1, 0), prim.NewVector(0, -1, 0))
	xs := p.Intersect(r)
	if len(xs) != 1 || xs[0].T != 1.0 {
		t.Errorf("xs = %v, want [1]", xs)
	}
}

func TestPlaneIntersectFromBelow(t *testing.T) {
	p := NewPlane()
	r := prim.NewRay(prim.NewPoint(0, -1, 0), prim.NewVector(0, 1, 0))
	xs := p.Intersect(r)
	if len(xs) != 1 || xs[0].T != 1.0 {
		t.Errorf("xs = %v, want [1]", xs)
	}
}
