package shape

import (
	"testing"

	"github.com/ashcolecarr/go-raytracer/internal/prim"
)

func newTestTriangle() *Shape {
	return NewTriangle(
		prim.NewPoint(0, 1, 0),
		prim.NewPoint(-1, 0, 0),
		prim.NewPoint(1, 0, 0),
	)
}

func TestNewTriangleComputesEdgesAndNormal(t *testing.T) {
	tr := newTestTriangle()
	if !tr.Edge1.Equal(prim.NewVector(-1, -1, 0)) {
		t.Errorf("Edge1 = %v, want (-1,-1,0)", tr.Edge1)
	}
	if !tr.Edge2.Equal(prim.NewVector(1, -1, 0)) {
		t.Errorf("Edge2 = %v, want (1,-1,0)", tr.Edge2)
	}
	if !tr.FaceNormal.Equal(prim.NewVector(0, 0, -1)) {
		t.Errorf("FaceNormal = %v, want (0,0,-1)", tr.FaceNormal)
	}
}

func TestTriangleNormalAtIsConstant(t *testing.T) {
	tr := newTestTriangle()
	for _, p := range []prim.Tuple{
		prim.NewPoint(0, 0.5, 0),
		prim.NewPoint(-0.5, 0.75, 0),
		prim.NewPoint(0.5, 0.25, 0),
	} {
		n, err := tr.NormalAt(p, Intersection{})
		if err != nil {
			t.Fatalf("NormalAt error: %v", err)
		}
		if !n.Equal(tr.FaceNormal) {
			t.Errorf("NormalAt(%v) = %v, want %v", p, n, tr.FaceNormal)
		}
	}
}

func TestTriangleIntersectParallelRayMisses(t *testing.T) {
	tr := newTestTriangle()
	r := prim.NewRay(prim.NewPoint(0, -1, -2), prim.NewVector(0, 1, 0))
	if xs := tr.Intersect(r); len(xs) != 0 {
		t.Errorf("xs = %v, want empty", xs)
	}
}

func TestTriangleIntersectMissesEachEdge(t *testing.T) {
	tr := newTestTriangle()
	rays := []prim.Ray{
		prim.NewRay(prim.NewPoint(1, 1, -2), prim.NewVector(0, 0, 1)),
		prim.NewRay(prim.NewPoint(-1, 1, -2), prim.NewVector(0, 0, 1)),
		prim.NewRay(prim.NewPoint(0, -1, -2), prim.NewVector(0, 0, 1)),
	}
	for _, r := range rays {
		if xs := tr.Intersect(r); len(xs) != 0 {
			t.Errorf("xs(%v) = %v, want empty", r, xs)
		}
	}
}

func TestTriangleIntersectHits(t *testing.T) {
	tr := newTestTriangle()
	r := prim.NewRay(prim.NewPoint(0, 0.5, -2), prim.NewVector(0, 0, 1))
	xs := tr.Intersect(r)
	if len(xs) != 1 || xs[0].T != 2.0 {
		t.Errorf("xs = %v, want [2]", xs)
	}
}

func newTestSmoothTriangle() *Shape {
	return NewSmoothTriangle(
		prim.NewPoint(0, 1, 0),
		prim.NewPoint(-1, 0, 0),
		prim.NewPoint(1, 0, 0),
		prim.NewVector(0, 1, 0),
		prim.NewVector(-1, 0, 0),
		prim.NewVector(1, 0, 0),
	)
}

func TestSmoothTriangleIntersectionCarriesUV(t *testing.T) {
	tri := newTestSmoothTriangle()
	r := prim.NewRay(prim.NewPoint(-0.2, 0.3, -2), prim.NewVector(0, 0, 1))
	xs := tri.Intersect(r)
	if len(xs) != 1 {
		t.Fatalf("len(xs) = %d, want 1", len(xs))
	}
	if !xs[0].HasUV {
		t.Fatalf("HasUV = false, want true")
	}
	if diff := xs[0].U - 0.45; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("U = %v, want ~0.45", xs[0].U)
	}
	if diff := xs[0].V - 0.25; diff > 1e-4 || diff < -1e-4 {
		t.Errorf("V = %v, want ~0.25", xs[0].V)
	}
}

func TestSmoothTriangleNormalAtInterpolates(t *testing.T) {
	tri := newTestSmoothTriangle()
	n, err := tri.NormalAt(prim.NewPoint(0, 0, 0), Intersection{U: 0.45, V: 0.25, HasUV: true})
	if err != nil {
		t.Fatalf("NormalAt error: %v", err)
	}
	want := prim.NewVector(-0.5547, 0.83205, 0)
	if !n.Equal(want) {
		t.Errorf("NormalAt = %v, want %v", n, want)
	}
}

func TestTriangleBounds(t *testing.T) {
	tr := newTestTriangle()
	b := tr.Bounds()
	if !b.ContainsPoint(prim.NewPoint(0, 1, 0)) || !b.ContainsPoint(prim.NewPoint(-1, 0, 0)) || !b.ContainsPoint(prim.NewPoint(1, 0, 0)) {
		t.Errorf("bounds %v do not contain all vertices", b)
	}
}
