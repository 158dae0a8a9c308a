package raytracer

import (
	"math"

	"github.com/ashcolecarr/go-raytracer/internal/material"
	"github.com/ashcolecarr/go-raytracer/internal/prim"
	"github.com/ashcolecarr/go-raytracer/internal/shape"
)

// DefaultScene builds the canonical two-sphere, one-light world used
// throughout the test suite: a unit sphere with a colorful diffuse
// material, concentric with a half-scale sphere, lit from above and to the
// left.
func DefaultScene() *World {
	outer := shape.NewSphere()
	outer.Material = material.New(
		material.WithColor(prim.NewColor(0.8, 1.0, 0.6)),
		material.WithDiffuse(0.7),
		material.WithSpecular(0.2),
	)

	inner := shape.NewSphere()
	inner.Transform = prim.Scaling(0.5, 0.5, 0.5)

	return &World{
		Objects: []*shape.Shape{outer, inner},
		Lights: []material.Light{
			material.NewLight(prim.NewPoint(-10, 10, -10), prim.White),
		},
	}
}

// GroupDemoScene arranges three spheres inside a group, offset along x, to
// exercise group bounds culling and BVH division.
func GroupDemoScene() *World {
	g := shape.NewGroup()

	left := shape.NewSphere()
	left.Transform = prim.Translation(-2, 0, 0)
	left.Material = material.New(material.WithColor(prim.NewColor(1, 0, 0)))

	middle := shape.NewSphere()
	middle.Material = material.New(material.WithColor(prim.NewColor(0, 1, 0)))

	right := shape.NewSphere()
	right.Transform = prim.Translation(2, 0, 0)
	right.Material = material.New(material.WithColor(prim.NewColor(0, 0, 1)))

	g.AddChild(left)
	g.AddChild(middle)
	g.AddChild(right)
	g.Divide(1)

	floor := shape.NewPlane()
	floor.Material = material.New(material.WithColor(prim.NewColor(0.9, 0.9, 0.9)))

	return &World{
		Objects: []*shape.Shape{g, floor},
		Lights: []material.Light{
			material.NewLight(prim.NewPoint(-10, 10, -10), prim.White),
		},
	}
}

// CSGDemoScene carves a cylindrical hole through a cube via a Difference
// node, demonstrating constructive solid geometry.
func CSGDemoScene() *World {
	cube := shape.NewCube()
	cube.Material = material.New(material.WithColor(prim.NewColor(0.6, 0.6, 0.9)))

	hole := shape.NewCylinder()
	hole.Minimum = -2
	hole.Maximum = 2
	hole.Closed = true
	hole.Transform = prim.Scaling(0.5, 1, 0.5)

	carved := shape.NewCSG(shape.Difference, cube, hole)

	return &World{
		Objects: []*shape.Shape{carved},
		Lights: []material.Light{
			material.NewLight(prim.NewPoint(-10, 10, -10), prim.White),
		},
	}
}

// DefaultCamera builds a camera of the given pixel dimensions looking from
// (0, 1.5, -5) toward (0, 1, 0); the CLI drivers use it for demo renders.
func DefaultCamera(hsize, vsize int) *Camera {
	c := NewCamera(hsize, vsize, math.Pi/3)
	c.Transform = prim.ViewTransform(
		prim.NewPoint(0, 1.5, -5),
		prim.NewPoint(0, 1, 0),
		prim.NewVector(0, 1, 0),
	)
	return c
}
