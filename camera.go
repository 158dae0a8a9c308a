package raytracer

import (
	"math"
	"sync"

	"github.com/ashcolecarr/go-raytracer/internal/prim"
)

// Camera maps canvas pixels to world-space rays through a virtual image
// plane one unit in front of the eye.
type Camera struct {
	HSize, VSize int
	FOV          float64
	Transform    prim.Matrix

	halfWidth, halfHeight, pixelSize float64
}

// NewCamera constructs a camera for an hsize x vsize canvas with the given
// field of view (radians), precomputing the half-width/half-height/pixel
// size used by RayForPixel.
func NewCamera(hsize, vsize int, fov float64) *Camera {
	c := &Camera{
		HSize:     hsize,
		VSize:     vsize,
		FOV:       fov,
		Transform: prim.Identity4(),
	}

	halfView := math.Tan(fov / 2)
	aspect := float64(hsize) / float64(vsize)

	if aspect >= 1 {
		c.halfWidth = halfView
		c.halfHeight = halfView / aspect
	} else {
		c.halfWidth = halfView * aspect
		c.halfHeight = halfView
	}
	c.pixelSize = (c.halfWidth * 2) / float64(hsize)

	return c
}

// RayForPixel computes the world-space ray that passes through the center
// of pixel (px, py).
func (c *Camera) RayForPixel(px, py int) prim.Ray {
	xOffset := (float64(px) + 0.5) * c.pixelSize
	yOffset := (float64(py) + 0.5) * c.pixelSize

	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	inv, err := c.Transform.Inverse()
	if err != nil {
		inv = prim.Identity4()
	}

	pixel := inv.MultiplyTuple(prim.NewPoint(worldX, worldY, -1))
	origin := inv.MultiplyTuple(prim.NewPoint(0, 0, 0))
	direction := pixel.Sub(origin).Normalize()

	return prim.NewRay(origin, direction)
}

// Render produces a canvas of c.HSize x c.VSize by tracing one ray per
// pixel through world, fanning the work out across rows: each row is
// computed by its own goroutine, with a WaitGroup joining them before the
// canvas is returned.
func (c *Camera) Render(world *World) *prim.Canvas {
	image := prim.NewCanvas(c.HSize, c.VSize)

	var wg sync.WaitGroup
	for y := 0; y < c.VSize; y++ {
		wg.Add(1)
		go func(y int) {
			defer wg.Done()
			for x := 0; x < c.HSize; x++ {
				ray := c.RayForPixel(x, y)
				color := world.ColorAt(ray, maxReflectionDepth)
				image.WritePixel(x, y, color)
			}
		}(y)
	}
	wg.Wait()

	return image
}
