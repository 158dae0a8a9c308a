package material

import (
	"fmt"

	"github.com/ashcolecarr/go-raytracer/internal/prim"
)

// Light is a point light source: a position and an intensity color. Only
// point lights are in scope.
type Light struct {
	Position  prim.Tuple
	Intensity prim.Color
}

// NewLight constructs a point Light.
func NewLight(position prim.Tuple, intensity prim.Color) Light {
	return Light{Position: position, Intensity: intensity}
}

func (l Light) String() string {
	return fmt.Sprintf("Light(Position: %v, Intensity: %v)", l.Position, l.Intensity)
}
