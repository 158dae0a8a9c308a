package material

import (
	"math"

	"github.com/ashcolecarr/go-raytracer/internal/prim"
)

// Material holds the Phong shading parameters for a surface, plus an
// optional pattern overriding the flat Color.
type Material struct {
	Color           prim.Color
	Ambient         float64
	Diffuse         float64
	Specular        float64
	Shininess       float64
	Pattern         Pattern
	Reflective      float64
	Transparency    float64
	RefractiveIndex float64
}

// Option configures a Material built via New.
type Option func(*Material)

// New builds a Material with the book's standard defaults (ambient 0.1,
// diffuse 0.9, specular 0.9, shininess 200, refractive index 1), applying
// any options in order.
func New(opts ...Option) Material {
	m := Material{
		Color:           prim.White,
		Ambient:         0.1,
		Diffuse:         0.9,
		Specular:        0.9,
		Shininess:       200,
		Reflective:      0,
		Transparency:    0,
		RefractiveIndex: 1,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func WithColor(c prim.Color) Option {
	return func(m *Material) { m.Color = c }
}

func WithAmbient(v float64) Option {
	return func(m *Material) { m.Ambient = v }
}

func WithDiffuse(v float64) Option {
	return func(m *Material) { m.Diffuse = v }
}

func WithSpecular(v float64) Option {
	return func(m *Material) { m.Specular = v }
}

func WithShininess(v float64) Option {
	return func(m *Material) { m.Shininess = v }
}

func WithPattern(p Pattern) Option {
	return func(m *Material) { m.Pattern = p }
}

func WithReflective(v float64) Option {
	return func(m *Material) { m.Reflective = v }
}

func WithTransparency(v float64) Option {
	return func(m *Material) { m.Transparency = v }
}

func WithRefractiveIndex(v float64) Option {
	return func(m *Material) { m.RefractiveIndex = v }
}

// Lighting computes the Phong illumination contributed by a single light at
// a world-space point, given the object (for pattern resolution), the eye
// vector, surface normal, and whether the point is in shadow with respect
// to this light.
func (m Material) Lighting(shape PatternTarget, light Light, point, eye, normal prim.Tuple, inShadow bool) prim.Color {
	surfaceColor := m.Color
	if m.Pattern != nil {
		surfaceColor = PatternAt(m.Pattern, shape, point)
	}

	effectiveColor := surfaceColor.Mul(light.Intensity)
	ambient := effectiveColor.Scale(m.Ambient)

	if inShadow {
		return ambient
	}

	lightVector := light.Position.Sub(point).Normalize()
	diffuse := prim.Black
	specular := prim.Black

	lightDotNormal := lightVector.Dot(normal)
	if lightDotNormal > 0 {
		diffuse = effectiveColor.Scale(m.Diffuse * lightDotNormal)

		reflectVector := lightVector.Neg().Reflect(normal)
		reflectDotEye := reflectVector.Dot(eye)
		if reflectDotEye > 0 {
			factor := math.Pow(reflectDotEye, m.Shininess)
			specular = light.Intensity.Scale(m.Specular * factor)
		}
	}

	return ambient.Add(diffuse).Add(specular)
}
