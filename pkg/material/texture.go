package material

import (
	"math"

	"github.com/mnormal/go-pathtracer/pkg/core"
)

// Texture provides spatially-varying colors for materials.
// UV is used for image textures, the point for procedural textures.
type Texture interface {
	Value(u, v float64, point core.Vec3) core.Vec3
}

// SolidColor provides a uniform color
type SolidColor struct {
	Albedo core.Vec3
}

// NewSolidColor creates a new solid color texture
func NewSolidColor(albedo core.Vec3) *SolidColor {
	return &SolidColor{Albedo: albedo}
}

// NewSolidColorRGB creates a new solid color texture from components
func NewSolidColorRGB(r, g, b float64) *SolidColor {
	return &SolidColor{Albedo: core.NewVec3(r, g, b)}
}

// Value returns the solid color regardless of UV or position
func (s *SolidColor) Value(u, v float64, point core.Vec3) core.Vec3 {
	return s.Albedo
}

// Checker alternates two textures based on the parity of the integer
// lattice cell the 3D point falls in.
type Checker struct {
	InvScale float64
	Even     Texture
	Odd      Texture
}

// NewChecker creates a checker texture with the given cell scale
func NewChecker(scale float64, even, odd Texture) *Checker {
	return &Checker{InvScale: 1.0 / scale, Even: even, Odd: odd}
}

// NewCheckerColors creates a checker texture from two solid colors
func NewCheckerColors(scale float64, even, odd core.Vec3) *Checker {
	return NewChecker(scale, NewSolidColor(even), NewSolidColor(odd))
}

// Value returns the even or odd texture depending on cell parity
func (c *Checker) Value(u, v float64, point core.Vec3) core.Vec3 {
	xInt := int(math.Floor(point.X * c.InvScale))
	yInt := int(math.Floor(point.Y * c.InvScale))
	zInt := int(math.Floor(point.Z * c.InvScale))

	if (xInt+yInt+zInt)%2 == 0 {
		return c.Even.Value(u, v, point)
	}
	return c.Odd.Value(u, v, point)
}
