package geometry

import (
	"math"
	"math/rand"

	"github.com/mnormal/go-pathtracer/pkg/core"
	"github.com/mnormal/go-pathtracer/pkg/material"
)

// ConstantMedium represents a participating medium of uniform density, such
// as smoke or fog, bounded by a convex hittable. Rays passing through it
// scatter at a stochastic distance with probability proportional to the
// density, using an isotropic phase function.
type ConstantMedium struct {
	Boundary      Hittable
	negInvDensity float64
	phaseFunction material.Material
}

// NewConstantMedium creates a medium with a solid scattering color
func NewConstantMedium(boundary Hittable, density float64, albedo core.Vec3) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		negInvDensity: -1.0 / density,
		phaseFunction: material.NewIsotropic(albedo),
	}
}

// NewTexturedConstantMedium creates a medium with a textured scattering color
func NewTexturedConstantMedium(boundary Hittable, density float64, albedo material.Texture) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		negInvDensity: -1.0 / density,
		phaseFunction: material.NewTexturedIsotropic(albedo),
	}
}

// Hit probes the boundary for the ray's entry and exit parameters, then
// samples an interaction distance -ln(u)/density inside the medium. When
// that distance exceeds the span actually inside the boundary there is no
// interaction. The reported normal is arbitrary; only the isotropic phase
// function consumes it and it ignores direction entirely.
func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	rec1, ok := m.Boundary.Hit(ray, core.UniverseInterval)
	if !ok {
		return nil, false
	}
	rec2, ok := m.Boundary.Hit(ray, core.NewInterval(rec1.T+0.0001, math.Inf(1)))
	if !ok {
		return nil, false
	}

	tEnter, tExit := rec1.T, rec2.T
	if tEnter < rayT.Min {
		tEnter = rayT.Min
	}
	if tExit > rayT.Max {
		tExit = rayT.Max
	}
	if tEnter >= tExit {
		return nil, false
	}
	if tEnter < 0 {
		tEnter = 0
	}

	rayLength := ray.Direction.Length()
	distanceInsideBoundary := (tExit - tEnter) * rayLength
	// The global generator is safe for concurrent use and keeps the
	// Hittable interface free of sampling state.
	hitDistance := m.negInvDensity * math.Log(rand.Float64())

	if hitDistance > distanceInsideBoundary {
		return nil, false
	}

	t := tEnter + hitDistance/rayLength
	return &material.HitRecord{
		T:        t,
		Point:    ray.At(t),
		Normal:   core.NewVec3(1, 0, 0), // arbitrary
		Material: m.phaseFunction,
	}, true
}

// BoundingBox delegates to the boundary
func (m *ConstantMedium) BoundingBox(timeInterval core.Interval) (core.AABB, bool) {
	return m.Boundary.BoundingBox(timeInterval)
}
