package material

import (
	"math/rand"

	"github.com/mnormal/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with glossy specular reflection
type Metal struct {
	Albedo core.Vec3
	Fuzz   float64 // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material with fuzz clamped to [0, 1]
func NewMetal(albedo core.Vec3, fuzz float64) *Metal {
	return &Metal{Albedo: albedo, Fuzz: core.UnitInterval.Clamp(fuzz)}
}

// Scatter reflects the ray about the normal, perturbed by the fuzz radius.
// Rays perturbed below the surface are absorbed.
func (m *Metal) Scatter(rayIn core.Ray, rec HitRecord, random *rand.Rand) (ScatterResult, bool) {
	reflected := Reflect(rayIn.Direction.Normalize(), rec.Normal).Normalize()
	reflected = reflected.Add(core.RandomUnitVector(random).Multiply(m.Fuzz))

	scattered := core.NewRayAt(rec.Point, reflected, rayIn.Time)
	if scattered.Direction.Dot(rec.Normal) <= 0 {
		return ScatterResult{}, false
	}

	return ScatterResult{
		Scattered:   scattered,
		Attenuation: m.Albedo,
	}, true
}
