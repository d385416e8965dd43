package material

import (
	"math/rand"

	"github.com/mnormal/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo Texture
}

// NewLambertian creates a lambertian material with a solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a lambertian material with a texture
func NewTexturedLambertian(albedo Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Scatter bounces the ray in a direction distributed as the surface normal
// plus a random unit vector, which approximates cosine-weighted diffuse
// reflection. A numerically degenerate sum falls back to the normal itself.
func (l *Lambertian) Scatter(rayIn core.Ray, rec HitRecord, random *rand.Rand) (ScatterResult, bool) {
	scatterDirection := rec.Normal.Add(core.RandomUnitVector(random))
	if scatterDirection.NearZero() {
		scatterDirection = rec.Normal
	}

	return ScatterResult{
		Scattered:   core.NewRayAt(rec.Point, scatterDirection, rayIn.Time),
		Attenuation: l.Albedo.Value(rec.U, rec.V, rec.Point),
	}, true
}
