package material

import (
	"math/rand"

	"github.com/mnormal/go-pathtracer/pkg/core"
)

// Isotropic scatters uniformly in all directions. It serves as the phase
// function for participating media and ignores the surface normal.
type Isotropic struct {
	Albedo Texture
}

// NewIsotropic creates an isotropic material with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic material with a texture
func NewTexturedIsotropic(albedo Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter picks a uniformly random direction on the unit sphere
func (i *Isotropic) Scatter(rayIn core.Ray, rec HitRecord, random *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{
		Scattered:   core.NewRayAt(rec.Point, core.RandomUnitVector(random), rayIn.Time),
		Attenuation: i.Albedo.Value(rec.U, rec.V, rec.Point),
	}, true
}
