package material

import (
	"math/rand"

	"github.com/mnormal/go-pathtracer/pkg/core"
)

// DiffuseLight represents a light-emitting material. It never scatters.
type DiffuseLight struct {
	Emission Texture
}

// NewDiffuseLight creates an emitter with a uniform emission color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates an emitter with a textured emission
func NewTexturedDiffuseLight(emission Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Scatter absorbs all incoming rays
func (d *DiffuseLight) Scatter(rayIn core.Ray, rec HitRecord, random *rand.Rand) (ScatterResult, bool) {
	return ScatterResult{}, false
}

// Emitted returns the emission texture value at the hit point
func (d *DiffuseLight) Emitted(u, v float64, point core.Vec3) core.Vec3 {
	return d.Emission.Value(u, v, point)
}
