package material

import (
	"math/rand"

	"github.com/mnormal/go-pathtracer/pkg/core"
)

// Material interface for surfaces that can scatter rays. A false return
// means the ray was absorbed (or the material is a pure emitter).
type Material interface {
	Scatter(rayIn core.Ray, rec HitRecord, random *rand.Rand) (ScatterResult, bool)
}

// Emitter interface for materials that emit light. Materials that do not
// implement it contribute no emission.
type Emitter interface {
	Emitted(u, v float64, point core.Vec3) core.Vec3
}

// ScatterResult contains the result of material scattering
type ScatterResult struct {
	Scattered   core.Ray  // The scattered ray
	Attenuation core.Vec3 // Color attenuation
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Surface normal at intersection, oriented against the ray
	T         float64   // Parameter t along the ray
	U, V      float64   // Surface texture coordinates
	FrontFace bool      // Whether the ray hit the front face
	Material  Material  // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must have unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
