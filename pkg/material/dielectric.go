package material

import (
	"math"
	"math/rand"

	"github.com/mnormal/go-pathtracer/pkg/core"
)

// Dielectric represents a transparent material like glass that both
// reflects and refracts
type Dielectric struct {
	RefractiveIndex float64 // e.g. 1.5 for glass
}

// NewDielectric creates a new dielectric material
func NewDielectric(refractiveIndex float64) *Dielectric {
	return &Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter refracts the ray using Snell's law or reflects it when refraction
// is impossible (total internal reflection) or when a uniform draw falls
// below Schlick's reflectance. Clear glass absorbs nothing.
func (d *Dielectric) Scatter(rayIn core.Ray, rec HitRecord, random *rand.Rand) (ScatterResult, bool) {
	var refractionRatio float64
	if rec.FrontFace {
		refractionRatio = 1.0 / d.RefractiveIndex
	} else {
		refractionRatio = d.RefractiveIndex
	}

	unitDirection := rayIn.Direction.Normalize()
	cosTheta := math.Min(unitDirection.Negate().Dot(rec.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	cannotRefract := refractionRatio*sinTheta > 1.0

	var direction core.Vec3
	if cannotRefract || Reflectance(cosTheta, refractionRatio) > random.Float64() {
		direction = Reflect(unitDirection, rec.Normal)
	} else {
		direction = Refract(unitDirection, rec.Normal, refractionRatio)
	}

	return ScatterResult{
		Scattered:   core.NewRayAt(rec.Point, direction, rayIn.Time),
		Attenuation: core.NewVec3(1, 1, 1),
	}, true
}
