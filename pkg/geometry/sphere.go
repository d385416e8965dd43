package geometry

import (
	"math"

	"github.com/mnormal/go-pathtracer/pkg/core"
	"github.com/mnormal/go-pathtracer/pkg/material"
)

// Sphere represents a sphere whose center may move linearly over the
// shutter interval. The center path is stored as a ray: origin is the
// position at time 0, direction is the displacement over time ∈ [0,1].
type Sphere struct {
	Center   core.Ray
	Radius   float64
	Material material.Material
	bbox     core.AABB
}

// NewSphere creates a stationary sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	rvec := core.NewVec3(radius, radius, radius)
	return &Sphere{
		Center:   core.NewRay(center, core.Vec3{}),
		Radius:   radius,
		Material: mat,
		bbox:     core.NewAABBFromPoints(center.Subtract(rvec), center.Add(rvec)),
	}
}

// NewMovingSphere creates a sphere that moves from center1 at time 0 to
// center2 at time 1. Its bounding box covers the whole path.
func NewMovingSphere(center1, center2 core.Vec3, radius float64, mat material.Material) *Sphere {
	rvec := core.NewVec3(radius, radius, radius)
	box1 := core.NewAABBFromPoints(center1.Subtract(rvec), center1.Add(rvec))
	box2 := core.NewAABBFromPoints(center2.Subtract(rvec), center2.Add(rvec))
	return &Sphere{
		Center:   core.NewRay(center1, center2.Subtract(center1)),
		Radius:   radius,
		Material: mat,
		bbox:     core.SurroundingBox(box1, box2),
	}
}

// Hit solves |O + tD - C(time)|² = r² using the half-b quadratic form.
// Only the smaller root is considered; when it falls outside rayT the hit
// is reported as a miss even if the larger root would qualify. This
// matches the historical behavior and under-reports intersections from
// inside the sphere.
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	currentCenter := s.Center.At(ray.Time)
	oc := ray.Origin.Subtract(currentCenter)

	a := ray.Direction.Dot(ray.Direction)
	halfB := oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}

	root := (-halfB - math.Sqrt(discriminant)) / a
	if !rayT.Surrounds(root) {
		return nil, false
	}

	rec := &material.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}
	outwardNormal := rec.Point.Subtract(currentCenter).Multiply(1.0 / s.Radius)
	rec.SetFaceNormal(ray, outwardNormal)
	rec.U, rec.V = sphereUV(outwardNormal)

	return rec, true
}

// BoundingBox returns the precomputed box covering the sphere's motion
func (s *Sphere) BoundingBox(timeInterval core.Interval) (core.AABB, bool) {
	return s.bbox, true
}

// sphereUV maps a point on the unit sphere to [0,1]² spherical coordinates
func sphereUV(p core.Vec3) (u, v float64) {
	theta := math.Acos(-p.Y)
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return phi / (2 * math.Pi), theta / math.Pi
}
