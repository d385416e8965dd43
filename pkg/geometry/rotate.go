package geometry

import (
	"errors"
	"math"

	"github.com/mnormal/go-pathtracer/pkg/core"
	"github.com/mnormal/go-pathtracer/pkg/material"
)

// Axis identifies a principal rotation axis
type Axis int

const (
	XAxis Axis = iota
	YAxis
	ZAxis
)

// ErrNoBoundingBox is returned when a construction step requires a bounding
// box the wrapped object cannot provide.
var ErrNoBoundingBox = errors.New("geometry: object has no bounding box")

// indices returns the rotation axis index and the two axes the rotation
// mixes, so one 2D rotation covers all three principal axes.
func (a Axis) indices() (r, u, v int) {
	switch a {
	case XAxis:
		return 0, 1, 2
	case YAxis:
		return 1, 2, 0
	default:
		return 2, 0, 1
	}
}

// Rotate rotates a wrapped hittable about a principal axis. Rays are
// rotated into object space before delegation; hit points and normals are
// rotated back. The bounding box is the axis-aligned envelope of the
// wrapped box's eight rotated corners, computed once at construction.
type Rotate struct {
	Object   Hittable
	axis     Axis
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotate creates a rotation wrapper with the angle given in degrees.
// It fails when the wrapped object cannot provide a bounding box.
func NewRotate(object Hittable, axis Axis, angleDegrees float64) (*Rotate, error) {
	bbox, ok := object.BoundingBox(core.UnitInterval)
	if !ok {
		return nil, ErrNoBoundingBox
	}

	radians := angleDegrees * math.Pi / 180.0
	sinTheta := math.Sin(radians)
	cosTheta := math.Cos(radians)

	rAxis, uAxis, vAxis := axis.indices()

	minP := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	maxP := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))

	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				r := fk*bbox.Max().Axis(rAxis) + (1-fk)*bbox.Min().Axis(rAxis)
				u := fi*bbox.Max().Axis(uAxis) + (1-fi)*bbox.Min().Axis(uAxis)
				v := fj*bbox.Max().Axis(vAxis) + (1-fj)*bbox.Min().Axis(vAxis)

				newU := cosTheta*u - sinTheta*v
				newV := sinTheta*u + cosTheta*v

				minP.SetAxis(rAxis, math.Min(minP.Axis(rAxis), r))
				minP.SetAxis(uAxis, math.Min(minP.Axis(uAxis), newU))
				minP.SetAxis(vAxis, math.Min(minP.Axis(vAxis), newV))
				maxP.SetAxis(rAxis, math.Max(maxP.Axis(rAxis), r))
				maxP.SetAxis(uAxis, math.Max(maxP.Axis(uAxis), newU))
				maxP.SetAxis(vAxis, math.Max(maxP.Axis(vAxis), newV))
			}
		}
	}

	return &Rotate{
		Object:   object,
		axis:     axis,
		sinTheta: sinTheta,
		cosTheta: cosTheta,
		bbox:     core.NewAABBFromPoints(minP, maxP),
	}, nil
}

// rotateInto applies the inverse rotation, taking a world-space vector
// into object space.
func (rt *Rotate) rotateInto(v core.Vec3) core.Vec3 {
	_, uAxis, vAxis := rt.axis.indices()
	out := v
	out.SetAxis(uAxis, rt.cosTheta*v.Axis(uAxis)+rt.sinTheta*v.Axis(vAxis))
	out.SetAxis(vAxis, rt.cosTheta*v.Axis(vAxis)-rt.sinTheta*v.Axis(uAxis))
	return out
}

// rotateOut applies the forward rotation, taking an object-space vector
// back to world space.
func (rt *Rotate) rotateOut(v core.Vec3) core.Vec3 {
	_, uAxis, vAxis := rt.axis.indices()
	out := v
	out.SetAxis(uAxis, rt.cosTheta*v.Axis(uAxis)-rt.sinTheta*v.Axis(vAxis))
	out.SetAxis(vAxis, rt.cosTheta*v.Axis(vAxis)+rt.sinTheta*v.Axis(uAxis))
	return out
}

// Hit rotates the ray into object space, delegates, and rotates the hit
// point and normal back out.
func (rt *Rotate) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	rotated := core.NewRayAt(rt.rotateInto(ray.Origin), rt.rotateInto(ray.Direction), ray.Time)

	rec, ok := rt.Object.Hit(rotated, rayT)
	if !ok {
		return nil, false
	}

	rec.Point = rt.rotateOut(rec.Point)
	rec.Normal = rt.rotateOut(rec.Normal)
	return rec, true
}

// BoundingBox returns the rotated envelope computed at construction
func (rt *Rotate) BoundingBox(timeInterval core.Interval) (core.AABB, bool) {
	return rt.bbox, true
}
