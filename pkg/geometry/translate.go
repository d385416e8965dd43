package geometry

import (
	"github.com/mnormal/go-pathtracer/pkg/core"
	"github.com/mnormal/go-pathtracer/pkg/material"
)

// Translate shifts a wrapped hittable by a fixed offset. The ray is moved
// into object space for the intersection test and the hit point is moved
// back afterwards; the normal is unaffected by translation.
type Translate struct {
	Object Hittable
	Offset core.Vec3
}

// NewTranslate creates a translation wrapper around object
func NewTranslate(object Hittable, offset core.Vec3) *Translate {
	return &Translate{Object: object, Offset: offset}
}

// Hit tests the offset ray against the wrapped object
func (t *Translate) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	offsetRay := core.NewRayAt(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	rec, ok := t.Object.Hit(offsetRay, rayT)
	if !ok {
		return nil, false
	}

	rec.Point = rec.Point.Add(t.Offset)
	return rec, true
}

// BoundingBox returns the wrapped box translated by the offset
func (t *Translate) BoundingBox(timeInterval core.Interval) (core.AABB, bool) {
	bbox, ok := t.Object.BoundingBox(timeInterval)
	if !ok {
		return core.AABB{}, false
	}
	return bbox.Add(t.Offset), true
}
