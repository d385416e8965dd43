package geometry

import (
	"github.com/mnormal/go-pathtracer/pkg/core"
	"github.com/mnormal/go-pathtracer/pkg/material"
)

// Hittable is anything a ray can be tested against for intersection.
// Hit reports the closest intersection with a parameter inside rayT, or
// false when the ray misses. BoundingBox reports the box enclosing the
// object over the given time interval; the second return is false for
// objects that cannot be bounded, such as an empty aggregate.
type Hittable interface {
	Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool)
	BoundingBox(timeInterval core.Interval) (core.AABB, bool)
}
