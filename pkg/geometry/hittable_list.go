package geometry

import (
	"github.com/mnormal/go-pathtracer/pkg/core"
	"github.com/mnormal/go-pathtracer/pkg/material"
)

// HittableList is a flat aggregate of hittables searched linearly
type HittableList struct {
	Objects []Hittable
}

// NewHittableList creates a list from the given objects
func NewHittableList(objects ...Hittable) *HittableList {
	return &HittableList{Objects: objects}
}

// Add appends an object to the list
func (l *HittableList) Add(object Hittable) {
	l.Objects = append(l.Objects, object)
}

// Clear removes all objects
func (l *HittableList) Clear() {
	l.Objects = nil
}

// Hit scans every member, shrinking the upper search bound to the closest
// hit found so far; farther objects are then rejected by their own tests.
func (l *HittableList) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := rayT.Max

	for _, object := range l.Objects {
		if rec, ok := object.Hit(ray, core.NewInterval(rayT.Min, closestSoFar)); ok {
			closestSoFar = rec.T
			closest = rec
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all member boxes, or false when the
// list is empty or contains an unbounded member.
func (l *HittableList) BoundingBox(timeInterval core.Interval) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	bbox, ok := l.Objects[0].BoundingBox(timeInterval)
	if !ok {
		return core.AABB{}, false
	}
	for _, object := range l.Objects[1:] {
		other, ok := object.BoundingBox(timeInterval)
		if !ok {
			return core.AABB{}, false
		}
		bbox = core.SurroundingBox(bbox, other)
	}

	return bbox, true
}
