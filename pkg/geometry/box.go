package geometry

import (
	"math"

	"github.com/mnormal/go-pathtracer/pkg/core"
	"github.com/mnormal/go-pathtracer/pkg/material"
)

// Box represents an axis-aligned box composed of six quad faces
type Box struct {
	sides *HittableList
}

// NewBox creates a box between two opposite corner points, in either order
func NewBox(a, b core.Vec3, mat material.Material) *Box {
	minP := core.NewVec3(math.Min(a.X, b.X), math.Min(a.Y, b.Y), math.Min(a.Z, b.Z))
	maxP := core.NewVec3(math.Max(a.X, b.X), math.Max(a.Y, b.Y), math.Max(a.Z, b.Z))

	dx := core.NewVec3(maxP.X-minP.X, 0, 0)
	dy := core.NewVec3(0, maxP.Y-minP.Y, 0)
	dz := core.NewVec3(0, 0, maxP.Z-minP.Z)

	sides := NewHittableList(
		NewQuad(core.NewVec3(minP.X, minP.Y, maxP.Z), dx, dy, mat),          // front
		NewQuad(core.NewVec3(maxP.X, minP.Y, maxP.Z), dz.Negate(), dy, mat), // right
		NewQuad(core.NewVec3(maxP.X, minP.Y, minP.Z), dx.Negate(), dy, mat), // back
		NewQuad(core.NewVec3(minP.X, minP.Y, minP.Z), dz, dy, mat),          // left
		NewQuad(core.NewVec3(minP.X, maxP.Y, maxP.Z), dx, dz.Negate(), mat), // top
		NewQuad(core.NewVec3(minP.X, minP.Y, minP.Z), dx, dz, mat),          // bottom
	)

	return &Box{sides: sides}
}

// Hit delegates to the six faces
func (b *Box) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	return b.sides.Hit(ray, rayT)
}

// BoundingBox returns the union of the face boxes
func (b *Box) BoundingBox(timeInterval core.Interval) (core.AABB, bool) {
	return b.sides.BoundingBox(timeInterval)
}
