package geometry

import (
	"math"

	"github.com/mnormal/go-pathtracer/pkg/core"
	"github.com/mnormal/go-pathtracer/pkg/material"
)

// Quad represents a planar parallelogram defined by a corner point Q and
// two edge vectors U and V.
type Quad struct {
	Q        core.Vec3
	U        core.Vec3
	V        core.Vec3
	Material material.Material

	normal core.Vec3 // Unit plane normal, U × V normalized
	d      float64   // Plane equation constant: normal · Q
	w      core.Vec3 // Cached basis vector for planar coordinates
	bbox   core.AABB
}

// NewQuad creates a new quad and precomputes its plane and planar basis.
// The bounding box is padded since the quad itself is flat.
func NewQuad(q, u, v core.Vec3, mat material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	bbox := core.SurroundingBox(
		core.NewAABBFromPoints(q, q.Add(u).Add(v)),
		core.NewAABBFromPoints(q.Add(u), q.Add(v)),
	).PadToMinimum(0.0001)

	return &Quad{
		Q:        q,
		U:        u,
		V:        v,
		Material: mat,
		normal:   normal,
		d:        normal.Dot(q),
		w:        n.Multiply(1.0 / n.Dot(n)),
		bbox:     bbox,
	}
}

// Hit intersects the ray with the quad's plane, then rejects intersections
// whose planar coordinates fall outside the [0,1]² parallelogram.
func (q *Quad) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	denominator := q.normal.Dot(ray.Direction)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.d - q.normal.Dot(ray.Origin)) / denominator
	if !rayT.Contains(t) {
		return nil, false
	}

	intersection := ray.At(t)
	planarHit := intersection.Subtract(q.Q)
	alpha := q.w.Dot(planarHit.Cross(q.V))
	beta := q.w.Dot(q.U.Cross(planarHit))

	if !core.UnitInterval.Contains(alpha) || !core.UnitInterval.Contains(beta) {
		return nil, false
	}

	rec := &material.HitRecord{
		T:        t,
		Point:    intersection,
		U:        alpha,
		V:        beta,
		Material: q.Material,
	}
	rec.SetFaceNormal(ray, q.normal)

	return rec, true
}

// BoundingBox returns the padded box spanned by the quad's corners
func (q *Quad) BoundingBox(timeInterval core.Interval) (core.AABB, bool) {
	return q.bbox, true
}
