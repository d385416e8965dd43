package core

import "math"

// AABB represents an axis-aligned bounding box as one interval per axis
type AABB struct {
	X, Y, Z Interval
}

// NewAABB creates a new AABB from per-axis intervals
func NewAABB(x, y, z Interval) AABB {
	return AABB{X: x, Y: y, Z: z}
}

// NewAABBFromPoints creates the minimal box containing the two points,
// treating them as opposite corners in either order.
func NewAABBFromPoints(a, b Vec3) AABB {
	return AABB{
		X: Interval{Min: math.Min(a.X, b.X), Max: math.Max(a.X, b.X)},
		Y: Interval{Min: math.Min(a.Y, b.Y), Max: math.Max(a.Y, b.Y)},
		Z: Interval{Min: math.Min(a.Z, b.Z), Max: math.Max(a.Z, b.Z)},
	}
}

// SurroundingBox returns the tightest box enclosing both boxes
func SurroundingBox(a, b AABB) AABB {
	return AABB{
		X: NewIntervalFromIntervals(a.X, b.X),
		Y: NewIntervalFromIntervals(a.Y, b.Y),
		Z: NewIntervalFromIntervals(a.Z, b.Z),
	}
}

// AxisInterval returns the interval for axis 0 (X), 1 (Y) or 2 (Z).
// Any other axis is a programmer error and panics.
func (a AABB) AxisInterval(axis int) Interval {
	switch axis {
	case 0:
		return a.X
	case 1:
		return a.Y
	case 2:
		return a.Z
	default:
		panic("core: AABB axis must be 0, 1 or 2")
	}
}

// Min returns the corner with the smallest coordinates
func (a AABB) Min() Vec3 {
	return Vec3{X: a.X.Min, Y: a.Y.Min, Z: a.Z.Min}
}

// Max returns the corner with the largest coordinates
func (a AABB) Max() Vec3 {
	return Vec3{X: a.X.Max, Y: a.Y.Max, Z: a.Z.Max}
}

// Hit tests the ray against the box using the slab method, progressively
// intersecting the per-axis entry/exit parameters with rayT and exiting
// early as soon as the running interval collapses.
func (a AABB) Hit(ray Ray, rayT Interval) bool {
	tMin, tMax := rayT.Min, rayT.Max
	for axis := 0; axis < 3; axis++ {
		slab := a.AxisInterval(axis)
		invD := 1.0 / ray.Direction.Axis(axis)
		t0 := (slab.Min - ray.Origin.Axis(axis)) * invD
		t1 := (slab.Max - ray.Origin.Axis(axis)) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		tMin = math.Max(tMin, t0)
		tMax = math.Min(tMax, t1)
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// PadToMinimum widens any axis thinner than delta so planar boxes
// survive the slab test.
func (a AABB) PadToMinimum(delta float64) AABB {
	padded := a
	if padded.X.Size() < delta {
		padded.X = padded.X.Expand(delta)
	}
	if padded.Y.Size() < delta {
		padded.Y = padded.Y.Expand(delta)
	}
	if padded.Z.Size() < delta {
		padded.Z = padded.Z.Expand(delta)
	}
	return padded
}

// Add returns the box translated by offset
func (a AABB) Add(offset Vec3) AABB {
	return AABB{
		X: a.X.Add(offset.X),
		Y: a.Y.Add(offset.Y),
		Z: a.Z.Add(offset.Z),
	}
}

// LongestAxis returns the axis (0=X, 1=Y, 2=Z) with the greatest extent
func (a AABB) LongestAxis() int {
	if a.X.Size() > a.Y.Size() && a.X.Size() > a.Z.Size() {
		return 0
	}
	if a.Y.Size() > a.Z.Size() {
		return 1
	}
	return 2
}
