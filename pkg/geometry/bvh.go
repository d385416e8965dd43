package geometry

import (
	"errors"
	"math"
	"sort"

	"github.com/mnormal/go-pathtracer/pkg/core"
	"github.com/mnormal/go-pathtracer/pkg/material"
)

// ErrEmptyScene is returned when a BVH is built over no objects
var ErrEmptyScene = errors.New("geometry: cannot build BVH over empty object list")

// BVH is a binary bounding volume hierarchy over a set of hittables. A
// node is either a leaf holding a single object or a branch with two
// children; every node caches the union box of everything below it.
// Motion is accounted for at build time through the time interval, so the
// cached boxes stay valid for any ray time inside that interval.
type BVH struct {
	left  Hittable // nil for leaves
	right Hittable // nil for leaves
	leaf  Hittable // nil for branches
	bbox  core.AABB
}

// NewBVH builds a hierarchy over the given objects for rays with times in
// timeInterval. The object slice is copied before sorting. Construction
// fails for an empty list and for objects without a bounding box; both are
// scene-authoring errors that must not produce a silently wrong image.
func NewBVH(objects []Hittable, timeInterval core.Interval) (*BVH, error) {
	if len(objects) == 0 {
		return nil, ErrEmptyScene
	}

	sorted := make([]Hittable, len(objects))
	copy(sorted, objects)

	return buildBVH(sorted, timeInterval)
}

func buildBVH(objects []Hittable, timeInterval core.Interval) (*BVH, error) {
	// Split along the axis with the greatest extent of bbox bounds
	axis := 0
	bestRange := math.Inf(-1)
	for a := 0; a < 3; a++ {
		r, err := axisRange(objects, timeInterval, a)
		if err != nil {
			return nil, err
		}
		if r > bestRange {
			bestRange = r
			axis = a
		}
	}

	// Order by bbox min+max along the axis, a cheap centroid proxy
	sort.SliceStable(objects, func(i, j int) bool {
		bi, _ := objects[i].BoundingBox(timeInterval)
		bj, _ := objects[j].BoundingBox(timeInterval)
		ci := bi.Min().Axis(axis) + bi.Max().Axis(axis)
		cj := bj.Min().Axis(axis) + bj.Max().Axis(axis)
		return ci < cj
	})

	if len(objects) == 1 {
		bbox, ok := objects[0].BoundingBox(timeInterval)
		if !ok {
			return nil, ErrNoBoundingBox
		}
		return &BVH{leaf: objects[0], bbox: bbox}, nil
	}

	mid := len(objects) / 2
	left, err := buildBVH(objects[:mid], timeInterval)
	if err != nil {
		return nil, err
	}
	right, err := buildBVH(objects[mid:], timeInterval)
	if err != nil {
		return nil, err
	}

	return &BVH{
		left:  left,
		right: right,
		bbox:  core.SurroundingBox(left.bbox, right.bbox),
	}, nil
}

// axisRange returns the spread of bounding box bounds along one axis
func axisRange(objects []Hittable, timeInterval core.Interval, axis int) (float64, error) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, object := range objects {
		bbox, ok := object.BoundingBox(timeInterval)
		if !ok {
			return 0, ErrNoBoundingBox
		}
		lo = math.Min(lo, bbox.Min().Axis(axis))
		hi = math.Max(hi, bbox.Max().Axis(axis))
	}
	return hi - lo, nil
}

// Hit rejects the ray against the node box, then descends. The left child
// is tested first; a left hit tightens the interval's upper bound before
// the right child is tested, since only a closer right hit can matter.
func (b *BVH) Hit(ray core.Ray, rayT core.Interval) (*material.HitRecord, bool) {
	if !b.bbox.Hit(ray, rayT) {
		return nil, false
	}

	if b.leaf != nil {
		return b.leaf.Hit(ray, rayT)
	}

	leftRec, leftOk := b.left.Hit(ray, rayT)

	rightT := rayT
	if leftOk {
		rightT = core.NewInterval(rayT.Min, leftRec.T)
	}
	rightRec, rightOk := b.right.Hit(ray, rightT)

	switch {
	case leftOk && rightOk:
		if leftRec.T < rightRec.T {
			return leftRec, true
		}
		return rightRec, true
	case leftOk:
		return leftRec, true
	case rightOk:
		return rightRec, true
	default:
		return nil, false
	}
}

// BoundingBox returns the box cached at construction. The query interval
// is ignored; child boxes already cover motion across the interval the
// tree was built with.
func (b *BVH) BoundingBox(timeInterval core.Interval) (core.AABB, bool) {
	return b.bbox, true
}
