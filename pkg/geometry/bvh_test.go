package geometry

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/mnormal/go-pathtracer/pkg/core"
)

func TestBVH_EmptySceneFails(t *testing.T) {
	if _, err := NewBVH(nil, core.UnitInterval); !errors.Is(err, ErrEmptyScene) {
		t.Errorf("Expected ErrEmptyScene, got %v", err)
	}
}

func TestBVH_UnboundedObjectFails(t *testing.T) {
	objects := []Hittable{
		NewSphere(core.NewVec3(0, 0, 0), 1, testMaterial()),
		NewHittableList(), // empty list has no bounding box
	}
	if _, err := NewBVH(objects, core.UnitInterval); !errors.Is(err, ErrNoBoundingBox) {
		t.Errorf("Expected ErrNoBoundingBox, got %v", err)
	}
}

func TestBVH_SingleObject(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -2), 0.5, testMaterial())
	bvh, err := NewBVH([]Hittable{sphere}, core.UnitInterval)
	if err != nil {
		t.Fatalf("Expected build to succeed, got %v", err)
	}

	rec, hit := bvh.Hit(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1)), core.NewInterval(0.001, math.Inf(1)))
	if !hit {
		t.Fatal("Expected hit through BVH")
	}
	if math.Abs(rec.T-1.5) > 1e-9 {
		t.Errorf("Expected t=1.5, got t=%f", rec.T)
	}

	box, ok := bvh.BoundingBox(core.UnitInterval)
	if !ok {
		t.Fatal("Expected a bounding box")
	}
	directBox, _ := sphere.BoundingBox(core.UnitInterval)
	if box != directBox {
		t.Errorf("Expected leaf box %v, got %v", directBox, box)
	}
}

func TestBVH_DoesNotMutateInput(t *testing.T) {
	objects := []Hittable{
		NewSphere(core.NewVec3(5, 0, 0), 0.5, testMaterial()),
		NewSphere(core.NewVec3(-5, 0, 0), 0.5, testMaterial()),
		NewSphere(core.NewVec3(0, 0, 0), 0.5, testMaterial()),
	}
	first := objects[0]
	if _, err := NewBVH(objects, core.UnitInterval); err != nil {
		t.Fatalf("Expected build to succeed, got %v", err)
	}
	if objects[0] != first {
		t.Error("Expected input slice order to be preserved")
	}
}

// The hierarchy must report exactly the same nearest hits as a linear scan.
func TestBVH_MatchesLinearScan(t *testing.T) {
	random := rand.New(rand.NewSource(99))

	for _, count := range []int{1, 2, 3, 7, 50, 300} {
		objects := make([]Hittable, 0, count)
		for i := 0; i < count; i++ {
			center := core.NewVec3(
				random.Float64()*20-10,
				random.Float64()*20-10,
				random.Float64()*20-10,
			)
			objects = append(objects, NewSphere(center, 0.3+random.Float64(), testMaterial()))
		}

		bvh, err := NewBVH(objects, core.UnitInterval)
		if err != nil {
			t.Fatalf("count=%d: expected build to succeed, got %v", count, err)
		}
		linear := NewHittableList(objects...)

		for trial := 0; trial < 200; trial++ {
			origin := core.NewVec3(
				random.Float64()*40-20,
				random.Float64()*40-20,
				random.Float64()*40-20,
			)
			direction := core.RandomUnitVector(random)
			ray := core.NewRay(origin, direction)
			rayT := core.NewInterval(0.001, math.Inf(1))

			bvhRec, bvhHit := bvh.Hit(ray, rayT)
			linRec, linHit := linear.Hit(ray, rayT)

			if bvhHit != linHit {
				t.Fatalf("count=%d trial=%d: BVH hit=%t, linear hit=%t", count, trial, bvhHit, linHit)
			}
			if bvhHit && math.Abs(bvhRec.T-linRec.T) > 1e-9 {
				t.Fatalf("count=%d trial=%d: BVH t=%f, linear t=%f", count, trial, bvhRec.T, linRec.T)
			}
		}
	}
}

func TestBVH_MovingSphereBox(t *testing.T) {
	moving := NewMovingSphere(core.NewVec3(0, 0, 0), core.NewVec3(10, 0, 0), 1, testMaterial())
	bvh, err := NewBVH([]Hittable{moving}, core.UnitInterval)
	if err != nil {
		t.Fatalf("Expected build to succeed, got %v", err)
	}
	box, _ := bvh.BoundingBox(core.UnitInterval)
	if box.Min().X > -1 || box.Max().X < 11 {
		t.Errorf("Expected box to cover the motion path, got [%v, %v]", box.Min(), box.Max())
	}

	// A ray fired late in the shutter interval must still find the sphere.
	ray := core.NewRayAt(core.NewVec3(10, 0, 5), core.NewVec3(0, 0, -1), 1)
	if _, hit := bvh.Hit(ray, core.NewInterval(0.001, math.Inf(1))); !hit {
		t.Error("Expected hit on moving sphere at time 1")
	}
}
