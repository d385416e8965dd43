package geometry

import (
	"math"
	"testing"

	"github.com/mnormal/go-pathtracer/pkg/core"
)

func TestQuad_Hit(t *testing.T) {
	// Unit quad in the z=0 plane spanning [0,1]x[0,1]
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), testMaterial())

	tests := []struct {
		name      string
		ray       core.Ray
		expectHit bool
		expectedU float64
		expectedV float64
	}{
		{
			name:      "center hit",
			ray:       core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, -1)),
			expectHit: true,
			expectedU: 0.5,
			expectedV: 0.5,
		},
		{
			name:      "corner hit",
			ray:       core.NewRay(core.NewVec3(0, 0, 1), core.NewVec3(0, 0, -1)),
			expectHit: true,
			expectedU: 0,
			expectedV: 0,
		},
		{
			name:      "asymmetric interior hit",
			ray:       core.NewRay(core.NewVec3(0.25, 0.75, 1), core.NewVec3(0, 0, -1)),
			expectHit: true,
			expectedU: 0.25,
			expectedV: 0.75,
		},
		{
			name:      "in plane but outside the quad",
			ray:       core.NewRay(core.NewVec3(1.5, 0.5, 1), core.NewVec3(0, 0, -1)),
			expectHit: false,
		},
		{
			name:      "parallel to the plane",
			ray:       core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(1, 0, 0)),
			expectHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, hit := quad.Hit(tt.ray, core.NewInterval(0.001, math.Inf(1)))
			if hit != tt.expectHit {
				t.Fatalf("Expected hit=%t, got %t", tt.expectHit, hit)
			}
			if !hit {
				return
			}
			if math.Abs(rec.U-tt.expectedU) > 1e-9 || math.Abs(rec.V-tt.expectedV) > 1e-9 {
				t.Errorf("Expected uv=(%f, %f), got (%f, %f)", tt.expectedU, tt.expectedV, rec.U, rec.V)
			}
		})
	}
}

func TestQuad_Hit_FaceOrientation(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), testMaterial())

	front, hit := quad.Hit(core.NewRay(core.NewVec3(0.5, 0.5, 1), core.NewVec3(0, 0, -1)), core.NewInterval(0.001, math.Inf(1)))
	if !hit {
		t.Fatal("Expected hit from the front")
	}
	if !front.FrontFace || !vec3Equal(front.Normal, core.NewVec3(0, 0, 1), 1e-9) {
		t.Errorf("Expected front face with normal (0,0,1), got front=%t normal=%v", front.FrontFace, front.Normal)
	}

	back, hit := quad.Hit(core.NewRay(core.NewVec3(0.5, 0.5, -1), core.NewVec3(0, 0, 1)), core.NewInterval(0.001, math.Inf(1)))
	if !hit {
		t.Fatal("Expected hit from the back")
	}
	if back.FrontFace || !vec3Equal(back.Normal, core.NewVec3(0, 0, -1), 1e-9) {
		t.Errorf("Expected back face with normal (0,0,-1), got front=%t normal=%v", back.FrontFace, back.Normal)
	}
}

func TestQuad_BoundingBoxIsPadded(t *testing.T) {
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0), testMaterial())
	box, ok := quad.BoundingBox(core.UnitInterval)
	if !ok {
		t.Fatal("Expected a bounding box")
	}
	// The quad is flat in z, the box must not be.
	if box.Z.Size() <= 0 {
		t.Errorf("Expected padded z extent, got %f", box.Z.Size())
	}
	if box.X.Size() < 1 || box.Y.Size() < 1 {
		t.Errorf("Expected box to span the quad, got x=%f y=%f", box.X.Size(), box.Y.Size())
	}
}

func TestQuad_NonAxisAligned(t *testing.T) {
	// Parallelogram tilted 45 degrees about the x axis
	quad := NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 1), testMaterial())
	rec, hit := quad.Hit(core.NewRay(core.NewVec3(0.5, 0.5, 2), core.NewVec3(0, 0, -1)), core.NewInterval(0.001, math.Inf(1)))
	if !hit {
		t.Fatal("Expected hit on tilted quad")
	}
	if math.Abs(rec.U-0.5) > 1e-9 || math.Abs(rec.V-0.5) > 1e-9 {
		t.Errorf("Expected uv=(0.5, 0.5), got (%f, %f)", rec.U, rec.V)
	}
}
