package scene

import (
	"math/rand"

	"github.com/mnormal/go-pathtracer/pkg/core"
	"github.com/mnormal/go-pathtracer/pkg/geometry"
	"github.com/mnormal/go-pathtracer/pkg/loaders"
	"github.com/mnormal/go-pathtracer/pkg/material"
	"github.com/mnormal/go-pathtracer/pkg/renderer"
)

// previewCamera is the shared wide-angle preview setup used by the
// lighter demo scenes
func previewCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      600,
		SamplesPerPixel: 20,
		MaxDepth:        10,
		VFov:            80,
		LookFrom:        core.NewVec3(0, 0, 9),
		LookAt:          core.NewVec3(0, 0, 0),
		VUp:             core.NewVec3(0, 1, 0),
		FocusDistance:   10,
		Background:      core.NewVec3(0.7, 0.8, 1.0),
	}
}

func groundChecker() material.Texture {
	return material.NewCheckerColors(0.32,
		core.NewVec3(0.2, 0.1, 0.3),
		core.NewVec3(0.9, 0.9, 0.9))
}

// BouncingSpheres is the classic random sphere field with motion blur
// and a defocused camera.
func BouncingSpheres() (*Scene, error) {
	random := rand.New(rand.NewSource(1984))

	checker := material.NewCheckerColors(0.32,
		core.NewVec3(0.2, 0.3, 0.1),
		core.NewVec3(0.9, 0.9, 0.9))
	objects := []geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(checker)),
	}

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := random.Float64()
			center := core.NewVec3(
				float64(a)+0.9*random.Float64(),
				0.2,
				float64(b)+0.9*random.Float64(),
			)
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}
			switch {
			case chooseMat < 0.8:
				albedo := core.RandomVec3(random).MultiplyVec(core.RandomVec3(random))
				center2 := center.Add(core.NewVec3(0, 0.5*random.Float64(), 0))
				objects = append(objects, geometry.NewMovingSphere(center, center2, 0.2, material.NewLambertian(albedo)))
			case chooseMat < 0.95:
				albedo := core.RandomVec3Range(random, 0.5, 1.0)
				fuzz := 0.5 * random.Float64()
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				objects = append(objects, geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	objects = append(objects,
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
	)

	world, err := newWorld(objects)
	if err != nil {
		return nil, err
	}
	camera := previewCamera()
	camera.VFov = 20
	camera.LookFrom = core.NewVec3(13, 2, 3)
	camera.DefocusAngle = 0.6
	return &Scene{World: world, Camera: camera}, nil
}

// CheckeredSpheres renders two giant checkered spheres touching at the origin.
func CheckeredSpheres() (*Scene, error) {
	world, err := newWorld([]geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, material.NewTexturedLambertian(groundChecker())),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, material.NewTexturedLambertian(groundChecker())),
	})
	if err != nil {
		return nil, err
	}
	return &Scene{World: world, Camera: previewCamera()}, nil
}

// PerlinSpheres renders a marble-textured sphere resting on a marble ground.
func PerlinSpheres() (*Scene, error) {
	random := rand.New(rand.NewSource(1984))
	noise := material.NewNoiseTexture(4.0, random)
	world, err := newWorld([]geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewTexturedLambertian(noise)),
		geometry.NewSphere(core.NewVec3(0, -1200, 0), 1200, material.NewTexturedLambertian(noise)),
	})
	if err != nil {
		return nil, err
	}
	return &Scene{World: world, Camera: previewCamera()}, nil
}

// Earth maps an equirectangular earth photo onto a sphere. A missing or
// unreadable earthmap.png degrades to the placeholder texture.
func Earth() (*Scene, error) {
	texture, err := loaders.LoadImageTexture("earthmap.png")
	if err != nil {
		Logger.Printf("earth scene: %v, rendering with placeholder texture", err)
	}
	world, err := newWorld([]geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(texture)),
	})
	if err != nil {
		return nil, err
	}
	return &Scene{World: world, Camera: previewCamera()}, nil
}

// Quads renders five colored quads facing the camera head-on.
func Quads() (*Scene, error) {
	world, err := newWorld([]geometry.Hittable{
		geometry.NewQuad(core.NewVec3(-3, -2, 5), core.NewVec3(0, 0, -4), core.NewVec3(0, 4, 0),
			material.NewLambertian(core.NewVec3(1.0, 0.2, 0.2))),
		geometry.NewQuad(core.NewVec3(-2, -2, 0), core.NewVec3(4, 0, 0), core.NewVec3(0, 4, 0),
			material.NewLambertian(core.NewVec3(0.2, 1.0, 0.2))),
		geometry.NewQuad(core.NewVec3(3, -2, 1), core.NewVec3(0, 0, 4), core.NewVec3(0, 4, 0),
			material.NewLambertian(core.NewVec3(0.2, 0.2, 1.0))),
		geometry.NewQuad(core.NewVec3(-2, 3, 1), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, 4),
			material.NewLambertian(core.NewVec3(1.0, 0.5, 0.0))),
		geometry.NewQuad(core.NewVec3(-2, -3, 5), core.NewVec3(4, 0, 0), core.NewVec3(0, 0, -4),
			material.NewLambertian(core.NewVec3(0.2, 0.8, 0.8))),
	})
	if err != nil {
		return nil, err
	}
	return &Scene{World: world, Camera: previewCamera()}, nil
}

// SimpleLight places a quad light and a glowing sphere over a marble sphere
// in an otherwise black world.
func SimpleLight() (*Scene, error) {
	random := rand.New(rand.NewSource(1984))
	noise := material.NewNoiseTexture(4.0, random)
	world, err := newWorld([]geometry.Hittable{
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewTexturedLambertian(noise)),
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(groundChecker())),
		geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0),
			material.NewDiffuseLight(core.NewVec3(4, 4, 4))),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, material.NewDiffuseLight(core.NewVec3(4, 4, 4))),
	})
	if err != nil {
		return nil, err
	}
	camera := previewCamera()
	camera.VFov = 20
	camera.LookFrom = core.NewVec3(26, 3, 6)
	camera.LookAt = core.NewVec3(0, 2, 0)
	camera.Background = core.Vec3{}
	return &Scene{World: world, Camera: camera}, nil
}
