package scene

import (
	"math/rand"

	"github.com/mnormal/go-pathtracer/pkg/core"
	"github.com/mnormal/go-pathtracer/pkg/geometry"
	"github.com/mnormal/go-pathtracer/pkg/loaders"
	"github.com/mnormal/go-pathtracer/pkg/material"
	"github.com/mnormal/go-pathtracer/pkg/renderer"
)

// Final is the showcase scene: a ground of random-height boxes, a moving
// sphere, glass and brushed metal spheres, a subsurface glass ball, a
// marble sphere, a rotated cloud of a thousand small spheres, and the
// earth, all under one area light. Nested object groups get their own
// acceleration structures.
func Final() (*Scene, error) {
	random := rand.New(rand.NewSource(1984))
	var objects []geometry.Hittable

	ground := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	const boxesPerSide = 20
	groundBoxes := make([]geometry.Hittable, 0, boxesPerSide*boxesPerSide)
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := 1.0 + 100.0*random.Float64()
			groundBoxes = append(groundBoxes, geometry.NewBox(
				core.NewVec3(x0, 0, z0),
				core.NewVec3(x0+w, y1, z0+w),
				ground))
		}
	}
	groundBVH, err := geometry.NewBVH(groundBoxes, core.UnitInterval)
	if err != nil {
		return nil, err
	}
	objects = append(objects, groundBVH)

	objects = append(objects, geometry.NewQuad(
		core.NewVec3(123, 554, 147), core.NewVec3(300, 0, 0), core.NewVec3(0, 0, 265),
		material.NewDiffuseLight(core.NewVec3(7, 7, 7))))

	center1 := core.NewVec3(400, 400, 200)
	center2 := center1.Add(core.NewVec3(30, 0, 0))
	objects = append(objects,
		geometry.NewMovingSphere(center1, center2, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))),
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
	)

	// A wisp of white haze bounded by an invisible glass sphere.
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	objects = append(objects, geometry.NewConstantMedium(boundary, 0.0001, core.NewVec3(1, 1, 1)))

	noise := material.NewNoiseTexture(0.2, random)
	objects = append(objects, geometry.NewSphere(core.NewVec3(220, 280, 300), 80, material.NewTexturedLambertian(noise)))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cloud := make([]geometry.Hittable, 0, 1000)
	for i := 0; i < 1000; i++ {
		cloud = append(cloud, geometry.NewSphere(core.RandomVec3Range(random, 0, 165), 10, white))
	}
	cloudBVH, err := geometry.NewBVH(cloud, core.UnitInterval)
	if err != nil {
		return nil, err
	}
	cloudRot, err := geometry.NewRotate(cloudBVH, geometry.YAxis, 15)
	if err != nil {
		return nil, err
	}
	objects = append(objects, geometry.NewTranslate(cloudRot, core.NewVec3(-100, 270, 395)))

	earthTexture, err := loaders.LoadImageTexture("earthmap.png")
	if err != nil {
		Logger.Printf("final scene: %v, rendering with placeholder texture", err)
	}
	objects = append(objects, geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(earthTexture)))

	world, err := newWorld(objects)
	if err != nil {
		return nil, err
	}
	return &Scene{
		World: world,
		Camera: renderer.CameraConfig{
			AspectRatio:     16.0 / 9.0,
			ImageWidth:      800,
			SamplesPerPixel: 250,
			MaxDepth:        50,
			VFov:            40,
			LookFrom:        core.NewVec3(478, 278, -600),
			LookAt:          core.NewVec3(278, 278, 278),
			VUp:             core.NewVec3(0, 1, 0),
			FocusDistance:   10,
			Background:      core.Vec3{},
		},
	}, nil
}
