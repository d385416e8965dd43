package scene

import (
	"github.com/mnormal/go-pathtracer/pkg/core"
	"github.com/mnormal/go-pathtracer/pkg/geometry"
	"github.com/mnormal/go-pathtracer/pkg/material"
	"github.com/mnormal/go-pathtracer/pkg/renderer"
)

func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		AspectRatio:     1.0,
		ImageWidth:      400,
		SamplesPerPixel: 50,
		MaxDepth:        50,
		VFov:            40,
		LookFrom:        core.NewVec3(278, 278, -800),
		LookAt:          core.NewVec3(278, 278, 0),
		VUp:             core.NewVec3(0, 1, 0),
		FocusDistance:   10,
		Background:      core.Vec3{},
	}
}

// cornellWalls builds the five walls and the ceiling light of the 555-unit
// Cornell box
func cornellWalls(lightColor core.Vec3, lightQ, lightU, lightV core.Vec3) []geometry.Hittable {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	light := material.NewDiffuseLight(lightColor)
	return []geometry.Hittable{
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), red),
		geometry.NewQuad(core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), core.NewVec3(0, 0, 555), green),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(555, 0, 0), core.NewVec3(0, 0, 555), white),
		geometry.NewQuad(core.NewVec3(555, 555, 555), core.NewVec3(-555, 0, 0), core.NewVec3(0, 0, -555), white),
		geometry.NewQuad(core.NewVec3(0, 0, 555), core.NewVec3(555, 0, 0), core.NewVec3(0, 555, 0), white),
		geometry.NewQuad(lightQ, lightU, lightV, light),
	}
}

// cornellBoxes builds the tall and short rotated boxes at their usual spots
func cornellBoxes(mat material.Material) (tall, short geometry.Hittable, err error) {
	tallRot, err := geometry.NewRotate(
		geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 333, 165), mat),
		geometry.YAxis, 15)
	if err != nil {
		return nil, nil, err
	}
	shortRot, err := geometry.NewRotate(
		geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), mat),
		geometry.YAxis, -18)
	if err != nil {
		return nil, nil, err
	}
	tall = geometry.NewTranslate(tallRot, core.NewVec3(265, 0, 295))
	short = geometry.NewTranslate(shortRot, core.NewVec3(130, 0, 65))
	return tall, short, nil
}

// CornellBox is the standard Cornell box with two rotated white boxes.
func CornellBox() (*Scene, error) {
	objects := cornellWalls(core.NewVec3(15, 15, 15),
		core.NewVec3(343, 554, 332), core.NewVec3(-80, 0, 0), core.NewVec3(0, 0, -130))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	tall, short, err := cornellBoxes(white)
	if err != nil {
		return nil, err
	}
	objects = append(objects, tall, short)

	world, err := newWorld(objects)
	if err != nil {
		return nil, err
	}
	return &Scene{World: world, Camera: cornellCamera()}, nil
}

// CornellSmoke replaces the Cornell boxes with participating media, one
// white fog and one black smoke, under a dimmer but larger light.
func CornellSmoke() (*Scene, error) {
	objects := cornellWalls(core.NewVec3(7, 7, 7),
		core.NewVec3(113, 554, 127), core.NewVec3(330, 0, 0), core.NewVec3(0, 0, 305))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	tall, short, err := cornellBoxes(white)
	if err != nil {
		return nil, err
	}
	objects = append(objects,
		geometry.NewConstantMedium(tall, 0.01, core.NewVec3(1, 1, 1)),
		geometry.NewConstantMedium(short, 0.01, core.NewVec3(0, 0, 0)),
	)

	world, err := newWorld(objects)
	if err != nil {
		return nil, err
	}
	camera := cornellCamera()
	camera.ImageWidth = 600
	camera.SamplesPerPixel = 200
	return &Scene{World: world, Camera: camera}, nil
}
