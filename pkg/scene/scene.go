// Package scene assembles the demo scenes. Scene construction is glue:
// it produces one root hittable (a BVH over the object list) and one
// camera configuration, the only hand-off the renderer consumes.
package scene

import (
	"fmt"
	"log"
	"sort"

	"github.com/mnormal/go-pathtracer/pkg/core"
	"github.com/mnormal/go-pathtracer/pkg/geometry"
	"github.com/mnormal/go-pathtracer/pkg/renderer"
)

// Logger receives scene construction diagnostics, such as texture
// fallbacks. Defaults to the standard library logger.
var Logger core.Logger = log.Default()

// Scene is one renderable world plus its camera configuration
type Scene struct {
	World  geometry.Hittable
	Camera renderer.CameraConfig
}

// Builder constructs a named scene
type Builder func() (*Scene, error)

var builders = map[string]Builder{
	"bouncing-spheres":  BouncingSpheres,
	"checkered-spheres": CheckeredSpheres,
	"perlin-spheres":    PerlinSpheres,
	"earth":             Earth,
	"quads":             Quads,
	"simple-light":      SimpleLight,
	"cornell-box":       CornellBox,
	"cornell-smoke":     CornellSmoke,
	"final":             Final,
}

// Names returns the available scene names in sorted order
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Build constructs the scene with the given name
func Build(name string) (*Scene, error) {
	builder, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("scene: unknown scene %q (available: %v)", name, Names())
	}
	return builder()
}

// newWorld builds the acceleration structure over the object list
func newWorld(objects []geometry.Hittable) (geometry.Hittable, error) {
	return geometry.NewBVH(objects, core.UnitInterval)
}
