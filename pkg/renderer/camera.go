package renderer

import (
	"math"
	"math/rand"
	"runtime"
	"sync"

	"github.com/mnormal/go-pathtracer/pkg/core"
	"github.com/mnormal/go-pathtracer/pkg/geometry"
	"github.com/mnormal/go-pathtracer/pkg/material"
)

// CameraConfig holds every user-settable camera and sampling parameter.
// Zero values mean "unset" and fall back to the documented defaults when
// the config is normalized.
type CameraConfig struct {
	AspectRatio     float64   // Width over height, default 16:9
	ImageWidth      int       // Rendered image width in pixels, default 800
	SamplesPerPixel int       // Rays per pixel, default 100
	MaxDepth        int       // Maximum bounce depth, default 50
	VFov            float64   // Vertical field of view in degrees, default 90
	LookFrom        core.Vec3 // Camera position, default (0,0,0)
	LookAt          core.Vec3 // Point the camera looks at, default (0,0,-1)
	VUp             core.Vec3 // Camera-relative up direction, default (0,1,0)
	DefocusAngle    float64   // Aperture cone angle in degrees, default 0 (pinhole)
	FocusDistance   float64   // Distance to the plane of perfect focus, default 10
	Background      core.Vec3 // Color returned for rays that miss, default black
	Workers         int       // Render worker count, default NumCPU
}

// Normalize fills unset fields with their defaults and returns the names
// of the fields that were defaulted, so callers can log them if they care.
// LookFrom and Background default to the zero vector and need no fallback.
func (c CameraConfig) Normalize() (CameraConfig, []string) {
	var defaulted []string
	setF := func(field *float64, def float64, name string) {
		if *field == 0 {
			*field = def
			defaulted = append(defaulted, name)
		}
	}
	if c.AspectRatio == 0 {
		c.AspectRatio = 16.0 / 9.0
		defaulted = append(defaulted, "aspect ratio (16:9)")
	}
	if c.ImageWidth == 0 {
		c.ImageWidth = 800
		defaulted = append(defaulted, "image width (800)")
	}
	if c.SamplesPerPixel == 0 {
		c.SamplesPerPixel = 100
		defaulted = append(defaulted, "samples per pixel (100)")
	}
	if c.MaxDepth == 0 {
		c.MaxDepth = 50
		defaulted = append(defaulted, "max depth (50)")
	}
	setF(&c.VFov, 90, "vertical fov (90)")
	if (c.LookAt == core.Vec3{}) && (c.LookFrom == core.Vec3{}) {
		c.LookAt = core.NewVec3(0, 0, -1)
		defaulted = append(defaulted, "look-at ((0,0,-1))")
	}
	if (c.VUp == core.Vec3{}) {
		c.VUp = core.NewVec3(0, 1, 0)
		defaulted = append(defaulted, "v-up ((0,1,0))")
	}
	setF(&c.FocusDistance, 10, "focus distance (10)")
	if c.Workers == 0 {
		c.Workers = runtime.NumCPU()
	}
	return c, defaulted
}

// Camera generates primary rays and integrates path radiance per pixel
type Camera struct {
	config      CameraConfig
	imageHeight int

	center       core.Vec3
	pixel00      core.Vec3
	deltaU       core.Vec3
	deltaV       core.Vec3
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
}

// NewCamera derives all render-time state from the config. It is a pure
// function of the config: same input, same camera.
func NewCamera(config CameraConfig) *Camera {
	config, _ = config.Normalize()

	imageHeight := int(float64(config.ImageWidth) / config.AspectRatio)
	if imageHeight < 1 {
		imageHeight = 1
	}

	theta := config.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * config.FocusDistance
	viewportWidth := viewportHeight * float64(config.ImageWidth) / float64(imageHeight)

	center := config.LookFrom

	// Orthonormal basis: w points backwards, u right, v up
	w := config.LookFrom.Subtract(config.LookAt).Normalize()
	u := config.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)

	deltaU := viewportU.Multiply(1.0 / float64(config.ImageWidth))
	deltaV := viewportV.Multiply(1.0 / float64(imageHeight))

	viewportUpperLeft := center.
		Subtract(w.Multiply(config.FocusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := viewportUpperLeft.Add(deltaU.Add(deltaV).Multiply(0.5))

	defocusRadius := config.FocusDistance * math.Tan(config.DefocusAngle/2*math.Pi/180.0)

	return &Camera{
		config:       config,
		imageHeight:  imageHeight,
		center:       center,
		pixel00:      pixel00,
		deltaU:       deltaU,
		deltaV:       deltaV,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}
}

// ImageWidth returns the configured image width in pixels
func (c *Camera) ImageWidth() int { return c.config.ImageWidth }

// ImageHeight returns the derived image height in pixels
func (c *Camera) ImageHeight() int { return c.imageHeight }

// GetRay builds a primary ray for pixel (i, j): the target is jittered
// uniformly inside the pixel footprint, the origin is the camera center or
// a point on the defocus disk, and the time is random for motion blur.
func (c *Camera) GetRay(i, j int, random *rand.Rand) core.Ray {
	offsetX := random.Float64() - 0.5
	offsetY := random.Float64() - 0.5
	pixelSample := c.pixel00.
		Add(c.deltaU.Multiply(float64(i) + offsetX)).
		Add(c.deltaV.Multiply(float64(j) + offsetY))

	origin := c.center
	if c.config.DefocusAngle > 0 {
		p := core.RandomInUnitDisk(random)
		origin = c.center.
			Add(c.defocusDiskU.Multiply(p.X)).
			Add(c.defocusDiskV.Multiply(p.Y))
	}

	return core.NewRayAt(origin, pixelSample.Subtract(origin), random.Float64())
}

// rayColor recursively evaluates path radiance. The depth budget is
// checked before any intersection test; the lower ray bound of 0.001
// avoids self-intersection at the previous hit point.
func (c *Camera) rayColor(ray core.Ray, world geometry.Hittable, depth int, random *rand.Rand) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	rec, ok := world.Hit(ray, core.NewInterval(0.001, math.Inf(1)))
	if !ok {
		return c.config.Background
	}

	var emission core.Vec3
	if emitter, ok := rec.Material.(material.Emitter); ok {
		emission = emitter.Emitted(rec.U, rec.V, rec.Point)
	}

	scatter, ok := rec.Material.Scatter(ray, *rec, random)
	if !ok {
		return emission
	}

	bounce := c.rayColor(scatter.Scattered, world, depth-1, random)
	return emission.Add(scatter.Attenuation.MultiplyVec(bounce))
}

// renderPixel averages SamplesPerPixel jittered estimates for one pixel.
// The returned color is pre-gamma; encoding applies gamma at output time.
func (c *Camera) renderPixel(world geometry.Hittable, i, j int, random *rand.Rand) core.Vec3 {
	var accum core.Vec3
	for s := 0; s < c.config.SamplesPerPixel; s++ {
		ray := c.GetRay(i, j, random)
		accum = accum.Add(c.rayColor(ray, world, c.config.MaxDepth, random))
	}
	return accum.Multiply(1.0 / float64(c.config.SamplesPerPixel))
}

// columnChunks is how many independently-seeded spans each row is split
// into, parallelizing pixels within a row on top of row parallelism.
const columnChunks = 4

// renderRow renders one row, splitting it into column chunks that run
// concurrently. Each chunk owns a deterministic generator, so a render is
// reproducible for a fixed configuration.
func (c *Camera) renderRow(world geometry.Hittable, j int, row []core.Vec3) {
	width := c.config.ImageWidth
	chunk := (width + columnChunks - 1) / columnChunks

	var wg sync.WaitGroup
	for start := 0; start < width; start += chunk {
		end := min(start+chunk, width)
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			random := rand.New(rand.NewSource(int64(j)<<20 | int64(start)))
			for i := start; i < end; i++ {
				row[i] = c.renderPixel(world, i, j, random)
			}
		}(start, end)
	}
	wg.Wait()
}

// Render traces the whole image against the scene root and returns a
// row-major array of averaged, pre-gamma colors. Rows are distributed to a
// fixed pool of workers; the scene is shared read-only, every pixel's
// accumulator is private, and the only blocking point is the final join.
// progress, when non-nil, is called once per completed row.
func (c *Camera) Render(world geometry.Hittable, progress func()) [][]core.Vec3 {
	image := make([][]core.Vec3, c.imageHeight)
	for j := range image {
		image[j] = make([]core.Vec3, c.config.ImageWidth)
	}

	rows := make(chan int, c.imageHeight)
	for j := 0; j < c.imageHeight; j++ {
		rows <- j
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < c.config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				c.renderRow(world, j, image[j])
				if progress != nil {
					progress()
				}
			}
		}()
	}
	wg.Wait()

	return image
}
