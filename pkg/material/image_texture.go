package material

import "github.com/mnormal/go-pathtracer/pkg/core"

// ImageTexture provides color from a decoded 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Vec3 // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture from linear float pixels
func NewImageTexture(width, height int, pixels []core.Vec3) *ImageTexture {
	return &ImageTexture{Width: width, Height: height, Pixels: pixels}
}

// NewImageTextureFromBytes creates an image texture from a packed RGB byte
// buffer, three bytes per pixel, row-major from the top-left corner.
func NewImageTextureFromBytes(data []byte, width, height int) *ImageTexture {
	pixels := make([]core.Vec3, width*height)
	for i := range pixels {
		pixels[i] = core.NewVec3(
			float64(data[3*i])/255.0,
			float64(data[3*i+1])/255.0,
			float64(data[3*i+2])/255.0,
		)
	}
	return NewImageTexture(width, height, pixels)
}

// Value samples the texture at the given UV coordinates with nearest-neighbor
// filtering. V=0 maps to the bottom row, matching the sphere UV convention.
func (t *ImageTexture) Value(u, v float64, point core.Vec3) core.Vec3 {
	if t.Height <= 0 || t.Width <= 0 {
		// Solid cyan as a debugging aid for missing image data
		return core.NewVec3(0, 1, 1)
	}

	u = core.UnitInterval.Clamp(u)
	v = 1.0 - core.UnitInterval.Clamp(v)

	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}

	return t.Pixels[y*t.Width+x]
}
