package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"os"

	_ "github.com/ftrvxmtrx/tga"   // TGA decoder
	_ "golang.org/x/image/bmp"     // BMP decoder
	_ "golang.org/x/image/tiff"    // TIFF decoder
	_ "golang.org/x/image/webp"    // WebP decoder
	xdraw "golang.org/x/image/draw"

	"github.com/mnormal/go-pathtracer/pkg/core"
	"github.com/mnormal/go-pathtracer/pkg/material"
)

// maxTextureDim caps either texture dimension; larger images are
// downscaled before sampling. Nearest-neighbor texture lookup gains
// nothing from more resolution than this.
const maxTextureDim = 4096

// ImageData contains decoded image data as a linear color array
type ImageData struct {
	Width  int
	Height int
	Pixels []core.Vec3
}

// LoadImage decodes an image file into a color array. The format is
// auto-detected from the file header; PNG, JPEG, TGA, BMP, TIFF and WebP
// are recognized.
func LoadImage(filename string) (*ImageData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %q: %w", filename, err)
	}

	if img.Bounds().Dx() > maxTextureDim || img.Bounds().Dy() > maxTextureDim {
		img = downscale(img, maxTextureDim)
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Vec3, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return &ImageData{Width: width, Height: height, Pixels: pixels}, nil
}

// downscale shrinks img so its larger dimension equals maxDim,
// preserving aspect ratio.
func downscale(img image.Image, maxDim int) image.Image {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	scale := float64(maxDim) / float64(max(w, h))
	dst := image.NewRGBA(image.Rect(0, 0, int(float64(w)*scale), int(float64(h)*scale)))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, bounds, xdraw.Over, nil)
	return dst
}

// LoadImageTexture loads an image file as a texture. Decode failures
// degrade to the cyan placeholder texture instead of aborting the render;
// the error is returned so the caller can log it.
func LoadImageTexture(filename string) (material.Texture, error) {
	data, err := LoadImage(filename)
	if err != nil {
		return material.NewImageTexture(0, 0, nil), err
	}
	return material.NewImageTexture(data.Width, data.Height, data.Pixels), nil
}
