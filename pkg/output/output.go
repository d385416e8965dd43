// Package output turns the renderer's floating-point pixel rows into
// raster image files. The renderer hands over pre-gamma averaged colors;
// gamma correction and 8-bit quantization happen here, at the boundary.
package output

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/HugoSmits86/nativewebp"

	"github.com/mnormal/go-pathtracer/pkg/core"
)

// SupportedExtensions lists the raster formats Write can encode
var SupportedExtensions = []string{".png", ".webp"}

// Supported reports whether the filename carries a recognized raster
// image extension.
func Supported(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// LinearToGamma applies gamma-2 correction to one linear channel value.
// Zero maps to zero; positive values map to their square root.
func LinearToGamma(linear float64) float64 {
	if linear > 0 {
		return math.Sqrt(linear)
	}
	return 0
}

// ToImage gamma-corrects and quantizes pixel rows into an 8-bit RGBA image
func ToImage(pixels [][]core.Vec3) *image.RGBA {
	height := len(pixels)
	width := 0
	if height > 0 {
		width = len(pixels[0])
	}

	intensity := core.NewInterval(0, 0.999)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := pixels[y][x]
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(256 * intensity.Clamp(LinearToGamma(c.X))),
				G: uint8(256 * intensity.Clamp(LinearToGamma(c.Y))),
				B: uint8(256 * intensity.Clamp(LinearToGamma(c.Z))),
				A: 255,
			})
		}
	}
	return img
}

// Write encodes the pixel rows to filename, choosing the codec from the
// file extension.
func Write(filename string, pixels [][]core.Vec3) error {
	if !Supported(filename) {
		return fmt.Errorf("output: unsupported image extension %q", filepath.Ext(filename))
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("output: creating %s: %w", filename, err)
	}
	defer file.Close()

	img := ToImage(pixels)
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".webp":
		err = nativewebp.Encode(file, img, nil)
	default:
		err = png.Encode(file, img)
	}
	if err != nil {
		return fmt.Errorf("output: encoding %s: %w", filename, err)
	}
	return nil
}
