package output

import (
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/mnormal/go-pathtracer/pkg/core"
)

func TestSupported(t *testing.T) {
	tests := []struct {
		filename string
		expected bool
	}{
		{"render.png", true},
		{"render.webp", true},
		{"RENDER.PNG", true},
		{"out/dir/render.webp", true},
		{"render.jpg", false},
		{"render.ppm", false},
		{"render", false},
		{"png", false},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			if got := Supported(tt.filename); got != tt.expected {
				t.Errorf("Supported(%q): expected %t, got %t", tt.filename, tt.expected, got)
			}
		})
	}
}

func TestLinearToGamma(t *testing.T) {
	tests := []struct {
		name     string
		linear   float64
		expected float64
	}{
		{name: "zero stays zero", linear: 0, expected: 0},
		{name: "negative clamps to zero", linear: -0.5, expected: 0},
		{name: "one stays one", linear: 1, expected: 1},
		{name: "quarter becomes half", linear: 0.25, expected: 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LinearToGamma(tt.linear); math.Abs(got-tt.expected) > 1e-9 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}

	// Gamma correction must preserve ordering.
	prev := -1.0
	for v := 0.0; v <= 1.0; v += 0.05 {
		g := LinearToGamma(v)
		if g < prev {
			t.Fatalf("Expected monotonic gamma curve, %f decreased to %f", prev, g)
		}
		prev = g
	}
}

func TestToImage(t *testing.T) {
	pixels := [][]core.Vec3{
		{core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 1)},
		{core.NewVec3(0.25, 0, 0), core.NewVec3(5, 5, 5)},
	}
	img := ToImage(pixels)

	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
		t.Fatalf("Expected 2x2 image, got %v", img.Bounds())
	}

	black := img.RGBAAt(0, 0)
	if black.R != 0 || black.G != 0 || black.B != 0 || black.A != 255 {
		t.Errorf("Expected opaque black, got %v", black)
	}
	white := img.RGBAAt(1, 0)
	if white.R != 255 || white.G != 255 || white.B != 255 {
		t.Errorf("Expected white, got %v", white)
	}
	// 0.25 linear is 0.5 after gamma, 128 quantized
	red := img.RGBAAt(0, 1)
	if red.R != 128 || red.G != 0 || red.B != 0 {
		t.Errorf("Expected (128, 0, 0), got %v", red)
	}
	// Superbright values clamp instead of wrapping
	bright := img.RGBAAt(1, 1)
	if bright.R != 255 || bright.G != 255 || bright.B != 255 {
		t.Errorf("Expected clamp to white, got %v", bright)
	}
}

func TestWrite(t *testing.T) {
	pixels := [][]core.Vec3{
		{core.NewVec3(1, 0, 0), core.NewVec3(0, 1, 0)},
		{core.NewVec3(0, 0, 1), core.NewVec3(1, 1, 1)},
	}

	t.Run("png round trip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.png")
		if err := Write(path, pixels); err != nil {
			t.Fatalf("Expected write to succeed, got %v", err)
		}
		file, err := os.Open(path)
		if err != nil {
			t.Fatalf("Expected file to exist, got %v", err)
		}
		defer file.Close()
		img, err := png.Decode(file)
		if err != nil {
			t.Fatalf("Expected valid PNG, got %v", err)
		}
		if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 2 {
			t.Errorf("Expected 2x2 image, got %v", img.Bounds())
		}
	})

	t.Run("webp produces a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.webp")
		if err := Write(path, pixels); err != nil {
			t.Fatalf("Expected write to succeed, got %v", err)
		}
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("Expected file to exist, got %v", err)
		}
		if info.Size() == 0 {
			t.Error("Expected non-empty webp file")
		}
	})

	t.Run("unsupported extension fails", func(t *testing.T) {
		if err := Write(filepath.Join(t.TempDir(), "out.gif"), pixels); err == nil {
			t.Error("Expected error for unsupported extension")
		}
	})

	t.Run("unwritable path fails", func(t *testing.T) {
		if err := Write(filepath.Join(t.TempDir(), "missing", "out.png"), pixels); err == nil {
			t.Error("Expected error for missing directory")
		}
	})
}
