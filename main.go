package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/mnormal/go-pathtracer/pkg/output"
	"github.com/mnormal/go-pathtracer/pkg/renderer"
	"github.com/mnormal/go-pathtracer/pkg/scene"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [options] <output-file%s>\n\n", os.Args[0], strings.Join(output.SupportedExtensions, "|"))
	fmt.Fprintln(os.Stderr, "Options:")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nAvailable scenes: %s\n", strings.Join(scene.Names(), ", "))
}

func run() error {
	sceneName := flag.String("scene", "final", "Scene to render")
	width := flag.Int("width", 0, "Override image width in pixels")
	samples := flag.Int("samples", 0, "Override samples per pixel")
	depth := flag.Int("depth", 0, "Override maximum bounce depth")
	workers := flag.Int("workers", 0, "Override render worker count")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		return fmt.Errorf("expected exactly one output filename, got %d arguments", flag.NArg())
	}
	filename := flag.Arg(0)
	// Validate the output target before spending minutes on the render.
	if !output.Supported(filename) {
		return fmt.Errorf("unsupported output file %q, supported extensions: %s",
			filename, strings.Join(output.SupportedExtensions, ", "))
	}

	fmt.Printf("Building scene %q...\n", *sceneName)
	sc, err := scene.Build(*sceneName)
	if err != nil {
		return fmt.Errorf("building scene: %w", err)
	}

	config := sc.Camera
	if *width > 0 {
		config.ImageWidth = *width
	}
	if *samples > 0 {
		config.SamplesPerPixel = *samples
	}
	if *depth > 0 {
		config.MaxDepth = *depth
	}
	if *workers > 0 {
		config.Workers = *workers
	}
	normalized, defaulted := config.Normalize()
	for _, field := range defaulted {
		fmt.Printf("Camera %s not set, using default\n", field)
	}
	camera := renderer.NewCamera(normalized)

	fmt.Printf("Rendering %dx%d at %d samples/pixel with %d workers...\n",
		camera.ImageWidth(), camera.ImageHeight(), normalized.SamplesPerPixel, normalized.Workers)
	bar := progressbar.NewOptions(camera.ImageHeight(),
		progressbar.OptionSetDescription("rendering"),
		progressbar.OptionShowCount(),
		progressbar.OptionSetPredictTime(true),
	)
	start := time.Now()
	pixels := camera.Render(sc.World, func() {
		_ = bar.Add(1)
	})
	_ = bar.Finish()
	fmt.Printf("\nRender took %v\n", time.Since(start).Round(time.Millisecond))

	if err := output.Write(filename, pixels); err != nil {
		return fmt.Errorf("writing image: %w", err)
	}
	fmt.Printf("Saved %s\n", filename)
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
