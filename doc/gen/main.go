// Command gen renders the triangle into a hidden window, captures the
// framebuffer, and saves a JPEG screenshot to doc/imgs/.
//
// Usage:
//
//	devbox shell
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image/jpeg"
	"os"
	"path/filepath"
	"runtime"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single capture.
type screenshot struct {
	name   string        // filename without extension
	clear  learngl.Color // background
	frames int           // frames to render before capture
}

func run() error {
	learngl.SetVerbose(true)

	cfg := learngl.TriangleConfig()
	cfg.Title = "screenshot-gen"
	cfg.Hidden = true
	cfg.Resizable = false

	win, err := opengl.NewWindow(cfg)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer opengl.Terminate()

	dev, err := opengl.NewDevice()
	if err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	learngl.Logger().Debug("context ready", "version", dev.Version())

	ctx := learngl.NewContext(dev)

	mesh, err := learngl.NewMesh(ctx, learngl.TriangleVertices)
	if err != nil {
		return fmt.Errorf("upload triangle: %w", err)
	}
	defer mesh.Delete()

	program, err := learngl.BuildProgram(ctx,
		learngl.VertexShaderSource, learngl.FragmentShaderSource,
		learngl.WithStrictPipeline(),
	)
	if err != nil {
		return fmt.Errorf("build program: %w", err)
	}
	defer program.Delete()

	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	shots := []screenshot{
		{name: "triangle", clear: learngl.DefaultClearColor, frames: 2},
		{name: "triangle-black", clear: learngl.Color{A: 1}, frames: 2},
	}

	w, h := win.FramebufferSize()
	for _, s := range shots {
		if err := capture(ctx, win, program, mesh, s, w, h, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, w, h)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(ctx *learngl.Context, win learngl.Window, program *learngl.Program, mesh *learngl.Mesh, s screenshot, width, height int, outDir string) error {
	ctx.Device().Viewport(0, 0, width, height)

	r := learngl.NewRenderer(ctx, win, program, mesh, learngl.WithClearColor(s.clear))
	for i := 0; i < s.frames; i++ {
		r.Frame()
	}

	// Swapping leaves the back buffer undefined; draw once more to read it.
	r.Draw()

	img, err := learngl.CaptureFrame(ctx, width, height)
	if err != nil {
		return err
	}

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}
