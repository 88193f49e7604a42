// Command hellotriangle draws a single orange triangle on a dark teal
// background in an 800x600 OpenGL 3.3 core window. Escape closes it.
//
// Shader compile and link failures are logged to stderr and the program
// carries on; window, context and loader failures exit with status -1.
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(-1)
	}
}

func run() error {
	cfg := learngl.TriangleConfig()
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
	dev.Viewport(0, 0, cfg.Width, cfg.Height)
	win.SetFramebufferSizeCallback(learngl.ResizeViewport(ctx))

	mesh, err := learngl.NewMesh(ctx, learngl.TriangleVertices)
	if err != nil {
		return fmt.Errorf("upload triangle: %w", err)
	}

	// Failures are logged to stderr; the returned program is used regardless.
	program, err := learngl.BuildProgram(ctx, learngl.VertexShaderSource, learngl.FragmentShaderSource)
	if err != nil {
		return fmt.Errorf("build program: %w", err)
	}

	learngl.NewRenderer(ctx, win, program, mesh).Run()

	return nil
}
