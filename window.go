package learngl

// Window is the windowing surface the programs consume: one OS window
// together with its rendering context.
type Window interface {
	ShouldClose() bool
	SetShouldClose(value bool)

	// KeyDown reports whether key was held at the last event poll.
	KeyDown(key Key) bool

	SwapBuffers()

	// PollEvents drains pending OS events. Registered callbacks run
	// synchronously from inside this call.
	PollEvents()

	FramebufferSize() (width, height int)
	SetFramebufferSizeCallback(fn func(width, height int))
}

// GLVersion is a requested OpenGL context version.
type GLVersion struct {
	Major, Minor int
}

// WindowConfig configures window creation.
type WindowConfig struct {
	Width  int
	Height int
	Title  string

	Resizable bool
	Hidden    bool

	// Context is the requested context version. The zero value leaves
	// the windowing library defaults and does not make the context current.
	Context     GLVersion
	CoreProfile bool
}

// HelloWindowConfig returns the window-only program's configuration.
func HelloWindowConfig() WindowConfig {
	return WindowConfig{
		Width:     500,
		Height:    500,
		Title:     "Hello World",
		Resizable: true,
	}
}

// TriangleConfig returns the triangle program's configuration:
// an 800x600 window with an OpenGL 3.3 core context.
func TriangleConfig() WindowConfig {
	return WindowConfig{
		Width:       800,
		Height:      600,
		Title:       "Learn OpenGL",
		Resizable:   true,
		Context:     GLVersion{Major: 3, Minor: 3},
		CoreProfile: true,
	}
}

// RunWindow presents frames and polls events until the window is asked
// to close. Nothing is drawn. It returns the number of frames presented.
func RunWindow(win Window) int {
	frames := 0
	for !win.ShouldClose() {
		win.SwapBuffers()
		win.PollEvents()
		frames++
	}
	return frames
}

// ResizeViewport returns a framebuffer size callback that keeps the
// viewport covering the whole framebuffer.
func ResizeViewport(ctx *Context) func(width, height int) {
	return func(width, height int) {
		ctx.Device().Viewport(0, 0, width, height)
	}
}
