package opengl

import (
	"fmt"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/learngl"
)

// Window implements learngl.Window over a GLFW window.
type Window struct {
	window *glfw.Window
	input  *learngl.InputState
}

var _ learngl.Window = (*Window)(nil)

// NewWindow initializes GLFW and creates a window from cfg.
// When cfg requests a context version, the context is made current on
// the calling thread, which must be the main thread.
func NewWindow(cfg learngl.WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", learngl.ErrInit, err)
	}

	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Resizable))
	if cfg.Hidden {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}
	if cfg.Context.Major > 0 {
		glfw.WindowHint(glfw.ContextVersionMajor, cfg.Context.Major)
		glfw.WindowHint(glfw.ContextVersionMinor, cfg.Context.Minor)
		if cfg.CoreProfile {
			glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
			// macOS only hands out core contexts that are forward compatible.
			if runtime.GOOS == "darwin" {
				glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
			}
		}
	}

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", learngl.ErrWindow, err)
	}
	if window == nil {
		return nil, learngl.ErrWindow
	}

	if cfg.Context.Major > 0 {
		window.MakeContextCurrent()
	}

	w := &Window{
		window: window,
		input:  learngl.NewInputState(),
	}
	w.updateInput()

	return w, nil
}

// Terminate releases GLFW's global state. Windows are destroyed with it.
func Terminate() {
	glfw.Terminate()
}

func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

func (w *Window) SetShouldClose(value bool) {
	w.window.SetShouldClose(value)
}

func (w *Window) KeyDown(key learngl.Key) bool {
	return w.input.KeyDown(key)
}

func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// PollEvents processes pending events, then captures key state.
func (w *Window) PollEvents() {
	glfw.PollEvents()
	w.updateInput()
}

func (w *Window) FramebufferSize() (width, height int) {
	return w.window.GetFramebufferSize()
}

func (w *Window) SetFramebufferSizeCallback(fn func(width, height int)) {
	if fn == nil {
		w.window.SetFramebufferSizeCallback(nil)
		return
	}
	w.window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		fn(width, height)
	})
}

// updateInput polls the state of every tracked key.
func (w *Window) updateInput() {
	for key := learngl.KeyNone + 1; key < learngl.KeyCount; key++ {
		w.input.SetKey(key, w.window.GetKey(learnglKeyToGLFW(key)) == glfw.Press)
	}
}

// learnglKeyToGLFW maps learngl keys to GLFW keys.
func learnglKeyToGLFW(key learngl.Key) glfw.Key {
	switch key {
	case learngl.KeyEscape:
		return glfw.KeyEscape
	default:
		return glfw.KeyUnknown
	}
}

func glfwBool(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}
