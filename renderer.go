package learngl

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

// CloseMessage is written to the status stream when Escape closes the window.
const CloseMessage = "Pressed Esc, Closing Window"

// Renderer runs the triangle's render loop.
type Renderer struct {
	ctx     *Context
	win     Window
	program *Program
	mesh    *Mesh

	clearColor Color
	status     io.Writer
	logger     *slog.Logger

	frames int
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

// WithClearColor sets the color the frame is cleared to.
func WithClearColor(c Color) RendererOption {
	return func(r *Renderer) { r.clearColor = c }
}

// WithStatusWriter sets where the close message is written.
// Defaults to os.Stdout.
func WithStatusWriter(w io.Writer) RendererOption {
	return func(r *Renderer) { r.status = w }
}

// WithLogger sets the structured logger. Defaults to Logger().
func WithLogger(l *slog.Logger) RendererOption {
	return func(r *Renderer) { r.logger = l }
}

// NewRenderer creates a renderer drawing mesh with program into win.
func NewRenderer(ctx *Context, win Window, program *Program, mesh *Mesh, opts ...RendererOption) *Renderer {
	r := &Renderer{
		ctx:        ctx,
		win:        win,
		program:    program,
		mesh:       mesh,
		clearColor: DefaultClearColor,
		status:     os.Stdout,
		logger:     logger,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run renders frames until the window is asked to close, either by the
// OS or by ProcessInput. Frames are not paced.
func (r *Renderer) Run() {
	r.logger.Debug("render loop started")
	for !r.win.ShouldClose() {
		r.Frame()
	}
	r.logger.Debug("render loop stopped", "frames", r.frames)
}

// Frame renders and presents one frame.
func (r *Renderer) Frame() {
	r.ProcessInput()
	r.Draw()
	r.win.SwapBuffers()
	r.win.PollEvents()
	r.frames++
}

// Draw clears the back buffer and draws the mesh once.
func (r *Renderer) Draw() {
	r.ctx.Clear(r.clearColor)
	r.ctx.UseProgram(r.program)
	r.ctx.BindVertexArray(r.mesh.VAO)
	r.ctx.DrawArrays(PrimitiveTriangles, 0, r.mesh.VertexCount())
}

// ProcessInput asks the window to close while Escape is held.
// Every call that sees the key down sets the flag and writes CloseMessage.
func (r *Renderer) ProcessInput() bool {
	if !r.win.KeyDown(KeyEscape) {
		return false
	}
	r.win.SetShouldClose(true)
	fmt.Fprintln(r.status, CloseMessage)
	r.logger.Debug("close requested", "key", KeyName(KeyEscape), "frame", r.frames)
	return true
}

// Frames returns the number of frames rendered so far.
func (r *Renderer) Frames() int {
	return r.frames
}
