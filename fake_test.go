package learngl_test

import (
	"strings"

	"github.com/go-theft-auto/learngl"
)

const brokenShaderSource = "this is not glsl"

type drawCall struct {
	mode        learngl.Primitive
	first       int
	count       int
	program     uint32
	vertexArray uint32
}

// fakeDevice records GL calls. Shaders compile when their source starts
// with a #version line; programs link when every attached shader compiled.
type fakeDevice struct {
	nextID uint32
	calls  []string

	viewport   [4]int
	viewports  int
	clearColor learngl.Color
	clears     int

	boundProgram     uint32
	boundVertexArray uint32
	boundArrayBuffer uint32

	uploads [][]float32
	usages  []learngl.Usage
	layouts []learngl.AttribLayout
	enabled []uint32

	compiled       map[uint32]bool
	attached       map[uint32][]uint32
	linked         map[uint32]bool
	linkCalls      int
	deletedShaders []uint32
	deletedProgram []uint32

	failLink   bool
	shaderLog  string
	programLog string

	draws []drawCall
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		compiled:   make(map[uint32]bool),
		attached:   make(map[uint32][]uint32),
		linked:     make(map[uint32]bool),
		shaderLog:  "0:1(1): error: syntax error, unexpected IDENTIFIER\x00",
		programLog: "error: linking with uncompiled shader\x00",
	}
}

func (d *fakeDevice) id() uint32 {
	d.nextID++
	return d.nextID
}

func (d *fakeDevice) record(name string) { d.calls = append(d.calls, name) }

func (d *fakeDevice) Version() string { return "3.3.0 fake" }

func (d *fakeDevice) Viewport(x, y, width, height int) {
	d.record("Viewport")
	d.viewport = [4]int{x, y, width, height}
	d.viewports++
}

func (d *fakeDevice) ClearColor(c learngl.Color) {
	d.record("ClearColor")
	d.clearColor = c
}

func (d *fakeDevice) Clear() {
	d.record("Clear")
	d.clears++
}

func (d *fakeDevice) GenVertexArray() uint32 { d.record("GenVertexArray"); return d.id() }

func (d *fakeDevice) BindVertexArray(id uint32) {
	d.record("BindVertexArray")
	d.boundVertexArray = id
}

func (d *fakeDevice) DeleteVertexArray(id uint32) { d.record("DeleteVertexArray") }

func (d *fakeDevice) GenBuffer() uint32 { d.record("GenBuffer"); return d.id() }

func (d *fakeDevice) BindArrayBuffer(id uint32) {
	d.record("BindArrayBuffer")
	d.boundArrayBuffer = id
}

func (d *fakeDevice) ArrayBufferData(data []float32, usage learngl.Usage) {
	d.record("ArrayBufferData")
	d.uploads = append(d.uploads, append([]float32(nil), data...))
	d.usages = append(d.usages, usage)
}

func (d *fakeDevice) DeleteBuffer(id uint32) { d.record("DeleteBuffer") }

func (d *fakeDevice) VertexAttribPointer(l learngl.AttribLayout) {
	d.record("VertexAttribPointer")
	d.layouts = append(d.layouts, l)
}

func (d *fakeDevice) EnableVertexAttribArray(index uint32) {
	d.record("EnableVertexAttribArray")
	d.enabled = append(d.enabled, index)
}

func (d *fakeDevice) CreateShader(kind learngl.ShaderKind) uint32 {
	d.record("CreateShader")
	return d.id()
}

func (d *fakeDevice) ShaderSource(id uint32, source string) {
	d.record("ShaderSource")
	d.compiled[id] = strings.HasPrefix(source, "#version")
}

func (d *fakeDevice) CompileShader(id uint32) { d.record("CompileShader") }

func (d *fakeDevice) ShaderCompiled(id uint32) bool { return d.compiled[id] }

func (d *fakeDevice) ShaderInfoLog(id uint32) string { return d.shaderLog }

func (d *fakeDevice) DeleteShader(id uint32) {
	d.record("DeleteShader")
	d.deletedShaders = append(d.deletedShaders, id)
}

func (d *fakeDevice) CreateProgram() uint32 { d.record("CreateProgram"); return d.id() }

func (d *fakeDevice) AttachShader(program, shader uint32) {
	d.record("AttachShader")
	d.attached[program] = append(d.attached[program], shader)
}

func (d *fakeDevice) LinkProgram(id uint32) {
	d.record("LinkProgram")
	d.linkCalls++
	ok := !d.failLink && len(d.attached[id]) > 0
	for _, s := range d.attached[id] {
		ok = ok && d.compiled[s]
	}
	d.linked[id] = ok
}

func (d *fakeDevice) ProgramLinked(id uint32) bool { return d.linked[id] }

func (d *fakeDevice) ProgramInfoLog(id uint32) string { return d.programLog }

func (d *fakeDevice) UseProgram(id uint32) {
	d.record("UseProgram")
	d.boundProgram = id
}

func (d *fakeDevice) DeleteProgram(id uint32) {
	d.record("DeleteProgram")
	d.deletedProgram = append(d.deletedProgram, id)
}

func (d *fakeDevice) DrawArrays(mode learngl.Primitive, first, count int) {
	d.record("DrawArrays")
	d.draws = append(d.draws, drawCall{
		mode:        mode,
		first:       first,
		count:       count,
		program:     d.boundProgram,
		vertexArray: d.boundVertexArray,
	})
}

// ReadPixels fills every byte of row y with the value y.
func (d *fakeDevice) ReadPixels(x, y, width, height int, dst []byte) error {
	d.record("ReadPixels")
	if err := learngl.CheckPixelBuffer(dst, width, height); err != nil {
		return err
	}
	rowLen := width * 4
	for row := 0; row < height; row++ {
		for i := 0; i < rowLen; i++ {
			dst[row*rowLen+i] = byte(row)
		}
	}
	return nil
}

// fakeWindow drives the close flag, key state and resize events.
type fakeWindow struct {
	input *learngl.InputState

	shouldClose   bool
	setCloseCalls int
	swaps         int
	polls         int

	// closeAfterPolls simulates an OS close request; 0 disables it.
	closeAfterPolls int

	width, height int
	resizeFn      func(width, height int)
	pending       [][2]int
}

func newFakeWindow() *fakeWindow {
	return &fakeWindow{
		input:  learngl.NewInputState(),
		width:  800,
		height: 600,
	}
}

func (w *fakeWindow) ShouldClose() bool { return w.shouldClose }

func (w *fakeWindow) SetShouldClose(value bool) {
	w.setCloseCalls++
	w.shouldClose = value
}

func (w *fakeWindow) KeyDown(key learngl.Key) bool { return w.input.KeyDown(key) }

func (w *fakeWindow) SwapBuffers() { w.swaps++ }

func (w *fakeWindow) PollEvents() {
	w.polls++
	for _, ev := range w.pending {
		w.width, w.height = ev[0], ev[1]
		if w.resizeFn != nil {
			w.resizeFn(ev[0], ev[1])
		}
	}
	w.pending = nil
	if w.closeAfterPolls > 0 && w.polls >= w.closeAfterPolls {
		w.shouldClose = true
	}
}

func (w *fakeWindow) FramebufferSize() (int, int) { return w.width, w.height }

func (w *fakeWindow) SetFramebufferSizeCallback(fn func(width, height int)) {
	w.resizeFn = fn
}

// resize queues a framebuffer size event for the next poll.
func (w *fakeWindow) resize(width, height int) {
	w.pending = append(w.pending, [2]int{width, height})
}
