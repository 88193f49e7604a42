// Package opengl provides the OpenGL 3.3 core device and GLFW window
// for the learngl programs.
package opengl

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/learngl"
)

// Device implements learngl.Device with go-gl.
type Device struct{}

var _ learngl.Device = (*Device)(nil)

// InitLoader resolves the GL entry points through the current context.
// It must run after a context has been made current and before any
// other GL call.
func InitLoader() error {
	if err := gl.Init(); err != nil {
		return fmt.Errorf("%w: %w", learngl.ErrLoader, err)
	}
	return nil
}

// NewDevice loads the GL entry points and returns the device.
func NewDevice() (*Device, error) {
	if err := InitLoader(); err != nil {
		return nil, err
	}
	return &Device{}, nil
}

// Version returns the GL version string of the current context.
func (d *Device) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (d *Device) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *Device) ClearColor(c learngl.Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
}

func (d *Device) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (d *Device) BindVertexArray(id uint32) {
	gl.BindVertexArray(id)
}

func (d *Device) DeleteVertexArray(id uint32) {
	gl.DeleteVertexArrays(1, &id)
}

func (d *Device) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (d *Device) BindArrayBuffer(id uint32) {
	gl.BindBuffer(gl.ARRAY_BUFFER, id)
}

func (d *Device) ArrayBufferData(data []float32, usage learngl.Usage) {
	size := len(data) * int(unsafe.Sizeof(float32(0)))
	gl.BufferData(gl.ARRAY_BUFFER, size, gl.Ptr(data), glUsage(usage))
}

func (d *Device) DeleteBuffer(id uint32) {
	gl.DeleteBuffers(1, &id)
}

func (d *Device) VertexAttribPointer(l learngl.AttribLayout) {
	gl.VertexAttribPointerWithOffset(l.Index, l.Size, gl.FLOAT, l.Normalized, l.Stride, l.Offset)
}

func (d *Device) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (d *Device) CreateShader(kind learngl.ShaderKind) uint32 {
	switch kind {
	case learngl.VertexShader:
		return gl.CreateShader(gl.VERTEX_SHADER)
	case learngl.FragmentShader:
		return gl.CreateShader(gl.FRAGMENT_SHADER)
	default:
		return 0
	}
}

func (d *Device) ShaderSource(id uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csource, nil)
	free()
}

func (d *Device) CompileShader(id uint32) {
	gl.CompileShader(id)
}

func (d *Device) ShaderCompiled(id uint32) bool {
	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

// ShaderInfoLog returns the whole compile log; callers bound it.
func (d *Device) ShaderInfoLog(id uint32) string {
	var logLength int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(id, logLength, nil, &log[0])
	return string(log)
}

func (d *Device) DeleteShader(id uint32) {
	gl.DeleteShader(id)
}

func (d *Device) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (d *Device) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (d *Device) LinkProgram(id uint32) {
	gl.LinkProgram(id)
}

func (d *Device) ProgramLinked(id uint32) bool {
	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

// ProgramInfoLog returns the whole link log; callers bound it.
func (d *Device) ProgramInfoLog(id uint32) string {
	var logLength int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
	if logLength <= 0 {
		return ""
	}
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(id, logLength, nil, &log[0])
	return string(log)
}

func (d *Device) UseProgram(id uint32) {
	gl.UseProgram(id)
}

func (d *Device) DeleteProgram(id uint32) {
	gl.DeleteProgram(id)
}

func (d *Device) DrawArrays(mode learngl.Primitive, first, count int) {
	gl.DrawArrays(glPrimitive(mode), int32(first), int32(count))
}

func (d *Device) ReadPixels(x, y, width, height int, dst []byte) error {
	if err := learngl.CheckPixelBuffer(dst, width, height); err != nil {
		return err
	}
	gl.ReadPixels(int32(x), int32(y), int32(width), int32(height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(dst))
	return nil
}

func glUsage(u learngl.Usage) uint32 {
	if u != learngl.UsageStaticDraw {
		panic(fmt.Sprintf("opengl: unsupported buffer usage %d", u))
	}
	return gl.STATIC_DRAW
}

func glPrimitive(p learngl.Primitive) uint32 {
	if p != learngl.PrimitiveTriangles {
		panic(fmt.Sprintf("opengl: unsupported primitive %d", p))
	}
	return gl.TRIANGLES
}
