package learngl

import (
	"errors"
	"unsafe"
)

// Bootstrap failures (ErrInit, ErrWindow, ErrLoader) are fatal to the
// commands. The others report misuse of the package API.
var (
	ErrInit        = errors.New("windowing library init failed")
	ErrWindow      = errors.New("window creation failed")
	ErrLoader      = errors.New("graphics function loader failed")
	ErrVertexData  = errors.New("vertex data must be a non-empty multiple of 3 floats")
	ErrPixelBuffer = errors.New("pixel buffer does not fit the requested rectangle")
)

// Color is an RGBA color with float components in [0, 1].
type Color struct {
	R, G, B, A float32
}

// DefaultClearColor is the dark teal the triangle is drawn over.
var DefaultClearColor = Color{R: 0.2, G: 0.3, B: 0.3, A: 1.0}

// ShaderKind identifies a shader stage.
type ShaderKind int

const (
	VertexShader ShaderKind = iota + 1
	FragmentShader
)

// String returns the stage name used in diagnostics.
func (k ShaderKind) String() string {
	switch k {
	case VertexShader:
		return "VERTEX"
	case FragmentShader:
		return "FRAGMENT"
	default:
		return "UNKNOWN"
	}
}

// Usage is a buffer data usage hint.
type Usage int

// UsageStaticDraw marks data written once and drawn many times.
const UsageStaticDraw Usage = 0

// Primitive is the primitive type of a draw call.
type Primitive int

// PrimitiveTriangles draws every three vertices as a separate triangle.
const PrimitiveTriangles Primitive = 0

// FloatSize is the size in bytes of one vertex component.
const FloatSize = int32(unsafe.Sizeof(float32(0)))

// AttribLayout describes how buffer bytes map to one shader input.
// Components are always 32-bit floats.
type AttribLayout struct {
	Index      uint32  // Shader location
	Size       int32   // Components per vertex
	Normalized bool    // Normalize fixed-point data
	Stride     int32   // Bytes between consecutive vertices
	Offset     uintptr // Byte offset of the first component
}

// PositionLayout is the tightly packed vec3 position at location 0.
var PositionLayout = AttribLayout{
	Index:  0,
	Size:   3,
	Stride: 3 * FloatSize,
	Offset: 0,
}
