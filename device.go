package learngl

// Device is the graphics API surface the programs consume.
// Object names are plain uint32 ids, zero meaning "none".
//
// Every method must be called on the thread that owns the current context.
type Device interface {
	Version() string

	Viewport(x, y, width, height int)
	ClearColor(c Color)
	Clear()

	GenVertexArray() uint32
	BindVertexArray(id uint32)
	DeleteVertexArray(id uint32)

	GenBuffer() uint32
	BindArrayBuffer(id uint32)
	ArrayBufferData(data []float32, usage Usage)
	DeleteBuffer(id uint32)

	VertexAttribPointer(layout AttribLayout)
	EnableVertexAttribArray(index uint32)

	CreateShader(kind ShaderKind) uint32
	ShaderSource(id uint32, source string)
	CompileShader(id uint32)
	ShaderCompiled(id uint32) bool
	ShaderInfoLog(id uint32) string
	DeleteShader(id uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(id uint32)
	ProgramLinked(id uint32) bool
	ProgramInfoLog(id uint32) string
	UseProgram(id uint32)
	DeleteProgram(id uint32)

	DrawArrays(mode Primitive, first, count int)

	// ReadPixels reads RGBA bytes of the given rectangle into dst,
	// bottom row first. It fails with ErrPixelBuffer when dst is too small.
	ReadPixels(x, y, width, height int, dst []byte) error
}
