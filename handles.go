package learngl

// Buffer owns a buffer object.
type Buffer struct {
	ctx *Context
	id  uint32
}

// NewBuffer creates a buffer object. It is not bound.
func (c *Context) NewBuffer() *Buffer {
	return &Buffer{ctx: c, id: c.dev.GenBuffer()}
}

// ID returns the object name, or 0 for a nil or deleted buffer.
func (b *Buffer) ID() uint32 {
	if b == nil {
		return 0
	}
	return b.id
}

// Bind binds the buffer to the array buffer target.
func (b *Buffer) Bind() {
	b.ctx.BindArrayBuffer(b)
}

// Upload copies data into the buffer. The buffer is bound first.
func (b *Buffer) Upload(data []float32, usage Usage) {
	b.Bind()
	b.ctx.dev.ArrayBufferData(data, usage)
}

// Delete releases the buffer. Deleting twice is a no-op.
func (b *Buffer) Delete() {
	if b.id == 0 {
		return
	}
	b.ctx.dev.DeleteBuffer(b.id)
	if b.ctx.arrayBuffer == b.id {
		b.ctx.arrayBuffer = 0
	}
	b.id = 0
}

// VertexArray owns a vertex array object.
type VertexArray struct {
	ctx *Context
	id  uint32
}

// NewVertexArray creates a vertex array object. It is not bound.
func (c *Context) NewVertexArray() *VertexArray {
	return &VertexArray{ctx: c, id: c.dev.GenVertexArray()}
}

// ID returns the object name, or 0 for a nil or deleted vertex array.
func (va *VertexArray) ID() uint32 {
	if va == nil {
		return 0
	}
	return va.id
}

// Bind makes the vertex array current.
func (va *VertexArray) Bind() {
	va.ctx.BindVertexArray(va)
}

// Attrib declares and enables one attribute of the bound array buffer.
// The vertex array is bound first.
func (va *VertexArray) Attrib(layout AttribLayout) {
	va.Bind()
	va.ctx.dev.VertexAttribPointer(layout)
	va.ctx.dev.EnableVertexAttribArray(layout.Index)
}

// Delete releases the vertex array. Deleting twice is a no-op.
func (va *VertexArray) Delete() {
	if va.id == 0 {
		return
	}
	va.ctx.dev.DeleteVertexArray(va.id)
	if va.ctx.vertexArray == va.id {
		va.ctx.vertexArray = 0
	}
	va.id = 0
}

// Shader owns a compiled shader stage until it is deleted.
type Shader struct {
	ctx  *Context
	id   uint32
	kind ShaderKind
}

// NewShader creates an empty shader object of the given stage.
func (c *Context) NewShader(kind ShaderKind) *Shader {
	return &Shader{ctx: c, id: c.dev.CreateShader(kind), kind: kind}
}

// ID returns the object name.
func (s *Shader) ID() uint32 { return s.id }

// Kind returns the shader stage.
func (s *Shader) Kind() ShaderKind { return s.kind }

// Compile sets the source and compiles it. It reports the compile status
// and the bounded info log.
func (s *Shader) Compile(source string) (ok bool, infoLog string) {
	dev := s.ctx.dev
	dev.ShaderSource(s.id, source)
	dev.CompileShader(s.id)
	if dev.ShaderCompiled(s.id) {
		return true, ""
	}
	return false, TruncateInfoLog(dev.ShaderInfoLog(s.id))
}

// Delete marks the shader for deletion. Deleting twice is a no-op.
func (s *Shader) Delete() {
	if s.id == 0 {
		return
	}
	s.ctx.dev.DeleteShader(s.id)
	s.id = 0
}

// Program owns a shader program object.
type Program struct {
	ctx    *Context
	id     uint32
	linked bool
}

// NewProgram creates an empty program object.
func (c *Context) NewProgram() *Program {
	return &Program{ctx: c, id: c.dev.CreateProgram()}
}

// ID returns the object name, or 0 for a nil or deleted program.
func (p *Program) ID() uint32 {
	if p == nil {
		return 0
	}
	return p.id
}

// Attach attaches a compiled shader.
func (p *Program) Attach(s *Shader) {
	p.ctx.dev.AttachShader(p.id, s.id)
}

// Link links the attached shaders. It reports the link status and the
// bounded info log.
func (p *Program) Link() (ok bool, infoLog string) {
	dev := p.ctx.dev
	dev.LinkProgram(p.id)
	p.linked = dev.ProgramLinked(p.id)
	if p.linked {
		return true, ""
	}
	return false, TruncateInfoLog(dev.ProgramInfoLog(p.id))
}

// Linked reports whether the last link succeeded.
func (p *Program) Linked() bool { return p.linked }

// Use makes the program current.
func (p *Program) Use() {
	p.ctx.UseProgram(p)
}

// Delete releases the program. Deleting twice is a no-op.
func (p *Program) Delete() {
	if p.id == 0 {
		return
	}
	p.ctx.dev.DeleteProgram(p.id)
	if p.ctx.program == p.id {
		p.ctx.program = 0
	}
	p.id = 0
}
