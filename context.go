package learngl

// Context tracks which objects are bound on a Device.
//
// OpenGL keeps the current program, vertex array and array buffer as
// hidden per-context state. Routing every bind through a Context keeps
// that state explicit and inspectable.
type Context struct {
	dev Device

	program     uint32
	vertexArray uint32
	arrayBuffer uint32
}

// NewContext creates a binding context over dev.
// Nothing is considered bound initially.
func NewContext(dev Device) *Context {
	return &Context{dev: dev}
}

// Device returns the underlying device.
func (c *Context) Device() Device {
	return c.dev
}

// UseProgram makes p the current program. A nil p unbinds.
func (c *Context) UseProgram(p *Program) {
	id := p.ID()
	c.dev.UseProgram(id)
	c.program = id
}

// BindVertexArray binds va. A nil va unbinds.
func (c *Context) BindVertexArray(va *VertexArray) {
	id := va.ID()
	c.dev.BindVertexArray(id)
	c.vertexArray = id
}

// BindArrayBuffer binds b to the array buffer target. A nil b unbinds.
func (c *Context) BindArrayBuffer(b *Buffer) {
	id := b.ID()
	c.dev.BindArrayBuffer(id)
	c.arrayBuffer = id
}

// Program returns the id of the current program.
func (c *Context) Program() uint32 { return c.program }

// VertexArray returns the id of the bound vertex array.
func (c *Context) VertexArray() uint32 { return c.vertexArray }

// ArrayBuffer returns the id of the bound array buffer.
func (c *Context) ArrayBuffer() uint32 { return c.arrayBuffer }

// Clear fills the color buffer with col.
func (c *Context) Clear(col Color) {
	c.dev.ClearColor(col)
	c.dev.Clear()
}

// DrawArrays draws count vertices from the bound vertex array.
func (c *Context) DrawArrays(mode Primitive, first, count int) {
	c.dev.DrawArrays(mode, first, count)
}
