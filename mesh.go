package learngl

import "fmt"

// TriangleVertices is the hardcoded triangle, three xyz positions.
var TriangleVertices = []float32{
	-0.5, -0.5, 0.0,
	0.5, -0.5, 0.0,
	0.0, 0.5, 0.0,
}

// Mesh is vertex data uploaded once together with its attribute layout.
// There is no update path.
type Mesh struct {
	VAO    *VertexArray
	VBO    *Buffer
	Layout AttribLayout

	vertexCount int
}

// NewMesh uploads tightly packed vec3 positions with a static draw hint
// and declares them as attribute 0.
func NewMesh(ctx *Context, vertices []float32) (*Mesh, error) {
	if len(vertices) == 0 || len(vertices)%3 != 0 {
		return nil, fmt.Errorf("%w: got %d", ErrVertexData, len(vertices))
	}

	m := &Mesh{
		VAO:         ctx.NewVertexArray(),
		VBO:         ctx.NewBuffer(),
		Layout:      PositionLayout,
		vertexCount: len(vertices) / 3,
	}

	// The vertex array must be bound before the attribute is declared so
	// it records the buffer binding.
	m.VAO.Bind()
	m.VBO.Upload(vertices, UsageStaticDraw)
	m.VAO.Attrib(m.Layout)

	return m, nil
}

// VertexCount returns the number of vertices uploaded.
func (m *Mesh) VertexCount() int {
	return m.vertexCount
}

// Delete releases the buffer and vertex array.
func (m *Mesh) Delete() {
	m.VBO.Delete()
	m.VAO.Delete()
}
