package learngl_test

import (
	"testing"

	"github.com/go-theft-auto/learngl"
)

func TestContextTracksBindings(t *testing.T) {
	dev := newFakeDevice()
	ctx := learngl.NewContext(dev)

	if ctx.Program() != 0 || ctx.VertexArray() != 0 || ctx.ArrayBuffer() != 0 {
		t.Fatal("expected nothing bound on a new context")
	}

	va := ctx.NewVertexArray()
	buf := ctx.NewBuffer()
	prog := ctx.NewProgram()

	va.Bind()
	buf.Bind()
	prog.Use()

	if ctx.VertexArray() != va.ID() || dev.boundVertexArray != va.ID() {
		t.Errorf("vertex array: ctx=%d dev=%d, want %d", ctx.VertexArray(), dev.boundVertexArray, va.ID())
	}
	if ctx.ArrayBuffer() != buf.ID() || dev.boundArrayBuffer != buf.ID() {
		t.Errorf("array buffer: ctx=%d dev=%d, want %d", ctx.ArrayBuffer(), dev.boundArrayBuffer, buf.ID())
	}
	if ctx.Program() != prog.ID() || dev.boundProgram != prog.ID() {
		t.Errorf("program: ctx=%d dev=%d, want %d", ctx.Program(), dev.boundProgram, prog.ID())
	}
}

func TestContextNilUnbinds(t *testing.T) {
	dev := newFakeDevice()
	ctx := learngl.NewContext(dev)

	ctx.NewProgram().Use()
	ctx.UseProgram(nil)

	if ctx.Program() != 0 || dev.boundProgram != 0 {
		t.Errorf("expected program unbound, ctx=%d dev=%d", ctx.Program(), dev.boundProgram)
	}
}

func TestDeleteClearsBinding(t *testing.T) {
	dev := newFakeDevice()
	ctx := learngl.NewContext(dev)

	prog := ctx.NewProgram()
	prog.Use()
	prog.Delete()
	prog.Delete()

	if ctx.Program() != 0 {
		t.Errorf("expected deleted program to be unbound, got %d", ctx.Program())
	}
	if len(dev.deletedProgram) != 1 {
		t.Errorf("expected 1 DeleteProgram call, got %d", len(dev.deletedProgram))
	}
	if prog.ID() != 0 {
		t.Errorf("expected deleted program id 0, got %d", prog.ID())
	}
}

func TestDeleteKeepsOtherBinding(t *testing.T) {
	ctx := learngl.NewContext(newFakeDevice())

	a := ctx.NewVertexArray()
	b := ctx.NewVertexArray()
	b.Bind()
	a.Delete()

	if ctx.VertexArray() != b.ID() {
		t.Errorf("expected %d to stay bound, got %d", b.ID(), ctx.VertexArray())
	}
}
