/*
Package learngl holds the backend-independent half of two small OpenGL
programs: one that only opens a window, and one that draws a single
orange triangle.

# Overview

Setup is a straight line: create the window and context, load the GL
entry points, upload the triangle, build the shader program. Then a loop
runs until the window is asked to close:

	ctx := learngl.NewContext(dev)
	mesh, _ := learngl.NewMesh(ctx, learngl.TriangleVertices)
	prog, _ := learngl.BuildProgram(ctx, learngl.VertexShaderSource, learngl.FragmentShaderSource)

	win.SetFramebufferSizeCallback(learngl.ResizeViewport(ctx))
	learngl.NewRenderer(ctx, win, prog, mesh).Run()

The concrete Device and Window live in backend/opengl.

# Failure policy

Bootstrap failures (ErrInit, ErrWindow, ErrLoader) end the process.
Shader compile and link failures do not: their logs are written to
stderr and the program keeps going, drawing nothing useful. Pass
WithStrictPipeline to BuildProgram to get them back as errors instead.

# Bound state

GL binds programs, vertex arrays and buffers into hidden context state.
Context mirrors those bindings so callers and tests can see what is
current without querying the driver.
*/
package learngl
