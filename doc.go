/*
Package clouds draws a single colored quad with an OpenGL 3.3 core pipeline.

The root package holds everything that does not need a GPU: the quad mesh,
shader sources and their typed compile/link errors, input events, the window
configuration and the render loop state machine. The backend/opengl package
supplies the GLFW window, shader compiler, program linker, geometry uploader
and frame renderer that plug into it.

# Quick Start

	cfg := clouds.DefaultConfig()
	window, err := opengl.NewWindow(cfg)
	if err != nil {
	    return err
	}
	defer window.Destroy()

	program, err := opengl.NewProgram(clouds.VertexShaderSource, clouds.FragmentShaderSource)
	if err != nil {
	    return err
	}
	geometry, err := opengl.UploadMesh(clouds.QuadMesh())
	if err != nil {
	    return err
	}

	renderer := opengl.NewRenderer(cfg, program, geometry)
	defer renderer.Delete()

	return clouds.NewLoop(window, renderer).Run()

# Render Loop

Each iteration drains the window's event queue, clears to the configured
color, draws the mesh with one indexed call and swaps buffers. Pressing
Escape or closing the window moves the loop from Running to Closing; the
frame in progress still completes and Run returns nil at the next iteration
boundary.

# Errors

Shader failures are returned as *CompileError or *LinkError carrying the full
driver info log. They are fatal for the cmd/clouds binary.
*/
package clouds
