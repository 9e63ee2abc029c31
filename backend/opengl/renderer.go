// Package opengl provides the OpenGL 3.3 core backend: a GLFW window, the
// shader compiler and linker, mesh upload and the per-frame renderer.
package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/clouds"
)

// Renderer draws a single program/geometry pair each frame.
type Renderer struct {
	program    *Program
	geometry   *Geometry
	clearColor clouds.Color
}

// NewRenderer prepares fixed pipeline state from cfg and returns a renderer
// drawing geometry with program. The renderer owns both and releases them
// in Delete.
func NewRenderer(cfg clouds.Config, program *Program, geometry *Geometry) *Renderer {
	if cfg.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	return &Renderer{
		program:    program,
		geometry:   geometry,
		clearColor: cfg.ClearColor.Clamped(),
	}
}

// SetViewport maps normalized device coordinates onto a framebuffer of the
// given pixel size.
func (r *Renderer) SetViewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Render clears the color buffer and draws the geometry. It reports the
// first pending GL error, if any.
func (r *Renderer) Render() error {
	gl.ClearColor(r.clearColor.RGBA())
	gl.Clear(gl.COLOR_BUFFER_BIT)

	r.program.Use()
	r.geometry.Bind()
	r.geometry.Draw()
	r.geometry.Unbind()

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("gl error 0x%04x", code)
	}
	return nil
}

// Delete releases the program and geometry.
func (r *Renderer) Delete() {
	if r.geometry != nil {
		r.geometry.Delete()
	}
	if r.program != nil {
		r.program.Delete()
	}
}
