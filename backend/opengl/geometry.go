package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/clouds"
)

// Geometry is a mesh resident in GPU buffers. The vertex array records the
// vertex buffer, the index buffer and the attribute layout, so Bind restores
// all three.
type Geometry struct {
	vao, vbo   uint32
	ebo        uint32
	indexCount int32
}

// UploadMesh copies the mesh into static vertex and index buffers and
// declares attribute slot 0 as three unnormalized floats per vertex.
func UploadMesh(mesh clouds.Mesh) (*Geometry, error) {
	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("upload mesh: %w", err)
	}

	g := &Geometry{indexCount: int32(len(mesh.Indices))}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, mesh.VertexBytes(), gl.Ptr(mesh.VertexData()), gl.STATIC_DRAW)

	// Position attribute
	gl.VertexAttribPointerWithOffset(0, clouds.FloatsPerVertex, gl.FLOAT, false, mesh.Stride(), 0)
	gl.EnableVertexAttribArray(0)

	gl.GenBuffers(1, &g.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, mesh.IndexBytes(), gl.Ptr(mesh.Indices), gl.STATIC_DRAW)

	// Unbind the VAO first; unbinding the EBO while it is bound would
	// remove it from the VAO.
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	clouds.Logger.Debug("geometry uploaded",
		"vertices", len(mesh.Vertices), "indices", len(mesh.Indices))

	return g, nil
}

// IndexCount returns the number of indices drawn by Draw.
func (g *Geometry) IndexCount() int32 {
	return g.indexCount
}

// Bind binds the vertex array.
func (g *Geometry) Bind() {
	gl.BindVertexArray(g.vao)
}

// Unbind clears the vertex array binding.
func (g *Geometry) Unbind() {
	gl.BindVertexArray(0)
}

// Draw issues one indexed triangle draw. The geometry must be bound.
func (g *Geometry) Draw() {
	gl.DrawElementsWithOffset(gl.TRIANGLES, g.indexCount, gl.UNSIGNED_INT, 0)
}

// Delete releases the GL objects.
func (g *Geometry) Delete() {
	if g.ebo != 0 {
		gl.DeleteBuffers(1, &g.ebo)
		g.ebo = 0
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
		g.vbo = 0
	}
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
}
