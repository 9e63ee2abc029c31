package clouds

import (
	"errors"
	"fmt"
	"unsafe"
)

// ErrInvalidMesh is returned when a mesh cannot be drawn as an indexed
// triangle list.
var ErrInvalidMesh = errors.New("invalid mesh")

// FloatsPerVertex is the number of float32 components in one Vertex.
const FloatsPerVertex = 3

// Mesh is an indexed triangle list. Indices are read in triples; each triple
// is one triangle.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// QuadMesh returns a unit quad centered at the origin, tessellated into two
// triangles that share the top-right/bottom-left diagonal.
// Every call returns fresh slices, so callers may not alias one another.
func QuadMesh() Mesh {
	return Mesh{
		Vertices: []Vertex{
			{-0.5, 0.5, 0},  // top left
			{0.5, 0.5, 0},   // top right
			{-0.5, -0.5, 0}, // bottom left
			{0.5, -0.5, 0},  // bottom right
		},
		Indices: []uint32{
			0, 1, 2,
			1, 2, 3,
		},
	}
}

// Validate checks that the mesh is a non-empty triangle list whose indices all
// reference existing vertices.
func (m Mesh) Validate() error {
	if len(m.Vertices) == 0 {
		return fmt.Errorf("%w: no vertices", ErrInvalidMesh)
	}
	if len(m.Indices) == 0 || len(m.Indices)%3 != 0 {
		return fmt.Errorf("%w: %d indices is not a whole number of triangles", ErrInvalidMesh, len(m.Indices))
	}
	for i, idx := range m.Indices {
		if int(idx) >= len(m.Vertices) {
			return fmt.Errorf("%w: index %d at position %d out of range (%d vertices)",
				ErrInvalidMesh, idx, i, len(m.Vertices))
		}
	}
	return nil
}

// VertexData returns the vertices flattened into x, y, z triples.
func (m Mesh) VertexData() []float32 {
	data := make([]float32, 0, len(m.Vertices)*FloatsPerVertex)
	for _, v := range m.Vertices {
		data = append(data, v[0], v[1], v[2])
	}
	return data
}

// Triangles groups the indices into triples.
func (m Mesh) Triangles() [][3]uint32 {
	tris := make([][3]uint32, 0, len(m.Indices)/3)
	for i := 0; i+2 < len(m.Indices); i += 3 {
		tris = append(tris, [3]uint32{m.Indices[i], m.Indices[i+1], m.Indices[i+2]})
	}
	return tris
}

// Stride is the byte distance between consecutive vertices.
func (m Mesh) Stride() int32 {
	return int32(unsafe.Sizeof(Vertex{}))
}

// VertexBytes is the size of the vertex buffer in bytes.
func (m Mesh) VertexBytes() int {
	return len(m.Vertices) * int(unsafe.Sizeof(Vertex{}))
}

// IndexBytes is the size of the index buffer in bytes.
func (m Mesh) IndexBytes() int {
	return len(m.Indices) * int(unsafe.Sizeof(uint32(0)))
}
