package clouds_test

import (
	"errors"
	"math"
	"testing"

	"github.com/go-theft-auto/clouds"
)

func TestQuadMeshVertexData(t *testing.T) {
	m := clouds.QuadMesh()

	want := []float32{
		-0.5, 0.5, 0,
		0.5, 0.5, 0,
		-0.5, -0.5, 0,
		0.5, -0.5, 0,
	}
	got := m.VertexData()
	if len(got) != 12 {
		t.Fatalf("expected 12 floats, got %d", len(got))
	}
	for i := range want {
		if math.Float32bits(got[i]) != math.Float32bits(want[i]) {
			t.Errorf("float %d: expected %v, got %v", i, want[i], got[i])
		}
	}

	if m.VertexBytes() != 48 {
		t.Errorf("expected 48 vertex bytes, got %d", m.VertexBytes())
	}
	if m.Stride() != 12 {
		t.Errorf("expected stride 12, got %d", m.Stride())
	}
}

func TestQuadMeshIndices(t *testing.T) {
	m := clouds.QuadMesh()

	if len(m.Indices) != 6 {
		t.Fatalf("expected 6 indices, got %d", len(m.Indices))
	}
	if m.IndexBytes() != 24 {
		t.Errorf("expected 24 index bytes, got %d", m.IndexBytes())
	}
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate() returned error: %v", err)
	}

	tris := m.Triangles()
	if len(tris) != 2 {
		t.Fatalf("expected 2 triangles, got %d", len(tris))
	}

	used := make(map[uint32]bool)
	edges := make(map[[2]uint32]int)
	for _, tri := range tris {
		for i := 0; i < 3; i++ {
			a, b := tri[i], tri[(i+1)%3]
			if a > b {
				a, b = b, a
			}
			edges[[2]uint32{a, b}]++
			used[tri[i]] = true
		}
	}

	if len(used) != 4 {
		t.Errorf("expected all 4 vertices referenced, got %d", len(used))
	}

	// Two triangles share exactly one edge (the diagonal); the four outer
	// edges belong to one triangle each.
	shared := 0
	for e, n := range edges {
		switch n {
		case 1:
		case 2:
			shared++
		default:
			t.Errorf("edge %v used %d times", e, n)
		}
	}
	if shared != 1 {
		t.Errorf("expected 1 shared edge, got %d", shared)
	}
	if len(edges) != 5 {
		t.Errorf("expected 5 distinct edges, got %d", len(edges))
	}
}

func TestQuadMeshReturnsFreshSlices(t *testing.T) {
	a := clouds.QuadMesh()
	a.Vertices[0][0] = 42
	a.Indices[0] = 3

	b := clouds.QuadMesh()
	if b.Vertices[0][0] != -0.5 {
		t.Error("mutating one mesh changed another")
	}
	if b.Indices[0] != 0 {
		t.Error("mutating one mesh's indices changed another")
	}
}

func TestMeshValidate(t *testing.T) {
	tests := []struct {
		name string
		mesh clouds.Mesh
	}{
		{"no vertices", clouds.Mesh{Indices: []uint32{0, 1, 2}}},
		{"no indices", clouds.Mesh{Vertices: clouds.QuadMesh().Vertices}},
		{"partial triangle", clouds.Mesh{Vertices: clouds.QuadMesh().Vertices, Indices: []uint32{0, 1}}},
		{"index out of range", clouds.Mesh{Vertices: clouds.QuadMesh().Vertices, Indices: []uint32{0, 1, 4}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mesh.Validate()
			if !errors.Is(err, clouds.ErrInvalidMesh) {
				t.Errorf("expected ErrInvalidMesh, got %v", err)
			}
		})
	}
}
