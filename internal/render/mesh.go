// Package render turns simulation frames into triangle meshes for drawing.
package render

import "github.com/san-kum/gravsim/internal/dynamo"

const DefaultSectors = 50

// Mesh is a batch of triangle fans, one per circle. Each circle owns
// Sectors+1 vertices: its center followed by the rim points at angles
// 2π·s/Sectors for s = 1..Sectors. Indices hold three entries per triangle.
type Mesh struct {
	Vertices []float32
	Indices  []uint32
	Sectors  int
	Circles  int

	table *TrigTable
}

func NewMesh(sectors int) *Mesh {
	if sectors < 3 {
		sectors = 3
	}
	return &Mesh{Sectors: sectors, table: NewTrigTable(sectors)}
}

// Tessellate builds a fresh mesh for every entry of f.
func Tessellate(f dynamo.Frame, sectors int) *Mesh {
	m := NewMesh(sectors)
	m.Build(f)
	return m
}

// Build replaces the mesh contents with f, reusing the buffers.
func (m *Mesh) Build(f dynamo.Frame) {
	m.Vertices = m.Vertices[:0]
	m.Indices = m.Indices[:0]
	m.Circles = 0
	for i := 0; i < f.Count; i++ {
		m.AddCircle(f.X[i], f.Y[i], f.R[i])
	}
}

func (m *Mesh) AddCircle(cx, cy, r float64) {
	base := uint32(m.Circles * (m.Sectors + 1))
	m.Vertices = append(m.Vertices, float32(cx), float32(cy))
	for s := 1; s <= m.Sectors; s++ {
		sin, cos := m.table.At(s)
		m.Vertices = append(m.Vertices, float32(r*cos+cx), float32(r*sin+cy))
	}

	for s := 0; s < m.Sectors; s++ {
		next := uint32(s + 2)
		if s+2 > m.Sectors {
			next = 1
		}
		m.Indices = append(m.Indices, base, base+uint32(s+1), base+next)
	}
	m.Circles++
}

func (m *Mesh) Triangles() int { return len(m.Indices) / 3 }

// Vertex returns the coordinates of vertex i.
func (m *Mesh) Vertex(i uint32) (x, y float32) {
	return m.Vertices[2*i], m.Vertices[2*i+1]
}

// Triangle returns the three corners of triangle t in counter-clockwise
// order (y up).
func (m *Mesh) Triangle(t int) (a, b, c [2]float32) {
	idx := m.Indices[3*t : 3*t+3]
	a[0], a[1] = m.Vertex(idx[0])
	b[0], b[1] = m.Vertex(idx[1])
	c[0], c[1] = m.Vertex(idx[2])
	return
}
