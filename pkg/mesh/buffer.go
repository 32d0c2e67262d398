package mesh

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
)

// Buffer accumulates triangles for a mesh under construction. Vertices
// are not shared between triangles.
type Buffer struct {
	positions []r3.Vector
	normals   []r3.Vector
	uvs       []r2.Point
	triangles []int
}

func NewBuffer() *Buffer {
	return &Buffer{}
}

func (b *Buffer) AddVertex(v Vertex) int {
	b.positions = append(b.positions, v.Position)
	b.normals = append(b.normals, v.Normal)
	b.uvs = append(b.uvs, v.UV)
	return len(b.positions) - 1
}

func (b *Buffer) AddTriangle(v1, v2, v3 Vertex) {
	i := b.AddVertex(v1)
	j := b.AddVertex(v2)
	k := b.AddVertex(v3)
	b.triangles = append(b.triangles, i, j, k)
}

// AddIndexed adds a triangle over vertices already in the buffer.
func (b *Buffer) AddIndexed(i, j, k int) {
	b.triangles = append(b.triangles, i, j, k)
}

func (b *Buffer) TriangleCount() int { return len(b.triangles) / 3 }

func (b *Buffer) Mesh() *Mesh {
	return &Mesh{
		Positions: b.positions,
		Normals:   b.normals,
		UVs:       b.uvs,
		Triangles: b.triangles,
	}
}
