// Package mesh holds the indexed triangle mesh shared by the slicer, the
// fracture pipeline and the STL exporter.
package mesh

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

var ErrInvalidMesh = errors.New("invalid mesh")

// maxIndexErrors caps how many bad triangle indices Validate reports.
const maxIndexErrors = 8

// Vertex is one corner of a triangle together with the side of a cutting
// plane it lies on.
type Vertex struct {
	Position r3.Vector
	UV       r2.Point
	Normal   r3.Vector
	Side     bool
}

// Mesh is an indexed triangle list. Normals and UVs are parallel to
// Positions; Triangles holds three indices per triangle, counter-clockwise
// when seen from outside.
type Mesh struct {
	Positions []r3.Vector
	Normals   []r3.Vector
	UVs       []r2.Point
	Triangles []int
}

func (m *Mesh) VertexCount() int   { return len(m.Positions) }
func (m *Mesh) TriangleCount() int { return len(m.Triangles) / 3 }

func (m *Mesh) IsEmpty() bool {
	return m == nil || len(m.Triangles) == 0
}

// Vertex returns the attributes of vertex i.
func (m *Mesh) Vertex(i int) Vertex {
	return Vertex{Position: m.Positions[i], UV: m.UVs[i], Normal: m.Normals[i]}
}

// Validate reports every structural problem of the mesh, each wrapping
// ErrInvalidMesh.
func (m *Mesh) Validate() error {
	if m == nil {
		return errors.Wrap(ErrInvalidMesh, "nil mesh")
	}

	var err error
	if len(m.Normals) != len(m.Positions) {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidMesh,
			"%d normals for %d positions", len(m.Normals), len(m.Positions)))
	}
	if len(m.UVs) != len(m.Positions) {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidMesh,
			"%d uvs for %d positions", len(m.UVs), len(m.Positions)))
	}
	if len(m.Triangles) == 0 {
		err = multierr.Append(err, errors.Wrap(ErrInvalidMesh, "no triangles"))
	}
	if len(m.Triangles)%3 != 0 {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidMesh,
			"triangle list length %d is not a multiple of 3", len(m.Triangles)))
	}

	bad := 0
	for i, idx := range m.Triangles {
		if idx >= 0 && idx < len(m.Positions) {
			continue
		}
		if bad < maxIndexErrors {
			err = multierr.Append(err, errors.Wrapf(ErrInvalidMesh,
				"index %d at %d out of range [0, %d)", idx, i, len(m.Positions)))
		}
		bad++
	}
	if bad > maxIndexErrors {
		err = multierr.Append(err, errors.Wrapf(ErrInvalidMesh,
			"%d more indices out of range", bad-maxIndexErrors))
	}
	return err
}

// Bounds returns the corners of the axis-aligned box around the vertices.
func (m *Mesh) Bounds() (lo, hi r3.Vector) {
	if len(m.Positions) == 0 {
		return r3.Vector{}, r3.Vector{}
	}
	lo, hi = m.Positions[0], m.Positions[0]
	for _, p := range m.Positions[1:] {
		lo = r3.Vector{X: math.Min(lo.X, p.X), Y: math.Min(lo.Y, p.Y), Z: math.Min(lo.Z, p.Z)}
		hi = r3.Vector{X: math.Max(hi.X, p.X), Y: math.Max(hi.Y, p.Y), Z: math.Max(hi.Z, p.Z)}
	}
	return lo, hi
}

func (m *Mesh) triangle(t int) (a, b, c r3.Vector) {
	return m.Positions[m.Triangles[3*t]], m.Positions[m.Triangles[3*t+1]], m.Positions[m.Triangles[3*t+2]]
}

// FaceNormal returns the unit normal of triangle t from its winding.
func (m *Mesh) FaceNormal(t int) r3.Vector {
	a, b, c := m.triangle(t)
	return b.Sub(a).Cross(c.Sub(a)).Normalize()
}

// Volume is the signed enclosed volume; positive for a closed mesh wound
// counter-clockwise from outside.
func (m *Mesh) Volume() float64 {
	var v float64
	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c := m.triangle(t)
		v += a.Dot(b.Cross(c))
	}
	return v / 6
}

func (m *Mesh) SurfaceArea() float64 {
	var s float64
	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c := m.triangle(t)
		s += b.Sub(a).Cross(c.Sub(a)).Norm() / 2
	}
	return s
}

// Centroid is the mean vertex position.
func (m *Mesh) Centroid() r3.Vector {
	var c r3.Vector
	if len(m.Positions) == 0 {
		return c
	}
	for _, p := range m.Positions {
		c = c.Add(p)
	}
	return c.Mul(1 / float64(len(m.Positions)))
}

type posKey [3]int64

func quantize(p r3.Vector, tol float64) posKey {
	return posKey{
		int64(math.Round(p.X / tol)),
		int64(math.Round(p.Y / tol)),
		int64(math.Round(p.Z / tol)),
	}
}

// OpenEdges counts the edges, matched by position within tol, that are not
// used by exactly one triangle in each direction. Vertices split for
// normals or UVs are welded by position.
func (m *Mesh) OpenEdges(tol float64) int {
	type edge struct{ a, b posKey }
	count := make(map[edge]int, len(m.Triangles))
	for t := 0; t < m.TriangleCount(); t++ {
		a, b, c := m.triangle(t)
		ka, kb, kc := quantize(a, tol), quantize(b, tol), quantize(c, tol)
		count[edge{ka, kb}]++
		count[edge{kb, kc}]++
		count[edge{kc, ka}]++
	}

	open := 0
	for e, n := range count {
		if e.a == e.b {
			continue
		}
		if n != 1 || count[edge{e.b, e.a}] != 1 {
			open++
		}
	}
	return open
}

// IsClosed reports whether the mesh is a watertight, consistently wound
// surface.
func (m *Mesh) IsClosed(tol float64) bool {
	return !m.IsEmpty() && m.OpenEdges(tol) == 0
}

func (m *Mesh) Clone() *Mesh {
	return &Mesh{
		Positions: append([]r3.Vector(nil), m.Positions...),
		Normals:   append([]r3.Vector(nil), m.Normals...),
		UVs:       append([]r2.Point(nil), m.UVs...),
		Triangles: append([]int(nil), m.Triangles...),
	}
}

// Translated returns a copy moved by offset.
func (m *Mesh) Translated(offset r3.Vector) *Mesh {
	c := m.Clone()
	for i := range c.Positions {
		c.Positions[i] = c.Positions[i].Add(offset)
	}
	return c
}
