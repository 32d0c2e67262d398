package slicer

import (
	"math"
	"math/rand"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x0FACED/go-fracture/pkg/geom"
	"github.com/0x0FACED/go-fracture/pkg/mesh"
	"github.com/0x0FACED/go-fracture/pkg/mesh/primitives"
)

const weldTol = 1e-6

func unitCube(t *testing.T) *mesh.Mesh {
	t.Helper()
	m, err := primitives.Cube(r3.Vector{X: 1, Y: 1, Z: 1})
	require.NoError(t, err)
	return m
}

func TestSliceCubeThroughCenter(t *testing.T) {
	tests := []struct {
		name   string
		normal r3.Vector
	}{
		{"x", r3.Vector{X: 1}},
		{"y", r3.Vector{Y: 1}},
		{"-z", r3.Vector{Z: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, neg, err := Slice(unitCube(t), r3.Vector{}, tt.normal)
			require.NoError(t, err)

			for name, half := range map[string]*mesh.Mesh{"positive": pos, "negative": neg} {
				require.NoError(t, half.Validate(), name)
				assert.True(t, half.IsClosed(weldTol), "%s half has %d open edges", name, half.OpenEdges(weldTol))
				assert.InDelta(t, 0.5, half.Volume(), 1e-9, name)
			}

			for _, p := range pos.Positions {
				assert.GreaterOrEqual(t, p.Dot(tt.normal), -1e-12)
			}
			for _, p := range neg.Positions {
				assert.LessOrEqual(t, p.Dot(tt.normal), 1e-12)
			}
		})
	}
}

func TestSliceConservesVolume(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	cyl, err := primitives.Cylinder(0.5, 1, 32)
	require.NoError(t, err)

	for _, m := range []*mesh.Mesh{unitCube(t), cyl} {
		want := m.Volume()
		lo, hi := m.Bounds()
		for i := 0; i < 20; i++ {
			point := r3.Vector{
				X: lo.X + (hi.X-lo.X)*(0.25+0.5*r.Float64()),
				Y: lo.Y + (hi.Y-lo.Y)*(0.25+0.5*r.Float64()),
				Z: lo.Z + (hi.Z-lo.Z)*(0.25+0.5*r.Float64()),
			}
			normal := r3.Vector{X: r.NormFloat64(), Y: r.NormFloat64(), Z: r.NormFloat64()}

			pos, neg, err := Slice(m, point, normal)
			require.NoError(t, err)
			assert.InDelta(t, want, pos.Volume()+neg.Volume(), 1e-9)
			assert.Greater(t, pos.Volume(), 0.0)
			assert.Greater(t, neg.Volume(), 0.0)
			assert.True(t, pos.IsClosed(weldTol), "positive piece %d not closed", i)
			assert.True(t, neg.IsClosed(weldTol), "negative piece %d not closed", i)
		}
	}
}

func TestSliceRepeatedCutsStayClosed(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	cyl, err := primitives.Cylinder(0.5, 1, 24)
	require.NoError(t, err)

	for trial := 0; trial < 40; trial++ {
		for name, start := range map[string]*mesh.Mesh{"cube": unitCube(t), "cylinder": cyl} {
			m := start
			want := m.Volume()
			for cut := 0; cut < 4; cut++ {
				// pieces of a convex solid stay convex, so a point between the
				// vertex mean and a vertex is inside
				var mean r3.Vector
				for _, p := range m.Positions {
					mean = mean.Add(p)
				}
				mean = mean.Mul(1 / float64(len(m.Positions)))
				corner := m.Positions[r.Intn(len(m.Positions))]
				point := mean.Add(corner.Sub(mean).Mul(0.5 * r.Float64()))
				normal := r3.Vector{X: r.NormFloat64(), Y: r.NormFloat64(), Z: r.NormFloat64()}

				pos, neg, err := Slice(m, point, normal)
				require.NoError(t, err)
				require.True(t, pos.IsClosed(weldTol), "%s trial %d cut %d: positive has %d open edges",
					name, trial, cut, pos.OpenEdges(weldTol))
				require.True(t, neg.IsClosed(weldTol), "%s trial %d cut %d: negative has %d open edges",
					name, trial, cut, neg.OpenEdges(weldTol))
				assert.InDelta(t, want, pos.Volume()+neg.Volume(), 1e-9)

				m, want = pos, pos.Volume()
				if neg.Volume() > want {
					m, want = neg, neg.Volume()
				}
			}
		}
	}
}

func TestSliceThroughCutEdges(t *testing.T) {
	pos, neg, err := Slice(unitCube(t), r3.Vector{}, r3.Vector{X: 1, Z: 1})
	require.NoError(t, err)
	require.True(t, pos.IsClosed(weldTol))
	require.True(t, neg.IsClosed(weldTol))

	for name, piece := range map[string]*mesh.Mesh{"positive": pos, "negative": neg} {
		a, b, err := Slice(piece, r3.Vector{}, r3.Vector{X: 1, Y: 1})
		require.NoError(t, err)
		assert.True(t, a.IsClosed(weldTol), "%s/positive has %d open edges", name, a.OpenEdges(weldTol))
		assert.True(t, b.IsClosed(weldTol), "%s/negative has %d open edges", name, b.OpenEdges(weldTol))
		assert.InDelta(t, piece.Volume(), a.Volume()+b.Volume(), 1e-9)
	}
}

func TestSliceOneSided(t *testing.T) {
	m := unitCube(t)

	pos, neg, err := Slice(m, r3.Vector{X: -2}, r3.Vector{X: 1})
	require.NoError(t, err)
	assert.Same(t, m, pos)
	assert.True(t, neg.IsEmpty())

	pos, neg, err = SliceByPlane(m, geom.NewPlane(r3.Vector{X: 1}, r3.Vector{X: 2}))
	require.NoError(t, err)
	assert.True(t, pos.IsEmpty())
	assert.Same(t, m, neg)
}

func TestSliceInterpolatesUVs(t *testing.T) {
	q, err := primitives.Quad(2, 2)
	require.NoError(t, err)

	pos, neg, err := Slice(q, r3.Vector{}, r3.Vector{X: 1})
	require.NoError(t, err)

	checked := 0
	for _, half := range []*mesh.Mesh{pos, neg} {
		for i, p := range half.Positions {
			if math.Abs(p.X) > 1e-12 || half.Normals[i].X != 1 {
				continue
			}
			assert.InDelta(t, 0.5, half.UVs[i].X, 1e-12)
			assert.InDelta(t, (p.Y+1)/2, half.UVs[i].Y, 1e-12)
			checked++
		}
	}
	assert.Greater(t, checked, 0)
}

func TestSliceErrors(t *testing.T) {
	_, _, err := Slice(unitCube(t), r3.Vector{}, r3.Vector{})
	assert.ErrorIs(t, err, ErrZeroNormal)

	_, _, err = Slice(&mesh.Mesh{}, r3.Vector{}, r3.Vector{X: 1})
	assert.ErrorIs(t, err, mesh.ErrInvalidMesh)
}

func TestHalfway(t *testing.T) {
	pts := []mesh.Vertex{
		{Position: r3.Vector{X: 0}},
		{Position: r3.Vector{X: 1}},
		{Position: r3.Vector{X: 4}},
		{Position: r3.Vector{X: 2}},
	}
	assert.Equal(t, r3.Vector{X: 2}, halfway(pts).Position)
}
