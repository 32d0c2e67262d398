package primitives

import (
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const weldTol = 1e-9

func TestCube(t *testing.T) {
	m, err := Cube(r3.Vector{X: 2, Y: 1, Z: 0.5})
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	assert.Equal(t, 12, m.TriangleCount())
	assert.Equal(t, 24, m.VertexCount())
	assert.InDelta(t, 1.0, m.Volume(), 1e-12)
	assert.InDelta(t, 2*(2+1+0.5), m.SurfaceArea(), 1e-12)
	assert.True(t, m.IsClosed(weldTol))

	for tri := 0; tri < m.TriangleCount(); tri++ {
		n := m.Normals[m.Triangles[3*tri]]
		assert.InDelta(t, 1, n.Dot(m.FaceNormal(tri)), 1e-12, "triangle %d wound against its normal", tri)
	}
}

func TestCylinder(t *testing.T) {
	const sides = 48
	m, err := Cylinder(0.5, 2, sides)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	assert.Equal(t, 4*sides, m.TriangleCount())
	assert.True(t, m.IsClosed(weldTol))

	// inscribed polygon area times height
	want := 0.5 * sides * 0.25 * math.Sin(2*math.Pi/sides) * 2
	assert.InDelta(t, want, m.Volume(), 1e-9)

	lo, hi := m.Bounds()
	assert.InDelta(t, 0, lo.Y, 1e-12)
	assert.InDelta(t, 2, hi.Y, 1e-12)
}

func TestSphere(t *testing.T) {
	m, err := Sphere(1, 24, 48)
	require.NoError(t, err)
	require.NoError(t, m.Validate())

	assert.True(t, m.IsClosed(weldTol))
	assert.InDelta(t, 4.0/3*math.Pi, m.Volume(), 0.05)
}

func TestQuadIsOpen(t *testing.T) {
	m, err := Quad(2, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, m.TriangleCount())
	assert.False(t, m.IsClosed(weldTol))
	assert.InDelta(t, 1, m.FaceNormal(0).Z, 1e-12)
}

func TestBadParameters(t *testing.T) {
	_, err := Cube(r3.Vector{X: 1, Y: 0, Z: 1})
	assert.ErrorIs(t, err, ErrBadParameter)
	_, err = Cylinder(1, 1, 2)
	assert.ErrorIs(t, err, ErrBadParameter)
	_, err = Sphere(-1, 8, 8)
	assert.ErrorIs(t, err, ErrBadParameter)
	_, err = Quad(0, 1)
	assert.ErrorIs(t, err, ErrBadParameter)
}

func TestSDFBox(t *testing.T) {
	m, err := SDFBox(2, 1, 1, 32)
	require.NoError(t, err)
	require.NoError(t, m.Validate())
	require.Greater(t, m.TriangleCount(), 0)

	lo, hi := m.Bounds()
	assert.InDelta(t, -1, lo.X, 0.1)
	assert.InDelta(t, 1, hi.X, 0.1)
	assert.InDelta(t, 2, math.Abs(m.Volume()), 0.2)
}

func TestSDFCylinderStandsOnOrigin(t *testing.T) {
	m, err := SDFCylinder(0.5, 2, 32)
	require.NoError(t, err)

	lo, hi := m.Bounds()
	assert.InDelta(t, 0, lo.Y, 0.1)
	assert.InDelta(t, 2, hi.Y, 0.1)
	assert.InDelta(t, 0.5, hi.X, 0.1)
}
