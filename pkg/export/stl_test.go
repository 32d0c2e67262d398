package export

import (
	"bytes"
	"encoding/binary"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x0FACED/go-fracture/pkg/mesh"
	"github.com/0x0FACED/go-fracture/pkg/mesh/primitives"
)

func cube(t *testing.T, size float64) *mesh.Mesh {
	t.Helper()
	m, err := primitives.Cube(r3.Vector{X: size, Y: size, Z: size})
	require.NoError(t, err)
	return m
}

func TestWriteSTL(t *testing.T) {
	m := cube(t, 2)
	var buf bytes.Buffer
	require.NoError(t, WriteSTL(&buf, "cube", m))

	data := buf.Bytes()
	require.Len(t, data, 84+50*m.TriangleCount())
	assert.Equal(t, "cube", string(bytes.TrimRight(data[:80], "\x00")))
	assert.Equal(t, uint32(m.TriangleCount()), binary.LittleEndian.Uint32(data[80:84]))

	var rec stlTriangle
	require.NoError(t, binary.Read(bytes.NewReader(data[84:134]), binary.LittleEndian, &rec))
	n := m.FaceNormal(0)
	assert.InDelta(t, n.X, float64(rec.Normal[0]), 1e-6)
	assert.InDelta(t, n.Y, float64(rec.Normal[1]), 1e-6)
	assert.InDelta(t, n.Z, float64(rec.Normal[2]), 1e-6)

	p := m.Positions[m.Triangles[1]]
	assert.InDelta(t, p.X, float64(rec.Vertices[1][0]), 1e-6)
	assert.InDelta(t, p.Z, float64(rec.Vertices[1][2]), 1e-6)
	for _, c := range rec.Vertices[2] {
		assert.InDelta(t, 1, math.Abs(float64(c)), 1e-6)
	}
}

func TestWriteMeshes(t *testing.T) {
	a, b := cube(t, 1), cube(t, 3)
	var buf bytes.Buffer
	require.NoError(t, WriteMeshes(&buf, "pair", a, b))

	tris := a.TriangleCount() + b.TriangleCount()
	assert.Len(t, buf.Bytes(), 84+50*tris)
	assert.Equal(t, uint32(tris), binary.LittleEndian.Uint32(buf.Bytes()[80:84]))

	buf.Reset()
	require.NoError(t, WriteMeshes(&buf, "empty"))
	assert.Len(t, buf.Bytes(), 84)
}

func TestWriteRejects(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteMeshes(&buf, "nil", nil))

	bad := &mesh.Mesh{Positions: []r3.Vector{{}}, Triangles: []int{0, 0}}
	assert.ErrorIs(t, WriteSTL(&buf, "bad", bad), mesh.ErrInvalidMesh)
}

type failWriter struct{}

var errDiskFull = errors.New("disk full")

func (failWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestWriteError(t *testing.T) {
	err := WriteSTL(failWriter{}, "x", cube(t, 1))
	assert.ErrorIs(t, err, errDiskFull)
}

func TestSaveSTL(t *testing.T) {
	m := cube(t, 1)
	path := filepath.Join(t.TempDir(), "cube.stl")
	require.NoError(t, SaveSTL(path, m))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(84+50*m.TriangleCount()), info.Size())

	assert.Error(t, SaveSTL(filepath.Join(t.TempDir(), "missing", "cube.stl"), m))
}
