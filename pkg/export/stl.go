// Package export writes meshes as binary STL.
package export

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"
	"path/filepath"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/0x0FACED/go-fracture/pkg/mesh"
)

const headerSize = 80

// stlTriangle is one 50 byte record of a binary STL file.
type stlTriangle struct {
	Normal    [3]float32
	Vertices  [3][3]float32
	Attribute uint16
}

// WriteSTL writes m as a binary STL file whose header carries name.
func WriteSTL(w io.Writer, name string, m *mesh.Mesh) error {
	return WriteMeshes(w, name, m)
}

// WriteMeshes writes all meshes into a single binary STL file.
func WriteMeshes(w io.Writer, name string, meshes ...*mesh.Mesh) error {
	var count int
	for i, m := range meshes {
		if m == nil {
			return errors.Errorf("mesh %d is nil", i)
		}
		if len(m.Triangles)%3 != 0 {
			return errors.Wrapf(mesh.ErrInvalidMesh, "mesh %d: %d indices", i, len(m.Triangles))
		}
		count += m.TriangleCount()
	}

	bw := bufio.NewWriter(w)
	var header [headerSize]byte
	copy(header[:], name)
	if _, err := bw.Write(header[:]); err != nil {
		return errors.Wrap(err, "stl header")
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(count)); err != nil {
		return errors.Wrap(err, "stl triangle count")
	}

	for _, m := range meshes {
		for t := 0; t < m.TriangleCount(); t++ {
			rec := stlTriangle{Normal: vec32(m.FaceNormal(t))}
			for j := 0; j < 3; j++ {
				rec.Vertices[j] = vec32(m.Positions[m.Triangles[3*t+j]])
			}
			if err := binary.Write(bw, binary.LittleEndian, &rec); err != nil {
				return errors.Wrapf(err, "stl triangle %d", t)
			}
		}
	}
	return errors.Wrap(bw.Flush(), "stl flush")
}

// SaveSTL writes m to path, named after the file.
func SaveSTL(path string, m *mesh.Mesh) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "create stl")
	}
	defer multierr.AppendInvoke(&err, multierr.Close(f))

	return WriteSTL(f, filepath.Base(path), m)
}

func vec32(v r3.Vector) [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
