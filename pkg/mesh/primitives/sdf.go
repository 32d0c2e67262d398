package primitives

import (
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/0x0FACED/go-fracture/pkg/mesh"
)

// DefaultCells is the marching cubes resolution along the longest axis.
const DefaultCells = 64

// FromSDF tessellates s with uniform marching cubes. Every triangle gets
// its face normal and a planar XZ projection as UV.
func FromSDF(s sdf.SDF3, cells int) (*mesh.Mesh, error) {
	if cells <= 0 {
		cells = DefaultCells
	}
	renderer := render.NewMarchingCubesUniform(cells)
	triangles := render.ToTriangles(s, renderer)
	if len(triangles) == 0 {
		return nil, errors.Wrap(ErrBadParameter, "sdf produced no triangles")
	}

	bb := s.BoundingBox()
	sizeX := bb.Max.X - bb.Min.X
	sizeZ := bb.Max.Z - bb.Min.Z
	uv := func(x, z float64) r2.Point {
		p := r2.Point{}
		if sizeX > 0 {
			p.X = (x - bb.Min.X) / sizeX
		}
		if sizeZ > 0 {
			p.Y = (z - bb.Min.Z) / sizeZ
		}
		return p
	}

	b := mesh.NewBuffer()
	for _, tri := range triangles {
		fn := tri.Normal()
		n := r3.Vector{X: fn.X, Y: fn.Y, Z: fn.Z}

		var vs [3]mesh.Vertex
		for j := 0; j < 3; j++ {
			v := tri[j]
			vs[j] = mesh.Vertex{
				Position: r3.Vector{X: v.X, Y: v.Y, Z: v.Z},
				Normal:   n,
				UV:       uv(v.X, v.Z),
			}
		}
		b.AddTriangle(vs[0], vs[1], vs[2])
	}
	return b.Mesh(), nil
}

// SDFBox tessellates a box of the given size centred at the origin.
func SDFBox(x, y, z float64, cells int) (*mesh.Mesh, error) {
	s, err := sdf.Box3D(v3.Vec{X: x, Y: y, Z: z}, 0)
	if err != nil {
		return nil, errors.Wrap(err, "sdf box")
	}
	return FromSDF(s, cells)
}

// SDFCylinder tessellates a y-up cylinder standing on the origin. sdfx
// builds cylinders along z centred at the origin, so the solid is rotated
// and lifted to match Cylinder.
func SDFCylinder(radius, height float64, cells int) (*mesh.Mesh, error) {
	s, err := sdf.Cylinder3D(height, radius, 0)
	if err != nil {
		return nil, errors.Wrap(err, "sdf cylinder")
	}
	m := sdf.Translate3d(v3.Vec{Y: height / 2}).Mul(sdf.RotateX(-math.Pi / 2))
	return FromSDF(sdf.Transform3D(s, m), cells)
}
