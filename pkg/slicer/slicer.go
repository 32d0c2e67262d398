// Package slicer cuts a closed triangle mesh with a plane into two closed
// meshes, capping the cross-section on both sides.
package slicer

import (
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/0x0FACED/go-fracture/pkg/geom"
	"github.com/0x0FACED/go-fracture/pkg/mesh"
)

var ErrZeroNormal = errors.New("plane normal has zero length")

// SliceByPlane cuts m with p. See Slice.
func SliceByPlane(m *mesh.Mesh, p geom.Plane) (positive, negative *mesh.Mesh, err error) {
	return Slice(m, p.Point(), p.Normal)
}

// Slice splits m by the plane through planePoint with planeNormal.
// Triangles with every vertex at dot(n, p-planePoint) >= 0 go to positive,
// the rest to negative; straddling triangles are cut in three. When no
// triangle is cut and one side is empty, m itself is returned on the other
// side.
func Slice(m *mesh.Mesh, planePoint, planeNormal r3.Vector) (positive, negative *mesh.Mesh, err error) {
	if planeNormal.Norm2() == 0 {
		return nil, nil, ErrZeroNormal
	}
	if err := m.Validate(); err != nil {
		return nil, nil, errors.Wrap(err, "slice")
	}

	plane := geom.NewPlane(planeNormal, planePoint)
	n := plane.Normal
	pos, neg := mesh.NewBuffer(), mesh.NewBuffer()
	side := func(s bool) *mesh.Buffer {
		if s {
			return pos
		}
		return neg
	}

	var along []mesh.Vertex
	tris := m.Triangles
	for i := 0; i < len(tris); i += 3 {
		a := vertexData(m, plane, tris[i])
		b := vertexData(m, plane, tris[i+1])
		c := vertexData(m, plane, tris[i+2])

		abSame := a.Side == b.Side
		bcSame := b.Side == c.Side

		if abSame && bcSame {
			side(a.Side).AddTriangle(a, b, c)
			continue
		}

		// along keeps each cut edge in the direction the positive piece
		// walks it.
		var d, e mesh.Vertex
		var reversed bool
		switch {
		case abSame:
			d = intersection(a, c, planePoint, n)
			e = intersection(b, c, planePoint, n)
			side(a.Side).AddTriangle(a, b, e)
			side(a.Side).AddTriangle(a, e, d)
			side(c.Side).AddTriangle(e, c, d)
			reversed = a.Side
		case bcSame:
			d = intersection(b, a, planePoint, n)
			e = intersection(c, a, planePoint, n)
			side(b.Side).AddTriangle(b, c, e)
			side(b.Side).AddTriangle(b, e, d)
			side(a.Side).AddTriangle(e, a, d)
			reversed = b.Side
		default:
			d = intersection(a, b, planePoint, n)
			e = intersection(c, b, planePoint, n)
			side(a.Side).AddTriangle(a, e, c)
			side(a.Side).AddTriangle(d, e, a)
			side(b.Side).AddTriangle(b, e, d)
			reversed = !a.Side
		}
		if reversed {
			d, e = e, d
		}
		along = append(along, d, e)
	}

	if len(along) == 0 {
		switch {
		case neg.TriangleCount() == 0:
			return m, &mesh.Mesh{}, nil
		case pos.TriangleCount() == 0:
			return &mesh.Mesh{}, m, nil
		}
	}

	capCrossSection(pos, neg, n, along)
	return pos.Mesh(), neg.Mesh(), nil
}

func vertexData(m *mesh.Mesh, p geom.Plane, i int) mesh.Vertex {
	v := m.Vertex(i)
	v.Side = p.Side(v.Position)
	return v
}

// intersection returns the vertex where edge a-b meets the plane. The UV is
// interpolated by distance; the normal is the plane normal.
func intersection(a, b mesh.Vertex, origin, normal r3.Vector) mesh.Vertex {
	p, _ := geom.SegmentIntersection(a.Position, b.Position, origin, normal)
	da := a.Position.Distance(p)
	db := b.Position.Distance(p)
	t := 0.0
	if da+db > 0 {
		t = da / (da + db)
	}
	return mesh.Vertex{
		Position: p,
		Normal:   normal,
		UV:       lerpUV(a.UV, b.UV, t),
	}
}

func lerpUV(a, b r2.Point, t float64) r2.Point {
	return a.Add(b.Sub(a).Mul(t))
}

// halfway returns the midpoint between the first cut point and the cut
// point farthest from it.
func halfway(points []mesh.Vertex) mesh.Vertex {
	first := points[0]
	far := first
	best := 0.0
	for _, p := range points[1:] {
		if d := first.Position.Distance(p.Position); d > best {
			best = d
			far = p
		}
	}
	return mesh.Vertex{
		Position: first.Position.Add(far.Position).Mul(0.5),
		UV:       lerpUV(first.UV, far.UV, 0.5),
	}
}

// capCrossSection closes both halves with a fan from the halfway point
// over every recorded cut segment. The positive cap runs each segment
// backwards and the negative cap forwards. Cap vertices get the outward
// normal of the cap they belong to.
func capCrossSection(pos, neg *mesh.Buffer, n r3.Vector, along []mesh.Vertex) {
	if len(along) == 0 {
		return
	}
	h := halfway(along)

	withNormal := func(v mesh.Vertex, nn r3.Vector) mesh.Vertex {
		v.Normal = nn
		return v
	}
	out := n.Mul(-1)

	for i := 0; i+1 < len(along); i += 2 {
		from, to := along[i], along[i+1]
		pos.AddTriangle(withNormal(to, out), withNormal(from, out), withNormal(h, out))
		neg.AddTriangle(withNormal(from, n), withNormal(to, n), withNormal(h, n))
	}
}
