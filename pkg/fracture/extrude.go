// Package fracture turns Voronoi cells and plane sets into closed shard
// meshes.
package fracture

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/0x0FACED/go-fracture/pkg/geom"
	"github.com/0x0FACED/go-fracture/pkg/mesh"
	"github.com/0x0FACED/go-fracture/pkg/voronoi"
)

var (
	ErrDegeneratePolygon = errors.New("polygon needs at least three distinct points and a non-zero area")
	ErrBadConfig         = errors.New("bad fracture config")
)

// Extrude builds a closed prism over the convex polygon poly, spanning
// z = -thickness/2 .. +thickness/2. The polygon may be given in either
// winding.
func Extrude(poly []r2.Point, thickness float64) (*mesh.Mesh, error) {
	if thickness <= 0 {
		return nil, errors.Wrapf(ErrBadConfig, "thickness = %g", thickness)
	}
	pts := dedupe(poly)
	if len(pts) < 3 || math.Abs(voronoi.SignedArea(pts)) <= geom.Epsilon {
		return nil, errors.Wrapf(ErrDegeneratePolygon, "%d points", len(poly))
	}
	if voronoi.SignedArea(pts) < 0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}

	bounds := geom.BoxFromPoints(pts...)
	uv := func(p r2.Point) r2.Point {
		return r2.Point{
			X: (p.X - bounds.Left) / bounds.Width(),
			Y: (p.Y - bounds.Bottom) / bounds.Height(),
		}
	}
	h := thickness / 2
	top := r3.Vector{Z: 1}
	bottom := r3.Vector{Z: -1}
	vertex := func(p r2.Point, z float64, n r3.Vector, tex r2.Point) mesh.Vertex {
		return mesh.Vertex{Position: r3.Vector{X: p.X, Y: p.Y, Z: z}, Normal: n, UV: tex}
	}

	b := mesh.NewBuffer()
	for i := 1; i+1 < len(pts); i++ {
		p0, p1, p2 := pts[0], pts[i], pts[i+1]
		b.AddTriangle(vertex(p0, h, top, uv(p0)), vertex(p1, h, top, uv(p1)), vertex(p2, h, top, uv(p2)))
		b.AddTriangle(vertex(p0, -h, bottom, uv(p0)), vertex(p2, -h, bottom, uv(p2)), vertex(p1, -h, bottom, uv(p1)))
	}

	var perimeter float64
	for i := range pts {
		perimeter += pts[(i+1)%len(pts)].Sub(pts[i]).Norm()
	}
	var walked float64
	for i := range pts {
		a, c := pts[i], pts[(i+1)%len(pts)]
		edge := c.Sub(a)
		n := r3.Vector{X: edge.Y, Y: -edge.X}.Normalize()

		u0 := walked / perimeter
		walked += edge.Norm()
		u1 := walked / perimeter

		aTop := vertex(a, h, n, r2.Point{X: u0, Y: 1})
		aBot := vertex(a, -h, n, r2.Point{X: u0, Y: 0})
		cTop := vertex(c, h, n, r2.Point{X: u1, Y: 1})
		cBot := vertex(c, -h, n, r2.Point{X: u1, Y: 0})
		b.AddTriangle(aTop, cBot, cTop)
		b.AddTriangle(aTop, aBot, cBot)
	}
	return b.Mesh(), nil
}

// dedupe drops consecutive points closer than geom.Epsilon, including the
// wrap from the last point to the first.
func dedupe(poly []r2.Point) []r2.Point {
	out := make([]r2.Point, 0, len(poly))
	for _, p := range poly {
		if len(out) > 0 && out[len(out)-1].Sub(p).Norm() <= geom.Epsilon {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[0].Sub(out[len(out)-1]).Norm() <= geom.Epsilon {
		out = out[:len(out)-1]
	}
	return out
}

// VoronoiShards extrudes every closed face of d whose area is at least
// minArea. Faces that do not close are skipped.
func VoronoiShards(d *voronoi.Diagram, thickness, minArea float64) ([]*mesh.Mesh, error) {
	var shards []*mesh.Mesh
	for i := 0; i < d.NumSites(); i++ {
		poly, ok := d.FacePolygon(i)
		if !ok || voronoi.SignedArea(poly) < minArea {
			continue
		}
		m, err := Extrude(poly, thickness)
		if errors.Is(err, ErrDegeneratePolygon) {
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "face %d", i)
		}
		shards = append(shards, m)
	}
	return shards, nil
}
