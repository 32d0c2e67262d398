package voronoi

import (
	"github.com/golang/geo/r2"
)

// maxWalk bounds every walk around a face boundary.
const maxWalk = 10000

// FacePolygon walks the boundary of face i and returns its vertices
// counter-clockwise. ok is false when the walk hits an open or removed
// half-edge or does not come back to its start.
func (d *Diagram) FacePolygon(i int) (poly []r2.Point, ok bool) {
	start := d.faces[i].OuterComponent
	if start == NoHalfEdge {
		return nil, false
	}

	he := start
	for n := 0; n < maxWalk; n++ {
		h := d.halfEdges[he]
		if h.removed || h.Origin == NoVertex {
			return poly, false
		}
		poly = append(poly, d.vertices[h.Origin].Point)

		he = h.Next
		if he == NoHalfEdge {
			return poly, false
		}
		if he == start {
			if SignedArea(poly) < 0 {
				reverse(poly)
			}
			return poly, true
		}
	}
	return poly, false
}

// Polygons returns the polygon of every face; faces that do not close
// get nil.
func (d *Diagram) Polygons() [][]r2.Point {
	res := make([][]r2.Point, len(d.faces))
	for i := range d.faces {
		if poly, ok := d.FacePolygon(i); ok {
			res[i] = poly
		}
	}
	return res
}

// SignedArea is positive for counter-clockwise polygons.
func SignedArea(poly []r2.Point) float64 {
	var a float64
	for i := range poly {
		a += poly[i].Cross(poly[(i+1)%len(poly)])
	}
	return a / 2
}

// PolygonContains reports whether p is inside poly by ray casting.
func PolygonContains(poly []r2.Point, p r2.Point) bool {
	in := false
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a, b := poly[i], poly[j]
		if (a.Y > p.Y) != (b.Y > p.Y) && p.X < (b.X-a.X)*(p.Y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

func reverse(poly []r2.Point) {
	for i, j := 0, len(poly)-1; i < j; i, j = i+1, j-1 {
		poly[i], poly[j] = poly[j], poly[i]
	}
}

// Neighbors returns the sites whose cells share an edge with site i, in
// boundary order. Box edges have no neighbour and are skipped.
func (d *Diagram) Neighbors(i int) []int {
	start := d.faces[i].OuterComponent
	if start == NoHalfEdge {
		return nil
	}
	var res []int
	seen := make(map[int]bool)
	he := start
	for n := 0; n < maxWalk; n++ {
		h := d.halfEdges[he]
		if h.Twin != NoHalfEdge {
			j := d.faces[d.halfEdges[h.Twin].IncidentFace].Site
			if !seen[j] {
				seen[j] = true
				res = append(res, j)
			}
		}
		he = h.Next
		if he == NoHalfEdge || he == start {
			break
		}
	}
	return res
}
