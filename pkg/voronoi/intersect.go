package voronoi

import (
	"github.com/golang/geo/r2"
	"go.uber.org/zap"

	"github.com/0x0FACED/go-fracture/pkg/geom"
)

// Intersect clips every face to box. Half-edges outside are removed,
// crossing ones are cut at the border and consecutive cut points of a face
// are joined along the border through the corners in between. It reports
// false when an edge crosses the border an unexpected number of times or
// a face boundary is broken.
func (d *Diagram) Intersect(box geom.Box) bool {
	ok := true
	processed := make(map[HalfEdgeID]bool)
	toRemove := make(map[VertexID]bool)

	for i := range d.sites {
		face := d.sites[i].Face
		start := d.faces[face].OuterComponent
		if start == NoHalfEdge {
			continue
		}

		var (
			loop         []r2.Point
			incoming     = NoHalfEdge
			outgoing     = NoHalfEdge
			incomingSide geom.Side
			outgoingSide geom.Side
		)

		inside := box.Contains(d.vertices[d.halfEdges[start].Origin].Point)
		dirty := !inside
		he := start
	walk:
		for steps := 0; ; steps++ {
			if steps >= maxWalk {
				d.log.Error("[clip] face walk did not terminate", zap.Int("site", i))
				ok = false
				break
			}
			h := d.he(he)
			if h.Origin == NoVertex || h.Destination == NoVertex {
				d.log.Error("[clip] open half-edge", zap.Int("site", i), zap.Int("halfEdge", int(he)))
				ok = false
				break
			}
			from, to := d.vertices[h.Origin].Point, d.vertices[h.Destination].Point
			loop = append(loop, from)

			nextInside := box.Contains(to)
			next := h.Next
			twinDone := h.Twin != NoHalfEdge && processed[h.Twin]

			switch {
			case !inside && !nextInside:
				inters := box.Intersections(from, to)
				switch len(inters) {
				case 0, 1:
					// A single hit only grazes a corner.
					toRemove[h.Origin] = true
					d.removeHalfEdge(he)
				default:
					toRemove[h.Origin] = true
					if twinDone {
						t := d.halfEdges[h.Twin]
						h.Origin, h.Destination = t.Destination, t.Origin
					} else {
						h.Origin = d.createVertex(inters[0].Point)
						h.Destination = d.createVertex(inters[1].Point)
					}
					if outgoing != NoHalfEdge {
						d.link(box, outgoing, outgoingSide, he, inters[0].Side)
					}
					if incoming == NoHalfEdge {
						incoming, incomingSide = he, inters[0].Side
					}
					outgoing, outgoingSide = he, inters[1].Side
					processed[he] = true
				}

			case inside && !nextInside:
				exit, hit := box.Crossing(from, to)
				if !hit {
					d.log.Error("[clip] no exit point", zap.Int("site", i), zap.Int("halfEdge", int(he)))
					ok = false
					break walk
				}
				if twinDone {
					h.Destination = d.halfEdges[h.Twin].Origin
				} else {
					h.Destination = d.createVertex(exit.Point)
				}
				outgoing, outgoingSide = he, exit.Side
				processed[he] = true

			case !inside && nextInside:
				entry, hit := box.Crossing(to, from)
				if !hit {
					d.log.Error("[clip] no entry point", zap.Int("site", i), zap.Int("halfEdge", int(he)))
					ok = false
					break walk
				}
				toRemove[h.Origin] = true
				if twinDone {
					h.Origin = d.halfEdges[h.Twin].Destination
				} else {
					h.Origin = d.createVertex(entry.Point)
				}
				if outgoing != NoHalfEdge {
					d.link(box, outgoing, outgoingSide, he, entry.Side)
				}
				if incoming == NoHalfEdge {
					incoming, incomingSide = he, entry.Side
				}
				processed[he] = true
			}

			if next == NoHalfEdge {
				d.log.Error("[clip] broken face cycle", zap.Int("site", i))
				ok = false
				break
			}
			he = next
			inside = nextInside
			if he == start {
				break
			}
		}

		if dirty && incoming != NoHalfEdge && outgoing != NoHalfEdge {
			d.link(box, outgoing, outgoingSide, incoming, incomingSide)
		}
		if dirty {
			d.faces[face].OuterComponent = incoming
			if incoming == NoHalfEdge && PolygonContains(loop, box.Center()) {
				d.boxFace(face, box)
			}
		}
	}

	for v := range toRemove {
		d.removeVertex(v)
	}
	d.log.Info("[clip] done", zap.Bool("ok", ok), zap.Stringer("box", box),
		zap.Int("removedVertices", len(toRemove)))
	return ok
}

// link joins start, which leaves the box on startSide, to end, which
// enters it on endSide, with new half-edges along the border.
func (d *Diagram) link(box geom.Box, start HalfEdgeID, startSide geom.Side, end HalfEdgeID, endSide geom.Side) {
	face := d.halfEdges[start].IncidentFace
	he := start
	side := startSide
	for side != endSide {
		side = side.Next()
		n := d.createHalfEdge(face)
		corner := d.createCorner(box, side)
		h := d.he(n)
		h.Prev = he
		h.Origin = d.halfEdges[he].Destination
		h.Destination = corner
		d.he(he).Next = n
		he = n
	}
	n := d.createHalfEdge(face)
	h := d.he(n)
	h.Prev = he
	h.Next = end
	h.Origin = d.halfEdges[he].Destination
	h.Destination = d.halfEdges[end].Origin
	d.he(he).Next = n
	d.he(end).Prev = n
}
