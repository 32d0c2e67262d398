package voronoi

import (
	"github.com/golang/geo/r2"
	"go.uber.org/zap"

	"github.com/0x0FACED/go-fracture/pkg/geom"
)

// linkedVertex is a point on the box border where a face boundary enters
// or leaves the border. prevHalfEdge ends at vertex, nextHalfEdge starts
// there.
type linkedVertex struct {
	prevHalfEdge HalfEdgeID
	vertex       VertexID
	nextHalfEdge HalfEdgeID
}

// Bound closes every unbounded cell with the border of box, grown first
// to contain all vertices and sites. It reports false when an infinite
// edge misses the box or a face boundary does not close.
func (f *Fortune) Bound(box geom.Box) bool {
	d := f.diagram
	bl := f.beachline

	for _, v := range d.vertices {
		if !v.removed {
			box = box.AddPoint(v.Point)
		}
	}
	for _, p := range d.points {
		box = box.AddPoint(p)
	}
	f.log.Info("[bound] closing cells", zap.Stringer("box", box))

	if bl.isEmpty() {
		return len(d.sites) == 0
	}

	ok := true
	// per site: index 2*side is where the boundary reaches the side,
	// 2*side+1 where it leaves it
	cells := make([][8]*linkedVertex, len(d.sites))

	left := bl.leftmost()
	if bl.at(left).next == nilArc && len(f.topEdges) == 0 {
		d.boxFace(d.sites[bl.at(left).site].Face, box)
	}
	for right := bl.at(left).next; right != nilArc; left, right = right, bl.at(right).next {
		la, ra := bl.at(left), bl.at(right)
		pl, pr := bl.point(left), bl.point(right)

		direction := pl.Sub(pr).Ortho()
		origin := pl.Add(pr).Mul(0.5)
		inter, hit := box.FirstIntersection(origin, direction)
		if !hit {
			f.log.Error("[bound] infinite edge misses the box",
				zap.Int("left", la.site), zap.Int("right", ra.site))
			ok = false
			continue
		}

		v := d.createVertex(inter.Point)
		f.setDestination(left, right, v)
		side := int(inter.Side)
		cells[la.site][2*side+1] = &linkedVertex{NoHalfEdge, v, la.rightHalfEdge}
		cells[ra.site][2*side] = &linkedVertex{ra.leftHalfEdge, v, NoHalfEdge}
	}

	top := int(geom.Top)
	for _, e := range f.topEdges {
		lh, rh := d.he(e.left), d.he(e.right)
		ls, rs := d.faces[lh.IncidentFace].Site, d.faces[rh.IncidentFace].Site
		x := (d.points[ls].X + d.points[rs].X) / 2

		v := d.createVertex(r2.Point{X: x, Y: box.Top})
		lh.Destination = v
		rh.Origin = v
		cells[ls][2*top] = &linkedVertex{e.left, v, NoHalfEdge}
		cells[rs][2*top+1] = &linkedVertex{NoHalfEdge, v, e.right}
	}

	for i := range cells {
		f.addCorners(&cells[i], box)
	}

	for i := range cells {
		c := &cells[i]
		face := d.sites[i].Face
		for s := 0; s < 4; s++ {
			if c[2*s] == nil {
				continue
			}
			if c[2*s+1] == nil {
				f.log.Error("[bound] border chain left open",
					zap.Int("site", i), zap.Stringer("side", geom.Side(s)))
				ok = false
				continue
			}

			id := d.createHalfEdge(face)
			h := d.he(id)
			h.Origin = c[2*s].vertex
			h.Destination = c[2*s+1].vertex
			h.Prev = c[2*s].prevHalfEdge
			c[2*s].nextHalfEdge = id
			if h.Prev != NoHalfEdge {
				d.he(h.Prev).Next = id
			}
			h.Next = c[2*s+1].nextHalfEdge
			c[2*s+1].prevHalfEdge = id
			if h.Next != NoHalfEdge {
				d.he(h.Next).Prev = id
			}
		}
	}

	for i := range d.faces {
		if f.duplicate[i] {
			continue
		}
		if _, closed := d.FacePolygon(i); !closed {
			f.log.Error("[bound] face boundary is not closed", zap.Int("site", i))
			ok = false
		}
	}

	f.log.Info("[bound] done", zap.Bool("ok", ok),
		zap.Int("vertices", len(d.vertices)), zap.Int("halfEdges", len(d.halfEdges)))
	return ok
}

// addCorners fills the border chain of one cell with the box corners it
// passes. Five steps let a corner added on the last side feed the first.
func (f *Fortune) addCorners(c *[8]*linkedVertex, box geom.Box) {
	d := f.diagram
	for i := 0; i < 5; i++ {
		side := geom.Side(i % 4)
		s, prev, next := int(side), int(side.Prev()), int(side.Next())

		switch {
		case c[2*s] == nil && c[2*s+1] != nil:
			lv := &linkedVertex{NoHalfEdge, d.createCorner(box, side), NoHalfEdge}
			c[2*prev+1] = lv
			c[2*s] = lv
		case c[2*s] != nil && c[2*s+1] == nil:
			lv := &linkedVertex{NoHalfEdge, d.createCorner(box, side.Next()), NoHalfEdge}
			c[2*s+1] = lv
			c[2*next] = lv
		}
	}
}
