package voronoi

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/0x0FACED/go-fracture/pkg/geom"
	"github.com/0x0FACED/go-fracture/pkg/logger"
)

// Diagram is a doubly connected edge list over one face per site.
// Vertices and half-edges live in flat arenas; removed entries are
// tombstoned so ids never move.
type Diagram struct {
	points    []r2.Point
	sites     []Site
	faces     []Face
	vertices  []Vertex
	halfEdges []HalfEdge
	log       *logger.ZapLogger
}

func newDiagram(points []r2.Point, log *logger.ZapLogger) *Diagram {
	d := &Diagram{
		points: append([]r2.Point(nil), points...),
		sites:  make([]Site, len(points)),
		faces:  make([]Face, len(points)),
		log:    log,
	}
	for i, p := range d.points {
		d.sites[i] = Site{Index: i, Point: p, Face: FaceID(i)}
		d.faces[i] = Face{Site: i, OuterComponent: NoHalfEdge}
	}
	return d
}

func (d *Diagram) NumSites() int   { return len(d.sites) }
func (d *Diagram) Site(i int) Site { return d.sites[i] }
func (d *Diagram) Face(i int) Face { return d.faces[i] }
func (d *Diagram) Sites() []Site   { return append([]Site(nil), d.sites...) }

func (d *Diagram) Vertex(id VertexID) Vertex { return d.vertices[id] }

func (d *Diagram) HalfEdge(id HalfEdgeID) HalfEdge { return d.halfEdges[id] }

// Vertices returns the ids of all live vertices.
func (d *Diagram) Vertices() []VertexID {
	var ids []VertexID
	for i, v := range d.vertices {
		if !v.removed {
			ids = append(ids, VertexID(i))
		}
	}
	return ids
}

// HalfEdges returns the ids of all live half-edges.
func (d *Diagram) HalfEdges() []HalfEdgeID {
	var ids []HalfEdgeID
	for i, h := range d.halfEdges {
		if !h.removed {
			ids = append(ids, HalfEdgeID(i))
		}
	}
	return ids
}

// Segment returns the end points of a half-edge. ok is false while either
// end is still open.
func (d *Diagram) Segment(id HalfEdgeID) (a, b r2.Point, ok bool) {
	h := d.halfEdges[id]
	if h.Origin == NoVertex || h.Destination == NoVertex {
		return a, b, false
	}
	return d.vertices[h.Origin].Point, d.vertices[h.Destination].Point, true
}

func (d *Diagram) he(id HalfEdgeID) *HalfEdge { return &d.halfEdges[id] }

func (d *Diagram) createVertex(p r2.Point) VertexID {
	d.vertices = append(d.vertices, Vertex{Point: p})
	return VertexID(len(d.vertices) - 1)
}

func (d *Diagram) createCorner(box geom.Box, side geom.Side) VertexID {
	return d.createVertex(box.Corner(side))
}

func (d *Diagram) createHalfEdge(face FaceID) HalfEdgeID {
	d.halfEdges = append(d.halfEdges, newHalfEdge(face))
	id := HalfEdgeID(len(d.halfEdges) - 1)
	if d.faces[face].OuterComponent == NoHalfEdge {
		d.faces[face].OuterComponent = id
	}
	return id
}

func (d *Diagram) removeVertex(id VertexID) {
	d.vertices[id].removed = true
}

func (d *Diagram) removeHalfEdge(id HalfEdgeID) {
	h := d.he(id)
	if h.Twin != NoHalfEdge && d.halfEdges[h.Twin].Twin == id {
		d.halfEdges[h.Twin].Twin = NoHalfEdge
	}
	h.removed = true
}

// boxFace makes the box rectangle the boundary of face.
func (d *Diagram) boxFace(face FaceID, box geom.Box) {
	var corners [4]VertexID
	for s := range corners {
		corners[s] = d.createCorner(box, geom.Side(s))
	}
	var edges [4]HalfEdgeID
	for s := range edges {
		edges[s] = d.createHalfEdge(face)
		h := d.he(edges[s])
		h.Origin = corners[s]
		h.Destination = corners[(s+1)%4]
	}
	for s := range edges {
		h := d.he(edges[s])
		h.Next = edges[(s+1)%4]
		h.Prev = edges[(s+3)%4]
	}
	d.faces[face].OuterComponent = edges[0]
}

// Validate checks the twin, next and prev links of every live half-edge
// and reports all violations.
func (d *Diagram) Validate() error {
	var err error
	for i, h := range d.halfEdges {
		if h.removed {
			continue
		}
		id := HalfEdgeID(i)

		if h.Origin == NoVertex || h.Destination == NoVertex {
			err = multierr.Append(err, errors.Errorf("half-edge %d has an open end", id))
		} else if d.vertices[h.Origin].removed || d.vertices[h.Destination].removed {
			err = multierr.Append(err, errors.Errorf("half-edge %d uses a removed vertex", id))
		}

		if h.Twin != NoHalfEdge {
			t := d.halfEdges[h.Twin]
			if t.removed || t.Twin != id {
				err = multierr.Append(err, errors.Errorf("half-edge %d: twin %d does not point back", id, h.Twin))
			}
		}

		switch {
		case h.Next == NoHalfEdge:
			err = multierr.Append(err, errors.Errorf("half-edge %d has no next", id))
		case d.halfEdges[h.Next].removed || d.halfEdges[h.Next].Prev != id:
			err = multierr.Append(err, errors.Errorf("half-edge %d: next %d does not point back", id, h.Next))
		case d.halfEdges[h.Next].Origin != h.Destination:
			err = multierr.Append(err, errors.Errorf("half-edge %d: next %d starts elsewhere", id, h.Next))
		case d.halfEdges[h.Next].IncidentFace != h.IncidentFace:
			err = multierr.Append(err, errors.Errorf("half-edge %d: next %d is on another face", id, h.Next))
		}

		switch {
		case h.Prev == NoHalfEdge:
			err = multierr.Append(err, errors.Errorf("half-edge %d has no prev", id))
		case d.halfEdges[h.Prev].removed || d.halfEdges[h.Prev].Next != id:
			err = multierr.Append(err, errors.Errorf("half-edge %d: prev %d does not point forward", id, h.Prev))
		}
	}
	return err
}
