package voronoi

import (
	"github.com/golang/geo/r2"
)

// VertexID, HalfEdgeID and FaceID index the diagram arenas. Negative
// values mean "none".
type (
	VertexID   int
	HalfEdgeID int
	FaceID     int
)

const (
	NoVertex   VertexID   = -1
	NoHalfEdge HalfEdgeID = -1
	NoFace     FaceID     = -1
)

// Site is an input point together with the face it owns.
type Site struct {
	Index int
	Point r2.Point
	Face  FaceID
}

// Face is the Voronoi cell of one site. OuterComponent is any half-edge of
// its boundary cycle.
type Face struct {
	Site           int
	OuterComponent HalfEdgeID
}

type Vertex struct {
	Point   r2.Point
	removed bool
}

func (v Vertex) Removed() bool { return v.removed }

// HalfEdge runs from Origin to Destination with IncidentFace on its left.
// Half-edges on the clipping box have no Twin.
type HalfEdge struct {
	Origin       VertexID
	Destination  VertexID
	Twin         HalfEdgeID
	Prev         HalfEdgeID
	Next         HalfEdgeID
	IncidentFace FaceID
	removed      bool
}

func (h HalfEdge) Removed() bool { return h.removed }

func newHalfEdge(face FaceID) HalfEdge {
	return HalfEdge{
		Origin:       NoVertex,
		Destination:  NoVertex,
		Twin:         NoHalfEdge,
		Prev:         NoHalfEdge,
		Next:         NoHalfEdge,
		IncidentFace: face,
	}
}
