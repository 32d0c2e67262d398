package voronoi

// arc is one parabola of the beachline. It is a node of the beachline
// red-black tree and of the doubly linked list threaded through it in
// left-to-right order.
type arc struct {
	parent arcID
	left   arcID
	right  arcID
	prev   arcID
	next   arcID
	red    bool

	site          int
	leftHalfEdge  HalfEdgeID
	rightHalfEdge HalfEdgeID
	event         *event
}
