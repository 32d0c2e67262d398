package voronoi

import (
	"github.com/golang/geo/r2"

	"github.com/0x0FACED/go-fracture/pkg/pq"
)

type eventKind uint8

const (
	siteEvent eventKind = iota
	circleEvent
)

// event is a site reaching the sweep line or an arc shrinking to nothing.
// For circle events y is the bottom of the circle and point its centre.
type event struct {
	kind   eventKind
	y      float64
	point  r2.Point
	site   int
	arc    arcID
	handle pq.Handle
}

// eventBefore orders the queue: higher y first, then smaller x, then site
// events before circle events. Equal sites pop in input order.
func eventBefore(a, b *event) bool {
	if a.y != b.y {
		return a.y > b.y
	}
	if a.point.X != b.point.X {
		return a.point.X < b.point.X
	}
	if a.kind != b.kind {
		return a.kind < b.kind
	}
	return a.site < b.site
}
