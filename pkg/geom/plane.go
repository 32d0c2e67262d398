package geom

import (
	"math"

	"github.com/golang/geo/r3"
)

// Plane is the set of points p with Normal·p + Distance = 0. Normal is
// kept at unit length.
type Plane struct {
	Normal   r3.Vector
	Distance float64
}

// NewPlane builds the plane through point with the given normal.
func NewPlane(normal, point r3.Vector) Plane {
	n := normal.Normalize()
	return Plane{Normal: n, Distance: -n.Dot(point)}
}

// Point returns the point of the plane closest to the origin.
func (p Plane) Point() r3.Vector {
	return p.Normal.Mul(-p.Distance)
}

func (p Plane) SignedDistance(v r3.Vector) float64 {
	return p.Normal.Dot(v) + p.Distance
}

// Side reports whether v is on the positive side; points on the plane
// count as positive.
func (p Plane) Side(v r3.Vector) bool {
	return p.SignedDistance(v) >= 0
}

func (p Plane) Flipped() Plane {
	return Plane{Normal: p.Normal.Mul(-1), Distance: -p.Distance}
}

// SegmentIntersection returns the point where the line through from and to
// meets the plane through origin with the given normal. It fails when the
// segment is parallel to the plane.
func SegmentIntersection(from, to, origin, normal r3.Vector) (r3.Vector, bool) {
	dir := to.Sub(from)
	den := normal.Dot(dir)
	if math.Abs(den) < Epsilon {
		return from, false
	}
	fac := -normal.Dot(from.Sub(origin)) / den
	return from.Add(dir.Mul(fac)), true
}
