package fracture

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"

	"github.com/0x0FACED/go-fracture/pkg/geom"
)

// minSeedDistance is the closest two seeds may be and still get a
// bisector plane.
const minSeedDistance = 1e-3

// BisectorPlanes returns the perpendicular bisector plane of every seed
// pair. Each normal points from the first seed of the pair to the second.
func BisectorPlanes(seeds []r3.Vector) []geom.Plane {
	var planes []geom.Plane
	for i := range seeds {
		for j := i + 1; j < len(seeds); j++ {
			d := seeds[j].Sub(seeds[i])
			if d.Norm() < minSeedDistance {
				continue
			}
			mid := seeds[i].Add(seeds[j]).Mul(0.5)
			planes = append(planes, geom.NewPlane(d, mid))
		}
	}
	return planes
}

// BisectorPlanesXZ lifts 2D seeds into the plane y = y, mapping x to X
// and y to Z, and returns their bisector planes.
func BisectorPlanesXZ(seeds []r2.Point, y float64) []geom.Plane {
	return BisectorPlanes(liftXZ(seeds, y))
}

func liftXZ(pts []r2.Point, y float64) []r3.Vector {
	out := make([]r3.Vector, len(pts))
	for i, p := range pts {
		out[i] = r3.Vector{X: p.X, Y: y, Z: p.Y}
	}
	return out
}

// RadialPlanes returns cuts planes through impact that all contain the
// up axis, spread evenly over half a turn.
func RadialPlanes(impact, up r3.Vector, cuts int) []geom.Plane {
	if cuts <= 0 || up.Norm2() == 0 {
		return nil
	}
	n := up.Normalize()
	ref := r3.Vector{Y: 1}
	if math.Abs(n.Dot(ref)) > 0.99 {
		ref = r3.Vector{X: 1}
	}
	t1 := ref.Cross(n).Normalize()
	t2 := n.Cross(t1).Normalize()

	planes := make([]geom.Plane, cuts)
	for i := range planes {
		theta := float64(i) * math.Pi / float64(cuts)
		normal := t1.Mul(math.Cos(theta)).Add(t2.Mul(math.Sin(theta)))
		planes[i] = geom.NewPlane(normal, impact)
	}
	return planes
}
