// Package seeds generates Voronoi sites. Random generators take an
// explicit *rand.Rand so runs can be reproduced.
package seeds

import (
	"math"
	"math/rand"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"

	"github.com/0x0FACED/go-fracture/pkg/geom"
)

// DefaultSpread is the standard deviation of AlongMiddle2D relative to the
// half width of the box.
const DefaultSpread = 0.4

func Uniform2D(r *rand.Rand, n int, box geom.Box) []r2.Point {
	pts := make([]r2.Point, n)
	for i := range pts {
		pts[i] = r2.Point{
			X: box.Left + r.Float64()*box.Width(),
			Y: box.Bottom + r.Float64()*box.Height(),
		}
	}
	return pts
}

// Grid2D places n points at the centres of a near-square grid of cells
// filled row by row.
func Grid2D(n int, box geom.Box) []r2.Point {
	if n <= 0 {
		return nil
	}
	pts := make([]r2.Point, 0, n)

	rows := int(math.Sqrt(float64(n)))
	cols := (n + rows - 1) / rows

	xStep := box.Width() / float64(cols)
	yStep := box.Height() / float64(rows)

	for i := 0; i < rows && len(pts) < n; i++ {
		for j := 0; j < cols && len(pts) < n; j++ {
			pts = append(pts, r2.Point{
				X: box.Left + xStep/2 + float64(j)*xStep,
				Y: box.Bottom + yStep/2 + float64(i)*yStep,
			})
		}
	}
	return pts
}

// AlongMiddle2D clusters x around the vertical centre line with a normal
// distribution of spread times the half width, clamped to the box; y is
// uniform.
func AlongMiddle2D(r *rand.Rand, n int, box geom.Box, spread float64) []r2.Point {
	c := box.Center()
	half := box.Width() / 2
	pts := make([]r2.Point, n)
	for i := range pts {
		x := c.X + r.NormFloat64()*half*spread
		pts[i] = r2.Point{
			X: math.Max(box.Left, math.Min(box.Right, x)),
			Y: box.Bottom + r.Float64()*box.Height(),
		}
	}
	return pts
}

func Uniform3D(r *rand.Rand, n int, lo, hi r3.Vector) []r3.Vector {
	pts := make([]r3.Vector, n)
	d := hi.Sub(lo)
	for i := range pts {
		pts[i] = r3.Vector{
			X: lo.X + r.Float64()*d.X,
			Y: lo.Y + r.Float64()*d.Y,
			Z: lo.Z + r.Float64()*d.Z,
		}
	}
	return pts
}

// Jitter moves every point by up to amount in each axis. Regular grids
// are full of co-circular sites; a tiny jitter keeps the sweep away from
// them.
func Jitter(r *rand.Rand, pts []r2.Point, amount float64) []r2.Point {
	out := make([]r2.Point, len(pts))
	for i, p := range pts {
		out[i] = r2.Point{
			X: p.X + (2*r.Float64()-1)*amount,
			Y: p.Y + (2*r.Float64()-1)*amount,
		}
	}
	return out
}
