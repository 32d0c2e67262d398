// Package primitives builds closed test solids wound counter-clockwise
// when seen from outside.
package primitives

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/pkg/errors"

	"github.com/0x0FACED/go-fracture/pkg/mesh"
)

var ErrBadParameter = errors.New("bad primitive parameter")

// Cube returns an axis-aligned box centred at the origin with flat
// per-face normals and a full 0..1 UV square on every face.
func Cube(size r3.Vector) (*mesh.Mesh, error) {
	if size.X <= 0 || size.Y <= 0 || size.Z <= 0 {
		return nil, errors.Wrapf(ErrBadParameter, "cube size %v", size)
	}
	h := size.Mul(0.5)

	// normal, u, v with u x v = normal
	faces := [6][3]r3.Vector{
		{{X: 1}, {Y: 1}, {Z: 1}},
		{{X: -1}, {Z: 1}, {Y: 1}},
		{{Y: 1}, {Z: 1}, {X: 1}},
		{{Y: -1}, {X: 1}, {Z: 1}},
		{{Z: 1}, {X: 1}, {Y: 1}},
		{{Z: -1}, {Y: 1}, {X: 1}},
	}
	uvs := [4]r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}

	b := mesh.NewBuffer()
	for _, f := range faces {
		n, u, v := f[0], scale(f[1], h), scale(f[2], h)
		c := scale(n, h)
		corners := [4]r3.Vector{
			c.Sub(u).Sub(v),
			c.Add(u).Sub(v),
			c.Add(u).Add(v),
			c.Sub(u).Add(v),
		}
		first := b.AddVertex(mesh.Vertex{Position: corners[0], Normal: n, UV: uvs[0]})
		for i := 1; i < 4; i++ {
			b.AddVertex(mesh.Vertex{Position: corners[i], Normal: n, UV: uvs[i]})
		}
		b.AddIndexed(first, first+1, first+2)
		b.AddIndexed(first, first+2, first+3)
	}
	return b.Mesh(), nil
}

func scale(a, b r3.Vector) r3.Vector {
	return r3.Vector{X: a.X * b.X, Y: a.Y * b.Y, Z: a.Z * b.Z}
}

// Cylinder returns a y-up cylinder whose bottom cap is centred at the
// origin.
func Cylinder(radius, height float64, sides int) (*mesh.Mesh, error) {
	if radius <= 0 || height <= 0 || sides < 3 {
		return nil, errors.Wrapf(ErrBadParameter, "cylinder r=%g h=%g sides=%d", radius, height, sides)
	}

	ring := make([]r3.Vector, sides)
	for i := range ring {
		a := 2 * math.Pi * float64(i) / float64(sides)
		ring[i] = r3.Vector{X: radius * math.Cos(a), Z: radius * math.Sin(a)}
	}
	up := r3.Vector{Y: height}
	down, top := r3.Vector{Y: -1}, r3.Vector{Y: 1}

	b := mesh.NewBuffer()
	bottomCenter := b.AddVertex(mesh.Vertex{Normal: down, UV: r2.Point{X: 0.5, Y: 0.5}})
	topCenter := b.AddVertex(mesh.Vertex{Position: up, Normal: top, UV: r2.Point{X: 0.5, Y: 0.5}})

	capUV := func(p r3.Vector) r2.Point {
		return r2.Point{X: 0.5 + p.X/(2*radius), Y: 0.5 + p.Z/(2*radius)}
	}
	bottomRing := make([]int, sides)
	topRing := make([]int, sides)
	for i, p := range ring {
		bottomRing[i] = b.AddVertex(mesh.Vertex{Position: p, Normal: down, UV: capUV(p)})
		topRing[i] = b.AddVertex(mesh.Vertex{Position: p.Add(up), Normal: top, UV: capUV(p)})
	}
	for i := 0; i < sides; i++ {
		next := (i + 1) % sides
		b.AddIndexed(bottomCenter, bottomRing[i], bottomRing[next])
		b.AddIndexed(topCenter, topRing[next], topRing[i])
	}

	// the side seam gets its own column so u can run to 1
	sideBottom := make([]int, sides+1)
	sideTop := make([]int, sides+1)
	for i := 0; i <= sides; i++ {
		p := ring[i%sides]
		n := p.Normalize()
		u := float64(i) / float64(sides)
		sideBottom[i] = b.AddVertex(mesh.Vertex{Position: p, Normal: n, UV: r2.Point{X: u, Y: 0}})
		sideTop[i] = b.AddVertex(mesh.Vertex{Position: p.Add(up), Normal: n, UV: r2.Point{X: u, Y: 1}})
	}
	for i := 0; i < sides; i++ {
		b.AddIndexed(sideBottom[i], sideTop[i], sideTop[i+1])
		b.AddIndexed(sideBottom[i], sideTop[i+1], sideBottom[i+1])
	}
	return b.Mesh(), nil
}

// Sphere returns a UV sphere centred at the origin.
func Sphere(radius float64, rings, segments int) (*mesh.Mesh, error) {
	if radius <= 0 || rings < 2 || segments < 3 {
		return nil, errors.Wrapf(ErrBadParameter, "sphere r=%g rings=%d segments=%d", radius, rings, segments)
	}

	b := mesh.NewBuffer()
	idx := make([][]int, rings+1)
	for i := 0; i <= rings; i++ {
		phi := math.Pi * float64(i) / float64(rings)
		idx[i] = make([]int, segments+1)
		for j := 0; j <= segments; j++ {
			theta := 2 * math.Pi * float64(j%segments) / float64(segments)
			n := r3.Vector{
				X: math.Sin(phi) * math.Cos(theta),
				Y: math.Cos(phi),
				Z: math.Sin(phi) * math.Sin(theta),
			}
			switch i {
			case 0:
				n = r3.Vector{Y: 1}
			case rings:
				n = r3.Vector{Y: -1}
			}
			idx[i][j] = b.AddVertex(mesh.Vertex{
				Position: n.Mul(radius),
				Normal:   n,
				UV:       r2.Point{X: float64(j) / float64(segments), Y: 1 - float64(i)/float64(rings)},
			})
		}
	}
	for i := 0; i < rings; i++ {
		for j := 0; j < segments; j++ {
			if i > 0 {
				b.AddIndexed(idx[i][j], idx[i][j+1], idx[i+1][j+1])
			}
			if i < rings-1 {
				b.AddIndexed(idx[i][j], idx[i+1][j+1], idx[i+1][j])
			}
		}
	}
	return b.Mesh(), nil
}

// Quad returns a single-sided rectangle in the XY plane facing +Z. It is
// open and only useful as a slicing target for flat geometry.
func Quad(width, height float64) (*mesh.Mesh, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Wrapf(ErrBadParameter, "quad %gx%g", width, height)
	}
	w, h := width/2, height/2
	n := r3.Vector{Z: 1}
	b := mesh.NewBuffer()
	b.AddVertex(mesh.Vertex{Position: r3.Vector{X: -w, Y: -h}, Normal: n, UV: r2.Point{X: 0, Y: 0}})
	b.AddVertex(mesh.Vertex{Position: r3.Vector{X: w, Y: -h}, Normal: n, UV: r2.Point{X: 1, Y: 0}})
	b.AddVertex(mesh.Vertex{Position: r3.Vector{X: w, Y: h}, Normal: n, UV: r2.Point{X: 1, Y: 1}})
	b.AddVertex(mesh.Vertex{Position: r3.Vector{X: -w, Y: h}, Normal: n, UV: r2.Point{X: 0, Y: 1}})
	b.AddIndexed(0, 1, 2)
	b.AddIndexed(0, 2, 3)
	return b.Mesh(), nil
}
