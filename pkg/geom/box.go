package geom

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
)

// boxEpsilon is looser than Epsilon: points produced by clipping sit on
// the box border and must still count as inside.
const boxEpsilon = 1e-6

// Side identifies one border of a Box. The order is counter-clockwise
// starting from the left border.
type Side int

const (
	Left Side = iota
	Bottom
	Right
	Top
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Bottom:
		return "bottom"
	case Right:
		return "right"
	case Top:
		return "top"
	}
	return fmt.Sprintf("side(%d)", int(s))
}

func (s Side) Next() Side { return (s + 1) % 4 }
func (s Side) Prev() Side { return (s + 3) % 4 }

// Intersection is a point where a ray or a segment crosses a box border.
type Intersection struct {
	Side  Side
	Point r2.Point
}

// Box is an axis-aligned rectangle with Top > Bottom.
type Box struct {
	Left   float64
	Bottom float64
	Right  float64
	Top    float64
}

func NewBox(left, bottom, right, top float64) Box {
	return Box{Left: left, Bottom: bottom, Right: right, Top: top}
}

// BoxFromPoints returns the smallest box containing every point.
func BoxFromPoints(pts ...r2.Point) Box {
	b := Box{
		Left:   math.Inf(1),
		Bottom: math.Inf(1),
		Right:  math.Inf(-1),
		Top:    math.Inf(-1),
	}
	for _, p := range pts {
		b = b.AddPoint(p)
	}
	return b
}

func (b Box) Width() float64  { return b.Right - b.Left }
func (b Box) Height() float64 { return b.Top - b.Bottom }
func (b Box) Area() float64   { return b.Width() * b.Height() }

func (b Box) Center() r2.Point {
	return r2.Point{X: (b.Left + b.Right) / 2, Y: (b.Bottom + b.Top) / 2}
}

func (b Box) IsValid() bool {
	return b.Left <= b.Right && b.Bottom <= b.Top
}

func (b Box) Rect() r2.Rect {
	return r2.RectFromPoints(r2.Point{X: b.Left, Y: b.Bottom}, r2.Point{X: b.Right, Y: b.Top})
}

// Contains reports whether p lies inside the box, borders included.
func (b Box) Contains(p r2.Point) bool {
	return p.X >= b.Left-boxEpsilon && p.X <= b.Right+boxEpsilon &&
		p.Y >= b.Bottom-boxEpsilon && p.Y <= b.Top+boxEpsilon
}

func (b Box) AddPoint(p r2.Point) Box {
	return Box{
		Left:   math.Min(b.Left, p.X),
		Bottom: math.Min(b.Bottom, p.Y),
		Right:  math.Max(b.Right, p.X),
		Top:    math.Max(b.Top, p.Y),
	}
}

func (b Box) Expanded(margin float64) Box {
	return Box{
		Left:   b.Left - margin,
		Bottom: b.Bottom - margin,
		Right:  b.Right + margin,
		Top:    b.Top + margin,
	}
}

// Corner returns the corner where the border s starts when the box is
// walked counter-clockwise.
func (b Box) Corner(s Side) r2.Point {
	switch s {
	case Left:
		return r2.Point{X: b.Left, Y: b.Top}
	case Bottom:
		return r2.Point{X: b.Left, Y: b.Bottom}
	case Right:
		return r2.Point{X: b.Right, Y: b.Bottom}
	default:
		return r2.Point{X: b.Right, Y: b.Top}
	}
}

// Corners lists the four corners counter-clockwise, starting at the top left.
func (b Box) Corners() [4]r2.Point {
	return [4]r2.Point{b.Corner(Left), b.Corner(Bottom), b.Corner(Right), b.Corner(Top)}
}

// FirstIntersection returns where the ray origin + t*direction, t > 0,
// leaves the box. The origin is expected to be inside.
func (b Box) FirstIntersection(origin, direction r2.Point) (Intersection, bool) {
	t := math.Inf(1)
	var res Intersection
	found := false

	if direction.X > 0 {
		t = (b.Right - origin.X) / direction.X
		res = Intersection{Side: Right, Point: origin.Add(direction.Mul(t))}
		found = true
	} else if direction.X < 0 {
		t = (b.Left - origin.X) / direction.X
		res = Intersection{Side: Left, Point: origin.Add(direction.Mul(t))}
		found = true
	}

	if direction.Y > 0 {
		if nt := (b.Top - origin.Y) / direction.Y; nt < t {
			t = nt
			res = Intersection{Side: Top, Point: origin.Add(direction.Mul(t))}
			found = true
		}
	} else if direction.Y < 0 {
		if nt := (b.Bottom - origin.Y) / direction.Y; nt < t {
			t = nt
			res = Intersection{Side: Bottom, Point: origin.Add(direction.Mul(t))}
			found = true
		}
	}

	if !found || t <= Epsilon {
		return Intersection{}, false
	}
	return res, true
}

// Intersections returns the points where the segment origin-destination
// crosses the box borders, ordered from origin to destination. A segment
// crosses a convex box at most twice.
func (b Box) Intersections(origin, destination r2.Point) []Intersection {
	var (
		res [2]Intersection
		ts  [2]float64
		n   int
	)
	direction := destination.Sub(origin)
	length := direction.Norm()
	if length == 0 {
		return nil
	}
	// boxEpsilon is a distance, t is a fraction of the segment.
	tEps := boxEpsilon / length

	accept := func(side Side, t float64, inRange func(r2.Point) bool) {
		if n >= 2 || !(t > tEps && t < 1-tEps) {
			return
		}
		p := origin.Add(direction.Mul(t))
		if !inRange(p) {
			return
		}
		res[n] = Intersection{Side: side, Point: p}
		ts[n] = t
		n++
	}
	betweenY := func(p r2.Point) bool {
		return p.Y >= b.Bottom-boxEpsilon && p.Y <= b.Top+boxEpsilon
	}
	betweenX := func(p r2.Point) bool {
		return p.X >= b.Left-boxEpsilon && p.X <= b.Right+boxEpsilon
	}

	if origin.X < b.Left-boxEpsilon || destination.X < b.Left-boxEpsilon {
		accept(Left, (b.Left-origin.X)/direction.X, betweenY)
	}
	if origin.X > b.Right+boxEpsilon || destination.X > b.Right+boxEpsilon {
		accept(Right, (b.Right-origin.X)/direction.X, betweenY)
	}
	if origin.Y < b.Bottom-boxEpsilon || destination.Y < b.Bottom-boxEpsilon {
		accept(Bottom, (b.Bottom-origin.Y)/direction.Y, betweenX)
	}
	if origin.Y > b.Top+boxEpsilon || destination.Y > b.Top+boxEpsilon {
		accept(Top, (b.Top-origin.Y)/direction.Y, betweenX)
	}

	if n == 2 && ts[0] > ts[1] {
		res[0], res[1] = res[1], res[0]
	}
	return res[:n:n]
}

// Crossing returns where the segment from inside to outside leaves the
// box. inside must satisfy Contains and outside must not; under that
// classification a crossing always exists. The point is snapped onto the
// crossed border.
func (b Box) Crossing(inside, outside r2.Point) (Intersection, bool) {
	d := outside.Sub(inside)
	best := math.Inf(1)
	var side Side

	exit := func(s Side, num, den float64) {
		if den == 0 {
			return
		}
		if t := num / den; t < best {
			best, side = t, s
		}
	}
	if outside.X < b.Left-boxEpsilon {
		exit(Left, b.Left-inside.X, d.X)
	}
	if outside.X > b.Right+boxEpsilon {
		exit(Right, b.Right-inside.X, d.X)
	}
	if outside.Y < b.Bottom-boxEpsilon {
		exit(Bottom, b.Bottom-inside.Y, d.Y)
	}
	if outside.Y > b.Top+boxEpsilon {
		exit(Top, b.Top-inside.Y, d.Y)
	}
	if math.IsInf(best, 1) {
		return Intersection{}, false
	}

	t := math.Max(0, math.Min(1, best))
	p := inside.Add(d.Mul(t))
	switch side {
	case Left:
		p.X = b.Left
	case Right:
		p.X = b.Right
	case Bottom:
		p.Y = b.Bottom
	case Top:
		p.Y = b.Top
	}
	p.X = math.Max(b.Left, math.Min(b.Right, p.X))
	p.Y = math.Max(b.Bottom, math.Min(b.Top, p.Y))
	return Intersection{Side: side, Point: p}, true
}

func (b Box) String() string {
	return fmt.Sprintf("[%g, %g]x[%g, %g]", b.Left, b.Right, b.Bottom, b.Top)
}
