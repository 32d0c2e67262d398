package voronoi

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/0x0FACED/go-fracture/pkg/geom"
)

type arcID int32

// nilArc is the black sentinel stored at index 0 of the arena.
const nilArc arcID = 0

// beachline is a red-black tree of arcs keyed by their left-to-right
// order. Arcs are never freed, so ids stay valid for the whole sweep.
type beachline struct {
	arcs   []arc
	root   arcID
	points []r2.Point
}

func newBeachline(points []r2.Point) *beachline {
	b := &beachline{
		arcs:   make([]arc, 1, 2*len(points)+1),
		points: points,
	}
	b.arcs[nilArc] = arc{site: -1, leftHalfEdge: NoHalfEdge, rightHalfEdge: NoHalfEdge}
	return b
}

// at returns the arc stored under id. The pointer is invalidated by the
// next createArc.
func (b *beachline) at(id arcID) *arc { return &b.arcs[id] }

func (b *beachline) point(id arcID) r2.Point { return b.points[b.arcs[id].site] }

func (b *beachline) createArc(site int) arcID {
	b.arcs = append(b.arcs, arc{
		site:          site,
		red:           true,
		leftHalfEdge:  NoHalfEdge,
		rightHalfEdge: NoHalfEdge,
	})
	return arcID(len(b.arcs) - 1)
}

func (b *beachline) isEmpty() bool { return b.root == nilArc }

func (b *beachline) setRoot(x arcID) {
	b.root = x
	b.at(x).red = false
}

func (b *beachline) leftmost() arcID {
	if b.root == nilArc {
		return nilArc
	}
	return b.minimum(b.root)
}

func (b *beachline) minimum(x arcID) arcID {
	for b.at(x).left != nilArc {
		x = b.at(x).left
	}
	return x
}

// locateArcAbove finds the arc vertically above p when the sweep line is
// at sweepY.
func (b *beachline) locateArcAbove(p r2.Point, sweepY float64) arcID {
	node := b.root
	found := node
	for node != nilArc {
		found = node
		n := b.at(node)
		left, right := math.Inf(-1), math.Inf(1)
		if n.prev != nilArc {
			left = computeBreakpoint(b.point(n.prev), b.point(node), sweepY)
		}
		if n.next != nilArc {
			right = computeBreakpoint(b.point(node), b.point(n.next), sweepY)
		}
		switch {
		case p.X < left:
			node = n.left
		case p.X > right:
			node = n.right
		default:
			return node
		}
	}
	// Only reached when rounding makes neighbouring breakpoints cross.
	return found
}

// computeBreakpoint returns the x of the intersection of the parabolas of
// p1 (left) and p2 (right) for the directrix y = l.
func computeBreakpoint(p1, p2 r2.Point, l float64) float64 {
	on1 := geom.EqualWithEpsilon(p1.Y, l)
	on2 := geom.EqualWithEpsilon(p2.Y, l)
	switch {
	case on1 && on2:
		return (p1.X + p2.X) / 2
	case on1:
		return p1.X
	case on2:
		return p2.X
	}

	x1, y1, x2, y2 := p1.X, p1.Y, p2.X, p2.Y
	d1 := 1 / (2 * (y1 - l))
	d2 := 1 / (2 * (y2 - l))
	a := d1 - d2
	bb := 2 * (x2*d2 - x1*d1)
	c := (y1*y1+x1*x1-l*l)*d1 - (y2*y2+x2*x2-l*l)*d2

	if math.Abs(a) < geom.Epsilon {
		if bb == 0 {
			return (x1 + x2) / 2
		}
		return -c / bb
	}
	delta := bb*bb - 4*a*c
	if delta < 0 {
		delta = 0
	}
	return (-bb + math.Sqrt(delta)) / (2 * a)
}

// insertBefore inserts y immediately to the left of x.
func (b *beachline) insertBefore(x, y arcID) {
	ax, ay := b.at(x), b.at(y)
	if ax.left == nilArc {
		ax.left = y
		ay.parent = x
	} else {
		p := ax.prev
		b.at(p).right = y
		ay.parent = p
	}
	ay.prev = ax.prev
	if ay.prev != nilArc {
		b.at(ay.prev).next = y
	}
	ay.next = x
	ax.prev = y
	b.insertFixup(y)
}

// insertAfter inserts y immediately to the right of x.
func (b *beachline) insertAfter(x, y arcID) {
	ax, ay := b.at(x), b.at(y)
	if ax.right == nilArc {
		ax.right = y
		ay.parent = x
	} else {
		n := ax.next
		b.at(n).left = y
		ay.parent = n
	}
	ay.next = ax.next
	if ay.next != nilArc {
		b.at(ay.next).prev = y
	}
	ay.prev = x
	ax.next = y
	b.insertFixup(y)
}

// replace puts y where x is, in the tree and in the list.
func (b *beachline) replace(x, y arcID) {
	b.transplant(x, y)
	ax, ay := b.at(x), b.at(y)
	ay.left = ax.left
	ay.right = ax.right
	if ay.left != nilArc {
		b.at(ay.left).parent = y
	}
	if ay.right != nilArc {
		b.at(ay.right).parent = y
	}
	ay.prev = ax.prev
	ay.next = ax.next
	if ay.prev != nilArc {
		b.at(ay.prev).next = y
	}
	if ay.next != nilArc {
		b.at(ay.next).prev = y
	}
	ay.red = ax.red
}

// remove unlinks z from the tree and the list. z keeps its prev and next
// so the caller can still reach its former neighbours.
func (b *beachline) remove(z arcID) {
	az := b.at(z)
	y := z
	yRed := az.red
	var x arcID

	switch {
	case az.left == nilArc:
		x = az.right
		b.transplant(z, az.right)
	case az.right == nilArc:
		x = az.left
		b.transplant(z, az.left)
	default:
		y = b.minimum(az.right)
		ay := b.at(y)
		yRed = ay.red
		x = ay.right
		if ay.parent == z {
			b.at(x).parent = y
		} else {
			b.transplant(y, ay.right)
			ay.right = az.right
			b.at(ay.right).parent = y
		}
		b.transplant(z, y)
		ay.left = az.left
		b.at(ay.left).parent = y
		ay.red = az.red
	}
	if !yRed {
		b.removeFixup(x)
	}

	if az.prev != nilArc {
		b.at(az.prev).next = az.next
	}
	if az.next != nilArc {
		b.at(az.next).prev = az.prev
	}
}

func (b *beachline) transplant(u, v arcID) {
	pu := b.at(u).parent
	switch {
	case pu == nilArc:
		b.root = v
	case u == b.at(pu).left:
		b.at(pu).left = v
	default:
		b.at(pu).right = v
	}
	b.at(v).parent = pu
}

func (b *beachline) insertFixup(z arcID) {
	for b.at(b.at(z).parent).red {
		p := b.at(z).parent
		g := b.at(p).parent
		if p == b.at(g).left {
			u := b.at(g).right
			if b.at(u).red {
				b.at(p).red = false
				b.at(u).red = false
				b.at(g).red = true
				z = g
				continue
			}
			if z == b.at(p).right {
				z = p
				b.rotateLeft(z)
				p = b.at(z).parent
				g = b.at(p).parent
			}
			b.at(p).red = false
			b.at(g).red = true
			b.rotateRight(g)
		} else {
			u := b.at(g).left
			if b.at(u).red {
				b.at(p).red = false
				b.at(u).red = false
				b.at(g).red = true
				z = g
				continue
			}
			if z == b.at(p).left {
				z = p
				b.rotateRight(z)
				p = b.at(z).parent
				g = b.at(p).parent
			}
			b.at(p).red = false
			b.at(g).red = true
			b.rotateLeft(g)
		}
	}
	b.at(b.root).red = false
}

func (b *beachline) removeFixup(x arcID) {
	for x != b.root && !b.at(x).red {
		p := b.at(x).parent
		if x == b.at(p).left {
			w := b.at(p).right
			if b.at(w).red {
				b.at(w).red = false
				b.at(p).red = true
				b.rotateLeft(p)
				w = b.at(p).right
			}
			if !b.at(b.at(w).left).red && !b.at(b.at(w).right).red {
				b.at(w).red = true
				x = p
				continue
			}
			if !b.at(b.at(w).right).red {
				b.at(b.at(w).left).red = false
				b.at(w).red = true
				b.rotateRight(w)
				w = b.at(p).right
			}
			b.at(w).red = b.at(p).red
			b.at(p).red = false
			b.at(b.at(w).right).red = false
			b.rotateLeft(p)
			x = b.root
		} else {
			w := b.at(p).left
			if b.at(w).red {
				b.at(w).red = false
				b.at(p).red = true
				b.rotateRight(p)
				w = b.at(p).left
			}
			if !b.at(b.at(w).left).red && !b.at(b.at(w).right).red {
				b.at(w).red = true
				x = p
				continue
			}
			if !b.at(b.at(w).left).red {
				b.at(b.at(w).right).red = false
				b.at(w).red = true
				b.rotateLeft(w)
				w = b.at(p).left
			}
			b.at(w).red = b.at(p).red
			b.at(p).red = false
			b.at(b.at(w).left).red = false
			b.rotateRight(p)
			x = b.root
		}
	}
	b.at(x).red = false
}

func (b *beachline) rotateLeft(x arcID) {
	ax := b.at(x)
	y := ax.right
	ay := b.at(y)
	ax.right = ay.left
	if ay.left != nilArc {
		b.at(ay.left).parent = x
	}
	ay.parent = ax.parent
	switch {
	case ax.parent == nilArc:
		b.root = y
	case x == b.at(ax.parent).left:
		b.at(ax.parent).left = y
	default:
		b.at(ax.parent).right = y
	}
	ay.left = x
	ax.parent = y
}

func (b *beachline) rotateRight(y arcID) {
	ay := b.at(y)
	x := ay.left
	ax := b.at(x)
	ay.left = ax.right
	if ax.right != nilArc {
		b.at(ax.right).parent = y
	}
	ax.parent = ay.parent
	switch {
	case ay.parent == nilArc:
		b.root = x
	case y == b.at(ay.parent).left:
		b.at(ay.parent).left = x
	default:
		b.at(ay.parent).right = x
	}
	ax.right = y
	ay.parent = x
}

// validate checks the red-black properties and that the in-order walk of
// the tree matches the linked list.
func (b *beachline) validate() error {
	if b.at(nilArc).red {
		return errors.New("sentinel is red")
	}
	if b.root == nilArc {
		return nil
	}
	if b.at(b.root).red {
		return errors.New("root is red")
	}
	if b.at(b.root).parent != nilArc {
		return errors.New("root has a parent")
	}

	var inorder []arcID
	var walk func(x arcID) (int, error)
	walk = func(x arcID) (int, error) {
		if x == nilArc {
			return 1, nil
		}
		n := b.at(x)
		for _, c := range []arcID{n.left, n.right} {
			if c == nilArc {
				continue
			}
			if b.at(c).parent != x {
				return 0, errors.Errorf("arc %d: child %d has parent %d", x, c, b.at(c).parent)
			}
			if n.red && b.at(c).red {
				return 0, errors.Errorf("red arc %d has red child %d", x, c)
			}
		}
		lh, err := walk(n.left)
		if err != nil {
			return 0, err
		}
		inorder = append(inorder, x)
		rh, err := walk(n.right)
		if err != nil {
			return 0, err
		}
		if lh != rh {
			return 0, errors.Errorf("arc %d: black heights %d and %d", x, lh, rh)
		}
		if !n.red {
			lh++
		}
		return lh, nil
	}
	if _, err := walk(b.root); err != nil {
		return err
	}

	prev := nilArc
	count := 0
	for x := b.leftmost(); x != nilArc; x = b.at(x).next {
		if count >= len(inorder) || inorder[count] != x {
			return errors.Errorf("list diverges from tree at position %d", count)
		}
		if b.at(x).prev != prev {
			return errors.Errorf("arc %d: prev is %d, want %d", x, b.at(x).prev, prev)
		}
		prev = x
		count++
	}
	if count != len(inorder) {
		return errors.Errorf("list has %d arcs, tree has %d", count, len(inorder))
	}
	return nil
}
