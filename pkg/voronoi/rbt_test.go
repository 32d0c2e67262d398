package voronoi

import (
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func listOrder(b *beachline) []arcID {
	var ids []arcID
	for x := b.leftmost(); x != nilArc; x = b.at(x).next {
		ids = append(ids, x)
	}
	return ids
}

func TestBeachlineRandomEdits(t *testing.T) {
	r := rand.New(rand.NewSource(11))
	b := newBeachline(make([]r2.Point, 1))

	root := b.createArc(0)
	b.setRoot(root)
	want := []arcID{root}

	for step := 0; step < 3000; step++ {
		i := r.Intn(len(want))
		x := want[i]

		switch op := r.Intn(4); {
		case op == 0:
			y := b.createArc(0)
			b.insertBefore(x, y)
			want = append(want[:i], append([]arcID{y}, want[i:]...)...)
		case op == 1:
			y := b.createArc(0)
			b.insertAfter(x, y)
			want = append(want[:i+1], append([]arcID{y}, want[i+1:]...)...)
		case op == 2 && len(want) > 1:
			b.remove(x)
			want = append(want[:i], want[i+1:]...)
		case op == 3:
			y := b.createArc(0)
			b.replace(x, y)
			want[i] = y
		}

		require.NoError(t, b.validate(), "step %d", step)
		require.Equal(t, want, listOrder(b), "step %d", step)
	}
}

func TestBeachlineRemoveKeepsNeighbours(t *testing.T) {
	b := newBeachline(make([]r2.Point, 1))
	a := b.createArc(0)
	b.setRoot(a)
	c := b.createArc(0)
	b.insertAfter(a, c)
	m := b.createArc(0)
	b.insertBefore(c, m)

	b.remove(m)
	require.NoError(t, b.validate())
	assert.Equal(t, a, b.at(m).prev)
	assert.Equal(t, c, b.at(m).next)
	assert.Equal(t, []arcID{a, c}, listOrder(b))
}

func TestLocateArcAbove(t *testing.T) {
	pts := []r2.Point{{X: 0, Y: 1}, {X: 2, Y: 1}, {X: 1, Y: 3}}
	b := newBeachline(pts)

	a0 := b.createArc(2)
	b.setRoot(a0)
	mid := b.createArc(0)
	b.insertAfter(a0, mid)
	right := b.createArc(2)
	b.insertAfter(mid, right)

	// the arc of site 0 spans the breakpoints around x = 0
	assert.Equal(t, mid, b.locateArcAbove(r2.Point{X: 0, Y: 0}, 0))
	assert.Equal(t, a0, b.locateArcAbove(r2.Point{X: -5, Y: 0}, 0))
	assert.Equal(t, right, b.locateArcAbove(r2.Point{X: 5, Y: 0}, 0))
}

func TestComputeBreakpoint(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 r2.Point
		l      float64
		want   float64
	}{
		{"equal heights", r2.Point{X: 0, Y: 1}, r2.Point{X: 4, Y: 1}, -3, 2},
		{"both on line", r2.Point{X: 0, Y: 1}, r2.Point{X: 4, Y: 1}, 1, 2},
		{"left on line", r2.Point{X: 0.5, Y: 0}, r2.Point{X: 4, Y: 2}, 0, 0.5},
		{"right on line", r2.Point{X: 0, Y: 2}, r2.Point{X: 3, Y: 0}, 0, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, computeBreakpoint(tt.p1, tt.p2, tt.l), 1e-9)
		})
	}

	// the breakpoint is equidistant from both sites and the directrix
	p1, p2, l := r2.Point{X: 0, Y: 3}, r2.Point{X: 2, Y: 1}, -1.0
	x := computeBreakpoint(p1, p2, l)
	y := ((x-p1.X)*(x-p1.X) + p1.Y*p1.Y - l*l) / (2 * (p1.Y - l))
	q := r2.Point{X: x, Y: y}
	assert.InDelta(t, q.Sub(p1).Norm(), q.Sub(p2).Norm(), 1e-9)
	assert.InDelta(t, y-l, q.Sub(p1).Norm(), 1e-9)
}
