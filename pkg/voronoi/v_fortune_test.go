package voronoi

import (
	"math"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x0FACED/go-fracture/pkg/pq"
)

func TestConvergencePointEquilateral(t *testing.T) {
	h := math.Sqrt(3) / 2
	center, y, ok := convergencePoint(r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 0}, r2.Point{X: 0.5, Y: h})
	require.True(t, ok)

	want := r2.Point{X: 0.5, Y: h / 3}
	if diff := cmp.Diff(want, center, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("circumcentre mismatch (-want +got):\n%s", diff)
	}
	assert.InDelta(t, h/3-1/math.Sqrt(3), y, 1e-12)
}

func TestConvergencePointCollinear(t *testing.T) {
	_, _, ok := convergencePoint(r2.Point{X: 0, Y: 0}, r2.Point{X: 1, Y: 1}, r2.Point{X: 3, Y: 3})
	assert.False(t, ok)
}

func TestEventOrder(t *testing.T) {
	q := pq.New(eventBefore)
	q.Push(&event{kind: circleEvent, y: 1, point: r2.Point{X: 0}})
	q.Push(&event{kind: siteEvent, y: 1, point: r2.Point{X: 0}, site: 1})
	q.Push(&event{kind: siteEvent, y: 1, point: r2.Point{X: -1}, site: 2})
	q.Push(&event{kind: siteEvent, y: 5, point: r2.Point{X: 9}, site: 3})

	var got []string
	for q.Len() > 0 {
		e, _ := q.Pop()
		if e.kind == siteEvent {
			got = append(got, "site"+string(rune('0'+e.site)))
		} else {
			got = append(got, "circle")
		}
	}
	assert.Equal(t, []string{"site3", "site2", "site1", "circle"}, got)
}

func TestConstructThreeSites(t *testing.T) {
	pts := []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0.5, Y: 1}}
	f := NewFortune(pts, nil)
	f.Construct()

	d := f.Diagram()
	require.Len(t, d.Vertices(), 1)
	v := d.Vertex(d.Vertices()[0]).Point
	assert.InDelta(t, 0.5, v.X, 1e-12)
	assert.InDelta(t, 0.375, v.Y, 1e-12)
	assert.Len(t, d.HalfEdges(), 6)
	require.NoError(t, f.beachline.validate())
}
