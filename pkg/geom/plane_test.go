package geom

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlane(t *testing.T) {
	p := NewPlane(r3.Vector{X: 0, Y: 2, Z: 0}, r3.Vector{X: 5, Y: 1, Z: -3})

	assert.InDelta(t, 1, p.Normal.Norm(), 1e-12)
	assert.InDelta(t, -1, p.Distance, 1e-12)
	assert.InDelta(t, 2, p.SignedDistance(r3.Vector{Y: 3}), 1e-12)
	assert.True(t, p.Side(r3.Vector{X: 9, Y: 1, Z: 9}), "points on the plane are positive")
	assert.False(t, p.Side(r3.Vector{Y: 0.5}))
	assert.True(t, p.Flipped().Side(r3.Vector{Y: 0.5}))
	assert.InDelta(t, 0, p.SignedDistance(p.Point()), 1e-12)
}

func TestSegmentIntersection(t *testing.T) {
	n := r3.Vector{X: 1}
	origin := r3.Vector{X: 0.25}

	got, ok := SegmentIntersection(r3.Vector{X: -1, Y: 0, Z: 2}, r3.Vector{X: 1, Y: 4, Z: 2}, origin, n)
	require.True(t, ok)
	assert.True(t, got.ApproxEqual(r3.Vector{X: 0.25, Y: 2.5, Z: 2}), "got %v", got)

	_, ok = SegmentIntersection(r3.Vector{Y: 1}, r3.Vector{Y: 2}, origin, n)
	assert.False(t, ok, "parallel segment")
}
