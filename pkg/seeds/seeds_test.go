package seeds

import (
	"math/rand"
	"testing"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0x0FACED/go-fracture/pkg/geom"
)

var box = geom.NewBox(-1, 2, 3, 4)

func TestReproducible(t *testing.T) {
	a := Uniform2D(rand.New(rand.NewSource(42)), 50, box)
	b := Uniform2D(rand.New(rand.NewSource(42)), 50, box)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed gave different points (-a +b):\n%s", diff)
	}

	c := Uniform2D(rand.New(rand.NewSource(43)), 50, box)
	assert.NotEqual(t, a, c)
}

func TestGeneratorsStayInBox(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	tests := []struct {
		name string
		pts  []r2.Point
		n    int
	}{
		{"uniform", Uniform2D(r, 200, box), 200},
		{"grid", Grid2D(17, box), 17},
		{"along middle", AlongMiddle2D(r, 200, box, DefaultSpread), 200},
		{"wide spread", AlongMiddle2D(r, 200, box, 10), 200},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Len(t, tt.pts, tt.n)
			for _, p := range tt.pts {
				assert.True(t, box.Contains(p), "%v outside %v", p, box)
			}
		})
	}
}

func TestGridIsCentered(t *testing.T) {
	pts := Grid2D(4, geom.NewBox(0, 0, 2, 2))
	want := []r2.Point{{X: 0.5, Y: 0.5}, {X: 1.5, Y: 0.5}, {X: 0.5, Y: 1.5}, {X: 1.5, Y: 1.5}}
	assert.Equal(t, want, pts)
	assert.Nil(t, Grid2D(0, box))
}

func TestAlongMiddleClusters(t *testing.T) {
	pts := AlongMiddle2D(rand.New(rand.NewSource(3)), 2000, geom.NewBox(0, 0, 10, 1), 0.1)
	near := 0
	for _, p := range pts {
		if p.X > 4 && p.X < 6 {
			near++
		}
	}
	assert.Greater(t, near, 1800, "most points should sit within two sigma of the centre line")
}

func TestUniform3D(t *testing.T) {
	lo, hi := r3.Vector{X: -1, Y: -1, Z: -1}, r3.Vector{X: 1, Y: 2, Z: 3}
	for _, p := range Uniform3D(rand.New(rand.NewSource(5)), 100, lo, hi) {
		assert.True(t, p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y && p.Z >= lo.Z && p.Z <= hi.Z)
	}
}

func TestJitter(t *testing.T) {
	pts := Grid2D(9, box)
	moved := Jitter(rand.New(rand.NewSource(9)), pts, 1e-6)
	require.Len(t, moved, len(pts))
	for i := range pts {
		assert.InDelta(t, pts[i].X, moved[i].X, 1e-6)
		assert.InDelta(t, pts[i].Y, moved[i].Y, 1e-6)
	}
}
