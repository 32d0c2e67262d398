package fracture

import (
	"math/rand"

	"github.com/golang/geo/r3"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/0x0FACED/go-fracture/pkg/geom"
	"github.com/0x0FACED/go-fracture/pkg/logger"
	"github.com/0x0FACED/go-fracture/pkg/mesh"
	"github.com/0x0FACED/go-fracture/pkg/slicer"
	"github.com/0x0FACED/go-fracture/pkg/voronoi"
)

// ByPlanes cuts m by every plane in turn. Each plane splits all pieces
// produced so far; empty pieces are dropped.
func ByPlanes(m *mesh.Mesh, planes []geom.Plane, log *logger.ZapLogger) ([]*mesh.Mesh, error) {
	if log == nil {
		log = logger.Nop()
	}
	if m.IsEmpty() {
		return nil, errors.Wrap(mesh.ErrInvalidMesh, "nothing to fracture")
	}

	pieces := []*mesh.Mesh{m}
	for i, p := range planes {
		next := make([]*mesh.Mesh, 0, 2*len(pieces))
		for _, piece := range pieces {
			pos, neg, err := slicer.SliceByPlane(piece, p)
			if err != nil {
				return nil, errors.Wrapf(err, "plane %d", i)
			}
			for _, half := range [2]*mesh.Mesh{pos, neg} {
				if !half.IsEmpty() {
					next = append(next, half)
				}
			}
		}
		pieces = next
		log.Debug("[slice] plane applied", zap.Int("plane", i), zap.Int("pieces", len(pieces)))
	}

	log.Info("[fracture] planes applied", zap.Int("planes", len(planes)), zap.Int("pieces", len(pieces)))
	return pieces, nil
}

// Voronoi scatters cfg.Seeds seeds over the XZ bounds of m and carves m
// with the bisector plane of every seed pair.
func Voronoi(m *mesh.Mesh, cfg Config, r *rand.Rand, log *logger.ZapLogger) ([]*mesh.Mesh, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if m.IsEmpty() {
		return nil, errors.Wrap(mesh.ErrInvalidMesh, "nothing to fracture")
	}
	lo, hi := m.Bounds()
	pts := cfg.Points(r, geom.NewBox(lo.X, lo.Z, hi.X, hi.Z))
	return ByPlanes(m, BisectorPlanesXZ(pts, (lo.Y+hi.Y)/2), log)
}

// Cells builds the clipped Voronoi diagram of cfg.Seeds seeds over the XY
// bounds of m.
func Cells(m *mesh.Mesh, cfg Config, r *rand.Rand, log *logger.ZapLogger) (*voronoi.Diagram, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if m.IsEmpty() {
		return nil, errors.Wrap(mesh.ErrInvalidMesh, "nothing to fracture")
	}
	lo, hi := m.Bounds()
	box := geom.NewBox(lo.X, lo.Y, hi.X, hi.Y)
	return voronoi.CreateDiagram(cfg.Points(r, box), box.Expanded(cfg.Margin), box, log)
}

// CellShards cuts m into one piece per Voronoi cell of seeds scattered
// over its XZ bounds. Each cell keeps the part of m on its side of the
// bisector with every neighbouring site.
func CellShards(m *mesh.Mesh, cfg Config, r *rand.Rand, log *logger.ZapLogger) ([]*mesh.Mesh, error) {
	if log == nil {
		log = logger.Nop()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if m.IsEmpty() {
		return nil, errors.Wrap(mesh.ErrInvalidMesh, "nothing to fracture")
	}

	lo, hi := m.Bounds()
	box := geom.NewBox(lo.X, lo.Z, hi.X, hi.Z)
	pts := cfg.Points(r, box)
	d, err := voronoi.CreateDiagram(pts, box.Expanded(cfg.Margin), box, log)
	if err != nil {
		return nil, err
	}

	y := (lo.Y + hi.Y) / 2
	sites := liftXZ(pts, y)
	var shards []*mesh.Mesh
	for i := range sites {
		if d.Face(i).OuterComponent == voronoi.NoHalfEdge {
			continue
		}
		piece := m
		for _, j := range d.Neighbors(i) {
			mid := sites[i].Add(sites[j]).Mul(0.5)
			pos, _, err := slicer.Slice(piece, mid, sites[i].Sub(sites[j]))
			if err != nil {
				return nil, errors.Wrapf(err, "cell %d, neighbour %d", i, j)
			}
			piece = pos
			if piece.IsEmpty() {
				break
			}
		}
		if piece.IsEmpty() {
			continue
		}
		shards = append(shards, piece)
		log.Debug("[fracture] cell cut", zap.Int("site", i), zap.Float64("volume", piece.Volume()))
	}

	log.Info("[fracture] cells cut", zap.Int("sites", len(pts)), zap.Int("shards", len(shards)))
	return shards, nil
}

// Centers returns the centroid of every shard, handy for exploding them
// apart.
func Centers(shards []*mesh.Mesh) []r3.Vector {
	res := make([]r3.Vector, len(shards))
	for i, s := range shards {
		res[i] = s.Centroid()
	}
	return res
}
