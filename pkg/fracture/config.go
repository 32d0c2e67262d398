package fracture

import (
	"math/rand"
	"strings"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"

	"github.com/0x0FACED/go-fracture/pkg/geom"
	"github.com/0x0FACED/go-fracture/pkg/seeds"
)

// Strategy selects how seeds are scattered over the fracture area.
type Strategy int

const (
	Uniform Strategy = iota
	AlongMiddle
	Grid
)

func (s Strategy) String() string {
	switch s {
	case Uniform:
		return "uniform"
	case AlongMiddle:
		return "middle"
	case Grid:
		return "grid"
	}
	return "unknown"
}

// ParseStrategy accepts the names printed by Strategy.String.
func ParseStrategy(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "uniform":
		return Uniform, nil
	case "middle":
		return AlongMiddle, nil
	case "grid":
		return Grid, nil
	}
	return Uniform, errors.Wrapf(ErrBadConfig, "unknown strategy %q", name)
}

type Config struct {
	Seeds     int
	Margin    float64 // outer box growth used by Bound
	Thickness float64 // shard thickness for Extrude
	MinArea   float64 // faces below this area produce no shard
	Strategy  Strategy
	Spread    float64 // only used by AlongMiddle
}

func DefaultConfig() Config {
	return Config{
		Seeds:     8,
		Margin:    1,
		Thickness: 0.1,
		MinArea:   1e-6,
		Strategy:  Uniform,
		Spread:    seeds.DefaultSpread,
	}
}

func (c Config) Validate() error {
	switch {
	case c.Seeds <= 0:
		return errors.Wrapf(ErrBadConfig, "seeds = %d", c.Seeds)
	case c.Margin < 0:
		return errors.Wrapf(ErrBadConfig, "margin = %g", c.Margin)
	case c.Thickness <= 0:
		return errors.Wrapf(ErrBadConfig, "thickness = %g", c.Thickness)
	}
	return nil
}

// Points scatters c.Seeds points over box. The grid ignores r.
func (c Config) Points(r *rand.Rand, box geom.Box) []r2.Point {
	switch c.Strategy {
	case AlongMiddle:
		return seeds.AlongMiddle2D(r, c.Seeds, box, c.Spread)
	case Grid:
		// grid seeds are co-circular, nudge them off the degenerate case
		amount := 1e-3 * (box.Width() + box.Height())
		return seeds.Jitter(r, seeds.Grid2D(c.Seeds, box), amount)
	}
	return seeds.Uniform2D(r, c.Seeds, box)
}
