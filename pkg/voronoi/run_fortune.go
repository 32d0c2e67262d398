package voronoi

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/0x0FACED/go-fracture/pkg/geom"
	"github.com/0x0FACED/go-fracture/pkg/logger"
)

var (
	ErrNoSites    = errors.New("no sites")
	ErrUnbounded  = errors.New("cells could not be bounded")
	ErrClipFailed = errors.New("cells could not be clipped")
)

// CreateDiagram - основная функция: строит диаграмму, замыкает бесконечные
// ячейки рамкой outer и обрезает результат по inner.
// При ошибке диаграмма все равно возвращается, чтобы ее можно было
// показать или проверить.
func CreateDiagram(sites []r2.Point, outer, inner geom.Box, log *logger.ZapLogger) (*Diagram, error) {
	if log == nil {
		log = logger.Nop()
	}
	if len(sites) == 0 {
		return nil, ErrNoSites
	}

	log.Info("[f] Fortune sweep started", zap.Int("sites", len(sites)),
		zap.Stringer("outer", outer), zap.Stringer("inner", inner))

	f := NewFortune(sites, log)
	f.Construct()

	// замыкаем бесконечные ребра рамкой
	if !f.Bound(outer) {
		return f.Diagram(), errors.Wrapf(ErrUnbounded, "outer box %v", outer)
	}

	// обрезаем по внутренней рамке
	d := f.Diagram()
	if !d.Intersect(inner) {
		return d, errors.Wrapf(ErrClipFailed, "inner box %v", inner)
	}

	log.Info("[f] diagram ready", zap.Int("faces", len(d.faces)),
		zap.Int("halfEdges", len(d.HalfEdges())))
	return d, nil
}
