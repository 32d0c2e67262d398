package main

import (
	"html/template"
	"math/rand"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/golang/geo/r2"
	"go.uber.org/zap"

	"github.com/0x0FACED/go-fracture/pkg/fracture"
	"github.com/0x0FACED/go-fracture/pkg/geom"
	"github.com/0x0FACED/go-fracture/pkg/logger"
	"github.com/0x0FACED/go-fracture/pkg/voronoi"
)

// params - параметры диаграммы из формы или строки запроса
type params struct {
	Width     int
	Height    int
	Stations  int
	Strategy  fracture.Strategy
	Seed      int64
	Margin    float64
	Thickness float64
}

func defaultParams() params {
	return params{
		Width:     1000,
		Height:    1000,
		Stations:  12,
		Strategy:  fracture.Grid,
		Seed:      1,
		Margin:    100,
		Thickness: 20,
	}
}

// parseParams читает форму. Неверные значения пишутся в лог и заменяются
// значениями по умолчанию.
func parseParams(r *http.Request, log *logger.ZapLogger) params {
	p := defaultParams()
	if err := r.ParseForm(); err != nil {
		log.Warn("[app] bad form", zap.Error(err))
		return p
	}

	intField(r, log, "width", &p.Width, 100, 5000)
	intField(r, log, "height", &p.Height, 100, 5000)
	intField(r, log, "stations", &p.Stations, 1, 1000)
	floatField(r, log, "margin", &p.Margin, 0)
	floatField(r, log, "thickness", &p.Thickness, 1e-9)

	if v := r.FormValue("seed"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			log.Warn("[app] bad seed", zap.String("value", v), zap.Error(err))
		} else {
			p.Seed = seed
		}
	}
	if v := r.FormValue("strategy"); v != "" {
		s, err := fracture.ParseStrategy(v)
		if err != nil {
			log.Warn("[app] bad strategy", zap.String("value", v), zap.Error(err))
		} else {
			p.Strategy = s
		}
	}
	// старая форма присылала random=true вместо strategy
	if r.FormValue("random") == "true" {
		p.Strategy = fracture.Uniform
		p.Seed = 0
	}
	return p
}

func intField(r *http.Request, log *logger.ZapLogger, name string, dst *int, lo, hi int) {
	v := r.FormValue(name)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < lo || n > hi {
		log.Warn("[app] value ignored", zap.String("field", name), zap.String("value", v),
			zap.Int("min", lo), zap.Int("max", hi))
		return
	}
	*dst = n
}

func floatField(r *http.Request, log *logger.ZapLogger, name string, dst *float64, lo float64) {
	v := r.FormValue(name)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < lo {
		log.Warn("[app] value ignored", zap.String("field", name), zap.String("value", v))
		return
	}
	*dst = f
}

func (p params) box() geom.Box {
	return geom.NewBox(0, 0, float64(p.Width), float64(p.Height))
}

func (p params) config() fracture.Config {
	cfg := fracture.DefaultConfig()
	cfg.Seeds = p.Stations
	cfg.Strategy = p.Strategy
	cfg.Margin = p.Margin
	cfg.Thickness = p.Thickness
	return cfg
}

// rand - генератор для станций; seed 0 означает случайный
func (p params) rand() *rand.Rand {
	seed := p.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (p params) query() url.Values {
	return url.Values{
		"width":     {strconv.Itoa(p.Width)},
		"height":    {strconv.Itoa(p.Height)},
		"stations":  {strconv.Itoa(p.Stations)},
		"strategy":  {p.Strategy.String()},
		"seed":      {strconv.FormatInt(p.Seed, 10)},
		"margin":    {strconv.FormatFloat(p.Margin, 'g', -1, 64)},
		"thickness": {strconv.FormatFloat(p.Thickness, 'g', -1, 64)},
	}
}

// formView - данные для шаблона формы
type formView struct {
	params
	Strategy   string
	Strategies []string
	ShardsURL  template.URL
	CubeURL    template.URL
}

func (p params) view() formView {
	q := p.query().Encode()
	return formView{
		params:     p,
		Strategy:   p.Strategy.String(),
		Strategies: []string{fracture.Uniform.String(), fracture.AlongMiddle.String(), fracture.Grid.String()},
		ShardsURL:  template.URL("/shards.stl?" + q),
		CubeURL:    template.URL("/cube.stl?" + q),
	}
}

// buildDiagram расставляет станции и строит обрезанную диаграмму.
// Диаграмма может вернуться вместе с ошибкой.
func buildDiagram(p params, log *logger.ZapLogger) ([]r2.Point, *voronoi.Diagram, error) {
	box := p.box()
	cfg := p.config()
	stations := cfg.Points(p.rand(), box)

	log.Info("[app] stations placed", zap.Int("n", len(stations)),
		zap.Stringer("strategy", p.Strategy), zap.Int64("seed", p.Seed))

	d, err := voronoi.CreateDiagram(stations, box.Expanded(cfg.Margin), box, log)
	return stations, d, err
}
