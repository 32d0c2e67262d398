package main

import (
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/golang/geo/r2"

	"github.com/0x0FACED/go-fracture/pkg/geom"
	"github.com/0x0FACED/go-fracture/pkg/voronoi"
)

func prepareScatter(scatter *charts.Scatter, box geom.Box, cells int) {
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Height: "580px",
			Width:  "1020px",
		}),
		charts.WithLegendOpts(opts.Legend{
			TextStyle: &opts.TextStyle{
				Color: "white",
			},
			Right: "10%",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:                fmt.Sprintf("Диаграмма Вороного (Форчун): %d ячеек", cells),
			TitleBackgroundColor: "white",
			Left:                 "10%",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Ширина",
			Min:  box.Left,
			Max:  box.Right,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Высота",
			Min:  box.Bottom,
			Max:  box.Top,
			AxisLabel: &opts.AxisLabel{
				Color: "white",
			},
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(false),
			},
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "horizontal",
		}),
		charts.WithDataZoomOpts(opts.DataZoom{
			Type:       "inside",
			Start:      0,
			End:        100,
			FilterMode: "none",
			Orient:     "vertical",
		}),
	)
}

// Преобразуем ребра диаграммы в Echarts для отображения.
// d может быть nil, тогда рисуются только станции.
func voronoiToEcharts(stations []r2.Point, d *voronoi.Diagram, box geom.Box) *charts.Scatter {
	scatter := charts.NewScatter()

	points := make([]opts.ScatterData, 0, len(stations))
	for _, s := range stations {
		points = append(points, opts.ScatterData{
			Value: []float64{s.X, s.Y},
		})
	}

	cells := 0
	if d != nil {
		for _, poly := range d.Polygons() {
			if poly != nil {
				cells++
			}
		}
	}

	// Дизайним скаттер
	prepareScatter(scatter, box, cells)

	scatter.AddSeries("Станции", points).
		SetSeriesOptions(
			charts.WithItemStyleOpts(opts.ItemStyle{
				Color: "lightgreen",
			}),
		)

	if d == nil {
		return scatter
	}

	for _, id := range d.HalfEdges() {
		h := d.HalfEdge(id)
		// у пары близнецов рисуем одно ребро
		if h.Twin != voronoi.NoHalfEdge && h.Twin < id {
			continue
		}
		a, b, ok := d.Segment(id)
		if !ok {
			continue
		}

		line := charts.NewLine()
		line.SetGlobalOptions(
			charts.WithXAxisOpts(opts.XAxis{Show: opts.Bool(true)}),
			charts.WithYAxisOpts(opts.YAxis{Show: opts.Bool(true)}),
		)

		line.AddSeries("Границы", []opts.LineData{
			{Value: []float64{a.X, a.Y}},
			{Value: []float64{b.X, b.Y}},
		}).SetSeriesOptions(
			charts.WithLineStyleOpts(opts.LineStyle{
				Width: 2,
			}),
		)

		scatter.Overlap(line)
	}

	return scatter
}
