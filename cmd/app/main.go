package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/golang/geo/r3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/0x0FACED/go-fracture/pkg/export"
	"github.com/0x0FACED/go-fracture/pkg/fracture"
	"github.com/0x0FACED/go-fracture/pkg/logger"
	"github.com/0x0FACED/go-fracture/pkg/mesh"
	"github.com/0x0FACED/go-fracture/pkg/mesh/primitives"
	"github.com/0x0FACED/go-fracture/static"
)

// maxCubeCells ограничивает число ячеек при раскалывании куба
const maxCubeCells = 64

// explodeGap - насколько осколки куба разносятся от центра
const explodeGap = 0.15

type server struct {
	opts logger.Options
}

func (s *server) newLogger() *logger.ZapLogger {
	return logger.NewWithOptions(s.opts)
}

func (s *server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.diagramHandler)
	mux.HandleFunc("/shards.stl", s.shardsHandler)
	mux.HandleFunc("/cube.stl", s.cubeHandler)
	return mux
}

// http обработчик страницы с диаграмой и формой для ввода данных
func (s *server) diagramHandler(w http.ResponseWriter, r *http.Request) {
	log := s.newLogger()
	defer log.ClearLogs()

	p := parseParams(r, log)
	stations, diagram, err := buildDiagram(p, log)
	if err != nil {
		log.Error("[app] diagram failed", zap.Error(err))
	}

	scatter := voronoiToEcharts(stations, diagram, p.box())

	fmt.Fprintln(w, static.Part1)
	if err := static.Form.Execute(w, p.view()); err != nil {
		log.Error("[app] form render failed", zap.Error(err))
	}

	if err := scatter.Render(w); err != nil {
		log.Error("[app] chart render failed", zap.Error(err))
	}

	fmt.Fprintln(w, static.Part2)

	// Вставляем логи в HTML
	fmt.Fprintln(w, log.HTML())

	fmt.Fprintln(w, static.Part3)
}

// shardsHandler отдает ячейки диаграммы, выдавленные в призмы, одним STL
func (s *server) shardsHandler(w http.ResponseWriter, r *http.Request) {
	log := s.newLogger()
	p := parseParams(r, log)

	_, diagram, err := buildDiagram(p, log)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	shards, err := fracture.VoronoiShards(diagram, p.Thickness, p.config().MinArea)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	log.Info("[app] shards extruded", zap.Int("shards", len(shards)))
	writeSTL(w, log, "voronoi-shards", shards)
}

// cubeHandler раскалывает единичный куб по ячейкам Вороного в плоскости XZ.
// sdf=true строит куб через sdfx.
func (s *server) cubeHandler(w http.ResponseWriter, r *http.Request) {
	log := s.newLogger()
	p := parseParams(r, log)

	var (
		cube *mesh.Mesh
		err  error
	)
	if r.FormValue("sdf") == "true" {
		cube, err = primitives.SDFBox(1, 1, 1, primitives.DefaultCells)
	} else {
		cube, err = primitives.Cube(r3.Vector{X: 1, Y: 1, Z: 1})
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	cfg := p.config()
	cfg.Seeds = min(cfg.Seeds, maxCubeCells)
	cfg.Margin = 1
	shards, err := fracture.CellShards(cube, cfg, p.rand(), log)
	if err != nil {
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	// разносим осколки от центра куба
	for i, c := range fracture.Centers(shards) {
		shards[i] = shards[i].Translated(c.Mul(explodeGap))
	}
	writeSTL(w, log, "fractured-cube", shards)
}

func writeSTL(w http.ResponseWriter, log *logger.ZapLogger, name string, meshes []*mesh.Mesh) {
	w.Header().Set("Content-Type", "model/stl")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".stl"))
	if err := export.WriteMeshes(w, name, meshes...); err != nil {
		log.Error("[app] stl write failed", zap.Error(err))
	}
}

func main() {
	addr := flag.String("addr", ":8080", "адрес HTTP сервера")
	logConsole := flag.Bool("log-console", false, "дублировать логи в stdout")
	level := zapcore.DebugLevel
	flag.TextVar(&level, "level", zapcore.DebugLevel, "уровень логов: debug, info, warn, error")
	flag.Parse()

	opts := logger.Options{Level: level}
	if *logConsole {
		opts.Console = os.Stdout
	}

	srv := &server{opts: opts}
	log := logger.NewWithOptions(logger.Options{Level: zapcore.InfoLevel, Console: os.Stdout})

	log.Info("[app] сервер запущен", zap.String("addr", *addr))
	if err := http.ListenAndServe(*addr, srv.routes()); err != nil {
		log.Fatal("[app] ListenAndServe", zap.Error(err))
	}
}
