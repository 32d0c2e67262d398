package voronoi

import (
	"math"

	"github.com/golang/geo/r2"
	"go.uber.org/zap"

	"github.com/0x0FACED/go-fracture/pkg/geom"
	"github.com/0x0FACED/go-fracture/pkg/logger"
	"github.com/0x0FACED/go-fracture/pkg/pq"
)

// openEdge is an edge between two sites of the first row. It starts at
// infinity above the sites and is closed on the top border by Bound.
type openEdge struct {
	left  HalfEdgeID // destination open
	right HalfEdgeID // origin open
}

// Fortune runs the sweep-line construction. The sweep moves from the
// highest y down.
type Fortune struct {
	diagram    *Diagram
	beachline  *beachline
	events     *pq.Queue[*event]
	beachlineY float64
	topEdges   []openEdge
	duplicate  []bool
	log        *logger.ZapLogger
}

func NewFortune(points []r2.Point, log *logger.ZapLogger) *Fortune {
	if log == nil {
		log = logger.Nop()
	}
	d := newDiagram(points, log)
	return &Fortune{
		diagram:    d,
		beachline:  newBeachline(d.points),
		events:     pq.New(eventBefore),
		beachlineY: math.Inf(1),
		duplicate:  make([]bool, len(points)),
		log:        log,
	}
}

func (f *Fortune) Diagram() *Diagram { return f.diagram }

// Construct processes every event. Afterwards the diagram holds all finite
// vertices; edges of unbounded cells are closed by Bound.
func (f *Fortune) Construct() {
	d := f.diagram
	for i, s := range d.sites {
		f.events.Push(&event{kind: siteEvent, y: s.Point.Y, point: s.Point, site: i})
	}
	f.log.Info("[sweep] started", zap.Int("sites", len(d.sites)))

	var last *event
	sites, circles := 0, 0
	for f.events.Len() > 0 {
		e, _ := f.events.Pop()
		f.beachlineY = e.y

		if e.kind == circleEvent {
			f.handleCircleEvent(e)
			circles++
			continue
		}

		if last != nil && geom.EqualWithEpsilon(last.point.X, e.point.X) && geom.EqualWithEpsilon(last.point.Y, e.point.Y) {
			f.duplicate[e.site] = true
			f.log.Error("[sweep] duplicate site skipped",
				zap.Int("site", e.site), zap.Int("of", last.site))
			continue
		}
		f.handleSiteEvent(e)
		last = e
		sites++
	}

	f.log.Info("[sweep] finished",
		zap.Int("siteEvents", sites),
		zap.Int("circleEvents", circles),
		zap.Int("vertices", len(d.vertices)),
		zap.Int("halfEdges", len(d.halfEdges)))
}

func (f *Fortune) handleSiteEvent(e *event) {
	bl := f.beachline
	f.log.Debug("[sweep] site", zap.Int("site", e.site),
		zap.Float64("x", e.point.X), zap.Float64("y", e.point.Y))

	if bl.isEmpty() {
		bl.setRoot(bl.createArc(e.site))
		return
	}

	above := bl.locateArcAbove(e.point, f.beachlineY)
	if geom.EqualWithEpsilon(bl.point(above).Y, e.point.Y) && f.insertBeside(above, e.site) {
		return
	}

	f.deleteEvent(above)
	middle := f.breakArc(above, e.site)
	left := bl.at(middle).prev
	right := bl.at(middle).next

	f.addEdge(left, middle)
	bl.at(middle).rightHalfEdge = bl.at(middle).leftHalfEdge
	bl.at(right).leftHalfEdge = bl.at(left).rightHalfEdge

	if p := bl.at(left).prev; p != nilArc {
		f.addEvent(p, left, middle)
	}
	if n := bl.at(right).next; n != nilArc {
		f.addEvent(middle, right, n)
	}
}

// insertBeside handles a site level with the arc above it, which only
// happens for the first row of sites. The new arc goes next to the old
// one and the edge between them is left open upwards.
func (f *Fortune) insertBeside(above arcID, site int) bool {
	bl := f.beachline
	goesRight := f.diagram.points[site].X > bl.point(above).X
	if goesRight && bl.at(above).next != nilArc || !goesRight && bl.at(above).prev != nilArc {
		return false
	}

	n := bl.createArc(site)
	left, right := above, n
	if goesRight {
		bl.insertAfter(above, n)
	} else {
		bl.insertBefore(above, n)
		left, right = n, above
	}
	f.addEdge(left, right)
	f.topEdges = append(f.topEdges, openEdge{
		left:  bl.at(left).rightHalfEdge,
		right: bl.at(right).leftHalfEdge,
	})
	f.log.Debug("[sweep] first row site", zap.Int("site", site))
	return true
}

func (f *Fortune) handleCircleEvent(e *event) {
	bl := f.beachline
	a := e.arc
	bl.at(a).event = nil

	v := f.diagram.createVertex(e.point)
	left, right := bl.at(a).prev, bl.at(a).next
	f.log.Debug("[sweep] circle", zap.Int("arcSite", bl.at(a).site),
		zap.Float64("x", e.point.X), zap.Float64("y", e.point.Y))

	f.deleteEvent(left)
	f.deleteEvent(right)
	f.removeArc(a, v)

	if p := bl.at(left).prev; p != nilArc {
		f.addEvent(p, left, right)
	}
	if n := bl.at(right).next; n != nilArc {
		f.addEvent(left, right, n)
	}
}

// breakArc splits a into three arcs with the new site in the middle and
// returns the middle one.
func (f *Fortune) breakArc(a arcID, site int) arcID {
	bl := f.beachline
	middle := bl.createArc(site)
	left := bl.createArc(bl.at(a).site)
	right := bl.createArc(bl.at(a).site)
	bl.at(left).leftHalfEdge = bl.at(a).leftHalfEdge
	bl.at(right).rightHalfEdge = bl.at(a).rightHalfEdge

	bl.replace(a, middle)
	bl.insertBefore(middle, left)
	bl.insertAfter(middle, right)
	return middle
}

// removeArc drops a from the beachline; its two neighbours now share a new
// edge starting at v.
func (f *Fortune) removeArc(a arcID, v VertexID) {
	bl := f.beachline
	prev, next := bl.at(a).prev, bl.at(a).next

	f.setDestination(prev, a, v)
	f.setDestination(a, next, v)
	f.setPrevHalfEdge(bl.at(a).leftHalfEdge, bl.at(a).rightHalfEdge)

	bl.remove(a)

	prevHalfEdge := bl.at(prev).rightHalfEdge
	nextHalfEdge := bl.at(next).leftHalfEdge
	f.addEdge(prev, next)
	f.setOrigin(prev, next, v)
	f.setPrevHalfEdge(bl.at(prev).rightHalfEdge, prevHalfEdge)
	f.setPrevHalfEdge(nextHalfEdge, bl.at(next).leftHalfEdge)
}

func (f *Fortune) addEdge(left, right arcID) {
	bl := f.beachline
	d := f.diagram
	l := d.createHalfEdge(d.sites[bl.at(left).site].Face)
	r := d.createHalfEdge(d.sites[bl.at(right).site].Face)
	d.he(l).Twin = r
	d.he(r).Twin = l
	bl.at(left).rightHalfEdge = l
	bl.at(right).leftHalfEdge = r
}

func (f *Fortune) setOrigin(left, right arcID, v VertexID) {
	bl := f.beachline
	f.diagram.he(bl.at(left).rightHalfEdge).Destination = v
	f.diagram.he(bl.at(right).leftHalfEdge).Origin = v
}

func (f *Fortune) setDestination(left, right arcID, v VertexID) {
	bl := f.beachline
	f.diagram.he(bl.at(left).rightHalfEdge).Origin = v
	f.diagram.he(bl.at(right).leftHalfEdge).Destination = v
}

func (f *Fortune) setPrevHalfEdge(prev, next HalfEdgeID) {
	f.diagram.he(prev).Next = next
	f.diagram.he(next).Prev = prev
}

// addEvent schedules the circle event of middle if its two breakpoints
// converge below the sweep line.
func (f *Fortune) addEvent(left, middle, right arcID) {
	bl := f.beachline
	pl, pm, pr := bl.point(left), bl.point(middle), bl.point(right)

	center, y, ok := convergencePoint(pl, pm, pr)
	if !ok {
		return
	}
	isBelow := y <= f.beachlineY+geom.Epsilon

	leftMovingRight := pl.Y < pm.Y
	rightMovingRight := pm.Y < pr.Y
	leftInitialX := pm.X
	if leftMovingRight {
		leftInitialX = pl.X
	}
	rightInitialX := pr.X
	if rightMovingRight {
		rightInitialX = pm.X
	}

	isValid := (leftMovingRight && leftInitialX < center.X || !leftMovingRight && leftInitialX > center.X) &&
		(rightMovingRight && rightInitialX < center.X || !rightMovingRight && rightInitialX > center.X)
	if !isValid || !isBelow {
		return
	}

	e := &event{kind: circleEvent, y: y, point: center, arc: middle}
	e.handle = f.events.Push(e)
	bl.at(middle).event = e
}

func (f *Fortune) deleteEvent(a arcID) {
	bl := f.beachline
	if e := bl.at(a).event; e != nil {
		f.events.Remove(e.handle)
		bl.at(a).event = nil
	}
}

// convergencePoint returns the centre of the circle through the three
// points and the y of its lowest point.
func convergencePoint(p1, p2, p3 r2.Point) (center r2.Point, y float64, ok bool) {
	v1 := p1.Sub(p2).Ortho()
	v2 := p2.Sub(p3).Ortho()
	det := v1.Cross(v2)
	if math.Abs(det) <= geom.Epsilon*v1.Norm()*v2.Norm() {
		return r2.Point{}, 0, false
	}
	delta := p3.Sub(p1).Mul(0.5)
	t := delta.Cross(v2) / det
	center = p1.Add(p2).Mul(0.5).Add(v1.Mul(t))
	r := center.Sub(p1).Norm()
	return center, center.Y - r, true
}
