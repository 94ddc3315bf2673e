package tool

import (
	"scrawl/internal/element"
	"scrawl/internal/geom"
	"scrawl/internal/store"
)

// builder makes the element for a gesture from anchor to the current point.
// pts holds every sampled point for freehand tools.
type builder func(id string, anchor, current geom.Point, pts []geom.Point, style element.Style) element.Element

// Draw is the Idle -> Drawing -> Idle machine shared by the rectangle,
// ellipse, line and pen tools. The element under construction lives in the
// engine's preview until pointer-up commits or discards it.
type Draw struct {
	engine   *store.Engine
	build    builder
	freehand bool

	drawing bool
	anchor  geom.Point
	points  []geom.Point
}

func NewRectangle(engine *store.Engine) *Draw {
	return &Draw{engine: engine, build: func(id string, a, c geom.Point, _ []geom.Point, s element.Style) element.Element {
		return element.NewRectangle(id, geom.RectFromPoints(a, c), s, engine.Now())
	}}
}

func NewEllipse(engine *store.Engine) *Draw {
	return &Draw{engine: engine, build: func(id string, a, c geom.Point, _ []geom.Point, s element.Style) element.Element {
		return element.NewEllipse(id, geom.RectFromPoints(a, c), s, engine.Now())
	}}
}

func NewLine(engine *store.Engine) *Draw {
	return &Draw{engine: engine, build: func(id string, a, c geom.Point, _ []geom.Point, s element.Style) element.Element {
		return element.NewLine(id, []geom.Point{a, c}, s, engine.Now())
	}}
}

// NewPen draws freehand paths. Samples are never grid-snapped.
func NewPen(engine *store.Engine) *Draw {
	return &Draw{engine: engine, freehand: true, build: func(id string, _, _ geom.Point, pts []geom.Point, s element.Style) element.Element {
		return element.NewPath(id, pts, s, engine.Now())
	}}
}

func (d *Draw) point(p Pointer) geom.Point {
	if d.freehand {
		return p.At
	}
	return p.Snapped
}

func (d *Draw) PointerDown(p Pointer) {
	if d.engine.ActiveDocument() == nil {
		return
	}
	d.drawing = true
	d.anchor = d.point(p)
	d.points = []geom.Point{d.anchor}
	d.preview(d.anchor)
}

func (d *Draw) PointerMove(p Pointer) {
	if !d.drawing {
		return
	}
	cur := d.point(p)
	if d.freehand {
		d.points = append(d.points, cur)
	}
	d.preview(cur)
}

func (d *Draw) PointerUp(p Pointer) {
	if !d.drawing {
		return
	}
	cur := d.point(p)
	if d.freehand && !cur.Near(d.points[len(d.points)-1]) {
		d.points = append(d.points, cur)
	}
	pts := d.points
	if d.freehand {
		pts = geom.Simplify(pts, PenMinDistance)
	}
	el := d.build(d.engine.NewElementID(), d.anchor, cur, pts, d.engine.Settings().DefaultStyle)
	d.reset()

	if b := el.Bounds(); b.Width > CommitThreshold || b.Height > CommitThreshold {
		d.engine.AddElement(el)
	}
}

func (d *Draw) preview(cur geom.Point) {
	el := d.build("", d.anchor, cur, d.points, d.engine.Settings().DefaultStyle)
	d.engine.SetPreview(&el)
}

func (d *Draw) Busy() bool { return d.drawing }

func (d *Draw) Deactivate() {
	if d.drawing {
		d.reset()
	}
}

func (d *Draw) reset() {
	d.drawing = false
	d.points = nil
	d.engine.SetPreview(nil)
}
