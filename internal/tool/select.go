package tool

import (
	"slices"

	"scrawl/internal/element"
	"scrawl/internal/geom"
	"scrawl/internal/store"
)

type selectState int

const (
	selectIdle selectState = iota
	selectDragging
	selectResizing
	selectRotating
	selectMarquee
)

// Cursor names published through the engine's transient state.
const (
	CursorDefault = "default"
	CursorMove    = "move"
	CursorRotate  = "rotate"
	CursorResize  = "resize"
	CursorCross   = "crosshair"
)

// Select picks, moves, resizes and rotates elements and drives the marquee.
type Select struct {
	engine *store.Engine
	state  selectState

	start  geom.Point
	last   geom.Point
	target string
	handle geom.Handle
	box    geom.Rect
	angle  float64
	center geom.Point
}

func NewSelect(engine *store.Engine) *Select {
	return &Select{engine: engine}
}

// PointerDown resolves what is under the pointer in priority order: the
// rotation handle of a single selected element, a resize handle of any
// selected element, the topmost element, and finally empty space.
func (s *Select) PointerDown(p Pointer) {
	doc := s.engine.ActiveDocument()
	if doc == nil {
		return
	}
	at := p.At
	s.start, s.last = at, at
	sel := doc.SelectedElements()

	if len(sel) == 1 && sel[0].Interactive() && sel[0].OnRotationHandle(at, HandleTolerance) {
		s.begin(selectRotating, sel[0])
		s.center = sel[0].Center()
		return
	}
	for i := len(sel) - 1; i >= 0; i-- {
		el := sel[i]
		if !el.Interactive() {
			continue
		}
		if h := el.HandleAt(at, HandleTolerance); h != geom.HandleNone {
			s.begin(selectResizing, el)
			s.handle = h
			return
		}
	}

	if el, ok := s.engine.ElementAt(at); ok {
		s.click(el, p.Mods)
		return
	}

	s.engine.ClearSelection()
	s.state = selectMarquee
	s.engine.SetSelectionBox(&geom.Rect{X: at.X, Y: at.Y})
}

func (s *Select) click(el *element.Element, mods Modifiers) {
	id, locked := el.ID, el.Locked
	switch {
	case mods.Any() && s.engine.ActiveDocument().IsSelected(id):
		s.engine.RemoveFromSelection(id)
		return
	case mods.Any():
		s.engine.AddToSelection(id)
	case !s.engine.ActiveDocument().IsSelected(id):
		s.engine.Select(id)
	}
	if !locked {
		s.state = selectDragging
		s.engine.BeginGesture()
		s.engine.SetCursor(CursorMove)
	}
}

func (s *Select) begin(state selectState, el *element.Element) {
	s.state = state
	s.target = el.ID
	s.box = el.Bounds()
	s.angle = el.Rotation
	s.engine.BeginGesture()
	if state == selectRotating {
		s.engine.SetCursor(CursorRotate)
	} else {
		s.engine.SetCursor(CursorResize)
	}
}

func (s *Select) PointerMove(p Pointer) {
	at := p.At
	switch s.state {
	case selectDragging:
		d := at.Sub(s.last)
		s.last = at
		s.engine.MoveElements(s.engine.Selection(), d.X, d.Y)
	case selectResizing:
		box := geom.Resize(s.box, s.angle, s.handle, at.Sub(s.start), p.Mods.Shift)
		s.engine.ResizeElement(s.target, box)
	case selectRotating:
		s.engine.RotateElement(s.target, geom.RotationFor(s.angle, s.center, s.start, at, p.Mods.Shift))
	case selectMarquee:
		r := geom.RectFromPoints(s.start, at)
		s.engine.SetSelectionBox(&r)
	case selectIdle:
		s.engine.SetCursor(s.hover(at))
	}
}

func (s *Select) PointerUp(p Pointer) {
	switch s.state {
	case selectMarquee:
		r := geom.RectFromPoints(s.start, p.At)
		s.engine.SetSelectionBox(nil)
		if r.Width > 0 || r.Height > 0 {
			s.engine.Select(s.engine.ElementsIn(r)...)
		}
	case selectDragging, selectResizing, selectRotating:
		s.PointerMove(p)
		s.engine.EndGesture()
	}
	s.state = selectIdle
	s.engine.SetCursor(CursorDefault)
}

func (s *Select) hover(at geom.Point) string {
	doc := s.engine.ActiveDocument()
	if doc == nil {
		return CursorDefault
	}
	sel := doc.SelectedElements()
	if len(sel) == 1 && sel[0].Interactive() && sel[0].OnRotationHandle(at, HandleTolerance) {
		return CursorRotate
	}
	if slices.ContainsFunc(sel, func(el *element.Element) bool {
		return el.Interactive() && el.HandleAt(at, HandleTolerance) != geom.HandleNone
	}) {
		return CursorResize
	}
	if el, ok := s.engine.ElementAt(at); ok && !el.Locked {
		return CursorMove
	}
	return CursorDefault
}

func (s *Select) Busy() bool { return s.state != selectIdle }

func (s *Select) Deactivate() {
	switch s.state {
	case selectMarquee:
		s.engine.SetSelectionBox(nil)
	case selectDragging, selectResizing, selectRotating:
		s.engine.EndGesture()
	}
	s.state = selectIdle
}
