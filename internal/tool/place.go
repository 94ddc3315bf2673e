package tool

import (
	"time"

	"scrawl/internal/element"
	"scrawl/internal/geom"
	"scrawl/internal/store"
)

// Place is a single-click tool: pointer-down drops a placeholder element,
// selects it and hands control back to the select tool.
type Place struct {
	engine *store.Engine
	create func(id string, at geom.Point, style element.Style, now time.Time) element.Element
}

func NewText(engine *store.Engine) *Place {
	return &Place{engine: engine, create: element.NewText}
}

func NewNote(engine *store.Engine) *Place {
	return &Place{engine: engine, create: element.NewNote}
}

func (t *Place) PointerDown(p Pointer) {
	if t.engine.ActiveDocument() == nil {
		return
	}
	el := t.create(t.engine.NewElementID(), p.Snapped, t.engine.Settings().DefaultStyle, t.engine.Now())
	if !t.engine.AddElement(el) {
		return
	}
	t.engine.Select(el.ID)
	t.engine.SetTool(store.ToolSelect)
}

func (t *Place) PointerMove(Pointer) {}
func (t *Place) PointerUp(Pointer)   {}
func (t *Place) Busy() bool          { return false }
func (t *Place) Deactivate()         {}
