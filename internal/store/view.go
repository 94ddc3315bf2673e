package store

import (
	"scrawl/internal/element"
	"scrawl/internal/geom"
)

// Transient is the view state of an in-progress gesture. It is never part of
// a document, its history or what gets persisted.
type Transient struct {
	Preview      *element.Element
	SelectionBox *geom.Rect
	Cursor       string
}

// Transient returns the current transient view state.
func (e *Engine) Transient() Transient {
	return e.view
}

// SetPreview shows el as the element being drawn; nil clears it.
func (e *Engine) SetPreview(el *element.Element) {
	if el != nil {
		c := el.Clone()
		el = &c
	}
	e.view.Preview = el
	e.notify(ChangeTransient)
}

// SetSelectionBox shows the marquee rectangle; nil clears it.
func (e *Engine) SetSelectionBox(r *geom.Rect) {
	if r != nil {
		c := *r
		r = &c
	}
	e.view.SelectionBox = r
	e.notify(ChangeTransient)
}

func (e *Engine) SetCursor(cursor string) {
	if e.view.Cursor == cursor {
		return
	}
	e.view.Cursor = cursor
	e.notify(ChangeTransient)
}

// SetTool switches the active tool of the active document and drops any
// transient state left by the previous tool.
func (e *Engine) SetTool(t Tool) {
	doc := e.ActiveDocument()
	if doc == nil || doc.Tool == t {
		return
	}
	doc.Tool = t
	e.view = Transient{}
	e.persistDocuments()
	e.notify(ChangeTool)
}

// Tool returns the active tool, select when there is no document.
func (e *Engine) Tool() Tool {
	if doc := e.ActiveDocument(); doc != nil {
		return doc.Tool
	}
	return ToolSelect
}

// SetZoom sets the zoom factor clamped to [MinZoom, MaxZoom].
func (e *Engine) SetZoom(zoom float64) {
	e.setView(func(v *Viewport) { v.Zoom = clampZoom(zoom) })
}

// ZoomAt scales the zoom by factor keeping the document point under the
// screen point (sx, sy) fixed.
func (e *Engine) ZoomAt(sx, sy, factor float64) {
	e.setView(func(v *Viewport) {
		next := clampZoom(v.Zoom * factor)
		docX := (sx - v.PanX) / v.Zoom
		docY := (sy - v.PanY) / v.Zoom
		v.Zoom = next
		v.PanX = sx - docX*next
		v.PanY = sy - docY*next
	})
}

// Pan shifts the view by a screen-space offset.
func (e *Engine) Pan(dx, dy float64) {
	e.setView(func(v *Viewport) {
		v.PanX += dx
		v.PanY += dy
	})
}

func (e *Engine) ResetView() {
	e.setView(func(v *Viewport) { *v = Viewport{Zoom: DefaultZoom} })
}

// View returns the viewport of the active document.
func (e *Engine) View() Viewport {
	if doc := e.ActiveDocument(); doc != nil {
		return doc.View
	}
	return Viewport{Zoom: DefaultZoom}
}

func (e *Engine) setView(fn func(*Viewport)) {
	doc := e.ActiveDocument()
	if doc == nil {
		return
	}
	next := doc.View
	fn(&next)
	if next == doc.View {
		return
	}
	doc.View = next
	e.persistDocuments()
	e.notify(ChangeView)
}

func clampZoom(z float64) float64 {
	if z <= 0 {
		return DefaultZoom
	}
	return min(max(z, MinZoom), MaxZoom)
}

// SetGrid replaces the grid settings of the active document.
func (e *Engine) SetGrid(g GridSettings) error {
	if err := validate.Struct(g); err != nil {
		return err
	}
	doc := e.ActiveDocument()
	if doc == nil || doc.Grid == g {
		return nil
	}
	doc.Grid = g
	e.persistDocuments()
	e.notify(ChangeView)
	return nil
}

// Grid returns the grid of the active document, or the default grid.
func (e *Engine) Grid() GridSettings {
	if doc := e.ActiveDocument(); doc != nil {
		return doc.Grid
	}
	return e.settings.Grid
}

// ScreenToCanvas un-projects a surface point through pan and zoom. With snap
// and the grid's snap enabled the result lands on the nearest grid point.
func (e *Engine) ScreenToCanvas(sx, sy float64, snap bool) geom.Point {
	v := e.View()
	p := geom.Pt((sx-v.PanX)/v.Zoom, (sy-v.PanY)/v.Zoom)
	if g := e.Grid(); snap && g.Snap {
		p = geom.Pt(geom.Snap(p.X, g.Size), geom.Snap(p.Y, g.Size))
	}
	return p
}

// CanvasToScreen projects a document point onto the surface.
func (e *Engine) CanvasToScreen(p geom.Point) (sx, sy float64) {
	v := e.View()
	return p.X*v.Zoom + v.PanX, p.Y*v.Zoom + v.PanY
}
