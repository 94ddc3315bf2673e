// Package element defines the drawable elements of a canvas document. An
// Element carries the fields every element shares; its Shape holds the
// variant-specific data and is one of *Rectangle, *Ellipse, *Line, *Path,
// *Text or *Note. Shape is sealed, so those six are the only variants.
package element

import (
	"time"

	"scrawl/internal/geom"
)

type Kind string

const (
	KindRectangle Kind = "rectangle"
	KindEllipse   Kind = "ellipse"
	KindLine      Kind = "line"
	KindPath      Kind = "path"
	KindText      Kind = "text"
	KindNote      Kind = "note"
)

// Shape is the variant part of an Element.
type Shape interface {
	Kind() Kind
	clone() Shape
}

type Rectangle struct {
	CornerRadius float64
}

type Ellipse struct{}

type Line struct {
	Points     []geom.Point
	StartArrow bool
	EndArrow   bool
}

// Path is a freehand stroke.
type Path struct {
	Points []geom.Point
}

type Text struct {
	Text       string
	FontSize   float64
	FontFamily string
	Align      TextAlign
}

// Note is a sticky card: text on an opaque background.
type Note struct {
	Text       string
	FontSize   float64
	FontFamily string
}

func (*Rectangle) Kind() Kind { return KindRectangle }
func (*Ellipse) Kind() Kind   { return KindEllipse }
func (*Line) Kind() Kind      { return KindLine }
func (*Path) Kind() Kind      { return KindPath }
func (*Text) Kind() Kind      { return KindText }
func (*Note) Kind() Kind      { return KindNote }

func (s *Rectangle) clone() Shape { c := *s; return &c }
func (s *Ellipse) clone() Shape   { return &Ellipse{} }
func (s *Text) clone() Shape      { c := *s; return &c }
func (s *Note) clone() Shape      { c := *s; return &c }

func (s *Line) clone() Shape {
	c := *s
	c.Points = append([]geom.Point(nil), s.Points...)
	return &c
}

func (s *Path) clone() Shape {
	return &Path{Points: append([]geom.Point(nil), s.Points...)}
}

// Element is a single drawable unit. X, Y, Width and Height describe the
// unrotated box; Rotation (degrees) turns it about the box centre. For lines
// and paths the box tracks the envelope of the points.
type Element struct {
	ID        string
	X         float64
	Y         float64
	Width     float64
	Height    float64
	Rotation  float64
	Style     Style
	Locked    bool
	Visible   bool
	CreatedAt int64
	UpdatedAt int64
	Shape     Shape
}

func (e *Element) Kind() Kind {
	if e.Shape == nil {
		return ""
	}
	return e.Shape.Kind()
}

// Clone returns a deep copy; point slices are not shared.
func (e Element) Clone() Element {
	if e.Shape != nil {
		e.Shape = e.Shape.clone()
	}
	return e
}

// CloneAll deep-copies a slice of elements.
func CloneAll(els []Element) []Element {
	if els == nil {
		return nil
	}
	out := make([]Element, len(els))
	for i := range els {
		out[i] = els[i].Clone()
	}
	return out
}

// Points returns the point list of a line or path, nil otherwise.
func (e *Element) Points() []geom.Point {
	switch s := e.Shape.(type) {
	case *Line:
		return s.Points
	case *Path:
		return s.Points
	}
	return nil
}

// Content returns the text of a text or note element.
func (e *Element) Content() (string, bool) {
	switch s := e.Shape.(type) {
	case *Text:
		return s.Text, true
	case *Note:
		return s.Text, true
	}
	return "", false
}

// SetContent replaces the text of a text or note element. Other kinds are
// left untouched.
func (e *Element) SetContent(text string) bool {
	switch s := e.Shape.(type) {
	case *Text:
		s.Text = text
	case *Note:
		s.Text = text
	default:
		return false
	}
	return true
}

// Touch stamps the update time.
func (e *Element) Touch(now time.Time) {
	e.UpdatedAt = now.UnixMilli()
}

// Box returns the stored x/y/width/height rectangle.
func (e *Element) Box() geom.Rect {
	return geom.Rect{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height}
}

func (e *Element) setBox(r geom.Rect) {
	e.X, e.Y, e.Width, e.Height = r.X, r.Y, r.Width, r.Height
}

// SyncBounds recomputes the box of a line or path from its points.
func (e *Element) SyncBounds() {
	if pts := e.Points(); pts != nil {
		e.setBox(geom.Envelope(pts))
	}
}

// Translate moves the element, including every point of a line or path.
func (e *Element) Translate(dx, dy float64) {
	e.X += dx
	e.Y += dy
	pts := e.Points()
	for i := range pts {
		pts[i].X += dx
		pts[i].Y += dy
	}
}

// SetBounds moves and resizes the element to r. Line and path points are
// scaled from the old box into the new one.
func (e *Element) SetBounds(r geom.Rect) {
	if pts := e.Points(); pts != nil {
		old := e.Bounds()
		for i := range pts {
			pts[i] = remap(pts[i], old, r)
		}
	}
	e.setBox(r)
}

func remap(p geom.Point, from, to geom.Rect) geom.Point {
	out := geom.Point{X: to.X, Y: to.Y}
	if from.Width > 0 {
		out.X += (p.X - from.X) * to.Width / from.Width
	}
	if from.Height > 0 {
		out.Y += (p.Y - from.Y) * to.Height / from.Height
	}
	return out
}
