package element

import (
	"math"

	"scrawl/internal/geom"
)

// HitThreshold is how close, in document units, a point must come to a line
// or path segment to hit it.
const HitThreshold = 5.0

// Bounds returns the unrotated bounding box. Lines and paths use the
// envelope of their points; every other kind uses its stored box.
func (e *Element) Bounds() geom.Rect {
	switch s := e.Shape.(type) {
	case *Line:
		if len(s.Points) > 0 {
			return geom.Envelope(s.Points)
		}
	case *Path:
		if len(s.Points) > 0 {
			return geom.Envelope(s.Points)
		}
	}
	return e.Box()
}

// Center is the rotation centre of the element.
func (e *Element) Center() geom.Point {
	return e.Bounds().Center()
}

// ToLocal maps a global point into the element's unrotated frame.
func (e *Element) ToLocal(p geom.Point) geom.Point {
	return geom.ToLocal(p, e.Bounds(), e.Rotation)
}

// ToGlobal maps a point from the element's unrotated frame to global space.
func (e *Element) ToGlobal(p geom.Point) geom.Point {
	return geom.ToGlobal(p, e.Bounds(), e.Rotation)
}

// Contains reports whether the global point p hits the element.
func (e *Element) Contains(p geom.Point) bool {
	local := e.ToLocal(p)
	box := e.Bounds()
	switch s := e.Shape.(type) {
	case *Rectangle, *Text, *Note:
		return box.Contains(local)
	case *Ellipse:
		return geom.InEllipse(local, box)
	case *Line:
		return geom.NearPolyline(local, s.Points, e.lineTolerance())
	case *Path:
		return geom.NearPolyline(local, s.Points, e.lineTolerance())
	}
	return false
}

func (e *Element) lineTolerance() float64 {
	return math.Max(HitThreshold, e.Style.StrokeWidth/2)
}

// HandleAt returns the resize handle of e under the global point p. The
// point is rotated into local space; handle positions never rotate.
func (e *Element) HandleAt(p geom.Point, tolerance float64) geom.Handle {
	return geom.ResizeHandleAt(e.Bounds(), e.ToLocal(p), tolerance)
}

// OnRotationHandle reports whether p hits the rotation handle of e.
func (e *Element) OnRotationHandle(p geom.Point, tolerance float64) bool {
	return geom.OnRotationHandle(e.Bounds(), e.ToLocal(p), tolerance)
}

// Interactive reports whether handles apply to the element.
func (e *Element) Interactive() bool {
	return e.Visible && !e.Locked
}
