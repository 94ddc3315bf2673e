package geom

import "math"

// Handle identifies one of the interactive controls drawn around a selected
// element.
type Handle int

const (
	HandleNone Handle = iota
	HandleNW
	HandleN
	HandleNE
	HandleE
	HandleSE
	HandleS
	HandleSW
	HandleW
	HandleRotate
)

const (
	// HandleSize is the side length of a square resize handle.
	HandleSize = 8.0
	// RotationHandleOffset is the distance of the rotation handle above the
	// top-centre of the box.
	RotationHandleOffset = 20.0
	// MinResizeSize is the smallest width or height a resize can produce.
	MinResizeSize = 10.0
)

// ResizeHandles lists the eight resize handles in drawing order.
var ResizeHandles = []Handle{HandleNW, HandleN, HandleNE, HandleE, HandleSE, HandleS, HandleSW, HandleW}

var handleNames = map[Handle]string{
	HandleNW: "nw", HandleN: "n", HandleNE: "ne", HandleE: "e",
	HandleSE: "se", HandleS: "s", HandleSW: "sw", HandleW: "w",
	HandleRotate: "rotate",
}

func (h Handle) String() string {
	if s, ok := handleNames[h]; ok {
		return s
	}
	return "none"
}

func (h Handle) IsCorner() bool {
	return h == HandleNW || h == HandleNE || h == HandleSE || h == HandleSW
}

func (h Handle) touchesWest() bool  { return h == HandleNW || h == HandleW || h == HandleSW }
func (h Handle) touchesEast() bool  { return h == HandleNE || h == HandleE || h == HandleSE }
func (h Handle) touchesNorth() bool { return h == HandleNW || h == HandleN || h == HandleNE }
func (h Handle) touchesSouth() bool { return h == HandleSW || h == HandleS || h == HandleSE }

// HandlePosition returns the centre of h for an unrotated box. Positions are
// always in the box's local frame; callers undo rotation on the input point.
func HandlePosition(box Rect, h Handle) Point {
	cx, cy := box.X+box.Width/2, box.Y+box.Height/2
	switch h {
	case HandleNW:
		return Point{box.X, box.Y}
	case HandleN:
		return Point{cx, box.Y}
	case HandleNE:
		return Point{box.MaxX(), box.Y}
	case HandleE:
		return Point{box.MaxX(), cy}
	case HandleSE:
		return Point{box.MaxX(), box.MaxY()}
	case HandleS:
		return Point{cx, box.MaxY()}
	case HandleSW:
		return Point{box.X, box.MaxY()}
	case HandleW:
		return Point{box.X, cy}
	case HandleRotate:
		return Point{cx, box.Y - RotationHandleOffset}
	}
	return box.Center()
}

// ResizeHandleAt returns the resize handle under the local-space point p, or
// HandleNone. tolerance widens the hit area around each handle.
func ResizeHandleAt(box Rect, p Point, tolerance float64) Handle {
	half := HandleSize/2 + tolerance
	for _, h := range ResizeHandles {
		c := HandlePosition(box, h)
		if math.Abs(p.X-c.X) <= half && math.Abs(p.Y-c.Y) <= half {
			return h
		}
	}
	return HandleNone
}

// OnRotationHandle reports whether the local-space point p hits the rotation
// handle of box.
func OnRotationHandle(box Rect, p Point, tolerance float64) bool {
	return p.Dist(HandlePosition(box, HandleRotate)) <= HandleSize/2+tolerance
}

// Resize computes the new box after dragging handle h by the global delta.
// The delta is rotated into the box's local frame, applied to the edges the
// handle touches, clamped to MinResizeSize, and the centre is moved back
// through the rotation so the opposite edge stays visually anchored.
// lockAspect only applies to corner handles.
func Resize(box Rect, rotation float64, h Handle, delta Point, lockAspect bool) Rect {
	local := Rotate(delta, -rotation)
	w, hgt := box.Width, box.Height
	newW, newH := w, hgt

	switch {
	case h.touchesEast():
		newW = w + local.X
	case h.touchesWest():
		newW = w - local.X
	}
	switch {
	case h.touchesSouth():
		newH = hgt + local.Y
	case h.touchesNorth():
		newH = hgt - local.Y
	}

	if lockAspect && h.IsCorner() && w > 0 && hgt > 0 {
		ratio := w / hgt
		if math.Abs(newW-w)/w >= math.Abs(newH-hgt)/hgt {
			newH = newW / ratio
		} else {
			newW = newH * ratio
		}
		// The shorter side takes the floor and the other follows the ratio.
		if newW < MinResizeSize || newH < MinResizeSize {
			if ratio >= 1 {
				newH = MinResizeSize
				newW = newH * ratio
			} else {
				newW = MinResizeSize
				newH = newW / ratio
			}
		}
	}

	newW = math.Max(MinResizeSize, newW)
	newH = math.Max(MinResizeSize, newH)

	var offset Point
	dw, dh := newW-w, newH-hgt
	switch {
	case h.touchesEast():
		offset.X = dw / 2
	case h.touchesWest():
		offset.X = -dw / 2
	}
	switch {
	case h.touchesSouth():
		offset.Y = dh / 2
	case h.touchesNorth():
		offset.Y = -dh / 2
	}

	center := box.Center().Add(Rotate(offset, rotation))
	return Rect{X: center.X - newW/2, Y: center.Y - newH/2, Width: newW, Height: newH}
}

// RotationFor returns the rotation after the pointer moved from start to
// current around center, given the rotation at gesture start. With snap set
// the result is rounded to 15 degree steps.
func RotationFor(initial float64, center, start, current Point, snap bool) float64 {
	deg := initial + AngleBetween(start.Sub(center), current.Sub(center))
	if snap {
		deg = SnapAngle(deg, 15)
	}
	return normalizeDegrees(deg)
}

func normalizeDegrees(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
