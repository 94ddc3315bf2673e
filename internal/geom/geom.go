// Package geom holds the pure 2D math behind the canvas: points, rectangles,
// rotation about a centre, and the distance/containment tests used for
// hit-testing. Angles are in degrees unless a name says otherwise.
package geom

import "math"

// Epsilon is the tolerance used when comparing floating point coordinates.
const Epsilon = 1e-9

// Point is a 2D coordinate in document space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func Pt(x, y float64) Point { return Point{X: x, Y: y} }

func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Dist returns the euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Near reports whether p and q are equal within Epsilon on both axes.
func (p Point) Near(q Point) bool {
	return math.Abs(p.X-q.X) <= Epsilon && math.Abs(p.Y-q.Y) <= Epsilon
}

// Rect is an axis-aligned rectangle defined by its top-left corner and size.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func R(x, y, w, h float64) Rect { return Rect{X: x, Y: y, Width: w, Height: h} }

// RectFromPoints returns the normalized rectangle spanning a and b, so a drag
// toward the top-left still yields a non-negative width and height.
func RectFromPoints(a, b Point) Rect {
	return Rect{
		X:      math.Min(a.X, b.X),
		Y:      math.Min(a.Y, b.Y),
		Width:  math.Abs(b.X - a.X),
		Height: math.Abs(b.Y - a.Y),
	}
}

// Envelope returns the min/max bounding rectangle of pts. An empty slice
// yields the zero Rect.
func Envelope(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

func (r Rect) MaxX() float64 { return r.X + r.Width }
func (r Rect) MaxY() float64 { return r.Y + r.Height }

func (r Rect) Center() Point {
	return Point{r.X + r.Width/2, r.Y + r.Height/2}
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.MaxX() && p.Y >= r.Y && p.Y <= r.MaxY()
}

// Intersects is the open-interval overlap test used by marquee selection:
// rectangles that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.MaxX() && r.MaxX() > o.X && r.Y < o.MaxY() && r.MaxY() > o.Y
}

// Union returns the smallest rectangle containing r and o.
func (r Rect) Union(o Rect) Rect {
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.MaxX(), o.MaxX())
	maxY := math.Max(r.MaxY(), o.MaxY())
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Inset shrinks r by d on every side; a negative d grows it.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, Width: r.Width - 2*d, Height: r.Height - 2*d}
}

func Radians(deg float64) float64 { return deg * math.Pi / 180 }
func Degrees(rad float64) float64 { return rad * 180 / math.Pi }

// Rotate rotates v about the origin by deg degrees. Positive angles turn
// clockwise on a y-down surface.
func Rotate(v Point, deg float64) Point {
	if deg == 0 {
		return v
	}
	s, c := math.Sincos(Radians(deg))
	return Point{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}

// RotateAround rotates p about center by deg degrees.
func RotateAround(p, center Point, deg float64) Point {
	return Rotate(p.Sub(center), deg).Add(center)
}

// ToLocal maps a global point into the unrotated frame of a box rotated by
// deg about its centre. Axis-aligned tests run on the result.
func ToLocal(p Point, box Rect, deg float64) Point {
	return RotateAround(p, box.Center(), -deg)
}

// ToGlobal is the inverse of ToLocal.
func ToGlobal(p Point, box Rect, deg float64) Point {
	return RotateAround(p, box.Center(), deg)
}

// InEllipse reports whether p lies inside the ellipse inscribed in box.
func InEllipse(p Point, box Rect) bool {
	rx, ry := box.Width/2, box.Height/2
	if rx <= 0 || ry <= 0 {
		return false
	}
	c := box.Center()
	dx := (p.X - c.X) / rx
	dy := (p.Y - c.Y) / ry
	return dx*dx+dy*dy <= 1
}

// SegmentDistance returns the distance from p to the segment ab.
func SegmentDistance(p, a, b Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return p.Dist(a)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Dist(Point{a.X + t*dx, a.Y + t*dy})
}

// NearPolyline reports whether p is within threshold of any consecutive
// segment of pts.
func NearPolyline(p Point, pts []Point, threshold float64) bool {
	if len(pts) == 1 {
		return p.Dist(pts[0]) <= threshold
	}
	for i := 0; i+1 < len(pts); i++ {
		if SegmentDistance(p, pts[i], pts[i+1]) <= threshold {
			return true
		}
	}
	return false
}

// AngleBetween returns the signed angle in degrees from vector a to vector b.
func AngleBetween(a, b Point) float64 {
	return Degrees(math.Atan2(b.Y, b.X) - math.Atan2(a.Y, a.X))
}

// SnapAngle rounds deg to the nearest multiple of step.
func SnapAngle(deg, step float64) float64 {
	if step <= 0 {
		return deg
	}
	return math.Round(deg/step) * step
}

// Snap rounds v to the nearest multiple of size.
func Snap(v, size float64) float64 {
	if size <= 0 {
		return v
	}
	return math.Round(v/size) * size
}

// Simplify drops interior points closer than minDist to the last kept point.
// The first and last points always survive.
func Simplify(pts []Point, minDist float64) []Point {
	if len(pts) <= 2 {
		return append([]Point(nil), pts...)
	}
	out := []Point{pts[0]}
	for _, p := range pts[1 : len(pts)-1] {
		if p.Dist(out[len(out)-1]) >= minDist {
			out = append(out, p)
		}
	}
	return append(out, pts[len(pts)-1])
}
