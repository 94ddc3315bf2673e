package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectFromPoints(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want Rect
	}{
		{name: "down-right drag", a: Pt(10, 10), b: Pt(50, 30), want: R(10, 10, 40, 20)},
		{name: "up-left drag flips origin", a: Pt(50, 30), b: Pt(10, 10), want: R(10, 10, 40, 20)},
		{name: "mixed drag", a: Pt(50, 10), b: Pt(10, 30), want: R(10, 10, 40, 20)},
		{name: "zero size", a: Pt(5, 5), b: Pt(5, 5), want: R(5, 5, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RectFromPoints(tt.a, tt.b))
		})
	}
}

func TestEnvelope(t *testing.T) {
	pts := []Point{Pt(5, 20), Pt(-3, 4), Pt(12, 9)}
	assert.Equal(t, R(-3, 4, 15, 16), Envelope(pts))
	assert.Equal(t, Rect{}, Envelope(nil))
}

func TestIntersectsUsesOpenIntervals(t *testing.T) {
	marquee := R(0, 0, 15, 15)
	assert.True(t, marquee.Intersects(R(0, 0, 10, 10)))
	assert.False(t, marquee.Intersects(R(20, 20, 10, 10)))
	assert.False(t, marquee.Intersects(R(15, 0, 10, 10)), "touching edges do not overlap")
}

func TestInEllipse(t *testing.T) {
	// centred at (50,50) with radii (20,10)
	box := R(30, 40, 40, 20)
	assert.True(t, InEllipse(Pt(50, 50), box))
	assert.True(t, InEllipse(Pt(69, 50), box))
	assert.False(t, InEllipse(Pt(80, 50), box))
	assert.False(t, InEllipse(Pt(50, 61), box))
	assert.False(t, InEllipse(Pt(50, 50), R(0, 0, 0, 10)))
}

func TestSegmentDistance(t *testing.T) {
	a, b := Pt(0, 0), Pt(10, 0)
	assert.InDelta(t, 5, SegmentDistance(Pt(5, 5), a, b), Epsilon)
	assert.InDelta(t, 5, SegmentDistance(Pt(-3, 4), a, b), Epsilon)
	assert.InDelta(t, 5, SegmentDistance(Pt(3, 4), a, a), Epsilon)
	assert.True(t, NearPolyline(Pt(10, 3), []Point{a, b, Pt(10, 10)}, 1))
	assert.False(t, NearPolyline(Pt(5, 6), []Point{a, b}, 5))
}

func TestLocalGlobalRoundTrip(t *testing.T) {
	box := R(10, 20, 40, 30)
	points := []Point{Pt(0, 0), Pt(30, 35), Pt(-120.5, 77.25), Pt(1e4, -1e4)}
	for _, deg := range []float64{0, 15, 45, 90, 133.7, 180, 270, -60} {
		for _, p := range points {
			got := ToGlobal(ToLocal(p, box, deg), box, deg)
			assert.InDelta(t, p.X, got.X, 1e-6)
			assert.InDelta(t, p.Y, got.Y, 1e-6)
		}
	}
}

func TestToLocalUndoesRotation(t *testing.T) {
	box := R(0, 0, 100, 20)
	// the right end of a box rotated 90 degrees lies below its centre
	global := Pt(50, 60)
	local := ToLocal(global, box, 90)
	assert.InDelta(t, 100, local.X, 1e-9)
	assert.InDelta(t, 10, local.Y, 1e-9)
}

func TestSimplify(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(0.5, 0), Pt(1, 0), Pt(3, 0), Pt(3.5, 0), Pt(4, 0)}
	assert.Equal(t, []Point{Pt(0, 0), Pt(3, 0), Pt(4, 0)}, Simplify(pts, 2))
	assert.Equal(t, []Point{Pt(1, 1)}, Simplify([]Point{Pt(1, 1)}, 2))
}

func TestSnap(t *testing.T) {
	assert.Equal(t, 20.0, Snap(23, 20))
	assert.Equal(t, 40.0, Snap(31, 20))
	assert.Equal(t, 7.5, Snap(7.5, 0))
	assert.Equal(t, 45.0, SnapAngle(50, 15))
	assert.Equal(t, 60.0, SnapAngle(53, 15))
}

func TestRotate(t *testing.T) {
	p := Rotate(Pt(1, 0), 90)
	assert.InDelta(t, 0, p.X, 1e-12)
	assert.InDelta(t, 1, p.Y, 1e-12)
	assert.InDelta(t, 90, AngleBetween(Pt(1, 0), Pt(0, 1)), 1e-12)
	assert.InDelta(t, math.Pi, Radians(180), 1e-12)
}
