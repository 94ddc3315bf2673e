package element

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrawl/internal/geom"
)

var epoch = time.UnixMilli(1_700_000_000_000)

func TestBounds(t *testing.T) {
	rect := NewRectangle("r", geom.R(10, 10, 40, 20), DefaultStyle(), epoch)
	assert.Equal(t, geom.R(10, 10, 40, 20), rect.Bounds())

	line := NewLine("l", []geom.Point{geom.Pt(30, 5), geom.Pt(0, 25), geom.Pt(12, 40)}, DefaultStyle(), epoch)
	assert.Equal(t, geom.R(0, 5, 30, 35), line.Bounds())

	path := NewPath("p", []geom.Point{geom.Pt(-5, -5), geom.Pt(5, 15)}, DefaultStyle(), epoch)
	assert.Equal(t, geom.R(-5, -5, 10, 20), path.Bounds())
}

func TestContains(t *testing.T) {
	tests := []struct {
		name string
		el   Element
		p    geom.Point
		want bool
	}{
		{name: "rectangle inside", el: NewRectangle("r", geom.R(0, 0, 100, 20), DefaultStyle(), epoch), p: geom.Pt(90, 10), want: true},
		{name: "rectangle outside", el: NewRectangle("r", geom.R(0, 0, 100, 20), DefaultStyle(), epoch), p: geom.Pt(50, 40), want: false},
		{name: "ellipse centre", el: NewEllipse("e", geom.R(30, 40, 40, 20), DefaultStyle(), epoch), p: geom.Pt(50, 50), want: true},
		{name: "ellipse beyond radius", el: NewEllipse("e", geom.R(30, 40, 40, 20), DefaultStyle(), epoch), p: geom.Pt(80, 50), want: false},
		{name: "ellipse box corner", el: NewEllipse("e", geom.R(30, 40, 40, 20), DefaultStyle(), epoch), p: geom.Pt(31, 41), want: false},
		{name: "line near segment", el: NewLine("l", []geom.Point{geom.Pt(0, 0), geom.Pt(100, 0)}, DefaultStyle(), epoch), p: geom.Pt(50, 4), want: true},
		{name: "line far from segment", el: NewLine("l", []geom.Point{geom.Pt(0, 0), geom.Pt(100, 0)}, DefaultStyle(), epoch), p: geom.Pt(50, 9), want: false},
		{name: "note inside", el: NewNote("n", geom.Pt(0, 0), DefaultStyle(), epoch), p: geom.Pt(150, 150), want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.el.Contains(tt.p))
		})
	}
}

func TestContainsRotated(t *testing.T) {
	el := NewRectangle("r", geom.R(0, 0, 100, 20), DefaultStyle(), epoch)
	el.Rotation = 90
	// rotated about (50,10) the long axis is now vertical
	assert.True(t, el.Contains(geom.Pt(50, 55)))
	assert.False(t, el.Contains(geom.Pt(90, 10)))
}

func TestHandleAtUndoesRotation(t *testing.T) {
	el := NewRectangle("r", geom.R(0, 0, 100, 20), DefaultStyle(), epoch)
	el.Rotation = 90
	// the east handle (100,10) lands at (50,60) after rotation
	assert.Equal(t, geom.HandleE, el.HandleAt(geom.Pt(50, 60), 0))
	assert.Equal(t, geom.HandleNone, el.HandleAt(geom.Pt(100, 10), 0))
}

func TestTranslateMovesPoints(t *testing.T) {
	el := NewLine("l", []geom.Point{geom.Pt(0, 0), geom.Pt(10, 10)}, DefaultStyle(), epoch)
	el.Translate(5, -2)
	assert.Equal(t, []geom.Point{geom.Pt(5, -2), geom.Pt(15, 8)}, el.Points())
	assert.Equal(t, geom.R(5, -2, 10, 10), el.Box())
}

func TestSetBoundsScalesPoints(t *testing.T) {
	el := NewPath("p", []geom.Point{geom.Pt(0, 0), geom.Pt(5, 10), geom.Pt(10, 0)}, DefaultStyle(), epoch)
	el.SetBounds(geom.R(100, 100, 20, 40))
	assert.Equal(t, []geom.Point{geom.Pt(100, 100), geom.Pt(110, 140), geom.Pt(120, 100)}, el.Points())
	assert.Equal(t, geom.R(100, 100, 20, 40), el.Bounds())
}

func TestCloneIsDeep(t *testing.T) {
	el := NewLine("l", []geom.Point{geom.Pt(0, 0), geom.Pt(10, 10)}, DefaultStyle(), epoch)
	c := el.Clone()
	c.Translate(1, 1)
	assert.Equal(t, geom.Pt(0, 0), el.Points()[0])
	assert.Equal(t, geom.Pt(1, 1), c.Points()[0])
}

func TestContent(t *testing.T) {
	note := NewNote("n", geom.Pt(0, 0), DefaultStyle(), epoch)
	require.True(t, note.SetContent("buy milk"))
	text, ok := note.Content()
	assert.True(t, ok)
	assert.Equal(t, "buy milk", text)
	assert.Equal(t, NoteFillColor, note.Style.FillColor)

	rect := NewRectangle("r", geom.R(0, 0, 1, 1), DefaultStyle(), epoch)
	assert.False(t, rect.SetContent("x"))
}

func TestCohesive(t *testing.T) {
	groups := []Group{
		{ID: "g1", ElementIDs: []string{"a", "b"}},
		{ID: "g2", ElementIDs: []string{"b", "c"}},
		{ID: "g3", ElementIDs: []string{"x", "y"}},
	}
	assert.Equal(t, []string{"a", "b", "c"}, Cohesive([]string{"a"}, groups))
	assert.Equal(t, []string{"c", "b", "a"}, Cohesive([]string{"c"}, groups))
	assert.Equal(t, []string{"z"}, Cohesive([]string{"z"}, groups))
}

func TestUnmarshalElement(t *testing.T) {
	t.Run("missing visibility defaults to visible", func(t *testing.T) {
		var el Element
		require.NoError(t, json.Unmarshal([]byte(`{"id":"a","type":"text","x":1,"y":2,"width":3,"height":4,"text":"hi"}`), &el))
		assert.True(t, el.Visible)
		assert.Equal(t, KindText, el.Kind())
		text, _ := el.Content()
		assert.Equal(t, "hi", text)
		assert.Equal(t, AlignLeft, el.Shape.(*Text).Align)
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		var el Element
		err := json.Unmarshal([]byte(`{"id":"a","type":"star"}`), &el)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown type")
	})

	t.Run("line keeps variant fields", func(t *testing.T) {
		in := NewLine("l", []geom.Point{geom.Pt(0, 0), geom.Pt(3, 4)}, DefaultStyle(), epoch)
		in.Shape.(*Line).StartArrow = true
		data, err := json.Marshal(in)
		require.NoError(t, err)
		var out Element
		require.NoError(t, json.Unmarshal(data, &out))
		assert.Equal(t, in, out)
	})
}
