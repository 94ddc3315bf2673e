package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrawl/internal/element"
	"scrawl/internal/geom"
)

func TestAlign(t *testing.T) {
	rects := []geom.Rect{
		geom.R(10, 40, 10, 10),
		geom.R(30, 0, 30, 20),
		geom.R(5, 10, 20, 60),
	}

	tests := []struct {
		name  string
		align Alignment
		check func(t *testing.T, got []geom.Rect)
	}{
		{"left", AlignLeft, func(t *testing.T, got []geom.Rect) {
			for _, r := range got {
				assert.Equal(t, 5.0, r.X)
			}
		}},
		{"right", AlignRight, func(t *testing.T, got []geom.Rect) {
			for _, r := range got {
				assert.Equal(t, 60.0, r.MaxX())
			}
		}},
		{"center", AlignCenter, func(t *testing.T, got []geom.Rect) {
			for _, r := range got {
				assert.InDelta(t, 32.5, r.Center().X, geom.Epsilon)
			}
		}},
		{"top", AlignTop, func(t *testing.T, got []geom.Rect) {
			for _, r := range got {
				assert.Equal(t, 0.0, r.Y)
			}
		}},
		{"middle", AlignMiddle, func(t *testing.T, got []geom.Rect) {
			for _, r := range got {
				assert.InDelta(t, 35.0, r.Center().Y, geom.Epsilon)
			}
		}},
		{"bottom", AlignBottom, func(t *testing.T, got []geom.Rect) {
			for _, r := range got {
				assert.Equal(t, 70.0, r.MaxY())
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			var ids []string
			for _, r := range rects {
				ids = append(ids, addRect(t, e, r.X, r.Y, r.Width, r.Height))
			}
			e.Select(ids...)
			require.True(t, e.Align(tt.align))

			got := make([]geom.Rect, len(ids))
			for i, id := range ids {
				got[i] = box(t, e, id)
				assert.Equal(t, rects[i].Width, got[i].Width, "width preserved")
				assert.Equal(t, rects[i].Height, got[i].Height, "height preserved")
			}
			tt.check(t, got)
		})
	}
}

func TestAlignNeedsTwoElements(t *testing.T) {
	e := newTestEngine(t)
	a := addRect(t, e, 10, 10, 10, 10)
	addRect(t, e, 0, 0, 10, 10)
	e.Select(a)
	past, _ := e.history.Depth(e.activeID)

	assert.False(t, e.Align(AlignLeft))
	assert.Equal(t, 10.0, box(t, e, a).X)
	after, _ := e.history.Depth(e.activeID)
	assert.Equal(t, past, after)
}

func TestDistribute(t *testing.T) {
	tests := []struct {
		name    string
		axis    Axis
		centers []float64
		want    []float64
		moved   bool
	}{
		{"already even", Horizontal, []float64{0, 50, 100}, []float64{0, 50, 100}, false},
		{"uneven middle", Horizontal, []float64{0, 10, 100}, []float64{0, 50, 100}, true},
		{"unsorted input", Horizontal, []float64{100, 0, 10, 40}, []float64{100, 0, 33.333333333, 66.666666667}, true},
		{"vertical", Vertical, []float64{0, 90, 120}, []float64{0, 60, 120}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			var ids []string
			for _, c := range tt.centers {
				x, y := c-5, 0.0
				if tt.axis == Vertical {
					x, y = 0, c-5
				}
				ids = append(ids, addRect(t, e, x, y, 10, 10))
			}
			e.Select(ids...)
			assert.Equal(t, tt.moved, e.Distribute(tt.axis))

			for i, id := range ids {
				c := box(t, e, id).Center()
				got := c.X
				if tt.axis == Vertical {
					got = c.Y
				}
				assert.InDelta(t, tt.want[i], got, 1e-6, "element %d", i)
			}
		})
	}
}

func TestDistributeNeedsThreeElements(t *testing.T) {
	e := newTestEngine(t)
	a := addRect(t, e, 0, 0, 10, 10)
	b := addRect(t, e, 50, 0, 10, 10)
	e.Select(a, b)
	assert.False(t, e.Distribute(Horizontal))
}

func TestGroupAndUngroup(t *testing.T) {
	e := newTestEngine(t)
	a := addRect(t, e, 0, 0, 10, 10)
	b := addRect(t, e, 20, 0, 10, 10)

	e.Select(a)
	_, ok := e.Group()
	assert.False(t, ok, "a group needs two members")

	e.Select(a, b)
	g, ok := e.Group()
	require.True(t, ok)
	assert.Equal(t, []string{a, b}, g.ElementIDs)
	assert.Equal(t, []string{b, a}, e.CohesiveIDs([]string{b}))

	e.Select(b)
	require.True(t, e.Ungroup())
	assert.Empty(t, e.ActiveDocument().Groups)
	assert.False(t, e.Ungroup())
}

func TestGroupingIsUndoable(t *testing.T) {
	e := newTestEngine(t)
	a := addRect(t, e, 0, 0, 10, 10)
	b := addRect(t, e, 20, 0, 10, 10)
	e.Select(a, b)
	past, _ := e.history.Depth(e.activeID)
	g, ok := e.Group()
	require.True(t, ok)
	after, _ := e.history.Depth(e.activeID)
	assert.Equal(t, past+1, after)

	require.True(t, e.Undo())
	assert.Empty(t, e.ActiveDocument().Groups)
	require.True(t, e.Redo())
	require.Len(t, e.ActiveDocument().Groups, 1)
	assert.Equal(t, g, e.ActiveDocument().Groups[0])

	e.Select(a)
	require.True(t, e.Ungroup())
	require.True(t, e.Undo())
	assert.Equal(t, []element.Group{g}, e.ActiveDocument().Groups)
}

func TestUndoNeverLeavesDanglingGroupMembers(t *testing.T) {
	e := newTestEngine(t)
	a := addRect(t, e, 0, 0, 10, 10)
	b := addRect(t, e, 20, 0, 10, 10)
	e.Select(a, b)
	_, ok := e.Group()
	require.True(t, ok)

	for e.CanUndo() {
		require.True(t, e.Undo())
		doc := e.ActiveDocument()
		for _, g := range doc.Groups {
			for _, id := range g.ElementIDs {
				assert.NotNil(t, doc.Element(id), "group %s member %s", g.ID, id)
			}
		}
	}
	assert.Empty(t, e.ActiveDocument().Elements)

	for e.CanRedo() {
		require.True(t, e.Redo())
	}
	doc := e.ActiveDocument()
	require.Len(t, doc.Groups, 1)
	assert.Equal(t, []string{a, b}, doc.Groups[0].ElementIDs)
	assert.Equal(t, []string{b, a}, e.CohesiveIDs([]string{b}))
}
