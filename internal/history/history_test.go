package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scrawl/internal/element"
	"scrawl/internal/geom"
)

func rect(id string, x float64) element.Element {
	return element.NewRectangle(id, geom.R(x, 0, 10, 10), element.DefaultStyle(), time.UnixMilli(0))
}

func elements(els ...element.Element) Snapshot {
	return Snapshot{Elements: append([]element.Element{}, els...), Groups: []element.Group{}}
}

func TestUndoRedoRoundTrip(t *testing.T) {
	m := New()
	before := elements()
	after := elements(rect("a", 0))

	m.Save("doc", before)
	restored, ok := m.Undo("doc", after)
	require.True(t, ok)
	assert.Equal(t, before, restored)

	redone, ok := m.Redo("doc", restored)
	require.True(t, ok)
	assert.Equal(t, after, redone)
}

func TestEmptyStacksAreNoOps(t *testing.T) {
	m := New()
	_, ok := m.Undo("doc", Snapshot{})
	assert.False(t, ok)
	_, ok = m.Redo("doc", Snapshot{})
	assert.False(t, ok)

	m.Save("doc", Snapshot{})
	restored, ok := m.Undo("doc", Snapshot{})
	require.True(t, ok)
	assert.NotNil(t, restored.Elements)
	assert.NotNil(t, restored.Groups)
	_, ok = m.Undo("doc", Snapshot{})
	assert.False(t, ok)
}

func TestSaveClearsFuture(t *testing.T) {
	m := New()
	m.Save("doc", Snapshot{})
	_, _ = m.Undo("doc", elements(rect("a", 0)))
	assert.True(t, m.CanRedo("doc"))

	m.Save("doc", Snapshot{})
	assert.False(t, m.CanRedo("doc"))
}

func TestLimit(t *testing.T) {
	m := New()
	for i := 0; i < Limit+10; i++ {
		m.Save("doc", elements(rect("a", float64(i))))
	}
	past, _ := m.Depth("doc")
	assert.Equal(t, Limit, past)

	var oldest Snapshot
	for m.CanUndo("doc") {
		oldest, _ = m.Undo("doc", Snapshot{})
	}
	assert.Equal(t, 10.0, oldest.Elements[0].X, "the first ten snapshots were dropped")
}

func TestSnapshotsAreIsolated(t *testing.T) {
	m := New()
	snap := elements(element.NewLine("l", []geom.Point{geom.Pt(0, 0), geom.Pt(5, 5)}, element.DefaultStyle(), time.UnixMilli(0)))
	snap.Groups = []element.Group{{ID: "g", ElementIDs: []string{"l", "x"}}}
	m.Save("doc", snap)
	snap.Elements[0].Translate(100, 100)
	snap.Groups[0].ElementIDs[1] = "y"

	restored, ok := m.Undo("doc", snap)
	require.True(t, ok)
	assert.Equal(t, geom.Pt(0, 0), restored.Elements[0].Points()[0])
	assert.Equal(t, []string{"l", "x"}, restored.Groups[0].ElementIDs)
}

func TestDocumentsAreIndependent(t *testing.T) {
	m := New()
	m.Save("a", Snapshot{})
	assert.True(t, m.CanUndo("a"))
	assert.False(t, m.CanUndo("b"))
	m.Forget("a")
	assert.False(t, m.CanUndo("a"))
}
