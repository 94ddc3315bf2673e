package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentLifecycle(t *testing.T) {
	e := newTestEngine(t)
	first := e.ActiveDocument()
	assert.Equal(t, "Test", first.Name)
	assert.Equal(t, ToolSelect, first.Tool)
	assert.Equal(t, DefaultZoom, first.View.Zoom)
	assert.NotNil(t, first.Groups)

	second := e.CreateDocument("")
	assert.Equal(t, "Canvas 2", second.Name)
	assert.Equal(t, second.ID, e.ActiveDocument().ID)

	require.True(t, e.ActivateDocument(first.ID))
	assert.Equal(t, first.ID, e.Settings().ActiveDocumentID)
	assert.False(t, e.ActivateDocument("missing"))

	require.True(t, e.RenameDocument(second.ID, "Ideas"))
	assert.Equal(t, "Ideas", second.Name)
	assert.False(t, e.RenameDocument(second.ID, ""))

	require.True(t, e.DeleteDocument(first.ID))
	assert.Equal(t, second.ID, e.ActiveDocument().ID)
	assert.False(t, e.DeleteDocument(first.ID))

	require.True(t, e.DeleteDocument(second.ID))
	assert.Nil(t, e.ActiveDocument())
}

func TestDeleteDocumentForgetsHistory(t *testing.T) {
	e := newTestEngine(t)
	id := e.ActiveDocument().ID
	addRect(t, e, 0, 0, 10, 10)
	require.True(t, e.DeleteDocument(id))

	past, future := e.history.Depth(id)
	assert.Zero(t, past)
	assert.Zero(t, future)
}

func TestHistoryIsPerDocument(t *testing.T) {
	e := newTestEngine(t)
	first := e.ActiveDocument().ID
	addRect(t, e, 0, 0, 10, 10)

	e.CreateDocument("Other")
	assert.False(t, e.CanUndo())

	require.True(t, e.ActivateDocument(first))
	assert.True(t, e.CanUndo())
}

func TestDuplicateDocument(t *testing.T) {
	e := newTestEngine(t)
	src := e.ActiveDocument()
	a := addRect(t, e, 0, 0, 10, 10)
	b := addRect(t, e, 20, 0, 10, 10)
	e.Select(a, b)
	_, ok := e.Group()
	require.True(t, ok)

	dup := e.DuplicateDocument(src.ID)
	require.NotNil(t, dup)
	assert.Equal(t, dup.ID, e.ActiveDocument().ID)
	assert.Equal(t, "Test (copy)", dup.Name)
	require.Len(t, dup.Elements, 2)
	assert.NotEqual(t, a, dup.Elements[0].ID)
	assert.Equal(t, src.Elements[0].Box(), dup.Elements[0].Box())

	require.Len(t, dup.Groups, 1)
	assert.Equal(t, []string{dup.Elements[0].ID, dup.Elements[1].ID}, dup.Groups[0].ElementIDs)
	assert.Equal(t, dup.Groups[0].ElementIDs, dup.SelectedIDs)

	require.True(t, e.MoveElements([]string{dup.Elements[0].ID}, 5, 5))
	assert.Equal(t, 0.0, src.Elements[0].X, "copies share no state")
}

func TestCycleDocument(t *testing.T) {
	e := newTestEngine(t)
	a := e.ActiveDocument().ID
	b := e.CreateDocument("b").ID
	c := e.CreateDocument("c").ID

	require.True(t, e.CycleDocument(1))
	assert.Equal(t, a, e.ActiveDocument().ID)
	require.True(t, e.CycleDocument(-1))
	assert.Equal(t, c, e.ActiveDocument().ID)
	require.True(t, e.CycleDocument(-1))
	assert.Equal(t, b, e.ActiveDocument().ID)
}
