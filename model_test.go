package main

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"scrawl/internal/element"
	"scrawl/internal/geom"
	"scrawl/internal/render"
	"scrawl/internal/store"
)

var epoch = time.UnixMilli(1_700_000_000_000)

func newTestModel(t *testing.T, confirmations bool) model {
	t.Helper()
	n := 0
	engine := store.New(nil,
		store.WithClock(func() time.Time { return epoch }),
		store.WithIDs(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}))
	config := &Config{
		DataDir:       t.TempDir(),
		ExportDir:     t.TempDir(),
		LogLevel:      "info",
		Confirmations: confirmations,
		CellPixels:    4,
		ExportPadding: 20,
	}
	m := newModel(config, zap.NewNop(), engine, render.New(nil, nil))
	return send(t, m, tea.WindowSizeMsg{Width: 40, Height: 21})
}

func send(t *testing.T, m model, msg tea.Msg) model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(model)
	require.True(t, ok)
	return out
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeKeys(t *testing.T, m model, keys ...tea.KeyMsg) model {
	t.Helper()
	for _, k := range keys {
		m = send(t, m, k)
	}
	return m
}

func mouse(x, y int, action tea.MouseAction, button tea.MouseButton) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: action, Button: button}
}

// drag presses at one cell, moves to another and releases there.
func drag(t *testing.T, m model, x1, y1, x2, y2 int) model {
	t.Helper()
	m = send(t, m, mouse(x1, y1, tea.MouseActionPress, tea.MouseButtonLeft))
	m = send(t, m, mouse(x2, y2, tea.MouseActionMotion, tea.MouseButtonLeft))
	return send(t, m, mouse(x2, y2, tea.MouseActionRelease, tea.MouseButtonNone))
}

func addRect(t *testing.T, m model, x, y, w, h float64) string {
	t.Helper()
	el := element.NewRectangle(m.engine.NewElementID(), geom.R(x, y, w, h), element.DefaultStyle(), epoch)
	require.True(t, m.engine.AddElement(el))
	return el.ID
}

func TestNewModelCreatesCanvas(t *testing.T) {
	m := newTestModel(t, false)
	require.NotNil(t, m.engine.ActiveDocument())
	assert.Equal(t, "Canvas 1", m.engine.ActiveDocument().Name)
	assert.Equal(t, ModeNormal, m.mode)
}

func TestMouseDrawsRectangle(t *testing.T) {
	m := newTestModel(t, false)
	m = send(t, m, runes("r"))
	assert.Equal(t, store.ToolRectangle, m.engine.Tool())

	// Cell (2,2) is surface pixel (10,20); cell (20,10) is (82,84).
	m = drag(t, m, 2, 2, 20, 10)

	doc := m.engine.ActiveDocument()
	require.Len(t, doc.Elements, 1)
	assert.Equal(t, element.KindRectangle, doc.Elements[0].Kind())
	b := doc.Elements[0].Bounds()
	assert.InDelta(t, 10, b.X, 1e-9)
	assert.InDelta(t, 20, b.Y, 1e-9)
	assert.InDelta(t, 72, b.Width, 1e-9)
	assert.InDelta(t, 64, b.Height, 1e-9)

	m = send(t, m, runes("u"))
	assert.Empty(t, m.engine.ActiveDocument().Elements)
	m = send(t, m, runes("U"))
	assert.Len(t, m.engine.ActiveDocument().Elements, 1)
}

func TestMouseOutsideCanvasEndsGesture(t *testing.T) {
	m := newTestModel(t, false)
	m = send(t, m, runes("o"))
	m = send(t, m, mouse(2, 2, tea.MouseActionPress, tea.MouseButtonLeft))
	m = send(t, m, mouse(20, 10, tea.MouseActionMotion, tea.MouseButtonLeft))
	require.True(t, m.dispatcher.Busy())

	// Row 20 is the status line.
	m = send(t, m, mouse(20, 20, tea.MouseActionMotion, tea.MouseButtonLeft))
	assert.False(t, m.dispatcher.Busy())
	assert.Len(t, m.engine.ActiveDocument().Elements, 1)
}

func TestKeysWaitForGestureToFinish(t *testing.T) {
	m := newTestModel(t, false)
	first := m.engine.ActiveDocument().ID
	a := addRect(t, m, 0, 0, 40, 40)
	m = send(t, m, runes("N"))
	b := addRect(t, m, 0, 0, 40, 40)
	m = send(t, m, runes("{"))
	require.Equal(t, first, m.engine.ActiveDocument().ID)

	// With the document bar on row 0, cell (2,2) is surface pixel (10,12).
	m = send(t, m, mouse(2, 2, tea.MouseActionPress, tea.MouseButtonLeft))
	require.True(t, m.dispatcher.Busy())
	for _, key := range []string{"}", "N", "r", "u"} {
		m = send(t, m, runes(key))
	}
	m = send(t, m, tea.KeyMsg{Type: tea.KeyDelete})
	m = send(t, m, mouse(5, 2, tea.MouseActionMotion, tea.MouseButtonLeft))
	m = send(t, m, mouse(8, 2, tea.MouseActionMotion, tea.MouseButtonLeft))
	m = send(t, m, mouse(8, 2, tea.MouseActionRelease, tea.MouseButtonNone))

	assert.Equal(t, first, m.engine.ActiveDocument().ID)
	assert.Len(t, m.engine.Documents(), 2)
	assert.Equal(t, store.ToolSelect, m.engine.Tool())
	el, ok := m.engine.Element(a)
	require.True(t, ok)
	assert.InDelta(t, 24, el.X, 1e-9)
	assert.InDelta(t, 0, m.engine.Documents()[1].Element(b).X, 1e-9)

	m = send(t, m, runes("u"))
	el, ok = m.engine.Element(a)
	require.True(t, ok)
	assert.InDelta(t, 0, el.X, 1e-9, "the drag is one undo step")
	m = send(t, m, runes("u"))
	assert.Empty(t, m.engine.ActiveDocument().Elements)
}

func TestWheelZoomsAtPointer(t *testing.T) {
	m := newTestModel(t, false)
	m = send(t, m, mouse(0, 0, tea.MouseActionPress, tea.MouseButtonWheelUp))
	assert.InDelta(t, wheelZoom, m.engine.View().Zoom, 1e-9)

	m = send(t, m, mouse(0, 0, tea.MouseActionPress, tea.MouseButtonWheelDown))
	assert.InDelta(t, 1, m.engine.View().Zoom, 1e-9)
}

func TestPlacingTextStartsEditing(t *testing.T) {
	m := newTestModel(t, false)
	m = send(t, m, runes("t"))
	m = send(t, m, mouse(5, 5, tea.MouseActionPress, tea.MouseButtonLeft))
	m = send(t, m, mouse(5, 5, tea.MouseActionRelease, tea.MouseButtonNone))

	require.Equal(t, ModeEditing, m.mode)
	assert.Equal(t, "Text", m.editText)
	assert.Equal(t, store.ToolSelect, m.engine.Tool())

	back := tea.KeyMsg{Type: tea.KeyBackspace}
	m = typeKeys(t, m, back, back, back, back, runes("h"), runes("i"),
		tea.KeyMsg{Type: tea.KeyEnter}, runes("x"), tea.KeyMsg{Type: tea.KeyLeft},
		tea.KeyMsg{Type: tea.KeyDelete}, tea.KeyMsg{Type: tea.KeyCtrlS})

	assert.Equal(t, ModeNormal, m.mode)
	el, ok := m.engine.Element(m.editID)
	require.True(t, ok)
	text, _ := el.Content()
	assert.Equal(t, "hi\n", text)
}

func TestEditingEscapeDiscardsText(t *testing.T) {
	m := newTestModel(t, false)
	m = send(t, m, runes("n"))
	m = send(t, m, mouse(5, 5, tea.MouseActionPress, tea.MouseButtonLeft))
	require.Equal(t, ModeEditing, m.mode)

	m = typeKeys(t, m, runes("zzz"), tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, ModeNormal, m.mode)
	el, ok := m.engine.Element(m.editID)
	require.True(t, ok)
	text, _ := el.Content()
	assert.Equal(t, "Note", text)
}

func TestEditRequiresSingleTextSelection(t *testing.T) {
	m := newTestModel(t, false)
	id := addRect(t, m, 0, 0, 50, 50)
	m.engine.Select(id)

	m = send(t, m, runes("e"))
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, "Select one text or note to edit", m.errorMessage)
}

func TestCanvasKeys(t *testing.T) {
	m := newTestModel(t, false)
	first := m.engine.ActiveDocument().ID

	m = send(t, m, runes("N"))
	require.Len(t, m.engine.Documents(), 2)
	assert.Equal(t, "Canvas 2", m.engine.ActiveDocument().Name)
	assert.Equal(t, 1, m.canvasTop())

	m = send(t, m, runes("}"))
	assert.Equal(t, first, m.engine.ActiveDocument().ID)
	m = send(t, m, runes("{"))
	assert.Equal(t, "Canvas 2", m.engine.ActiveDocument().Name)

	m = send(t, m, runes("R"))
	require.Equal(t, ModeRename, m.mode)
	m = typeKeys(t, m, tea.KeyMsg{Type: tea.KeyBackspace}, runes("B"), tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, ModeNormal, m.mode)
	assert.Equal(t, "Canvas B", m.engine.ActiveDocument().Name)

	m = send(t, m, runes("D"))
	require.Len(t, m.engine.Documents(), 3)
	assert.Equal(t, "Canvas B (copy)", m.engine.ActiveDocument().Name)

	m = send(t, m, runes("X"))
	assert.Len(t, m.engine.Documents(), 2)
}

func TestDeletingLastCanvasCreatesAnother(t *testing.T) {
	m := newTestModel(t, false)
	only := m.engine.ActiveDocument().ID

	m = send(t, m, runes("X"))
	require.Len(t, m.engine.Documents(), 1)
	assert.NotEqual(t, only, m.engine.ActiveDocument().ID)
}

func TestConfirmations(t *testing.T) {
	m := newTestModel(t, true)
	addRect(t, m, 0, 0, 50, 50)

	m = send(t, m, runes("C"))
	require.Equal(t, ModeConfirm, m.mode)
	assert.Equal(t, "Remove every element from Canvas 1? (y/n)", m.confirmMessage())
	m = send(t, m, runes("n"))
	assert.Equal(t, ModeNormal, m.mode)
	assert.Len(t, m.engine.ActiveDocument().Elements, 1)

	m = typeKeys(t, m, runes("C"), runes("y"))
	assert.Empty(t, m.engine.ActiveDocument().Elements)

	m = send(t, m, runes("q"))
	require.Equal(t, ModeConfirm, m.mode)
	next, cmd := m.Update(runes("y"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, ModeNormal, next.(model).mode)
}

func TestQuitWithoutConfirmation(t *testing.T) {
	m := newTestModel(t, false)
	_, cmd := m.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewKeys(t *testing.T) {
	m := newTestModel(t, false)

	m = send(t, m, runes("+"))
	assert.InDelta(t, zoomStep, m.engine.View().Zoom, 1e-9)
	m = send(t, m, runes("0"))
	assert.Equal(t, store.Viewport{Zoom: 1}, m.engine.View())

	m = send(t, m, runes("z"))
	require.True(t, m.panMode)
	m = send(t, m, runes("h"))
	assert.InDelta(t, float64(panCells*4), m.engine.View().PanX, 1e-9)
	m = send(t, m, runes("J"))
	assert.InDelta(t, -float64(panCells*4*fastFactor), m.engine.View().PanY, 1e-9)
	assert.Equal(t, store.ToolSelect, m.engine.Tool(), "pan keys must not reach the tools")

	m = send(t, m, runes("z"))
	m = send(t, m, runes("l"))
	assert.Equal(t, store.ToolLine, m.engine.Tool())

	grid := m.engine.Grid()
	m = send(t, m, runes("g"))
	assert.Equal(t, !grid.Enabled, m.engine.Grid().Enabled)
	m = send(t, m, runes("s"))
	assert.Equal(t, !grid.Snap, m.engine.Grid().Snap)
}

func TestEditingKeysReachEngine(t *testing.T) {
	m := newTestModel(t, false)
	a := addRect(t, m, 0, 0, 20, 20)
	b := addRect(t, m, 50, 30, 20, 20)

	m = send(t, m, runes("a"))
	assert.ElementsMatch(t, []string{a, b}, m.engine.Selection())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft, Alt: true})
	ea, _ := m.engine.Element(a)
	eb, _ := m.engine.Element(b)
	assert.InDelta(t, 0, ea.Bounds().X, 1e-9)
	assert.InDelta(t, 0, eb.Bounds().X, 1e-9)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight})
	ea, _ = m.engine.Element(a)
	assert.InDelta(t, 1, ea.Bounds().X, 1e-9)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyDelete})
	assert.Empty(t, m.engine.ActiveDocument().Elements)
}

func TestExportPNG(t *testing.T) {
	m := newTestModel(t, false)

	m = send(t, m, runes("S"))
	assert.Equal(t, "Nothing to export", m.errorMessage)

	addRect(t, m, 0, 0, 50, 50)
	m = send(t, m, runes("S"))
	assert.Empty(t, m.errorMessage)
	assert.FileExists(t, filepath.Join(m.config.ExportDir, "canvas-1.png"))
	assert.Contains(t, m.successMessage, "canvas-1.png")
}

func TestExportFilename(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Canvas 1", "canvas-1.png"},
		{"  Road map: Q3/Q4  ", "road-map-q3-q4.png"},
		{"Ünïcode", "ünïcode.png"},
		{"***", "canvas.png"},
		{"", "canvas.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exportFilename(tt.name))
		})
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t, false)
	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 21})
	id := addRect(t, m, 10, 10, 60, 40)
	m.engine.Select(id)

	out := m.View()
	assert.Contains(t, out, "Mode: NORMAL")
	assert.Contains(t, out, "Tool: select")
	assert.Contains(t, out, "Canvas: Canvas 1 (1/1)")
	assert.Contains(t, out, "Zoom: 100%")
	assert.Contains(t, out, "Selected: 1")
	assert.Contains(t, out, halfBlock)
	assert.NotContains(t, out, "Open Canvases")

	m = send(t, m, runes("?"))
	assert.Contains(t, m.View(), "Scrawl Help")
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.help)
}

func TestWithCursor(t *testing.T) {
	assert.Equal(t, "ab█", withCursor("ab", 2))
	assert.Equal(t, "█b", withCursor("ab", 0))
	assert.Equal(t, "█", withCursor("", 0))
}
