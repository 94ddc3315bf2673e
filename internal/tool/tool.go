// Package tool turns pointer and keyboard input into document store calls.
// Each tool is a small state machine; the Dispatcher routes events to the
// active one and guarantees no handler panic escapes into the caller.
package tool

import (
	"scrawl/internal/geom"
	"scrawl/internal/store"
)

// CommitThreshold is the size a drawn element must exceed on at least one
// axis to be kept.
const CommitThreshold = 2.0

// PenMinDistance is the spacing below which freehand samples are dropped.
const PenMinDistance = 2.0

// HandleTolerance widens handle hit areas, in document units.
const HandleTolerance = 2.0

type Modifiers struct {
	Shift bool
	Ctrl  bool
	Alt   bool
}

// Any reports whether a selection modifier is held.
func (m Modifiers) Any() bool {
	return m.Shift || m.Ctrl
}

// PointerEvent is a pointer position relative to the surface, in surface
// pixels.
type PointerEvent struct {
	X, Y float64
	Mods Modifiers
}

// Pointer is a PointerEvent un-projected into document space. Snapped has
// grid snapping applied when the document enables it.
type Pointer struct {
	At      geom.Point
	Snapped geom.Point
	Mods    Modifiers
}

// Tool handles the pointer events of one active tool.
type Tool interface {
	PointerDown(p Pointer)
	PointerMove(p Pointer)
	PointerUp(p Pointer)
	// Busy reports whether a gesture is in progress.
	Busy() bool
	// Deactivate drops any in-progress gesture state.
	Deactivate()
}

func newTools(engine *store.Engine) map[store.Tool]Tool {
	return map[store.Tool]Tool{
		store.ToolSelect:    NewSelect(engine),
		store.ToolRectangle: NewRectangle(engine),
		store.ToolEllipse:   NewEllipse(engine),
		store.ToolLine:      NewLine(engine),
		store.ToolPen:       NewPen(engine),
		store.ToolText:      NewText(engine),
		store.ToolNote:      NewNote(engine),
	}
}
