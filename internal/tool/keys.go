package tool

import "scrawl/internal/store"

type action func(d *Dispatcher)

func selectTool(t store.Tool) action {
	return func(d *Dispatcher) { d.SetTool(t) }
}

func nudge(dx, dy int, large bool) action {
	return func(d *Dispatcher) { d.engine.Nudge(dx, dy, large) }
}

func selection(fn func(e *store.Engine, ids ...string) bool) action {
	return func(d *Dispatcher) { fn(d.engine, d.engine.Selection()...) }
}

// keymap is the keyboard contract. Key names follow the "ctrl+shift+x"
// convention of terminal key events.
var keymap = map[string]action{
	"v": selectTool(store.ToolSelect),
	"r": selectTool(store.ToolRectangle),
	"o": selectTool(store.ToolEllipse),
	"l": selectTool(store.ToolLine),
	"p": selectTool(store.ToolPen),
	"t": selectTool(store.ToolText),
	"n": selectTool(store.ToolNote),

	"delete":    func(d *Dispatcher) { d.engine.DeleteSelected() },
	"backspace": func(d *Dispatcher) { d.engine.DeleteSelected() },
	"esc":       func(d *Dispatcher) { d.engine.ClearSelection() },

	"ctrl+z":       func(d *Dispatcher) { d.engine.Undo() },
	"ctrl+y":       func(d *Dispatcher) { d.engine.Redo() },
	"ctrl+shift+z": func(d *Dispatcher) { d.engine.Redo() },
	"ctrl+a":       func(d *Dispatcher) { d.engine.SelectAll() },
	"ctrl+g":       func(d *Dispatcher) { d.engine.Group() },
	"ctrl+shift+g": func(d *Dispatcher) { d.engine.Ungroup() },
	"ctrl+l":       func(d *Dispatcher) { d.engine.ToggleLock() },
	"ctrl+shift+h": func(d *Dispatcher) { d.engine.ToggleVisibility() },

	"ctrl+]":       selection((*store.Engine).BringForward),
	"ctrl+[":       selection((*store.Engine).SendBackward),
	"ctrl+shift+]": selection((*store.Engine).BringToFront),
	"ctrl+shift+[": selection((*store.Engine).SendToBack),

	"ctrl+c": func(d *Dispatcher) { d.engine.Copy() },
	"ctrl+x": func(d *Dispatcher) { d.engine.Cut() },
	"ctrl+v": func(d *Dispatcher) { d.engine.Paste() },
	"ctrl+d": func(d *Dispatcher) { d.engine.DuplicateSelection() },

	"up":          nudge(0, -1, false),
	"down":        nudge(0, 1, false),
	"left":        nudge(-1, 0, false),
	"right":       nudge(1, 0, false),
	"shift+up":    nudge(0, -1, true),
	"shift+down":  nudge(0, 1, true),
	"shift+left":  nudge(-1, 0, true),
	"shift+right": nudge(1, 0, true),
}

// Bound reports whether key is part of the keyboard contract.
func Bound(key string) bool {
	if key == "escape" {
		return true
	}
	_, ok := keymap[key]
	return ok
}

// Key runs the action bound to key and reports whether one was bound. While
// a gesture is in progress only escape is honoured, and it only clears the
// selection.
func (d *Dispatcher) Key(key string) bool {
	if key == "escape" {
		key = "esc"
	}
	act, ok := keymap[key]
	if !ok {
		return false
	}
	if d.Busy() && key != "esc" {
		return true
	}
	d.safely("key", func() { act(d) })
	return true
}
