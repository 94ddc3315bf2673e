package tool

import (
	"go.uber.org/zap"

	"scrawl/internal/store"
)

// Dispatcher routes input to the active tool of the engine's active
// document. Every handler runs under recover so a failing tool never takes
// the event loop down; the tool is reset instead.
type Dispatcher struct {
	engine  *store.Engine
	tools   map[store.Tool]Tool
	current store.Tool
	logger  *zap.Logger
}

func NewDispatcher(engine *store.Engine, logger *zap.Logger) *Dispatcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Dispatcher{
		engine:  engine,
		tools:   newTools(engine),
		current: engine.Tool(),
		logger:  logger,
	}
}

// active returns the tool matching the engine, deactivating the previous
// one when the engine switched tools behind the dispatcher's back.
func (d *Dispatcher) active() Tool {
	if t := d.engine.Tool(); t != d.current {
		if prev, ok := d.tools[d.current]; ok {
			prev.Deactivate()
		}
		d.current = t
	}
	return d.tools[d.current]
}

// SetTool deactivates the current tool and switches the engine to t.
func (d *Dispatcher) SetTool(t store.Tool) {
	if _, ok := d.tools[t]; !ok {
		return
	}
	d.safely("set_tool", func() {
		if prev, ok := d.tools[d.current]; ok {
			prev.Deactivate()
		}
		d.engine.SetTool(t)
		d.current = d.engine.Tool()
	})
}

// Busy reports whether the active tool is mid-gesture.
func (d *Dispatcher) Busy() bool {
	t := d.tools[d.current]
	return t != nil && t.Busy()
}

func (d *Dispatcher) pointer(ev PointerEvent) Pointer {
	return Pointer{
		At:      d.engine.ScreenToCanvas(ev.X, ev.Y, false),
		Snapped: d.engine.ScreenToCanvas(ev.X, ev.Y, true),
		Mods:    ev.Mods,
	}
}

func (d *Dispatcher) PointerDown(ev PointerEvent) {
	d.safely("pointer_down", func() {
		if t := d.active(); t != nil {
			t.PointerDown(d.pointer(ev))
		}
	})
}

func (d *Dispatcher) PointerMove(ev PointerEvent) {
	d.safely("pointer_move", func() {
		if t := d.active(); t != nil {
			t.PointerMove(d.pointer(ev))
		}
	})
}

func (d *Dispatcher) PointerUp(ev PointerEvent) {
	d.safely("pointer_up", func() {
		if t := d.active(); t != nil {
			t.PointerUp(d.pointer(ev))
		}
	})
}

// PointerLeave completes any gesture at ev as if the pointer were released.
func (d *Dispatcher) PointerLeave(ev PointerEvent) {
	if d.Busy() {
		d.PointerUp(ev)
	}
}

func (d *Dispatcher) safely(handler string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Recovered from panic in tool handler",
				zap.String("handler", handler),
				zap.String("tool", string(d.current)),
				zap.Any("panic", r),
				zap.Stack("stack"))
			d.reset()
		}
	}()
	fn()
}

func (d *Dispatcher) reset() {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("Failed to reset tool", zap.Any("panic", r))
		}
	}()
	if t, ok := d.tools[d.current]; ok {
		t.Deactivate()
	}
	d.engine.EndGesture()
	d.engine.SetPreview(nil)
	d.engine.SetSelectionBox(nil)
}
