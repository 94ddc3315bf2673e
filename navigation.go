package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"scrawl/internal/tool"
)

// handlePan moves the view in pan mode and reports whether key was a pan
// key. Panning the view right moves the canvas content left.
func (m *model) handlePan(key string, speed int) bool {
	step := float64(panCells * speed * m.cellPixels())
	switch key {
	case "h", "left", "H", "shift+left":
		m.engine.Pan(step, 0)
	case "l", "right", "L", "shift+right":
		m.engine.Pan(-step, 0)
	case "k", "up", "K", "shift+up":
		m.engine.Pan(0, step)
	case "j", "down", "J", "shift+down":
		m.engine.Pan(0, -step)
	default:
		return false
	}
	return true
}

func (m *model) getPanSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return fastFactor
	default:
		return 1
	}
}

func (m *model) zoomAtCenter(factor float64) {
	w, h := m.surfaceSize()
	m.engine.ZoomAt(float64(w)/2, float64(h)/2, factor)
}

func (m *model) cellPixels() int {
	if m.config == nil || m.config.CellPixels < 1 {
		return defaultCellPixels
	}
	return m.config.CellPixels
}

// pointerEvent converts a terminal cell to the surface pixel at its
// centre. Each cell covers cellPixels columns and twice as many rows.
func (m *model) pointerEvent(msg tea.MouseMsg) tool.PointerEvent {
	cp := float64(m.cellPixels())
	row := msg.Y - m.canvasTop()
	return tool.PointerEvent{
		X:    (float64(msg.X) + 0.5) * cp,
		Y:    (float64(row) + 0.5) * 2 * cp,
		Mods: tool.Modifiers{Shift: msg.Shift, Ctrl: msg.Ctrl, Alt: msg.Alt},
	}
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	if m.help || m.mode != ModeNormal {
		return
	}
	ev := m.pointerEvent(msg)

	if tea.MouseEvent(msg).IsWheel() {
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.engine.ZoomAt(ev.X, ev.Y, wheelZoom)
		case tea.MouseButtonWheelDown:
			m.engine.ZoomAt(ev.X, ev.Y, 1/wheelZoom)
		case tea.MouseButtonWheelLeft:
			m.engine.Pan(float64(panCells*m.cellPixels()), 0)
		case tea.MouseButtonWheelRight:
			m.engine.Pan(-float64(panCells*m.cellPixels()), 0)
		}
		return
	}

	row := msg.Y - m.canvasTop()
	if row < 0 || row >= m.canvasRows() {
		m.dispatcher.PointerLeave(ev)
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.successMessage = ""
		m.errorMessage = ""
		before := m.engine.Tool()
		m.dispatcher.PointerDown(ev)
		if placing(before) && m.engine.Tool() != before {
			m.startEditing()
		}
	case tea.MouseActionMotion:
		m.dispatcher.PointerMove(ev)
	case tea.MouseActionRelease:
		m.dispatcher.PointerUp(ev)
	}
}
