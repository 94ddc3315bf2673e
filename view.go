package main

import (
	"fmt"
	"image"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fogleman/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"scrawl/internal/render"
)

// halfBlock paints its foreground in the top half of a cell and leaves the
// background showing below, so every cell carries two pixels.
const halfBlock = "▀"

var (
	statusStyle  = lipgloss.NewStyle().Reverse(true)
	currentStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// canvasTop is the first terminal row of the canvas. The document bar
// takes the top row once more than one canvas is open.
func (m *model) canvasTop() int {
	if len(m.engine.Documents()) > 1 {
		return 1
	}
	return 0
}

// canvasRows leaves room for the status line and the document bar.
func (m *model) canvasRows() int {
	return max(m.height-1-m.canvasTop(), 1)
}

func (m *model) canvasCols() int {
	return max(m.width, 1)
}

// surfaceSize is the pixel size the canvas is rendered at before it is
// sampled down onto cells.
func (m *model) surfaceSize() (int, int) {
	cp := m.cellPixels()
	return m.canvasCols() * cp, m.canvasRows() * 2 * cp
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}

	var result strings.Builder
	if m.canvasTop() > 0 {
		result.WriteString(m.renderDocumentBar())
		result.WriteString("\n")
	}
	result.WriteString(m.renderCanvas())
	result.WriteString("\n")
	result.WriteString(m.statusLine())
	return result.String()
}

// renderCanvas draws the frame at full resolution, scales it to two
// pixels per cell and emits runs of half blocks coloured top and bottom.
func (m *model) renderCanvas() string {
	w, h := m.surfaceSize()
	dc := gg.NewContext(w, h)
	m.renderer.Render(dc, render.FrameOf(m.engine))

	cols, rows := m.canvasCols(), m.canvasRows()
	cells := image.NewRGBA(image.Rect(0, 0, cols, rows*2))
	src := dc.Image()
	draw.BiLinear.Scale(cells, cells.Bounds(), src, src.Bounds(), draw.Src, nil)

	var b strings.Builder
	for row := 0; row < rows; row++ {
		if row > 0 {
			b.WriteString("\n")
		}
		run := 0
		var top, bottom string
		flush := func() {
			if run == 0 {
				return
			}
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom))
			b.WriteString(style.Render(strings.Repeat(halfBlock, run)))
			run = 0
		}
		for col := 0; col < cols; col++ {
			t := hexAt(cells, col, row*2)
			bo := hexAt(cells, col, row*2+1)
			if run > 0 && (t != top || bo != bottom) {
				flush()
			}
			top, bottom = t, bo
			run++
		}
		flush()
	}
	return b.String()
}

func hexAt(img *image.RGBA, x, y int) string {
	c, ok := colorful.MakeColor(img.RGBAAt(x, y))
	if !ok {
		return "#ffffff"
	}
	return c.Hex()
}

func (m *model) renderDocumentBar() string {
	var bar strings.Builder
	bar.WriteString("Open Canvases: ")
	active := m.engine.ActiveDocument()
	for i, doc := range m.engine.Documents() {
		if i > 0 {
			bar.WriteString(" | ")
		}
		if active != nil && doc.ID == active.ID {
			bar.WriteString(currentStyle.Render("[" + doc.Name + "]"))
		} else {
			bar.WriteString(doc.Name)
		}
	}
	return lipgloss.NewStyle().MaxWidth(m.canvasCols()).Render(bar.String())
}

func (m *model) statusLine() string {
	var status string
	switch m.mode {
	case ModeEditing:
		status = fmt.Sprintf("Mode: EDIT | Text: %s | ←/→=move cursor, Enter=newline, Ctrl+S=save, Esc=cancel",
			withCursor(strings.ReplaceAll(m.editText, "\n", "⏎"), m.editCursorPos))
	case ModeRename:
		status = fmt.Sprintf("Mode: RENAME | Name: %s█ | Enter=confirm, Esc=cancel", m.renameText)
	case ModeConfirm:
		status = "Mode: CONFIRM | " + m.confirmMessage()
	default:
		status = m.normalStatus()
	}

	return statusStyle.Width(m.canvasCols()).MaxWidth(m.canvasCols()).Render(status)
}

func (m *model) normalStatus() string {
	modeStr := "NORMAL"
	if m.panMode {
		modeStr = "PAN"
	}
	status := fmt.Sprintf("Mode: %s | Tool: %s", modeStr, m.engine.Tool())

	docs := m.engine.Documents()
	if doc := m.engine.ActiveDocument(); doc != nil {
		index := 0
		for i, d := range docs {
			if d.ID == doc.ID {
				index = i
			}
		}
		status += fmt.Sprintf(" | Canvas: %s (%d/%d)", doc.Name, index+1, len(docs))
	}
	status += fmt.Sprintf(" | Zoom: %d%%", int(math.Round(m.engine.View().Zoom*100)))
	if n := len(m.engine.Selection()); n > 0 {
		status += fmt.Sprintf(" | Selected: %d", n)
	}
	if g := m.engine.Grid(); g.Enabled {
		if g.Snap {
			status += " | Grid: snap"
		} else {
			status += " | Grid: on"
		}
	}
	switch {
	case m.errorMessage != "":
		status += " | ERROR: " + m.errorMessage
	case m.successMessage != "":
		status += " | " + m.successMessage
	default:
		status += " | ? for help | q to quit"
	}
	return status
}

func (m *model) confirmMessage() string {
	name := ""
	if doc := m.engine.ActiveDocument(); doc != nil {
		name = doc.Name
	}
	switch m.confirmAction {
	case ConfirmDeleteCanvas:
		return fmt.Sprintf("Delete canvas %s? (y/n)", name)
	case ConfirmClearCanvas:
		return fmt.Sprintf("Remove every element from %s? (y/n)", name)
	case ConfirmQuit:
		return "Quit Scrawl? (y/n)"
	}
	return ""
}

// withCursor replaces the rune at pos with a block, or appends one at the
// end.
func withCursor(s string, pos int) string {
	runes := []rune(s)
	if pos >= len(runes) {
		return s + "█"
	}
	runes[max(pos, 0)] = '█'
	return string(runes)
}

var helpLines = []string{
	"Scrawl Help",
	"===========",
	"",
	"Tools:",
	"------",
	"  v                Select, move, resize and rotate",
	"  r / o            Rectangle / ellipse",
	"  l / p            Line / pen",
	"  t / n            Text / sticky note (type right away, Ctrl+S to save)",
	"",
	"Mouse:",
	"------",
	"  Click            Select; Shift or Ctrl click toggles",
	"  Drag             Draw with the active tool, or move the selection",
	"  Drag empty space Marquee select",
	"  Drag handles     Resize (Shift keeps aspect) or rotate (Shift snaps 15°)",
	"  Wheel            Zoom at the pointer",
	"",
	"Editing:",
	"--------",
	"  e / Enter        Edit text of the selected text or note",
	"  Delete/Backspace Delete selection",
	"  Arrows           Nudge selection (Shift for 10)",
	"  Ctrl+C/X/V/D     Copy / cut / paste / duplicate",
	"  P                Paste text from the system clipboard",
	"  u / Ctrl+Z       Undo",
	"  U / Ctrl+Y       Redo",
	"  a / Ctrl+A       Select all",
	"  Ctrl+G / G       Group / ungroup",
	"  Ctrl+L           Lock or unlock selection",
	"  V                Show or hide selection",
	"  ] / [            Bring forward / send backward",
	"  F / B            Bring to front / send to back",
	"  Alt+arrows       Align left, right, top or bottom",
	"  Alt+c / Alt+m    Align centres / middles",
	"  Alt+d / Alt+D    Distribute horizontally / vertically",
	"  Esc              Clear selection",
	"",
	"View:",
	"-----",
	"  + / -            Zoom in / out",
	"  0                Reset zoom and pan",
	"  z                Toggle pan mode (hjkl/arrows pan, Shift is faster)",
	"  g / s            Toggle grid / snap to grid",
	"",
	"Canvases:",
	"---------",
	"  { / }            Previous / next canvas",
	"  N                New canvas",
	"  D                Duplicate canvas",
	"  R                Rename canvas",
	"  C                Clear canvas",
	"  X                Delete canvas",
	"  S                Export canvas as PNG",
	"",
	"General:",
	"  ?                Toggle this help screen",
	"  q                Quit Scrawl",
}

func (m model) helpView() string {
	visibleHeight := max(m.height-1, 1)

	startLine := min(m.helpScroll, max(len(helpLines)-visibleHeight, 0))
	endLine := min(startLine+visibleHeight, len(helpLines))

	result := strings.Join(helpLines[startLine:endLine], "\n")
	statusLine := fmt.Sprintf("Help (%d-%d of %d lines) | j/k to scroll, Esc to close",
		startLine+1, endLine, len(helpLines))
	return result + "\n" + statusStyle.Render(statusLine)
}
