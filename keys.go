package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"scrawl/internal/clipboard"
	"scrawl/internal/element"
	"scrawl/internal/render"
	"scrawl/internal/store"
)

// arrangeKeys line up or spread the selection. They sit on alt so the
// plain arrows stay free for nudging.
var arrangeKeys = map[string]func(e *store.Engine) bool{
	"alt+left":  func(e *store.Engine) bool { return e.Align(store.AlignLeft) },
	"alt+right": func(e *store.Engine) bool { return e.Align(store.AlignRight) },
	"alt+up":    func(e *store.Engine) bool { return e.Align(store.AlignTop) },
	"alt+down":  func(e *store.Engine) bool { return e.Align(store.AlignBottom) },
	"alt+c":     func(e *store.Engine) bool { return e.Align(store.AlignCenter) },
	"alt+m":     func(e *store.Engine) bool { return e.Align(store.AlignMiddle) },
	"alt+d":     func(e *store.Engine) bool { return e.Distribute(store.Horizontal) },
	"alt+D":     func(e *store.Engine) bool { return e.Distribute(store.Vertical) },
}

// keyAliases give shortcuts terminals cannot deliver a reachable spelling.
var keyAliases = map[string]string{
	"u": "ctrl+z",
	"U": "ctrl+y",
	"]": "ctrl+]",
	"[": "ctrl+[",
	"F": "ctrl+shift+]",
	"B": "ctrl+shift+[",
	"V": "ctrl+shift+h",
	"a": "ctrl+a",
	"G": "ctrl+shift+g",
}

func (m *model) handleNormalKey(key string) tea.Cmd {
	m.successMessage = ""
	m.errorMessage = ""

	// A drag in progress owns the canvas until release; only Esc gets through.
	if m.dispatcher.Busy() {
		if key == "esc" || key == "escape" {
			m.dispatcher.Key(key)
		}
		return nil
	}

	if m.panMode && m.handlePan(key, m.getPanSpeed(key)) {
		return nil
	}

	switch key {
	case "q":
		if m.config.Confirmations {
			m.confirm(ConfirmQuit)
			return nil
		}
		return tea.Quit
	case "?":
		m.help = true
		m.helpScroll = 0
	case "z":
		m.panMode = !m.panMode
	case "{":
		m.engine.CycleDocument(-1)
	case "}":
		m.engine.CycleDocument(1)
	case "N":
		doc := m.engine.CreateDocument("")
		m.successMessage = "Created " + doc.Name
	case "D":
		if doc := m.engine.ActiveDocument(); doc != nil {
			dup := m.engine.DuplicateDocument(doc.ID)
			m.successMessage = "Created " + dup.Name
		}
	case "R":
		if doc := m.engine.ActiveDocument(); doc != nil {
			m.mode = ModeRename
			m.renameText = doc.Name
		}
	case "X":
		m.confirmOr(ConfirmDeleteCanvas)
	case "C":
		m.confirmOr(ConfirmClearCanvas)
	case "S":
		if err := m.exportPNG(); err != nil {
			if errors.Is(err, render.ErrEmpty) {
				m.errorMessage = "Nothing to export"
			} else {
				m.errorMessage = err.Error()
			}
		}
	case "P":
		m.pasteText()
	case "e", "enter":
		if !m.startEditing() {
			m.errorMessage = "Select one text or note to edit"
		}
	case "+", "=":
		m.zoomAtCenter(zoomStep)
	case "-":
		m.zoomAtCenter(1 / zoomStep)
	case "0":
		m.engine.ResetView()
	case "g":
		m.toggleGrid(func(g *store.GridSettings) { g.Enabled = !g.Enabled })
	case "s":
		m.toggleGrid(func(g *store.GridSettings) { g.Snap = !g.Snap })
	default:
		if arrange, ok := arrangeKeys[key]; ok {
			arrange(m.engine)
			return nil
		}
		if alias, ok := keyAliases[key]; ok {
			key = alias
		}
		m.dispatcher.Key(key)
	}
	return nil
}

func (m *model) toggleGrid(fn func(*store.GridSettings)) {
	g := m.engine.Grid()
	fn(&g)
	if err := m.engine.SetGrid(g); err != nil {
		m.errorMessage = err.Error()
	}
}

func (m *model) confirm(action ConfirmAction) {
	m.mode = ModeConfirm
	m.confirmAction = action
}

// confirmOr asks first when confirmations are on and runs action directly
// otherwise.
func (m *model) confirmOr(action ConfirmAction) {
	if m.config.Confirmations {
		m.confirm(action)
		return
	}
	m.runConfirmed(action)
}

func (m *model) handleConfirmKey(key string) tea.Cmd {
	switch key {
	case "y", "Y":
		m.mode = ModeNormal
		if m.confirmAction == ConfirmQuit {
			return tea.Quit
		}
		m.runConfirmed(m.confirmAction)
	case "n", "N", "esc", "escape":
		m.mode = ModeNormal
	}
	return nil
}

func (m *model) runConfirmed(action ConfirmAction) {
	doc := m.engine.ActiveDocument()
	if doc == nil {
		return
	}
	switch action {
	case ConfirmDeleteCanvas:
		m.engine.DeleteDocument(doc.ID)
		if m.engine.ActiveDocument() == nil {
			m.engine.CreateDocument("")
		}
		m.successMessage = "Deleted " + doc.Name
	case ConfirmClearCanvas:
		if m.engine.ClearDocument() {
			m.successMessage = "Cleared " + doc.Name
		}
	}
}

// pasteText drops the text on the system clipboard onto the middle of the
// view as a text element.
func (m *model) pasteText() {
	text, err := clipboard.ReadText()
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	if text == "" {
		m.errorMessage = "Clipboard has no text"
		return
	}
	w, h := m.surfaceSize()
	at := m.engine.ScreenToCanvas(float64(w)/2, float64(h)/2, true)
	el := element.NewText(m.engine.NewElementID(), at, m.engine.Settings().DefaultStyle, m.engine.Now())
	el.SetContent(text)
	if m.engine.AddElement(el) {
		m.engine.Select(el.ID)
	}
}

// startEditing opens the text of the single selected text or note.
func (m *model) startEditing() bool {
	sel := m.engine.Selection()
	if len(sel) != 1 {
		return false
	}
	el, ok := m.engine.Element(sel[0])
	if !ok || el.Locked {
		return false
	}
	text, ok := el.Content()
	if !ok {
		return false
	}
	m.mode = ModeEditing
	m.editID = el.ID
	m.editText = text
	m.editCursorPos = len([]rune(text))
	return true
}

func (m *model) handleEditKey(msg tea.KeyMsg) {
	runes := []rune(m.editText)
	switch msg.String() {
	case "esc", "escape":
		m.mode = ModeNormal
	case "ctrl+s":
		text := m.editText
		m.engine.ApplyPatch(m.editID, store.Patch{Text: &text})
		m.mode = ModeNormal
	case "enter":
		m.insertEditRunes([]rune{'\n'})
	case "backspace":
		if m.editCursorPos > 0 {
			m.editText = string(append(runes[:m.editCursorPos-1], runes[m.editCursorPos:]...))
			m.editCursorPos--
		}
	case "delete":
		if m.editCursorPos < len(runes) {
			m.editText = string(append(runes[:m.editCursorPos], runes[m.editCursorPos+1:]...))
		}
	case "left":
		if m.editCursorPos > 0 {
			m.editCursorPos--
		}
	case "right":
		if m.editCursorPos < len(runes) {
			m.editCursorPos++
		}
	case "home":
		m.editCursorPos = 0
	case "end":
		m.editCursorPos = len(runes)
	default:
		switch msg.Type {
		case tea.KeySpace:
			m.insertEditRunes([]rune{' '})
		case tea.KeyRunes:
			m.insertEditRunes(msg.Runes)
		}
	}
}

func (m *model) insertEditRunes(r []rune) {
	runes := []rune(m.editText)
	out := make([]rune, 0, len(runes)+len(r))
	out = append(out, runes[:m.editCursorPos]...)
	out = append(out, r...)
	out = append(out, runes[m.editCursorPos:]...)
	m.editText = string(out)
	m.editCursorPos += len(r)
}

func (m *model) handleRenameKey(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc", "escape":
		m.mode = ModeNormal
	case "enter":
		m.mode = ModeNormal
		doc := m.engine.ActiveDocument()
		if doc != nil && m.engine.RenameDocument(doc.ID, m.renameText) {
			m.successMessage = fmt.Sprintf("Renamed to %s", m.renameText)
		}
	case "backspace":
		if r := []rune(m.renameText); len(r) > 0 {
			m.renameText = string(r[:len(r)-1])
		}
	default:
		switch msg.Type {
		case tea.KeySpace:
			m.renameText += " "
		case tea.KeyRunes:
			m.renameText += string(msg.Runes)
		}
	}
}

func (m *model) handleHelpKey(key string) {
	switch key {
	case "esc", "escape", "q", "?":
		m.help = false
		m.helpScroll = 0
	case "j", "down":
		if m.helpScroll < len(helpLines)-1 {
			m.helpScroll++
		}
	case "k", "up":
		if m.helpScroll > 0 {
			m.helpScroll--
		}
	}
}

// placing reports whether t drops an element whose text is edited next.
func placing(t store.Tool) bool {
	return t == store.ToolText || t == store.ToolNote
}
