package store

import (
	"encoding/json"

	"go.uber.org/zap"

	"scrawl/internal/element"
)

// Copy writes the selected elements to the clipboard.
func (e *Engine) Copy() bool {
	doc := e.ActiveDocument()
	if doc == nil {
		return false
	}
	sel := doc.SelectedElements()
	if len(sel) == 0 {
		return false
	}
	els := make([]element.Element, len(sel))
	for i, el := range sel {
		els[i] = el.Clone()
	}
	data, err := json.Marshal(els)
	if err != nil {
		e.logger.Error("Failed to encode clipboard", zap.Error(err))
		return false
	}
	if err := e.clipboard.Write(ClipboardKey, data); err != nil {
		e.logger.Error("Failed to write clipboard", zap.Error(err))
		return false
	}
	return true
}

// Cut copies the selection and deletes it.
func (e *Engine) Cut() bool {
	if !e.Copy() {
		return false
	}
	return e.DeleteSelected()
}

// Paste inserts the clipboard elements under fresh ids, offset so they do
// not cover the originals, and selects them.
func (e *Engine) Paste() bool {
	data, err := e.clipboard.Read(ClipboardKey)
	if err != nil {
		e.logger.Error("Failed to read clipboard", zap.Error(err))
		return false
	}
	if data == nil {
		return false
	}
	var els []element.Element
	if err := json.Unmarshal(data, &els); err != nil {
		e.logger.Warn("Ignoring clipboard contents", zap.Error(err))
		return false
	}
	return e.insertCopies(els)
}

// DuplicateSelection is Copy followed by Paste without the clipboard.
func (e *Engine) DuplicateSelection() bool {
	doc := e.ActiveDocument()
	if doc == nil {
		return false
	}
	sel := doc.SelectedElements()
	els := make([]element.Element, len(sel))
	for i, el := range sel {
		els[i] = el.Clone()
	}
	return e.insertCopies(els)
}

func (e *Engine) insertCopies(els []element.Element) bool {
	if len(els) == 0 {
		return false
	}
	ids := make([]string, len(els))
	for i := range els {
		els[i].ID = e.newID()
		els[i].Translate(PasteOffset, PasteOffset)
		els[i].CreatedAt = e.now().UnixMilli()
		els[i].Touch(e.now())
		ids[i] = els[i].ID
	}
	if !e.AddElements(els...) {
		return false
	}
	e.Select(ids...)
	return true
}
