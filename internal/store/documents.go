package store

import (
	"fmt"

	"scrawl/internal/element"
)

// DefaultZoom and the zoom clamp of the view transform.
const (
	DefaultZoom = 1.0
	MinZoom     = 0.1
	MaxZoom     = 5.0
)

// CreateDocument adds an empty document and makes it active. An empty name
// becomes "Canvas N".
func (e *Engine) CreateDocument(name string) *Document {
	if name == "" {
		name = fmt.Sprintf("Canvas %d", len(e.docs)+1)
	}
	now := e.now().UnixMilli()
	doc := &Document{
		ID:          e.newID(),
		Name:        name,
		Elements:    []element.Element{},
		SelectedIDs: []string{},
		Groups:      []element.Group{},
		Tool:        ToolSelect,
		View:        Viewport{Zoom: DefaultZoom},
		Grid:        e.settings.Grid,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	e.docs = append(e.docs, doc)
	e.activate(doc.ID)
	e.logger.Debug("Created document")
	e.persistDocuments()
	e.notify(ChangeDocuments)
	return doc
}

// DeleteDocument removes a document and its history. When it was active the
// first remaining document becomes active.
func (e *Engine) DeleteDocument(id string) bool {
	idx := -1
	for i, d := range e.docs {
		if d.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	e.docs = append(e.docs[:idx], e.docs[idx+1:]...)
	e.history.Forget(id)
	if e.activeID == id {
		next := ""
		if len(e.docs) > 0 {
			next = e.docs[0].ID
		}
		e.activate(next)
	}
	e.persistDocuments()
	e.notify(ChangeDocuments)
	return true
}

// ActivateDocument switches the active document. Transient view state of the
// previous document is dropped.
func (e *Engine) ActivateDocument(id string) bool {
	if e.document(id) == nil {
		return false
	}
	if id == e.activeID {
		return true
	}
	e.activate(id)
	e.notify(ChangeDocuments)
	return true
}

func (e *Engine) activate(id string) {
	e.activeID = id
	e.settings.ActiveDocumentID = id
	e.view = Transient{}
	e.gesture = gesture{}
	e.persistSettings()
}

func (e *Engine) RenameDocument(id, name string) bool {
	doc := e.document(id)
	if doc == nil || name == "" || doc.Name == name {
		return false
	}
	doc.Name = name
	doc.UpdatedAt = e.now().UnixMilli()
	e.persistDocuments()
	e.notify(ChangeDocuments)
	return true
}

// DuplicateDocument deep-copies a document under fresh element, group and
// document ids and activates the copy. History is not copied.
func (e *Engine) DuplicateDocument(id string) *Document {
	src := e.document(id)
	if src == nil {
		return nil
	}
	dup := src.clone()
	dup.ID = e.newID()
	dup.Name = src.Name + " (copy)"
	now := e.now().UnixMilli()
	dup.CreatedAt, dup.UpdatedAt = now, now

	ids := make(map[string]string, len(dup.Elements))
	for i := range dup.Elements {
		fresh := e.newID()
		ids[dup.Elements[i].ID] = fresh
		dup.Elements[i].ID = fresh
	}
	for i := range dup.SelectedIDs {
		dup.SelectedIDs[i] = ids[dup.SelectedIDs[i]]
	}
	for i := range dup.Groups {
		dup.Groups[i].ID = e.newID()
		for j, m := range dup.Groups[i].ElementIDs {
			dup.Groups[i].ElementIDs[j] = ids[m]
		}
	}
	dup.pruneReferences()

	e.docs = append(e.docs, dup)
	e.activate(dup.ID)
	e.persistDocuments()
	e.notify(ChangeDocuments)
	return dup
}

// CycleDocument activates the document step positions away from the active
// one, wrapping around.
func (e *Engine) CycleDocument(step int) bool {
	n := len(e.docs)
	if n < 2 {
		return false
	}
	cur := 0
	for i, d := range e.docs {
		if d.ID == e.activeID {
			cur = i
			break
		}
	}
	next := ((cur+step)%n + n) % n
	return e.ActivateDocument(e.docs[next].ID)
}
