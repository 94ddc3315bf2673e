package store

import "slices"

// ChangeKind says which slice of engine state a notification is about.
type ChangeKind int

const (
	ChangeDocuments ChangeKind = iota
	ChangeElements
	ChangeSelection
	ChangeView
	ChangeTool
	ChangeSettings
	ChangeTransient
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeDocuments:
		return "documents"
	case ChangeElements:
		return "elements"
	case ChangeSelection:
		return "selection"
	case ChangeView:
		return "view"
	case ChangeTool:
		return "tool"
	case ChangeSettings:
		return "settings"
	case ChangeTransient:
		return "transient"
	}
	return "unknown"
}

// Change is delivered to subscribers after every state change.
type Change struct {
	Kind       ChangeKind
	DocumentID string
}

// Subscribe registers fn for change notifications and returns a function
// that removes it.
func (e *Engine) Subscribe(fn func(Change)) (unsubscribe func()) {
	id := e.nextListener
	e.nextListener++
	e.listeners[id] = fn
	return func() { delete(e.listeners, id) }
}

func (e *Engine) notify(kind ChangeKind) {
	c := Change{Kind: kind, DocumentID: e.activeID}
	for _, id := range e.listenerOrder() {
		if fn, ok := e.listeners[id]; ok {
			fn(c)
		}
	}
}

func (e *Engine) listenerOrder() []int {
	ids := make([]int, 0, len(e.listeners))
	for id := range e.listeners {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}
