// Package history keeps per-document undo/redo stacks of whole element
// snapshots.
package history

import "scrawl/internal/element"

// Snapshot is the undoable content of a document: its elements in z-order
// and the groups over them.
type Snapshot struct {
	Elements []element.Element
	Groups   []element.Group
}

// Clone deep-copies s, normalising nil slices to empty ones.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Elements: element.CloneAll(s.Elements),
		Groups:   make([]element.Group, len(s.Groups)),
	}
	if out.Elements == nil {
		out.Elements = []element.Element{}
	}
	for i, g := range s.Groups {
		out.Groups[i] = g.Clone()
	}
	return out
}

// Limit caps the number of undo snapshots kept per document.
const Limit = 50

type stacks struct {
	past   []Snapshot
	future []Snapshot
}

// Manager owns the stacks of every document, keyed by document id.
type Manager struct {
	docs  map[string]*stacks
	limit int
}

func New() *Manager {
	return &Manager{docs: make(map[string]*stacks), limit: Limit}
}

func (m *Manager) stacksFor(docID string) *stacks {
	s, ok := m.docs[docID]
	if !ok {
		s = &stacks{}
		m.docs[docID] = s
	}
	return s
}

// Save pushes a copy of snap onto the document's past, dropping the oldest
// entry beyond the limit, and clears its future.
func (m *Manager) Save(docID string, snap Snapshot) {
	s := m.stacksFor(docID)
	s.past = append(s.past, snap.Clone())
	if len(s.past) > m.limit {
		s.past = s.past[len(s.past)-m.limit:]
	}
	s.future = nil
}

// Undo pops the last snapshot and pushes current onto the future. ok is
// false when there is nothing to undo.
func (m *Manager) Undo(docID string, current Snapshot) (restored Snapshot, ok bool) {
	s, exists := m.docs[docID]
	if !exists || len(s.past) == 0 {
		return Snapshot{}, false
	}
	last := len(s.past) - 1
	restored = s.past[last]
	s.past = s.past[:last]
	s.future = append(s.future, current.Clone())
	return restored.Clone(), true
}

// Redo is the mirror of Undo.
func (m *Manager) Redo(docID string, current Snapshot) (restored Snapshot, ok bool) {
	s, exists := m.docs[docID]
	if !exists || len(s.future) == 0 {
		return Snapshot{}, false
	}
	last := len(s.future) - 1
	restored = s.future[last]
	s.future = s.future[:last]
	s.past = append(s.past, current.Clone())
	return restored.Clone(), true
}

func (m *Manager) CanUndo(docID string) bool {
	s, ok := m.docs[docID]
	return ok && len(s.past) > 0
}

func (m *Manager) CanRedo(docID string) bool {
	s, ok := m.docs[docID]
	return ok && len(s.future) > 0
}

// Depth returns the sizes of the past and future stacks.
func (m *Manager) Depth(docID string) (past, future int) {
	if s, ok := m.docs[docID]; ok {
		return len(s.past), len(s.future)
	}
	return 0, 0
}

// Forget drops the stacks of a deleted document.
func (m *Manager) Forget(docID string) {
	delete(m.docs, docID)
}
