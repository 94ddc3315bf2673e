package store

import "slices"

// Select replaces the selection with ids. Unknown ids are ignored.
func (e *Engine) Select(ids ...string) {
	e.setSelection(func(doc *Document) []string {
		out := make([]string, 0, len(ids))
		for _, id := range ids {
			if doc.index(id) >= 0 && !slices.Contains(out, id) {
				out = append(out, id)
			}
		}
		return out
	})
}

func (e *Engine) AddToSelection(ids ...string) {
	e.setSelection(func(doc *Document) []string {
		out := slices.Clone(doc.SelectedIDs)
		for _, id := range ids {
			if doc.index(id) >= 0 && !slices.Contains(out, id) {
				out = append(out, id)
			}
		}
		return out
	})
}

func (e *Engine) RemoveFromSelection(ids ...string) {
	e.setSelection(func(doc *Document) []string {
		return slices.DeleteFunc(slices.Clone(doc.SelectedIDs), func(id string) bool {
			return slices.Contains(ids, id)
		})
	})
}

func (e *Engine) ClearSelection() {
	e.setSelection(func(*Document) []string { return []string{} })
}

// SelectAll selects every visible element.
func (e *Engine) SelectAll() {
	e.setSelection(func(doc *Document) []string {
		out := make([]string, 0, len(doc.Elements))
		for i := range doc.Elements {
			if doc.Elements[i].Visible {
				out = append(out, doc.Elements[i].ID)
			}
		}
		return out
	})
}

// Selection returns the selected ids of the active document.
func (e *Engine) Selection() []string {
	doc := e.ActiveDocument()
	if doc == nil {
		return nil
	}
	return slices.Clone(doc.SelectedIDs)
}

// setSelection never touches history.
func (e *Engine) setSelection(fn func(doc *Document) []string) {
	doc := e.ActiveDocument()
	if doc == nil {
		return
	}
	next := fn(doc)
	if slices.Equal(next, doc.SelectedIDs) {
		return
	}
	doc.SelectedIDs = next
	e.persistDocuments()
	e.notify(ChangeSelection)
}
