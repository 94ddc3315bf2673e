package store

import (
	"slices"

	"scrawl/internal/element"
)

// BringToFront moves the listed elements to the top of the z-order, keeping
// their relative order.
func (e *Engine) BringToFront(ids ...string) bool {
	return e.reorder(func(els []element.Element) []element.Element {
		rest, picked := partition(els, ids)
		return append(rest, picked...)
	})
}

// SendToBack moves the listed elements to the bottom of the z-order.
func (e *Engine) SendToBack(ids ...string) bool {
	return e.reorder(func(els []element.Element) []element.Element {
		rest, picked := partition(els, ids)
		return append(picked, rest...)
	})
}

// BringForward steps each listed element one position up. An element never
// jumps over another listed element.
func (e *Engine) BringForward(ids ...string) bool {
	return e.reorder(func(els []element.Element) []element.Element {
		for i := len(els) - 2; i >= 0; i-- {
			if slices.Contains(ids, els[i].ID) && !slices.Contains(ids, els[i+1].ID) {
				els[i], els[i+1] = els[i+1], els[i]
			}
		}
		return els
	})
}

// SendBackward steps each listed element one position down.
func (e *Engine) SendBackward(ids ...string) bool {
	return e.reorder(func(els []element.Element) []element.Element {
		for i := 1; i < len(els); i++ {
			if slices.Contains(ids, els[i].ID) && !slices.Contains(ids, els[i-1].ID) {
				els[i], els[i-1] = els[i-1], els[i]
			}
		}
		return els
	})
}

// MoveToIndex moves one element to index, clamped to the valid range.
func (e *Engine) MoveToIndex(id string, index int) bool {
	return e.reorder(func(els []element.Element) []element.Element {
		from := slices.IndexFunc(els, func(el element.Element) bool { return el.ID == id })
		if from < 0 {
			return els
		}
		el := els[from]
		els = slices.Delete(els, from, from+1)
		index = min(max(index, 0), len(els))
		return slices.Insert(els, index, el)
	})
}

func (e *Engine) reorder(fn func([]element.Element) []element.Element) bool {
	return e.mutate(func(doc *Document) bool {
		before := make([]string, len(doc.Elements))
		for i := range doc.Elements {
			before[i] = doc.Elements[i].ID
		}
		doc.Elements = fn(doc.Elements)
		for i := range doc.Elements {
			if doc.Elements[i].ID != before[i] {
				return true
			}
		}
		return false
	})
}

func partition(els []element.Element, ids []string) (rest, picked []element.Element) {
	rest = make([]element.Element, 0, len(els))
	for _, el := range els {
		if slices.Contains(ids, el.ID) {
			picked = append(picked, el)
		} else {
			rest = append(rest, el)
		}
	}
	return rest, picked
}
