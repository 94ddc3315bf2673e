package store

import (
	"slices"

	"scrawl/internal/element"
	"scrawl/internal/geom"
)

// NudgeStep and NudgeStepLarge are the arrow-key offsets, the latter with a
// modifier held.
const (
	NudgeStep      = 1.0
	NudgeStepLarge = 10.0
)

// AddElements appends elements on top of the z-order of the active document.
func (e *Engine) AddElements(els ...element.Element) bool {
	if len(els) == 0 {
		return false
	}
	return e.mutate(func(doc *Document) bool {
		for _, el := range els {
			doc.Elements = append(doc.Elements, el.Clone())
		}
		return true
	})
}

func (e *Engine) AddElement(el element.Element) bool {
	return e.AddElements(el)
}

// NewElementID returns a fresh id for an element built outside the engine.
func (e *Engine) NewElementID() string {
	return e.newID()
}

// UpdateElements applies fn to every listed element of the active document.
// Unknown ids are skipped.
func (e *Engine) UpdateElements(ids []string, fn func(el *element.Element)) bool {
	return e.mutate(func(doc *Document) bool {
		changed := false
		for _, id := range ids {
			if el := doc.Element(id); el != nil {
				fn(el)
				el.Touch(e.now())
				changed = true
			}
		}
		return changed
	})
}

func (e *Engine) UpdateElement(id string, fn func(el *element.Element)) bool {
	return e.UpdateElements([]string{id}, fn)
}

// Patch is a partial element update; nil fields are left unchanged.
type Patch struct {
	X        *float64
	Y        *float64
	Width    *float64
	Height   *float64
	Rotation *float64
	Style    *element.Style
	Locked   *bool
	Visible  *bool
	Text     *string
}

// Apply writes the non-nil fields of p into el. Size changes go through
// SetBounds so line and path points follow.
func (p Patch) Apply(el *element.Element) {
	box := el.Bounds()
	resized := false
	if p.X != nil {
		box.X, resized = *p.X, true
	}
	if p.Y != nil {
		box.Y, resized = *p.Y, true
	}
	if p.Width != nil {
		box.Width, resized = max(*p.Width, 0), true
	}
	if p.Height != nil {
		box.Height, resized = max(*p.Height, 0), true
	}
	if resized {
		el.SetBounds(box)
	}
	if p.Rotation != nil {
		el.Rotation = *p.Rotation
	}
	if p.Style != nil {
		el.Style = *p.Style
	}
	if p.Locked != nil {
		el.Locked = *p.Locked
	}
	if p.Visible != nil {
		el.Visible = *p.Visible
	}
	if p.Text != nil {
		el.SetContent(*p.Text)
	}
}

func (e *Engine) ApplyPatch(id string, p Patch) bool {
	return e.UpdateElement(id, p.Apply)
}

// DeleteElements removes the listed elements. Selection entries and group
// memberships naming them are pruned.
func (e *Engine) DeleteElements(ids ...string) bool {
	if len(ids) == 0 {
		return false
	}
	return e.mutate(func(doc *Document) bool {
		n := len(doc.Elements)
		doc.Elements = slices.DeleteFunc(doc.Elements, func(el element.Element) bool {
			return slices.Contains(ids, el.ID)
		})
		return len(doc.Elements) != n
	})
}

// DeleteSelected removes the selected elements.
func (e *Engine) DeleteSelected() bool {
	doc := e.ActiveDocument()
	if doc == nil {
		return false
	}
	return e.DeleteElements(slices.Clone(doc.SelectedIDs)...)
}

// ClearDocument removes every element of the active document.
func (e *Engine) ClearDocument() bool {
	return e.mutate(func(doc *Document) bool {
		if len(doc.Elements) == 0 {
			return false
		}
		doc.Elements = []element.Element{}
		return true
	})
}

// CohesiveIDs expands ids with the members of every group sharing an element
// with them.
func (e *Engine) CohesiveIDs(ids []string) []string {
	doc := e.ActiveDocument()
	if doc == nil {
		return nil
	}
	return element.Cohesive(ids, doc.Groups)
}

// MoveElements translates the listed elements and their group mates by
// (dx, dy). Locked elements stay put.
func (e *Engine) MoveElements(ids []string, dx, dy float64) bool {
	if dx == 0 && dy == 0 {
		return false
	}
	return e.mutate(func(doc *Document) bool {
		moved := false
		for _, id := range element.Cohesive(ids, doc.Groups) {
			el := doc.Element(id)
			if el == nil || el.Locked {
				continue
			}
			el.Translate(dx, dy)
			el.Touch(e.now())
			moved = true
		}
		return moved
	})
}

// Nudge moves the selection by one step, or a large step with the modifier.
func (e *Engine) Nudge(dx, dy int, large bool) bool {
	doc := e.ActiveDocument()
	if doc == nil || len(doc.SelectedIDs) == 0 {
		return false
	}
	step := NudgeStep
	if large {
		step = NudgeStepLarge
	}
	return e.MoveElements(doc.SelectedIDs, float64(dx)*step, float64(dy)*step)
}

// ResizeElement sets the unrotated box of an element.
func (e *Engine) ResizeElement(id string, box geom.Rect) bool {
	return e.mutate(func(doc *Document) bool {
		el := doc.Element(id)
		if el == nil || el.Locked || el.Bounds() == box {
			return false
		}
		el.SetBounds(box)
		el.Touch(e.now())
		return true
	})
}

// RotateElement sets the rotation of an element in degrees.
func (e *Engine) RotateElement(id string, degrees float64) bool {
	return e.mutate(func(doc *Document) bool {
		el := doc.Element(id)
		if el == nil || el.Locked || el.Rotation == degrees {
			return false
		}
		el.Rotation = degrees
		el.Touch(e.now())
		return true
	})
}

// ToggleLock locks every selected element unless all are locked already, in
// which case it unlocks them.
func (e *Engine) ToggleLock() bool {
	return e.toggleSelected(
		func(el *element.Element) bool { return el.Locked },
		func(el *element.Element, v bool) { el.Locked = v },
	)
}

// ToggleVisibility hides every selected element unless all are hidden.
func (e *Engine) ToggleVisibility() bool {
	return e.toggleSelected(
		func(el *element.Element) bool { return !el.Visible },
		func(el *element.Element, v bool) { el.Visible = !v },
	)
}

func (e *Engine) toggleSelected(get func(*element.Element) bool, set func(*element.Element, bool)) bool {
	return e.mutate(func(doc *Document) bool {
		sel := doc.SelectedElements()
		if len(sel) == 0 {
			return false
		}
		all := true
		for _, el := range sel {
			all = all && get(el)
		}
		for _, el := range sel {
			set(el, !all)
			el.Touch(e.now())
		}
		return true
	})
}

// ElementAt returns the topmost visible element of the active document under
// the document-space point p.
func (e *Engine) ElementAt(p geom.Point) (*element.Element, bool) {
	doc := e.ActiveDocument()
	if doc == nil {
		return nil, false
	}
	for i := len(doc.Elements) - 1; i >= 0; i-- {
		el := &doc.Elements[i]
		if el.Visible && el.Contains(p) {
			return el, true
		}
	}
	return nil, false
}

// ElementsIn returns the ids of visible elements whose bounding box overlaps
// r, in z-order.
func (e *Engine) ElementsIn(r geom.Rect) []string {
	doc := e.ActiveDocument()
	if doc == nil {
		return nil
	}
	var ids []string
	for i := range doc.Elements {
		el := &doc.Elements[i]
		if el.Visible && el.Bounds().Intersects(r) {
			ids = append(ids, el.ID)
		}
	}
	return ids
}
