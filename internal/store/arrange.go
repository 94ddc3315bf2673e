package store

import (
	"cmp"
	"math"
	"slices"

	"scrawl/internal/element"
	"scrawl/internal/geom"
)

// Alignment names the edge or centre line Align lines elements up on.
type Alignment string

const (
	AlignLeft   Alignment = "left"
	AlignCenter Alignment = "center"
	AlignRight  Alignment = "right"
	AlignTop    Alignment = "top"
	AlignMiddle Alignment = "middle"
	AlignBottom Alignment = "bottom"
)

type Axis string

const (
	Horizontal Axis = "horizontal"
	Vertical   Axis = "vertical"
)

// Align moves every selected element so its edge or centre on the chosen
// axis matches the extreme of the selection's bounding boxes. Sizes are
// preserved. Fewer than two selected elements is a no-op.
func (e *Engine) Align(a Alignment) bool {
	return e.mutate(func(doc *Document) bool {
		sel := doc.SelectedElements()
		if len(sel) < 2 {
			return false
		}
		minX, minY := math.Inf(1), math.Inf(1)
		maxX, maxY := math.Inf(-1), math.Inf(-1)
		for _, el := range sel {
			b := el.Bounds()
			minX, minY = min(minX, b.X), min(minY, b.Y)
			maxX, maxY = max(maxX, b.MaxX()), max(maxY, b.MaxY())
		}
		moved := false
		for _, el := range sel {
			b := el.Bounds()
			var dx, dy float64
			switch a {
			case AlignLeft:
				dx = minX - b.X
			case AlignCenter:
				dx = (minX+maxX)/2 - b.Center().X
			case AlignRight:
				dx = maxX - b.MaxX()
			case AlignTop:
				dy = minY - b.Y
			case AlignMiddle:
				dy = (minY+maxY)/2 - b.Center().Y
			case AlignBottom:
				dy = maxY - b.MaxY()
			default:
				return false
			}
			if dx != 0 || dy != 0 {
				el.Translate(dx, dy)
				el.Touch(e.now())
				moved = true
			}
		}
		return moved
	})
}

// Distribute spaces the selected elements so their centres are evenly
// spread along the axis between the first and last element, which stay
// fixed. Fewer than three selected elements is a no-op.
func (e *Engine) Distribute(axis Axis) bool {
	return e.mutate(func(doc *Document) bool {
		sel := doc.SelectedElements()
		if len(sel) < 3 {
			return false
		}
		center := func(el *element.Element) float64 {
			c := el.Bounds().Center()
			if axis == Vertical {
				return c.Y
			}
			return c.X
		}
		slices.SortStableFunc(sel, func(a, b *element.Element) int {
			return cmp.Compare(center(a), center(b))
		})
		first, last := center(sel[0]), center(sel[len(sel)-1])
		step := (last - first) / float64(len(sel)-1)
		moved := false
		for i, el := range sel[1 : len(sel)-1] {
			d := first + float64(i+1)*step - center(el)
			if math.Abs(d) < geom.Epsilon {
				continue
			}
			if axis == Vertical {
				el.Translate(0, d)
			} else {
				el.Translate(d, 0)
			}
			el.Touch(e.now())
			moved = true
		}
		return moved
	})
}

// Group joins the selected elements into a new group.
func (e *Engine) Group() (element.Group, bool) {
	var g element.Group
	ok := e.mutate(func(doc *Document) bool {
		if len(doc.SelectedIDs) < 2 {
			return false
		}
		g = element.Group{
			ID:         e.newID(),
			ElementIDs: slices.Clone(doc.SelectedIDs),
			CreatedAt:  e.now().UnixMilli(),
		}
		doc.Groups = append(doc.Groups, g)
		return true
	})
	return g, ok
}

// Ungroup dissolves every group containing a selected element.
func (e *Engine) Ungroup() bool {
	return e.mutate(func(doc *Document) bool {
		n := len(doc.Groups)
		doc.Groups = slices.DeleteFunc(doc.Groups, func(g element.Group) bool {
			return slices.ContainsFunc(doc.SelectedIDs, g.Has)
		})
		return len(doc.Groups) != n
	})
}
