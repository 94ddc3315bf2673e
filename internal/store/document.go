package store

import (
	"slices"

	"scrawl/internal/element"
	"scrawl/internal/history"
)

// Tool names the active drawing tool of a document.
type Tool string

const (
	ToolSelect    Tool = "select"
	ToolRectangle Tool = "rectangle"
	ToolEllipse   Tool = "ellipse"
	ToolLine      Tool = "line"
	ToolPen       Tool = "pen"
	ToolText      Tool = "text"
	ToolNote      Tool = "note"
)

// Viewport is the pan/zoom transform from document to screen space:
// screen = doc*Zoom + Pan.
type Viewport struct {
	Zoom float64 `json:"zoom"`
	PanX float64 `json:"panX"`
	PanY float64 `json:"panY"`
}

type GridSettings struct {
	Enabled bool    `json:"enabled" yaml:"enabled"`
	Snap    bool    `json:"snap" yaml:"snap"`
	Size    float64 `json:"size" yaml:"size" validate:"gt=0,lte=500"`
}

// Document is one canvas. Elements are in z-order, index 0 at the back.
type Document struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	Elements    []element.Element `json:"elements"`
	SelectedIDs []string          `json:"selectedIds"`
	Groups      []element.Group   `json:"groups"`
	Tool        Tool              `json:"activeTool"`
	View        Viewport          `json:"view"`
	Grid        GridSettings      `json:"grid"`
	CreatedAt   int64             `json:"createdAt"`
	UpdatedAt   int64             `json:"updatedAt"`
}

func (d *Document) index(id string) int {
	for i := range d.Elements {
		if d.Elements[i].ID == id {
			return i
		}
	}
	return -1
}

// Element returns the element with id, or nil.
func (d *Document) Element(id string) *element.Element {
	if i := d.index(id); i >= 0 {
		return &d.Elements[i]
	}
	return nil
}

func (d *Document) IsSelected(id string) bool {
	return slices.Contains(d.SelectedIDs, id)
}

// SelectedElements returns the selected elements in z-order.
func (d *Document) SelectedElements() []*element.Element {
	var out []*element.Element
	for i := range d.Elements {
		if d.IsSelected(d.Elements[i].ID) {
			out = append(out, &d.Elements[i])
		}
	}
	return out
}

// pruneReferences drops selection entries and group members that no longer
// name an element, and groups left with fewer than two members.
func (d *Document) pruneReferences() {
	exists := make(map[string]bool, len(d.Elements))
	for i := range d.Elements {
		exists[d.Elements[i].ID] = true
	}
	d.SelectedIDs = slices.DeleteFunc(d.SelectedIDs, func(id string) bool { return !exists[id] })

	groups := d.Groups[:0]
	for _, g := range d.Groups {
		g.ElementIDs = slices.DeleteFunc(g.ElementIDs, func(id string) bool { return !exists[id] })
		if len(g.ElementIDs) >= 2 {
			groups = append(groups, g)
		}
	}
	d.Groups = groups
}

// snapshot copies the undoable part of the document.
func (d *Document) snapshot() history.Snapshot {
	return history.Snapshot{Elements: d.Elements, Groups: d.Groups}.Clone()
}

func (d *Document) clone() *Document {
	c := *d
	c.Elements = element.CloneAll(d.Elements)
	c.SelectedIDs = slices.Clone(d.SelectedIDs)
	c.Groups = make([]element.Group, len(d.Groups))
	for i, g := range d.Groups {
		c.Groups[i] = g.Clone()
	}
	return &c
}
