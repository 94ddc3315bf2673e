package element

import (
	"encoding/json"
	"fmt"

	"scrawl/internal/geom"
)

// wireElement is the flat persisted form: shared fields plus the union of
// variant fields, discriminated by Type.
type wireElement struct {
	ID        string  `json:"id"`
	Type      Kind    `json:"type"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	Rotation  float64 `json:"rotation"`
	Style     Style   `json:"style"`
	IsLocked  bool    `json:"isLocked"`
	IsVisible *bool   `json:"isVisible,omitempty"`
	CreatedAt int64   `json:"createdAt"`
	UpdatedAt int64   `json:"updatedAt"`

	CornerRadius float64      `json:"cornerRadius,omitempty"`
	Points       []geom.Point `json:"points,omitempty"`
	StartArrow   bool         `json:"startArrow,omitempty"`
	EndArrow     bool         `json:"endArrow,omitempty"`
	Text         string       `json:"text,omitempty"`
	FontSize     float64      `json:"fontSize,omitempty"`
	FontFamily   string       `json:"fontFamily,omitempty"`
	TextAlign    TextAlign    `json:"textAlign,omitempty"`
}

func (e Element) MarshalJSON() ([]byte, error) {
	visible := e.Visible
	w := wireElement{
		ID:        e.ID,
		Type:      e.Kind(),
		X:         e.X,
		Y:         e.Y,
		Width:     e.Width,
		Height:    e.Height,
		Rotation:  e.Rotation,
		Style:     e.Style,
		IsLocked:  e.Locked,
		IsVisible: &visible,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
	switch s := e.Shape.(type) {
	case *Rectangle:
		w.CornerRadius = s.CornerRadius
	case *Ellipse:
	case *Line:
		w.Points, w.StartArrow, w.EndArrow = s.Points, s.StartArrow, s.EndArrow
	case *Path:
		w.Points = s.Points
	case *Text:
		w.Text, w.FontSize, w.FontFamily, w.TextAlign = s.Text, s.FontSize, s.FontFamily, s.Align
	case *Note:
		w.Text, w.FontSize, w.FontFamily = s.Text, s.FontSize, s.FontFamily
	default:
		return nil, fmt.Errorf("element %s: no shape", e.ID)
	}
	return json.Marshal(w)
}

func (e *Element) UnmarshalJSON(data []byte) error {
	var w wireElement
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	var shape Shape
	switch w.Type {
	case KindRectangle:
		shape = &Rectangle{CornerRadius: w.CornerRadius}
	case KindEllipse:
		shape = &Ellipse{}
	case KindLine:
		shape = &Line{Points: w.Points, StartArrow: w.StartArrow, EndArrow: w.EndArrow}
	case KindPath:
		shape = &Path{Points: w.Points}
	case KindText:
		align := w.TextAlign
		if align == "" {
			align = AlignLeft
		}
		shape = &Text{Text: w.Text, FontSize: w.FontSize, FontFamily: w.FontFamily, Align: align}
	case KindNote:
		shape = &Note{Text: w.Text, FontSize: w.FontSize, FontFamily: w.FontFamily}
	default:
		return fmt.Errorf("element %s: unknown type %q", w.ID, w.Type)
	}
	*e = Element{
		ID:        w.ID,
		X:         w.X,
		Y:         w.Y,
		Width:     w.Width,
		Height:    w.Height,
		Rotation:  w.Rotation,
		Style:     w.Style,
		Locked:    w.IsLocked,
		Visible:   w.IsVisible == nil || *w.IsVisible,
		CreatedAt: w.CreatedAt,
		UpdatedAt: w.UpdatedAt,
		Shape:     shape,
	}
	return nil
}
