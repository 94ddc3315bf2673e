package element

import (
	"time"

	"scrawl/internal/geom"
)

// Default sizes of the single-click placeholders.
const (
	TextWidth  = 200.0
	TextHeight = 40.0
	NoteSize   = 200.0
)

func base(id string, r geom.Rect, style Style, now time.Time) Element {
	ts := now.UnixMilli()
	return Element{
		ID:        id,
		X:         r.X,
		Y:         r.Y,
		Width:     r.Width,
		Height:    r.Height,
		Style:     style,
		Visible:   true,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

func NewRectangle(id string, r geom.Rect, style Style, now time.Time) Element {
	e := base(id, r, style, now)
	e.Shape = &Rectangle{}
	return e
}

func NewEllipse(id string, r geom.Rect, style Style, now time.Time) Element {
	e := base(id, r, style, now)
	e.Shape = &Ellipse{}
	return e
}

// NewLine creates a line through pts with an arrowhead at the end.
func NewLine(id string, pts []geom.Point, style Style, now time.Time) Element {
	e := base(id, geom.Envelope(pts), style, now)
	e.Shape = &Line{Points: append([]geom.Point(nil), pts...), EndArrow: true}
	return e
}

func NewPath(id string, pts []geom.Point, style Style, now time.Time) Element {
	e := base(id, geom.Envelope(pts), style, now)
	e.Shape = &Path{Points: append([]geom.Point(nil), pts...)}
	return e
}

// NewText creates the placeholder text block placed by a single click.
func NewText(id string, at geom.Point, style Style, now time.Time) Element {
	e := base(id, geom.R(at.X, at.Y, TextWidth, TextHeight), style, now)
	e.Shape = &Text{
		Text:       "Text",
		FontSize:   fontSizeOr(style, DefaultFontSize),
		FontFamily: fontFamilyOr(style),
		Align:      AlignLeft,
	}
	return e
}

// NewNote creates a sticky note with the sticky styling applied over style.
func NewNote(id string, at geom.Point, style Style, now time.Time) Element {
	style.FillColor = NoteFillColor
	style.StrokeColor = NoteStrokeColor
	style.StrokeStyle = StrokeSolid
	e := base(id, geom.R(at.X, at.Y, NoteSize, NoteSize), style, now)
	e.Shape = &Note{
		Text:       "Note",
		FontSize:   fontSizeOr(style, DefaultNoteFont),
		FontFamily: fontFamilyOr(style),
	}
	return e
}

func fontSizeOr(s Style, def float64) float64 {
	if s.FontSize > 0 {
		return s.FontSize
	}
	return def
}

func fontFamilyOr(s Style) string {
	if s.FontFamily != "" {
		return s.FontFamily
	}
	return DefaultFontFamily
}
