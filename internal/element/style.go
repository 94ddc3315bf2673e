package element

type StrokeStyle string

const (
	StrokeSolid  StrokeStyle = "solid"
	StrokeDashed StrokeStyle = "dashed"
	StrokeDotted StrokeStyle = "dotted"
)

type TextAlign string

const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

// Transparent is the fill colour that disables filling.
const Transparent = "transparent"

// Style is the paint configuration shared by every element kind.
type Style struct {
	StrokeColor string      `json:"strokeColor" yaml:"stroke_color" validate:"required"`
	FillColor   string      `json:"fillColor" yaml:"fill_color" validate:"required"`
	StrokeWidth float64     `json:"strokeWidth" yaml:"stroke_width" validate:"gte=0,lte=100"`
	StrokeStyle StrokeStyle `json:"strokeStyle" yaml:"stroke_style" validate:"oneof=solid dashed dotted"`
	Opacity     float64     `json:"opacity" yaml:"opacity" validate:"gte=0,lte=1"`
	FontSize    float64     `json:"fontSize,omitempty" yaml:"font_size,omitempty" validate:"gte=0"`
	FontFamily  string      `json:"fontFamily,omitempty" yaml:"font_family,omitempty"`
}

// Default font settings for text and note elements.
const (
	DefaultFontSize   = 20.0
	DefaultNoteFont   = 16.0
	DefaultFontFamily = "sans-serif"
	NoteFillColor     = "#fef08a"
	NoteStrokeColor   = "#eab308"
)

func DefaultStyle() Style {
	return Style{
		StrokeColor: "#1e1e1e",
		FillColor:   Transparent,
		StrokeWidth: 2,
		StrokeStyle: StrokeSolid,
		Opacity:     1,
	}
}

// HasFill reports whether the style fills closed shapes.
func (s Style) HasFill() bool {
	return s.FillColor != "" && s.FillColor != Transparent
}

// Dash returns the dash pattern for the stroke style scaled by width, or nil
// for a solid stroke.
func (s Style) Dash() []float64 {
	w := s.StrokeWidth
	if w <= 0 {
		w = 1
	}
	switch s.StrokeStyle {
	case StrokeDashed:
		return []float64{4 * w, 3 * w}
	case StrokeDotted:
		return []float64{w, 2 * w}
	}
	return nil
}
