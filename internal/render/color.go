package render

import (
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"scrawl/internal/element"
)

// Color is an RGBA colour with components in [0, 1].
type Color struct {
	colorful.Color
	A float64
}

// ParseColor reads "#rgb" or "#rrggbb". The empty string and "transparent"
// parse as fully transparent; anything else unreadable is reported.
func ParseColor(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, element.Transparent) {
		return Color{}, true
	}
	c, err := colorful.Hex(strings.ToLower(s))
	if err != nil {
		return Color{}, false
	}
	return Color{Color: c, A: 1}, true
}

// colorOr parses s, falling back to def when s is unreadable.
func colorOr(s string, def Color) Color {
	if c, ok := ParseColor(s); ok {
		return c
	}
	return def
}

// Fade multiplies the alpha by opacity clamped to [0, 1].
func (c Color) Fade(opacity float64) Color {
	c.A *= min(max(opacity, 0), 1)
	return c
}

// Darken blends the colour toward black by t.
func (c Color) Darken(t float64) Color {
	c.Color = c.BlendRgb(colorful.Color{}, t)
	return c
}

func (c Color) apply(s Surface) {
	s.SetRGBA(c.R, c.G, c.B, c.A)
}

var (
	black = Color{A: 1}
	white = Color{Color: colorful.Color{R: 1, G: 1, B: 1}, A: 1}
)
