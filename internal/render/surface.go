// Package render draws documents onto an immediate-mode 2D surface.
package render

import (
	"github.com/fogleman/gg"
	"golang.org/x/image/font"
)

// Surface is the drawing context the renderer paints on. It is the subset of
// *gg.Context the renderer uses, so a gg context can be passed directly.
type Surface interface {
	Width() int
	Height() int

	Push()
	Pop()
	Identity()
	Translate(x, y float64)
	Scale(x, y float64)
	RotateAbout(angle, x, y float64)

	SetRGBA(r, g, b, a float64)
	SetLineWidth(w float64)
	SetDash(dashes ...float64)
	SetFontFace(face font.Face)

	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticTo(x1, y1, x2, y2 float64)
	ClosePath()
	NewSubPath()
	ClearPath()
	DrawLine(x1, y1, x2, y2 float64)
	DrawRectangle(x, y, w, h float64)
	DrawRoundedRectangle(x, y, w, h, r float64)
	DrawEllipse(x, y, rx, ry float64)
	DrawCircle(x, y, r float64)

	Fill()
	FillPreserve()
	Stroke()
	StrokePreserve()
	Clip()
	Clear()

	DrawStringAnchored(s string, x, y, ax, ay float64)
	MeasureString(s string) (w, h float64)
	WordWrap(s string, w float64) []string
	FontHeight() float64
}

var _ Surface = (*gg.Context)(nil)
