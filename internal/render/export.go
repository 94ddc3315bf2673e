package render

import (
	"errors"
	"math"

	"github.com/fogleman/gg"

	"scrawl/internal/element"
	"scrawl/internal/geom"
	"scrawl/internal/store"
)

// ErrEmpty is returned when a document has nothing visible to export.
var ErrEmpty = errors.New("nothing to export")

// MaxExportSide caps either side of an exported image, in pixels.
const MaxExportSide = 8192

// Extent returns the envelope of the visible elements of doc, accounting for
// rotation.
func Extent(doc *store.Document) (geom.Rect, bool) {
	var pts []geom.Point
	for i := range doc.Elements {
		el := &doc.Elements[i]
		if !el.Visible {
			continue
		}
		pts = append(pts, corners(el)...)
	}
	if len(pts) == 0 {
		return geom.Rect{}, false
	}
	return geom.Envelope(pts), true
}

func corners(el *element.Element) []geom.Point {
	b := el.Bounds()
	local := []geom.Point{
		{X: b.X, Y: b.Y}, {X: b.MaxX(), Y: b.Y},
		{X: b.MaxX(), Y: b.MaxY()}, {X: b.X, Y: b.MaxY()},
	}
	out := make([]geom.Point, len(local))
	for i, p := range local {
		out[i] = el.ToGlobal(p)
	}
	return out
}

// Image renders doc onto a new context fitted to its visible elements plus
// padding. The scale is 1 unless that would exceed MaxExportSide on either
// side, in which case the whole drawing is scaled down to fit. Selection
// decorations and the grid are left out.
func (r *Renderer) Image(doc *store.Document, settings store.Settings, padding float64) (*gg.Context, error) {
	ext, ok := Extent(doc)
	if !ok {
		return nil, ErrEmpty
	}
	ext = ext.Inset(-padding)
	scale := min(1, MaxExportSide/ext.Width, MaxExportSide/ext.Height)
	w := min(int(math.Ceil(ext.Width*scale)), MaxExportSide)
	h := min(int(math.Ceil(ext.Height*scale)), MaxExportSide)

	view := *doc
	view.View = store.Viewport{Zoom: scale, PanX: -ext.X * scale, PanY: -ext.Y * scale}
	view.Grid.Enabled = false

	dc := gg.NewContext(max(w, 1), max(h, 1))
	r.Render(dc, Frame{Document: &view, Settings: settings})
	return dc, nil
}
