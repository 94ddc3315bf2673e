package render

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"scrawl/internal/element"
	"scrawl/internal/geom"
	"scrawl/internal/store"
)

// Decoration sizes, in surface pixels.
const (
	GridMinSpacing = 4.0
	SelectionPad   = 4.0
	ArrowSize      = 12.0
	NotePadding    = 12.0
	NoteFold       = 16.0
	NoteRadius     = 4.0
	LineSpacing    = 1.25
)

// Frame is everything one redraw needs.
type Frame struct {
	Document     *store.Document
	Settings     store.Settings
	Preview      *element.Element
	SelectionBox *geom.Rect
	// Decorations controls selection outlines and handles.
	Decorations bool
}

// FrameOf captures the current state of the engine.
func FrameOf(e *store.Engine) Frame {
	t := e.Transient()
	return Frame{
		Document:     e.ActiveDocument(),
		Settings:     e.Settings(),
		Preview:      t.Preview,
		SelectionBox: t.SelectionBox,
		Decorations:  true,
	}
}

type Renderer struct {
	fonts  *FontCache
	logger *zap.Logger
}

// New creates a renderer. A nil font cache disables text.
func New(fonts *FontCache, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Renderer{fonts: fonts, logger: logger}
}

// painter carries per-frame state through the drawing routines.
type painter struct {
	s     Surface
	fonts *FontCache
	zoom  float64
}

// Render redraws the whole surface: background, grid, elements in z-order,
// the preview, selection decorations and the marquee.
func (r *Renderer) Render(s Surface, f Frame) {
	s.Identity()
	s.SetDash()
	s.SetRGBA(0, 0, 0, 0)
	s.Clear()

	bg := colorOr(f.Settings.BackgroundColor, white)
	bg.apply(s)
	s.DrawRectangle(0, 0, float64(s.Width()), float64(s.Height()))
	s.Fill()

	doc := f.Document
	if doc == nil {
		return
	}
	zoom := doc.View.Zoom
	if zoom <= 0 {
		zoom = store.DefaultZoom
	}
	if doc.Grid.Enabled {
		r.grid(s, doc.View, zoom, doc.Grid.Size, colorOr(f.Settings.GridColor, black.Fade(0.1)))
	}

	p := &painter{s: s, fonts: r.fonts, zoom: zoom}
	s.Push()
	s.Translate(doc.View.PanX, doc.View.PanY)
	s.Scale(zoom, zoom)

	for i := range doc.Elements {
		if el := &doc.Elements[i]; el.Visible {
			p.element(el)
		}
	}
	if f.Preview != nil {
		p.element(f.Preview)
	}

	accent := colorOr(f.Settings.SelectionColor, black)
	if f.Decorations {
		for _, el := range doc.SelectedElements() {
			if el.Interactive() {
				p.selection(el, accent)
			}
		}
	}
	if f.SelectionBox != nil {
		p.marquee(*f.SelectionBox, accent)
	}
	s.Pop()
}

// grid draws lines every size document units, in screen space, covering
// only the visible surface.
func (r *Renderer) grid(s Surface, v store.Viewport, zoom, size float64, c Color) {
	step := size * zoom
	if step < GridMinSpacing {
		return
	}
	w, h := float64(s.Width()), float64(s.Height())
	c.apply(s)
	s.SetLineWidth(1)
	for x := positiveMod(v.PanX, step); x <= w; x += step {
		s.DrawLine(x, 0, x, h)
	}
	for y := positiveMod(v.PanY, step); y <= h; y += step {
		s.DrawLine(0, y, w, y)
	}
	s.Stroke()
}

func positiveMod(v, m float64) float64 {
	v = math.Mod(v, m)
	if v < 0 {
		v += m
	}
	return v
}

// element draws el rotated around its own centre. Dispatch is exhaustive
// over the shape kinds.
func (p *painter) element(el *element.Element) {
	s := p.s
	s.Push()
	defer s.Pop()
	if el.Rotation != 0 {
		c := el.Center()
		s.RotateAbout(geom.Radians(el.Rotation), c.X, c.Y)
	}

	switch shape := el.Shape.(type) {
	case *element.Rectangle:
		if shape.CornerRadius > 0 {
			s.DrawRoundedRectangle(el.X, el.Y, el.Width, el.Height, shape.CornerRadius)
		} else {
			s.DrawRectangle(el.X, el.Y, el.Width, el.Height)
		}
		p.paint(el.Style)
	case *element.Ellipse:
		c := el.Box().Center()
		s.DrawEllipse(c.X, c.Y, el.Width/2, el.Height/2)
		p.paint(el.Style)
	case *element.Line:
		p.line(shape, el.Style)
	case *element.Path:
		p.path(shape.Points, el.Style)
	case *element.Text:
		p.text(el, shape)
	case *element.Note:
		p.note(el, shape)
	}
}

func (p *painter) strokeColor(st element.Style) Color {
	return colorOr(st.StrokeColor, black).Fade(st.Opacity)
}

func (p *painter) setStroke(st element.Style) {
	p.strokeColor(st).apply(p.s)
	p.s.SetLineWidth(st.StrokeWidth)
	p.s.SetDash(st.Dash()...)
}

// paint fills then strokes the current path.
func (p *painter) paint(st element.Style) {
	s := p.s
	if st.HasFill() {
		colorOr(st.FillColor, Color{}).Fade(st.Opacity).apply(s)
		s.FillPreserve()
	}
	if st.StrokeWidth > 0 {
		p.setStroke(st)
		s.Stroke()
	} else {
		s.ClearPath()
	}
}

func (p *painter) line(l *element.Line, st element.Style) {
	pts := l.Points
	if len(pts) < 2 || st.StrokeWidth <= 0 {
		return
	}
	s := p.s
	p.setStroke(st)
	s.MoveTo(pts[0].X, pts[0].Y)
	for _, pt := range pts[1:] {
		s.LineTo(pt.X, pt.Y)
	}
	s.Stroke()

	s.SetDash()
	size := math.Max(ArrowSize, 3*st.StrokeWidth)
	if l.StartArrow {
		p.arrow(pts[1], pts[0], size)
	}
	if l.EndArrow {
		p.arrow(pts[len(pts)-2], pts[len(pts)-1], size)
	}
}

// arrow fills an arrowhead at tip pointing away from from.
func (p *painter) arrow(from, tip geom.Point, size float64) {
	d := tip.Sub(from)
	length := math.Hypot(d.X, d.Y)
	if length < geom.Epsilon {
		return
	}
	ux, uy := d.X/length, d.Y/length
	const spread = 0.5
	s := p.s
	s.MoveTo(tip.X, tip.Y)
	s.LineTo(tip.X-size*ux+size*uy*spread, tip.Y-size*uy-size*ux*spread)
	s.LineTo(tip.X-size*ux-size*uy*spread, tip.Y-size*uy+size*ux*spread)
	s.ClosePath()
	s.Fill()
}

// path draws a freehand stroke smoothed with quadratic segments through the
// midpoints of consecutive samples.
func (p *painter) path(pts []geom.Point, st element.Style) {
	s := p.s
	switch len(pts) {
	case 0:
		return
	case 1:
		p.strokeColor(st).apply(s)
		s.DrawCircle(pts[0].X, pts[0].Y, math.Max(st.StrokeWidth/2, 0.5))
		s.Fill()
		return
	}
	p.setStroke(st)
	s.MoveTo(pts[0].X, pts[0].Y)
	for i := 1; i < len(pts)-1; i++ {
		mid := geom.Pt((pts[i].X+pts[i+1].X)/2, (pts[i].Y+pts[i+1].Y)/2)
		s.QuadraticTo(pts[i].X, pts[i].Y, mid.X, mid.Y)
	}
	last := pts[len(pts)-1]
	s.LineTo(last.X, last.Y)
	s.Stroke()
}

// setFont selects a face for size document units. Faces are rasterised at
// screen size because surfaces do not scale glyphs with the transform.
func (p *painter) setFont(family string, size float64) bool {
	face := p.fonts.Face(family, size*p.zoom)
	if face == nil {
		return false
	}
	p.s.SetFontFace(face)
	return true
}

// lines word-wraps text to width document units, honouring explicit
// newlines.
func (p *painter) lines(text string, width float64) []string {
	var out []string
	for _, para := range splitLines(text) {
		if para == "" {
			out = append(out, "")
			continue
		}
		out = append(out, p.s.WordWrap(para, width*p.zoom)...)
	}
	return out
}

func (p *painter) text(el *element.Element, t *element.Text) {
	if !p.setFont(t.FontFamily, t.FontSize) {
		return
	}
	s := p.s
	p.strokeColor(el.Style).apply(s)

	x, ax := el.X, 0.0
	switch t.Align {
	case element.AlignCenter:
		x, ax = el.X+el.Width/2, 0.5
	case element.AlignRight:
		x, ax = el.X+el.Width, 1
	}
	lh := s.FontHeight() / p.zoom * LineSpacing
	for i, line := range p.lines(t.Text, el.Width) {
		s.DrawStringAnchored(line, x, el.Y+float64(i)*lh, ax, 1)
	}
}

// note draws an opaque card with a folded corner and wrapped text clipped
// to the card.
func (p *painter) note(el *element.Element, n *element.Note) {
	s := p.s
	fill := colorOr(el.Style.FillColor, colorOr(element.NoteFillColor, white))
	if fill.A == 0 {
		fill = colorOr(element.NoteFillColor, white)
	}
	fill = fill.Fade(el.Style.Opacity)

	// Card
	fill.apply(s)
	s.DrawRoundedRectangle(el.X, el.Y, el.Width, el.Height, NoteRadius)
	s.Fill()

	// Folded corner
	fold := min(NoteFold, el.Width/4, el.Height/4)
	right, bottom := el.X+el.Width, el.Y+el.Height
	fill.Darken(0.15).apply(s)
	s.MoveTo(right-fold, bottom)
	s.LineTo(right, bottom-fold)
	s.LineTo(right-fold, bottom-fold)
	s.ClosePath()
	s.Fill()

	if el.Style.StrokeWidth > 0 {
		p.setStroke(el.Style)
		s.SetLineWidth(1)
		s.DrawRoundedRectangle(el.X, el.Y, el.Width, el.Height, NoteRadius)
		s.Stroke()
		s.SetDash()
	}

	if !p.setFont(n.FontFamily, n.FontSize) {
		return
	}
	inner := el.Box().Inset(NotePadding)
	if inner.Width <= 0 || inner.Height <= 0 {
		return
	}
	s.Push()
	defer s.Pop()
	s.DrawRectangle(el.X, el.Y, el.Width, el.Height)
	s.Clip()

	black.Fade(el.Style.Opacity * 0.85).apply(s)
	lh := s.FontHeight() / p.zoom * LineSpacing
	for i, line := range p.lines(n.Text, inner.Width) {
		y := inner.Y + float64(i)*lh
		if y > inner.MaxY() {
			break
		}
		s.DrawStringAnchored(line, inner.X, y, 0, 1)
	}
}

// selection draws the dashed outline, the eight resize handles and the
// rotation handle with its connector. Outline strokes stay one pixel wide
// at any zoom; handles share the document-space size used for hit testing.
func (p *painter) selection(el *element.Element, accent Color) {
	s := p.s
	s.Push()
	defer s.Pop()
	box := el.Bounds()
	if el.Rotation != 0 {
		c := box.Center()
		s.RotateAbout(geom.Radians(el.Rotation), c.X, c.Y)
	}
	px := 1 / p.zoom

	accent.apply(s)
	s.SetLineWidth(px)
	s.SetDash(4*px, 4*px)
	outline := box.Inset(-SelectionPad * px)
	s.DrawRectangle(outline.X, outline.Y, outline.Width, outline.Height)
	s.Stroke()
	s.SetDash()

	top := geom.HandlePosition(box, geom.HandleN)
	rot := geom.HandlePosition(box, geom.HandleRotate)
	s.DrawLine(top.X, top.Y, rot.X, rot.Y)
	s.Stroke()

	half := geom.HandleSize / 2
	for _, h := range geom.ResizeHandles {
		c := geom.HandlePosition(box, h)
		s.DrawRectangle(c.X-half, c.Y-half, geom.HandleSize, geom.HandleSize)
		white.apply(s)
		s.FillPreserve()
		accent.apply(s)
		s.Stroke()
	}
	s.DrawCircle(rot.X, rot.Y, half)
	white.apply(s)
	s.FillPreserve()
	accent.apply(s)
	s.Stroke()
}

func (p *painter) marquee(r geom.Rect, accent Color) {
	s := p.s
	s.DrawRectangle(r.X, r.Y, r.Width, r.Height)
	accent.Fade(0.1).apply(s)
	s.FillPreserve()
	accent.apply(s)
	s.SetLineWidth(1 / p.zoom)
	s.Stroke()
}

func splitLines(s string) []string {
	return strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
}
