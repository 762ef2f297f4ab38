// Package theme paints a widget tree with the 2D renderer. It reads rects,
// states and payloads after Layout and Process and never touches the tree.
package theme

import (
	"github.com/hubastard/oui/engine/colors"
	"github.com/hubastard/oui/engine/gfx/renderer2d"
	"github.com/hubastard/oui/engine/scratch"
	"github.com/hubastard/oui/engine/text"
	"github.com/hubastard/oui/engine/ui"
	"github.com/hubastard/oui/engine/widget"
)

const (
	// corner cut of rounded widgets
	Radius = 3
	// horizontal text inset
	TextPad = 6
	// side of the check box and of icon placeholders
	BoxSize = 12
	// how far the top and bottom of a widget body move from its inner
	// colour; pressed bodies flip it
	Shade = 0.08
)

type Painter struct {
	r2d     *renderer2d.Renderer2D
	font    *text.Font
	pal     colors.Palette
	scratch *scratch.Buffer
	// nil draws icons as plain squares
	icons *IconSheet
}

func New(r2d *renderer2d.Renderer2D, font *text.Font, pal colors.Palette, buf *scratch.Buffer) *Painter {
	return &Painter{r2d: r2d, font: font, pal: pal, scratch: buf}
}

func (p *Painter) SetIcons(s *IconSheet) { p.icons = s }

// Paint draws the tree of ctx, parents first. The renderer must be inside
// BeginScene.
func (p *Painter) Paint(ctx *widget.Context) {
	if ctx.Count() == 0 {
		return
	}
	widget.Walk(ctx, ctx.Root(), p.paint)
}

func (p *Painter) paint(v widget.Visit) {
	alpha := float32(1)
	if v.Dimmed {
		alpha = p.pal.DimAlpha
	}
	hot, active := v.State == ui.Hot, v.State == ui.Active

	switch w := v.Widget.(type) {
	case *widget.Panel:
		p.rect(v.Rect, p.pal.Background, alpha)
	case *widget.Label:
		x := p.icon(v.Rect, w.Icon, p.pal.Label, alpha)
		p.label(v.Rect, x, w.Text, p.pal.Label, alpha, false)
	case *widget.Button:
		th := p.pal.Regular
		if w.Text == "" {
			th = p.pal.Tool
		}
		p.box(v.Rect, v.Corners, th, hot, active, alpha)
		fg := textColor(th, active)
		x := p.icon(v.Rect, w.Icon, fg, alpha)
		p.label(v.Rect, x, w.Text, fg, alpha, w.Icon == widget.NoIcon)
	case *widget.Radio:
		th := p.pal.Radio
		p.box(v.Rect, v.Corners, th, hot, active, alpha)
		fg := textColor(th, active)
		x := p.icon(v.Rect, w.Icon, fg, alpha)
		p.label(v.Rect, x, w.Text, fg, alpha, w.Icon == widget.NoIcon)
	case *widget.Check:
		th := p.pal.Option
		b := CheckBox(v.Rect)
		// checked checks report Active; the box shows hover only
		p.box(b, widget.CornerNone, th, hot, false, alpha)
		if active {
			p.rect(inset(b, 3), th.Item, alpha)
		}
		p.label(v.Rect, b.X+b.W-v.Rect.X, w.Text, p.pal.Label, alpha, false)
	case *widget.Slider:
		th := p.pal.Slider
		p.box(v.Rect, v.Corners, th, hot, active, alpha)
		var value float32
		if w.Value != nil {
			value = *w.Value
		}
		p.rect(SliderFill(inset(v.Rect, 1), value), th.Item, alpha)
		p.label(v.Rect, 0, p.scratch.Percent(w.Text, value), textColor(th, active), alpha, true)
	}
}

func textColor(th colors.WidgetTheme, active bool) colors.Color {
	if active {
		return th.TextActive
	}
	return th.Text
}

func (p *Painter) rect(r ui.Rect, c colors.Color, alpha float32) {
	p.r2d.DrawRect(float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c.WithAlpha(c[3]*alpha))
}

// box draws an outlined, corner-cut widget body.
func (p *Painter) box(r ui.Rect, corners widget.Corners, th colors.WidgetTheme, hot, active bool, alpha float32) {
	for _, part := range RoundRect(r, Radius, corners) {
		p.rect(part, th.Outline, alpha)
	}
	top, bottom := ShadeOf(th.InnerFor(hot, active), active)
	top, bottom = top.WithAlpha(top[3]*alpha), bottom.WithAlpha(bottom[3]*alpha)
	body := inset(r, 1)
	for _, part := range RoundRect(body, Radius-1, corners) {
		// parts share one blend over the whole body
		t := lerp(top, bottom, float32(part.Y-body.Y)/float32(max(1, body.H)))
		b := lerp(top, bottom, float32(part.Y+part.H-body.Y)/float32(max(1, body.H)))
		p.r2d.DrawShade(float32(part.X), float32(part.Y), float32(part.W), float32(part.H), t, b)
	}
}

// ShadeOf is the top and bottom colour of a body filled with inner.
func ShadeOf(inner colors.Color, pressed bool) (top, bottom colors.Color) {
	if pressed {
		return inner.Shade(-Shade), inner.Shade(Shade)
	}
	return inner.Shade(Shade), inner.Shade(-Shade)
}

func lerp(a, b colors.Color, t float32) colors.Color {
	for i := range a {
		a[i] += (b[i] - a[i]) * t
	}
	return a
}

// icon draws icon from the sheet, or a square without one, and returns the x, relative to
// r, where the text starts.
func (p *Painter) icon(r ui.Rect, icon widget.Icon, c colors.Color, alpha float32) int {
	if icon == widget.NoIcon {
		return 0
	}
	x := r.X + TextPad/2
	if r.W < BoxSize+TextPad {
		x = r.X + (r.W-BoxSize)/2
	}
	y := r.Y + (r.H-BoxSize)/2
	if p.icons != nil {
		p.r2d.DrawSub(float32(x), float32(y), BoxSize, BoxSize, p.icons.Sub(icon), c.WithAlpha(c[3]*alpha))
	} else {
		p.rect(ui.Rect{X: x, Y: y, W: BoxSize, H: BoxSize}, c.WithAlpha(0.6), alpha)
	}
	return x + BoxSize - r.X
}

// label draws s inside r starting at offset x, centered when center is set,
// clipped to the rect width.
func (p *Painter) label(r ui.Rect, x int, s string, c colors.Color, alpha float32, center bool) {
	if s == "" || p.font == nil {
		return
	}
	maxW := float32(r.W - x - 2*TextPad)
	if maxW <= 0 {
		return
	}
	s = text.Ellipsize(p.font, s, maxW)
	tx := float32(r.X + x + TextPad)
	if center {
		w, _ := text.MeasureText(p.font, s, p.font.SizePx)
		tx = float32(r.X) + (float32(r.W)-w)*0.5
	}
	ty := float32(r.Y) + (float32(r.H)-text.LineHeight(p.font))*0.5
	text.DrawText(p.r2d, p.font, tx, ty, s, c.WithAlpha(c[3]*alpha))
}

// ===== Geometry =====

func inset(r ui.Rect, d int) ui.Rect {
	return ui.Rect{X: r.X + d, Y: r.Y + d, W: max(0, r.W-2*d), H: max(0, r.H-2*d)}
}

// RoundRect splits r into rects that cover it except for a radius-sized
// square at every corner not flagged sharp.
func RoundRect(r ui.Rect, radius int, sharp widget.Corners) []ui.Rect {
	radius = min(radius, r.W/2, r.H/2)
	if radius <= 0 || sharp == widget.CornerAll {
		return []ui.Rect{r}
	}
	cut := func(c widget.Corners) int {
		if sharp&c != 0 {
			return 0
		}
		return radius
	}
	tl, tr := cut(widget.CornerTopLeft), cut(widget.CornerTopRight)
	bl, br := cut(widget.CornerDownLeft), cut(widget.CornerDownRight)
	return []ui.Rect{
		{X: r.X + tl, Y: r.Y, W: r.W - tl - tr, H: radius},
		{X: r.X, Y: r.Y + radius, W: r.W, H: r.H - 2*radius},
		{X: r.X + bl, Y: r.Y + r.H - radius, W: r.W - bl - br, H: radius},
	}
}

// SliderFill is the part of r covered by a slider at value.
func SliderFill(r ui.Rect, value float32) ui.Rect {
	value = max(0, min(1, value))
	r.W = int(float32(r.W)*value + 0.5)
	return r
}

// CheckBox is the square of a check, at the left of r.
func CheckBox(r ui.Rect) ui.Rect {
	return ui.Rect{X: r.X + TextPad/2, Y: r.Y + (r.H-BoxSize)/2, W: BoxSize, H: BoxSize}
}
