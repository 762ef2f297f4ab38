package widget

import "github.com/hubastard/oui/engine/ui"

// appendChild anchors the newest child of a Row or Column to its previous
// sibling. Rows chain both edges so the children share the width; columns
// stack the children and stretch them across.
func appendChild(ctx *Context, parent ui.Item, _ ui.Event) {
	it := ctx.LastChild(parent)
	last := ctx.PrevSibling(it)
	gap := 0
	switch w := (*ctx.Widget(parent)).(type) {
	case *Column:
		if last.Valid() {
			gap = w.Gap
		}
		ctx.SetRelToTop(it, last)
		ctx.SetLayout(it, ui.HFill|ui.Top)
		ctx.SetMargins(it, 0, gap, 0, 0)
	case *Row:
		if last.Valid() {
			gap = w.Gap
			ctx.SetRelToRight(last, it)
		}
		ctx.SetRelToLeft(it, last)
		ctx.SetLayout(it, ui.Left|ui.Right)
		ctx.SetMargins(it, gap, 0, 0, 0)
	}
}

func (b *Builder) onButton(ctx *Context, it ui.Item, _ ui.Event) {
	btn, ok := (*ctx.Widget(it)).(*Button)
	if !ok {
		return
	}
	tag := ctx.Tag(it)
	b.Logf("clicked: #%d '%s'", tag, btn.Text)
	if btn.OnClick != nil {
		btn.OnClick(tag)
	}
}

func (b *Builder) onCheck(ctx *Context, it ui.Item, _ ui.Event) {
	chk, ok := (*ctx.Widget(it)).(*Check)
	if !ok || chk.Value == nil {
		return
	}
	b.Logf("clicked: #%d '%s'", ctx.Tag(it), chk.Text)
	*chk.Value = !*chk.Value
	if chk.OnChange != nil {
		chk.OnChange(ctx, it, *chk.Value)
	}
}

func (b *Builder) onRadio(ctx *Context, it ui.Item, _ ui.Event) {
	rad, ok := (*ctx.Widget(it)).(*Radio)
	if !ok || rad.Value == nil {
		return
	}
	b.Logf("clicked: #%d '%s'", ctx.Tag(it), rad.Text)
	*rad.Value = ctx.ChildID(it)
}

// onSlider keeps the drag anchor in the slider itself, so any number of
// sliders can be dragged one after the other without sharing state. A tree
// rebuilt mid-drag gets the anchor back through the Builder.
func (b *Builder) onSlider(ctx *Context, it ui.Item, ev ui.Event) {
	sl, ok := (*ctx.Widget(it)).(*Slider)
	if !ok || sl.Value == nil {
		return
	}
	switch ev {
	case ui.Button0Down:
		sl.anchor = *sl.Value
		b.dragAnchor = sl.anchor
	case ui.Button0Capture:
		w := ctx.Rect(it).W
		if w <= 0 {
			return
		}
		dx := ctx.CursorStartDelta().X
		*sl.Value = clamp01(sl.anchor + float32(dx)/float32(w))
	default:
		b.Logf("slider #%d: unexpected event %v", ctx.Tag(it), ev)
	}
}

// SelectedRadio reports whether it is a radio whose group value points at it.
func SelectedRadio(ctx *Context, it ui.Item) bool {
	rad, ok := (*ctx.Widget(it)).(*Radio)
	return ok && rad.Value != nil && *rad.Value == ctx.ChildID(it)
}
