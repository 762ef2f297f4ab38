package widget

import (
	"log"

	"github.com/hubastard/oui/engine/ui"
)

// Gaps between the children of the containers.
const (
	ColumnGap = 1
	RowGap    = 8
	VGroupGap = -2
	HGroupGap = -1
)

// Node is an item of a widget tree with chainable configuration.
type Node struct {
	ctx *Context
	it  ui.Item
}

func (n Node) Item() ui.Item       { return n.it }
func (n Node) Context() *Context   { return n.ctx }
func (n Node) Widget() Widget      { return *n.ctx.Widget(n.it) }
func (n Node) Rect() ui.Rect       { return n.ctx.Rect(n.it) }
func (n Node) State() ui.ItemState { return n.ctx.State(n.it) }

func (n Node) Size(w, h int) Node               { n.ctx.SetSize(n.it, w, h); return n }
func (n Node) Layout(flags ui.LayoutFlags) Node { n.ctx.SetLayout(n.it, flags); return n }
func (n Node) Tag(tag ui.Tag) Node              { n.ctx.SetTag(n.it, tag); return n }
func (n Node) Frozen(frozen bool) Node          { n.ctx.SetFrozen(n.it, frozen); return n }

func (n Node) Margins(l, t, r, b int) Node {
	n.ctx.SetMargins(n.it, l, t, r, b)
	return n
}

// Builder creates widget items and wires their handlers. Handlers report
// clicks to the logger; a nil logger keeps them silent.
type Builder struct {
	ctx *Context
	log *log.Logger
	// anchor of the slider under drag, handed to its rebuilt successor
	dragAnchor float32
}

func NewBuilder(ctx *Context, logger *log.Logger) *Builder {
	return &Builder{ctx: ctx, log: logger}
}

func (b *Builder) Context() *Context { return b.ctx }

// Node wraps an existing item.
func (b *Builder) Node(it ui.Item) Node { return Node{ctx: b.ctx, it: it} }

// Logf writes to the builder's logger, if any.
func (b *Builder) Logf(format string, args ...any) {
	if b.log != nil {
		b.log.Printf(format, args...)
	}
}

// add creates an item holding w and appends it to parent. The item must be
// configured before Append so the parent's append handler sees it whole.
func (b *Builder) add(parent Node, w Widget, tag ui.Tag, width int, h ui.Handler[Widget], events ui.Event) Node {
	it := b.ctx.NewItem(w)
	if tag != ui.NoTag {
		b.ctx.SetTag(it, tag)
	}
	b.ctx.SetSize(it, width, Height)
	if h != nil {
		b.ctx.SetHandler(it, h, events)
	}
	b.ctx.Append(parent.it, it)
	return Node{ctx: b.ctx, it: it}
}

// ===== Containers =====

// Panel creates an unattached item; the first one created is the root.
func (b *Builder) Panel() Node {
	return Node{ctx: b.ctx, it: b.ctx.NewItem(&Panel{})}
}

func (b *Builder) Column(parent Node) Node { return b.container(parent, &Column{Gap: ColumnGap}) }
func (b *Builder) VGroup(parent Node) Node { return b.container(parent, &Column{Gap: VGroupGap}) }
func (b *Builder) Row(parent Node) Node    { return b.container(parent, &Row{Gap: RowGap}) }
func (b *Builder) HGroup(parent Node) Node { return b.container(parent, &Row{Gap: HGroupGap}) }

func (b *Builder) container(parent Node, w Widget) Node {
	it := b.ctx.NewItem(w)
	b.ctx.SetHandler(it, appendChild, ui.Append)
	b.ctx.Append(parent.it, it)
	return Node{ctx: b.ctx, it: it}
}

// ===== Leaves =====

func (b *Builder) Label(parent Node, icon Icon, text string) Node {
	return b.add(parent, &Label{Icon: icon, Text: text}, ui.NoTag, 0, nil, 0)
}

// Button creates a push button. Without onClick the button is inert.
func (b *Builder) Button(parent Node, tag ui.Tag, icon Icon, text string, onClick func(tag ui.Tag)) Node {
	w := &Button{Icon: icon, Text: text, OnClick: onClick}
	if onClick == nil {
		return b.add(parent, w, tag, 0, nil, 0)
	}
	return b.add(parent, w, tag, 0, b.onButton, ui.Button0HotUp)
}

// Check creates a checkbox toggling *value on press.
func (b *Builder) Check(parent Node, tag ui.Tag, text string, value *bool, onChange func(*Context, ui.Item, bool)) Node {
	return b.add(parent, &Check{Text: text, Value: value, OnChange: onChange}, tag, 0, b.onCheck, ui.Button0Down)
}

// Radio creates one option of a group; an option without text is an
// icon-only tool of fixed width.
func (b *Builder) Radio(parent Node, tag ui.Tag, icon Icon, text string, value *int) Node {
	width := 0
	if text == "" {
		width = ToolWidth
	}
	return b.add(parent, &Radio{Icon: icon, Text: text, Value: value}, tag, width, b.onRadio, ui.Button0Down)
}

// Slider creates a horizontal slider editing *value in [0,1] by dragging.
func (b *Builder) Slider(parent Node, tag ui.Tag, text string, value *float32) Node {
	w := &Slider{Text: text, Value: value}
	n := b.add(parent, w, tag, 0, b.onSlider, ui.Button0Down|ui.Button0Capture)
	if b.ctx.ActiveItem() == n.it {
		w.anchor = b.dragAnchor
	}
	return n
}
