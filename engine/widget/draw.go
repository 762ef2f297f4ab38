package widget

import "github.com/hubastard/oui/engine/ui"

// Corners flags the sharp corners of a widget; unflagged corners are round.
type Corners uint8

const (
	CornerNone      Corners = 0
	CornerTopLeft   Corners = 1
	CornerTopRight  Corners = 2
	CornerDownRight Corners = 4
	CornerDownLeft  Corners = 8

	CornerAll   = CornerTopLeft | CornerTopRight | CornerDownRight | CornerDownLeft
	CornerTop   = CornerTopLeft | CornerTopRight
	CornerDown  = CornerDownRight | CornerDownLeft
	CornerLeft  = CornerTopLeft | CornerDownLeft
	CornerRight = CornerTopRight | CornerDownRight
)

// CornersOf returns the sharp corners of it: members of a Row or Column of
// two or more join their neighbours with square edges.
func CornersOf(ctx *Context, it ui.Item) Corners {
	parent := ctx.Parent(it)
	if !parent.Valid() {
		return CornerNone
	}
	n := ctx.ChildCount(parent)
	if n < 2 {
		return CornerNone
	}
	id := ctx.ChildID(it)
	switch (*ctx.Widget(parent)).(type) {
	case *Column:
		switch id {
		case 0:
			return CornerDown
		case n - 1:
			return CornerTop
		}
		return CornerAll
	case *Row:
		switch id {
		case 0:
			return CornerRight
		case n - 1:
			return CornerLeft
		}
		return CornerAll
	}
	return CornerNone
}

// Visit is what a drawing layer needs to paint one item.
type Visit struct {
	Item   ui.Item
	Widget Widget
	// absolute rect, in root coordinates
	Rect ui.Rect
	// interaction state, with checked checks and selected radios reported
	// as Active
	State ui.ItemState
	// set when the item or one of its ancestors is frozen
	Dimmed  bool
	Corners Corners
	Depth   int
}

// Walk visits it and its subtree in drawing order, parents first.
func Walk(ctx *Context, it ui.Item, fn func(v Visit)) {
	if !it.Valid() {
		return
	}
	walk(ctx, it, 0, 0, false, 0, fn)
}

func walk(ctx *Context, it ui.Item, ox, oy int, dimmed bool, depth int, fn func(Visit)) {
	r := ctx.Rect(it)
	r.X += ox
	r.Y += oy

	state := ctx.State(it)
	if state == ui.Frozen {
		dimmed = true
		state = ui.Cold
	}
	w := *ctx.Widget(it)
	switch v := w.(type) {
	case *Check:
		if v.Value != nil && *v.Value {
			state = ui.Active
		}
	case *Radio:
		if SelectedRadio(ctx, it) {
			state = ui.Active
		}
	}

	fn(Visit{
		Item:    it,
		Widget:  w,
		Rect:    r,
		State:   state,
		Dimmed:  dimmed,
		Corners: CornersOf(ctx, it),
		Depth:   depth,
	})
	for kid := ctx.FirstChild(it); kid.Valid(); kid = ctx.NextSibling(kid) {
		walk(ctx, kid, r.X, r.Y, dimmed, depth+1, fn)
	}
}
