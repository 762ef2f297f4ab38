package ui

// ===== Input =====

func (ctx *Context[W]) SetCursor(x, y int) { ctx.cursor = Vec2{x, y} }

func (ctx *Context[W]) Cursor() Vec2 { return ctx.cursor }

// CursorStart is where the cursor was when the current press began.
func (ctx *Context[W]) CursorStart() Vec2 { return ctx.startCursor }

// CursorDelta is the cursor movement since the last Process.
func (ctx *Context[W]) CursorDelta() Vec2 { return ctx.cursor.Sub(ctx.lastCursor) }

// CursorStartDelta is the cursor movement since the current press began.
func (ctx *Context[W]) CursorStartDelta() Vec2 { return ctx.cursor.Sub(ctx.startCursor) }

// maxButtons is the width of the button masks.
const maxButtons = 64

// SetButton records whether button index (0..63) is held this frame. Other
// indexes are ignored and read as released.
func (ctx *Context[W]) SetButton(index int, down bool) {
	if index < 0 || index >= maxButtons {
		return
	}
	mask := uint64(1) << uint(index)
	if down {
		ctx.buttons |= mask
	} else {
		ctx.buttons &^= mask
	}
}

func (ctx *Context[W]) Button(index int) bool     { return buttonBit(ctx.buttons, index) }
func (ctx *Context[W]) LastButton(index int) bool { return buttonBit(ctx.lastButtons, index) }

func buttonBit(mask uint64, index int) bool {
	return index >= 0 && index < maxButtons && mask&(1<<uint(index)) != 0
}

// ButtonPressed reports a button that went down since the last Process.
func (ctx *Context[W]) ButtonPressed(index int) bool {
	return !ctx.LastButton(index) && ctx.Button(index)
}

// ButtonReleased reports a button that went up since the last Process.
func (ctx *Context[W]) ButtonReleased(index int) bool {
	return ctx.LastButton(index) && !ctx.Button(index)
}

func (ctx *Context[W]) HotItem() Item         { return ctx.hotItem }
func (ctx *Context[W]) ActiveItem() Item      { return ctx.activeItem }
func (ctx *Context[W]) IsHot(it Item) bool    { return ctx.hotItem == it }
func (ctx *Context[W]) IsActive(it Item) bool { return ctx.activeItem == it }
func (ctx *Context[W]) HotRect() Rect         { return ctx.hotRect }
func (ctx *Context[W]) ActiveRect() Rect      { return ctx.activeRect }

// ===== Hit testing =====

// FindItem returns the innermost item under (x,y), searching from it. x and y
// are in the coordinates of it's parent (root coordinates for the root).
// Frozen items and their subtrees are skipped; among overlapping siblings the
// first in sibling order wins.
func (ctx *Context[W]) FindItem(it Item, x, y int) Item {
	ctx.get("ui.FindItem", it)
	hit, _ := ctx.findItem(it, x, y, 0, 0)
	return hit
}

func (ctx *Context[W]) findItem(it Item, x, y, ox, oy int) (Item, Rect) {
	p := &ctx.items[it.index]
	if p.frozen {
		return None, Rect{}
	}
	rect := rectOf(p.rect)
	if !rect.Contains(x, y) {
		return None, Rect{}
	}
	x -= rect.X
	y -= rect.Y
	ox += rect.X
	oy += rect.Y
	for kid := p.firstKid; kid.Valid(); kid = ctx.items[kid.index].nextItem {
		if hit, r := ctx.findItem(kid, x, y, ox, oy); hit.Valid() {
			return hit, r
		}
	}
	rect.X, rect.Y = ox, oy
	return it, rect
}

// ===== Events =====

// NotifyItem calls the handler of it if it subscribed to ev.
func (ctx *Context[W]) NotifyItem(it Item, ev Event) {
	p := ctx.get("ui.NotifyItem", it)
	if p.events&ev != ev || p.handler == nil {
		return
	}
	p.handler(ctx, it, ev)
}

// State derives the rendering state of it. Frozen wins over everything;
// an active item reads Active while it captures (Button0Capture or
// Button0Up subscribers) or while it is also hot (Button0HotUp subscribers).
// Either of Button0Capture and Button0Up is enough, so a slider subscribed
// to Button0Capture alone reads Active for the whole drag, not Cold.
func (ctx *Context[W]) State(it Item) ItemState {
	p := ctx.get("ui.State", it)
	hot := ctx.hotItem == it
	switch {
	case p.frozen:
		return Frozen
	case ctx.activeItem == it:
		if p.events&(Button0Capture|Button0Up) != 0 {
			return Active
		}
		if p.events&Button0HotUp != 0 && hot {
			return Active
		}
		return Cold
	case hot:
		return Hot
	}
	return Cold
}

// Process advances the input state machine by one frame using the cursor
// and button 0 as set since the previous call. Events go to the handlers
// synchronously, in order: down on press; capture every held frame; up,
// then hot-up if the cursor is still over the item, on release.
func (ctx *Context[W]) Process() {
	if len(ctx.items) == 0 {
		ctx.lastButtons = ctx.buttons
		ctx.lastCursor = ctx.cursor
		return
	}

	hot, hotRect := ctx.findItem(ctx.Root(), ctx.cursor.X, ctx.cursor.Y, 0, 0)
	ctx.hotRect = hotRect
	active := ctx.activeItem

	switch ctx.capture {
	case idle:
		ctx.startCursor = ctx.cursor
		if ctx.Button(0) {
			ctx.hotItem = None
			ctx.activeRect = hotRect
			ctx.activeItem = hot
			if hot.Valid() {
				ctx.NotifyItem(hot, Button0Down)
			}
			ctx.capture = capturing
		} else {
			ctx.hotItem = hot
		}
	case capturing:
		if !ctx.Button(0) {
			if active.Valid() {
				ctx.NotifyItem(active, Button0Up)
				// the Up handler may have cleared the context
				if active == hot && ctx.live(active) {
					ctx.NotifyItem(active, Button0HotUp)
				}
			}
			ctx.activeItem = None
			ctx.capture = idle
		} else {
			if active.Valid() {
				ctx.NotifyItem(active, Button0Capture)
			}
			if hot == active {
				ctx.hotItem = hot
			} else {
				ctx.hotItem = None
			}
		}
	}

	ctx.lastCursor = ctx.cursor
	ctx.lastButtons = ctx.buttons
	ctx.hotTag = ctx.tagOf(ctx.hotItem)
	ctx.activeTag = ctx.tagOf(ctx.activeItem)
}

// live reports whether it still names an item, false for handles a handler
// invalidated by calling Clear.
func (ctx *Context[W]) live(it Item) bool {
	return it.Valid() && int(it.index) < len(ctx.items) && it.gen == ctx.gen
}

func (ctx *Context[W]) tagOf(it Item) Tag {
	if !ctx.live(it) {
		return NoTag
	}
	return ctx.items[it.index].tag
}
