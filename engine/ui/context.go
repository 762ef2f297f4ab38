// Package ui keeps a tree of interactive items in a flat arena, resolves
// their rects from anchor constraints and turns cursor/button input into
// hot, active and event state. It draws nothing: a renderer walks the tree
// after Layout and Process and reads Rect, State and the item payload.
//
// A frame is: build or mutate the tree, Layout, Process, draw.
package ui

// ===== Immediate-UI context =====

type captureState int

const (
	idle captureState = iota
	capturing
)

// Context owns every item of one UI instance. W is the caller's payload
// type, stored by value in each item.
type Context[W any] struct {
	// button state in this frame and in the previous one
	buttons     uint64
	lastButtons uint64

	// cursor at the start of the active state, last frame, and now
	startCursor Vec2
	lastCursor  Vec2
	cursor      Vec2

	hotTag     Tag
	activeTag  Tag
	hotItem    Item
	activeItem Item
	hotRect    Rect
	activeRect Rect

	capture captureState

	items []record[W]
	// bumped by Clear so old handles are recognised as stale
	gen uint32
}

// New creates an empty context. capItems preallocates the arena; it grows
// past that on demand.
func New[W any](capItems int) *Context[W] {
	if capItems < 0 {
		capItems = 0
	}
	return &Context[W]{
		hotTag:     NoTag,
		activeTag:  NoTag,
		hotItem:    None,
		activeItem: None,
		items:      make([]record[W], 0, capItems),
	}
}

// Clear drops every item and resets hot and active. Tags remembered from the
// last Process survive, so a rebuilt tree can reclaim its hover and capture
// through SetTag.
func (ctx *Context[W]) Clear() {
	clear(ctx.items)
	ctx.items = ctx.items[:0]
	ctx.gen++
	ctx.hotItem = None
	ctx.activeItem = None
}

// Count is the number of items in the arena.
func (ctx *Context[W]) Count() int { return len(ctx.items) }

// Root is the first item created, or None for an empty context.
func (ctx *Context[W]) Root() Item {
	if len(ctx.items) == 0 {
		return None
	}
	return Item{index: 0, gen: ctx.gen}
}

// NewItem stores w in a new, unattached item.
func (ctx *Context[W]) NewItem(w W) Item {
	it := Item{index: int32(len(ctx.items)), gen: ctx.gen}
	ctx.items = append(ctx.items, newRecord(w))
	return it
}

func (ctx *Context[W]) get(op string, it Item) *record[W] {
	if it.index < 0 || int(it.index) >= len(ctx.items) || it.gen != ctx.gen {
		violate(op, KindStaleItem, it, None)
	}
	return &ctx.items[it.index]
}

// ===== Hierarchy =====

// Append attaches child as the last child of parent and sends Append to
// parent's handler. An item is appended at most once.
func (ctx *Context[W]) Append(parent, child Item) Item {
	const op = "ui.Append"
	pc := ctx.get(op, child)
	pp := ctx.get(op, parent)
	if pc.parent.Valid() {
		violate(op, KindDoubleAppend, child, pc.parent)
	}
	if child == parent || child == ctx.Root() {
		violate(op, KindSelfAppend, child, parent)
	}
	for up := parent; up.Valid(); up = ctx.items[up.index].parent {
		if up == child {
			violate(op, KindSelfAppend, child, parent)
		}
	}

	pc.parent = parent
	pc.kidID = pp.numKids
	pp.numKids++
	if !pp.lastKid.Valid() {
		pp.firstKid = child
	} else {
		pc.prevItem = pp.lastKid
		ctx.items[pp.lastKid.index].nextItem = child
	}
	pp.lastKid = child

	ctx.NotifyItem(parent, Append)
	return child
}

func (ctx *Context[W]) Parent(it Item) Item      { return ctx.get("ui.Parent", it).parent }
func (ctx *Context[W]) FirstChild(it Item) Item  { return ctx.get("ui.FirstChild", it).firstKid }
func (ctx *Context[W]) LastChild(it Item) Item   { return ctx.get("ui.LastChild", it).lastKid }
func (ctx *Context[W]) NextSibling(it Item) Item { return ctx.get("ui.NextSibling", it).nextItem }
func (ctx *Context[W]) PrevSibling(it Item) Item { return ctx.get("ui.PrevSibling", it).prevItem }

// ChildID is the 0-based position of it among its parent's children.
func (ctx *Context[W]) ChildID(it Item) int    { return ctx.get("ui.ChildID", it).kidID }
func (ctx *Context[W]) ChildCount(it Item) int { return ctx.get("ui.ChildCount", it).numKids }

// ===== Configuration =====

// Widget returns the payload stored in it. The pointer is invalidated by the
// next NewItem, so do not keep it across calls that may create items.
func (ctx *Context[W]) Widget(it Item) *W { return &ctx.get("ui.Widget", it).widget }

// SetSize fixes the item's width and height; 0 on an axis means the size is
// computed from the children. Negative sizes are a contract violation.
func (ctx *Context[W]) SetSize(it Item, w, h int) {
	p := ctx.get("ui.SetSize", it)
	if w < 0 || h < 0 {
		violate("ui.SetSize", KindNegativeSize, it, None)
	}
	p.size = [2]int{w, h}
}

func (ctx *Context[W]) Size(it Item) (w, h int) {
	p := ctx.get("ui.Size", it)
	return p.size[0], p.size[1]
}

func (ctx *Context[W]) SetLayout(it Item, flags LayoutFlags) {
	ctx.get("ui.SetLayout", it).flags = flags
}

func (ctx *Context[W]) LayoutFlags(it Item) LayoutFlags { return ctx.get("ui.LayoutFlags", it).flags }

// SetMargins sets the gaps around the item. For a centered axis the leading
// margin is an offset from the center instead.
func (ctx *Context[W]) SetMargins(it Item, l, t, r, b int) {
	ctx.get("ui.SetMargins", it).margins = [4]int{l, t, r, b}
}

func (ctx *Context[W]) Margins(it Item) (l, t, r, b int) {
	m := ctx.get("ui.Margins", it).margins
	return m[0], m[1], m[2], m[3]
}

func (ctx *Context[W]) SetRelToLeft(it, other Item)  { ctx.setRelTo("ui.SetRelToLeft", it, other, EdgeLeft) }
func (ctx *Context[W]) SetRelToTop(it, other Item)   { ctx.setRelTo("ui.SetRelToTop", it, other, EdgeTop) }
func (ctx *Context[W]) SetRelToRight(it, other Item) { ctx.setRelTo("ui.SetRelToRight", it, other, EdgeRight) }
func (ctx *Context[W]) SetRelToDown(it, other Item)  { ctx.setRelTo("ui.SetRelToDown", it, other, EdgeDown) }

// RelTo is the neighbour it is anchored to on edge e, or None.
func (ctx *Context[W]) RelTo(it Item, e Edge) Item { return ctx.get("ui.RelTo", it).relTo[e] }

func (ctx *Context[W]) setRelTo(op string, it, other Item, e Edge) {
	p := ctx.get(op, it)
	if other.Valid() {
		if other == it || ctx.get(op, other).parent != p.parent {
			violate(op, KindCrossParentAnchor, it, other)
		}
	}
	p.relTo[e] = other
}

// SetTag assigns the persistent tag of it. If the tag matches the hot or
// active item of the previous frame, it takes over that role.
func (ctx *Context[W]) SetTag(it Item, tag Tag) {
	ctx.get("ui.SetTag", it).tag = tag
	if tag == NoTag {
		return
	}
	if tag == ctx.hotTag {
		ctx.hotItem = it
	}
	if tag == ctx.activeTag {
		ctx.activeItem = it
	}
}

func (ctx *Context[W]) Tag(it Item) Tag { return ctx.get("ui.Tag", it).tag }

// SetHandler registers h for the events in mask. A nil h silences the item.
func (ctx *Context[W]) SetHandler(it Item, h Handler[W], mask Event) {
	p := ctx.get("ui.SetHandler", it)
	p.handler = h
	p.events = mask
}

// HandlerEvents is the event mask registered with SetHandler.
func (ctx *Context[W]) HandlerEvents(it Item) Event { return ctx.get("ui.HandlerEvents", it).events }

// SetFrozen disables it and its subtree for hit testing and interaction.
func (ctx *Context[W]) SetFrozen(it Item, frozen bool) { ctx.get("ui.SetFrozen", it).frozen = frozen }

func (ctx *Context[W]) Frozen(it Item) bool { return ctx.get("ui.Frozen", it).frozen }

// ===== Results =====

// Rect is the resolved rect of it, relative to its parent.
func (ctx *Context[W]) Rect(it Item) Rect { return rectOf(ctx.get("ui.Rect", it).rect) }

// ScreenRect is the resolved rect of it in root coordinates.
func (ctx *Context[W]) ScreenRect(it Item) Rect {
	r := ctx.Rect(it)
	for up := ctx.items[it.index].parent; up.Valid(); up = ctx.items[up.index].parent {
		r = r.Offset(ctx.items[up.index].rect[0], ctx.items[up.index].rect[1])
	}
	return r
}
