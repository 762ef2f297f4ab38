package ui

// ===== Layout solver =====
//
// Each axis is solved on its own, horizontal first: a post-order pass
// computes best sizes from chains of anchored siblings, then a pre-order pass
// positions every child inside its parent's resolved rect. The vertical
// flags are the horizontal ones shifted by one bit, and rect/margins/relTo
// are indexed so that dim is the leading edge and dim+2 the trailing edge
// (or the extent, for rect).

// Layout resolves the rect of every item. The root is placed at its own
// leading margins. Calling it again without mutations reproduces the same
// rects.
func (ctx *Context[W]) Layout() {
	if len(ctx.items) == 0 {
		return
	}
	root := ctx.Root()
	for _, dim := range [...]Axis{Horizontal, Vertical} {
		ctx.computeBestSize(root, dim)
		r := &ctx.items[root.index]
		r.rect[dim] = r.margins[dim]
		ctx.layoutItem(root, dim)
	}
}

func (ctx *Context[W]) computeBestSize(it Item, dim Axis) {
	p := &ctx.items[it.index]
	p.sized[dim] = false
	p.placed[dim] = false
	// children expand the size
	for kid := p.firstKid; kid.Valid(); kid = ctx.items[kid.index].nextItem {
		ctx.computeBestSize(kid, dim)
	}
	ctx.computeSizeDim(it, dim)
}

func (ctx *Context[W]) computeSizeDim(it Item, dim Axis) {
	wdim := dim + 2
	var needSize, hardSize int
	for kid := ctx.items[it.index].firstKid; kid.Valid(); kid = ctx.items[kid.index].nextItem {
		if ctx.items[kid.index].sized[dim] {
			continue
		}
		need, hard := ctx.computeChainSize(kid, dim)
		needSize = maxi(needSize, need)
		hardSize = maxi(hardSize, hard)
	}

	p := &ctx.items[it.index]
	p.computed[dim] = hardSize
	if p.size[dim] > 0 {
		p.rect[wdim] = p.size[dim]
	} else {
		p.rect[wdim] = needSize
	}
}

// computeChainSize sums the extents of it and every sibling reachable
// through its leading and trailing anchors on dim. hard counts only the
// members with an explicit size.
func (ctx *Context[W]) computeChainSize(it Item, dim Axis) (need, hard int) {
	wdim := dim + 2
	add := func(m Item) {
		p := &ctx.items[m.index]
		p.sized[dim] = true
		size := p.rect[wdim] + p.margins[dim] + p.margins[wdim]
		need += size
		if p.size[dim] > 0 {
			hard += size
		}
	}
	add(it)

	// a chain longer than the arena can only be a loop
	limit := len(ctx.items)
	for i, prev := 0, it; ctx.items[prev.index].flags.axis(dim)&Left != 0; i++ {
		prev = ctx.items[prev.index].relTo[dim]
		if !prev.Valid() {
			break
		}
		if i >= limit {
			violate("ui.Layout", KindAnchorCycle, it, prev)
		}
		ctx.checkSibling(it, prev)
		add(prev)
	}
	for i, next := 0, it; ctx.items[next.index].flags.axis(dim)&Right != 0; i++ {
		next = ctx.items[next.index].relTo[wdim]
		if !next.Valid() {
			break
		}
		if i >= limit {
			violate("ui.Layout", KindAnchorCycle, it, next)
		}
		ctx.checkSibling(it, next)
		add(next)
	}
	return need, hard
}

// checkSibling catches anchors set while both items were still detached and
// appended under different parents afterwards.
func (ctx *Context[W]) checkSibling(it, other Item) {
	if ctx.items[other.index].parent != ctx.items[it.index].parent {
		violate("ui.Layout", KindCrossParentAnchor, it, other)
	}
}

func (ctx *Context[W]) layoutItem(it Item, dim Axis) {
	// position the children first, then descend
	for kid := ctx.items[it.index].firstKid; kid.Valid(); kid = ctx.items[kid.index].nextItem {
		dyncount := 0
		ctx.layoutChildItem(it, kid, &dyncount, dim)
	}
	for kid := ctx.items[it.index].firstKid; kid.Valid(); kid = ctx.items[kid.index].nextItem {
		ctx.layoutItem(kid, dim)
	}
}

// layoutChildItem positions it inside parent on dim. Anchor neighbours are
// resolved first through recursion; dyncount accumulates the dynamic items
// met in that recursion, which share the parent's slack evenly.
func (ctx *Context[W]) layoutChildItem(parent, it Item, dyncount *int, dim Axis) {
	p := &ctx.items[it.index]
	if p.placed[dim] {
		return
	}
	p.placed[dim] = true
	if p.size[dim] == 0 {
		*dyncount++
	}

	wdim := dim + 2
	x := 0
	s := ctx.items[parent.index].rect[wdim]

	flags := p.flags.axis(dim)
	l, r := p.relTo[dim], p.relTo[wdim]
	hasl := flags&Left != 0 && l.Valid()
	hasr := flags&Right != 0 && r.Valid()

	if hasl {
		ctx.checkSibling(it, l)
		ctx.layoutChildItem(parent, l, dyncount, dim)
		pl := &ctx.items[l.index]
		x = pl.rect[dim] + pl.rect[wdim] + pl.margins[wdim]
		s -= x
	}
	if hasr {
		ctx.checkSibling(it, r)
		ctx.layoutChildItem(parent, r, dyncount, dim)
		pr := &ctx.items[r.index]
		s = pr.rect[dim] - pr.margins[dim] - x
	}

	// the recursion above does not grow the arena, p is still valid
	switch flags {
	case Left:
		p.rect[dim] = x + p.margins[dim]
	case Right:
		p.rect[dim] = x + s - p.rect[wdim] - p.margins[wdim]
	case HFill:
		switch {
		case p.size[dim] > 0:
			// hard size, cannot stretch
			if !hasl {
				p.rect[dim] = x + p.margins[dim]
			} else {
				p.rect[dim] = x + s - p.rect[wdim] - p.margins[wdim]
			}
		case !hasl:
			p.rect[dim] = x + p.margins[dim]
			p.rect[wdim] = s - p.margins[dim] - p.margins[wdim]
		default:
			pp := &ctx.items[parent.index]
			slack := pp.rect[wdim] - pp.computed[dim]
			space := slack / *dyncount
			p.rect[wdim] = space - p.margins[dim] - p.margins[wdim]
			p.rect[dim] = x + s - p.rect[wdim] - p.margins[wdim]
		}
	default:
		// centered, leading margin is the offset
		p.rect[dim] = x + (s-p.rect[wdim])/2 + p.margins[dim]
	}
}
