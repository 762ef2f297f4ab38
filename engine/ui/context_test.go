package ui

import (
	"strings"
	"testing"
)

func TestAppendLinksSiblings(t *testing.T) {
	ctx := New[string](8)
	root := ctx.NewItem("root")
	a := ctx.Append(root, ctx.NewItem("a"))
	b := ctx.Append(root, ctx.NewItem("b"))
	c := ctx.Append(root, ctx.NewItem("c"))

	if got := ctx.ChildCount(root); got != 3 {
		t.Fatalf("ChildCount(root) = %d, want 3", got)
	}
	if got := ctx.FirstChild(root); got != a {
		t.Errorf("FirstChild(root) = %v, want %v", got, a)
	}
	if got := ctx.LastChild(root); got != c {
		t.Errorf("LastChild(root) = %v, want %v", got, c)
	}
	if got := ctx.NextSibling(a); got != b {
		t.Errorf("NextSibling(a) = %v, want %v", got, b)
	}
	if got := ctx.PrevSibling(c); got != b {
		t.Errorf("PrevSibling(c) = %v, want %v", got, b)
	}
	if got := ctx.PrevSibling(a); got.Valid() {
		t.Errorf("PrevSibling(a) = %v, want none", got)
	}
	if got := ctx.NextSibling(c); got.Valid() {
		t.Errorf("NextSibling(c) = %v, want none", got)
	}
	for i, it := range []Item{a, b, c} {
		if got := ctx.ChildID(it); got != i {
			t.Errorf("ChildID(%v) = %d, want %d", it, got, i)
		}
		if got := ctx.Parent(it); got != root {
			t.Errorf("Parent(%v) = %v, want root", it, got)
		}
	}
	if got := ctx.Parent(root); got.Valid() {
		t.Errorf("Parent(root) = %v, want none", got)
	}
	if got := *ctx.Widget(b); got != "b" {
		t.Errorf("Widget(b) = %q, want %q", got, "b")
	}
}

func TestAppendNotifiesParent(t *testing.T) {
	ctx := New[int](4)
	root := ctx.NewItem(0)
	var kids []int
	ctx.SetHandler(root, func(ctx *Context[int], it Item, ev Event) {
		if ev != Append {
			t.Errorf("event = %v, want append", ev)
		}
		kids = append(kids, ctx.ChildID(ctx.LastChild(it)))
	}, Append)

	ctx.Append(root, ctx.NewItem(1))
	ctx.Append(root, ctx.NewItem(2))

	if len(kids) != 2 || kids[0] != 0 || kids[1] != 1 {
		t.Errorf("append notifications = %v, want [0 1]", kids)
	}
}

func TestAppendViolations(t *testing.T) {
	tests := []struct {
		name string
		run  func(ctx *Context[int], root, a, b Item)
		want ViolationKind
	}{
		{
			name: "double append",
			run:  func(ctx *Context[int], root, a, b Item) { ctx.Append(b, a) },
			want: KindDoubleAppend,
		},
		{
			name: "append to itself",
			run:  func(ctx *Context[int], root, a, b Item) { ctx.Append(b, b) },
			want: KindSelfAppend,
		},
		{
			name: "append root",
			run:  func(ctx *Context[int], root, a, b Item) { ctx.Append(b, root) },
			want: KindSelfAppend,
		},
		{
			name: "append none",
			run:  func(ctx *Context[int], root, a, b Item) { ctx.Append(root, None) },
			want: KindStaleItem,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := New[int](4)
			root := ctx.NewItem(0)
			a := ctx.Append(root, ctx.NewItem(1))
			b := ctx.NewItem(2)

			err := Catch(func() { tt.run(ctx, root, a, b) })
			if err == nil {
				t.Fatal("expected a contract violation")
			}
			if err.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", err.Kind, tt.want)
			}
			if err.Op != "ui.Append" {
				t.Errorf("Op = %q, want %q", err.Op, "ui.Append")
			}
			// nothing was re-parented
			if got := ctx.Parent(a); got != root {
				t.Errorf("Parent(a) = %v, want root", got)
			}
		})
	}
}

func TestAppendRejectsAncestor(t *testing.T) {
	ctx := New[int](4)
	root := ctx.NewItem(0)
	a := ctx.NewItem(1)
	b := ctx.Append(a, ctx.NewItem(2))

	err := Catch(func() { ctx.Append(b, a) })
	if err == nil || err.Kind != KindSelfAppend {
		t.Fatalf("Append(b, a) = %v, want self append", err)
	}
	ctx.Append(root, a)
	if got := ctx.Parent(a); got != root {
		t.Errorf("Parent(a) = %v, want root", got)
	}
}

func TestStaleHandleAfterClear(t *testing.T) {
	ctx := New[int](4)
	root := ctx.NewItem(0)
	old := ctx.Append(root, ctx.NewItem(1))
	ctx.Layout()

	ctx.Clear()
	if got := ctx.Count(); got != 0 {
		t.Fatalf("Count after Clear = %d, want 0", got)
	}
	if got := ctx.Root(); got.Valid() {
		t.Errorf("Root after Clear = %v, want none", got)
	}
	ctx.NewItem(0)
	ctx.NewItem(1)

	err := Catch(func() { ctx.Rect(old) })
	if err == nil {
		t.Fatal("Rect with a pre-clear handle did not fail")
	}
	if err.Kind != KindStaleItem {
		t.Errorf("Kind = %v, want %v", err.Kind, KindStaleItem)
	}
	if err := Catch(func() { ctx.Rect(root) }); err == nil {
		t.Error("pre-clear root handle accepted")
	}
}

func TestRelToViolations(t *testing.T) {
	ctx := New[int](8)
	root := ctx.NewItem(0)
	a := ctx.Append(root, ctx.NewItem(1))
	b := ctx.Append(root, ctx.NewItem(2))
	inner := ctx.Append(a, ctx.NewItem(3))

	tests := []struct {
		name string
		run  func()
		want ViolationKind
	}{
		{"across parents", func() { ctx.SetRelToLeft(b, inner) }, KindCrossParentAnchor},
		{"to itself", func() { ctx.SetRelToRight(a, a) }, KindCrossParentAnchor},
		{"stale other", func() { ctx.SetRelToTop(a, Item{index: 42}) }, KindStaleItem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Catch(tt.run)
			if err == nil {
				t.Fatal("expected a contract violation")
			}
			if err.Kind != tt.want {
				t.Errorf("Kind = %v, want %v", err.Kind, tt.want)
			}
		})
	}

	ctx.SetRelToLeft(b, a)
	if got := ctx.RelTo(b, EdgeLeft); got != a {
		t.Errorf("RelTo(b, left) = %v, want %v", got, a)
	}
	ctx.SetRelToLeft(b, None)
	if got := ctx.RelTo(b, EdgeLeft); got.Valid() {
		t.Errorf("RelTo(b, left) after reset = %v, want none", got)
	}
}

func TestConfigurationRoundTrip(t *testing.T) {
	ctx := New[int](2)
	it := ctx.NewItem(0)
	ctx.SetSize(it, 40, 21)
	ctx.SetMargins(it, 1, 2, 3, 4)
	ctx.SetLayout(it, HFill|Top)
	ctx.SetTag(it, 9)
	ctx.SetFrozen(it, true)

	if w, h := ctx.Size(it); w != 40 || h != 21 {
		t.Errorf("Size = %d,%d, want 40,21", w, h)
	}
	if l, tp, r, b := ctx.Margins(it); l != 1 || tp != 2 || r != 3 || b != 4 {
		t.Errorf("Margins = %d,%d,%d,%d, want 1,2,3,4", l, tp, r, b)
	}
	if got := ctx.LayoutFlags(it); got != HFill|Top {
		t.Errorf("LayoutFlags = %b, want %b", got, HFill|Top)
	}
	if got := ctx.Tag(it); got != 9 {
		t.Errorf("Tag = %d, want 9", got)
	}
	if !ctx.Frozen(it) {
		t.Error("Frozen = false, want true")
	}
	if got := ctx.Tag(ctx.NewItem(1)); got != NoTag {
		t.Errorf("default Tag = %d, want NoTag", got)
	}
}

func TestViolationKindString(t *testing.T) {
	tests := []struct {
		kind ViolationKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindStaleItem, "stale item"},
		{KindDoubleAppend, "double append"},
		{KindSelfAppend, "self append"},
		{KindCrossParentAnchor, "cross-parent anchor"},
		{KindAnchorCycle, "anchor cycle"},
		{KindNegativeSize, "negative size"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ViolationKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestContractErrorString(t *testing.T) {
	err := &ContractError{Op: "ui.Append", Kind: KindDoubleAppend, Item: Item{index: 3}, Other: Item{index: 1}}
	got := err.Error()
	for _, want := range []string{"ui.Append", "double append", "#3", "#1"} {
		if !strings.Contains(got, want) {
			t.Errorf("error string %q should contain %q", got, want)
		}
	}
	err.Other = None
	if got := err.Error(); strings.Contains(got, "other") {
		t.Errorf("error string %q should not mention other", got)
	}
}

func TestCatchPropagatesOtherPanics(t *testing.T) {
	defer func() {
		if r := recover(); r != "boom" {
			t.Errorf("recovered %v, want boom", r)
		}
	}()
	Catch(func() { panic("boom") })
	t.Error("Catch swallowed a foreign panic")
}

func TestEventString(t *testing.T) {
	tests := []struct {
		ev   Event
		want string
	}{
		{0, "none"},
		{Button0Down, "button0-down"},
		{Button0Up | Button0HotUp, "button0-up|button0-hot-up"},
		{Append, "append"},
	}
	for _, tt := range tests {
		if got := tt.ev.String(); got != tt.want {
			t.Errorf("Event(%d).String() = %q, want %q", tt.ev, got, tt.want)
		}
	}
}
