package demo

import (
	"bytes"
	"log"
	"strings"
	"testing"

	"github.com/hubastard/oui/engine/ui"
	"github.com/hubastard/oui/engine/widget"
)

func build(t *testing.T) (*widget.Builder, *AppData, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	b := widget.NewBuilder(ui.New[widget.Widget](64), log.New(&buf, "", 0))
	data := NewAppData()
	Build(b, data)
	return b, data, &buf
}

func byTag(ctx *widget.Context, tag ui.Tag) ui.Item {
	found := ui.None
	widget.Walk(ctx, ctx.Root(), func(v widget.Visit) {
		if !found.Valid() && ctx.Tag(v.Item) == tag {
			found = v.Item
		}
	})
	return found
}

func center(ctx *widget.Context, it ui.Item) (int, int) {
	r := ctx.ScreenRect(it)
	return r.X + r.W/2, r.Y + r.H/2
}

func click(ctx *widget.Context, x, y int) {
	ctx.SetCursor(x, y)
	ctx.SetButton(0, true)
	ctx.Process()
	ctx.SetButton(0, false)
	ctx.Process()
}

func clickTag(t *testing.T, ctx *widget.Context, tag ui.Tag) {
	t.Helper()
	it := byTag(ctx, tag)
	if !it.Valid() {
		t.Fatalf("no item tagged %d", tag)
	}
	x, y := center(ctx, it)
	click(ctx, x, y)
}

func TestBuildTree(t *testing.T) {
	b, _, _ := build(t)
	ctx := b.Context()

	if got := ctx.Count(); got != 24 {
		t.Errorf("Count() = %d, want 24", got)
	}
	if got, want := ctx.Rect(ctx.Root()), (ui.Rect{X: 60, Y: 10, W: 450, H: 400}); got != want {
		t.Errorf("root rect = %+v, want %+v", got, want)
	}
	for tag := ui.Tag(1); tag <= 14; tag++ {
		if !byTag(ctx, tag).Valid() {
			t.Errorf("no item tagged %d", tag)
		}
	}
	section := ctx.Parent(ctx.Parent(byTag(ctx, 9)))
	if !ctx.Frozen(section) {
		t.Error("section 4.1 not frozen while Option1 is set")
	}
}

func TestBuildIsRepeatable(t *testing.T) {
	b, data, _ := build(t)
	ctx := b.Context()
	before := ctx.ScreenRect(byTag(ctx, 14))

	Build(b, data)
	if got := ctx.Count(); got != 24 {
		t.Errorf("Count() after rebuild = %d, want 24", got)
	}
	if got := ctx.ScreenRect(byTag(ctx, 14)); got != before {
		t.Errorf("check 14 moved from %+v to %+v", before, got)
	}
}

func TestFreezeCheckTogglesSection(t *testing.T) {
	b, data, buf := build(t)
	ctx := b.Context()
	section := ctx.Parent(ctx.Parent(byTag(ctx, 9)))

	clickTag(t, ctx, 12)
	if data.Option1 || ctx.Frozen(section) {
		t.Errorf("after one click Option1 = %t, frozen = %t, want both false", data.Option1, ctx.Frozen(section))
	}
	clickTag(t, ctx, 12)
	if !data.Option1 || !ctx.Frozen(section) {
		t.Errorf("after two clicks Option1 = %t, frozen = %t, want both true", data.Option1, ctx.Frozen(section))
	}
	if got := buf.String(); !strings.Contains(got, "freezing: #1 to 'false'") {
		t.Errorf("log = %q, want the freeze message", got)
	}
}

func TestSliderFollowsFreeze(t *testing.T) {
	b, data, _ := build(t)
	ctx := b.Context()
	slider := byTag(ctx, 9)
	r := ctx.ScreenRect(slider)
	x, y := center(ctx, slider)

	drag := func() {
		ctx.SetCursor(x, y)
		ctx.SetButton(0, true)
		ctx.Process()
		ctx.SetCursor(x+r.W/4, y)
		ctx.Process()
		ctx.SetButton(0, false)
		ctx.Process()
	}

	drag()
	if data.Progress1 != 0.25 {
		t.Errorf("frozen slider moved to %v", data.Progress1)
	}

	clickTag(t, ctx, 12)
	drag()
	want := 0.25 + float32(r.W/4)/float32(r.W)
	if data.Progress1 != want {
		t.Errorf("Progress1 = %v, want %v", data.Progress1, want)
	}
	if data.Progress2 != 0.75 {
		t.Errorf("Progress2 = %v, want it untouched", data.Progress2)
	}
}

func TestClicksEditData(t *testing.T) {
	tests := []struct {
		name  string
		tags  []ui.Tag
		check func(d *AppData) bool
	}{
		{"button", []ui.Tag{2}, func(d *AppData) bool { return d.LastClick == 2 }},
		{"left section button", []ui.Tag{8}, func(d *AppData) bool { return d.LastClick == 8 }},
		{"inert button", []ui.Tag{11}, func(d *AppData) bool { return d.LastClick == ui.NoTag }},
		{"icon radio", []ui.Tag{4}, func(d *AppData) bool { return d.Enum1 == 1 }},
		{"last radio", []ui.Tag{5, 6}, func(d *AppData) bool { return d.Enum1 == 3 }},
		{"checks", []ui.Tag{13, 14, 14}, func(d *AppData) bool { return d.Option2 && !d.Option3 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, data, _ := build(t)
			for _, tag := range tt.tags {
				clickTag(t, b.Context(), tag)
			}
			if !tt.check(data) {
				t.Errorf("unexpected data after clicking %v: %+v", tt.tags, *data)
			}
		})
	}
}

func TestSceneFrameRebuilds(t *testing.T) {
	s := NewScene(widget.NewBuilder(ui.New[widget.Widget](64), nil), nil)
	if err := s.Build(); err != nil {
		t.Fatal(err)
	}
	ctx := s.Context()
	x, y := center(ctx, byTag(ctx, 13))

	ctx.SetCursor(x, y)
	ctx.SetButton(0, true)
	if err := s.Frame(); err != nil {
		t.Fatal(err)
	}
	if !s.Data.Option2 {
		t.Error("Option2 not toggled by the press")
	}
	if got := ctx.Tag(ctx.ActiveItem()); got != 13 {
		t.Errorf("active tag after rebuild = %d, want 13", got)
	}

	ctx.SetButton(0, false)
	if err := s.Frame(); err != nil {
		t.Fatal(err)
	}
	if ctx.ActiveItem().Valid() {
		t.Error("an item is still active after the release")
	}
	if got := ctx.Count(); got != 24 {
		t.Errorf("Count() = %d, want 24", got)
	}
}
