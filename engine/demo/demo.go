// Package demo builds the showcase UI shared by the GL and terminal hosts.
package demo

import (
	"github.com/hubastard/oui/engine/ui"
	"github.com/hubastard/oui/engine/uifile"
	"github.com/hubastard/oui/engine/widget"
)

// AppData is the state the demo widgets edit.
type AppData struct {
	Enum1     int
	Progress1 float32
	Progress2 float32
	Option1   bool
	Option2   bool
	Option3   bool
	// tag of the last button clicked, NoTag until then
	LastClick ui.Tag
}

func NewAppData() *AppData {
	return &AppData{
		Progress1: 0.25,
		Progress2: 0.75,
		Option1:   true,
		LastClick: ui.NoTag,
	}
}

// Build clears the context and builds the demo tree over data. The root is
// a 450x400 panel 60px from the left edge; the right half of section 4
// starts frozen when Option1 is set.
func Build(b *widget.Builder, data *AppData) widget.Node {
	b.Context().Clear()

	onClick := func(tag ui.Tag) { data.LastClick = tag }
	icon := widget.IconAt(6, 3)

	root := b.Panel().
		Layout(ui.Left|ui.Top).
		Margins(60, 10, 0, 0).
		Size(450, 400)

	col := b.Column(root).
		Margins(10, 10, 10, 10).
		Layout(ui.Top | ui.HFill)

	b.Button(col, 1, icon, "Item 1", onClick)
	b.Button(col, 2, icon, "Item 2", onClick)

	{
		h := b.HGroup(col)
		b.Radio(h, 3, icon, "Item 3.0", &data.Enum1)
		b.Radio(h, 4, widget.IconAt(0, 10), "", &data.Enum1)
		b.Radio(h, 5, widget.IconAt(1, 10), "", &data.Enum1)
		b.Radio(h, 6, icon, "Item 3.3", &data.Enum1)
	}

	{
		row := b.Row(col)
		left := b.VGroup(row)
		b.Label(left, widget.NoIcon, "Items 4.0:")
		leftBody := b.VGroup(left)
		b.Button(leftBody, 7, icon, "Item 4.0.0", onClick)
		b.Button(leftBody, 8, icon, "Item 4.0.1", onClick)

		right := b.VGroup(row).Frozen(data.Option1)
		b.Label(right, widget.NoIcon, "Items 4.1:")
		rightBody := b.VGroup(right)
		b.Slider(rightBody, 9, "Item 4.1.0", &data.Progress1)
		b.Slider(rightBody, 10, "Item 4.1.1", &data.Progress2)
	}

	b.Button(col, 11, icon, "Item 5", nil)

	b.Check(col, 12, "Freeze section 4.1", &data.Option1, FreezeSection(b))
	b.Check(col, 13, "Item 7", &data.Option2, nil)
	b.Check(col, 14, "Item 8", &data.Option3, nil)

	b.Context().Layout()
	return root
}

// FreezeSection returns a check callback that freezes the last child of the
// item two places before the check, which in the demo is the right half of
// the row above the button above the check.
func FreezeSection(b *widget.Builder) func(*widget.Context, ui.Item, bool) {
	return func(ctx *widget.Context, it ui.Item, frozen bool) {
		row := ctx.PrevSibling(ctx.PrevSibling(it))
		if !row.Valid() {
			return
		}
		target := ctx.LastChild(row)
		if !target.Valid() {
			return
		}
		ctx.SetFrozen(target, frozen)
		b.Logf("freezing: #%d to '%t'", ctx.ChildID(target), frozen)
	}
}

// Bindings exposes data to tree documents. The names match the fields of
// AppData in lower case; "freeze" is the FreezeSection action.
func (d *AppData) Bindings(b *widget.Builder) uifile.Bindings {
	return uifile.Bindings{
		Bools: map[string]*bool{
			"option1": &d.Option1,
			"option2": &d.Option2,
			"option3": &d.Option3,
		},
		Ints: map[string]*int{
			"enum1": &d.Enum1,
		},
		Floats: map[string]*float32{
			"progress1": &d.Progress1,
			"progress2": &d.Progress2,
		},
		Actions: map[string]func(*widget.Context, ui.Item, bool){
			"freeze": FreezeSection(b),
		},
		OnClick: func(tag ui.Tag) { d.LastClick = tag },
	}
}
