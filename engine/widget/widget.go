// Package widget is the payload vocabulary of the demo UI: labels, buttons,
// checks, radios, sliders and the containers that arrange them. Every item
// of a widget tree stores one Widget; handlers registered by the Builder edit
// the caller's values through the pointers a widget holds.
package widget

import "github.com/hubastard/oui/engine/ui"

// Context is a UI context whose items carry widgets.
type Context = ui.Context[Widget]

const (
	// Height of every leaf widget.
	Height = 21
	// Width of an icon-only radio.
	ToolWidth = 20
)

// Widget is implemented by the pointer types of this package only.
type Widget interface {
	isWidget()
}

// Icon addresses a cell of a 16px icon sheet.
type Icon int

const NoIcon Icon = -1

// IconAt returns the icon at column x, row y of the sheet.
func IconAt(x, y int) Icon { return Icon(x | y<<8) }

func (i Icon) Cell() (x, y int) { return int(i) & 0xff, int(i) >> 8 }

type Label struct {
	Icon Icon
	Text string
}

type Button struct {
	Icon Icon
	Text string
	// called when the button is released under the cursor
	OnClick func(tag ui.Tag)
}

type Check struct {
	Text  string
	Value *bool
	// called after Value was toggled
	OnChange func(ctx *Context, it ui.Item, value bool)
}

// Radio is one option of a group. The selected option is the one whose
// position among its siblings equals *Value.
type Radio struct {
	Icon  Icon
	Text  string
	Value *int
}

type Slider struct {
	Text  string
	Value *float32
	// value when the current drag started
	anchor float32
}

// Row lays its children out left to right, Gap pixels apart.
type Row struct{ Gap int }

// Column stacks its children top to bottom, Gap pixels apart.
type Column struct{ Gap int }

type Panel struct{}

func (*Label) isWidget()  {}
func (*Button) isWidget() {}
func (*Check) isWidget()  {}
func (*Radio) isWidget()  {}
func (*Slider) isWidget() {}
func (*Row) isWidget()    {}
func (*Column) isWidget() {}
func (*Panel) isWidget()  {}

// Text returns the caption of w, or "" for containers.
func Text(w Widget) string {
	switch v := w.(type) {
	case *Label:
		return v.Text
	case *Button:
		return v.Text
	case *Check:
		return v.Text
	case *Radio:
		return v.Text
	case *Slider:
		return v.Text
	}
	return ""
}

// Kind names the widget type, as used in layout documents.
func Kind(w Widget) string {
	switch w.(type) {
	case *Label:
		return "label"
	case *Button:
		return "button"
	case *Check:
		return "check"
	case *Radio:
		return "radio"
	case *Slider:
		return "slider"
	case *Row:
		return "row"
	case *Column:
		return "column"
	case *Panel:
		return "panel"
	}
	return "unknown"
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
