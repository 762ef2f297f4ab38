package uifile

import (
	"github.com/hubastard/oui/engine/ui"
	"github.com/hubastard/oui/engine/widget"
)

// Bindings are the caller values a document refers to by name.
type Bindings struct {
	Bools   map[string]*bool
	Ints    map[string]*int
	Floats  map[string]*float32
	Actions map[string]func(ctx *widget.Context, it ui.Item, value bool)
	// called with the tag of every clicked button that is not inert
	OnClick func(tag ui.Tag)
}

// Build clears the builder's context, builds the document into it and lays
// it out. It returns the root panel.
func (d *Document) Build(b *widget.Builder, bind Bindings) (widget.Node, error) {
	b.Context().Clear()
	root := b.Panel()
	if err := apply(root, &d.Root, bind); err != nil {
		return root, err
	}
	if err := buildChildren(b, root, &d.Root, bind); err != nil {
		return root, err
	}
	b.Context().Layout()
	return root, nil
}

func buildChildren(b *widget.Builder, parent widget.Node, n *Node, bind Bindings) error {
	for i := range n.Children {
		kid := &n.Children[i]
		node, err := create(b, parent, kid, bind)
		if err != nil {
			return err
		}
		if err := apply(node, kid, bind); err != nil {
			return err
		}
		if err := buildChildren(b, node, kid, bind); err != nil {
			return err
		}
	}
	return nil
}

func create(b *widget.Builder, parent widget.Node, n *Node, bind Bindings) (widget.Node, error) {
	tag := ui.NoTag
	if n.Tag != nil {
		tag = ui.Tag(*n.Tag)
	}
	icon := widget.NoIcon
	if len(n.Icon) == 2 {
		icon = widget.IconAt(n.Icon[0], n.Icon[1])
	}

	switch n.Kind {
	case "column":
		return b.Column(parent), nil
	case "vgroup":
		return b.VGroup(parent), nil
	case "row":
		return b.Row(parent), nil
	case "hgroup":
		return b.HGroup(parent), nil
	case "label":
		return b.Label(parent, icon, n.Text), nil
	case "button":
		onClick := bind.OnClick
		if n.Inert {
			onClick = nil
		}
		return b.Button(parent, tag, icon, n.Text, onClick), nil
	case "check":
		v, ok := bind.Bools[n.Bind]
		if !ok {
			return widget.Node{}, errorf(n, "no bool binding %q", n.Bind)
		}
		var onChange func(*widget.Context, ui.Item, bool)
		if n.OnChange != "" {
			if onChange, ok = bind.Actions[n.OnChange]; !ok {
				return widget.Node{}, errorf(n, "no action %q", n.OnChange)
			}
		}
		return b.Check(parent, tag, n.Text, v, onChange), nil
	case "radio":
		v, ok := bind.Ints[n.Bind]
		if !ok {
			return widget.Node{}, errorf(n, "no int binding %q", n.Bind)
		}
		return b.Radio(parent, tag, icon, n.Text, v), nil
	case "slider":
		v, ok := bind.Floats[n.Bind]
		if !ok {
			return widget.Node{}, errorf(n, "no float binding %q", n.Bind)
		}
		return b.Slider(parent, tag, n.Text, v), nil
	}
	return widget.Node{}, errorf(n, "unknown kind %q", n.Kind)
}

// apply sets what the document overrides on top of the constructor and the
// parent's append handler.
func apply(node widget.Node, n *Node, bind Bindings) error {
	if n.Tag != nil && node.Context().Tag(node.Item()) == ui.NoTag {
		node.Tag(ui.Tag(*n.Tag))
	}
	if len(n.Size) == 2 {
		node.Size(n.Size[0], n.Size[1])
	}
	if n.Layout != "" {
		flags, err := ParseLayout(n.Layout)
		if err != nil {
			return errorf(n, "%v", err)
		}
		node.Layout(flags)
	}
	if len(n.Margins) == 4 {
		node.Margins(n.Margins[0], n.Margins[1], n.Margins[2], n.Margins[3])
	}
	frozen := n.Frozen
	if n.FrozenBind != "" {
		v, ok := bind.Bools[n.FrozenBind]
		if !ok {
			return errorf(n, "no bool binding %q", n.FrozenBind)
		}
		frozen = frozen || *v
	}
	if frozen {
		node.Frozen(true)
	}
	return nil
}
