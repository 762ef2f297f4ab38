// Package uifile describes widget trees in YAML documents and builds them
// through a widget.Builder. A document names each item's kind, tag, size,
// anchors and margins, and binds checks, radios and sliders to caller values
// by name:
//
//	root:
//	  kind: panel
//	  layout: left|top
//	  size: [450, 400]
//	  children:
//	    - kind: column
//	      layout: top|hfill
//	      children:
//	        - {kind: button, tag: 1, text: Item 1, icon: [6, 3]}
//	        - {kind: check, tag: 12, text: Freeze, bind: option1}
package uifile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hubastard/oui/engine/ui"
)

// Document is a parsed tree description.
type Document struct {
	Root Node `yaml:"root"`
}

// Node describes one item and its children.
type Node struct {
	Kind    string `yaml:"kind"`
	Tag     *int64 `yaml:"tag,omitempty"`
	Text    string `yaml:"text,omitempty"`
	Icon    []int  `yaml:"icon,omitempty"`
	Size    []int  `yaml:"size,omitempty"`
	Layout  string `yaml:"layout,omitempty"`
	Margins []int  `yaml:"margins,omitempty"`

	Frozen bool `yaml:"frozen,omitempty"`
	// name of a bool binding read once at build time
	FrozenBind string `yaml:"frozen_bind,omitempty"`

	// name of the value a check, radio or slider edits
	Bind string `yaml:"bind,omitempty"`
	// name of the action a check runs after toggling
	OnChange string `yaml:"on_change,omitempty"`
	// buttons report clicks unless inert
	Inert bool `yaml:"inert,omitempty"`

	Children []Node `yaml:"children,omitempty"`

	line int
}

// UnmarshalYAML decodes the node and remembers its line for error messages.
func (n *Node) UnmarshalYAML(value *yaml.Node) error {
	type plain Node
	if err := value.Decode((*plain)(n)); err != nil {
		return err
	}
	n.line = value.Line
	return nil
}

// Line is the line of the node in its document, 0 for nodes built in code.
func (n *Node) Line() int { return n.line }

// Error reports an invalid document.
type Error struct {
	Line int
	Msg  string
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return "uifile: " + e.Msg
	}
	return fmt.Sprintf("uifile: line %d: %s", e.Line, e.Msg)
}

func errorf(n *Node, format string, args ...any) error {
	return &Error{Line: n.line, Msg: fmt.Sprintf(format, args...)}
}

// Load reads and parses the document at path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("uifile: failed to read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a document and checks its structure. Bindings are checked
// by Build.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("uifile: failed to parse document: %w", err)
	}
	if doc.Root.Kind == "" {
		return nil, &Error{Msg: "missing root"}
	}
	if doc.Root.Kind != "panel" {
		return nil, errorf(&doc.Root, "root must be a panel, got %q", doc.Root.Kind)
	}
	if err := check(&doc.Root, true); err != nil {
		return nil, err
	}
	return &doc, nil
}

var containers = map[string]bool{
	"panel":  true,
	"column": true,
	"vgroup": true,
	"row":    true,
	"hgroup": true,
}

var leaves = map[string]bool{
	"label":  true,
	"button": true,
	"check":  true,
	"radio":  true,
	"slider": true,
}

func check(n *Node, root bool) error {
	switch {
	case n.Kind == "panel" && !root:
		return errorf(n, "a panel can only be the root")
	case !containers[n.Kind] && !leaves[n.Kind]:
		return errorf(n, "unknown kind %q", n.Kind)
	case leaves[n.Kind] && len(n.Children) > 0:
		return errorf(n, "%s cannot have children", n.Kind)
	}
	if err := wantLen(n, "size", n.Size, 2); err != nil {
		return err
	}
	if err := wantLen(n, "margins", n.Margins, 4); err != nil {
		return err
	}
	if err := wantLen(n, "icon", n.Icon, 2); err != nil {
		return err
	}
	if _, err := ParseLayout(n.Layout); err != nil {
		return errorf(n, "%v", err)
	}
	switch n.Kind {
	case "check", "radio", "slider":
		if n.Bind == "" {
			return errorf(n, "%s needs a bind", n.Kind)
		}
	}
	if n.OnChange != "" && n.Kind != "check" {
		return errorf(n, "on_change only applies to checks")
	}
	if n.Inert && n.Kind != "button" {
		return errorf(n, "inert only applies to buttons")
	}
	for i := range n.Children {
		if err := check(&n.Children[i], false); err != nil {
			return err
		}
	}
	return nil
}

func wantLen(n *Node, field string, v []int, want int) error {
	if len(v) != 0 && len(v) != want {
		return errorf(n, "%s needs %d values, got %d", field, want, len(v))
	}
	return nil
}

var layoutNames = map[string]ui.LayoutFlags{
	"left":    ui.Left,
	"top":     ui.Top,
	"right":   ui.Right,
	"down":    ui.Down,
	"hfill":   ui.HFill,
	"vfill":   ui.VFill,
	"fill":    ui.Fill,
	"hcenter": ui.HCenter,
	"vcenter": ui.VCenter,
	"center":  ui.Center,
}

// ErrUnknownFlag is returned by ParseLayout for a name it does not know.
var ErrUnknownFlag = errors.New("unknown layout flag")

// ParseLayout turns "left|top"-style flag names into LayoutFlags. An empty
// string is the centered default.
func ParseLayout(s string) (ui.LayoutFlags, error) {
	var flags ui.LayoutFlags
	if strings.TrimSpace(s) == "" {
		return flags, nil
	}
	for _, name := range strings.Split(s, "|") {
		f, ok := layoutNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return 0, fmt.Errorf("%w %q", ErrUnknownFlag, name)
		}
		flags |= f
	}
	return flags, nil
}
