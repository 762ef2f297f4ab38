package ui

import (
	"strconv"
	"strings"
)

// Item is a handle into a Context's arena. It stays valid until the next
// Clear; a handle kept across Clear is rejected as stale.
type Item struct {
	index int32
	gen   uint32
}

// None is the handle that refers to no item.
var None = Item{index: -1}

func (it Item) Valid() bool { return it.index >= 0 }

// Index is the arena slot of it, or -1 for None.
func (it Item) Index() int { return int(it.index) }

func (it Item) String() string {
	if !it.Valid() {
		return "none"
	}
	return "#" + strconv.Itoa(int(it.index))
}

// Tag is an opaque caller id used to recognise an item across rebuilds.
type Tag int64

const NoTag Tag = -1

// LayoutFlags anchor an item's edges to its neighbours or to its parent.
// The horizontal bits shifted right by one give the vertical bits, which is
// how the solver reads both axes with the same masks.
type LayoutFlags uint32

const (
	// anchor to left item or left side of parent
	Left LayoutFlags = 1 << iota
	// anchor to top item or top side of parent
	Top
	// anchor to right item or right side of parent
	Right
	// anchor to bottom item or bottom side of parent
	Down

	HFill = Left | Right
	VFill = Top | Down
	Fill  = HFill | VFill

	// center horizontally, with the left margin as offset
	HCenter LayoutFlags = 0
	// center vertically, with the top margin as offset
	VCenter LayoutFlags = 0
	Center  LayoutFlags = 0
)

// axis returns the Left/Right pair of bits for a, with Top/Down mapped onto
// Left/Right for the vertical axis.
func (f LayoutFlags) axis(a Axis) LayoutFlags { return (f >> uint(a)) & HFill }

// Event is a bitmask of the interaction events a handler subscribes to.
type Event uint32

const (
	// button 0 pressed over the item
	Button0Down Event = 1 << iota
	// button 0 released after the item captured it; while subscribed, State
	// reports Active as long as the button is held
	Button0Up
	// button 0 released while the item is still under the cursor; while
	// subscribed, State reports Active only when the item is also hot
	Button0HotUp
	// button 0 held after pressing the item, fired every frame
	Button0Capture
	// the item received a new child
	Append
)

var eventNames = [...]string{"button0-down", "button0-up", "button0-hot-up", "button0-capture", "append"}

func (e Event) String() string {
	if e == 0 {
		return "none"
	}
	var parts []string
	for i, name := range eventNames {
		if e&(1<<uint(i)) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, "|")
}

// ItemState is the coarse interaction state handed to the drawing layer.
type ItemState int

const (
	// quiescent but usable
	Cold ItemState = iota
	// under the cursor
	Hot
	// pressed or capturing
	Active
	// administratively disabled
	Frozen
)

func (s ItemState) String() string {
	switch s {
	case Hot:
		return "hot"
	case Active:
		return "active"
	case Frozen:
		return "frozen"
	default:
		return "cold"
	}
}

// Handler receives the events an item subscribed to with SetHandler. It may
// mutate any item in ctx, including appending new ones.
type Handler[W any] func(ctx *Context[W], it Item, ev Event)

// Edge indexes margins and anchor neighbours.
type Edge int

const (
	EdgeLeft Edge = iota
	EdgeTop
	EdgeRight
	EdgeDown
)

type record[W any] struct {
	// declaration independent tag, see Context.SetTag
	tag    Tag
	widget W

	handler Handler[W]
	events  Event
	frozen  bool

	parent   Item
	firstKid Item
	lastKid  Item
	nextItem Item
	prevItem Item
	numKids  int
	// position among the parent's children
	kidID int

	flags    LayoutFlags
	size     [2]int  // explicit w,h; 0 means computed
	margins  [4]int  // left, top, right, down
	relTo    [4]Item // neighbours, indexed by Edge
	rect     [4]int  // x, y, w, h relative to parent
	computed [2]int  // largest fixed-size chain among the children
	sized    [2]bool // best size computed on axis
	placed   [2]bool // position resolved on axis
}

func newRecord[W any](w W) record[W] {
	return record[W]{
		tag:      NoTag,
		widget:   w,
		parent:   None,
		firstKid: None,
		lastKid:  None,
		nextItem: None,
		prevItem: None,
		relTo:    [4]Item{None, None, None, None},
	}
}
