package ui

import "fmt"

// ViolationKind categorises a broken caller contract.
type ViolationKind int

const (
	// KindUnknown is never raised by this package.
	KindUnknown ViolationKind = iota
	// KindStaleItem is a None handle, an out of range handle, or a handle
	// kept across Clear.
	KindStaleItem
	// KindDoubleAppend is an Append of an item that already has a parent.
	KindDoubleAppend
	// KindSelfAppend is an Append of an item under itself or of the root.
	KindSelfAppend
	// KindCrossParentAnchor is a SetRelTo* between items of different parents.
	KindCrossParentAnchor
	// KindAnchorCycle is a chain of anchors that loops back on itself.
	KindAnchorCycle
	// KindNegativeSize is a SetSize with a negative width or height.
	KindNegativeSize
)

func (k ViolationKind) String() string {
	switch k {
	case KindStaleItem:
		return "stale item"
	case KindDoubleAppend:
		return "double append"
	case KindSelfAppend:
		return "self append"
	case KindCrossParentAnchor:
		return "cross-parent anchor"
	case KindAnchorCycle:
		return "anchor cycle"
	case KindNegativeSize:
		return "negative size"
	default:
		return "unknown"
	}
}

// ContractError is the panic value raised when the embedding code misuses a
// Context. None of these are recoverable conditions: the tree that produced
// one is malformed and must be rebuilt.
type ContractError struct {
	// Op is the Context method that detected the violation (e.g. "ui.Append").
	Op string
	// Kind categorises the violation.
	Kind ViolationKind
	// Item is the handle the operation was called with.
	Item Item
	// Other is the second handle involved, if any (parent, neighbour).
	Other Item
}

func (e *ContractError) Error() string {
	if e.Other.Valid() {
		return fmt.Sprintf("%s [%s]: item %s, other %s", e.Op, e.Kind, e.Item, e.Other)
	}
	return fmt.Sprintf("%s [%s]: item %s", e.Op, e.Kind, e.Item)
}

func violate(op string, kind ViolationKind, it, other Item) {
	panic(&ContractError{Op: op, Kind: kind, Item: it, Other: other})
}

// Catch runs fn and returns the contract violation it panicked with, or nil.
// Any other panic is propagated unchanged.
func Catch(fn func()) (err *ContractError) {
	defer func() {
		if r := recover(); r != nil {
			ce, ok := r.(*ContractError)
			if !ok {
				panic(r)
			}
			err = ce
		}
	}()
	fn()
	return nil
}
