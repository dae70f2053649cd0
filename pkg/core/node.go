package core

import (
	"reflect"

	"github.com/go-weft/weft/pkg/dom"
	"github.com/go-weft/weft/pkg/errors"
)

type nodeKind int

const (
	kindDeferred nodeKind = iota
	kindLiteral
)

// Node is an immutable, cheaply clonable description of part of the
// UI. It comes in two kinds: deferred (a not-yet-instantiated
// component reference carrying type-erased props) and literal (a
// concrete output fragment plus its declarative children).
//
// Children are an ordered list in which nil entries are legal; absent
// slots are skipped at mount time, not represented as placeholders.
type Node struct {
	kind nodeKind

	// Deferred: capabilities captured where the concrete component
	// type is known. construct builds a fresh, adapted instance;
	// cloneProps recovers the concrete props type and copies it.
	construct  func() *handle
	cloneProps func(any) any
	props      any

	// Literal: the output fragment this node describes directly.
	fragment dom.Fragment

	children []*Node
}

// Defer returns a deferred node for the component produced by
// construct, carrying props and the declared children. The constructor
// and the props-clone capability are captured together here, so the
// erased props always hold the type the render path expects; violating
// that pairing by hand is a programmer error and terminates the mount
// pass.
func Defer[P, M any](construct func() Component[P, M], props P, children ...*Node) *Node {
	return &Node{
		kind: kindDeferred,
		construct: func() *handle {
			return &handle{component: &adapter[P, M]{impl: construct()}}
		},
		cloneProps: clonePropsCapability[P](),
		props:      props,
		children:   children,
	}
}

// Literal returns a literal node wrapping an output fragment and the
// declared children.
func Literal(fragment dom.Fragment, children ...*Node) *Node {
	return &Node{
		kind:     kindLiteral,
		fragment: fragment,
		children: children,
	}
}

// clonePropsCapability returns the clone capability for props of type
// P. The capability recovers the concrete type from the erased value
// and returns an independent copy; props types should be value-like so
// that the copy shares no mutable state.
func clonePropsCapability[P any]() func(any) any {
	return func(erased any) any {
		p, ok := erased.(P)
		if !ok {
			errors.RaiseContract(&errors.ContractError{
				Component: "<clone>",
				Expected:  reflect.TypeFor[P]().String(),
				Got:       typeName(erased),
			})
		}
		return p
	}
}

// Clone returns an independent copy of the node and its children.
// Cloning a deferred node dispatches to the capability captured at
// construction time; the caller never needs to know the underlying
// props type.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	clone := &Node{kind: n.kind}
	switch n.kind {
	case kindDeferred:
		clone.construct = n.construct
		clone.cloneProps = n.cloneProps
		clone.props = n.cloneProps(n.props)
	case kindLiteral:
		clone.fragment = n.fragment.Clone()
	}
	if n.children != nil {
		clone.children = make([]*Node, len(n.children))
		for i, child := range n.children {
			clone.children[i] = child.Clone()
		}
	}
	return clone
}

// IsDeferred reports whether the node is a deferred component
// reference rather than a literal fragment.
func (n *Node) IsDeferred() bool {
	return n.kind == kindDeferred
}

// Fragment returns the output fragment of a literal node. The zero
// Fragment is returned for deferred nodes.
func (n *Node) Fragment() dom.Fragment {
	return n.fragment
}

// Children returns the node's declared children. Nil entries mark
// absent slots.
func (n *Node) Children() []*Node {
	return n.children
}
