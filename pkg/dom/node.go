// Package dom defines the output tree produced by mounting: a minimal
// catalog of container, text, and actionable nodes that a presentation
// layer turns into pixels, markup, or a terminal listing.
package dom

import (
	"fmt"
	"maps"
	"sort"
	"strings"
)

// Kind identifies the shape of a fragment or bound node.
type Kind int

const (
	// KindContainer is an element with attributes and children.
	KindContainer Kind = iota
	// KindText is a text leaf.
	KindText
	// KindActionable is a user-actionable element carrying a message
	// payload; mounting assigns it a handler id.
	KindActionable
)

func (k Kind) String() string {
	switch k {
	case KindContainer:
		return "container"
	case KindText:
		return "text"
	case KindActionable:
		return "actionable"
	default:
		return "unknown"
	}
}

// Fragment is the declarative literal payload carried by a literal
// node. It describes a single output element without children; the
// children live on the enclosing declarative node.
type Fragment struct {
	Kind  Kind
	Attrs map[string]string
	Text  string

	// Message is the payload delivered back to the owning component
	// when the actionable element fires. Only meaningful for
	// KindActionable. Stored by value; payload types should be
	// value-like so that copies are independent. A pointer payload is
	// copied as the pointer only, so the pointee is shared by every
	// dispatch of the same registration.
	Message any
}

// Container returns a container fragment with the given attributes.
func Container(attrs map[string]string) Fragment {
	return Fragment{Kind: KindContainer, Attrs: attrs}
}

// Text returns a text-leaf fragment.
func Text(text string) Fragment {
	return Fragment{Kind: KindText, Text: text}
}

// Actionable returns an actionable fragment carrying a message payload.
func Actionable(message any, attrs map[string]string) Fragment {
	return Fragment{Kind: KindActionable, Attrs: attrs, Message: message}
}

// Clone returns an independent copy of the fragment. The message
// payload is copied by value.
func (f Fragment) Clone() Fragment {
	clone := f
	clone.Attrs = maps.Clone(f.Attrs)
	return clone
}

// Node is a bound output node: the externally visible element produced
// by mounting a literal fragment. A Node is shared between the
// renderer and any ancestor container that embeds it.
type Node struct {
	Kind     Kind
	Attrs    map[string]string
	Text     string
	Children []*Node

	// ActionID is the handler id assigned at mount time. Zero for
	// non-actionable nodes.
	ActionID uint64
}

// NewContainer returns an empty bound container, typically used as the
// externally supplied mount target.
func NewContainer(attrs map[string]string) *Node {
	return &Node{Kind: KindContainer, Attrs: attrs}
}

// Append adds children to the container's child list.
func (n *Node) Append(children ...*Node) {
	n.Children = append(n.Children, children...)
}

// String renders the subtree as an HTML-like listing. Attributes are
// emitted in sorted order so output is stable.
func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	switch n.Kind {
	case KindText:
		b.WriteString(n.Text)
	case KindActionable:
		b.WriteString("<action")
		fmt.Fprintf(b, " id=\"%d\"", n.ActionID)
		writeAttrs(b, n.Attrs)
		b.WriteString(">")
		for _, child := range n.Children {
			child.write(b)
		}
		b.WriteString("</action>")
	default:
		b.WriteString("<div")
		writeAttrs(b, n.Attrs)
		b.WriteString(">")
		for _, child := range n.Children {
			child.write(b)
		}
		b.WriteString("</div>")
	}
}

func writeAttrs(b *strings.Builder, attrs map[string]string) {
	keys := make([]string, 0, len(attrs))
	for key := range attrs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(b, " %s=%q", key, attrs[key])
	}
}

// Walk visits the subtree depth-first, pre-order. The visitor returns
// false to stop the walk.
func (n *Node) Walk(visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(visit) {
			return false
		}
	}
	return true
}
