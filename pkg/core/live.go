package core

import (
	"maps"

	"github.com/go-weft/weft/pkg/dom"
)

// liveNode is the mount-time counterpart of a declarative node.
type liveNode interface {
	// mount walks the subtree depth-first, pre-order, producing the
	// bound output node and recording handler registrations in ctx.
	mount(ctx *renderContext) *dom.Node
	// unmount releases the subtree's resources. Dropping the live
	// graph is what lets the weak references held by stale
	// registrations expire.
	unmount()
}

// instantiate converts one declarative node into one live node. It
// does not recurse into children and does not call Render; children
// are instantiated only as their subtree is mounted.
func instantiate(node *Node) liveNode {
	switch node.kind {
	case kindDeferred:
		return &liveComponent{handle: node.construct(), node: node}
	default:
		return &liveLiteral{node: node}
	}
}

// liveComponent owns a component instance created from a deferred
// node. Its rendered subtree is produced lazily on first mount and
// replaced by every subsequent mount.
type liveComponent struct {
	handle   *handle
	node     *Node
	rendered liveNode
}

func (c *liveComponent) mount(ctx *renderContext) *dom.Node {
	// The active-component slot follows stack discipline so that it
	// always reflects the innermost enclosing component at the point
	// a registration is created.
	prev := ctx.active
	ctx.active = c.handle
	defer func() { ctx.active = prev }()

	// Render is called fresh on every mount; there is no memoization
	// or diffing. The returned node may itself be deferred (one
	// component delegating to another) or literal.
	rendered := c.handle.component.renderAny(c.node.props, c.node.children)
	c.rendered = instantiate(rendered)
	return c.rendered.mount(ctx)
}

func (c *liveComponent) unmount() {
	if c.rendered != nil {
		c.rendered.unmount()
		c.rendered = nil
	}
	c.handle = nil
}

// liveLiteral binds a literal node to the output node it produces on
// mount.
type liveLiteral struct {
	node     *Node
	bound    *dom.Node
	children []liveNode
}

func (l *liveLiteral) mount(ctx *renderContext) *dom.Node {
	l.children = nil
	var bound []*dom.Node
	for _, child := range l.node.children {
		if child == nil {
			continue
		}
		live := instantiate(child)
		l.children = append(l.children, live)
		bound = append(bound, live.mount(ctx))
	}

	frag := l.node.fragment
	out := &dom.Node{
		Kind:     frag.Kind,
		Attrs:    maps.Clone(frag.Attrs),
		Text:     frag.Text,
		Children: bound,
	}
	if frag.Kind == dom.KindActionable {
		out.ActionID = ctx.register(frag.Message)
	}
	l.bound = out
	return out
}

func (l *liveLiteral) unmount() {
	for _, child := range l.children {
		child.unmount()
	}
	l.children = nil
	l.bound = nil
}
