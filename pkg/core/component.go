package core

import (
	"reflect"

	"github.com/go-weft/weft/pkg/errors"
)

// Component is the strongly typed contract implemented by units of UI
// logic. P is the props type and M the message type. A component is
// constructed from nothing (default state) by the constructor captured
// at Defer time, renders a declarative node from its current props and
// declared children, and may mutate its own state when a message is
// delivered.
//
// Components that never receive messages implement OnMessage as a
// no-op.
type Component[P, M any] interface {
	Render(props P, children []*Node) *Node
	OnMessage(msg M)
}

// anyComponent is the type-erased face of a component instance. The
// tree holds heterogeneous component types behind this one shape;
// each concrete component's Render only ever sees its own props type.
type anyComponent interface {
	renderAny(props any, children []*Node) *Node
	handleMessageAny(msg any)
}

// adapter erases a Component's type parameters. The two recovery
// paths are deliberately asymmetric: a props mismatch is a
// construction-time contract violation and fatal, while a message
// mismatch is an expected outcome of asynchronous delivery and a
// silent no-op.
type adapter[P, M any] struct {
	impl Component[P, M]
}

func (a *adapter[P, M]) renderAny(props any, children []*Node) *Node {
	p, ok := props.(P)
	if !ok {
		errors.RaiseContract(&errors.ContractError{
			Component: reflect.TypeOf(a.impl).String(),
			Expected:  reflect.TypeFor[P]().String(),
			Got:       typeName(props),
		})
	}
	return a.impl.Render(p, children)
}

func (a *adapter[P, M]) handleMessageAny(msg any) {
	m, ok := msg.(M)
	if !ok {
		return
	}
	a.impl.OnMessage(m)
}

// handle owns one live component instance. Event-handler registrations
// hold only a weak reference to the handle, so a registration in the
// persistent registry never keeps an unmounted component alive.
type handle struct {
	component anyComponent
}

func typeName(v any) string {
	if v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(v).String()
}

// Inline builds a component constructor from closures, for quick
// self-contained fragments and tests. S is the state type; init
// produces the initial state for each fresh instance.
//
//	ctor := core.Inline(
//	    func() int { return 0 },
//	    func(count *int, props string, children []*core.Node) *core.Node {
//	        return core.Literal(dom.Text(fmt.Sprintf("%s: %d", props, *count)))
//	    },
//	    func(count *int, delta int) { *count += delta },
//	)
//	node := core.Defer(ctor, "Count")
//
// For components with many state fields or helper methods, implement
// [Component] on a named struct instead.
func Inline[S, P, M any](
	init func() S,
	render func(state *S, props P, children []*Node) *Node,
	onMessage func(state *S, msg M),
) func() Component[P, M] {
	return func() Component[P, M] {
		c := &inlineComponent[S, P, M]{
			renderFn:  render,
			messageFn: onMessage,
		}
		if init != nil {
			c.state = init()
		}
		return c
	}
}

type inlineComponent[S, P, M any] struct {
	state     S
	renderFn  func(state *S, props P, children []*Node) *Node
	messageFn func(state *S, msg M)
}

func (c *inlineComponent[S, P, M]) Render(props P, children []*Node) *Node {
	return c.renderFn(&c.state, props, children)
}

func (c *inlineComponent[S, P, M]) OnMessage(msg M) {
	if c.messageFn != nil {
		c.messageFn(&c.state, msg)
	}
}
