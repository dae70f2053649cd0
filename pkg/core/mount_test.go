package core

import (
	"runtime"
	"testing"

	"github.com/go-weft/weft/pkg/dom"
	"github.com/go-weft/weft/pkg/errors"
)

func TestMountCallsRenderOncePerPass(t *testing.T) {
	counter := &testCounter{}
	node := Defer(func() Component[testCounterProps, testIncrement] { return counter },
		testCounterProps{label: "Count: 0"})

	live := instantiate(node)
	live.mount(&renderContext{})
	if counter.renders != 1 {
		t.Fatalf("expected 1 render after first mount, got %d", counter.renders)
	}

	live.mount(&renderContext{})
	if counter.renders != 2 {
		t.Fatalf("expected 2 renders after second mount, got %d", counter.renders)
	}
}

func TestHandlerIDsAreUnique(t *testing.T) {
	const n = 1000
	children := make([]*Node, n)
	for i := range children {
		children[i] = Literal(dom.Actionable(testIncrement{}, nil))
	}
	node := Literal(dom.Container(nil), children...)

	ctx := &renderContext{}
	bound := instantiate(node).mount(ctx)

	seen := make(map[uint64]bool, n)
	for _, child := range bound.Children {
		if child.ActionID == 0 {
			t.Fatal("expected every actionable to receive an id")
		}
		if seen[child.ActionID] {
			t.Fatalf("duplicate handler id %d", child.ActionID)
		}
		seen[child.ActionID] = true
	}
	if len(seen) != n {
		t.Fatalf("expected %d distinct ids, got %d", n, len(seen))
	}
}

func TestMountSkipsAbsentChildSlots(t *testing.T) {
	node := Literal(dom.Container(nil),
		Literal(dom.Text("A")),
		nil,
		Literal(dom.Text("B")),
	)

	bound := instantiate(node).mount(&renderContext{})
	if len(bound.Children) != 2 {
		t.Fatalf("expected 2 bound children, got %d", len(bound.Children))
	}
	if bound.Children[0].Text != "A" || bound.Children[1].Text != "B" {
		t.Errorf("expected children [A B] in order, got [%s %s]",
			bound.Children[0].Text, bound.Children[1].Text)
	}
}

func TestInstantiateDoesNotRender(t *testing.T) {
	counter := &testCounter{}
	node := Defer(func() Component[testCounterProps, testIncrement] { return counter },
		testCounterProps{})

	instantiate(node)
	if counter.renders != 0 {
		t.Fatalf("expected instantiate not to call Render, got %d renders", counter.renders)
	}
}

func TestComponentRenderingComponent(t *testing.T) {
	// A component whose render returns a deferred node: the runtime
	// keeps descending until a literal is produced.
	inner := &testCounter{}
	outer := Inline(
		func() struct{} { return struct{}{} },
		func(_ *struct{}, props string, _ []*Node) *Node {
			return Defer(func() Component[testCounterProps, testIncrement] { return inner },
				testCounterProps{label: props})
		},
		func(_ *struct{}, _ struct{}) {},
	)

	bound := instantiate(Defer(outer, "delegated")).mount(&renderContext{})
	if bound.Kind != dom.KindContainer {
		t.Fatalf("expected container at the root of the bound tree, got %s", bound.Kind)
	}
	if inner.renders != 1 {
		t.Fatalf("expected the delegated component to render once, got %d", inner.renders)
	}
	if bound.Children[0].Text != "delegated" {
		t.Errorf("expected props to flow through delegation, got %q", bound.Children[0].Text)
	}
}

func TestRegistrationOwnedByInnermostComponent(t *testing.T) {
	// Layout: outer component renders a container holding a deferred
	// inner component followed by its own actionable. The sibling
	// actionable must be attributed to the outer component, not to the
	// inner one mounted just before it.
	outerHits := 0
	outer := Inline(
		func() struct{} { return struct{}{} },
		func(_ *struct{}, _ struct{}, _ []*Node) *Node {
			return Literal(dom.Container(nil),
				Defer(newTestCounter, testCounterProps{label: "inner"}),
				Literal(dom.Actionable("outer-action", nil)),
			)
		},
		func(_ *struct{}, _ string) { outerHits++ },
	)

	ctx := &renderContext{}
	live := instantiate(Defer(outer, struct{}{}))
	bound := live.mount(ctx)

	reg := newRegistry()
	reg.merge(ctx.registrations)

	// Child 1 is the outer component's own actionable.
	id := bound.Children[1].ActionID
	if got := reg.dispatch(id); got != dispatchDelivered {
		t.Fatalf("dispatch result = %s, want delivered", got)
	}
	if outerHits != 1 {
		t.Fatalf("expected the outer component to receive its action, got %d hits", outerHits)
	}
	runtime.KeepAlive(live)
}

func TestMismatchedPropsTerminateMount(t *testing.T) {
	handler := &swallowHandler{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	node := Defer(newTestCounter, testCounterProps{label: "ok"})
	// Break the construction-time pairing by hand: the capability
	// expects testCounterProps.
	node.props = "wrong type"

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected mount to panic on mismatched props")
		}
		if _, ok := r.(*errors.ContractError); !ok {
			t.Fatalf("expected *errors.ContractError, got %T", r)
		}
	}()

	instantiate(node).mount(&renderContext{})
}

func TestMismatchedPropsTerminateClone(t *testing.T) {
	handler := &swallowHandler{}
	errors.SetHandler(handler)
	defer errors.SetHandler(nil)

	node := Defer(newTestCounter, testCounterProps{})
	node.props = 42

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("expected Clone to panic on mismatched props")
		}
	}()

	node.Clone()
}

// swallowHandler keeps contract reports out of the test output.
type swallowHandler struct{}

func (swallowHandler) HandleError(*errors.WeftError)        {}
func (swallowHandler) HandlePanic(*errors.PanicError)       {}
func (swallowHandler) HandleContract(*errors.ContractError) {}
