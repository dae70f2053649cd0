package core

import (
	"fmt"
	"strings"
	"testing"

	"github.com/go-weft/weft/pkg/dom"
)

// scenarioCounter mirrors the counter from the demo components without
// importing them (that would cycle back into this package).
type scenarioCounter struct {
	count int
}

func (c *scenarioCounter) Render(props struct{}, children []*Node) *Node {
	return Literal(dom.Container(map[string]string{"class": "counter"}),
		Literal(dom.Text(fmt.Sprintf("Count: %d", c.count))),
		Literal(dom.Actionable(testIncrement{}, nil)),
	)
}

func (c *scenarioCounter) OnMessage(testIncrement) {
	c.count++
}

func TestRendererCounterScenario(t *testing.T) {
	counter := &scenarioCounter{}
	root := Literal(dom.Container(nil),
		Defer(func() Component[struct{}, testIncrement] { return counter }, struct{}{}),
	)
	container := dom.NewContainer(map[string]string{"id": "app"})
	renderer := NewRenderer(root, container)

	bound := renderer.Mount()
	if len(container.Children) != 1 || container.Children[0] != bound {
		t.Fatal("expected the bound subtree to be appended to the container")
	}

	counterNode := bound.Children[0]
	if counterNode.Attrs["class"] != "counter" {
		t.Fatalf("expected counter container, got attrs %v", counterNode.Attrs)
	}
	if got := counterNode.Children[0].Text; got != "Count: 0" {
		t.Fatalf("expected initial text %q, got %q", "Count: 0", got)
	}
	actionID := counterNode.Children[1].ActionID
	if actionID == 0 {
		t.Fatal("expected the actionable child to carry an id")
	}

	renderer.OnMessage(actionID)
	if counter.count != 1 {
		t.Fatalf("expected count == 1 after dispatch, got %d", counter.count)
	}

	// Re-mount without unmount: the previous subtree is replaced, not
	// duplicated, and component state survives.
	next := renderer.Mount()
	if len(container.Children) != 1 {
		t.Fatalf("expected re-mount to replace the subtree, container has %d children",
			len(container.Children))
	}
	if got := next.Children[0].Children[0].Text; got != "Count: 1" {
		t.Fatalf("expected re-rendered text %q, got %q", "Count: 1", got)
	}
}

func TestRendererOnMessageThreeTimes(t *testing.T) {
	counter := &scenarioCounter{}
	root := Literal(dom.Container(nil),
		Defer(func() Component[struct{}, testIncrement] { return counter }, struct{}{}),
	)
	renderer := NewRenderer(root, dom.NewContainer(nil))

	bound := renderer.Mount()
	id := bound.Children[0].Children[1].ActionID

	for range 3 {
		renderer.OnMessage(id)
	}
	if counter.count != 3 {
		t.Fatalf("expected count == 3, got %d", counter.count)
	}
}

func TestRendererUnknownIDIsInert(t *testing.T) {
	counter := &scenarioCounter{}
	root := Literal(dom.Container(nil),
		Defer(func() Component[struct{}, testIncrement] { return counter }, struct{}{}),
	)
	renderer := NewRenderer(root, dom.NewContainer(nil))
	renderer.Mount()

	renderer.OnMessage(0)
	renderer.OnMessage(1 << 60)
	if counter.count != 0 {
		t.Fatalf("expected unknown ids to leave state unchanged, got %d", counter.count)
	}
}

func TestRendererUnmountInvalidatesRegistrations(t *testing.T) {
	counter := &scenarioCounter{}
	root := Literal(dom.Container(nil),
		Defer(func() Component[struct{}, testIncrement] { return counter }, struct{}{}),
	)
	container := dom.NewContainer(nil)
	renderer := NewRenderer(root, container)

	bound := renderer.Mount()
	id := bound.Children[0].Children[1].ActionID

	renderer.Unmount()
	if len(container.Children) != 0 {
		t.Fatal("expected unmount to remove the bound subtree from the container")
	}
	if renderer.Bound() != nil {
		t.Fatal("expected no bound subtree after unmount")
	}

	renderer.OnMessage(id)
	if counter.count != 0 {
		t.Fatalf("expected dispatch after unmount to be inert, got %d", counter.count)
	}
}

func TestRendererMountAfterUnmountStartsFresh(t *testing.T) {
	instances := 0
	ctor := func() Component[struct{}, testIncrement] {
		instances++
		return &scenarioCounter{}
	}
	root := Literal(dom.Container(nil), Defer(ctor, struct{}{}))
	renderer := NewRenderer(root, dom.NewContainer(nil))

	renderer.Mount()
	if instances != 1 {
		t.Fatalf("expected 1 instance after first mount, got %d", instances)
	}

	renderer.Unmount()
	renderer.Mount()
	if instances != 2 {
		t.Fatalf("expected a fresh instance after unmount + mount, got %d", instances)
	}
}

func TestRendererRepeatedUnmountIsSafe(t *testing.T) {
	root := Literal(dom.Container(nil), Literal(dom.Text("x")))
	renderer := NewRenderer(root, dom.NewContainer(nil))

	renderer.Unmount()
	renderer.Mount()
	renderer.Unmount()
	renderer.Unmount()
}

func TestRendererBoundTreeListing(t *testing.T) {
	root := Literal(dom.Container(map[string]string{"class": "outer"}),
		Literal(dom.Text("hello")),
	)
	renderer := NewRenderer(root, dom.NewContainer(map[string]string{"id": "app"}))
	renderer.Mount()

	got := renderer.Container().String()
	want := `<div id="app"><div class="outer">hello</div></div>`
	if got != want {
		t.Errorf("listing = %s, want %s", got, want)
	}
	if !strings.Contains(got, "hello") {
		t.Error("expected listing to contain the text leaf")
	}
}
