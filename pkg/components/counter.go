// Package components provides small illustrative components built on
// the core runtime. They double as living documentation of the
// component contract and as fixtures for the demo host.
package components

import (
	"fmt"

	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/dom"
)

// CounterProps configures a Counter.
type CounterProps struct {
	// Label prefixes the rendered count. Defaults to "Count".
	Label string
}

// Increment is the message that advances a Counter by one.
type Increment struct{}

// Counter renders a labelled count and an actionable element that
// increments it.
type Counter struct {
	count int
}

// NewCounter constructs a Counter with a zero count.
func NewCounter() core.Component[CounterProps, Increment] {
	return &Counter{}
}

func (c *Counter) Render(props CounterProps, children []*core.Node) *core.Node {
	label := props.Label
	if label == "" {
		label = "Count"
	}
	return core.Literal(dom.Container(map[string]string{"class": "counter"}),
		core.Literal(dom.Text(fmt.Sprintf("%s: %d", label, c.count))),
		core.Literal(dom.Actionable(Increment{}, map[string]string{"class": "counter-button"})),
	)
}

func (c *Counter) OnMessage(Increment) {
	c.count++
}

// Count returns the current count.
func (c *Counter) Count() int {
	return c.count
}
