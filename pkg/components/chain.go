package components

import (
	"github.com/go-weft/weft/pkg/core"
	"github.com/go-weft/weft/pkg/dom"
)

// ChainProps carries the text a Chain unrolls.
type ChainProps struct {
	Text string
}

// Chain renders the first rune of its text as a leaf and defers the
// rest to a fresh Chain instance, producing one nested container per
// rune. It exercises deep deferred recursion and absent child slots.
type Chain struct{}

// NewChain constructs a Chain.
func NewChain() core.Component[ChainProps, struct{}] {
	return &Chain{}
}

func (c *Chain) Render(props ChainProps, children []*core.Node) *core.Node {
	runes := []rune(props.Text)
	if len(runes) == 0 {
		return core.Literal(dom.Container(map[string]string{"class": "chain"}))
	}

	var rest *core.Node
	if len(runes) > 1 {
		rest = core.Defer(NewChain, ChainProps{Text: string(runes[1:])})
	}
	return core.Literal(dom.Container(map[string]string{"class": "chain"}),
		core.Literal(dom.Text(string(runes[0]))),
		rest,
	)
}

func (c *Chain) OnMessage(struct{}) {}
