package components

import (
	"github.com/go-weft/weft/pkg/core"
)

// AppProps configures the demo application root.
type AppProps struct {
	Title string
}

// App is a root component that delegates its whole body to a Counter:
// its render returns a deferred node, exercising the
// component-renders-component path.
type App struct{}

// NewApp constructs the demo root component.
func NewApp() core.Component[AppProps, struct{}] {
	return &App{}
}

func (a *App) Render(props AppProps, children []*core.Node) *core.Node {
	return core.Defer(NewCounter, CounterProps{Label: props.Title})
}

func (a *App) OnMessage(struct{}) {}
