package core

import (
	"log/slog"
	"slices"

	"github.com/go-weft/weft/pkg/dom"
)

// Renderer owns a live node graph, the bound output subtree it
// produces, and the persistent handler registry. All operations are
// synchronous and run to completion on the caller's goroutine; a
// Renderer must not be used from multiple goroutines concurrently.
type Renderer struct {
	initial   *Node
	root      liveNode
	container *dom.Node
	registry  *registry
	mounted   *dom.Node
	log       *slog.Logger
}

// NewRenderer creates a renderer for the given declarative tree. The
// bound subtree produced by Mount is appended to container's child
// list.
func NewRenderer(initial *Node, container *dom.Node) *Renderer {
	return &Renderer{
		initial:   initial,
		container: container,
		registry:  newRegistry(),
		log:       slog.Default(),
	}
}

// SetLogger overrides the renderer's logger. Pass nil to restore the
// process default.
func (r *Renderer) SetLogger(log *slog.Logger) {
	if log == nil {
		log = slog.Default()
	}
	r.log = log
}

// Mount instantiates the live graph if needed, mounts it, appends the
// bound subtree to the container, and merges the pass's handler
// registrations into the persistent registry.
//
// Re-mounting replaces: the previously appended subtree is removed
// from the container and registrations from earlier passes are
// invalidated, since the ids embedded in the replaced subtree are no
// longer reachable. Component state in the live graph survives a
// re-mount; mounting after Unmount starts from fresh instances.
func (r *Renderer) Mount() *dom.Node {
	if r.mounted != nil {
		r.detach()
		r.registry.clear()
	}
	if r.root == nil {
		r.root = instantiate(r.initial)
	}

	ctx := &renderContext{}
	bound := r.root.mount(ctx)
	r.container.Append(bound)
	r.mounted = bound
	r.registry.merge(ctx.registrations)

	r.log.Debug("mounted tree",
		"registrations", len(ctx.registrations),
		"registry_size", r.registry.len())
	return bound
}

// Unmount releases the mounted subtree: the live graph is unmounted
// and dropped, the bound subtree is removed from the container, and
// every handler registration is invalidated.
func (r *Renderer) Unmount() {
	if r.root != nil {
		r.root.unmount()
		r.root = nil
	}
	r.detach()
	r.registry.clear()
	r.log.Debug("unmounted tree")
}

// OnMessage resolves an inbound handler id. Unknown ids, ids whose
// owning component is no longer alive, and payloads the component does
// not understand are all silently ignored; this path never fails for
// inputs outside the caller's control.
func (r *Renderer) OnMessage(id uint64) {
	result := r.registry.dispatch(id)
	r.log.Debug("dispatched message", "id", id, "result", result.String())
}

// Bound returns the currently mounted bound subtree, or nil if nothing
// is mounted.
func (r *Renderer) Bound() *dom.Node {
	return r.mounted
}

// Container returns the externally supplied mount target.
func (r *Renderer) Container() *dom.Node {
	return r.container
}

// detach removes the previously appended bound subtree from the
// container's child list.
func (r *Renderer) detach() {
	if r.mounted == nil {
		return
	}
	r.container.Children = slices.DeleteFunc(r.container.Children, func(n *dom.Node) bool {
		return n == r.mounted
	})
	r.mounted = nil
}
