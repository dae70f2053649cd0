// Package core implements the retained-mode composition runtime:
// declarative component trees, the mount lifecycle that turns them
// into a live instance graph and a bound output tree, and the
// event-dispatch registry that routes handler ids back into the
// originating component.
//
// # Core Types
//
// Node is an immutable description of part of the UI. A deferred node
// ([Defer]) references a component type plus its props without
// instantiating it; a literal node ([Literal]) wraps a concrete
// dom.Fragment directly. Children lists may contain nil entries;
// absent slots are skipped when mounting.
//
// Component is the contract units of UI logic implement. Components
// are distinguished by reference, created when their deferred node is
// first instantiated, and destroyed when their live-graph position is
// dropped.
//
// Renderer owns the live graph and exposes the facade a host loop
// drives: Mount, Unmount, and OnMessage.
//
// # Mounting
//
// Mount walks the live graph depth-first, pre-order. Each live
// component calls Render exactly once per mount, instantiates the
// returned node, and mounts it; each live literal mounts its children
// in declaration order and builds one bound output node from its
// fragment and their results. Actionable fragments are assigned a
// process-unique handler id bound to the innermost enclosing
// component. There is no diffing: every mount is a full rebuild, and a
// re-mount replaces the renderer's previous subtree in the container.
//
// # Event Dispatch
//
// OnMessage looks the id up in the persistent registry, upgrades the
// registration's weak reference to the owning component, and delivers
// the stored payload through a checked type recovery. Unknown ids,
// dead references, and mismatched payload types are silently ignored:
// they are expected outcomes of asynchronous event delivery, such as a
// click arriving for a subtree that has since been unmounted.
// Registrations hold their owner weakly, so the registry never keeps
// an unmounted component alive.
//
// # Error Handling
//
// The only fatal condition in this package is a construction-time
// contract violation: a deferred node whose erased props do not hold
// the type its captured render path expects. That pairing is
// established inside [Defer] and cannot break under correct use of the
// API, so a violation panics with a structured error rather than
// returning one.
package core
