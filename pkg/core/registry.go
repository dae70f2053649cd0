package core

import "weak"

// registration routes one handler id back to its owning component.
// The payload is stored by value and delivered by value, so payload
// types should be value-like. The owner is held weakly: a registration
// that outlives its mount must not keep the component alive.
type registration struct {
	id      uint64
	payload any
	owner   weak.Pointer[handle]
}

// registry is the renderer's persistent id to registration map.
type registry struct {
	handlers map[uint64]registration
}

func newRegistry() *registry {
	return &registry{handlers: make(map[uint64]registration)}
}

// merge adds registrations discovered in a mount pass. Ids are unique
// for the process lifetime, so no existing entry is ever overwritten.
func (r *registry) merge(regs []registration) {
	for _, reg := range regs {
		if _, exists := r.handlers[reg.id]; exists {
			continue
		}
		r.handlers[reg.id] = reg
	}
}

// dispatchResult describes the outcome of a dispatch attempt, for
// logging. Every outcome except delivery is deliberately inert.
type dispatchResult int

const (
	dispatchDelivered dispatchResult = iota
	dispatchUnknownID
	dispatchDeadOwner
)

func (d dispatchResult) String() string {
	switch d {
	case dispatchDelivered:
		return "delivered"
	case dispatchUnknownID:
		return "unknown id"
	case dispatchDeadOwner:
		return "dead owner"
	default:
		return "unknown"
	}
}

// dispatch resolves an id into a message delivery on exactly the right
// component instance, or safely does nothing. Unknown ids and dead
// owners are expected outcomes of asynchronous event delivery, not
// errors; a payload whose type the component does not declare is
// dropped inside handleMessageAny.
func (r *registry) dispatch(id uint64) dispatchResult {
	reg, ok := r.handlers[id]
	if !ok {
		return dispatchUnknownID
	}
	owner := reg.owner.Value()
	if owner == nil || owner.component == nil {
		return dispatchDeadOwner
	}
	owner.component.handleMessageAny(reg.payload)
	return dispatchDelivered
}

// clear drops every registration. Called when the renderer replaces or
// unmounts its bound subtree, so the registry stays bounded by the
// size of the current mount.
func (r *registry) clear() {
	clear(r.handlers)
}

func (r *registry) len() int {
	return len(r.handlers)
}
