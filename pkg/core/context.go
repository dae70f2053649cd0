package core

import (
	"sync/atomic"
	"weak"
)

// handlerID allocates process-unique handler ids. Ids start at 1;
// zero marks an unassigned action.
var handlerID atomic.Uint64

func nextHandlerID() uint64 {
	return handlerID.Add(1)
}

// renderContext is the ephemeral, per-mount-pass accumulator. It
// collects handler registrations discovered during the pass and tracks
// which live component is currently mounting, so new registrations are
// attributed to their owning component.
//
// A context lives for exactly one mount pass and is never shared
// between passes.
type renderContext struct {
	active        *handle
	registrations []registration
}

// register records a new handler registration for an actionable
// fragment and returns its id. The payload is captured by value at
// registration time; the owner is the innermost component enclosing
// the fragment, held weakly. An actionable outside any component gets
// a registration with no owner, which is inert at dispatch time.
func (ctx *renderContext) register(payload any) uint64 {
	reg := registration{
		id:      nextHandlerID(),
		payload: payload,
	}
	if ctx.active != nil {
		reg.owner = weak.Make(ctx.active)
	}
	ctx.registrations = append(ctx.registrations, reg)
	return reg.id
}
