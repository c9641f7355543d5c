package fluxion

import (
	"github.com/fluxion-data/fluxion/scope"
)

// GlobalHook observes a global transition. Pre hooks run before the
// transition and may abort it by failing; post hooks run on every path,
// success or not.
type GlobalHook func(gctx scope.GlobalContext) error

// TerminationOrigin tells an early-termination listener why a transition is
// being abandoned.
type TerminationOrigin int

const (
	TerminationFromThisContext TerminationOrigin = iota
	TerminationFromAnotherContext
	TerminationExternalSignal
)

func (o TerminationOrigin) String() string {
	switch o {
	case TerminationFromThisContext:
		return "exception_from_this_context"
	case TerminationFromAnotherContext:
		return "exception_from_another_context"
	case TerminationExternalSignal:
		return "external_signal"
	}
	return "unknown"
}

// TerminationHook is notified when a global transition is abandoned because
// of a failure. A failing termination hook never surfaces to the transition's
// caller; the failure being handled always wins.
type TerminationHook func(gctx scope.GlobalContext, origin TerminationOrigin) error
