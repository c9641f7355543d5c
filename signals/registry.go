package signals

import (
	"github.com/fluxion-data/fluxion"
	"github.com/fluxion-data/fluxion/errors"
	"github.com/fluxion-data/fluxion/scope"
)

// Registry dispatches pre/post lifecycle hooks and early-termination
// notifications. Hooks run synchronously, in registration order, on the
// caller's goroutine.
type Registry struct {
	preBeginJob  []fluxion.GlobalHook
	postBeginJob []fluxion.GlobalHook
	preEndJob    []fluxion.GlobalHook
	postEndJob   []fluxion.GlobalHook
	termination  []fluxion.TerminationHook
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) OnPreBeginJob(h fluxion.GlobalHook)  { r.preBeginJob = append(r.preBeginJob, h) }
func (r *Registry) OnPostBeginJob(h fluxion.GlobalHook) { r.postBeginJob = append(r.postBeginJob, h) }
func (r *Registry) OnPreEndJob(h fluxion.GlobalHook)    { r.preEndJob = append(r.preEndJob, h) }
func (r *Registry) OnPostEndJob(h fluxion.GlobalHook)   { r.postEndJob = append(r.postEndJob, h) }

func (r *Registry) OnEarlyTermination(h fluxion.TerminationHook) {
	r.termination = append(r.termination, h)
}

func (r *Registry) EmitPreBeginJob(gctx scope.GlobalContext) error {
	return emit("pre_begin_job", r.preBeginJob, gctx)
}

func (r *Registry) EmitPostBeginJob(gctx scope.GlobalContext) error {
	return emit("post_begin_job", r.postBeginJob, gctx)
}

func (r *Registry) EmitPreEndJob(gctx scope.GlobalContext) error {
	return emit("pre_end_job", r.preEndJob, gctx)
}

func (r *Registry) EmitPostEndJob(gctx scope.GlobalContext) error {
	return emit("post_end_job", r.postEndJob, gctx)
}

// EmitEarlyTermination notifies every listener, even when one of them fails.
// The first failure is returned for logging; callers handling an earlier
// failure must not let it replace that one.
func (r *Registry) EmitEarlyTermination(gctx scope.GlobalContext, origin fluxion.TerminationOrigin) error {
	var firstErr error
	for _, hook := range r.termination {
		if err := hook(gctx, origin); err != nil && firstErr == nil {
			firstErr = errors.NewHookError("early_termination", err)
		}
	}
	return firstErr
}

func emit(signal string, hooks []fluxion.GlobalHook, gctx scope.GlobalContext) error {
	for _, hook := range hooks {
		if err := hook(gctx); err != nil {
			return errors.NewHookError(signal, err)
		}
	}
	return nil
}
