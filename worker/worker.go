package worker

import (
	"fmt"

	"github.com/fluxion-data/fluxion/module"
	"github.com/fluxion-data/fluxion/scope"
	"go.uber.org/atomic"
)

// Worker binds one module label to the implementation currently installed in
// one concurrency slot. The label-to-Worker binding is stable: replacing the
// implementation swaps the handle atomically and leaves the Worker's identity
// and descriptor untouched.
type Worker struct {
	desc module.Descriptor
	impl atomic.Pointer[implHandle]
}

// implHandle boxes the module interface value so the swap is a single pointer
// store, with no aliasing window between old and new implementation.
type implHandle struct {
	mod module.Module
}

func newWorker(desc module.Descriptor, mod module.Module) *Worker {
	w := &Worker{desc: desc}
	w.impl.Store(&implHandle{mod: mod})
	return w
}

func (w *Worker) Description() module.Descriptor { return w.desc }

// ReplaceImplementation atomically substitutes the running implementation.
// Callers must ensure no per-scope transition is concurrently driving this
// label; the atomic swap protects readers of the handle, not the module's own
// state.
func (w *Worker) ReplaceImplementation(mod module.Module) {
	w.impl.Store(&implHandle{mod: mod})
}

func (w *Worker) BeginJob(gctx scope.GlobalContext) error {
	if err := w.impl.Load().mod.BeginJob(gctx); err != nil {
		return fmt.Errorf("module %q begin job: %w", w.desc.Label, err)
	}
	return nil
}

func (w *Worker) EndJob(gctx scope.GlobalContext) error {
	if err := w.impl.Load().mod.EndJob(gctx); err != nil {
		return fmt.Errorf("module %q end job: %w", w.desc.Label, err)
	}
	return nil
}
