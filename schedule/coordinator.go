package schedule

import (
	"fmt"

	"github.com/fluxion-data/fluxion/config"
	"github.com/fluxion-data/fluxion/errors"
	"github.com/fluxion-data/fluxion/metrics"
	"github.com/fluxion-data/fluxion/module"
	"github.com/fluxion-data/fluxion/scope"
	"github.com/fluxion-data/fluxion/signals"
	"github.com/fluxion-data/fluxion/worker"
	"go.uber.org/zap"
)

// Coordinator drives the whole-job lifecycle transitions of a single process:
// begin-job and end-job against the distinguished job slot, plus live module
// replacement and removal applied uniformly across every concurrency slot.
//
// It performs no scheduling of its own. Every operation runs synchronously on
// the calling goroutine, to completion. Construction and the administrative
// calls (ReplaceModule, DeleteModule) assume single-threaded access: callers
// must ensure no per-scope transition is concurrently driving a label while
// it is being replaced or deleted.
type Coordinator struct {
	process   scope.ProcessContext
	signals   *signals.Registry
	inserters []module.Inserter
	managers  []*worker.Manager
	jobSlot   *worker.Manager
}

// New populates one worker manager per concurrency slot with an isomorphic
// worker set: every configured label gets a distinct worker in every slot,
// then every inserter is installed in every slot. Labels without a
// configuration block are skipped; only insert-only modules resolve that way.
func New(
	process scope.ProcessContext,
	counts scope.Counts,
	factory worker.Factory,
	source config.Source,
	labels []string,
	opts ...Option,
) (*Coordinator, error) {
	c := &Coordinator{
		process: process,
		signals: signals.NewRegistry(),
	}

	for _, opt := range opts {
		opt(c)
	}

	refs := counts.Refs()
	c.managers = make([]*worker.Manager, 0, len(refs))
	for _, ref := range refs {
		m := worker.NewManager(ref, factory)
		c.managers = append(c.managers, m)
		if ref.IsJob() {
			c.jobSlot = m
		}
	}

	for _, label := range labels {
		block, found := source.Lookup(label)
		if !found {
			// Expected only for status-inserter labels, which are added
			// below without a configuration block.
			continue
		}
		for _, m := range c.managers {
			if _, err := m.GetWorker(label, block); err != nil {
				return nil, err
			}
		}
	}

	for _, ins := range c.inserters {
		for _, m := range c.managers {
			m.AddWorkerForModule(ins.Descriptor, ins.Module)
		}
	}

	zlog.Info("coordinator constructed",
		zap.Int("slot_count", len(c.managers)),
		zap.Int("module_count", len(c.jobSlot.Labels())),
		zap.String("process", process.ProcessName),
	)
	return c, nil
}

// BeginJob runs the one begin-job transition of the job's lifecycle, against
// the job slot only. The other slots are initialized later by the steady-state
// engine when they reach their own begin-scope transitions.
//
// The post signal runs on every path. When both the transition (or pre
// signal) and the post signal fail, the earlier failure propagates and the
// post signal's is discarded.
func (c *Coordinator) BeginJob() error {
	gctx := scope.NewGlobalContext(scope.TransitionBeginJob, c.process)
	zlog.Info("begin job", zap.Object("transition", gctx))
	metrics.BeginJobTransitions.Inc()

	var firstErr error
	if err := c.signals.EmitPreBeginJob(gctx); err != nil {
		firstErr = errors.WithTransitionContext(err, signalContext(gctx))
	} else if err := c.jobSlot.BeginJob(gctx); err != nil {
		firstErr = err
	}

	if err := c.signals.EmitPostBeginJob(gctx); err != nil && firstErr == nil {
		firstErr = errors.WithTransitionContext(err, signalContext(gctx))
	}
	return firstErr
}

// EndJob runs the one end-job transition against the job slot. It never fails
// to its caller: every failure, whether from a signal hook or from an
// individual worker, lands in the collector so shutdown attempts every
// remaining step despite partial failure.
func (c *Coordinator) EndJob(collector *errors.Collector) {
	gctx := scope.NewGlobalContext(scope.TransitionEndJob, c.process)
	zlog.Info("end job", zap.Object("transition", gctx))
	metrics.EndJobTransitions.Inc()

	var firstErr error
	if err := c.signals.EmitPreEndJob(gctx); err != nil {
		firstErr = errors.WithTransitionContext(err, signalContext(gctx))
	} else {
		before := collector.Len()
		c.jobSlot.EndJob(gctx, collector)
		metrics.EndJobWorkerFailures.AddInt(collector.Len() - before)
	}

	if err := c.signals.EmitPostEndJob(gctx); err != nil && firstErr == nil {
		firstErr = errors.WithTransitionContext(err, signalContext(gctx))
	}
	if firstErr != nil {
		collector.Collect(firstErr)
	}
}

// ReplaceModule substitutes the implementation bound to label in every slot,
// preserving each worker's identity and descriptor. An unknown label is a
// no-op: it means the module never existed under this coordinator, as with
// status-inserter labels.
//
// The job slot already passed its one begin-job transition, so its freshly
// substituted implementation is re-initialized with an equivalent begin-job
// call; the other slots get initialized normally when they reach their own
// begin-scope transition. A failure of that re-initialization propagates
// directly, unenriched.
func (c *Coordinator) ReplaceModule(label string, mod module.Module) error {
	if _, found := c.managers[0].Worker(label); !found {
		return nil
	}

	for _, m := range c.managers {
		w, found := m.Worker(label)
		if !found {
			return fmt.Errorf("slot symmetry violated: module %q bound in slot %s but missing in slot %s", label, c.managers[0].Slot(), m.Slot())
		}

		w.ReplaceImplementation(mod)
		if m.Slot().IsJob() {
			gctx := scope.NewGlobalContext(scope.TransitionBeginJob, c.process)
			if err := w.BeginJob(gctx); err != nil {
				return err
			}
		}
	}

	zlog.Info("module replaced", zap.String("label", label))
	metrics.ModuleReplacements.Inc()
	return nil
}

// DeleteModule removes the worker bound to label from every slot. Absence in
// any slot is not an error; no transition runs on removal.
func (c *Coordinator) DeleteModule(label string) {
	for _, m := range c.managers {
		m.DeleteWorkerIfExists(label)
	}
	zlog.Info("module deleted", zap.String("label", label))
	metrics.ModuleDeletions.Inc()
}

// ModuleDescriptions returns every worker's descriptor across all slots. A
// label bound in N slots contributes N entries; callers wanting one logical
// listing must deduplicate by label.
func (c *Coordinator) ModuleDescriptions() []module.Descriptor {
	var descs []module.Descriptor
	for _, m := range c.managers {
		for _, w := range m.AllWorkers() {
			descs = append(descs, w.Description())
		}
	}
	return descs
}

func signalContext(gctx scope.GlobalContext) string {
	return fmt.Sprintf("%s, handling signal, likely in a service function", gctx)
}
