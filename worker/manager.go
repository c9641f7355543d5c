package worker

import (
	"fmt"

	"github.com/fluxion-data/fluxion/config"
	"github.com/fluxion-data/fluxion/errors"
	"github.com/fluxion-data/fluxion/module"
	"github.com/fluxion-data/fluxion/scope"
	"go.uber.org/zap"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Factory produces module implementations from configuration blocks.
type Factory interface {
	NewModule(label string, block *config.Block) (module.Module, error)
}

// Manager owns the workers of a single concurrency slot. Access is
// single-threaded during construction and administrative calls; the manager
// holds no lock of its own.
type Manager struct {
	slot    scope.Ref
	factory Factory
	workers map[string]*Worker
}

func NewManager(slot scope.Ref, factory Factory) *Manager {
	return &Manager{
		slot:    slot,
		factory: factory,
		workers: map[string]*Worker{},
	}
}

func (m *Manager) Slot() scope.Ref { return m.slot }

// GetWorker returns this slot's worker for label, building it through the
// factory on first request. Requesting a label already present returns the
// existing worker without reconstruction.
func (m *Manager) GetWorker(label string, block *config.Block) (*Worker, error) {
	if w, found := m.workers[label]; found {
		return w, nil
	}

	mod, err := m.factory.NewModule(label, block)
	if err != nil {
		return nil, fmt.Errorf("slot %s: %w", m.slot, err)
	}

	w := newWorker(module.Descriptor{Label: label, Type: block.Type}, mod)
	m.workers[label] = w
	return w, nil
}

// AddWorkerForModule installs a prebuilt module (an inserter) under its
// descriptor's label, without a configuration lookup. Idempotent like
// GetWorker.
func (m *Manager) AddWorkerForModule(desc module.Descriptor, mod module.Module) *Worker {
	if w, found := m.workers[desc.Label]; found {
		return w
	}
	w := newWorker(desc, mod)
	m.workers[desc.Label] = w
	return w
}

func (m *Manager) Worker(label string) (*Worker, bool) {
	w, found := m.workers[label]
	return w, found
}

func (m *Manager) DeleteWorkerIfExists(label string) {
	delete(m.workers, label)
}

// Labels returns the labels bound in this slot, sorted.
func (m *Manager) Labels() []string {
	labels := maps.Keys(m.workers)
	slices.Sort(labels)
	return labels
}

// AllWorkers returns this slot's workers in label order.
func (m *Manager) AllWorkers() []*Worker {
	workers := make([]*Worker, 0, len(m.workers))
	for _, label := range m.Labels() {
		workers = append(workers, m.workers[label])
	}
	return workers
}

// BeginJob runs begin-job on every worker of this slot, stopping at the first
// failure.
func (m *Manager) BeginJob(gctx scope.GlobalContext) error {
	for _, w := range m.AllWorkers() {
		zlog.Debug("begin job", zap.Object("slot", m.slot), zap.Object("module", w.Description()))
		if err := w.BeginJob(gctx); err != nil {
			return err
		}
	}
	return nil
}

// EndJob runs end-job on every worker of this slot, handing each failure to
// the collector so one failing module never prevents the others from ending.
func (m *Manager) EndJob(gctx scope.GlobalContext, collector *errors.Collector) {
	for _, w := range m.AllWorkers() {
		zlog.Debug("end job", zap.Object("slot", m.slot), zap.Object("module", w.Description()))
		if err := w.EndJob(gctx); err != nil {
			collector.Collect(err)
		}
	}
}
