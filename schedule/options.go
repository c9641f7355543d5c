package schedule

import (
	"github.com/fluxion-data/fluxion/module"
	"github.com/fluxion-data/fluxion/signals"
)

type Option func(c *Coordinator)

// WithSignals wires the registry whose pre/post hooks bracket every global
// transition. Without it the coordinator runs with an empty registry.
func WithSignals(reg *signals.Registry) Option {
	return func(c *Coordinator) {
		c.signals = reg
	}
}

// WithInserter adds a prebuilt module to every slot during construction,
// bypassing the configuration lookup. Used for the trigger-results inserter
// and the path/end-path status inserters.
func WithInserter(desc module.Descriptor, mod module.Module) Option {
	return func(c *Coordinator) {
		c.inserters = append(c.inserters, module.Inserter{Descriptor: desc, Module: mod})
	}
}
