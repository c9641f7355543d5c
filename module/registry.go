package module

import (
	"fmt"

	"github.com/fluxion-data/fluxion/config"
	"github.com/fluxion-data/fluxion/errors"
)

// Constructor builds a module implementation from its configuration block.
type Constructor func(label string, block *config.Block) (Module, error)

// Registry maps configured module type names to their constructors. It is
// populated at process setup, before any coordinator is built, and read-only
// afterwards.
type Registry struct {
	constructors map[string]Constructor
}

func NewRegistry() *Registry {
	return &Registry{constructors: map[string]Constructor{}}
}

func (r *Registry) Register(typeName string, ctor Constructor) {
	if _, found := r.constructors[typeName]; found {
		panic(fmt.Sprintf("module type %q registered twice", typeName))
	}
	r.constructors[typeName] = ctor
}

// NewModule resolves the block's type and invokes its constructor. An unknown
// type or a failing constructor is a configuration error, fatal to the
// construction that requested it.
func (r *Registry) NewModule(label string, block *config.Block) (Module, error) {
	ctor, found := r.constructors[block.Type]
	if !found {
		return nil, errors.NewConfigurationError(label, fmt.Errorf("unknown module type %q", block.Type))
	}

	mod, err := ctor(label, block)
	if err != nil {
		return nil, errors.NewConfigurationError(label, err)
	}
	return mod, nil
}
