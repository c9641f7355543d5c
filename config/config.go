package config

import (
	"fmt"
	"os"

	"github.com/fluxion-data/fluxion/scope"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
	"gopkg.in/yaml.v3"
)

// Block is the configuration of a single module, keyed by label in the
// enclosing job configuration.
type Block struct {
	Type   string         `yaml:"type"`
	Params map[string]any `yaml:"params,omitempty"`
}

// Source resolves a module label to its configuration block. Absence is not
// an error at this level: insert-only modules legitimately resolve to no
// configuration.
type Source interface {
	Lookup(label string) (*Block, bool)
}

// MapSource is an in-memory Source, used directly in tests and as the backing
// of file-based configurations.
type MapSource map[string]*Block

func (s MapSource) Lookup(label string) (*Block, bool) {
	block, found := s[label]
	return block, found
}

// File is a whole-job configuration document.
type File struct {
	Process string            `yaml:"process"`
	Slots   SlotCounts        `yaml:"slots"`
	Modules map[string]*Block `yaml:"modules"`
}

type SlotCounts struct {
	Lumis         int `yaml:"lumis"`
	Runs          int `yaml:"runs"`
	ProcessBlocks int `yaml:"process_blocks"`
}

func ReadFile(path string) (*File, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	file := &File{}
	if err := yaml.Unmarshal(content, file); err != nil {
		return nil, fmt.Errorf("unmarshalling config file %q: %w", path, err)
	}

	if file.Process == "" {
		return nil, fmt.Errorf("config file %q: missing 'process' name", path)
	}

	return file, nil
}

func (f *File) Counts() scope.Counts {
	return scope.Counts{
		Lumis:         f.Slots.Lumis,
		Runs:          f.Slots.Runs,
		ProcessBlocks: f.Slots.ProcessBlocks,
	}
}

func (f *File) Source() Source {
	return MapSource(f.Modules)
}

// Labels returns the configured module labels in deterministic order.
func (f *File) Labels() []string {
	labels := maps.Keys(f.Modules)
	slices.Sort(labels)
	return labels
}
