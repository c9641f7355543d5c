package module

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fluxion-data/fluxion/config"
	fluxerrors "github.com/fluxion-data/fluxion/errors"
	"github.com/fluxion-data/fluxion/scope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type staticModule struct{}

func (staticModule) BeginJob(scope.GlobalContext) error { return nil }
func (staticModule) EndJob(scope.GlobalContext) error   { return nil }

func TestRegistryBuildsRegisteredType(t *testing.T) {
	reg := NewRegistry()
	reg.Register("static", func(label string, block *config.Block) (Module, error) {
		return staticModule{}, nil
	})

	mod, err := reg.NewModule("parser", &config.Block{Type: "static"})
	require.NoError(t, err)
	assert.NotNil(t, mod)
}

func TestRegistryUnknownTypeIsConfigurationError(t *testing.T) {
	reg := NewRegistry()

	_, err := reg.NewModule("parser", &config.Block{Type: "ghost"})
	require.Error(t, err)

	var confErr *fluxerrors.ConfigurationError
	require.True(t, errors.As(err, &confErr))
	assert.Equal(t, "parser", confErr.Label)
	assert.Contains(t, err.Error(), "ghost")
}

func TestRegistryConstructorFailureIsConfigurationError(t *testing.T) {
	reg := NewRegistry()
	reg.Register("picky", func(label string, block *config.Block) (Module, error) {
		return nil, fmt.Errorf("missing required param")
	})

	_, err := reg.NewModule("parser", &config.Block{Type: "picky"})
	require.Error(t, err)

	var confErr *fluxerrors.ConfigurationError
	assert.True(t, errors.As(err, &confErr))
}

func TestRegistryDoubleRegistrationPanics(t *testing.T) {
	reg := NewRegistry()
	ctor := func(label string, block *config.Block) (Module, error) { return staticModule{}, nil }
	reg.Register("static", ctor)

	assert.Panics(t, func() { reg.Register("static", ctor) })
}
