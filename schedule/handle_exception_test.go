package schedule

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/fluxion-data/fluxion"
	"github.com/fluxion-data/fluxion/errors"
	"github.com/fluxion-data/fluxion/scope"
	"github.com/fluxion-data/fluxion/signals"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleTransitionFailureEnrichesOnce(t *testing.T) {
	factory := newFakeFactory()
	c := newTestCoordinator(t, factory)
	gctx := scope.NewGlobalContext(scope.TransitionBeginJob, testProcess)
	token := &fakeToken{}

	enriched := c.HandleTransitionFailure(gctx, token, false, errBoom)
	require.Error(t, enriched)
	assert.True(t, errors.HasTransitionContext(enriched))
	assert.True(t, stderrors.Is(enriched, errBoom))

	// re-handling the same failure across a nested scope duplicates nothing
	again := c.HandleTransitionFailure(gctx, token, true, enriched)
	assert.Equal(t, enriched.Error(), again.Error())

	assert.Equal(t, 2, token.activations)
	assert.Equal(t, 2, token.releases, "service scope must be released on every path")
}

func TestHandleTransitionFailureNilIsNil(t *testing.T) {
	factory := newFakeFactory()
	c := newTestCoordinator(t, factory)
	gctx := scope.NewGlobalContext(scope.TransitionEndJob, testProcess)

	assert.NoError(t, c.HandleTransitionFailure(gctx, &fakeToken{}, false, nil))
}

func TestTerminationSignalIsolation(t *testing.T) {
	reg := signals.NewRegistry()
	var sawOrigin fluxion.TerminationOrigin
	terminations := 0
	reg.OnEarlyTermination(func(gctx scope.GlobalContext, origin fluxion.TerminationOrigin) error {
		terminations++
		sawOrigin = origin
		return fmt.Errorf("termination hook blew up")
	})

	factory := newFakeFactory()
	c := newTestCoordinator(t, factory, WithSignals(reg))
	gctx := scope.NewGlobalContext(scope.TransitionBeginJob, testProcess)

	enriched := c.HandleTransitionFailure(gctx, &fakeToken{}, false, errBoom)
	require.Error(t, enriched)

	// the broadcast ran and failed, yet the caller only ever sees the
	// original failure
	assert.Equal(t, 1, terminations)
	assert.Equal(t, fluxion.TerminationFromThisContext, sawOrigin)
	assert.True(t, stderrors.Is(enriched, errBoom))
	assert.NotContains(t, enriched.Error(), "termination hook blew up")
}
