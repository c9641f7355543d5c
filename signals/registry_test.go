package signals

import (
	"errors"
	"testing"

	"github.com/fluxion-data/fluxion"
	fluxerrors "github.com/fluxion-data/fluxion/errors"
	"github.com/fluxion-data/fluxion/scope"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gctx = scope.NewGlobalContext(scope.TransitionBeginJob, scope.ProcessContext{ProcessName: "test"})

func TestHooksRunInRegistrationOrder(t *testing.T) {
	reg := NewRegistry()
	var order []string
	reg.OnPreBeginJob(func(scope.GlobalContext) error { order = append(order, "first"); return nil })
	reg.OnPreBeginJob(func(scope.GlobalContext) error { order = append(order, "second"); return nil })

	require.NoError(t, reg.EmitPreBeginJob(gctx))
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestFailingHookAbortsAndClassifies(t *testing.T) {
	cause := errors.New("service not ready")
	reg := NewRegistry()
	reg.OnPreEndJob(func(scope.GlobalContext) error { return cause })
	laterRan := false
	reg.OnPreEndJob(func(scope.GlobalContext) error { laterRan = true; return nil })

	err := reg.EmitPreEndJob(gctx)
	require.Error(t, err)
	assert.False(t, laterRan, "hooks after a failing one do not run")

	var hookErr *fluxerrors.HookError
	require.True(t, errors.As(err, &hookErr))
	assert.Equal(t, "pre_end_job", hookErr.Signal)
	assert.True(t, errors.Is(err, cause))
}

func TestEarlyTerminationNotifiesEveryListener(t *testing.T) {
	reg := NewRegistry()
	notified := 0
	reg.OnEarlyTermination(func(scope.GlobalContext, fluxion.TerminationOrigin) error {
		notified++
		return errors.New("listener one failed")
	})
	reg.OnEarlyTermination(func(scope.GlobalContext, fluxion.TerminationOrigin) error {
		notified++
		return errors.New("listener two failed")
	})

	err := reg.EmitEarlyTermination(gctx, fluxion.TerminationFromThisContext)
	require.Error(t, err)
	assert.Equal(t, 2, notified, "a failing listener never blocks the others")
	assert.Contains(t, err.Error(), "listener one failed")
}

func TestEmptyRegistryEmitsNothing(t *testing.T) {
	reg := NewRegistry()
	assert.NoError(t, reg.EmitPreBeginJob(gctx))
	assert.NoError(t, reg.EmitPostBeginJob(gctx))
	assert.NoError(t, reg.EmitPreEndJob(gctx))
	assert.NoError(t, reg.EmitPostEndJob(gctx))
	assert.NoError(t, reg.EmitEarlyTermination(gctx, fluxion.TerminationExternalSignal))
}
