package schedule

import (
	"github.com/fluxion-data/fluxion"
	"github.com/fluxion-data/fluxion/errors"
	"github.com/fluxion-data/fluxion/scope"
	"github.com/fluxion-data/fluxion/services"
	"go.uber.org/zap"
)

// HandleTransitionFailure enriches, reports and broadcasts a failure crossing
// a global transition boundary, then returns the enriched failure for the
// caller to propagate.
//
// Enrichment is idempotent: in most cases the failure already carries context
// by the time it reaches here, and it is attached only in the rare cases it
// does not. The service token is borrowed for the duration of the report and
// broadcast only.
func (c *Coordinator) HandleTransitionFailure(gctx scope.GlobalContext, token services.Token, cleaningUp bool, err error) error {
	if err == nil {
		return nil
	}
	err = errors.WithTransitionContext(err, gctx.String())

	release := token.Activate()
	defer release()

	zlog.Error("global transition failed",
		zap.Object("transition", gctx),
		zap.Bool("cleaning_up_after_earlier_failure", cleaningUp),
		zap.Error(err),
	)

	// We are already handling a failure; a failing termination hook must
	// never replace it.
	if termErr := c.signals.EmitEarlyTermination(gctx, fluxion.TerminationFromThisContext); termErr != nil {
		zlog.Debug("early termination hook failed while handling an earlier failure", zap.Error(termErr))
	}

	return err
}
