package app

import (
	"fmt"

	"github.com/fluxion-data/fluxion/config"
	"github.com/fluxion-data/fluxion/errors"
	"github.com/fluxion-data/fluxion/metrics"
	"github.com/fluxion-data/fluxion/schedule"
	"github.com/fluxion-data/fluxion/scope"
	"github.com/fluxion-data/fluxion/services"
	"github.com/fluxion-data/fluxion/signals"
	"github.com/fluxion-data/fluxion/worker"
	"github.com/streamingfast/dmetrics"
	"github.com/streamingfast/shutter"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

type JobConfig struct {
	Process scope.ProcessContext
	Counts  scope.Counts
	Labels  []string
	Source  config.Source
}

type JobModules struct {
	Factory  worker.Factory
	Signals  *signals.Registry
	Services services.Token
}

// JobApp runs one whole-job lifecycle: construction and begin-job on Run,
// end-job with aggregate failure reporting on termination.
type JobApp struct {
	*shutter.Shutter
	config  *JobConfig
	modules *JobModules
	logger  *zap.Logger

	coordinator *schedule.Coordinator
	isReady     *atomic.Bool
}

func NewJob(logger *zap.Logger, config *JobConfig, modules *JobModules) *JobApp {
	return &JobApp{
		Shutter: shutter.New(),
		config:  config,
		modules: modules,
		logger:  logger,

		isReady: atomic.NewBool(false),
	}
}

func (a *JobApp) Run() error {
	dmetrics.Register(metrics.Metricset)

	a.logger.Info("running fluxion job", zap.String("process", a.config.Process.ProcessName))

	reg := a.modules.Signals
	if reg == nil {
		reg = signals.NewRegistry()
	}

	coordinator, err := schedule.New(
		a.config.Process,
		a.config.Counts,
		a.modules.Factory,
		a.config.Source,
		a.config.Labels,
		schedule.WithSignals(reg),
	)
	if err != nil {
		return fmt.Errorf("constructing coordinator: %w", err)
	}
	a.coordinator = coordinator

	a.OnTerminating(func(_ error) {
		a.isReady.Store(false)
		a.endJob()
	})

	if err := a.coordinator.BeginJob(); err != nil {
		token := a.modules.Services
		if token == nil {
			token = services.NopToken{}
		}
		gctx := scope.NewGlobalContext(scope.TransitionBeginJob, a.config.Process)
		return fmt.Errorf("begin job: %w", a.coordinator.HandleTransitionFailure(gctx, token, false, err))
	}

	a.isReady.CompareAndSwap(false, true)
	return nil
}

// Coordinator exposes the running job's coordinator for administrative calls
// (module replacement and removal). Nil until Run succeeds.
func (a *JobApp) Coordinator() *schedule.Coordinator {
	return a.coordinator
}

func (a *JobApp) IsReady() bool {
	if a.IsTerminating() {
		return false
	}
	return a.isReady.Load()
}

// endJob reports collected failures without failing the shutdown itself.
func (a *JobApp) endJob() {
	if a.coordinator == nil {
		return
	}

	collector := errors.NewCollector()
	a.coordinator.EndJob(collector)

	if collector.HasErrors() {
		a.logger.Warn("end job completed with failures",
			zap.Int("failure_count", collector.Len()),
			zap.Error(collector.Err()),
		)
		return
	}
	a.logger.Info("end job completed cleanly")
}
