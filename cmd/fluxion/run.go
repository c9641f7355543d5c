package main

import (
	"fmt"

	"github.com/fluxion-data/fluxion/app"
	"github.com/fluxion-data/fluxion/config"
	"github.com/fluxion-data/fluxion/module"
	"github.com/fluxion-data/fluxion/scope"
	"github.com/fluxion-data/fluxion/signals"
	"github.com/spf13/cobra"
	"github.com/streamingfast/derr"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run <config.yaml>",
	Short: "Run one whole-job lifecycle from a configuration file, then idle until interrupted",
	Args:  cobra.ExactArgs(1),
	RunE:  runE,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runE(cmd *cobra.Command, args []string) error {
	file, err := config.ReadFile(args[0])
	if err != nil {
		return err
	}

	registry := module.NewRegistry()
	registry.Register("log", newLogModule)

	reg := signals.NewRegistry()
	reg.OnPreBeginJob(func(gctx scope.GlobalContext) error {
		zlog.Debug("pre begin job", zap.Object("transition", gctx))
		return nil
	})
	reg.OnPostEndJob(func(gctx scope.GlobalContext) error {
		zlog.Debug("post end job", zap.Object("transition", gctx))
		return nil
	})

	japp := app.NewJob(zlog, &app.JobConfig{
		Process: scope.ProcessContext{ProcessName: file.Process},
		Counts:  file.Counts(),
		Labels:  file.Labels(),
		Source:  file.Source(),
	}, &app.JobModules{
		Factory: registry,
		Signals: reg,
	})

	signal := derr.SetupSignalHandler(0)
	go func() {
		<-signal
		japp.Shutdown(nil)
	}()

	if err := japp.Run(); err != nil {
		return fmt.Errorf("running job: %w", err)
	}

	<-japp.Terminated()
	return japp.Err()
}

// logModule does nothing but log its transitions, enough to exercise a full
// lifecycle from a config file.
type logModule struct {
	label string
}

func newLogModule(label string, block *config.Block) (module.Module, error) {
	return &logModule{label: label}, nil
}

func (m *logModule) BeginJob(gctx scope.GlobalContext) error {
	zlog.Info("module begin job", zap.String("label", m.label), zap.Object("transition", gctx))
	return nil
}

func (m *logModule) EndJob(gctx scope.GlobalContext) error {
	zlog.Info("module end job", zap.String("label", m.label), zap.Object("transition", gctx))
	return nil
}
