package module

import (
	"github.com/fluxion-data/fluxion/scope"
	"go.uber.org/zap/zapcore"
)

// Module is one configured unit of processing logic. The scheduler only ever
// drives its whole-job transitions; per-event, per-run and per-lumi execution
// belongs to the steady-state engine.
type Module interface {
	BeginJob(gctx scope.GlobalContext) error
	EndJob(gctx scope.GlobalContext) error
}

// Descriptor is the immutable identity of a module: its label and the
// configured type that produced it. It survives implementation replacement.
type Descriptor struct {
	Label string
	Type  string
}

func (d Descriptor) String() string {
	return d.Label + " (" + d.Type + ")"
}

func (d Descriptor) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("label", d.Label)
	enc.AddString("type", d.Type)
	return nil
}

// Inserter is a prebuilt module added to every slot without a configuration
// lookup, like the trigger-results and path-status inserters. The module
// allocation is shared across slots; each slot still gets its own Worker so
// slot-local state never aliases.
type Inserter struct {
	Descriptor Descriptor
	Module     Module
}
