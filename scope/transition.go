package scope

import (
	"fmt"

	"go.uber.org/zap/zapcore"
)

// Transition is a whole-job lifecycle event, distinct from the per-event,
// per-run and per-lumi transitions driven by the steady-state engine.
type Transition int

const (
	TransitionBeginJob Transition = iota
	TransitionEndJob
)

func (t Transition) String() string {
	switch t {
	case TransitionBeginJob:
		return "begin_job"
	case TransitionEndJob:
		return "end_job"
	}
	return fmt.Sprintf("unknown(%d)", int(t))
}

// ProcessContext identifies the outer process a job runs in.
type ProcessContext struct {
	ProcessName string
}

func (p ProcessContext) String() string { return p.ProcessName }

// GlobalContext pairs a transition kind with the process it runs in. It is
// built fresh for each transition invocation and never mutated.
type GlobalContext struct {
	transition Transition
	process    ProcessContext
}

func NewGlobalContext(transition Transition, process ProcessContext) GlobalContext {
	return GlobalContext{transition: transition, process: process}
}

func (g GlobalContext) Transition() Transition  { return g.transition }
func (g GlobalContext) Process() ProcessContext { return g.process }

// String renders the context text attached to exceptions crossing this scope.
func (g GlobalContext) String() string {
	return fmt.Sprintf("during global %s transition in process %q", g.transition, g.process.ProcessName)
}

func (g GlobalContext) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddString("transition", g.transition.String())
	enc.AddString("process", g.process.ProcessName)
	return nil
}
