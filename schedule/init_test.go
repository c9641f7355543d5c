package schedule

import (
	stderrors "errors"

	"github.com/fluxion-data/fluxion/config"
	"github.com/fluxion-data/fluxion/module"
	"github.com/fluxion-data/fluxion/scope"
	"github.com/streamingfast/logging"
	"go.uber.org/zap/zapcore"
)

func init() {
	logging.InstantiateLoggers(logging.WithDefaultLevel(zapcore.DebugLevel))
}

type fakeModule struct {
	label      string
	beginCalls int
	endCalls   int
	beginErr   error
	endErr     error
}

func (m *fakeModule) BeginJob(gctx scope.GlobalContext) error {
	m.beginCalls++
	return m.beginErr
}

func (m *fakeModule) EndJob(gctx scope.GlobalContext) error {
	m.endCalls++
	return m.endErr
}

// fakeFactory records every instance it builds, per label, in slot allocation
// order so tests can tell apart the job slot's instance (always last).
type fakeFactory struct {
	created map[string][]*fakeModule
	endErrs map[string]error
}

func newFakeFactory() *fakeFactory {
	return &fakeFactory{
		created: map[string][]*fakeModule{},
		endErrs: map[string]error{},
	}
}

func (f *fakeFactory) NewModule(label string, block *config.Block) (module.Module, error) {
	m := &fakeModule{label: label, endErr: f.endErrs[label]}
	f.created[label] = append(f.created[label], m)
	return m, nil
}

// jobSlotInstance returns the instance built for the job slot, relying on the
// job slot being allocated last.
func (f *fakeFactory) jobSlotInstance(label string) *fakeModule {
	instances := f.created[label]
	return instances[len(instances)-1]
}

func (f *fakeFactory) otherSlotInstances(label string) []*fakeModule {
	instances := f.created[label]
	return instances[:len(instances)-1]
}

type fakeToken struct {
	activations int
	releases    int
}

func (t *fakeToken) Activate() (release func()) {
	t.activations++
	return func() { t.releases++ }
}

var errBoom = stderrors.New("boom")

func testSource() config.MapSource {
	return config.MapSource{
		"a": {Type: "fake"},
		"b": {Type: "fake"},
		"c": {Type: "fake"},
	}
}
