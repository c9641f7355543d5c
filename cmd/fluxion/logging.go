package main

import (
	"github.com/streamingfast/logging"
)

var zlog, tracer = logging.RootLogger("fluxion", "github.com/fluxion-data/fluxion/cmd/fluxion")

func init() {
	logging.InstantiateLoggers(logging.WithSwitcherServerAutoStart())
}
