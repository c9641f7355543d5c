package worker

import (
	"github.com/streamingfast/logging"
	"go.uber.org/zap"
)

var zlog *zap.Logger

func init() {
	zlog, _ = logging.PackageLogger("worker", "github.com/fluxion-data/fluxion/worker")
}
