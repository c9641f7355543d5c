package schedule

import (
	"github.com/streamingfast/logging"
	"go.uber.org/zap"
)

var zlog *zap.Logger

func init() {
	zlog, _ = logging.PackageLogger("schedule", "github.com/fluxion-data/fluxion/schedule")
}
