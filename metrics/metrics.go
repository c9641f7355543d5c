package metrics

import (
	"github.com/streamingfast/dmetrics"
)

var Metricset = dmetrics.NewSet()

var BeginJobTransitions = Metricset.NewCounter("fluxion_begin_job_transitions", "Counter for begin-job transitions driven against the job slot")
var EndJobTransitions = Metricset.NewCounter("fluxion_end_job_transitions", "Counter for end-job transitions driven against the job slot")
var EndJobWorkerFailures = Metricset.NewCounter("fluxion_end_job_worker_failures", "Counter for per-worker failures collected during end-job")
var ModuleReplacements = Metricset.NewCounter("fluxion_module_replacements", "Counter for module implementations replaced across slots")
var ModuleDeletions = Metricset.NewCounter("fluxion_module_deletions", "Counter for module labels removed across slots")
