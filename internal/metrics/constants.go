package metrics

// Metric names
const (
	MetricNameRPCsTotal          = "stumpy_rpcs_total"
	MetricNameRPCDuration        = "stumpy_rpc_duration_seconds"
	MetricNameEvaluationsTotal   = "stumpy_evaluations_total"
	MetricNameMutationsTotal     = "stumpy_mutations_total"
	MetricNameSnapshotsSaved     = "stumpy_snapshots_saved_total"
	MetricNameSnapshotsRestored  = "stumpy_snapshots_restored_total"
	MetricNameLocationsAvailable = "stumpy_locations_available"
)

// Help text
const (
	HelpTextRPCsTotal          = "Total number of tracker RPCs handled"
	HelpTextRPCDuration        = "Tracker RPC latency in seconds"
	HelpTextEvaluationsTotal   = "Total number of rule evaluations by kind and verdict"
	HelpTextMutationsTotal     = "Total number of tracker state mutations by operation"
	HelpTextSnapshotsSaved     = "Total number of snapshots saved"
	HelpTextSnapshotsRestored  = "Total number of snapshots restored"
	HelpTextLocationsAvailable = "Locations reading available at the last full listing"
)

// Label names
const (
	LabelMethod  = "method"
	LabelCode    = "code"
	LabelKind    = "kind"
	LabelVerdict = "verdict"
	LabelOp      = "op"
)

// Evaluation kinds
const (
	KindBoss     = "boss"
	KindLocation = "location"
)

// RPCLatencyBuckets are tuned for in-process rule evaluation
var RPCLatencyBuckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25}
