// control/platform.go
// Author: momentics <momentics@gmail.com>
//
// Processor count probes and metrics.

package control

import (
	"github.com/momentics/hioload-cpuinfo/cpuinfo"
)

// Probe and metric keys.
const (
	ProbeCPUs      = "platform.cpus"
	ProbeCPUsKnown = "platform.cpus.known"

	MetricCPULookups        = "platform.cpus.lookups"
	MetricCPULookupFailures = "platform.cpus.lookup_failures"
)

// RegisterPlatformProbes registers processor count probes backed by the host query.
func RegisterPlatformProbes(dp *DebugProbes) {
	RegisterQueryProbes(dp, cpuinfo.Host())
}

// RegisterQueryProbes registers processor count probes backed by q.
func RegisterQueryProbes(dp *DebugProbes, q cpuinfo.Query) {
	dp.RegisterProbe(ProbeCPUs, func() any {
		return cpuinfo.Count(q)
	})
	dp.RegisterProbe(ProbeCPUsKnown, func() any {
		_, err := cpuinfo.Lookup(q)
		return err == nil
	})
}

// RecordPlatformMetrics runs one lookup of q and records its outcome in mr.
// It returns the clamped count.
func RecordPlatformMetrics(mr *MetricsRegistry, q cpuinfo.Query) int {
	n, err := cpuinfo.Lookup(q)
	mr.Inc(MetricCPULookups)
	if err != nil {
		mr.Inc(MetricCPULookupFailures)
	}
	mr.Set(ProbeCPUs, n)
	mr.Set(ProbeCPUsKnown, err == nil)
	return n
}
