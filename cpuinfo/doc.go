// File: cpuinfo/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Package cpuinfo reports the number of logical processors online on the host.
//
// The count is a concurrency hint for sizing worker pools. CountProcessors
// never returns a negative value: when the platform cannot report a count the
// result is 0 and callers apply their own default. Lookup and
// LookupProcessors report the same condition as ErrUnavailable instead.
//
// Platform queries are selected by build constraints:
//   - linux: /sys/devices/system/cpu/online, falling back to /proc/stat
//   - darwin: sysctl hw.activecpu
//   - freebsd, netbsd, dragonfly: sysctl hw.ncpu
//   - openbsd: sysctl hw.ncpuonline, falling back to hw.ncpu
//   - windows: GetActiveProcessorCount over all processor groups
//   - others: runtime.NumCPU
package cpuinfo
