// Package control
// Author: momentics <momentics@gmail.com>
//
// Debug probes and metrics snapshots for runtime introspection of the
// processor count reported by cpuinfo.
//
// Provides concurrent-safe registries:
//   - Named debug probes evaluated on demand
//   - Last-value metrics with update timestamps
package control
