//go:build !linux && !windows && !darwin && !freebsd && !netbsd && !openbsd && !dragonfly
// +build !linux,!windows,!darwin,!freebsd,!netbsd,!openbsd,!dragonfly

// File: cpuinfo/cpuinfo_other.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Fallback for platforms without a dedicated query.

package cpuinfo

import "runtime"

func platformProcessors() int {
	return runtime.NumCPU()
}
