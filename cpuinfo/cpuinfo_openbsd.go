//go:build openbsd
// +build openbsd

// File: cpuinfo/cpuinfo_openbsd.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package cpuinfo

import (
	"golang.org/x/sys/unix"
)

// hw.ncpu includes SMT siblings OpenBSD keeps offline by default;
// hw.ncpuonline does not. Older kernels lack hw.ncpuonline.
func platformProcessors() int {
	return sysctlProcessors(unix.SysctlUint32, "hw.ncpuonline", "hw.ncpu")
}
