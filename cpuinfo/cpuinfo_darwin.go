//go:build darwin
// +build darwin

// File: cpuinfo/cpuinfo_darwin.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package cpuinfo

import (
	"golang.org/x/sys/unix"
)

// platformProcessors reads hw.activecpu, the processors currently available
// to the scheduler.
func platformProcessors() int {
	return sysctlProcessors(unix.SysctlUint32, "hw.activecpu")
}
