//go:build freebsd || netbsd || dragonfly
// +build freebsd netbsd dragonfly

// File: cpuinfo/cpuinfo_bsd.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package cpuinfo

import (
	"golang.org/x/sys/unix"
)

func platformProcessors() int {
	return sysctlProcessors(unix.SysctlUint32, "hw.ncpu")
}
