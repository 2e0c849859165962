//go:build windows
// +build windows

// File: cpuinfo/cpuinfo_windows.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Windows processor count across all processor groups.

package cpuinfo

import (
	"github.com/containerd/log"
	"golang.org/x/sys/windows"
)

// platformProcessors returns 0 when GetActiveProcessorCount fails.
func platformProcessors() int {
	n := windows.GetActiveProcessorCount(windows.ALL_PROCESSOR_GROUPS)
	if n == 0 {
		log.L.Debug("cpuinfo: GetActiveProcessorCount failed")
	}
	return int(n)
}
