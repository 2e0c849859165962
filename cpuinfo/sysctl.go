// File: cpuinfo/sysctl.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Shared sysctl lookup for darwin and the BSDs.

package cpuinfo

import (
	"github.com/containerd/log"
)

type sysctlUint32Func func(name string) (uint32, error)

// sysctlProcessors returns the first non-zero value among names, in order,
// or -1 when none can be read.
func sysctlProcessors(get sysctlUint32Func, names ...string) int {
	for _, name := range names {
		n, err := get(name)
		if err != nil {
			log.L.WithError(err).WithField("sysctl", name).Debug("cpuinfo: sysctl failed")
			continue
		}
		if n > 0 {
			return int(n)
		}
		log.L.WithField("sysctl", name).Debug("cpuinfo: sysctl reported no processors")
	}
	return -1
}
