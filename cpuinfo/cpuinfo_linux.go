//go:build linux
// +build linux

// File: cpuinfo/cpuinfo_linux.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Linux processor count from sysfs with a procfs fallback.

package cpuinfo

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/containerd/log"
	"github.com/pkg/errors"
)

// linuxSource reads the online CPU count below a filesystem root.
// Tests point root at a fake tree.
type linuxSource struct {
	root string
}

var hostSource = linuxSource{root: "/"}

func platformProcessors() int {
	return hostSource.NumProcessors()
}

// NumProcessors prefers the sysfs online list, which is what glibc's
// sysconf(_SC_NPROCESSORS_ONLN) reads, and falls back to /proc/stat.
func (s linuxSource) NumProcessors() int {
	n, err := s.online()
	if err == nil {
		return n
	}
	log.L.WithError(err).Debug("cpuinfo: sysfs online list unusable, trying /proc/stat")

	n, err = s.statCPUs()
	if err == nil {
		return n
	}
	log.L.WithError(err).Debug("cpuinfo: processor count unavailable")
	return -1
}

func (s linuxSource) online() (int, error) {
	path := filepath.Join(s.root, "sys/devices/system/cpu/online")
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, errors.Wrap(err, "read online cpu list")
	}
	n, err := ParseCPUList(string(data))
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", path)
	}
	return n, nil
}

// statCPUs counts the per-CPU "cpuN" lines of /proc/stat.
func (s linuxSource) statCPUs() (int, error) {
	path := filepath.Join(s.root, "proc/stat")
	f, err := os.Open(path)
	if err != nil {
		return 0, errors.Wrap(err, "open proc stat")
	}
	defer f.Close()

	n := 0
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if !strings.HasPrefix(line, "cpu") || len(line) < 4 {
			continue
		}
		if c := line[3]; c >= '0' && c <= '9' {
			n++
		}
	}
	if err := sc.Err(); err != nil {
		return 0, errors.Wrapf(err, "scan %s", path)
	}
	return n, nil
}
