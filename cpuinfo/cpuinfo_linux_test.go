//go:build linux
// +build linux

// File: cpuinfo/cpuinfo_linux_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package cpuinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gotest.tools/v3/fs"
)

const procStat = `cpu  2255 34 2290 22625563 6290 127 456 0 0 0
cpu0 1132 34 1441 11311718 3675 127 438 0 0 0
cpu1 1123 0 849 11313845 2614 0 18 0 0 0
cpu2 1123 0 849 11313845 2614 0 18 0 0 0
intr 114930548 113199788 3 0 5 263 0 4 [... lots more numbers ...]
ctxt 1990473
btime 1062191376
processes 2915
procs_running 1
procs_blocked 0
`

func sysfsOnline(list string) fs.PathOp {
	return fs.WithDir("sys",
		fs.WithDir("devices",
			fs.WithDir("system",
				fs.WithDir("cpu", fs.WithFile("online", list)))))
}

func TestLinuxSource_PrefersSysfs(t *testing.T) {
	root := fs.NewDir(t, "cpuinfo",
		sysfsOnline("0-7\n"),
		fs.WithDir("proc", fs.WithFile("stat", procStat)))
	defer root.Remove()

	src := linuxSource{root: root.Path()}
	assert.Equal(t, 8, src.NumProcessors())
}

func TestLinuxSource_FallsBackToProcStat(t *testing.T) {
	root := fs.NewDir(t, "cpuinfo",
		fs.WithDir("proc", fs.WithFile("stat", procStat)))
	defer root.Remove()

	src := linuxSource{root: root.Path()}
	assert.Equal(t, 3, src.NumProcessors())
}

func TestLinuxSource_MalformedSysfsFallsBack(t *testing.T) {
	root := fs.NewDir(t, "cpuinfo",
		sysfsOnline("garbage\n"),
		fs.WithDir("proc", fs.WithFile("stat", procStat)))
	defer root.Remove()

	src := linuxSource{root: root.Path()}
	assert.Equal(t, 3, src.NumProcessors())
}

func TestLinuxSource_EmptySysfsListIsZero(t *testing.T) {
	root := fs.NewDir(t, "cpuinfo",
		sysfsOnline("\n"),
		fs.WithDir("proc", fs.WithFile("stat", procStat)))
	defer root.Remove()

	src := linuxSource{root: root.Path()}
	assert.Equal(t, 0, src.NumProcessors())
	assert.Equal(t, 0, Count(src))
}

func TestLinuxSource_OversizedSysfsListFallsBack(t *testing.T) {
	root := fs.NewDir(t, "cpuinfo",
		sysfsOnline("0-9223372036854775807\n"),
		fs.WithDir("proc", fs.WithFile("stat", procStat)))
	defer root.Remove()

	src := linuxSource{root: root.Path()}
	assert.Equal(t, 3, src.NumProcessors())
}

func TestLinuxSource_NothingReadable(t *testing.T) {
	root := fs.NewDir(t, "cpuinfo")
	defer root.Remove()

	src := linuxSource{root: root.Path()}
	assert.Equal(t, -1, src.NumProcessors())
	assert.Equal(t, 0, Count(src))

	_, err := Lookup(src)
	assert.ErrorIs(t, err, ErrUnavailable)
}
