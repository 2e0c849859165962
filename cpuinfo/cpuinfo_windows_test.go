//go:build windows
// +build windows

// File: cpuinfo/cpuinfo_windows_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package cpuinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowsPlatformProcessors(t *testing.T) {
	n := platformProcessors()
	assert.GreaterOrEqual(t, n, 0)
	assert.Equal(t, Count(Host()), n)
}
