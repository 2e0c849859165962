// File: cpuinfo/cpulist.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Kernel cpulist format, as found in /sys/devices/system/cpu/{online,possible}.

package cpuinfo

import (
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// MaxCPUID is the largest CPU id ParseCPUList accepts. Linux caps
// CONFIG_NR_CPUS well below it.
const MaxCPUID = 1<<16 - 1

type cpuRange struct {
	lo, hi int
}

// ParseCPUList returns the number of distinct CPUs named by a kernel cpulist
// such as "0-3,8,10-11". An empty list names no CPUs. Ids above MaxCPUID are
// rejected.
func ParseCPUList(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	toks := strings.Split(s, ",")
	ranges := make([]cpuRange, 0, len(toks))
	for _, tok := range toks {
		r, err := parseCPURange(tok)
		if err != nil {
			return 0, err
		}
		ranges = append(ranges, r)
	}
	return countUnion(ranges), nil
}

// countUnion counts the ids covered by ranges, overlaps counted once.
func countUnion(ranges []cpuRange) int {
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].lo < ranges[j].lo })
	n := 0
	cur := ranges[0]
	for _, r := range ranges[1:] {
		if r.lo <= cur.hi+1 {
			if r.hi > cur.hi {
				cur.hi = r.hi
			}
			continue
		}
		n += cur.hi - cur.lo + 1
		cur = r
	}
	return n + cur.hi - cur.lo + 1
}

func parseCPURange(tok string) (cpuRange, error) {
	first, last, isRange := strings.Cut(tok, "-")
	lo, err := parseCPUID(first)
	if err != nil {
		return cpuRange{}, errors.Wrapf(err, "cpulist token %q", tok)
	}
	if !isRange {
		return cpuRange{lo, lo}, nil
	}
	hi, err := parseCPUID(last)
	if err != nil {
		return cpuRange{}, errors.Wrapf(err, "cpulist token %q", tok)
	}
	if hi < lo {
		return cpuRange{}, errors.Errorf("cpulist token %q: inverted range", tok)
	}
	return cpuRange{lo, hi}, nil
}

func parseCPUID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrap(err, "invalid cpu id")
	}
	if id < 0 || id > MaxCPUID {
		return 0, errors.Errorf("cpu id %d out of range [0, %d]", id, MaxCPUID)
	}
	return id, nil
}
