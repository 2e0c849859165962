// File: cpuinfo/cpuinfo.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Platform-neutral processor count API. Platform queries live in
// cpuinfo_<os>.go files guarded by build tags.

package cpuinfo

import (
	"github.com/pkg/errors"
)

// ErrUnavailable is returned by Lookup when the platform reports no usable count.
var ErrUnavailable = errors.New("cpuinfo: processor count unavailable")

// Query reports the raw number of logical processors online.
// A non-positive value means the platform could not determine the count.
type Query interface {
	NumProcessors() int
}

// QueryFunc adapts a plain function to Query.
type QueryFunc func() int

// NumProcessors calls f.
func (f QueryFunc) NumProcessors() int {
	return f()
}

var hostQuery Query = QueryFunc(platformProcessors)

// Host returns the query for the running platform.
func Host() Query {
	return hostQuery
}

// Count runs q and clamps sentinel values to 0.
func Count(q Query) int {
	if n := q.NumProcessors(); n > 0 {
		return n
	}
	return 0
}

// CountProcessors returns the number of logical processors online, or 0
// when the platform cannot tell.
func CountProcessors() int {
	return Count(hostQuery)
}

// Lookup runs q and reports ErrUnavailable instead of collapsing the
// sentinel to 0.
func Lookup(q Query) (int, error) {
	n := q.NumProcessors()
	if n <= 0 {
		return 0, errors.Wrapf(ErrUnavailable, "platform reported %d", n)
	}
	return n, nil
}

// LookupProcessors is Lookup over the host query.
func LookupProcessors() (int, error) {
	return Lookup(hostQuery)
}
