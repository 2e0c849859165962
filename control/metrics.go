// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Gauges and counters describing processor count lookups.

package control

import (
	"sort"
	"sync"
	"time"
)

// MetricsRegistry keeps last-value gauges and monotonically increasing
// counters under one lock. A key is either a gauge or a counter.
type MetricsRegistry struct {
	mu       sync.RWMutex
	gauges   map[string]any
	counters map[string]uint64
	updated  time.Time
	now      func() time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		gauges:   make(map[string]any),
		counters: make(map[string]uint64),
		now:      time.Now,
	}
}

// Set replaces the gauge at key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.gauges[key] = value
	mr.updated = mr.now()
	mr.mu.Unlock()
}

// Inc adds one to the counter at key.
func (mr *MetricsRegistry) Inc(key string) {
	mr.mu.Lock()
	mr.counters[key]++
	mr.updated = mr.now()
	mr.mu.Unlock()
}

// Updated reports the time of the last Set or Inc. Zero if never.
func (mr *MetricsRegistry) Updated() time.Time {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	return mr.updated
}

// Keys returns gauge and counter keys in sorted order.
func (mr *MetricsRegistry) Keys() []string {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	keys := make([]string, 0, len(mr.gauges)+len(mr.counters))
	for k := range mr.gauges {
		keys = append(keys, k)
	}
	for k := range mr.counters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetSnapshot returns a copy of gauges and counters. Counters appear as uint64.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.gauges)+len(mr.counters))
	for k, v := range mr.gauges {
		out[k] = v
	}
	for k, v := range mr.counters {
		out[k] = v
	}
	return out
}
