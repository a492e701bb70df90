// Package status keeps runtime counters and gauges for the loop and its producers
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Registry groups counters and gauges by name
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[AtomicFloat]
}

func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[AtomicFloat](),
	}
}

// Summary renders every metric as key=value in key order, counters first
func (r *Registry) Summary() string {
	var parts []string
	r.Counters.Range(func(k string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Gauges.Range(func(k string, v *AtomicFloat) {
		parts = append(parts, fmt.Sprintf("%s=%.2f", k, v.Get()))
	})
	return strings.Join(parts, " ")
}
