package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Registry holds the frame counters and gauges shown by the stats overlay
// Callers cache the pointers once and write atomics every frame
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[Gauge]
}

func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[Gauge](),
	}
}

func (r *Registry) Count() int {
	return r.Counters.Count() + r.Gauges.Count()
}

// Line formats every metric as key=value in key order, counters first
func (r *Registry) Line() string {
	var parts []string
	r.Counters.Range(func(k string, v *atomic.Int64) {
		parts = append(parts, fmt.Sprintf("%s=%d", k, v.Load()))
	})
	r.Gauges.Range(func(k string, g *Gauge) {
		parts = append(parts, fmt.Sprintf("%s=%.1f", k, g.Get()))
	})
	return strings.Join(parts, " ")
}
