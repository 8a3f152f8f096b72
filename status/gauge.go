package status

import (
	"math"
	"sync/atomic"
)

// Gauge is a float64 stored as bits, zero value reads 0
type Gauge struct {
	bits atomic.Uint64
}

func (g *Gauge) Set(v float64) {
	g.bits.Store(math.Float64bits(v))
}

func (g *Gauge) Get() float64 {
	return math.Float64frombits(g.bits.Load())
}

// Smooth blends v into the stored value with weight alpha and returns the result
func (g *Gauge) Smooth(v, alpha float64) float64 {
	for {
		old := g.bits.Load()
		next := math.Float64frombits(old)*(1-alpha) + v*alpha
		if g.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return next
		}
	}
}
