package atomx

import (
	"runtime"
	"sync/atomic"

	"github.com/llxisdsh/atomx/internal/opt"
)

// StripedCounter spreads increments across per-P stripes so that
// write-heavy accumulation does not contend on a single cache line.
//
// Its logical value is the sum of all stripes modulo 2^32, matching
// Counter's modular arithmetic. Load is exact once writers are
// quiescent; under concurrent Adds it may lag in-flight increments but
// never observes a torn stripe.
//
// Use NewStripedCounter; the zero value has no stripes.
type StripedCounter struct {
	_       noCopy
	stripes []opt.CounterStripe_
	mask    uint32
}

// NewStripedCounter returns a StripedCounter holding 0, with one stripe
// per P rounded up to a power of two.
func NewStripedCounter() *StripedCounter {
	n := nextPowOf2(runtime.GOMAXPROCS(0))
	return &StripedCounter{
		stripes: make([]opt.CounterStripe_, n),
		mask:    uint32(n - 1),
	}
}

// Add adds delta to the calling P's stripe. It wraps modulo 2^32.
//
//go:nosplit
func (s *StripedCounter) Add(delta uint32) {
	idx := uint32(runtime_procPin()) & s.mask
	atomic.AddUintptr(&s.stripes[idx].C, uintptr(delta))
	runtime_procUnpin()
}

// Load folds all stripes into the current logical value.
func (s *StripedCounter) Load() uint32 {
	var sum uint32
	for i := range s.stripes {
		sum += uint32(atomic.LoadUintptr(&s.stripes[i].C))
	}
	return sum
}
