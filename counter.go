package atomx

import (
	"sync/atomic"
)

// LoadOrder selects the memory-ordering contract for [Counter.Load].
//
// Only orderings meaningful for a read are representable; a release load
// does not type-check.
type LoadOrder uint8

const (
	// LoadRelaxed guarantees atomicity of the read and nothing else.
	// Surrounding memory operations may be freely reordered around it.
	LoadRelaxed LoadOrder = iota

	// LoadAcquire additionally synchronizes with a release store: any
	// writes that happened before a release store observed by this load
	// are visible to the loading goroutine afterwards.
	LoadAcquire
)

// LoadMonotonic is a historical alias for LoadRelaxed.
const LoadMonotonic = LoadRelaxed

// StoreOrder selects the memory-ordering contract for [Counter.Store].
//
// Only orderings meaningful for a write are representable; an acquire
// store does not type-check.
type StoreOrder uint8

const (
	// StoreRelaxed guarantees atomicity of the write and nothing else.
	StoreRelaxed StoreOrder = iota

	// StoreRelease additionally publishes prior writes: everything the
	// storing goroutine wrote before this store becomes visible to any
	// goroutine whose acquire load observes this store's value or a
	// later one.
	StoreRelease
)

// StoreMonotonic is a historical alias for StoreRelaxed.
const StoreMonotonic = StoreRelaxed

// Counter is an atomic unsigned 32-bit counter with caller-selected
// memory ordering on loads and stores.
//
// The zero value holds 0 and is ready to use; NewCounter constructs one
// with an explicit initial value. A Counter must not be copied after
// first use. Once a Counter is shared across goroutines its backing word
// must only be accessed through these methods.
//
// Each instance is independent; no state is shared between Counters.
//
// Size: 4 bytes.
type Counter struct {
	_ noCopy
	v uint32
}

// NewCounter returns a Counter holding initial.
func NewCounter(initial uint32) *Counter {
	return &Counter{v: initial}
}

// Load atomically reads the current value under the given ordering.
//
//go:nosplit
func (c *Counter) Load(order LoadOrder) uint32 {
	if order == LoadRelaxed {
		return loadUint32Relaxed(&c.v)
	}
	return atomic.LoadUint32(&c.v)
}

// Store atomically writes v under the given ordering.
//
//go:nosplit
func (c *Counter) Store(v uint32, order StoreOrder) {
	if order == StoreRelaxed {
		storeUint32Relaxed(&c.v, v)
		return
	}
	atomic.StoreUint32(&c.v, v)
}

// Add atomically adds delta and returns the value immediately before
// the addition. It wraps modulo 2^32. Add is a full-barrier operation,
// so it composes with acquire loads and release stores without extra
// fencing.
//
//go:nosplit
func (c *Counter) Add(delta uint32) uint32 {
	return atomic.AddUint32(&c.v, delta) - delta
}

// CompareAndSwap replaces the value with new if it currently equals old,
// reporting whether it did. It never fails spuriously; on failure the
// value is left untouched and the caller learns nothing beyond the
// mismatch. Like Add, it is a full-barrier operation.
//
//go:nosplit
func (c *Counter) CompareAndSwap(old, new uint32) bool {
	return atomic.CompareAndSwapUint32(&c.v, old, new)
}
