// Package sync2 provides small atomic wrappers shared by the containers and
// their tests.
package sync2

import "sync/atomic"

// AtomicInt64 is an int64 with atomic accessors. The zero value is 0 and
// ready to use.
type AtomicInt64 struct {
	v int64
}

func NewAtomicInt64(n int64) AtomicInt64 {
	return AtomicInt64{v: n}
}

// Add atomically adds delta and returns the new value.
func (i *AtomicInt64) Add(delta int64) int64 {
	return atomic.AddInt64(&i.v, delta)
}

func (i *AtomicInt64) Get() int64 {
	return atomic.LoadInt64(&i.v)
}

func (i *AtomicInt64) Set(n int64) {
	atomic.StoreInt64(&i.v, n)
}

// CompareAndSwap sets the value to new iff it currently equals old.
func (i *AtomicInt64) CompareAndSwap(old, new int64) bool {
	return atomic.CompareAndSwapInt64(&i.v, old, new)
}
