package allocator

import (
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/pavanmanishd/vector"
)

// ErrInjected is wrapped by failures produced by a Faulty allocator.
// It itself wraps vector.ErrAllocation.
var ErrInjected = errors.Wrap(vector.ErrAllocation, "allocator: injected failure")

// Faulty forwards to another allocator until a configured failure condition
// is met. It exists to exercise allocation failure paths in tests.
type Faulty struct {
	next        vector.Allocator
	budget      int64 // successful calls allowed; negative means unlimited
	maxSize     int   // larger requests fail; 0 means no cap
	calls       atomic.Int64
	failures    atomic.Int64
	outstanding atomic.Int64
}

// FailAfter lets the first n allocations through and fails every later one.
func FailAfter(next vector.Allocator, n int) *Faulty {
	return newFaulty(next, int64(n), 0)
}

// FailAbove fails every request larger than size bytes.
func FailAbove(next vector.Allocator, size int) *Faulty {
	return newFaulty(next, -1, size)
}

func newFaulty(next vector.Allocator, budget int64, maxSize int) *Faulty {
	if next == nil {
		next = vector.DefaultAllocator
	}
	return &Faulty{next: next, budget: budget, maxSize: maxSize}
}

// Allocate implements vector.Allocator.
func (f *Faulty) Allocate(size int) ([]byte, error) {
	n := f.calls.Inc()
	if f.budget >= 0 && n > f.budget {
		f.failures.Inc()
		return nil, errors.Wrapf(ErrInjected, "call %d exceeds budget of %d", n, f.budget)
	}
	if f.maxSize > 0 && size > f.maxSize {
		f.failures.Inc()
		return nil, errors.Wrapf(ErrInjected, "%d bytes exceeds %d", size, f.maxSize)
	}
	b, err := f.next.Allocate(size)
	if err == nil {
		f.outstanding.Inc()
	}
	return b, err
}

// Deallocate implements vector.Allocator.
func (f *Faulty) Deallocate(b []byte) {
	f.outstanding.Dec()
	f.next.Deallocate(b)
}

// Calls returns the number of Allocate calls seen.
func (f *Faulty) Calls() int64 {
	return f.calls.Load()
}

// Failures returns the number of Allocate calls that were failed.
func (f *Faulty) Failures() int64 {
	return f.failures.Load()
}

// Outstanding returns the number of successful allocations not yet freed.
func (f *Faulty) Outstanding() int64 {
	return f.outstanding.Load()
}
