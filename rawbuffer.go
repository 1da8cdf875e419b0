package vector

import (
	"unsafe"

	"github.com/pkg/errors"
)

// noCopy makes go vet's copylocks check flag accidental copies.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// RawBuffer owns storage for Cap() elements of type T. It has no idea which
// slots hold live values; that bookkeeping belongs to the caller.
// A RawBuffer must not be copied. Ownership moves with Swap, Take or MoveFrom.
type RawBuffer[T any] struct {
	_ noCopy

	alloc Allocator
	raw   []byte // block returned by alloc; nil for typed heap storage
	base  *T
	cap   int
}

// NewRawBuffer acquires storage for n elements from alloc.
// A nil alloc uses DefaultAllocator.
func NewRawBuffer[T any](alloc Allocator, n int) (*RawBuffer[T], error) {
	b := &RawBuffer[T]{}
	if err := b.Acquire(alloc, n); err != nil {
		return nil, err
	}
	return b, nil
}

// Acquire obtains storage for n elements. The buffer must be empty.
// Errors returned by the allocator are passed through unchanged and leave the
// buffer empty.
func (b *RawBuffer[T]) Acquire(alloc Allocator, n int) error {
	if b.base != nil || b.cap != 0 {
		panic("rawbuffer: acquire into non-empty buffer")
	}
	b.alloc = alloc
	if n < 0 {
		return errors.Wrapf(ErrAllocation, "rawbuffer: negative capacity %d", n)
	}
	if n == 0 {
		return nil
	}

	var zero T
	size, err := byteSize(n, unsafe.Sizeof(zero))
	if err != nil {
		return err
	}

	// Values holding pointers must stay visible to the garbage collector.
	if !rawStorable[T]() {
		s := make([]T, n)
		b.base = unsafe.SliceData(s)
		b.cap = n
		return nil
	}

	a := orDefault(alloc)
	raw, err := a.Allocate(size)
	if err != nil {
		return err
	}
	if len(raw) < size {
		a.Deallocate(raw)
		return errors.Wrapf(ErrAllocation, "rawbuffer: allocator returned %d bytes, want %d", len(raw), size)
	}
	if !aligned[T](raw) {
		a.Deallocate(raw)
		return errors.Wrapf(ErrAllocation, "rawbuffer: storage not aligned to %d bytes", unsafe.Alignof(zero))
	}

	b.raw = raw
	b.base = (*T)(unsafe.Pointer(unsafe.SliceData(raw)))
	b.cap = n
	return nil
}

// Release returns the storage to its allocator. It is a no-op on an empty
// buffer. Live values left in the slots are not destroyed.
func (b *RawBuffer[T]) Release() {
	if b.raw != nil {
		orDefault(b.alloc).Deallocate(b.raw)
	}
	b.raw = nil
	b.base = nil
	b.cap = 0
}

// Cap returns the number of element slots the buffer holds.
func (b *RawBuffer[T]) Cap() int {
	return b.cap
}

// Allocator returns the allocator the buffer acquires from and releases to.
func (b *RawBuffer[T]) Allocator() Allocator {
	return orDefault(b.alloc)
}

// Slot returns the address of slot i. Neither bounds nor liveness are
// checked: i must be in [0, Cap()).
func (b *RawBuffer[T]) Slot(i int) *T {
	var zero T
	return (*T)(unsafe.Add(unsafe.Pointer(b.base), uintptr(i)*unsafe.Sizeof(zero)))
}

// slice returns slots [lo, hi) as a Go slice without bounds checks.
func (b *RawBuffer[T]) slice(lo, hi int) []T {
	if lo == hi {
		return nil
	}
	return unsafe.Slice(b.Slot(lo), hi-lo)
}

// Swap exchanges storage, capacity and allocator with other in O(1).
func (b *RawBuffer[T]) Swap(other *RawBuffer[T]) {
	b.alloc, other.alloc = other.alloc, b.alloc
	b.raw, other.raw = other.raw, b.raw
	b.base, other.base = other.base, b.base
	b.cap, other.cap = other.cap, b.cap
}

// Take moves the storage into a new buffer and leaves b empty.
func (b *RawBuffer[T]) Take() *RawBuffer[T] {
	nb := &RawBuffer[T]{alloc: b.alloc}
	nb.Swap(b)
	return nb
}

// MoveFrom exchanges state with other, which ends up holding what b held.
// It returns b so assignments can be chained.
func (b *RawBuffer[T]) MoveFrom(other *RawBuffer[T]) *RawBuffer[T] {
	b.Swap(other)
	return b
}
