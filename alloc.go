package vector

import (
	"unsafe"

	"github.com/pkg/errors"
)

// ErrAllocation is wrapped by every error that reports an allocator unable to
// satisfy a request. Test for it with errors.Is.
var ErrAllocation = errors.New("vector: allocation failed")

// Allocator hands out and takes back untyped storage.
// Allocate must return a slice of exactly size bytes or an error wrapping
// ErrAllocation. Deallocate receives the slice Allocate returned.
type Allocator interface {
	Allocate(size int) ([]byte, error)
	Deallocate(b []byte)
}

// HeapAllocator allocates from the Go heap. Deallocate is a no-op and the
// garbage collector reclaims the memory once it is unreachable.
type HeapAllocator struct{}

// DefaultAllocator is used whenever a nil Allocator is supplied.
var DefaultAllocator Allocator = HeapAllocator{}

// Allocate implements Allocator.
func (HeapAllocator) Allocate(size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.Wrapf(ErrAllocation, "heap: negative size %d", size)
	}
	return make([]byte, size), nil
}

// Deallocate implements Allocator.
func (HeapAllocator) Deallocate([]byte) {}

func orDefault(a Allocator) Allocator {
	if a == nil {
		return DefaultAllocator
	}
	return a
}

// byteSize returns n*elemSize, failing when the product does not fit in an int.
func byteSize(n int, elemSize uintptr) (int, error) {
	if elemSize == 0 || n == 0 {
		return 0, nil
	}
	if n < 0 || uintptr(n) > uintptr(maxInt)/elemSize {
		return 0, errors.Wrapf(ErrAllocation, "%d elements of %d bytes overflows", n, elemSize)
	}
	return n * int(elemSize), nil
}

const maxInt = int(^uint(0) >> 1)

// aligned reports whether b starts at an address suitable for a T.
func aligned[T any](b []byte) bool {
	var zero T
	align := unsafe.Alignof(zero)
	return uintptr(unsafe.Pointer(unsafe.SliceData(b)))%align == 0
}

// Option configures a Vector.
type Option func(*options)

type options struct {
	alloc Allocator
}

// WithAllocator makes the vector acquire its storage from a.
func WithAllocator(a Allocator) Option {
	return func(o *options) {
		o.alloc = a
	}
}
