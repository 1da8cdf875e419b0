package allocator

import (
	"github.com/pkg/errors"
	"go.uber.org/atomic"

	"github.com/pavanmanishd/vector"
)

// ErrLimitExceeded is wrapped by errors from a Limit that is out of budget.
// It itself wraps vector.ErrAllocation.
var ErrLimitExceeded = errors.Wrap(vector.ErrAllocation, "allocator: limit exceeded")

// Limit caps the number of bytes outstanding through the wrapped allocator.
// It is safe for concurrent use when the wrapped allocator is.
type Limit struct {
	next  vector.Allocator
	limit int64
	inUse atomic.Int64
}

// NewLimit returns an allocator that fails once more than limit bytes would
// be outstanding through next.
func NewLimit(next vector.Allocator, limit int64) *Limit {
	if next == nil {
		next = vector.DefaultAllocator
	}
	return &Limit{next: next, limit: limit}
}

// Allocate implements vector.Allocator.
func (l *Limit) Allocate(size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.Wrapf(vector.ErrAllocation, "limit: negative size %d", size)
	}
	if n := l.inUse.Add(int64(size)); n > l.limit {
		l.inUse.Sub(int64(size))
		return nil, errors.Wrapf(ErrLimitExceeded, "%d bytes requested, %d of %d in use", size, n-int64(size), l.limit)
	}
	b, err := l.next.Allocate(size)
	if err != nil {
		l.inUse.Sub(int64(size))
		return nil, err
	}
	return b, nil
}

// Deallocate implements vector.Allocator.
func (l *Limit) Deallocate(b []byte) {
	l.inUse.Sub(int64(len(b)))
	l.next.Deallocate(b)
}

// InUse returns the number of bytes currently outstanding.
func (l *Limit) InUse() int64 {
	return l.inUse.Load()
}
