package allocator

import (
	"github.com/pkg/errors"
	"github.com/prometheus/prometheus/util/pool"

	"github.com/pavanmanishd/vector"
)

// Pool recycles storage through size-bucketed sync.Pools. It suits workloads
// that repeatedly grow and release vectors of similar sizes.
type Pool struct {
	pool *pool.Pool
}

// NewPool creates a pool whose buckets start at minSize bytes and grow by
// factor up to maxSize. Larger requests bypass the buckets.
func NewPool(minSize, maxSize int, factor float64) *Pool {
	return &Pool{
		pool: pool.New(
			minSize, maxSize, factor,
			func(size int) interface{} {
				return make([]byte, size)
			}),
	}
}

// Allocate implements vector.Allocator. The returned bytes are not zeroed.
func (p *Pool) Allocate(size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.Wrapf(vector.ErrAllocation, "pool: negative size %d", size)
	}
	return p.pool.Get(size).([]byte)[:size], nil
}

// Deallocate implements vector.Allocator.
func (p *Pool) Deallocate(b []byte) {
	p.pool.Put(b)
}
