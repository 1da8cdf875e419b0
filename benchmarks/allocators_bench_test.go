package benchmarks

import (
	"fmt"
	"testing"

	"github.com/pavanmanishd/vector"
	"github.com/pavanmanishd/vector/allocator"
)

func allocators() map[string]vector.Allocator {
	return map[string]vector.Allocator{
		"heap":  vector.HeapAllocator{},
		"mmap":  allocator.NewMmap(),
		"pool":  allocator.NewPool(64, 1<<20, 2),
		"arena": allocator.NewArena(1 << 20),
	}
}

// reset rewinds allocators that only recycle storage in bulk.
func reset(a vector.Allocator) {
	if r, ok := a.(interface{ Reset() }); ok {
		r.Reset()
	}
}

// BenchmarkGrowthByAllocator appends until the vector holds size elements
// and releases it, so every reallocation hits the allocator.
func BenchmarkGrowthByAllocator(b *testing.B) {
	for name, a := range allocators() {
		for _, size := range []int{64, 4096, 65536} {
			b.Run(fmt.Sprintf("%s/%d", name, size), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					v := vector.New[uint64](vector.WithAllocator(a))
					for j := 0; j < size; j++ {
						_ = v.Append(uint64(j))
					}
					v.Release()
					reset(a)
				}
			})
		}
	}
}

// BenchmarkRequestScratch models a request handler that builds a scratch
// vector of fixed-size records and throws it away.
func BenchmarkRequestScratch(b *testing.B) {
	type record struct {
		ID    uint64
		Score float64
		Flags [6]uint32
	}

	for name, a := range allocators() {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v := vector.New[record](vector.WithAllocator(a))
				for j := 0; j < 200; j++ {
					_ = v.Append(record{ID: uint64(j), Score: float64(j) / 2})
				}
				v.Release()
				reset(a)
			}
		})
	}
}

func BenchmarkInstrumentedOverhead(b *testing.B) {
	inst := allocator.NewInstrumented(vector.HeapAllocator{}, nil, nil)

	for _, tc := range []struct {
		name string
		a    vector.Allocator
	}{
		{"plain", vector.HeapAllocator{}},
		{"instrumented", inst},
	} {
		b.Run(tc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				v := vector.New[int](vector.WithAllocator(tc.a))
				for j := 0; j < 1024; j++ {
					_ = v.Append(j)
				}
				v.Release()
			}
		})
	}
}
