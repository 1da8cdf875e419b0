//go:build !linux && !darwin && !freebsd

package allocator

import "github.com/pavanmanishd/vector"

// Mmap falls back to the Go heap where anonymous mappings are not wired up.
type Mmap struct {
	vector.HeapAllocator
}

// NewMmap returns a heap-backed stand-in for the mmap allocator.
func NewMmap() *Mmap {
	return &Mmap{}
}
