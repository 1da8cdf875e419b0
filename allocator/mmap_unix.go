//go:build linux || darwin || freebsd

package allocator

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/pavanmanishd/vector"
)

// Mmap serves every request with its own anonymous private mapping, so
// released storage goes straight back to the operating system.
type Mmap struct{}

// NewMmap returns an mmap-backed allocator.
func NewMmap() *Mmap {
	return &Mmap{}
}

// Allocate implements vector.Allocator.
func (m *Mmap) Allocate(size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.Wrapf(vector.ErrAllocation, "mmap: negative size %d", size)
	}
	if size == 0 {
		return []byte{}, nil
	}
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return nil, errors.Wrapf(vector.ErrAllocation, "mmap: %d bytes: %v", size, err)
	}
	return b, nil
}

// Deallocate implements vector.Allocator. b must be a slice returned by
// Allocate, unmodified.
func (m *Mmap) Deallocate(b []byte) {
	if len(b) == 0 {
		return
	}
	// Munmap only fails for slices it did not map.
	_ = unix.Munmap(b)
}
