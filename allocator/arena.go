package allocator

import (
	"sync"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/pavanmanishd/vector"
)

// DefaultChunkSize is the chunk size used when NewArena is given zero (64 KiB).
const DefaultChunkSize = 1 << 16

type chunk struct {
	buf    []byte
	offset uintptr
}

// Arena is a chunked bump allocator. Deallocate is a no-op: storage is only
// recycled by Reset, which rewinds every chunk at once. Typical usage is one
// arena per request, serving the scratch vectors built while handling it.
//
// Arena is safe for concurrent use.
type Arena struct {
	mu        sync.Mutex
	chunks    []chunk
	current   int
	chunkSize int
}

// NewArena creates an arena that grows in chunks of chunkSize bytes.
// If chunkSize <= 0, DefaultChunkSize is used.
func NewArena(chunkSize int) *Arena {
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}
	a := &Arena{chunkSize: chunkSize}
	a.grow(chunkSize)
	return a
}

// Allocate implements vector.Allocator. Requests larger than the chunk size
// get a chunk of their own. The returned bytes are not zeroed after Reset.
func (a *Arena) Allocate(size int) ([]byte, error) {
	if size < 0 {
		return nil, errors.Wrapf(vector.ErrAllocation, "arena: negative size %d", size)
	}
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.chunks == nil {
		return nil, errors.Wrap(vector.ErrAllocation, "arena: use after Release")
	}
	if size == 0 {
		return []byte{}, nil
	}

	// Fast path: bump within the current chunk.
	if b, ok := a.chunks[a.current].bump(size); ok {
		return b, nil
	}
	// Earlier chunks are reused after Reset before new ones are added.
	for a.current+1 < len(a.chunks) {
		a.current++
		if b, ok := a.chunks[a.current].bump(size); ok {
			return b, nil
		}
	}
	a.grow(size)
	b, _ := a.chunks[a.current].bump(size)
	return b, nil
}

// Deallocate implements vector.Allocator. It does nothing.
func (a *Arena) Deallocate([]byte) {}

// Reset rewinds every chunk, keeping them for reuse. Storage handed out
// before Reset must no longer be in use, so vectors allocated from the arena
// must be released or abandoned first.
func (a *Arena) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	for i := range a.chunks {
		a.chunks[i].offset = 0
	}
	a.current = 0
}

// Release drops all chunks. Later allocations fail.
func (a *Arena) Release() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.chunks = nil
	a.current = 0
}

// InUse returns the bytes handed out since the last Reset, including
// alignment padding.
func (a *Arena) InUse() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	n := 0
	for _, c := range a.chunks {
		n += int(c.offset)
	}
	return n
}

// NumChunks returns the number of chunks the arena holds.
func (a *Arena) NumChunks() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.chunks)
}

// grow appends a chunk of at least min bytes and makes it current.
func (a *Arena) grow(min int) {
	size := max(a.chunkSize, min)
	a.chunks = append(a.chunks, chunk{buf: make([]byte, size)})
	a.current = len(a.chunks) - 1
}

// bump carves n bytes aligned to pointer size out of c.
func (c *chunk) bump(n int) ([]byte, bool) {
	off := alignPtr(c.offset)
	if off+uintptr(n) > uintptr(len(c.buf)) {
		return nil, false
	}
	c.offset = off + uintptr(n)
	start := int(off)
	return c.buf[start : start+n : start+n], true
}

// alignPtr aligns the offset up to pointer size alignment.
func alignPtr(off uintptr) uintptr {
	const align = unsafe.Sizeof(uintptr(0))
	mask := align - 1
	return (off + mask) & ^mask
}
