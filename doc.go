// Package vector implements a growable, contiguous sequence container built
// on storage it manages itself.
//
// # Overview
//
// A Vector separates the storage it owns (its capacity) from the elements
// that are alive inside that storage (its size). Storage is held by a
// RawBuffer, which knows nothing about which slots are live; the Vector
// constructs and destroys elements in sub-ranges of the buffer and moves them
// to a new buffer whenever it has to grow.
//
// # Basic Usage
//
//	v := vector.New[int]()
//	defer v.Release()
//
//	_ = v.Append(10)
//	_ = v.Append(20)
//	_, _ = v.Insert(1, 15) // [10 15 20]
//	v.Erase(0)             // [15 20]
//
//	for i, x := range v.All() {
//		fmt.Println(i, x)
//	}
//
// # Growth
//
// Append, EmplaceAppend and Insert on a full vector double the capacity,
// starting from 1, so a sequence of appends costs O(1) amortized. Reserve and
// Resize grow to exactly the requested capacity. Capacity never shrinks except
// when a vector exchanges state with a smaller one through Swap or MoveFrom.
// Every reallocation invalidates pointers and slices into the vector.
//
// # Element Lifecycle
//
// Go has no constructors or destructors, so element types opt in to them:
//
//   - Initializer: Init() error runs on a zeroed slot during default construction
//   - Destroyer: Destroy() runs before a slot is cleared
//   - Cloner[T]: Clone() (T, error) is used by every copying operation
//
// Elements are relocated bitwise when storage grows. Relocation cannot fail,
// so growth never leaves a vector half moved.
//
// # Allocators
//
// Storage comes from an Allocator, DefaultAllocator unless WithAllocator says
// otherwise. Allocation failures are returned unchanged and wrap
// ErrAllocation. Element types that contain pointers are always stored in
// typed Go heap memory so the garbage collector can see them; custom
// allocators serve pointer-free element types. Package allocator provides
// mmap, pooled, limited, fault-injecting and instrumented allocators.
//
// # Error Safety
//
//   - Reserve, Append, Insert, Clone and CopyFrom into a vector that is too
//     small leave the vector unchanged when they fail.
//   - CopyFrom into a vector with enough capacity reuses its storage and only
//     guarantees that the vector stays valid.
//   - Out-of-range indexes, RemoveLast on an empty vector and invalid positions
//     are contract violations and are not checked.
//
// # Thread Safety
//
// A Vector is not safe for concurrent use. Callers must synchronize access.
package vector
