package vector

// Vector is a growable array of T. Slots [0, Size()) hold live values, slots
// [Size(), Capacity()) are raw storage. The zero value is an empty vector
// that allocates from DefaultAllocator.
//
// A Vector is not safe for concurrent use and must not be copied; use Clone
// or Move. Any operation that reallocates invalidates pointers returned by At
// and EmplaceAppend and slices returned by Elements.
type Vector[T any] struct {
	buf  RawBuffer[T]
	size int
}

// New returns an empty vector with zero capacity.
func New[T any](opts ...Option) *Vector[T] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	v := &Vector[T]{}
	v.buf.alloc = o.alloc
	return v
}

// NewSized returns a vector of n default-constructed elements with capacity n.
// If any element fails to construct, the ones already built are destroyed,
// the storage is released and the error is returned.
func NewSized[T any](n int, opts ...Option) (*Vector[T], error) {
	if n < 0 {
		panic("vector: negative size")
	}
	v := New[T](opts...)
	if err := v.buf.Acquire(v.buf.alloc, n); err != nil {
		return nil, err
	}
	if err := constructRange(v.buf.slice(0, n)); err != nil {
		v.buf.Release()
		return nil, err
	}
	v.size = n
	return v, nil
}

// Clone returns a deep copy of v whose capacity equals v.Size().
// Elements are copied in index order; on failure nothing is left allocated.
func (v *Vector[T]) Clone() (*Vector[T], error) {
	return v.cloneWith(v.buf.alloc)
}

func (v *Vector[T]) cloneWith(alloc Allocator) (*Vector[T], error) {
	nv := &Vector[T]{}
	if err := nv.buf.Acquire(alloc, v.size); err != nil {
		return nil, err
	}
	dst := nv.buf.slice(0, v.size)
	if n, err := cloneRange(dst, v.Elements()); err != nil {
		destroyRange(dst[:n])
		nv.buf.Release()
		return nil, err
	}
	nv.size = v.size
	return nv, nil
}

// Move transfers v's contents to a new vector in O(1). v is left empty with
// zero capacity and keeps its allocator.
func (v *Vector[T]) Move() *Vector[T] {
	nv := &Vector[T]{}
	nv.buf.alloc = v.buf.alloc
	nv.Swap(v)
	return nv
}

// CopyFrom makes v a deep copy of other.
//
// When other does not fit in v's capacity a complete copy is built first and
// swapped in, so a failure leaves v untouched. Otherwise v's storage is reused:
// the common prefix is assigned, surplus elements are destroyed and missing
// ones are copy-constructed. A failure on that path leaves v valid, with Size()
// counting exactly the elements that are live, but with contents that may
// match neither the old nor the new value.
func (v *Vector[T]) CopyFrom(other *Vector[T]) error {
	if v == other {
		return nil
	}
	if other.size > v.buf.cap {
		tmp, err := other.cloneWith(v.buf.alloc)
		if err != nil {
			return err
		}
		v.Swap(tmp)
		tmp.Release()
		return nil
	}

	src := other.Elements()
	dst := v.buf.slice(0, other.size)
	for i := range min(v.size, other.size) {
		c, err := clone(src[i])
		if err != nil {
			return err
		}
		destroy(&dst[i])
		dst[i] = c
	}
	if other.size < v.size {
		destroyRange(v.buf.slice(other.size, v.size))
		v.size = other.size
		return nil
	}
	for i := v.size; i < other.size; i++ {
		c, err := clone(src[i])
		if err != nil {
			return err
		}
		dst[i] = c
		v.size = i + 1
	}
	return nil
}

// MoveFrom exchanges contents with other, which ends up holding v's previous
// elements, capacity and allocator. It returns v.
func (v *Vector[T]) MoveFrom(other *Vector[T]) *Vector[T] {
	v.Swap(other)
	return v
}

// Swap exchanges storage, size and allocator with other in O(1).
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.buf.Swap(&other.buf)
	v.size, other.size = other.size, v.size
}

// Release destroys every element and returns the storage to the allocator.
// The vector stays usable and is empty with zero capacity afterwards.
func (v *Vector[T]) Release() {
	destroyRange(v.Elements())
	v.size = 0
	v.buf.Release()
}

// Reserve grows the capacity to exactly n if n exceeds the current capacity;
// otherwise it does nothing. Elements are relocated to the new storage in
// index order. If the allocation fails v is unchanged.
func (v *Vector[T]) Reserve(n int) error {
	if n <= v.buf.cap {
		return nil
	}
	var nb RawBuffer[T]
	if err := nb.Acquire(v.buf.alloc, n); err != nil {
		return err
	}
	relocate(nb.slice(0, v.size), v.buf.slice(0, v.size))
	v.buf.Swap(&nb)
	nb.Release()
	return nil
}

// Resize sets the number of elements to n, destroying trailing elements or
// appending default-constructed ones. Growth reserves exactly n slots.
// If default construction fails the elements built so far are destroyed and
// Size() is unchanged.
func (v *Vector[T]) Resize(n int) error {
	if n < 0 {
		panic("vector: negative size")
	}
	if err := v.Reserve(n); err != nil {
		return err
	}
	switch {
	case n < v.size:
		destroyRange(v.buf.slice(n, v.size))
	case n > v.size:
		if err := constructRange(v.buf.slice(v.size, n)); err != nil {
			return err
		}
	}
	v.size = n
	return nil
}

// grow doubles the capacity, starting from 1, when the vector is full.
func (v *Vector[T]) grow() error {
	if v.size < v.buf.cap {
		return nil
	}
	return v.Reserve(max(1, 2*v.buf.cap))
}

// Append moves x to the end of the vector.
func (v *Vector[T]) Append(x T) error {
	if err := v.grow(); err != nil {
		return err
	}
	*v.buf.Slot(v.size) = x
	v.size++
	return nil
}

// AppendClone appends a copy of x made with its Clone method, if any.
func (v *Vector[T]) AppendClone(x T) error {
	if err := v.grow(); err != nil {
		return err
	}
	c, err := clone(x)
	if err != nil {
		return err
	}
	*v.buf.Slot(v.size) = c
	v.size++
	return nil
}

// EmplaceAppend constructs a new last element in place and returns it.
// The slot is zeroed and then handed to init; a nil init default-constructs.
// If init fails the slot is cleared and Size() is unchanged.
func (v *Vector[T]) EmplaceAppend(init func(*T) error) (*T, error) {
	if err := v.grow(); err != nil {
		return nil, err
	}
	p := v.buf.Slot(v.size)
	if err := emplace(p, init); err != nil {
		return nil, err
	}
	v.size++
	return p, nil
}

// RemoveLast destroys the last element. The vector must not be empty.
func (v *Vector[T]) RemoveLast() {
	destroy(v.buf.Slot(v.size - 1))
	v.size--
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int {
	return v.size
}

// Capacity returns the number of slots available without reallocating.
func (v *Vector[T]) Capacity() int {
	return v.buf.cap
}

// At returns the element at index i, which must be in [0, Size()).
func (v *Vector[T]) At(i int) *T {
	return v.buf.Slot(i)
}

// Allocator returns the allocator v acquires its storage from.
func (v *Vector[T]) Allocator() Allocator {
	return v.buf.Allocator()
}

func constructRange[T any](s []T) error {
	for i := range s {
		if err := construct(&s[i]); err != nil {
			destroyRange(s[:i])
			return err
		}
	}
	return nil
}

// cloneRange copy-constructs src into dst and reports how many succeeded.
func cloneRange[T any](dst, src []T) (int, error) {
	for i := range src {
		c, err := clone(src[i])
		if err != nil {
			return i, err
		}
		dst[i] = c
	}
	return len(src), nil
}

func emplace[T any](p *T, init func(*T) error) error {
	if init == nil {
		return construct(p)
	}
	var zero T
	*p = zero
	if err := init(p); err != nil {
		*p = zero
		return err
	}
	return nil
}
