package vector

// Insert moves x into position pos, shifting elements at [pos, Size()) one
// slot later, and returns pos. pos must be in [0, Size()].
//
// A full vector relocates into storage of twice its size (at least 1); the
// new element is written between the two relocated halves. Otherwise the
// tail is shifted within the existing storage. On allocation failure v is
// unchanged.
func (v *Vector[T]) Insert(pos int, x T) (int, error) {
	if v.size == v.buf.cap {
		var nb RawBuffer[T]
		if err := nb.Acquire(v.buf.alloc, max(1, 2*v.size)); err != nil {
			return 0, err
		}
		relocate(nb.slice(0, pos), v.buf.slice(0, pos))
		*nb.Slot(pos) = x
		relocate(nb.slice(pos+1, v.size+1), v.buf.slice(pos, v.size))
		v.buf.Swap(&nb)
		nb.Release()
	} else {
		live := v.buf.slice(0, v.size+1)
		copy(live[pos+1:], live[pos:v.size])
		live[pos] = x
	}
	v.size++
	return pos, nil
}

// InsertClone inserts a copy of x at pos. The copy is made before any
// storage is touched, so a failing Clone leaves v unchanged.
func (v *Vector[T]) InsertClone(pos int, x T) (int, error) {
	c, err := clone(x)
	if err != nil {
		return 0, err
	}
	idx, err := v.Insert(pos, c)
	if err != nil {
		destroy(&c)
		return 0, err
	}
	return idx, nil
}

// Emplace constructs a temporary with init (nil default-constructs) and
// inserts it at pos.
func (v *Vector[T]) Emplace(pos int, init func(*T) error) (int, error) {
	var tmp T
	if err := emplace(&tmp, init); err != nil {
		return 0, err
	}
	idx, err := v.Insert(pos, tmp)
	if err != nil {
		destroy(&tmp)
		return 0, err
	}
	return idx, nil
}

// Erase destroys the element at pos, which must be in [0, Size()), and shifts
// the elements after it one slot earlier. It returns pos, which now refers to
// the element that followed the erased one, or equals Size() if the erased
// element was last. Erase never allocates.
func (v *Vector[T]) Erase(pos int) int {
	live := v.buf.slice(0, v.size)
	destroy(&live[pos])
	copy(live[pos:], live[pos+1:])
	var zero T
	live[v.size-1] = zero
	v.size--
	return pos
}
