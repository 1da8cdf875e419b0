package vector

import "iter"

// Elements returns the live elements as a slice sharing v's storage.
// The slice is invalidated by the next reallocation. Appending to it does not
// grow the vector.
func (v *Vector[T]) Elements() []T {
	return v.buf.slice(0, v.size)
}

// All yields index/value pairs in index order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, x := range v.Elements() {
			if !yield(i, x) {
				return
			}
		}
	}
}

// Backward yields index/value pairs from the last element to the first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		s := v.Elements()
		for i := len(s) - 1; i >= 0; i-- {
			if !yield(i, s[i]) {
				return
			}
		}
	}
}
