package vector

import (
	"github.com/pkg/errors"
)

// countingAllocator records every call it forwards to the heap.
type countingAllocator struct {
	allocs    int
	frees     int
	allocated int
	freed     int
}

func (c *countingAllocator) Allocate(size int) ([]byte, error) {
	c.allocs++
	c.allocated += size
	return make([]byte, size), nil
}

func (c *countingAllocator) Deallocate(b []byte) {
	c.frees++
	c.freed += len(b)
}

// skewedAllocator returns storage that starts one byte into a heap block.
type skewedAllocator struct {
	frees int
}

func (s *skewedAllocator) Allocate(size int) ([]byte, error) {
	b := make([]byte, size+8)
	return b[1 : size+1], nil
}

func (s *skewedAllocator) Deallocate([]byte) {
	s.frees++
}

// shortAllocator returns one byte less than requested.
type shortAllocator struct {
	frees int
}

func (s *shortAllocator) Allocate(size int) ([]byte, error) {
	return make([]byte, size-1), nil
}

func (s *shortAllocator) Deallocate([]byte) {
	s.frees++
}

var errInit = errors.New("init refused")

// lifecycle is a pointer-free element that counts hook invocations through
// package-level counters. Tests using it reset the counters first.
type lifecycle struct {
	id int
}

var (
	lifecycleInits     int
	lifecycleDestroys  int
	lifecycleClones    int
	lifecycleInitLimit = -1
)

func resetLifecycle() {
	lifecycleInits = 0
	lifecycleDestroys = 0
	lifecycleClones = 0
	lifecycleInitLimit = -1
}

func (l *lifecycle) Init() error {
	if lifecycleInitLimit >= 0 && lifecycleInits >= lifecycleInitLimit {
		return errInit
	}
	lifecycleInits++
	l.id = lifecycleInits
	return nil
}

func (l *lifecycle) Destroy() {
	lifecycleDestroys++
}

func (l lifecycle) Clone() (lifecycle, error) {
	lifecycleClones++
	return l, nil
}

// blob owns a byte slice and deep-copies it.
type blob struct {
	data []byte
}

func (b blob) Clone() (blob, error) {
	return blob{data: append([]byte(nil), b.data...)}, nil
}

func ints(v *Vector[int]) []int {
	return append([]int(nil), v.Elements()...)
}

func fromInts(t interface{ Fatalf(string, ...any) }, xs ...int) *Vector[int] {
	v := New[int]()
	for _, x := range xs {
		if err := v.Append(x); err != nil {
			t.Fatalf("Append(%d): %v", x, err)
		}
	}
	return v
}
