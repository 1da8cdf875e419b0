package vector

import (
	"reflect"
	"unsafe"
)

// Initializer is implemented by element types that need more than the zero
// value to be considered constructed. Init is called on a zeroed slot.
type Initializer interface {
	Init() error
}

// Destroyer is implemented by element types that own resources which must be
// released when the element leaves the vector.
type Destroyer interface {
	Destroy()
}

// Cloner is implemented by element types whose copies must not share state
// with the original. Without it a copy is a plain Go assignment.
type Cloner[T any] interface {
	Clone() (T, error)
}

// construct default-constructs the element at p.
func construct[T any](p *T) error {
	var zero T
	*p = zero
	if in, ok := any(p).(Initializer); ok {
		if err := in.Init(); err != nil {
			*p = zero
			return err
		}
	}
	return nil
}

// destroy ends the lifetime of the element at p and zeroes the slot.
func destroy[T any](p *T) {
	if d, ok := any(p).(Destroyer); ok {
		d.Destroy()
	}
	var zero T
	*p = zero
}

// destroyRange destroys every element of s in index order.
func destroyRange[T any](s []T) {
	for i := range s {
		destroy(&s[i])
	}
}

// clone returns an independent copy of v.
func clone[T any](v T) (T, error) {
	if c, ok := any(&v).(Cloner[T]); ok {
		return c.Clone()
	}
	return v, nil
}

// relocate moves src into dst and clears src. It never fails.
func relocate[T any](dst, src []T) {
	copy(dst, src)
	clear(src)
}

// pointerFree reports whether values of t can live in memory the garbage
// collector does not scan.
func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return t.Len() == 0 || pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// rawStorable reports whether T may be placed in allocator-provided bytes.
func rawStorable[T any]() bool {
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		return false
	}
	return pointerFree(reflect.TypeFor[T]())
}
