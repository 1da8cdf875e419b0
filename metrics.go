package vector

import "unsafe"

// ElemSize returns the size in bytes of one element slot.
func (v *Vector[T]) ElemSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// BytesInUse returns the number of bytes occupied by live elements.
func (v *Vector[T]) BytesInUse() int {
	return v.size * v.ElemSize()
}

// BytesReserved returns the number of bytes of element storage owned by v,
// live or not.
func (v *Vector[T]) BytesReserved() int {
	return v.buf.cap * v.ElemSize()
}

// Utilization returns Size()/Capacity() (0.0 to 1.0).
// Returns 0.0 if the vector has no capacity.
func (v *Vector[T]) Utilization() float64 {
	if v.buf.cap == 0 {
		return 0
	}
	return float64(v.size) / float64(v.buf.cap)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() Metrics {
	return Metrics{
		Size:          v.size,
		Capacity:      v.buf.cap,
		ElemSize:      v.ElemSize(),
		BytesInUse:    v.BytesInUse(),
		BytesReserved: v.BytesReserved(),
		Utilization:   v.Utilization(),
	}
}

// Metrics contains statistical information about a vector.
type Metrics struct {
	Size          int     // Live elements
	Capacity      int     // Element slots
	ElemSize      int     // Bytes per slot
	BytesInUse    int     // Size * ElemSize
	BytesReserved int     // Capacity * ElemSize
	Utilization   float64 // Ratio of size to capacity (0.0-1.0)
}
