package vec

import "unsafe"

// ElemSize returns the size of one element slot in bytes.
func (v *Vec[T]) ElemSize() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}

// SizeInUse returns the number of bytes occupied by live elements.
func (v *Vec[T]) SizeInUse() int {
	return v.len * v.ElemSize()
}

// Capacity returns the total size of the backing allocation in bytes.
func (v *Vec[T]) Capacity() int {
	return v.buf.cap * v.ElemSize()
}

// Utilization returns the ratio of live slots to capacity (0.0 to 1.0).
// Returns 0.0 while no allocation is held.
func (v *Vec[T]) Utilization() float64 {
	if v.buf.cap == 0 {
		return 0
	}
	return float64(v.len) / float64(v.buf.cap)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vec[T]) Metrics() VecMetrics {
	return VecMetrics{
		Len:         v.len,
		Cap:         v.buf.cap,
		ElemSize:    v.ElemSize(),
		SizeInUse:   v.SizeInUse(),
		Capacity:    v.Capacity(),
		Utilization: v.Utilization(),
	}
}

// VecMetrics contains statistical information about a vector.
type VecMetrics struct {
	Len         int     // Live elements
	Cap         int     // Capacity in slots
	ElemSize    int     // Bytes per slot
	SizeInUse   int     // Bytes occupied by live elements
	Capacity    int     // Total allocation size in bytes
	Utilization float64 // Ratio of live slots to capacity (0.0-1.0)
}
