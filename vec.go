package vec

import (
	"fmt"
	"unsafe"
)

// Vec is a growable contiguous array over manually managed memory.
// Slots [0, len) hold live elements; slots [len, cap) are uninitialized and
// never read. Not goroutine-safe: a Vec has exactly one owner at a time.
type Vec[T any] struct {
	buf  Buffer[T]
	len  int
	drop func(T)
}

// New creates an empty vector. No memory is allocated until the first Push
// or Insert. Panics if T has zero size.
func New[T any]() *Vec[T] {
	return &Vec[T]{buf: NewBuffer[T]()}
}

// SetDrop registers a hook run once for each element the vector (or an
// iterator consumed from it) still owns when it is released. Elements handed
// to the caller by Pop, Remove or Next are never passed to the hook;
// ownership moved with them.
func (v *Vec[T]) SetDrop(fn func(T)) { v.drop = fn }

// Len returns the number of live elements.
func (v *Vec[T]) Len() int { return v.len }

// Cap returns the capacity in slots.
func (v *Vec[T]) Cap() int { return v.buf.Cap() }

// Push appends elem, growing the buffer if it is full.
func (v *Vec[T]) Push(elem T) {
	if v.len == v.buf.cap {
		v.buf.Grow()
	}
	*v.slot(v.len) = elem
	v.len++
}

// Pop removes and returns the last element. The second result is false on an
// empty vector; that is the expected way to detect the end, not an error.
func (v *Vec[T]) Pop() (T, bool) {
	if v.len == 0 {
		var zero T
		return zero, false
	}
	v.len--
	return *v.slot(v.len), true
}

// Insert places elem at index, shifting elements at [index, Len()) one slot
// right. index may equal Len(), which appends. Panics on any other
// out-of-range index before touching the vector.
func (v *Vec[T]) Insert(index int, elem T) {
	if index < 0 || index > v.len {
		panic(fmt.Sprintf("vec: insert index %d out of range for length %d", index, v.len))
	}
	if v.len == v.buf.cap {
		v.buf.Grow()
	}
	// copy is a memmove, so the overlapping right shift relocates every slot
	// before it is overwritten.
	s := v.slots(v.len + 1)
	copy(s[index+1:], s[index:v.len])
	s[index] = elem
	v.len++
}

// Remove extracts and returns the element at index, shifting elements at
// (index, Len()) one slot left to close the gap. Panics on an empty vector
// or an out-of-range index before touching the vector. The returned element
// belongs to the caller; the drop hook does not see it.
func (v *Vec[T]) Remove(index int) T {
	if v.len == 0 {
		panic("vec: remove from empty vector")
	}
	if index < 0 || index >= v.len {
		panic(fmt.Sprintf("vec: remove index %d out of range for length %d", index, v.len))
	}
	out := *v.slot(index)
	s := v.slots(v.len)
	copy(s[index:], s[index+1:])
	v.len--
	return out
}

// Slice exposes the live elements [0, Len()) as a contiguous read-write
// view. The view aliases the vector's storage: any call that can grow the
// vector invalidates it. Returns nil when empty.
func (v *Vec[T]) Slice() []T {
	if v.len == 0 {
		return nil
	}
	return v.slots(v.len)
}

// Release pops every remaining element (newest first), passing each to the
// drop hook if one is set, then frees the backing allocation. The vector is
// empty and reusable afterwards.
func (v *Vec[T]) Release() {
	for {
		elem, ok := v.Pop()
		if !ok {
			break
		}
		if v.drop != nil {
			v.drop(elem)
		}
	}
	v.buf.Release()
}

// IntoIter consumes the vector into a forward iterator. The allocation, the
// live elements and the drop obligation all move to the iterator; the vector
// is reset to inert empty and its own Release becomes a no-op.
func (v *Vec[T]) IntoIter() *Iter[T] {
	it := &Iter[T]{buf: v.buf, tail: v.len, drop: v.drop}
	v.buf = Buffer[T]{}
	v.len = 0
	return it
}

// slot re-derives the address of slot i from the current base. Never cache
// the result across a call that can grow the buffer.
func (v *Vec[T]) slot(i int) *T {
	var zero T
	return (*T)(unsafe.Add(v.buf.ptr, uintptr(i)*unsafe.Sizeof(zero)))
}

// slots views the first n slots of the buffer as a []T. n may exceed len but
// not cap.
func (v *Vec[T]) slots(n int) []T {
	return unsafe.Slice((*T)(v.buf.ptr), n)
}
