package vec

import "unsafe"

// Iter is a single-pass consuming iterator created by Vec.IntoIter. It owns
// the allocation taken from the vector; slots [head, tail) hold the elements
// not yet delivered. Forward-only, not restartable.
type Iter[T any] struct {
	buf  Buffer[T]
	head int
	tail int
	drop func(T)
}

// Next delivers the next element. The second result is false once the
// iterator is exhausted, and stays false on further calls.
func (it *Iter[T]) Next() (T, bool) {
	if it.head == it.tail {
		var zero T
		return zero, false
	}
	var zero T
	elem := *(*T)(unsafe.Add(it.buf.ptr, uintptr(it.head)*unsafe.Sizeof(zero)))
	it.head++
	return elem, true
}

// Remaining returns the number of elements not yet delivered.
func (it *Iter[T]) Remaining() int { return it.tail - it.head }

// Release drains every undelivered element through the drop hook, then frees
// the allocation. Safe at any point of the iteration, including before the
// first Next and after exhaustion.
func (it *Iter[T]) Release() {
	for {
		elem, ok := it.Next()
		if !ok {
			break
		}
		if it.drop != nil {
			it.drop(elem)
		}
	}
	it.buf.Release()
}
