package vec

import (
	"fmt"
	"unsafe"
)

// Buffer owns a single untyped allocation holding cap slots of T. It manages
// raw capacity only; which slots hold live elements is the owner's concern,
// and Release never touches slot contents.
type Buffer[T any] struct {
	ptr unsafe.Pointer // nil while cap == 0
	cap int
}

// NewBuffer returns an empty buffer holding no allocation.
// Panics if T has zero size: capacity-based addressing is meaningless for
// zero-size elements and they are not supported.
func NewBuffer[T any]() Buffer[T] {
	assertSized[T]()
	return Buffer[T]{}
}

// Cap returns the buffer's capacity in slots.
func (b *Buffer[T]) Cap() int { return b.cap }

// Grow doubles the buffer's capacity through DefaultAllocator: 0 slots grow
// to 1, anything else to cap*2. Existing slot contents are preserved, though
// their addresses may change. Panics on allocator exhaustion; ptr and cap
// are updated only after the allocator succeeds.
func (b *Buffer[T]) Grow() {
	assertSized[T]()
	var zero T
	size, align := unsafe.Sizeof(zero), unsafe.Alignof(zero)

	if b.cap == 0 {
		p := DefaultAllocator.Allocate(size, align)
		if p == nil {
			panic("vec: out of memory growing to 1 slot")
		}
		b.ptr, b.cap = p, 1
		return
	}

	newCap := b.cap * 2
	p := DefaultAllocator.Reallocate(b.ptr, uintptr(b.cap)*size, uintptr(newCap)*size, align)
	if p == nil {
		panic(fmt.Sprintf("vec: out of memory growing to %d slots", newCap))
	}
	b.ptr, b.cap = p, newCap
}

// Release returns the allocation to the allocator and resets the buffer to
// empty. No-op on an empty buffer, so releasing twice is harmless.
func (b *Buffer[T]) Release() {
	if b.cap == 0 {
		return
	}
	var zero T
	DefaultAllocator.Deallocate(b.ptr, uintptr(b.cap)*unsafe.Sizeof(zero), unsafe.Alignof(zero))
	b.ptr, b.cap = nil, 0
}

func assertSized[T any]() {
	var zero T
	if unsafe.Sizeof(zero) == 0 {
		panic("vec: zero-size element type is not supported")
	}
}
