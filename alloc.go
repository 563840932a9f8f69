package vec

import (
	"sync"
	"unsafe"
)

// Allocator is the raw memory source used by every Buffer. Sizes are in
// bytes; align must be a power of two. Allocate and Reallocate return nil
// on exhaustion; a failed Reallocate leaves the old block untouched.
type Allocator interface {
	Allocate(size, align uintptr) unsafe.Pointer
	Reallocate(p unsafe.Pointer, oldSize, newSize, align uintptr) unsafe.Pointer
	Deallocate(p unsafe.Pointer, size, align uintptr)
}

// DefaultAllocator backs all buffers unless overridden. Swapping it only
// affects allocations made afterwards; a block must be returned to the
// allocator that produced it.
var DefaultAllocator Allocator = NewHeapAllocator()

// HeapAllocator carves blocks out of Go-heap byte arrays and pins each one
// in a registry so the garbage collector keeps the backing array alive while
// the block is outstanding. The allocator is process-global state, so the
// registry is mutex-guarded even though containers themselves are
// single-owner.
type HeapAllocator struct {
	mu   sync.Mutex
	live map[unsafe.Pointer][]byte
}

// NewHeapAllocator creates an allocator with no outstanding blocks.
func NewHeapAllocator() *HeapAllocator {
	return &HeapAllocator{live: make(map[unsafe.Pointer][]byte)}
}

// Allocate returns a block of size bytes aligned to align.
// Returns nil if size is 0.
func (h *HeapAllocator) Allocate(size, align uintptr) unsafe.Pointer {
	if size == 0 {
		return nil
	}
	checkAlign(align)

	// Over-allocate so the handed-out address can be aligned up.
	buf := make([]byte, size+align-1)
	raw := uintptr(unsafe.Pointer(&buf[0]))
	off := alignUp(raw, align) - raw
	p := unsafe.Pointer(&buf[off])

	h.mu.Lock()
	h.live[p] = buf
	h.mu.Unlock()
	return p
}

// Reallocate moves a live block to a new block of newSize bytes, preserving
// the first min(oldSize, newSize) bytes. The old block is released only
// after the new one has been populated.
func (h *HeapAllocator) Reallocate(p unsafe.Pointer, oldSize, newSize, align uintptr) unsafe.Pointer {
	h.mu.Lock()
	_, ok := h.live[p]
	h.mu.Unlock()
	if !ok {
		panic("vec: reallocate of unknown address")
	}

	np := h.Allocate(newSize, align)
	if np == nil {
		return nil
	}
	n := oldSize
	if newSize < n {
		n = newSize
	}
	copy(unsafe.Slice((*byte)(np), n), unsafe.Slice((*byte)(p), n))
	h.Deallocate(p, oldSize, align)
	return np
}

// Deallocate releases a live block back to the Go heap.
func (h *HeapAllocator) Deallocate(p unsafe.Pointer, size, align uintptr) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.live[p]; !ok {
		panic("vec: deallocate of unknown address")
	}
	delete(h.live, p)
}

// Live returns the number of outstanding blocks.
func (h *HeapAllocator) Live() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.live)
}

func checkAlign(align uintptr) {
	if align == 0 || align&(align-1) != 0 {
		panic("vec: alignment must be a power of two")
	}
}

// alignUp rounds addr up to the next multiple of align.
func alignUp(addr, align uintptr) uintptr {
	mask := align - 1
	return (addr + mask) &^ mask
}
