//go:build linux

package vec

import (
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// MmapAllocator serves blocks from anonymous private mappings, bypassing the
// Go heap entirely. Requests are rounded up to whole pages; page alignment
// satisfies any element alignment. Reallocate uses mremap, so growth does not
// copy when the kernel can extend the mapping in place.
//
// Memory obtained here is invisible to the garbage collector. See the
// package notes on element types containing Go pointers.
type MmapAllocator struct {
	mu   sync.Mutex
	maps map[unsafe.Pointer][]byte
}

// NewMmapAllocator creates an allocator with no outstanding mappings.
func NewMmapAllocator() *MmapAllocator {
	return &MmapAllocator{maps: make(map[unsafe.Pointer][]byte)}
}

// Allocate maps a block of at least size bytes.
// Returns nil if size is 0 or the mapping fails.
func (m *MmapAllocator) Allocate(size, align uintptr) unsafe.Pointer {
	if size == 0 {
		return nil
	}
	checkAlign(align)

	data, err := unix.Mmap(-1, 0, pageCeil(size),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANONYMOUS|unix.MAP_PRIVATE)
	if err != nil {
		return nil
	}
	p := unsafe.Pointer(&data[0])

	m.mu.Lock()
	m.maps[p] = data
	m.mu.Unlock()
	return p
}

// Reallocate resizes a live mapping, moving it if the kernel must.
func (m *MmapAllocator) Reallocate(p unsafe.Pointer, oldSize, newSize, align uintptr) unsafe.Pointer {
	m.mu.Lock()
	data, ok := m.maps[p]
	m.mu.Unlock()
	if !ok {
		panic("vec: reallocate of unknown address")
	}

	newLen := pageCeil(newSize)
	if newLen == len(data) {
		// Same page span; nothing to remap.
		return p
	}
	moved, err := unix.Mremap(data, newLen, unix.MREMAP_MAYMOVE)
	if err != nil {
		return nil
	}
	np := unsafe.Pointer(&moved[0])

	m.mu.Lock()
	delete(m.maps, p)
	m.maps[np] = moved
	m.mu.Unlock()
	return np
}

// Deallocate unmaps a live block.
func (m *MmapAllocator) Deallocate(p unsafe.Pointer, size, align uintptr) {
	m.mu.Lock()
	data, ok := m.maps[p]
	if !ok {
		m.mu.Unlock()
		panic("vec: deallocate of unknown address")
	}
	delete(m.maps, p)
	m.mu.Unlock()

	unix.Munmap(data)
}

// Live returns the number of outstanding mappings.
func (m *MmapAllocator) Live() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.maps)
}

// pageCeil rounds n up to a whole number of pages.
func pageCeil(n uintptr) int {
	page := uintptr(unix.Getpagesize())
	return int(alignUp(n, page))
}
