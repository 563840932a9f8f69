// Package vec implements a growable contiguous array with manual memory
// management for Go.
//
// # Overview
//
// A Vec owns a resizable block of uninitialized memory obtained from a raw
// allocator and tracks a logical length separate from the allocated
// capacity. Unlike a built-in slice, its storage lives outside the garbage
// collector's view and is released explicitly. This is useful for:
//
//   - Large transient collections that should not add GC scan work
//   - Deterministic, explicit release of element resources via drop hooks
//   - Code that needs precise control over when and how storage grows
//
// # Basic Usage
//
//	v := vec.New[int]()
//	defer v.Release() // Clean up when done
//
//	v.Push(1)
//	v.Push(2)
//	v.Insert(0, 10)
//
//	sum := 0
//	for _, x := range v.Slice() {
//		sum += x
//	}
//
//	x := v.Remove(0)     // extracts 10
//	last, ok := v.Pop()  // ok is false once empty
//	_ = x
//	_, _ = last, ok
//
// # Memory Model
//
// Storage comes from the package-global DefaultAllocator (a HeapAllocator
// unless replaced; on Linux an MmapAllocator is available). Capacity starts
// at zero and doubles on demand: 0, 1, 2, 4, 8, ... Growth may relocate the
// allocation, so slices returned by Slice and addresses of elements are
// invalid after any Push or Insert.
//
// # Element Lifetimes
//
// Every live element leaves the vector exactly once: extracted by Pop,
// Remove or an iterator's Next (ownership moves to the caller), or passed to
// the drop hook during Release. IntoIter transfers the allocation and the
// remaining elements to a single-pass iterator and leaves the vector inert;
// releasing a partially consumed iterator drops only the undelivered
// elements.
//
// # Important Notes
//
//   - A Vec is not goroutine-safe; it has exactly one owner at a time
//   - Release must be called to return the storage to the allocator
//   - Element memory is not scanned by the garbage collector: element types
//     containing Go pointers must keep their referents alive independently
//   - Zero-size element types are not supported and panic at construction
//   - Out-of-range Insert/Remove indexes are contract violations and panic
//     with a diagnostic naming the offending index
package vec
