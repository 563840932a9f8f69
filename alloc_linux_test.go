package vec

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"
)

func TestMmapAllocatorRoundTrip(t *testing.T) {
	m := NewMmapAllocator()

	p := m.Allocate(128, 8)
	require.NotNil(t, p)
	require.Equal(t, 1, m.Live())

	b := unsafe.Slice((*byte)(p), 128)
	for i := range b {
		b[i] = byte(i)
	}

	// Stay within one page, then force a real remap.
	p = m.Reallocate(p, 128, 256, 8)
	require.NotNil(t, p)
	p = m.Reallocate(p, 256, 1<<20, 8)
	require.NotNil(t, p)
	require.Equal(t, 1, m.Live())

	b = unsafe.Slice((*byte)(p), 128)
	for i := range b {
		require.Equal(t, byte(i), b[i])
	}

	m.Deallocate(p, 1<<20, 8)
	require.Equal(t, 0, m.Live())
}

func TestMmapAllocatorUnknownAddressPanics(t *testing.T) {
	m := NewMmapAllocator()
	var x byte
	p := unsafe.Pointer(&x)

	require.Panics(t, func() { m.Deallocate(p, 1, 1) })
	require.Panics(t, func() { m.Reallocate(p, 1, 2, 1) })
}

func TestVecOnMmapAllocator(t *testing.T) {
	m := NewMmapAllocator()
	prev := DefaultAllocator
	DefaultAllocator = m
	defer func() { DefaultAllocator = prev }()

	v := New[int64]()
	const count = 1 << 12 // crosses several page-span growths
	for i := int64(0); i < count; i++ {
		v.Push(i * 3)
	}
	require.Equal(t, count, v.Len())
	for i, x := range v.Slice() {
		require.Equal(t, int64(i)*3, x)
	}

	v.Release()
	require.Equal(t, 0, m.Live())
}
