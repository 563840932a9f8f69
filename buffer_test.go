package vec

import "testing"

func TestNewBufferEmpty(t *testing.T) {
	b := NewBuffer[int]()
	if b.Cap() != 0 {
		t.Errorf("NewBuffer() cap = %d, want 0", b.Cap())
	}
	if b.ptr != nil {
		t.Error("NewBuffer() holds an allocation, want none")
	}
	b.Release() // no-op on empty
}

func TestBufferGrowSequence(t *testing.T) {
	b := NewBuffer[int64]()
	defer b.Release()

	for _, want := range []int{1, 2, 4, 8, 16} {
		b.Grow()
		if b.Cap() != want {
			t.Fatalf("Cap() after grow = %d, want %d", b.Cap(), want)
		}
		if b.ptr == nil {
			t.Fatal("grown buffer has nil base address")
		}
	}
}

func TestBufferReleaseIdempotent(t *testing.T) {
	b := NewBuffer[int]()
	b.Grow()
	b.Release()
	if b.Cap() != 0 || b.ptr != nil {
		t.Errorf("after Release: cap=%d ptr=%v, want empty", b.Cap(), b.ptr)
	}
	b.Release() // must not reach the allocator again
}

func TestBufferZeroSizePanics(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("NewBuffer[struct{}]() did not panic")
		}
	}()
	NewBuffer[struct{}]()
}

func TestBufferZeroValueGrowRejectsZeroSize(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Grow on zero-value buffer of struct{} did not panic")
		}
	}()
	var b Buffer[struct{}]
	b.Grow()
}
