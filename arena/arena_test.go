package arena

import (
	"errors"
	"fmt"
	"testing"
	"unsafe"

	"github.com/pavanmanishd/fixedcore"
)

func TestNewArena(t *testing.T) {
	tests := []struct {
		name     string
		size     int
		expected int
	}{
		{"default size", 0, DefaultSize},
		{"negative size", -1, DefaultSize},
		{"custom size", 8192, 8192},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := NewArena(tt.size)
			if a.Capacity() != tt.expected {
				t.Errorf("NewArena(%d) capacity = %d, want %d", tt.size, a.Capacity(), tt.expected)
			}
			if a.SizeInUse() != 0 {
				t.Errorf("NewArena(%d) size in use = %d, want 0", tt.size, a.SizeInUse())
			}
		})
	}
}

func TestArenaAllocBytes(t *testing.T) {
	a := NewArena(1024)

	b1, err := a.AllocBytes(100)
	if err != nil {
		t.Fatalf("AllocBytes(100) error = %v", err)
	}
	if len(b1) != 100 || cap(b1) != 100 {
		t.Errorf("AllocBytes(100) len/cap = %d/%d, want 100/100", len(b1), cap(b1))
	}

	b2, err := a.AllocBytes(0)
	if b2 != nil || err != nil {
		t.Errorf("AllocBytes(0) = %v, %v, want nil, nil", b2, err)
	}

	b3, err := a.AllocBytes(-1)
	if b3 != nil || err != nil {
		t.Errorf("AllocBytes(-1) = %v, %v, want nil, nil", b3, err)
	}

	// appending must not reach into the next allocation
	b4, _ := a.AllocBytes(8)
	b4[0] = 'x'
	_ = append(b1, 'y')
	if b4[0] != 'x' {
		t.Error("append to one allocation overwrote its neighbour")
	}
}

func TestArenaExhaustion(t *testing.T) {
	a := NewArena(64)

	if _, err := a.AllocBytes(48); err != nil {
		t.Fatalf("AllocBytes(48) error = %v", err)
	}
	if a.Fits(17) {
		t.Error("Fits(17) = true with 16 bytes left")
	}
	if !a.Fits(16) {
		t.Error("Fits(16) = false with 16 bytes left")
	}

	b, err := a.AllocBytes(32)
	if b != nil {
		t.Errorf("AllocBytes(32) on exhausted arena returned %d bytes", len(b))
	}
	var ce *fixedcore.CapacityError
	if !errors.As(err, &ce) {
		t.Fatalf("AllocBytes(32) error = %v, want *CapacityError", err)
	}
	if ce.Need != 32 || ce.Have != 16 {
		t.Errorf("CapacityError need/have = %d/%d, want 32/16", ce.Need, ce.Have)
	}
	if !errors.Is(err, fixedcore.ErrCapacityExceeded) {
		t.Error("error does not match ErrCapacityExceeded")
	}

	// a failed allocation leaves the arena untouched
	if a.SizeInUse() != 48 {
		t.Errorf("SizeInUse after failed alloc = %d, want 48", a.SizeInUse())
	}
	if _, err := a.AllocBytes(16); err != nil {
		t.Errorf("AllocBytes(16) error = %v", err)
	}
}

func TestArenaReset(t *testing.T) {
	a := NewArena(1024)

	b, _ := a.AllocBytes(100)
	for i := range b {
		b[i] = 0xAA
	}
	a.AllocBytes(200)

	initialSizeInUse := a.SizeInUse()
	if initialSizeInUse == 0 {
		t.Error("Expected non-zero size in use after allocations")
	}

	a.Reset()
	if a.SizeInUse() != 0 {
		t.Errorf("SizeInUse after Reset() = %d, want 0", a.SizeInUse())
	}
	if a.Capacity() != 1024 {
		t.Errorf("Capacity after Reset() = %d, want 1024", a.Capacity())
	}

	// reused memory comes back zeroed
	again, _ := a.AllocBytes(100)
	for i, c := range again {
		if c != 0 {
			t.Fatalf("byte %d = %#x after Reset, want 0", i, c)
		}
	}
}

func TestArenaMarkRewind(t *testing.T) {
	a := NewArena(256)
	a.AllocBytes(10)

	m := a.Mark()
	a.AllocBytes(100)
	a.AllocBytes(50)
	if a.SizeInUse() <= 16 {
		t.Fatalf("SizeInUse = %d, want > 16", a.SizeInUse())
	}

	a.Rewind(m)
	if a.SizeInUse() != 10 {
		t.Errorf("SizeInUse after Rewind = %d, want 10", a.SizeInUse())
	}
	if a.HighWater() < 160 {
		t.Errorf("HighWater = %d, want >= 160", a.HighWater())
	}

	// a mark from before Reset no longer points inside the live region
	ahead := a.Mark()
	a.Reset()
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic rewinding to a mark taken before Reset")
		}
	}()
	a.Rewind(ahead)
}

func TestArenaRewindAheadOfOffset(t *testing.T) {
	a := NewArena(256)
	m := a.Mark()
	a.AllocBytes(32)
	inner := a.Mark()
	a.Rewind(m)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic rewinding to a mark ahead of the offset")
		}
	}()
	a.Rewind(inner)
}

func TestArenaRewindStaleMarkAfterRegrowth(t *testing.T) {
	a := NewArena(512)
	a.AllocBytes(64)
	stale := a.Mark()

	a.Reset()
	a.AllocBytes(128)

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic rewinding to a mark taken before Reset")
		}
		if a.SizeInUse() != 128 {
			t.Errorf("SizeInUse = %d, want 128 (rejected rewind must not move the offset)", a.SizeInUse())
		}
	}()
	a.Rewind(stale)
}

func TestArenaRelease(t *testing.T) {
	a := NewArena(1024)
	a.AllocBytes(100)

	a.Release()

	if a.Capacity() != 0 {
		t.Error("Expected zero capacity after Release()")
	}

	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic on use after Release()")
		}
	}()
	a.AllocBytes(100)
}

func TestAlignPtr(t *testing.T) {
	ptrSize := unsafe.Sizeof(uintptr(0))

	tests := []struct {
		input    uintptr
		expected uintptr
	}{
		{0, 0},
		{1, ptrSize},
		{ptrSize, ptrSize},
		{ptrSize + 1, ptrSize * 2},
	}

	for _, tt := range tests {
		result := alignPtr(tt.input)
		if result != tt.expected {
			t.Errorf("alignPtr(%d) = %d, want %d", tt.input, result, tt.expected)
		}
	}
}

func BenchmarkArenaAllocBytes(b *testing.B) {
	a := NewArena(1024 * 1024)
	sizes := []int{8, 64, 256, 1024}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("size-%d", size), func(b *testing.B) {
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				a.AllocBytes(size)
				if i%1000 == 999 {
					a.Reset()
				}
			}
		})
	}
}

func BenchmarkArenaVsBuiltin(b *testing.B) {
	b.Run("arena", func(b *testing.B) {
		a := NewArena(1024 * 1024)
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			a.AllocBytes(64)
			if i%1000 == 999 {
				a.Reset()
			}
		}
	})

	b.Run("builtin", func(b *testing.B) {
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = make([]byte, 64)
		}
	})
}
