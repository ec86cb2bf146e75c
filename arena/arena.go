// Package arena implements a fixed-capacity bump region.
// Typical usage: create one arena per batch of work, carve string and scratch
// buffers from it, then Reset() when the batch is done for O(1) cleanup.
//
// The region is allocated once and never grows. When it is exhausted,
// allocation fails with a *fixedcore.CapacityError instead of reaching for
// the heap.
package arena

import (
	"unsafe"

	"github.com/pavanmanishd/fixedcore"
)

// DefaultSize is the default region size for new arenas (64 KiB).
const DefaultSize = 1 << 16

// Arena is a single-region bump allocator. Not goroutine-safe by default.
// Use SafeArena for concurrent access.
type Arena struct {
	buf       []byte  // backing memory, nil once released
	offset    uintptr // next free byte
	highWater uintptr // largest offset ever reached
	resets    uint64  // bumped by Reset so older marks can be told apart
}

// Mark records an allocation position for Rewind.
type Mark struct {
	offset uintptr
	resets uint64
}

// NewArena creates a new Arena with a region of size bytes.
// If size <= 0, DefaultSize is used.
func NewArena(size int) *Arena {
	if size <= 0 {
		size = DefaultSize
	}
	return &Arena{buf: make([]byte, size)}
}

// AllocBytes returns n zeroed bytes from the region, aligned to pointer size.
// The slice's capacity is n, so appending to it never spills into a
// neighbouring allocation. Returns nil, nil if n <= 0.
func (a *Arena) AllocBytes(n int) ([]byte, error) {
	a.panicIfReleased()
	if n <= 0 {
		return nil, nil
	}

	off := alignPtr(a.offset)
	if off+uintptr(n) > uintptr(len(a.buf)) {
		return nil, fixedcore.NewCapacityError("arena.AllocBytes", n, a.Remaining())
	}
	start := int(off)
	a.offset = off + uintptr(n)
	if a.offset > a.highWater {
		a.highWater = a.offset
	}

	// Memory handed out before a Reset or Rewind may still hold old data.
	b := unsafe.Slice((*byte)(unsafe.Pointer(&a.buf[start])), n)
	clear(b)
	return b, nil
}

// Fits reports whether an allocation of n bytes would succeed.
func (a *Arena) Fits(n int) bool {
	a.panicIfReleased()
	if n <= 0 {
		return true
	}
	return alignPtr(a.offset)+uintptr(n) <= uintptr(len(a.buf))
}

// Mark returns the current allocation position.
func (a *Arena) Mark() Mark {
	a.panicIfReleased()
	return Mark{offset: a.offset, resets: a.resets}
}

// Rewind releases every allocation made after m was taken. Slices handed out
// since then must no longer be used. A mark taken before a Reset, or one
// ahead of the current position, is rejected with a panic.
func (a *Arena) Rewind(m Mark) {
	a.panicIfReleased()
	if m.resets != a.resets {
		panic("arena: Rewind to a mark taken before Reset")
	}
	if m.offset > a.offset {
		panic("arena: Rewind to a mark ahead of the current position")
	}
	a.offset = m.offset
}

// Reset resets the allocation offset to zero but keeps the region for reuse.
// This provides O(1) cleanup for arena reuse.
func (a *Arena) Reset() {
	a.panicIfReleased()
	a.offset = 0
	a.resets++
}

// Release drops the region and makes the arena unusable.
// Any subsequent operations will panic.
func (a *Arena) Release() {
	a.buf = nil
	a.offset = 0
}

// panicIfReleased panics if the arena has been released.
func (a *Arena) panicIfReleased() {
	if a.buf == nil {
		panic("arena: use after Release()")
	}
}

// alignPtr aligns the offset up to pointer size alignment.
func alignPtr(off uintptr) uintptr {
	const align = unsafe.Sizeof(uintptr(0))
	mask := align - 1
	return (off + mask) & ^mask
}
