// Package fixedvec provides a vector whose element storage is allocated once
// at construction and never grows.
package fixedvec

import (
	"iter"

	"github.com/pavanmanishd/fixedcore"
)

// Vector is an ordered sequence of at most Cap() elements. Slots at or past
// Len() always hold the zero value, so removed elements do not keep their
// referents alive. A Vector is not safe for concurrent use.
type Vector[T any] struct {
	items []T // len(items) is the capacity
	n     int
}

// New returns an empty Vector with room for capacity elements.
// It panics if capacity < 1.
func New[T any](capacity int) *Vector[T] {
	if capacity < 1 {
		panic("fixedvec: capacity must be at least 1")
	}
	return &Vector[T]{items: make([]T, capacity)}
}

// NewFilled returns a Vector holding count copies of value.
// It panics if count is negative or exceeds capacity.
func NewFilled[T any](capacity, count int, value T) *Vector[T] {
	v := New[T](capacity)
	if count < 0 || count > capacity {
		panic("fixedvec: fill count out of range")
	}
	for i := 0; i < count; i++ {
		v.items[i] = value
	}
	v.n = count
	return v
}

func (v *Vector[T]) Len() int    { return v.n }
func (v *Vector[T]) Cap() int    { return len(v.items) }
func (v *Vector[T]) Empty() bool { return v.n == 0 }
func (v *Vector[T]) Full() bool  { return v.n == len(v.items) }

func (v *Vector[T]) checkIndex(i int) {
	if i < 0 || i >= v.n {
		panic("fixedvec: index out of range")
	}
}

// Push appends x. A full vector is left unchanged and a capacity error is
// returned.
func (v *Vector[T]) Push(x T) error {
	if v.n == len(v.items) {
		return fixedcore.NewCapacityError("fixedvec.Push", v.n+1, len(v.items))
	}
	v.items[v.n] = x
	v.n++
	return nil
}

// PushAll appends all of xs, or nothing if they do not all fit.
func (v *Vector[T]) PushAll(xs ...T) error {
	if v.n+len(xs) > len(v.items) {
		return fixedcore.NewCapacityError("fixedvec.PushAll", v.n+len(xs), len(v.items))
	}
	v.n += copy(v.items[v.n:], xs)
	return nil
}

// Insert places x at index i, shifting later elements up. i may equal Len().
func (v *Vector[T]) Insert(i int, x T) error {
	if i < 0 || i > v.n {
		panic("fixedvec: index out of range")
	}
	if v.n == len(v.items) {
		return fixedcore.NewCapacityError("fixedvec.Insert", v.n+1, len(v.items))
	}
	copy(v.items[i+1:v.n+1], v.items[i:v.n])
	v.items[i] = x
	v.n++
	return nil
}

// Pop removes and returns the last element. It panics on an empty vector.
func (v *Vector[T]) Pop() T {
	if v.n == 0 {
		panic("fixedvec: Pop on empty vector")
	}
	v.n--
	x := v.items[v.n]
	var zero T
	v.items[v.n] = zero
	return x
}

// Remove deletes and returns the element at i, preserving order.
func (v *Vector[T]) Remove(i int) T {
	v.checkIndex(i)
	x := v.items[i]
	copy(v.items[i:], v.items[i+1:v.n])
	v.n--
	var zero T
	v.items[v.n] = zero
	return x
}

// SwapRemove deletes and returns the element at i by moving the last element
// into its place. It is O(1) but does not preserve order.
func (v *Vector[T]) SwapRemove(i int) T {
	v.checkIndex(i)
	x := v.items[i]
	v.n--
	v.items[i] = v.items[v.n]
	var zero T
	v.items[v.n] = zero
	return x
}

// DeleteFunc removes every element for which del returns true, keeping the
// rest in order, and returns how many were removed.
func (v *Vector[T]) DeleteFunc(del func(T) bool) int {
	w := 0
	for r := 0; r < v.n; r++ {
		if del(v.items[r]) {
			continue
		}
		if w != r {
			v.items[w] = v.items[r]
		}
		w++
	}
	removed := v.n - w
	clear(v.items[w:v.n])
	v.n = w
	return removed
}

// Truncate shortens the vector to n elements. It panics if n is out of
// [0, Len()].
func (v *Vector[T]) Truncate(n int) {
	if n < 0 || n > v.n {
		panic("fixedvec: truncate length out of range")
	}
	clear(v.items[n:v.n])
	v.n = n
}

// Clear removes every element.
func (v *Vector[T]) Clear() {
	v.Truncate(0)
}

// At returns the element at i.
func (v *Vector[T]) At(i int) T {
	v.checkIndex(i)
	return v.items[i]
}

// Set overwrites the element at i.
func (v *Vector[T]) Set(i int, x T) {
	v.checkIndex(i)
	v.items[i] = x
}

// Ref returns a pointer to the element at i. It stays valid until the element
// is moved by a removal or insertion.
func (v *Vector[T]) Ref(i int) *T {
	v.checkIndex(i)
	return &v.items[i]
}

// Front returns the first element. It panics on an empty vector.
func (v *Vector[T]) Front() T {
	return v.At(0)
}

// Back returns the last element. It panics on an empty vector.
func (v *Vector[T]) Back() T {
	return v.At(v.n - 1)
}

// All yields index/element pairs over the elements present when iteration
// starts.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		n := v.n
		for i := 0; i < n && i < v.n; i++ {
			if !yield(i, v.items[i]) {
				return
			}
		}
	}
}

// Values yields the elements present when iteration starts.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		n := v.n
		for i := 0; i < n && i < v.n; i++ {
			if !yield(v.items[i]) {
				return
			}
		}
	}
}

// Slice returns the live elements. Its capacity is clipped to its length, so
// appending to it never writes into the vector.
func (v *Vector[T]) Slice() []T {
	return v.items[:v.n:v.n]
}

// Clone returns a copy with the same capacity.
func (v *Vector[T]) Clone() *Vector[T] {
	c := New[T](len(v.items))
	c.n = copy(c.items, v.items[:v.n])
	return c
}

// CopyFrom replaces the contents with a copy of src's. If src holds more
// elements than this vector can, nothing changes and an error is returned.
func (v *Vector[T]) CopyFrom(src *Vector[T]) error {
	if src.n > len(v.items) {
		return fixedcore.NewCapacityError("fixedvec.CopyFrom", src.n, len(v.items))
	}
	if src == v {
		return nil
	}
	copy(v.items, src.items[:src.n])
	if src.n < v.n {
		clear(v.items[src.n:v.n])
	}
	v.n = src.n
	return nil
}

// MoveFrom transfers src's elements into this vector and leaves src empty.
// If they do not fit, neither vector changes.
func (v *Vector[T]) MoveFrom(src *Vector[T]) error {
	if src == v {
		return nil
	}
	if err := v.CopyFrom(src); err != nil {
		return err
	}
	src.Clear()
	return nil
}
