package fixedvec

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pavanmanishd/fixedcore"
)

func TestNew(t *testing.T) {
	v := New[int](4)
	assert.Equal(t, 0, v.Len())
	assert.Equal(t, 4, v.Cap())
	assert.True(t, v.Empty())
	assert.False(t, v.Full())

	assert.Panics(t, func() { New[int](0) })

	f := NewFilled(5, 3, "x")
	assert.Equal(t, []string{"x", "x", "x"}, f.Slice())
	assert.Panics(t, func() { NewFilled(2, 3, 0) })
}

func TestPushUntilFull(t *testing.T) {
	v := New[int](3)
	for i := 1; i <= 3; i++ {
		require.NoError(t, v.Push(i))
	}
	assert.True(t, v.Full())

	err := v.Push(4)
	var ce *fixedcore.CapacityError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, 4, ce.Need)
	assert.Equal(t, 3, ce.Have)
	assert.Equal(t, []int{1, 2, 3}, v.Slice(), "failed push leaves the vector unchanged")
}

func TestPushAllIsAllOrNothing(t *testing.T) {
	v := New[int](4)
	require.NoError(t, v.PushAll(1, 2))
	assert.ErrorIs(t, v.PushAll(3, 4, 5), fixedcore.ErrCapacityExceeded)
	assert.Equal(t, []int{1, 2}, v.Slice())
	require.NoError(t, v.PushAll(3, 4))
	assert.Equal(t, []int{1, 2, 3, 4}, v.Slice())
}

func TestInsert(t *testing.T) {
	v := New[string](4)
	require.NoError(t, v.Insert(0, "b"))
	require.NoError(t, v.Insert(0, "a"))
	require.NoError(t, v.Insert(2, "d"))
	require.NoError(t, v.Insert(2, "c"))
	assert.Equal(t, []string{"a", "b", "c", "d"}, v.Slice())

	assert.ErrorIs(t, v.Insert(1, "x"), fixedcore.ErrCapacityExceeded)
	assert.Equal(t, []string{"a", "b", "c", "d"}, v.Slice())
	assert.Panics(t, func() { New[int](2).Insert(1, 0) })
}

func TestRemoval(t *testing.T) {
	v := New[int](8)
	require.NoError(t, v.PushAll(10, 20, 30, 40, 50))

	assert.Equal(t, 50, v.Pop())
	assert.Equal(t, 20, v.Remove(1))
	assert.Equal(t, []int{10, 30, 40}, v.Slice())

	assert.Equal(t, 10, v.SwapRemove(0))
	assert.Equal(t, []int{40, 30}, v.Slice())

	// vacated slots are zeroed
	for i := v.Len(); i < v.Cap(); i++ {
		assert.Equal(t, 0, v.items[i], "slot %d", i)
	}

	v.Clear()
	assert.True(t, v.Empty())
	assert.Panics(t, func() { v.Pop() })
	assert.Panics(t, func() { v.Remove(0) })
}

func TestClearReleasesReferents(t *testing.T) {
	v := New[*int](4)
	a, b := 1, 2
	require.NoError(t, v.PushAll(&a, &b))
	v.Clear()
	assert.Nil(t, v.items[0])
	assert.Nil(t, v.items[1])
}

func TestDeleteFunc(t *testing.T) {
	v := New[int](8)
	require.NoError(t, v.PushAll(1, 2, 3, 4, 5, 6))

	removed := v.DeleteFunc(func(x int) bool { return x%2 == 0 })
	assert.Equal(t, 3, removed)
	assert.Equal(t, []int{1, 3, 5}, v.Slice())
	assert.Equal(t, []int{0, 0, 0}, v.items[3:6])

	assert.Equal(t, 0, v.DeleteFunc(func(int) bool { return false }))
	assert.Equal(t, 3, v.DeleteFunc(func(int) bool { return true }))
	assert.True(t, v.Empty())
}

func TestTruncate(t *testing.T) {
	v := NewFilled(4, 4, 7)
	v.Truncate(1)
	assert.Equal(t, []int{7}, v.Slice())
	assert.Equal(t, []int{7, 0, 0, 0}, v.items)
	assert.Panics(t, func() { v.Truncate(2) })
}

func TestAccess(t *testing.T) {
	v := New[int](4)
	require.NoError(t, v.PushAll(1, 2, 3))

	assert.Equal(t, 1, v.Front())
	assert.Equal(t, 3, v.Back())
	assert.Equal(t, 2, v.At(1))

	v.Set(1, 20)
	*v.Ref(2) = 30
	assert.Equal(t, []int{1, 20, 30}, v.Slice())

	tests := []struct {
		name string
		fn   func()
	}{
		{"At past Len", func() { v.At(3) }},
		{"At negative", func() { v.At(-1) }},
		{"Set past Len", func() { v.Set(3, 0) }},
		{"Ref past Len", func() { v.Ref(3) }},
		{"Front empty", func() { New[int](1).Front() }},
		{"Back empty", func() { New[int](1).Back() }},
	}
	for _, tt := range tests {
		assert.Panics(t, tt.fn, tt.name)
	}
}

func TestIteration(t *testing.T) {
	v := New[string](4)
	require.NoError(t, v.PushAll("a", "b", "c"))

	var idx []int
	var got []string
	for i, s := range v.All() {
		idx = append(idx, i)
		got = append(got, s)
	}
	assert.Equal(t, []int{0, 1, 2}, idx)
	assert.Equal(t, []string{"a", "b", "c"}, got)

	// restartable, and early exit works
	assert.Equal(t, []string{"a", "b", "c"}, slices.Collect(v.Values()))
	for s := range v.Values() {
		if s == "b" {
			break
		}
	}

	// elements pushed during iteration are not visited
	count := 0
	for range v.Values() {
		count++
		_ = v.Push("z")
	}
	assert.Equal(t, 3, count)
}

func TestSliceIsClipped(t *testing.T) {
	v := New[int](4)
	require.NoError(t, v.PushAll(1, 2))
	s := v.Slice()
	assert.Equal(t, 2, cap(s))
	_ = append(s, 99)
	assert.Equal(t, 0, v.items[2])
}

func TestCloneCopyMove(t *testing.T) {
	src := New[int](4)
	require.NoError(t, src.PushAll(1, 2, 3))

	c := src.Clone()
	c.Set(0, 100)
	assert.Equal(t, 1, src.At(0))
	assert.Equal(t, 4, c.Cap())

	dst := NewFilled(8, 6, -1)
	require.NoError(t, dst.CopyFrom(src))
	assert.Equal(t, []int{1, 2, 3}, dst.Slice())
	assert.Equal(t, []int{0, 0, 0}, dst.items[3:6])

	tiny := New[int](2)
	assert.ErrorIs(t, tiny.CopyFrom(src), fixedcore.ErrCapacityExceeded)
	assert.ErrorIs(t, tiny.MoveFrom(src), fixedcore.ErrCapacityExceeded)
	assert.Equal(t, 3, src.Len(), "failed move leaves the source intact")

	moved := New[int](3)
	require.NoError(t, moved.MoveFrom(src))
	assert.Equal(t, []int{1, 2, 3}, moved.Slice())
	assert.True(t, src.Empty())
	assert.Equal(t, []int{0, 0, 0, 0}, src.items)

	require.NoError(t, moved.MoveFrom(moved))
	assert.Equal(t, 3, moved.Len())
}

func Example() {
	v := New[string](2)
	fmt.Println(v.Push("sword"), v.Push("shield"))
	fmt.Println(v.Push("potion"))
	fmt.Println(v.Slice())

	// Output:
	// <nil> <nil>
	// fixedvec.Push: capacity exceeded (need 3, have 2)
	// [sword shield]
}
