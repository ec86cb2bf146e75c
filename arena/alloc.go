package arena

import (
	"reflect"
	"sync"
	"unsafe"
)

// pointerFree caches the per-type check behind Alloc and AllocSlice.
var pointerFree sync.Map // reflect.Type -> bool

// checkPointerFree panics if T holds Go pointers. Arena memory is a []byte the
// collector does not scan, so a pointer stored there would not keep its
// referent alive.
func checkPointerFree[T any]() {
	t := reflect.TypeFor[T]()
	if ok, cached := pointerFree.Load(t); cached {
		if !ok.(bool) {
			panic("arena: " + t.String() + " contains pointers")
		}
		return
	}
	ok := !hasPointers(t)
	pointerFree.Store(t, ok)
	if !ok {
		panic("arena: " + t.String() + " contains pointers")
	}
}

func hasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && hasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if hasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		return true
	}
}

// Alloc returns a pointer to a zeroed T stored inside the arena.
// T must be pointer-free. The pointer is valid until the arena is reset,
// rewound past it, or released.
func Alloc[T any](a *Arena) (*T, error) {
	checkPointerFree[T]()
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 {
		return &zero, nil
	}
	b, err := a.AllocBytes(size)
	if err != nil {
		return nil, err
	}
	return (*T)(unsafe.Pointer(&b[0])), nil
}

// AllocSlice allocates a slice of n zeroed elements of type T inside the
// arena. T must be pointer-free. Returns nil, nil if n <= 0.
func AllocSlice[T any](a *Arena, n int) ([]T, error) {
	checkPointerFree[T]()
	if n <= 0 {
		return nil, nil
	}
	var zero T
	elemSize := int(unsafe.Sizeof(zero))
	if elemSize == 0 {
		return make([]T, n), nil
	}
	b, err := a.AllocBytes(elemSize * n)
	if err != nil {
		return nil, err
	}
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n), nil
}
