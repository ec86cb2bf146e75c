// Package fixedcore is the allocation-bounded foundation layer of a game
// engine: fixed-capacity UTF-8 strings, non-owning string views, fixed-capacity
// vectors, a reentrancy-safe callbacks pool and the numeric/text conversion
// routines they share.
//
// # Overview
//
// Every container takes its capacity at construction and allocates its storage
// exactly once. Growth past that capacity is reported, never hidden behind a
// reallocation. This makes memory use predictable on hardware with no heap
// growth guarantees:
//
//   - fixedstr.String: owning, NUL-terminated, truncates on codepoint boundaries
//   - fixedstr.View: non-owning byte view with UTF-8 aware queries
//   - fixedvec.Vector: in-place sequential container
//   - callbacks.Pool: subscriber registry that tolerates unsubscribe mid-dispatch
//   - textconv: utoa/itoa, UTF-8 length, UTF-8 <-> wide conversion
//   - arena: fixed region bump allocator backing string and scratch buffers
//   - platform: compile target classification
//
// # Basic Usage
//
//	a := arena.NewArena(4096)
//	defer a.Release()
//
//	title, _ := fixedstr.NewIn(a, 8)
//	if _, err := title.Assign("héllo→"); errors.Is(err, fixedcore.ErrCapacityExceeded) {
//		// title holds "héllo", never a split "→"
//	}
//
//	pool := callbacks.New[int](4)
//	h, _ := pool.Subscribe(func(score int) { fmt.Println(score) })
//	pool.Dispatch(10)
//	pool.Unsubscribe(h)
//
// # Error Handling
//
// Capacity and encoding failures are returned as *CapacityError and
// *EncodingError, which unwrap to ErrCapacityExceeded and ErrMalformedEncoding.
// Caller contract breaches (out-of-range index, popping an empty vector, a base
// outside [2, 36]) panic.
//
// # Thread Safety
//
// Nothing here is goroutine-safe except arena.SafeArena. Callers sharing a
// container across goroutines must synchronize externally.
package fixedcore
