// Package callbacks provides a fixed-capacity multicast callback list that
// tolerates subscribing and unsubscribing from inside its own dispatch.
//
// Removal during a dispatch only marks the slot. The slot is compacted away
// when the outermost dispatch returns, so the dispatch loop never sees its
// slots move underneath it.
package callbacks

import (
	"cmp"
	"slices"

	"github.com/pavanmanishd/fixedcore"
	"github.com/pavanmanishd/fixedcore/fixedvec"
)

// Handle identifies a subscription. Handles are issued in increasing order
// starting at 1 and are never reused, so a stale handle cannot remove a later
// subscription. The zero Handle is never issued.
type Handle uint64

type entry[A any] struct {
	id   Handle
	fn   func(A)
	dead bool // unsubscribed while a dispatch was running
}

// Pool holds up to Cap() callbacks taking an argument of type A and invokes
// them in subscription order. A Pool is not safe for concurrent use.
type Pool[A any] struct {
	slots   *fixedvec.Vector[entry[A]]
	last    Handle
	depth   int // nested Dispatch calls in progress
	pending int // dead slots awaiting compaction
}

// New returns an empty Pool with room for capacity subscriptions.
// It panics if capacity < 1.
func New[A any](capacity int) *Pool[A] {
	return &Pool[A]{slots: fixedvec.New[entry[A]](capacity)}
}

// Subscribe registers fn and returns its handle. When every slot is taken,
// including slots vacated during a dispatch that is still running, it
// returns a capacity error. It panics if fn is nil.
func (p *Pool[A]) Subscribe(fn func(A)) (Handle, error) {
	if fn == nil {
		panic("callbacks: nil callback")
	}
	if p.slots.Full() {
		return 0, fixedcore.NewCapacityError("callbacks.Subscribe", p.slots.Len()+1, p.slots.Cap())
	}
	p.last++
	if err := p.slots.Push(entry[A]{id: p.last, fn: fn}); err != nil {
		return 0, err
	}
	return p.last, nil
}

// find returns the slot index of a live subscription, or -1. Slots are kept
// in handle order, so this is a binary search.
func (p *Pool[A]) find(h Handle) int {
	live := p.slots.Slice()
	i, ok := slices.BinarySearchFunc(live, h, func(e entry[A], h Handle) int {
		return cmp.Compare(e.id, h)
	})
	if !ok || live[i].dead {
		return -1
	}
	return i
}

// Unsubscribe removes the subscription h and reports whether it was live.
// Calling it again, or with a handle that was never issued, returns false.
// During a dispatch the callback is skipped from then on and its slot is
// freed when the outermost dispatch returns.
func (p *Pool[A]) Unsubscribe(h Handle) bool {
	i := p.find(h)
	if i < 0 {
		return false
	}
	if p.depth > 0 {
		p.slots.Ref(i).dead = true
		p.pending++
		return true
	}
	p.slots.Remove(i)
	return true
}

// Dispatch calls every live callback with arg, in subscription order.
// Callbacks subscribed during the call are not invoked by it. Callbacks
// unsubscribed during the call are not invoked after that point.
// Dispatch may be called recursively from a callback.
func (p *Pool[A]) Dispatch(arg A) {
	p.depth++
	defer p.endDispatch()

	n := p.slots.Len()
	for i := 0; i < n; i++ {
		e := p.slots.At(i)
		if e.dead {
			continue
		}
		e.fn(arg)
	}
}

// endDispatch runs even if a callback panics.
func (p *Pool[A]) endDispatch() {
	p.depth--
	if p.depth == 0 && p.pending > 0 {
		p.slots.DeleteFunc(func(e entry[A]) bool { return e.dead })
		p.pending = 0
	}
}

// Reset drops every subscription without invoking it. During a dispatch the
// remaining callbacks are skipped and the slots freed when it returns.
func (p *Pool[A]) Reset() {
	if p.depth == 0 {
		p.slots.Clear()
		p.pending = 0
		return
	}
	for i := 0; i < p.slots.Len(); i++ {
		e := p.slots.Ref(i)
		if !e.dead {
			e.dead = true
			p.pending++
		}
	}
}

// Len returns the number of live subscriptions.
func (p *Pool[A]) Len() int { return p.slots.Len() - p.pending }

// Cap returns the maximum number of subscriptions.
func (p *Pool[A]) Cap() int { return p.slots.Cap() }

// Contains reports whether h is a live subscription.
func (p *Pool[A]) Contains(h Handle) bool { return p.find(h) >= 0 }

// Dispatching reports whether a Dispatch call is in progress.
func (p *Pool[A]) Dispatching() bool { return p.depth > 0 }
