// Package slab implements the slot storage backing slotq lists: a
// fixed-capacity arena of typed slots, a free list threaded through the
// unused slots, and a bitset shadow of slot occupancy.
//
// The arena is the sole owner of storage. Links are int32 slot indexes and
// NilSlot (-1) terminates every chain. While a slot is free its next field
// doubles as the free-chain link and its prev field is meaningless; both are
// reset when the slot is allocated again.
//
// The arena is NOT thread-safe. It is a single-owner structure; callers
// sharing one arena across goroutines must impose their own exclusion.
package slab

import (
	"errors"
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// NilSlot terminates link chains.
const NilSlot int32 = -1

// ErrArenaFull is returned by Alloc when every slot is occupied.
var ErrArenaFull = errors.New("arena full")

type slot[T any] struct {
	value T
	next  int32 // free-chain link while the slot is free
	prev  int32
}

// Arena is a fixed-capacity pool of slots allocated once at construction
// and never grown or shrunk. Alloc and Release are O(1).
type Arena[T any] struct {
	slots    []slot[T]
	freeHead int32
	occupied *bitset.BitSet
	inUse    int

	// cumulative, never reset
	allocs   uint64
	releases uint64
}

// New creates an arena of exactly capacity slots, all free, chained
// slot 0 -> 1 -> ... -> capacity-1. O(capacity), performed once.
// A zero capacity is valid and yields an arena that can never allocate.
func New[T any](capacity int) *Arena[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("slab: negative capacity %d", capacity))
	}
	a := &Arena[T]{
		slots:    make([]slot[T], capacity),
		freeHead: NilSlot,
		occupied: bitset.New(uint(capacity)),
	}
	for i := range a.slots {
		a.slots[i].next = int32(i) + 1
		a.slots[i].prev = NilSlot
	}
	if capacity > 0 {
		a.slots[capacity-1].next = NilSlot
		a.freeHead = 0
	}
	return a
}

// Alloc pops the head of the free chain, stores value in it and returns its
// index. The slot's links are reset to NilSlot. Returns ErrArenaFull when
// no slot is available.
func (a *Arena[T]) Alloc(value T) (int32, error) {
	i := a.freeHead
	if i == NilSlot {
		return NilSlot, ErrArenaFull
	}
	if a.occupied.Test(uint(i)) {
		a.corrupt("free head %d is marked occupied during alloc", i)
	}
	a.freeHead = a.slots[i].next
	a.slots[i] = slot[T]{value: value, next: NilSlot, prev: NilSlot}
	a.occupied.Set(uint(i))
	a.inUse++
	a.allocs++
	return i, nil
}

// Release clears slot i and pushes it onto the head of the free chain,
// returning the value it held. Releasing a slot that is not occupied means
// the caller's bookkeeping is corrupted and panics.
func (a *Arena[T]) Release(i int32) T {
	a.mustOccupied(i, "release")
	value := a.slots[i].value
	a.slots[i] = slot[T]{next: a.freeHead, prev: NilSlot}
	a.occupied.Clear(uint(i))
	a.freeHead = i
	a.inUse--
	a.releases++
	return value
}

// Occupied reports whether i references a live slot. Unlike the link
// accessors it tolerates any input, so callers can vet untrusted references.
func (a *Arena[T]) Occupied(i int32) bool {
	return i >= 0 && int(i) < len(a.slots) && a.occupied.Test(uint(i))
}

// Next returns the forward link of occupied slot i.
func (a *Arena[T]) Next(i int32) int32 {
	a.mustOccupied(i, "next")
	return a.slots[i].next
}

// Prev returns the backward link of occupied slot i.
func (a *Arena[T]) Prev(i int32) int32 {
	a.mustOccupied(i, "prev")
	return a.slots[i].prev
}

// SetNext points the forward link of occupied slot i at j (or NilSlot).
func (a *Arena[T]) SetNext(i, j int32) {
	a.mustOccupied(i, "set next")
	a.slots[i].next = j
}

// SetPrev points the backward link of occupied slot i at j (or NilSlot).
func (a *Arena[T]) SetPrev(i, j int32) {
	a.mustOccupied(i, "set prev")
	a.slots[i].prev = j
}

// Value returns the value held by occupied slot i.
func (a *Arena[T]) Value(i int32) T {
	a.mustOccupied(i, "value")
	return a.slots[i].value
}

// Cap returns the number of slots the arena owns.
func (a *Arena[T]) Cap() int { return len(a.slots) }

// InUse returns the number of occupied slots.
func (a *Arena[T]) InUse() int { return a.inUse }

// Free returns the number of slots available for allocation.
func (a *Arena[T]) Free() int { return len(a.slots) - a.inUse }

// Allocs returns the cumulative allocation count.
func (a *Arena[T]) Allocs() uint64 { return a.allocs }

// Releases returns the cumulative release count.
func (a *Arena[T]) Releases() uint64 { return a.releases }

// ValidateFreeChain walks the free chain and cross-checks it against the
// occupancy shadow: every chained slot must be free, the chain must be
// acyclic, and its length must equal Free(). O(capacity).
func (a *Arena[T]) ValidateFreeChain() error {
	count := 0
	for i := a.freeHead; i != NilSlot; i = a.slots[i].next {
		if i < 0 || int(i) >= len(a.slots) {
			return fmt.Errorf("free chain links to out-of-range slot %d", i)
		}
		if a.occupied.Test(uint(i)) {
			return fmt.Errorf("free chain contains occupied slot %d", i)
		}
		count++
		if count > len(a.slots) {
			return errors.New("free chain does not terminate")
		}
	}
	if count != a.Free() {
		return fmt.Errorf("free chain has %d slots, want %d", count, a.Free())
	}
	if got := int(a.occupied.Count()); got != a.inUse {
		return fmt.Errorf("occupancy shadow counts %d slots, bookkeeping says %d", got, a.inUse)
	}
	return nil
}

func (a *Arena[T]) mustOccupied(i int32, op string) {
	if i < 0 || int(i) >= len(a.slots) {
		a.corrupt("slot %d out of range during %s", i, op)
	}
	if !a.occupied.Test(uint(i)) {
		a.corrupt("slot %d is free during %s", i, op)
	}
}

func (a *Arena[T]) corrupt(format string, args ...any) {
	panic(fmt.Sprintf("slab: invariant violation: "+format, args...))
}
