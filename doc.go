// Package slotq provides a fixed-capacity, allocation-free FIFO list backed
// by a preallocated slot arena, with constant-time splicing of runs between
// lists that share an arena.
//
// All storage is allocated once, at arena construction. Enqueue draws a slot
// from the arena's free chain and links it at the tail; Dequeue unlinks the
// head and returns its slot to the free chain. After construction no
// operation allocates.
//
// # Quick Start
//
// Single list with its own arena:
//
//	q := slotq.New[int](128)
//	_ = q.Enqueue(1)
//	_ = q.Enqueue(2)
//	v, ok := q.Dequeue() // 1, true
//
// Several lists over one arena, with splicing:
//
//	a := slotq.NewArena[string](1024)
//	pending, ready := a.NewList(), a.NewList()
//	_ = pending.Enqueue("x")
//	_ = ready.Append(pending) // whole-list transfer, O(1)
//
// # Capacity
//
// Enqueue on a full arena fails with ErrCapacityExceeded and leaves the list
// unchanged; it never reallocates. Slots freed by Dequeue are reused in
// LIFO order by later enqueues.
//
// # Ownership
//
// Arenas and lists are single-owner structures: no operation locks, blocks
// or yields. Callers sharing one arena across goroutines must impose their
// own exclusion.
//
// # Corruption
//
// Invalid caller input (a full arena, a stale Ref passed to Splice) surfaces
// as an error. A violated internal invariant (a free slot found where an
// occupied one must be, a broken prev/next pairing) means the structure's
// own bookkeeping is corrupted and panics instead; see Validate for the
// diagnostic surface.
package slotq
