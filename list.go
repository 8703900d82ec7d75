package slotq

import (
	"fmt"

	"github.com/hupe1980/slotq/internal/slab"
)

// Ref is an opaque reference to a slot in an arena. It conveys location,
// never ownership. The zero Ref references no slot.
type Ref struct {
	off uint32 // slot index + 1; 0 references nothing
}

// IsNil reports whether r references no slot.
func (r Ref) IsNil() bool { return r.off == 0 }

func ref(i int32) Ref {
	if i == slab.NilSlot {
		return Ref{}
	}
	return Ref{off: uint32(i) + 1}
}

func (r Ref) index() int32 {
	if r.off == 0 {
		return slab.NilSlot
	}
	return int32(r.off) - 1
}

// Arena is a fixed pool of slots backing one or more lists. All slots are
// allocated at construction; the arena never grows or shrinks.
type Arena[T any] struct {
	slab *slab.Arena[T]
	opts options
}

// NewArena creates an arena of exactly capacity slots. capacity == 0 is a
// valid degenerate arena on which every Enqueue fails.
func NewArena[T any](capacity int, opts ...Option) *Arena[T] {
	if capacity < 0 {
		panic(fmt.Sprintf("slotq: negative capacity %d", capacity))
	}
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	a := &Arena[T]{slab: slab.New[T](capacity), opts: o}
	if o.logger != nil {
		o.logger.Debug("arena created", "capacity", capacity, "checks", o.checks)
	}
	return a
}

// NewList attaches a new empty list to the arena. One arena may back any
// number of lists; slots move between them via Splice and Append.
func (a *Arena[T]) NewList() *List[T] {
	return &List[T]{arena: a, first: slab.NilSlot, last: slab.NilSlot}
}

// Cap returns the arena's slot capacity.
func (a *Arena[T]) Cap() int { return a.slab.Cap() }

// Free returns the number of slots available for allocation.
func (a *Arena[T]) Free() int { return a.slab.Free() }

// InUse returns the number of occupied slots across all lists.
func (a *Arena[T]) InUse() int { return a.slab.InUse() }

// List is a FIFO sequence of occupied slots drawn from one arena. The
// descriptor (head, tail, length) lives in the List itself, never in the
// arena. The zero List is not usable; obtain lists from New or
// Arena.NewList.
type List[T any] struct {
	arena *Arena[T]
	first int32
	last  int32
	size  int
}

// New creates a list with its own dedicated arena of the given capacity.
func New[T any](capacity int, opts ...Option) *List[T] {
	return NewArena[T](capacity, opts...).NewList()
}

// Arena returns the arena backing the list.
func (l *List[T]) Arena() *Arena[T] { return l.arena }

// Len returns the number of elements in the list. O(1).
func (l *List[T]) Len() int { return l.size }

// Cap returns the capacity of the backing arena.
func (l *List[T]) Cap() int { return l.arena.slab.Cap() }

// Empty reports whether the list holds no elements.
func (l *List[T]) Empty() bool { return l.first == slab.NilSlot }

// Enqueue appends value at the tail. It fails with ErrCapacityExceeded when
// the backing arena has no free slot, leaving the list unchanged. O(1).
func (l *List[T]) Enqueue(value T) error {
	s := l.arena.slab
	i, err := s.Alloc(value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrCapacityExceeded, err)
	}
	if l.last == slab.NilSlot {
		if l.first != slab.NilSlot {
			l.corrupt("tail is nil while head is slot %d", l.first)
		}
		l.first, l.last = i, i
	} else {
		s.SetNext(l.last, i)
		s.SetPrev(i, l.last)
		l.last = i
	}
	l.size++
	l.checked("enqueue")
	return nil
}

// Dequeue removes the head element and returns its value, releasing the slot
// back to the arena's free chain. The second result is false when the list
// is empty. O(1).
func (l *List[T]) Dequeue() (T, bool) {
	if l.first == slab.NilSlot {
		var zero T
		return zero, false
	}
	s := l.arena.slab
	head := l.first
	if p := s.Prev(head); p != slab.NilSlot {
		l.corrupt("head slot %d has predecessor %d", head, p)
	}
	next := s.Next(head)
	if next != slab.NilSlot {
		if s.Prev(next) != head {
			l.corrupt("slot %d does not point back at head slot %d", next, head)
		}
		s.SetPrev(next, slab.NilSlot)
		l.first = next
	} else {
		if l.last != head {
			l.corrupt("single-element list with head slot %d, tail slot %d", head, l.last)
		}
		l.first, l.last = slab.NilSlot, slab.NilSlot
	}
	value := s.Release(head)
	l.size--
	l.checked("dequeue")
	return value, true
}

// Front returns a Ref to the head slot, or the zero Ref when empty.
func (l *List[T]) Front() Ref { return ref(l.first) }

// Back returns a Ref to the tail slot, or the zero Ref when empty.
func (l *List[T]) Back() Ref { return ref(l.last) }

// Next returns the slot following r, or the zero Ref at the tail or when r
// is stale.
func (l *List[T]) Next(r Ref) Ref {
	i := r.index()
	if !l.arena.slab.Occupied(i) {
		return Ref{}
	}
	return ref(l.arena.slab.Next(i))
}

// Prev returns the slot preceding r, or the zero Ref at the head or when r
// is stale.
func (l *List[T]) Prev(r Ref) Ref {
	i := r.index()
	if !l.arena.slab.Occupied(i) {
		return Ref{}
	}
	return ref(l.arena.slab.Prev(i))
}

// Value returns the value held by the slot r references. The second result
// is false when r references no live slot.
func (l *List[T]) Value(r Ref) (T, bool) {
	i := r.index()
	if !l.arena.slab.Occupied(i) {
		var zero T
		return zero, false
	}
	return l.arena.slab.Value(i), true
}

// Walk calls fn for each value from head to tail, stopping early when fn
// returns false.
func (l *List[T]) Walk(fn func(T) bool) {
	s := l.arena.slab
	for i := l.first; i != slab.NilSlot; i = s.Next(i) {
		if !fn(s.Value(i)) {
			return
		}
	}
}

func (l *List[T]) corrupt(format string, args ...any) {
	panic(fmt.Sprintf("slotq: invariant violation: "+format, args...))
}

// checked runs the full structural validation after a mutating operation
// when the arena was built with WithChecks(true).
func (l *List[T]) checked(op string) {
	if !l.arena.opts.checks {
		return
	}
	if err := l.Validate(); err != nil {
		if l.arena.opts.logger != nil {
			l.arena.opts.logger.Error("structure corrupted", "op", op, "error", err)
		}
		panic(fmt.Sprintf("slotq: invariant violation after %s: %v", op, err))
	}
}
