package slotq

import (
	"fmt"

	"github.com/hupe1980/slotq/internal/slab"
)

// Run bounds a contiguous run of occupied slots in a list, inclusive on both
// ends. First and Last may reference the same slot for a single-element run.
type Run struct {
	First, Last Ref
}

// Gap is a destination boundary pair: spliced content lands between Before
// and After. A zero boundary means the corresponding end of the list, so the
// zero Gap addresses an empty list. When the pair is not adjacent, the slots
// between them take part in the exchange; see Splice.
type Gap struct {
	Before, After Ref
}

// FrontGap returns the insertion point before the first element.
func (l *List[T]) FrontGap() Gap { return Gap{After: ref(l.first)} }

// BackGap returns the insertion point after the last element.
func (l *List[T]) BackGap() Gap { return Gap{Before: ref(l.last)} }

// GapBefore returns the insertion point immediately before r.
func (l *List[T]) GapBefore(r Ref) Gap { return Gap{Before: l.Prev(r), After: r} }

// GapAfter returns the insertion point immediately after r.
func (l *List[T]) GapAfter(r Ref) Gap { return Gap{Before: r, After: l.Next(r)} }

// Splice detaches run from l and attaches it between at.Before and at.After
// in dst, preserving the run's internal order. Splice is a symmetric
// exchange: any slots that previously sat strictly between the gap pair
// migrate into the run's vacated position in l. When the pair is adjacent
// (every Gap produced by FrontGap, BackGap, GapBefore or GapAfter) that
// inner run is empty and the splice is a pure move.
//
// Both lists must be backed by the same arena; the slots' occupied state and
// the arena's free chain are untouched. The boundary rewiring is O(1)
// regardless of run length; updating the two lengths walks the moved runs,
// which doubles as the check that run.Last is reachable from run.First.
//
// run must lie within l and at within dst; boundaries in some third list
// sharing the arena are not detected and corrupt all lists involved.
func (l *List[T]) Splice(run Run, dst *List[T], at Gap) error {
	if dst == nil || dst == l {
		return ErrSameList
	}
	if l.arena != dst.arena {
		return ErrArenaMismatch
	}
	s := l.arena.slab

	rf, rl := run.First.index(), run.Last.index()
	if rf == slab.NilSlot || rl == slab.NilSlot {
		return fmt.Errorf("%w: run boundary references no slot", ErrInvalidRef)
	}
	if !s.Occupied(rf) || !s.Occupied(rl) {
		return fmt.Errorf("%w: run boundary references a free slot", ErrInvalidRef)
	}
	b, a := at.Before.index(), at.After.index()
	if b != slab.NilSlot && !s.Occupied(b) {
		return fmt.Errorf("%w: gap boundary references a free slot", ErrInvalidRef)
	}
	if a != slab.NilSlot && !s.Occupied(a) {
		return fmt.Errorf("%w: gap boundary references a free slot", ErrInvalidRef)
	}
	if b == slab.NilSlot && a == slab.NilSlot && dst.first != slab.NilSlot {
		return fmt.Errorf("%w: zero gap on a non-empty destination", ErrInvalidGap)
	}

	// Count the run; also proves rl is reachable from rf.
	runLen := 0
	for i := rf; ; i = s.Next(i) {
		if i == slab.NilSlot {
			return fmt.Errorf("%w: Last not reachable from First", ErrInvalidRun)
		}
		runLen++
		if runLen > l.size {
			return fmt.Errorf("%w: run is longer than the source list", ErrInvalidRun)
		}
		if i == rl {
			break
		}
	}

	// Inner run currently between the gap pair, empty when the pair is
	// adjacent.
	mf, ml := dst.first, dst.last
	if b != slab.NilSlot {
		mf = s.Next(b)
	}
	if a != slab.NilSlot {
		ml = s.Prev(a)
	}
	if mf == a {
		mf, ml = slab.NilSlot, slab.NilSlot
	} else if mf == slab.NilSlot || ml == slab.NilSlot {
		return fmt.Errorf("%w: boundary pair is not an ordered pair of the destination", ErrInvalidGap)
	}
	innerLen := 0
	if mf != slab.NilSlot {
		for i := mf; ; i = s.Next(i) {
			if i == slab.NilSlot {
				return fmt.Errorf("%w: After not reachable from Before", ErrInvalidGap)
			}
			innerLen++
			if innerLen > dst.size {
				return fmt.Errorf("%w: gap spans more slots than the destination holds", ErrInvalidGap)
			}
			if i == ml {
				break
			}
		}
	}

	// Read the source boundaries before any rewiring.
	sp, sn := s.Prev(rf), s.Next(rl)

	// Attach the run between the gap pair.
	s.SetPrev(rf, b)
	if b != slab.NilSlot {
		s.SetNext(b, rf)
	} else {
		dst.first = rf
	}
	s.SetNext(rl, a)
	if a != slab.NilSlot {
		s.SetPrev(a, rl)
	} else {
		dst.last = rl
	}

	// Attach the inner run, or close the hole, in the source.
	if mf == slab.NilSlot {
		if sp != slab.NilSlot {
			s.SetNext(sp, sn)
		} else {
			l.first = sn
		}
		if sn != slab.NilSlot {
			s.SetPrev(sn, sp)
		} else {
			l.last = sp
		}
	} else {
		s.SetPrev(mf, sp)
		if sp != slab.NilSlot {
			s.SetNext(sp, mf)
		} else {
			l.first = mf
		}
		s.SetNext(ml, sn)
		if sn != slab.NilSlot {
			s.SetPrev(sn, ml)
		} else {
			l.last = ml
		}
	}

	l.size += innerLen - runLen
	dst.size += runLen - innerLen
	l.checked("splice")
	dst.checked("splice")
	return nil
}

// Append moves the entire contents of src onto the back of l, emptying src.
// The lists must share an arena. O(1) regardless of length.
func (l *List[T]) Append(src *List[T]) error {
	if src == nil || src == l {
		return ErrSameList
	}
	if l.arena != src.arena {
		return ErrArenaMismatch
	}
	if src.first == slab.NilSlot {
		return nil
	}
	s := l.arena.slab
	if l.last == slab.NilSlot {
		l.first, l.last = src.first, src.last
	} else {
		s.SetNext(l.last, src.first)
		s.SetPrev(src.first, l.last)
		l.last = src.last
	}
	l.size += src.size
	src.first, src.last, src.size = slab.NilSlot, slab.NilSlot, 0
	l.checked("append")
	src.checked("append")
	return nil
}
