package slotq

import (
	"fmt"

	"github.com/hupe1980/slotq/internal/slab"
)

// Validate walks the list chain and the backing arena's free chain,
// verifying the structural invariants: consistent prev/next pairing,
// acyclicity, nil head/tail sentinels, occupancy of every chained slot, a
// length matching Len, and free-chain purity. It returns a descriptive
// error on the first violation found, nil otherwise. O(capacity).
//
// Validate is the diagnostic surface behind checked mode (WithChecks); it
// is also safe to call directly from tests.
func (l *List[T]) Validate() error {
	s := l.arena.slab
	if l.first == slab.NilSlot || l.last == slab.NilSlot {
		if l.first != l.last {
			return fmt.Errorf("half-empty descriptor: head %d, tail %d", l.first, l.last)
		}
		if l.size != 0 {
			return fmt.Errorf("empty list with length %d", l.size)
		}
		return l.arena.Validate()
	}
	if !s.Occupied(l.first) {
		return fmt.Errorf("head slot %d is free", l.first)
	}
	if !s.Occupied(l.last) {
		return fmt.Errorf("tail slot %d is free", l.last)
	}
	if p := s.Prev(l.first); p != slab.NilSlot {
		return fmt.Errorf("head slot %d has predecessor %d", l.first, p)
	}
	if n := s.Next(l.last); n != slab.NilSlot {
		return fmt.Errorf("tail slot %d has successor %d", l.last, n)
	}

	count := 0
	prev := slab.NilSlot
	for i := l.first; i != slab.NilSlot; i = s.Next(i) {
		if !s.Occupied(i) {
			return fmt.Errorf("list chain contains free slot %d", i)
		}
		if p := s.Prev(i); p != prev {
			return fmt.Errorf("slot %d points back at %d, want %d", i, p, prev)
		}
		count++
		if count > s.Cap() {
			return fmt.Errorf("list chain does not terminate")
		}
		prev = i
	}
	if prev != l.last {
		return fmt.Errorf("chain ends at slot %d, descriptor tail is %d", prev, l.last)
	}
	if count != l.size {
		return fmt.Errorf("chain holds %d slots, length says %d", count, l.size)
	}
	return l.arena.Validate()
}

// Validate cross-checks the arena's free chain against its occupancy
// bookkeeping. O(capacity).
func (a *Arena[T]) Validate() error {
	if err := a.slab.ValidateFreeChain(); err != nil {
		return fmt.Errorf("arena: %w", err)
	}
	return nil
}
