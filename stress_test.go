package slotq

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

// Every goroutine owns its own arena; the structure itself is single-owner
// and carries no locks.
func TestStress_RandomOps(t *testing.T) {
	const (
		workers  = 4
		capacity = 64
		ops      = 20000
	)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		seed := int64(w + 1)
		g.Go(func() error {
			r := rand.New(rand.NewSource(seed))
			q := New[int](capacity)
			var model []int
			next := 0

			for op := 0; op < ops; op++ {
				if r.Intn(2) == 0 {
					err := q.Enqueue(next)
					if len(model) < capacity {
						if err != nil {
							return err
						}
						model = append(model, next)
						next++
					} else if err == nil {
						t.Errorf("worker %d: enqueue succeeded on a full list", seed)
					}
				} else {
					v, ok := q.Dequeue()
					if len(model) == 0 {
						if ok {
							t.Errorf("worker %d: dequeue succeeded on an empty list", seed)
						}
					} else {
						if !ok || v != model[0] {
							t.Errorf("worker %d: dequeue got %v, want %v", seed, v, model[0])
						}
						model = model[1:]
					}
				}
				if q.Len() != len(model) {
					t.Errorf("worker %d: length %d, model %d", seed, q.Len(), len(model))
				}
			}
			return q.Validate()
		})
	}
	require.NoError(t, g.Wait())
}

func TestStress_SpliceShuffle(t *testing.T) {
	const capacity = 128

	r := rand.New(rand.NewSource(42))
	a := NewArena[int](capacity, WithChecks(true))
	l1, l2 := a.NewList(), a.NewList()
	m1, m2 := []int{}, []int{}

	for i := 0; i < capacity; i++ {
		if r.Intn(2) == 0 {
			require.NoError(t, l1.Enqueue(i))
			m1 = append(m1, i)
		} else {
			require.NoError(t, l2.Enqueue(i))
			m2 = append(m2, i)
		}
	}

	// Bounce whole lists back and forth; order must survive every hop.
	for i := 0; i < 100; i++ {
		if r.Intn(2) == 0 {
			require.NoError(t, l2.Append(l1))
			m2 = append(m2, m1...)
			m1 = m1[:0]
		} else {
			require.NoError(t, l1.Append(l2))
			m1 = append(m1, m2...)
			m2 = m2[:0]
		}
		assert.Equal(t, m1, append([]int{}, contents(l1)...))
		assert.Equal(t, m2, append([]int{}, contents(l2)...))
		assert.Equal(t, capacity, a.InUse())
	}
}
