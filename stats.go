package slotq

// Stats is a point-in-time snapshot of arena usage. InUse + Free always
// equals Capacity.
type Stats struct {
	Capacity      int
	InUse         int
	Free          int
	TotalAllocs   uint64
	TotalReleases uint64
}

// Stats returns the arena's current usage counters.
func (a *Arena[T]) Stats() Stats {
	return Stats{
		Capacity:      a.slab.Cap(),
		InUse:         a.slab.InUse(),
		Free:          a.slab.Free(),
		TotalAllocs:   a.slab.Allocs(),
		TotalReleases: a.slab.Releases(),
	}
}
