package slotq

import "errors"

var (
	// ErrCapacityExceeded is returned by Enqueue when every slot in the
	// backing arena is occupied.
	ErrCapacityExceeded = errors.New("capacity exceeded")

	// ErrInvalidRef is returned when a Run or Gap boundary references no
	// slot where one is required, or references a free slot.
	ErrInvalidRef = errors.New("invalid slot reference")

	// ErrInvalidRun is returned when a Run's Last is not reachable from its
	// First along forward links.
	ErrInvalidRun = errors.New("run is not a contiguous range of the source list")

	// ErrInvalidGap is returned when a Gap does not address a position in
	// the destination list.
	ErrInvalidGap = errors.New("gap does not address a position in the destination list")

	// ErrArenaMismatch is returned when a splice involves lists backed by
	// different arenas.
	ErrArenaMismatch = errors.New("lists are backed by different arenas")

	// ErrSameList is returned when a splice names the same list as both
	// source and destination.
	ErrSameList = errors.New("source and destination are the same list")
)
