package engine

import (
	"iter"

	"github.com/leengari/recstore/internal/domain/data"
)

// recordStore is the append-friendly backing store for a table's
// records. Slots are stable integer handles: a record never moves once
// placed, so the key index can reference it for its whole lifetime.
// Deleted slots go on a free list and may be handed out again by a
// later Add; reuse is invisible to every other record.
type recordStore struct {
	slots []data.Record // nil marks a free slot
	free  []int
	live  int
}

// Add places a record and returns its slot handle, reusing a freed slot
// when one is available.
func (s *recordStore) Add(rec data.Record) int {
	if n := len(s.free); n > 0 {
		slot := s.free[n-1]
		s.free = s.free[:n-1]
		s.slots[slot] = rec
		s.live++
		return slot
	}
	s.slots = append(s.slots, rec)
	s.live++
	return len(s.slots) - 1
}

// Get returns the record at slot. The caller must hold a valid handle.
func (s *recordStore) Get(slot int) data.Record {
	return s.slots[slot]
}

// Set overwrites the record at slot in place.
func (s *recordStore) Set(slot int, rec data.Record) {
	s.slots[slot] = rec
}

// Remove frees the slot for reuse.
func (s *recordStore) Remove(slot int) {
	s.slots[slot] = nil
	s.free = append(s.free, slot)
	s.live--
}

// Len returns the number of live records.
func (s *recordStore) Len() int {
	return s.live
}

// Scan iterates live records in physical slot order. The order is
// insertion order modulo slot reuse and carries no semantic meaning.
// Records are yielded without copying; callers must not retain or
// mutate them.
func (s *recordStore) Scan() iter.Seq2[int, data.Record] {
	return func(yield func(int, data.Record) bool) {
		for slot, rec := range s.slots {
			if rec == nil {
				continue
			}
			if !yield(slot, rec) {
				return
			}
		}
	}
}
