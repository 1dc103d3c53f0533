package engine

import (
	"github.com/leengari/recstore/internal/domain/errors"
)

// KeyIndex maps each key value to the slot holding its record. It is the
// reason point lookup, update and delete stay O(1): every mutating table
// operation maintains it incrementally instead of scanning the store.
//
// Invariants: exactly one entry per live record, and every entry points
// at a live slot. Insert is applied only after the record is in the
// store; Remove is applied together with the record's removal.
type KeyIndex struct {
	table string
	slots map[interface{}]int
}

// NewKeyIndex creates an empty index for the named table.
func NewKeyIndex(table string) *KeyIndex {
	return &KeyIndex{
		table: table,
		slots: make(map[interface{}]int),
	}
}

// Lookup resolves a key to its slot. Pure read.
func (ix *KeyIndex) Lookup(key interface{}) (int, bool) {
	slot, ok := ix.slots[key]
	return slot, ok
}

// Insert registers key -> slot. Fails if the key is already present.
func (ix *KeyIndex) Insert(key interface{}, slot int) error {
	if _, exists := ix.slots[key]; exists {
		return &errors.DuplicateKeyError{Table: ix.table, Key: key}
	}
	ix.slots[key] = slot
	return nil
}

// Remove drops the entry for key. Fails if the key is absent.
func (ix *KeyIndex) Remove(key interface{}) error {
	if _, exists := ix.slots[key]; !exists {
		return &errors.KeyNotFoundError{Table: ix.table, Key: key}
	}
	delete(ix.slots, key)
	return nil
}

// Len returns the number of indexed keys.
func (ix *KeyIndex) Len() int {
	return len(ix.slots)
}

// Rebuild reconstructs the index from the record store in one linear
// pass. Used for consistency checks, not on the hot path.
func (ix *KeyIndex) Rebuild(store *recordStore, keyOrdinal int) error {
	rebuilt := make(map[interface{}]int, store.Len())
	for slot, rec := range store.Scan() {
		key := rec[keyOrdinal]
		if _, dup := rebuilt[key]; dup {
			return &errors.DuplicateKeyError{Table: ix.table, Key: key}
		}
		rebuilt[key] = slot
	}
	ix.slots = rebuilt
	return nil
}
