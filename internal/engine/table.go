package engine

import (
	"iter"

	"github.com/google/uuid"

	"github.com/leengari/recstore/internal/domain/data"
	"github.com/leengari/recstore/internal/domain/errors"
	"github.com/leengari/recstore/internal/domain/schema"
)

// Table owns a schema, a record store and the key index over it. One
// table is mutated by at most one logical caller at a time; callers
// needing concurrent access serialize externally or run one engine
// instance per worker. No operation blocks, so there is no context or
// cancellation on this surface.
type Table struct {
	ID     uuid.UUID
	Name   string
	Schema *schema.Schema

	store recordStore
	index *KeyIndex
}

// NewTable creates an empty table for the given schema.
func NewTable(name string, sch *schema.Schema) *Table {
	return &Table{
		ID:     uuid.New(),
		Name:   name,
		Schema: sch,
		index:  NewKeyIndex(name),
	}
}

// Len returns the number of live records.
func (t *Table) Len() int {
	return t.store.Len()
}

// Insert validates the record, extracts its key and stores it. Fails
// with DuplicateKeyError if the key is already present. The record is
// copied, so the caller's slice is never aliased by internal storage.
func (t *Table) Insert(mutRec data.Record) error {
	rec := mutRec.Copy() // prevent mutation of caller's data

	if err := t.validate(rec); err != nil {
		return err
	}

	key := rec[t.Schema.KeyIndex]
	if _, exists := t.index.Lookup(key); exists {
		return &errors.DuplicateKeyError{Table: t.Name, Key: key}
	}

	// Place the record first so the index never references an empty
	// slot, then register the key. Both steps are infallible here, so
	// the pair is applied fully or not at all.
	slot := t.store.Add(rec)
	if err := t.index.Insert(key, slot); err != nil {
		t.store.Remove(slot)
		return err
	}

	return nil
}

// Update replaces the record stored under key with newRec. The key
// column is immutable once inserted: a new record whose key column
// differs from key fails with KeyMutationError and leaves the stored
// record untouched. The index is unchanged on success since neither key
// nor slot move.
func (t *Table) Update(key interface{}, mutRec data.Record) error {
	key = normalizeKey(key)

	slot, exists := t.index.Lookup(key)
	if !exists {
		return &errors.KeyNotFoundError{Table: t.Name, Key: key}
	}

	rec := mutRec.Copy()
	if err := t.validate(rec); err != nil {
		return err
	}

	if rec[t.Schema.KeyIndex] != key {
		return &errors.KeyMutationError{
			Table:  t.Name,
			Key:    key,
			NewKey: rec[t.Schema.KeyIndex],
		}
	}

	t.store.Set(slot, rec)
	return nil
}

// Select resolves key through the index and returns a copy of the
// record, so the caller cannot corrupt internal storage.
func (t *Table) Select(key interface{}) (data.Record, error) {
	key = normalizeKey(key)

	slot, exists := t.index.Lookup(key)
	if !exists {
		return nil, &errors.KeyNotFoundError{Table: t.Name, Key: key}
	}

	return t.store.Get(slot).Copy(), nil
}

// SelectProject resolves key and returns only the columns whose ordinal
// is marked in included, in column order. A projection shorter than the
// schema covers only the columns it names.
func (t *Table) SelectProject(key interface{}, included []bool) (data.Record, error) {
	key = normalizeKey(key)

	slot, exists := t.index.Lookup(key)
	if !exists {
		return nil, &errors.KeyNotFoundError{Table: t.Name, Key: key}
	}

	rec := t.store.Get(slot)
	out := make(data.Record, 0, len(included))
	for i, keep := range included {
		if i >= len(rec) {
			break
		}
		if keep {
			out = append(out, rec[i])
		}
	}
	return out, nil
}

// SelectAll returns a lazy sequence over every live record, in physical
// slot order, yielding copies. The sequence must be fully drained
// before any mutating operation starts on the table; interleaving
// iteration with mutation is not defended against at runtime.
func (t *Table) SelectAll() iter.Seq[data.Record] {
	return func(yield func(data.Record) bool) {
		for _, rec := range t.store.Scan() {
			if !yield(rec.Copy()) {
				return
			}
		}
	}
}

// Delete removes the record stored under key and its index entry
// together. The freed slot may be reused by a later insert.
func (t *Table) Delete(key interface{}) error {
	key = normalizeKey(key)

	slot, exists := t.index.Lookup(key)
	if !exists {
		return &errors.KeyNotFoundError{Table: t.Name, Key: key}
	}

	t.store.Remove(slot)
	if err := t.index.Remove(key); err != nil {
		return err
	}

	return nil
}

// RebuildIndex reconstructs the key index from the record store. The
// incremental maintenance in Insert/Delete makes this unnecessary in
// normal operation; it exists as a consistency check.
func (t *Table) RebuildIndex() error {
	return t.index.Rebuild(&t.store, t.Schema.KeyIndex)
}

func (t *Table) validate(rec data.Record) error {
	if err := t.Schema.Validate(rec); err != nil {
		if verr, ok := err.(*errors.ValidationError); ok {
			verr.Table = t.Name
		}
		return err
	}
	return nil
}

// normalizeKey folds plain ints to int64 so caller-supplied keys match
// the normalized form stored by validation.
func normalizeKey(key interface{}) interface{} {
	if v, ok := key.(int); ok {
		return int64(v)
	}
	return key
}
