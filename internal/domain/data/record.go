package data

// Record is a single table record: one value per schema column, in
// column order. Cell i holds a value of the type declared for column i.
type Record []any

// Copy creates a copy of the record so callers cannot mutate stored data.
func (r Record) Copy() Record {
	out := make(Record, len(r))
	copy(out, r)
	return out
}

// Equal compares two records cell by cell. Values are compared with ==,
// which is sufficient for the scalar cell types the engine stores.
func (r Record) Equal(other Record) bool {
	if len(r) != len(other) {
		return false
	}
	for i := range r {
		if r[i] != other[i] {
			return false
		}
	}
	return true
}
