package schema

import (
	"fmt"

	"github.com/leengari/recstore/internal/domain/data"
	"github.com/leengari/recstore/internal/domain/errors"
)

// Schema describes the shape of the records a table stores: an ordered
// column list plus the ordinal of the key column. Created once at
// table-creation time and immutable afterwards.
type Schema struct {
	Columns  []Column `json:"columns"`
	KeyIndex int      `json:"key_index"`
}

// New builds a Schema from a column list and the key column's ordinal.
func New(columns []Column, keyIndex int) (*Schema, error) {
	if len(columns) == 0 {
		return nil, errors.NewSchemaError("column list is empty")
	}
	if keyIndex < 0 || keyIndex >= len(columns) {
		return nil, errors.NewBadKeyIndex(keyIndex, len(columns))
	}

	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if _, dup := seen[col.Name]; dup {
			return nil, errors.NewSchemaError(fmt.Sprintf("duplicate column name %q", col.Name))
		}
		seen[col.Name] = struct{}{}
	}

	return &Schema{
		Columns:  append([]Column(nil), columns...),
		KeyIndex: keyIndex,
	}, nil
}

// Arity returns the number of columns.
func (s *Schema) Arity() int {
	return len(s.Columns)
}

// KeyColumn returns the column records are keyed by.
func (s *Schema) KeyColumn() Column {
	return s.Columns[s.KeyIndex]
}

// ColumnIndex returns the ordinal of the named column, or -1.
func (s *Schema) ColumnIndex(name string) int {
	for i := range s.Columns {
		if s.Columns[i].Name == name {
			return i
		}
	}
	return -1
}

// Validate checks a record against the schema:
// - the value count must equal the column count
// - every value's runtime type must match the declared column type
// Integer cells are normalized to int64 in place (plain ints and whole
// float64s are accepted, fractional floats are not).
func (s *Schema) Validate(record data.Record) error {
	if len(record) != len(s.Columns) {
		return errors.NewArityMismatch(len(record), len(s.Columns))
	}

	for i, col := range s.Columns {
		val := record[i]

		switch col.Type {
		case ColumnTypeInt:
			switch v := val.(type) {
			case int64:
				// already normalized
			case int:
				record[i] = int64(v)
			case float64:
				// JSON numbers arrive as float64
				if v != float64(int64(v)) {
					return errors.NewTypeMismatch(col.Name, i, val, "integer")
				}
				record[i] = int64(v)
			default:
				return errors.NewTypeMismatch(col.Name, i, val, "integer")
			}

		case ColumnTypeFloat:
			if _, ok := val.(float64); !ok {
				return errors.NewTypeMismatch(col.Name, i, val, "float")
			}

		case ColumnTypeString:
			if _, ok := val.(string); !ok {
				return errors.NewTypeMismatch(col.Name, i, val, "string")
			}

		case ColumnTypeBool:
			if _, ok := val.(bool); !ok {
				return errors.NewTypeMismatch(col.Name, i, val, "boolean")
			}

		default:
			return errors.NewSchemaError(fmt.Sprintf("unknown column type %q", col.Type))
		}
	}

	return nil
}
