package errors

import (
	"fmt"
	"strings"
)

// SchemaError reports a malformed schema definition
// (empty column list, key ordinal out of range, duplicate column names).
type SchemaError struct {
	Reason   string
	KeyIndex int // offending key ordinal (-1 if not relevant)
}

func (e *SchemaError) Error() string {
	if e.KeyIndex >= 0 {
		return fmt.Sprintf("invalid schema: %s (key index %d)", e.Reason, e.KeyIndex)
	}
	return fmt.Sprintf("invalid schema: %s", e.Reason)
}

func NewSchemaError(reason string) *SchemaError {
	return &SchemaError{Reason: reason, KeyIndex: -1}
}

func NewBadKeyIndex(keyIndex, numColumns int) *SchemaError {
	return &SchemaError{
		Reason:   fmt.Sprintf("key index out of range [0,%d)", numColumns),
		KeyIndex: keyIndex,
	}
}

// Represents a record that does not fit its table's schema
// (wrong value count or a value whose runtime type disagrees with the column).
type ValidationError struct {
	Table      string      // table name (empty if validated outside a table)
	Column     string      // column name (empty for arity violations)
	Value      interface{} // offending value (may be nil)
	Constraint string      // "type_mismatch" or "arity_mismatch"
	Reason     string      // human-readable explanation
	Position   int         // column ordinal where the violation occurred (-1 if unknown)
}

func (e *ValidationError) Error() string {
	var parts []string

	if e.Table != "" {
		parts = append(parts, fmt.Sprintf("validation failed in %s.%s", e.Table, e.Column))
	} else if e.Column != "" {
		parts = append(parts, fmt.Sprintf("validation failed on column %s", e.Column))
	} else {
		parts = append(parts, "validation failed")
	}

	if e.Constraint != "" {
		parts = append(parts, fmt.Sprintf("(%s)", e.Constraint))
	}

	if e.Value != nil {
		parts = append(parts, fmt.Sprintf("value=%v", e.Value))
	}

	if e.Reason != "" {
		parts = append(parts, e.Reason)
	}

	if e.Position >= 0 {
		parts = append(parts, fmt.Sprintf("at column %d", e.Position))
	}

	return strings.Join(parts, " - ")
}

func NewTypeMismatch(column string, position int, value interface{}, expectedType string) *ValidationError {
	return &ValidationError{
		Column:     column,
		Value:      value,
		Constraint: "type_mismatch",
		Reason:     fmt.Sprintf("expected type %s", expectedType),
		Position:   position,
	}
}

func NewArityMismatch(got, want int) *ValidationError {
	return &ValidationError{
		Constraint: "arity_mismatch",
		Reason:     fmt.Sprintf("record has %d values, schema has %d columns", got, want),
		Position:   -1,
	}
}

// DuplicateKeyError reports an insert whose key is already present.
type DuplicateKeyError struct {
	Table string
	Key   interface{}
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %v in table %s", e.Key, e.Table)
}

// KeyNotFoundError reports an update/select/delete on an absent key.
type KeyNotFoundError struct {
	Table string
	Key   interface{}
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %v not found in table %s", e.Key, e.Table)
}

// KeyMutationError reports an update that attempts to change the key
// column's value. Keys are immutable once inserted.
type KeyMutationError struct {
	Table  string
	Key    interface{}
	NewKey interface{}
}

func (e *KeyMutationError) Error() string {
	return fmt.Sprintf("key mutation not allowed in table %s: %v -> %v", e.Table, e.Key, e.NewKey)
}

// ColumnNotFoundError reports a reference to a column the schema does not have.
type ColumnNotFoundError struct {
	TableName  string
	ColumnName string
}

func (e *ColumnNotFoundError) Error() string {
	return fmt.Sprintf("column %s not found in table %s", e.ColumnName, e.TableName)
}

// AggregateTypeError reports a numeric aggregate requested over a
// non-numeric column.
type AggregateTypeError struct {
	Table  string
	Column string
	Op     string
}

func (e *AggregateTypeError) Error() string {
	return fmt.Sprintf("aggregate %s requires a numeric column, %s.%s is not", e.Op, e.Table, e.Column)
}

// TableExistsError reports a name collision on table creation.
type TableExistsError struct {
	Name string
}

func (e *TableExistsError) Error() string {
	return fmt.Sprintf("table %s already exists", e.Name)
}

// TableNotFoundError reports a lookup or drop of an unknown table.
type TableNotFoundError struct {
	Name string
}

func (e *TableNotFoundError) Error() string {
	return fmt.Sprintf("table %s not found", e.Name)
}
