package engine

import (
	"fmt"

	"github.com/leengari/recstore/internal/domain/errors"
)

// AggregateOp is a reduction applied over a set of records' values in
// one column.
type AggregateOp int

const (
	Count AggregateOp = iota
	Sum
	Avg
	Min
	Max
)

// String returns a string representation of the aggregation operation
func (op AggregateOp) String() string {
	switch op {
	case Count:
		return "COUNT"
	case Sum:
		return "SUM"
	case Avg:
		return "AVG"
	case Min:
		return "MIN"
	case Max:
		return "MAX"
	default:
		return "UNKNOWN"
	}
}

// accumulator folds one column's values. Sums and averages accumulate
// in float64 regardless of the source column type so large batches of
// integers cannot overflow the running total.
type accumulator struct {
	op       AggregateOp
	n        int
	sum      float64
	min, max float64
}

func (a *accumulator) add(v float64) {
	if a.n == 0 {
		a.min, a.max = v, v
	} else {
		if v < a.min {
			a.min = v
		}
		if v > a.max {
			a.max = v
		}
	}
	a.n++
	a.sum += v
}

// result returns the folded value; an empty set yields zero.
func (a *accumulator) result() float64 {
	switch a.op {
	case Count:
		return float64(a.n)
	case Sum:
		return a.sum
	case Avg:
		if a.n == 0 {
			return 0
		}
		return a.sum / float64(a.n)
	case Min:
		return a.min
	case Max:
		return a.max
	default:
		return 0
	}
}

// Aggregate applies op to the named column over every live record.
// Count is legal on any column; sum/avg/min/max require a numeric one.
func (t *Table) Aggregate(column string, op AggregateOp) (float64, error) {
	ordinal, err := t.aggregateColumn(column, op)
	if err != nil {
		return 0, err
	}

	acc := accumulator{op: op}
	for _, rec := range t.store.Scan() {
		if op == Count {
			acc.n++
			continue
		}
		acc.add(numericValue(rec[ordinal]))
	}
	return acc.result(), nil
}

// AggregateBatches partitions the live records, in the same physical
// order SelectAll uses, into batches of batchSize and applies op to
// each batch independently. The final batch may be shorter when the
// record count does not divide evenly.
func (t *Table) AggregateBatches(column string, op AggregateOp, batchSize int) ([]float64, error) {
	if batchSize < 1 {
		return nil, fmt.Errorf("batch size must be positive, got %d", batchSize)
	}

	ordinal, err := t.aggregateColumn(column, op)
	if err != nil {
		return nil, err
	}

	results := make([]float64, 0, (t.store.Len()+batchSize-1)/batchSize)
	acc := accumulator{op: op}
	inBatch := 0

	for _, rec := range t.store.Scan() {
		if op == Count {
			acc.n++
		} else {
			acc.add(numericValue(rec[ordinal]))
		}
		inBatch++
		if inBatch == batchSize {
			results = append(results, acc.result())
			acc = accumulator{op: op}
			inBatch = 0
		}
	}
	if inBatch > 0 {
		results = append(results, acc.result())
	}

	return results, nil
}

// AggregateRange applies op to the records whose key falls within
// [low, high] under the key column's natural ordering.
func (t *Table) AggregateRange(column string, op AggregateOp, low, high interface{}) (float64, error) {
	ordinal, err := t.aggregateColumn(column, op)
	if err != nil {
		return 0, err
	}

	low, high = normalizeKey(low), normalizeKey(high)
	keyOrdinal := t.Schema.KeyIndex

	acc := accumulator{op: op}
	for _, rec := range t.store.Scan() {
		key := rec[keyOrdinal]
		if cmp, ok := compareValues(key, low); !ok || cmp < 0 {
			continue
		}
		if cmp, ok := compareValues(key, high); !ok || cmp > 0 {
			continue
		}
		if op == Count {
			acc.n++
			continue
		}
		acc.add(numericValue(rec[ordinal]))
	}
	return acc.result(), nil
}

// aggregateColumn resolves the column name and checks it can carry op.
func (t *Table) aggregateColumn(column string, op AggregateOp) (int, error) {
	ordinal := t.Schema.ColumnIndex(column)
	if ordinal < 0 {
		return 0, &errors.ColumnNotFoundError{TableName: t.Name, ColumnName: column}
	}
	if op != Count && !t.Schema.Columns[ordinal].Type.Numeric() {
		return 0, &errors.AggregateTypeError{Table: t.Name, Column: column, Op: op.String()}
	}
	return ordinal, nil
}

// numericValue widens a validated numeric cell to float64. Validation
// guarantees the cell is int64 or float64 by the time it is stored.
func numericValue(v interface{}) float64 {
	switch x := v.(type) {
	case int64:
		return float64(x)
	case float64:
		return x
	default:
		return 0
	}
}

// compareValues orders two cells of the same underlying type. Returns
// false when the values are not mutually ordered.
func compareValues(a, b interface{}) (int, bool) {
	switch x := a.(type) {
	case int64:
		y, ok := b.(int64)
		if !ok {
			return 0, false
		}
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		}
		return 0, true
	case float64:
		y, ok := b.(float64)
		if !ok {
			return 0, false
		}
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		}
		return 0, true
	case string:
		y, ok := b.(string)
		if !ok {
			return 0, false
		}
		switch {
		case x < y:
			return -1, true
		case x > y:
			return 1, true
		}
		return 0, true
	}
	return 0, false
}
