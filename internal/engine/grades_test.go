package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/recstore/internal/domain/data"
	"github.com/leengari/recstore/internal/domain/schema"
)

// Full grade-book scenario: 10k records through every operation of the
// table surface.
func TestGradesEndToEnd(t *testing.T) {
	const records = 10000

	eng := New()
	sch, err := schema.New([]schema.Column{
		{Name: "student_id", Type: schema.ColumnTypeInt},
		{Name: "grade_1", Type: schema.ColumnTypeInt},
		{Name: "grade_2", Type: schema.ColumnTypeInt},
		{Name: "grade_3", Type: schema.ColumnTypeInt},
		{Name: "grade_4", Type: schema.ColumnTypeInt},
	}, 0)
	require.NoError(t, err)

	table, err := eng.CreateTable("Grades", sch)
	require.NoError(t, err)

	for i := int64(0); i < records; i++ {
		require.NoError(t, table.Insert(data.Record{i, i % 100, int64(0), int64(0), int64(0)}))
	}
	require.Equal(t, records, table.Len())

	// round-trip equality for every key
	for i := int64(0); i < records; i++ {
		got, err := table.Select(i)
		require.NoError(t, err)
		require.True(t, got.Equal(data.Record{i, i % 100, int64(0), int64(0), int64(0)}),
			"record %d did not round-trip", i)
	}

	// whole-table count and 100-record batches
	count, err := table.Aggregate("grade_1", Count)
	require.NoError(t, err)
	assert.Equal(t, float64(records), count)

	batches, err := table.AggregateBatches("grade_1", Count, 100)
	require.NoError(t, err)
	require.Len(t, batches, 100)
	total := float64(0)
	for _, b := range batches {
		total += b
	}
	assert.Equal(t, float64(records), total)

	// update every record's non-key columns and read the new values back
	for i := int64(0); i < records; i++ {
		require.NoError(t, table.Update(i, data.Record{i, int64(1), int64(2), int64(3), int64(4)}))
	}
	for i := int64(0); i < records; i++ {
		got, err := table.Select(i)
		require.NoError(t, err)
		require.True(t, got.Equal(data.Record{i, int64(1), int64(2), int64(3), int64(4)}))
	}

	// delete everything
	for i := int64(0); i < records; i++ {
		require.NoError(t, table.Delete(i))
	}
	assert.Equal(t, 0, table.Len())

	drained := 0
	for range table.SelectAll() {
		drained++
	}
	assert.Equal(t, 0, drained)
}
