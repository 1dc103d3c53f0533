package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leengari/recstore/internal/domain/errors"
	"github.com/leengari/recstore/internal/domain/schema"
)

// MockObserver is a test observer that records events
type MockObserver struct {
	Events []Event
}

func (m *MockObserver) OnEvent(event Event) {
	m.Events = append(m.Events, event)
}

func testSchema(t *testing.T) *schema.Schema {
	t.Helper()
	sch, err := schema.New([]schema.Column{
		{Name: "id", Type: schema.ColumnTypeInt},
		{Name: "value", Type: schema.ColumnTypeInt},
	}, 0)
	require.NoError(t, err)
	return sch
}

func TestCreateAndGetTable(t *testing.T) {
	eng := New()

	created, err := eng.CreateTable("grades", testSchema(t))
	require.NoError(t, err)

	got, err := eng.GetTable("grades")
	require.NoError(t, err)
	assert.Same(t, created, got)
	assert.Equal(t, created.ID, got.ID)
}

func TestCreateTableAlreadyExists(t *testing.T) {
	eng := New()

	_, err := eng.CreateTable("grades", testSchema(t))
	require.NoError(t, err)

	_, err = eng.CreateTable("grades", testSchema(t))
	var existsErr *errors.TableExistsError
	require.ErrorAs(t, err, &existsErr)
	assert.Equal(t, "grades", existsErr.Name)
}

func TestGetTableNotFound(t *testing.T) {
	eng := New()

	_, err := eng.GetTable("missing")
	var nfErr *errors.TableNotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestDropTable(t *testing.T) {
	eng := New()

	_, err := eng.CreateTable("grades", testSchema(t))
	require.NoError(t, err)
	require.NoError(t, eng.DropTable("grades"))

	_, err = eng.GetTable("grades")
	var nfErr *errors.TableNotFoundError
	require.ErrorAs(t, err, &nfErr)

	err = eng.DropTable("grades")
	require.ErrorAs(t, err, &nfErr)
}

func TestTablesListing(t *testing.T) {
	eng := New()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		_, err := eng.CreateTable(name, testSchema(t))
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"alpha", "mid", "zeta"}, eng.Tables())
}

func TestEnginesAreIndependent(t *testing.T) {
	a := New()
	b := New()

	_, err := a.CreateTable("grades", testSchema(t))
	require.NoError(t, err)

	_, err = b.GetTable("grades")
	var nfErr *errors.TableNotFoundError
	require.ErrorAs(t, err, &nfErr)
}

func TestAddObserver(t *testing.T) {
	eng := New()
	observer := &MockObserver{}

	eng.AddObserver(observer)

	assert.Len(t, eng.observers, 1)
}

func TestRemoveObserver(t *testing.T) {
	eng := New()
	observer := &MockObserver{}

	eng.AddObserver(observer)
	eng.RemoveObserver(observer)

	assert.Len(t, eng.observers, 0)
}

func TestNotifyWithNoObservers(t *testing.T) {
	eng := New()

	// Should not panic
	_, err := eng.CreateTable("grades", testSchema(t))
	require.NoError(t, err)
}

func TestObserversReceiveLifecycleEvents(t *testing.T) {
	eng := New()
	observer1 := &MockObserver{}
	observer2 := &MockObserver{}

	eng.AddObserver(observer1)
	eng.AddObserver(observer2)

	_, err := eng.CreateTable("grades", testSchema(t))
	require.NoError(t, err)
	require.NoError(t, eng.DropTable("grades"))

	for _, obs := range []*MockObserver{observer1, observer2} {
		require.Len(t, obs.Events, 2)
		assert.Equal(t, EventTableCreate, obs.Events[0].Type)
		assert.Equal(t, EventTableDrop, obs.Events[1].Type)
		assert.Equal(t, "grades", obs.Events[0].Table)
		assert.NotEmpty(t, obs.Events[0].TableID)
		assert.False(t, obs.Events[0].Timestamp.IsZero())
	}
}
