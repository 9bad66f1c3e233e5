package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"
)

func newQueryStoreMock(t *testing.T) (*QueryStore, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	store := NewQueryStore(sqlx.NewDb(db, "sqlmock"), nil)
	return store, mock, func() { db.Close() }
}

func TestQueryStoreFetchOneMissReturnsNilRow(t *testing.T) {
	store, mock, cleanup := newQueryStoreMock(t)
	defer cleanup()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM get_assignment_by_id($1)")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"assignment_id"}))

	row, err := store.FetchOne(context.Background(), QueryAssignmentByID, int64(42))
	require.NoError(t, err)
	require.Nil(t, row)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryStoreFetchAllPreservesOrder(t *testing.T) {
	store, mock, cleanup := newQueryStoreMock(t)
	defer cleanup()

	rows := sqlmock.NewRows([]string{"month", "study", "exams"}).
		AddRow("Jan", int64(10), int64(2)).
		AddRow("Feb", int64(4), int64(1)).
		AddRow("Mar", int64(7), int64(0))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT * FROM get_activity_chart($1, $2)")).
		WithArgs(int64(7), 5).
		WillReturnRows(rows)

	result, err := store.FetchAll(context.Background(), QueryActivityChart, int64(7), 5)
	require.NoError(t, err)
	require.Len(t, result, 3)
	require.Equal(t, "Jan", result[0][0])
	require.Equal(t, "Mar", result[2][0])
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestQueryStoreUnknownQuery(t *testing.T) {
	store, _, cleanup := newQueryStoreMock(t)
	defer cleanup()

	_, err := store.FetchOne(context.Background(), "nope")
	require.Error(t, err)

	_, err = store.FetchAll(context.Background(), "nope")
	require.Error(t, err)

	require.Error(t, store.Exec(context.Background(), "nope"))
}
