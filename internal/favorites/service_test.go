package favorites

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mikebutak/Locastore/internal/db"
	"github.com/mikebutak/Locastore/internal/search"
)

func newMockService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return NewService(&db.DB{DB: sqlDB}), mock
}

func TestSaveInsertsBusinessPayload(t *testing.T) {
	svc, mock := newMockService(t)

	b := search.Summary{
		Name:    "Pike Place Chowder",
		PlaceID: "pike-place-chowder",
		Address: "1530 Post Alley, Seattle, WA 98101",
	}
	payload, err := json.Marshal(b)
	require.NoError(t, err)

	mock.ExpectExec("INSERT INTO favorites").
		WithArgs("alice", "pike-place-chowder", payload).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, svc.Save(context.Background(), "alice", b))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveRejectsEmptyUsername(t *testing.T) {
	svc, _ := newMockService(t)

	err := svc.Save(context.Background(), "", search.Summary{PlaceID: "x"})

	assert.ErrorIs(t, err, ErrNoUsername)
}

func TestSaveRejectsMissingPlaceID(t *testing.T) {
	svc, _ := newMockService(t)

	err := svc.Save(context.Background(), "alice", search.Summary{Name: "n"})

	assert.Error(t, err)
}

func TestListReturnsStoredBusinesses(t *testing.T) {
	svc, mock := newMockService(t)

	first, _ := json.Marshal(search.Summary{Name: "First", PlaceID: "1"})
	second, _ := json.Marshal(search.Summary{Name: "Second", PlaceID: "2"})

	mock.ExpectQuery("SELECT business").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"business"}).
			AddRow(first).
			AddRow(second))

	got, err := svc.List(context.Background(), "alice")

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "First", got[0].Name)
	assert.Equal(t, "2", got[1].PlaceID)
}

func TestListEmptySetIsNotAnError(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery("SELECT business").
		WithArgs("alice").
		WillReturnRows(sqlmock.NewRows([]string{"business"}))

	got, err := svc.List(context.Background(), "alice")

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListStoreError(t *testing.T) {
	svc, mock := newMockService(t)

	mock.ExpectQuery("SELECT business").
		WithArgs("alice").
		WillReturnError(errors.New("connection refused"))

	_, err := svc.List(context.Background(), "alice")

	assert.Error(t, err)
}
