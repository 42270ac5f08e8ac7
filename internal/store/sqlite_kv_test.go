package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/fit-tracker/internal/logger"
)

func newMockKV(t *testing.T) (KeyValueStore, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	db := &DB{DB: conn, logger: logger.Nop()}
	return NewSQLiteKeyValueStore(db, logger.Nop()), mock
}

func TestSQLiteKeyValueStore_Get_Found(t *testing.T) {
	kv, mock := newMockKV(t)

	mock.ExpectQuery(getCacheValue).
		WithArgs("fit-tracker-auth-token").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow("token-value"))

	value, found, err := kv.Get(context.Background(), "fit-tracker-auth-token")

	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "token-value", value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKeyValueStore_Get_NotFound(t *testing.T) {
	kv, mock := newMockKV(t)

	mock.ExpectQuery(getCacheValue).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"value"}))

	value, found, err := kv.Get(context.Background(), "missing")

	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKeyValueStore_Get_QueryError(t *testing.T) {
	kv, mock := newMockKV(t)

	mock.ExpectQuery(getCacheValue).
		WithArgs("bad").
		WillReturnError(errors.New("database is locked"))

	_, _, err := kv.Get(context.Background(), "bad")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read cache value")
}

func TestSQLiteKeyValueStore_Set_Upsert(t *testing.T) {
	kv, mock := newMockKV(t)

	mock.ExpectExec(upsertCacheValue).
		WithArgs("fit-tracker-meals-u-1", `{"2026-08-30":{}}`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := kv.Set(context.Background(), "fit-tracker-meals-u-1", `{"2026-08-30":{}}`)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKeyValueStore_Delete(t *testing.T) {
	kv, mock := newMockKV(t)

	mock.ExpectExec(deleteCacheValue).
		WithArgs("fit-tracker-water-u-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := kv.Delete(context.Background(), "fit-tracker-water-u-1")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteKeyValueStore_Delete_ExecError(t *testing.T) {
	kv, mock := newMockKV(t)

	mock.ExpectExec(deleteCacheValue).
		WithArgs("bad").
		WillReturnError(errors.New("disk I/O error"))

	err := kv.Delete(context.Background(), "bad")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to delete cache value")
}
