package sqlite

import (
	"bytes"
	"context"
	"errors"
	"regexp"
	"testing"

	"social-docstore/core"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMockStore(t *testing.T) (core.DocumentStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectExec(regexp.QuoteMeta(createTableQuery)).WillReturnResult(sqlmock.NewResult(0, 0))
	store, err := NewDocumentStoreFromDB(db)
	require.NoError(t, err)
	return store, mock
}

func TestDocumentStore_FindID(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
		WithArgs("db.json").
		WillReturnRows(sqlmock.NewRows([]string{"data"}).AddRow([]byte(`{"usuarios":[]}`)))

	doc, err := store.FindID(context.Background(), "db.json")
	require.NoError(t, err)
	assert.Equal(t, `{"usuarios":[]}`, doc.Data.String())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentStore_FindIDMissing(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectQuery)).
		WithArgs("db.json").
		WillReturnRows(sqlmock.NewRows([]string{"data"}))

	_, err := store.FindID(context.Background(), "db.json")
	assert.ErrorIs(t, err, core.ErrDocumentNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentStore_Save(t *testing.T) {
	store, mock := setupMockStore(t)
	payload := []byte(`{"storys":[]}`)

	mock.ExpectExec(regexp.QuoteMeta(upsertQuery)).
		WithArgs("db.json", payload, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := store.Save(context.Background(), "db.json", &core.Document{Data: *bytes.NewBuffer(payload)})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDocumentStore_SaveError(t *testing.T) {
	store, mock := setupMockStore(t)

	mock.ExpectExec(regexp.QuoteMeta(upsertQuery)).
		WillReturnError(errors.New("database is locked"))

	err := store.Save(context.Background(), "db.json", &core.Document{Data: *bytes.NewBufferString("{}")})
	assert.EqualError(t, err, "database is locked")
}

func TestNewDocumentStoreFromDB_TableError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta(createTableQuery)).WillReturnError(errors.New("read-only"))
	_, err = NewDocumentStoreFromDB(db)
	assert.Error(t, err)
}
