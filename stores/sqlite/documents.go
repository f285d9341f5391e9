package sqlite

import (
	"bytes"
	"context"
	"database/sql"
	"errors"
	"fmt"
	"social-docstore/core"

	_ "github.com/mattn/go-sqlite3"
	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

const (
	createTableQuery = `CREATE TABLE IF NOT EXISTS documents (id TEXT PRIMARY KEY, data BLOB, revision TEXT);`
	selectQuery      = `SELECT data FROM documents WHERE id = ?`
	upsertQuery      = `INSERT INTO documents (id, data, revision) VALUES (?, ?, ?) ON CONFLICT(id) DO UPDATE SET data = excluded.data, revision = excluded.revision`
)

type documentStore struct {
	db *sql.DB
}

func NewDocumentStore(dataSourceName string) (core.DocumentStore, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	return NewDocumentStoreFromDB(db)
}

// NewDocumentStoreFromDB uses an already opened database handle.
func NewDocumentStoreFromDB(db *sql.DB) (core.DocumentStore, error) {
	if _, err := db.Exec(createTableQuery); err != nil {
		return nil, fmt.Errorf("failed to create documents table: %w", err)
	}
	return &documentStore{db}, nil
}

func (s *documentStore) FindID(ctx context.Context, id string) (*core.Document, error) {
	log := logrus.WithField("document_id", id)
	log.Debug("Retrieving document by ID")
	var data []byte
	err := s.db.QueryRowContext(ctx, selectQuery, id).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Warn("Document with specified ID not found")
			return nil, fmt.Errorf("document with id %s: %w", id, core.ErrDocumentNotFound)
		}
		log.WithField("error", err).Error("Failed to retrieve document")
		return nil, err
	}
	return &core.Document{Data: *bytes.NewBuffer(data)}, nil
}

// Save upserts the document and stamps it with a fresh revision.
func (s *documentStore) Save(ctx context.Context, id string, document *core.Document) error {
	revision := ulid.Make().String()
	data := document.Data.Bytes()
	log := logrus.WithFields(logrus.Fields{
		"document_id": id,
		"revision":    revision,
		"data_length": len(data),
	})

	if _, err := s.db.ExecContext(ctx, upsertQuery, id, data, revision); err != nil {
		log.WithField("error", err).Error("Failed to save document")
		return err
	}
	log.Debug("Document saved")
	return nil
}
