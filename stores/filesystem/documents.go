package filesystem

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"social-docstore/core"

	"github.com/oklog/ulid/v2"
	"github.com/sirupsen/logrus"
)

type documentStore struct {
	basePath string // Directory where documents are stored.
}

func NewDocumentStore(basePath string) (core.DocumentStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create base directory: %w", err)
	}

	return &documentStore{basePath: basePath}, nil
}

func (s *documentStore) FindID(ctx context.Context, id string) (*core.Document, error) {
	filePath := filepath.Join(s.basePath, id)
	log := logrus.WithField("document_id", id)

	log.WithField("file_path", filePath).Debug("Retrieving document by ID")
	data, err := os.ReadFile(filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Warn("Document with specified ID not found")
			return nil, fmt.Errorf("document with id %s: %w", id, core.ErrDocumentNotFound)
		}
		log.WithField("error", err).Error("Failed to retrieve document")
		return nil, err
	}

	return &core.Document{Data: *bytes.NewBuffer(data)}, nil
}

// Save writes to a uniquely named temp file in the same directory and
// renames it over the target, so readers never see a half-written document.
func (s *documentStore) Save(ctx context.Context, id string, document *core.Document) error {
	filePath := filepath.Join(s.basePath, id)
	tmpPath := fmt.Sprintf("%s.%s.tmp", filePath, ulid.Make())
	log := logrus.WithFields(logrus.Fields{
		"document_id": id,
		"file_path":   filePath,
	})

	if err := os.WriteFile(tmpPath, document.Data.Bytes(), 0644); err != nil {
		log.WithField("error", err).Error("Failed to write document")
		return err
	}
	if err := os.Rename(tmpPath, filePath); err != nil {
		_ = os.Remove(tmpPath)
		log.WithField("error", err).Error("Failed to replace document")
		return err
	}

	log.WithField("bytes", document.Data.Len()).Debug("Document saved")
	return nil
}
