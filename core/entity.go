package core

import (
	"bytes"
	"context"
	"errors"
)

// ErrDocumentNotFound is returned by a DocumentStore when no document is
// stored under the requested id.
var ErrDocumentNotFound = errors.New("document not found")

type (
	Document struct {
		Data bytes.Buffer
	}

	// DocumentStore persists whole documents under a string id. Save always
	// replaces the previous content of the document.
	DocumentStore interface {
		FindID(ctx context.Context, id string) (*Document, error)
		Save(ctx context.Context, id string, document *Document) error
	}
)
