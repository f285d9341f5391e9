package memory

import (
	"bytes"
	"context"
	"fmt"
	"social-docstore/core"
	"sync"
)

type documentStore struct {
	mu             sync.RWMutex
	savedDocuments map[string][]byte
}

func NewDocumentStore() core.DocumentStore {
	return &documentStore{savedDocuments: make(map[string][]byte)}
}

func (s *documentStore) FindID(ctx context.Context, id string) (*core.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if val, ok := s.savedDocuments[id]; ok {
		return &core.Document{Data: *bytes.NewBuffer(bytes.Clone(val))}, nil
	}
	return nil, fmt.Errorf("document with id %s: %w", id, core.ErrDocumentNotFound)
}

func (s *documentStore) Save(ctx context.Context, id string, document *core.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.savedDocuments[id] = bytes.Clone(document.Data.Bytes())
	return nil
}
