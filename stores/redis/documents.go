package redis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"social-docstore/core"
	"strings"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const keyPrefix = "docstore:"

type documentStore struct {
	client *redis.Client
}

// NewDocumentStore accepts either a redis:// URL or a bare host:port address.
func NewDocumentStore(addr string) (core.DocumentStore, error) {
	var opts *redis.Options
	if strings.Contains(addr, "://") {
		parsed, err := redis.ParseURL(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid redis url %q: %w", addr, err)
		}
		opts = parsed
	} else {
		opts = &redis.Options{Addr: addr}
	}
	return NewDocumentStoreFromClient(redis.NewClient(opts)), nil
}

func NewDocumentStoreFromClient(client *redis.Client) core.DocumentStore {
	return &documentStore{client: client}
}

func (s *documentStore) FindID(ctx context.Context, id string) (*core.Document, error) {
	data, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, fmt.Errorf("document with id %s: %w", id, core.ErrDocumentNotFound)
		}
		logrus.WithField("document_id", id).WithField("error", err).Error("Failed to retrieve document")
		return nil, err
	}
	return &core.Document{Data: *bytes.NewBuffer(data)}, nil
}

func (s *documentStore) Save(ctx context.Context, id string, document *core.Document) error {
	if err := s.client.Set(ctx, keyPrefix+id, document.Data.Bytes(), 0).Err(); err != nil {
		logrus.WithField("document_id", id).WithField("error", err).Error("Failed to save document")
		return err
	}
	return nil
}
