// Package gateway owns the JSON database document. Every operation loads
// the whole document from the configured store, applies one change and, for
// mutations, writes the whole document back.
//
// Read-modify-write cycles are serialized by an in-process RWMutex: reads
// share it, mutations hold it exclusively. Two processes pointed at the same
// backend can still overwrite each other.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"social-docstore/core"
	"social-docstore/metrics"

	"github.com/sirupsen/logrus"
)

// Actions reported to a Notifier.
const (
	ActionCreated = "created"
	ActionUpdated = "updated"
	ActionDeleted = "deleted"
	ActionLiked   = "liked"
)

// Notifier receives a callback after every persisted mutation.
type Notifier interface {
	Notify(collection, action string, id int, record any)
}

type noopNotifier struct{}

func (noopNotifier) Notify(string, string, int, any) {}

type Gateway struct {
	store    core.DocumentStore
	key      string
	notifier Notifier
	mu       sync.RWMutex
}

type Option func(*Gateway)

func WithNotifier(n Notifier) Option {
	return func(g *Gateway) {
		if n != nil {
			g.notifier = n
		}
	}
}

// New returns a gateway working on the document stored under key.
func New(store core.DocumentStore, key string, opts ...Option) *Gateway {
	g := &Gateway{
		store:    store,
		key:      key,
		notifier: noopNotifier{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Init makes sure the working document exists. When it does not, it is
// created from the seed file at seedPath, which is only ever read. Without a
// seed file the working document starts with empty collections.
func (g *Gateway) Init(ctx context.Context, seedPath string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	log := logrus.WithField("document_id", g.key)

	_, err := g.store.FindID(ctx, g.key)
	if err == nil {
		log.Info("Using existing working copy")
		return nil
	}
	if !errors.Is(err, core.ErrDocumentNotFound) {
		return fmt.Errorf("failed to look up working copy: %w", err)
	}

	db := core.NewDatabase()
	if seedPath != "" {
		seed, err := readSeed(seedPath)
		switch {
		case err == nil:
			db = seed
			log.WithField("seed_path", seedPath).Info("Creating working copy from seed")
		case errors.Is(err, os.ErrNotExist):
			log.WithField("seed_path", seedPath).Warn("Seed file not found, starting with an empty database")
		default:
			return err
		}
	}

	return g.save(ctx, db)
}

func readSeed(path string) (*core.Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc := &core.Document{}
	doc.Data.Write(data)
	db, err := core.DecodeDatabase(doc)
	if err != nil {
		return nil, fmt.Errorf("seed file %s: %w", path, err)
	}
	return db, nil
}

func (g *Gateway) load(ctx context.Context) (*core.Database, error) {
	defer metrics.ObserveDocument("load", time.Now())

	doc, err := g.store.FindID(ctx, g.key)
	if err != nil {
		return nil, core.NewInternalError("failed to load database", err)
	}
	db, err := core.DecodeDatabase(doc)
	if err != nil {
		return nil, core.NewInternalError("failed to load database", err)
	}
	return db, nil
}

func (g *Gateway) save(ctx context.Context, db *core.Database) error {
	defer metrics.ObserveDocument("save", time.Now())

	doc, err := db.Encode()
	if err != nil {
		return core.NewInternalError("failed to save database", err)
	}
	if err := g.store.Save(ctx, g.key, doc); err != nil {
		return core.NewInternalError("failed to save database", err)
	}
	metrics.DocumentBytes.Set(float64(doc.Data.Len()))
	return nil
}

// view runs fn against a freshly loaded document without persisting it.
func (g *Gateway) view(ctx context.Context, fn func(db *core.Database) error) error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	db, err := g.load(ctx)
	if err != nil {
		return err
	}
	return fn(db)
}

// update runs fn against a freshly loaded document and persists the result
// when fn succeeds. Nothing is written when fn returns an error.
func (g *Gateway) update(ctx context.Context, fn func(db *core.Database) error) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	db, err := g.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(db); err != nil {
		return err
	}
	return g.save(ctx, db)
}

func observe(collection, operation string, err error) {
	outcome := "ok"
	if err != nil {
		outcome = core.CodeOf(err)
	}
	metrics.Operations.WithLabelValues(collection, operation, outcome).Inc()

	if err != nil && outcome == core.CodeInternal {
		logrus.WithFields(logrus.Fields{
			"collection": collection,
			"operation":  operation,
			"error":      err,
		}).Error("Gateway operation failed")
	}
}
