package filesystem

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"social-docstore/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentStore_FindMissing(t *testing.T) {
	store, err := NewDocumentStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.FindID(context.Background(), "db.json")
	assert.ErrorIs(t, err, core.ErrDocumentNotFound)
}

func TestDocumentStore_SaveWritesFileAtomically(t *testing.T) {
	dir := t.TempDir()
	store, err := NewDocumentStore(dir)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "db.json", &core.Document{Data: *bytes.NewBufferString(`{"a":1}`)}))
	require.NoError(t, store.Save(ctx, "db.json", &core.Document{Data: *bytes.NewBufferString(`{"a":2}`)}))

	raw, err := os.ReadFile(filepath.Join(dir, "db.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, string(raw))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")

	found, err := store.FindID(ctx, "db.json")
	require.NoError(t, err)
	assert.Equal(t, `{"a":2}`, found.Data.String())
}

func TestNewDocumentStore_CreatesBaseDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := NewDocumentStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
