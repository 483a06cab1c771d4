package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/templar-labs/templar-cli/internal/core/domain"
)

func TestDocumentStore_SaveAndGet(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	doc := domain.NewDocument("contract.txt", "original content")
	require.NoError(t, store.Save(ctx, doc))

	saved, err := store.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "contract.txt", saved.FileName)
	assert.Equal(t, "original content", saved.OriginalContent)
	assert.Equal(t, domain.StatusPending, saved.Status)
}

func TestDocumentStore_Save_LastWriterWins(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	doc := domain.NewDocument("a.txt", "v1")
	require.NoError(t, store.Save(ctx, doc))

	require.NoError(t, doc.SetNormalizedContent("normalized"))
	require.NoError(t, store.Save(ctx, doc))

	saved, err := store.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusNormalized, saved.Status)
	assert.Equal(t, "normalized", saved.NormalizedContent)
}

func TestDocumentStore_Get_NotFound(t *testing.T) {
	store := NewDocumentStore()

	_, err := store.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentStore_List(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	docs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, docs)

	require.NoError(t, store.Save(ctx, domain.NewDocument("a.txt", "a")))
	require.NoError(t, store.Save(ctx, domain.NewDocument("b.txt", "b")))

	docs, err = store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestDocumentStore_ConcurrentAccess(t *testing.T) {
	store := NewDocumentStore()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = store.Save(ctx, domain.NewDocument("f.txt", "content"))
		}()
		go func() {
			defer wg.Done()
			_, _ = store.List(ctx)
		}()
	}
	wg.Wait()

	docs, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, docs, 20)
}
